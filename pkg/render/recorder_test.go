package render

import (
	"image/color"
	"testing"
)

// TestRecorderSnapshots 每帧快照互不影响
func TestRecorderSnapshots(t *testing.T) {
	r := NewRecorder()
	var s Surface = r

	id := s.CreatePrimitive(PrimitiveSphere)
	s.AttachMaterial(id, Material{Color: color.RGBA{200, 10, 10, 255}, Opacity: 1})
	s.SetTransform(id, Transform{Position: V3(1, 0, 0), Scale: 0.5})
	s.SubmitFrame()

	s.SetTransform(id, Transform{Position: V3(2, 0, 0), Scale: 0.5})
	s.SubmitFrame()

	if r.Frames() != 2 {
		t.Fatalf("Frames() = %d, want 2", r.Frames())
	}
	if got := r.Frame(0)[0].Transform.Position.X; got != 1 {
		t.Errorf("frame 0 X = %v, want 1", got)
	}
	if got := r.LastFrame()[0].Transform.Position.X; got != 2 {
		t.Errorf("last frame X = %v, want 2", got)
	}
	if r.LastFrame()[0].Kind != PrimitiveSphere {
		t.Errorf("kind = %v, want sphere", r.LastFrame()[0].Kind)
	}
}

// TestRecorderUnknownID 未知句柄被忽略
func TestRecorderUnknownID(t *testing.T) {
	r := NewRecorder()
	r.SetTransform(3, Transform{Scale: 2})
	r.AttachMaterial(-1, Material{})
	if _, ok := r.Primitive(3); ok {
		t.Error("unknown primitive should not exist")
	}
	if r.LastFrame() != nil {
		t.Error("no frames submitted yet")
	}
}
