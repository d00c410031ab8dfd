package render

// RecordedPrimitive 记录下来的图元状态
type RecordedPrimitive struct {
	ID        PrimitiveID
	Kind      PrimitiveKind
	Transform Transform
	Material  Material
}

// Recorder 只记录、不绘制的 Surface
// 每次 SubmitFrame 保存一份图元快照，供测试和无窗口工具检查
type Recorder struct {
	prims  []RecordedPrimitive
	frames [][]RecordedPrimitive
}

// NewRecorder 创建记录器
func NewRecorder() *Recorder {
	return &Recorder{}
}

// CreatePrimitive 实现 Surface
func (r *Recorder) CreatePrimitive(kind PrimitiveKind) PrimitiveID {
	id := PrimitiveID(len(r.prims))
	r.prims = append(r.prims, RecordedPrimitive{
		ID:        id,
		Kind:      kind,
		Transform: Transform{Scale: 1},
		Material:  Material{Opacity: 1},
	})
	return id
}

// SetTransform 实现 Surface
func (r *Recorder) SetTransform(id PrimitiveID, t Transform) {
	if int(id) < 0 || int(id) >= len(r.prims) {
		return
	}
	r.prims[id].Transform = t
}

// AttachMaterial 实现 Surface
func (r *Recorder) AttachMaterial(id PrimitiveID, m Material) {
	if int(id) < 0 || int(id) >= len(r.prims) {
		return
	}
	r.prims[id].Material = m
}

// SubmitFrame 实现 Surface
func (r *Recorder) SubmitFrame() {
	snapshot := make([]RecordedPrimitive, len(r.prims))
	copy(snapshot, r.prims)
	r.frames = append(r.frames, snapshot)
}

// Frames 返回已提交的帧数
func (r *Recorder) Frames() int {
	return len(r.frames)
}

// Frame 返回第 i 帧的快照
func (r *Recorder) Frame(i int) []RecordedPrimitive {
	if i < 0 || i >= len(r.frames) {
		return nil
	}
	return r.frames[i]
}

// LastFrame 返回最后一帧的快照
func (r *Recorder) LastFrame() []RecordedPrimitive {
	return r.Frame(len(r.frames) - 1)
}

// Primitive 返回图元的当前状态
func (r *Recorder) Primitive(id PrimitiveID) (RecordedPrimitive, bool) {
	if int(id) < 0 || int(id) >= len(r.prims) {
		return RecordedPrimitive{}, false
	}
	return r.prims[id], true
}
