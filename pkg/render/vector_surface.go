package render

import (
	"image"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image
)

// solidSource 返回 1×1 白色源图像，DrawTriangles 通过顶点颜色着色
func solidSource() *ebiten.Image {
	if whiteSubImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// cubeFaces 单位立方体六个面：法线和四个角（逆时针）
var cubeFaces = [6]struct {
	normal  Vec3
	corners [4]Vec3
}{
	{V3(1, 0, 0), [4]Vec3{V3(.5, -.5, -.5), V3(.5, .5, -.5), V3(.5, .5, .5), V3(.5, -.5, .5)}},
	{V3(-1, 0, 0), [4]Vec3{V3(-.5, -.5, .5), V3(-.5, .5, .5), V3(-.5, .5, -.5), V3(-.5, -.5, -.5)}},
	{V3(0, 1, 0), [4]Vec3{V3(-.5, .5, -.5), V3(-.5, .5, .5), V3(.5, .5, .5), V3(.5, .5, -.5)}},
	{V3(0, -1, 0), [4]Vec3{V3(-.5, -.5, .5), V3(-.5, -.5, -.5), V3(.5, -.5, -.5), V3(.5, -.5, .5)}},
	{V3(0, 0, 1), [4]Vec3{V3(-.5, -.5, .5), V3(.5, -.5, .5), V3(.5, .5, .5), V3(-.5, .5, .5)}},
	{V3(0, 0, -1), [4]Vec3{V3(.5, -.5, -.5), V3(-.5, -.5, -.5), V3(-.5, .5, -.5), V3(.5, .5, -.5)}},
}

type vectorPrimitive struct {
	kind      PrimitiveKind
	transform Transform
	material  Material
}

// drawItem 一个待绘制单元（立方体的一个面或一个球/环），按深度从远到近绘制
type drawItem struct {
	depth float32
	draw  func(dst *ebiten.Image)
}

// VectorSurface 使用 ebiten 绘制的 Surface
//
// 立方体按面做平面着色（DrawTriangles），球和环使用 vector 包绘制成屏幕空间圆。
// 没有深度缓冲，所有绘制单元按深度排序后依次绘制。
type VectorSurface struct {
	Camera *Camera
	// Light 方向光（指向光源，单位向量）
	Light Vec3
	// Ambient 环境光强度
	Ambient float32

	prims  []vectorPrimitive
	target *ebiten.Image
	items  []drawItem
}

// NewVectorSurface 创建绘制表面
func NewVectorSurface(camera *Camera) *VectorSurface {
	return &VectorSurface{
		Camera:  camera,
		Light:   V3(0.4, 0.8, 0.45).Normalize(),
		Ambient: 0.35,
	}
}

// SetTarget 设置下一次 SubmitFrame 的绘制目标
func (s *VectorSurface) SetTarget(dst *ebiten.Image) {
	s.target = dst
	if dst != nil {
		b := dst.Bounds()
		s.Camera.SetViewport(b.Dx(), b.Dy())
	}
}

// CreatePrimitive 实现 Surface
func (s *VectorSurface) CreatePrimitive(kind PrimitiveKind) PrimitiveID {
	s.prims = append(s.prims, vectorPrimitive{
		kind:      kind,
		transform: Transform{Scale: 1},
		material:  Material{Color: color.RGBA{255, 255, 255, 255}, Opacity: 1},
	})
	return PrimitiveID(len(s.prims) - 1)
}

// SetTransform 实现 Surface
func (s *VectorSurface) SetTransform(id PrimitiveID, t Transform) {
	if int(id) >= 0 && int(id) < len(s.prims) {
		s.prims[id].transform = t
	}
}

// AttachMaterial 实现 Surface
func (s *VectorSurface) AttachMaterial(id PrimitiveID, m Material) {
	if int(id) >= 0 && int(id) < len(s.prims) {
		s.prims[id].material = m
	}
}

// SubmitFrame 实现 Surface：把所有图元绘制到目标图像
func (s *VectorSurface) SubmitFrame() {
	if s.target == nil {
		return
	}
	s.items = s.items[:0]
	for i := range s.prims {
		p := &s.prims[i]
		if p.material.Opacity <= 0 || p.transform.Scale <= 0 {
			continue
		}
		switch p.kind {
		case PrimitiveCube:
			s.collectCube(p)
		case PrimitiveSphere, PrimitiveRing:
			s.collectDisc(p)
		}
	}

	sort.SliceStable(s.items, func(i, j int) bool {
		return s.items[i].depth > s.items[j].depth
	})
	for _, it := range s.items {
		it.draw(s.target)
	}
}

func (s *VectorSurface) collectCube(p *vectorPrimitive) {
	tr := p.transform
	for fi, f := range cubeFaces {
		normal := f.normal.Rotate(tr.Rotation)
		faceCenter := f.normal.Mul(0.5 * tr.Scale).Rotate(tr.Rotation).Add(tr.Position)
		if normal.Dot(s.Camera.Position.Sub(faceCenter)) <= 0 {
			continue
		}

		var pts [4][2]float32
		visible := true
		for k, c := range f.corners {
			world := c.Mul(tr.Scale).Rotate(tr.Rotation).Add(tr.Position)
			x, y, _, ok := s.Camera.Project(world)
			if !ok {
				visible = false
				break
			}
			pts[k] = [2]float32{x, y}
		}
		if !visible {
			continue
		}

		_, _, depth, _ := s.Camera.Project(faceCenter)
		shade := s.Ambient + (1-s.Ambient)*max32(0, normal.Dot(s.Light)) + p.material.Emissive
		r, g, b, a := scaledColor(p.material.FaceColor(fi), p.material.Opacity, shade)

		s.items = append(s.items, drawItem{
			depth: depth,
			draw: func(dst *ebiten.Image) {
				vs := make([]ebiten.Vertex, 4)
				for k := range pts {
					vs[k] = ebiten.Vertex{
						DstX: pts[k][0], DstY: pts[k][1],
						SrcX: 0, SrcY: 0,
						ColorR: r, ColorG: g, ColorB: b, ColorA: a,
					}
				}
				is := []uint16{0, 1, 2, 0, 2, 3}
				op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
				dst.DrawTriangles(vs, is, solidSource(), op)
			},
		})
	}
}

func (s *VectorSurface) collectDisc(p *vectorPrimitive) {
	tr := p.transform
	x, y, depth, ok := s.Camera.Project(tr.Position)
	if !ok {
		return
	}
	radius := tr.Scale * s.Camera.PixelsPerUnit(depth)
	if radius <= 0 {
		return
	}

	shade := 1 + p.material.Emissive
	r, g, b, a := scaledColor(p.material.Color, p.material.Opacity, shade)
	clr := color.RGBA{
		R: uint8(255 * r * a),
		G: uint8(255 * g * a),
		B: uint8(255 * b * a),
		A: uint8(255 * a),
	}
	kind := p.kind

	s.items = append(s.items, drawItem{
		depth: depth,
		draw: func(dst *ebiten.Image) {
			if kind == PrimitiveRing {
				vector.StrokeCircle(dst, x, y, radius, 2, clr, true)
				return
			}
			vector.DrawFilledCircle(dst, x, y, radius, clr, true)
		},
	})
}

// scaledColor 颜色乘以亮度，返回 [0,1] 分量
func scaledColor(c color.RGBA, opacity, shade float32) (r, g, b, a float32) {
	r = min32(1, float32(c.R)/255*shade)
	g = min32(1, float32(c.G)/255*shade)
	b = min32(1, float32(c.B)/255*shade)
	a = min32(1, max32(0, opacity))
	return r, g, b, a
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
