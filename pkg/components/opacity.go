package components

// OpacityComponent 实体不透明度（0.0 - 1.0）
type OpacityComponent struct {
	Alpha float64
}
