package components

// ScaleComponent 存储实体级别的缩放因子
// 光标外环和预览卡片在绘制时按此缩放（1.0 = 原始大小）
type ScaleComponent struct {
	ScaleX float64
	ScaleY float64
}
