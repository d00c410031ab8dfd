package components

// TextInputComponent 文本输入框组件
// 用于联系表单的姓名、邮箱、留言三个字段
type TextInputComponent struct {
	// Field 绑定的表单字段名
	Field string
	// Target 绑定的表单字段；外部修改（如提交成功后清空）会在下一帧同步回输入框
	Target *string

	Text        string // 当前输入的文本
	Label       string // 输入框上方的标签
	Placeholder string // 占位符文本（输入框为空时显示）

	// 输入框区域（屏幕坐标，左上角 + 尺寸）
	X, Y          float64
	Width, Height float64

	// Multiline 多行输入（Enter 换行，文本自动折行）
	Multiline bool

	// 光标状态
	CursorVisible    bool    // 光标是否可见（闪烁效果）
	CursorBlinkTimer float64 // 光标闪烁计时器（秒）
	CursorPosition   int     // 光标位置（字符索引）

	// MaxLength 最大字符数（0 = 无限制）
	MaxLength int

	// IsFocused 是否获得焦点（接收键盘输入）
	IsFocused bool

	// Disabled 禁用时不接收焦点和输入（提交中）
	Disabled bool

	// Padding 内边距（像素）
	Padding float64
}

// Contains 判断点是否落在输入框内
func (c *TextInputComponent) Contains(x, y float64) bool {
	return x >= c.X && x < c.X+c.Width && y >= c.Y && y < c.Y+c.Height
}
