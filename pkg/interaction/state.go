package interaction

// State 交互状态（InteractionState）
//
// 组件挂载时创建，卸载或显式关闭时清空。
// 单写者：只有解析器（拾取/悬停处理）修改它，渲染层只读。
type State struct {
	selected     string
	hasSelection bool
	hoveredImage string
	clicked      bool
}

// Pick 处理拾取事件
// 单选，后拾取覆盖先拾取；解析失败时保留原选择并返回错误
func (s *State) Pick(table FaceTable, ev PickEvent) error {
	label, err := table.Resolve(ev.FaceIndex)
	if err != nil {
		return err
	}
	s.selected = label
	s.hasSelection = true
	return nil
}

// Dismiss 关闭已选标签
func (s *State) Dismiss() {
	s.selected = ""
	s.hasSelection = false
}

// Selected 返回当前选中的标签
func (s *State) Selected() (string, bool) {
	return s.selected, s.hasSelection
}

// Hover 设置悬停的图片（原子替换，不排队）
func (s *State) Hover(imageID string) {
	s.hoveredImage = imageID
}

// Unhover 结束对指定图片的悬停
// 只有当它仍是当前悬停图片时才清空，避免离开旧条目时清掉新条目
func (s *State) Unhover(imageID string) {
	if s.hoveredImage == imageID {
		s.hoveredImage = ""
	}
}

// ClearHover 清空悬停（列表关闭时）
func (s *State) ClearHover() {
	s.hoveredImage = ""
}

// HoveredImage 返回当前悬停的图片
func (s *State) HoveredImage() (string, bool) {
	return s.hoveredImage, s.hoveredImage != ""
}

// SetClicked 更新按下状态
func (s *State) SetClicked(clicked bool) {
	s.clicked = clicked
}

// IsClicked 是否按下
func (s *State) IsClicked() bool {
	return s.clicked
}

// Reset 重置为空状态（卸载时）
func (s *State) Reset() {
	*s = State{}
}
