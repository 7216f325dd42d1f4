package components

// HoverComponent 标记实体可以被鼠标悬停
// 悬停区域为 Sprite 图像按 ScaleComponent 缩放后的矩形（以 Position 为中心）
//
// HoverSystem 检测到悬停状态变化时，通过 events.Registry 分发
// EventHover / EventOut 事件
type HoverComponent struct {
	IsHovered bool // 当前是否处于悬停状态
	IsEnabled bool // 是否参与悬停检测
}
