package components

import "github.com/hajimehoshi/ebiten/v2"

// SpriteComponent 存储实体的视觉表现(当前绘制的图像)
// 图像以 PositionComponent 为中心绘制
type SpriteComponent struct {
	Image *ebiten.Image
	// Alpha 不透明度（0.0 - 1.0），0 按 1.0 处理
	Alpha float64
}
