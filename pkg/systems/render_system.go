package systems

import (
	"log"

	"github.com/decker502/duckpond/pkg/components"
	"github.com/decker502/duckpond/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// RenderSystem 管理场景实体的精灵渲染
//
// 职责范围：
//   - 鸭子、池塘小屋等使用 SpriteComponent 的实体
//   - 图片以 PositionComponent 为中心，叠加 ScaleComponent 缩放和 Sprite.Alpha
//
// 不包括：
//   - 背景和池塘贴图，由场景直接绘制
//
// 绘制顺序由调用者给出的实体列表决定，系统不排序
type RenderSystem struct {
	entityManager *ecs.EntityManager
	warned        map[ecs.EntityID]bool // 记录已输出警告的实体
}

// NewRenderSystem 创建一个新的渲染系统
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		warned:        make(map[ecs.EntityID]bool),
	}
}

// DrawEntities 按给定顺序绘制实体（先绘制的在底层）
func (s *RenderSystem) DrawEntities(screen *ebiten.Image, ids []ecs.EntityID) {
	for _, id := range ids {
		s.DrawEntity(screen, id)
	}
}

// DrawEntity 绘制单个实体
func (s *RenderSystem) DrawEntity(screen *ebiten.Image, id ecs.EntityID) {
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
	if !ok || sprite.Image == nil {
		if !s.warned[id] {
			log.Printf("[RenderSystem] 警告: 实体 %d 没有可渲染的 SpriteComponent", id)
			s.warned[id] = true
		}
		return
	}

	op, ok := s.drawOptions(id, sprite)
	if !ok {
		return
	}
	screen.DrawImage(sprite.Image, op)
}

// drawOptions 计算实体的绘制变换
func (s *RenderSystem) drawOptions(id ecs.EntityID, sprite *components.SpriteComponent) (*ebiten.DrawImageOptions, bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return nil, false
	}

	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterLinear

	// 居中图片
	bounds := sprite.Image.Bounds()
	op.GeoM.Translate(-float64(bounds.Dx())/2, -float64(bounds.Dy())/2)

	// 缩放（以中心为原点）
	if scale, ok := ecs.GetComponent[*components.ScaleComponent](s.entityManager, id); ok {
		op.GeoM.Scale(scale.ScaleX, scale.ScaleY)
	}

	// 移动到目标位置
	op.GeoM.Translate(pos.X, pos.Y)

	if sprite.Alpha > 0 && sprite.Alpha < 1 {
		op.ColorScale.ScaleAlpha(float32(sprite.Alpha))
	}
	return op, true
}
