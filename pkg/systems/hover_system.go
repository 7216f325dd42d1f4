package systems

import (
	"github.com/decker502/duckpond/pkg/components"
	"github.com/decker502/duckpond/pkg/ecs"
	"github.com/decker502/duckpond/pkg/events"
)

// CursorFunc 返回当前指针位置（逻辑屏幕坐标）
type CursorFunc func() (x, y int)

// HoverSystem 悬停检测系统
//
// 每帧检测指针是否位于实体的精灵矩形内，状态变化时分发事件：
//   - 进入：events.EventHover
//   - 离开：events.EventOut（包括实体被禁用时）
type HoverSystem struct {
	entityManager *ecs.EntityManager
	registry      *events.Registry
	cursor        CursorFunc
}

// NewHoverSystem 创建悬停系统
func NewHoverSystem(em *ecs.EntityManager, registry *events.Registry, cursor CursorFunc) *HoverSystem {
	return &HoverSystem{
		entityManager: em,
		registry:      registry,
		cursor:        cursor,
	}
}

type hoverEvent struct {
	id   ecs.EntityID
	kind events.Kind
}

// Update 检测悬停状态并分发事件
func (s *HoverSystem) Update(deltaTime float64) {
	if s.cursor == nil {
		return
	}
	mouseX, mouseY := s.cursor()

	entities := ecs.GetEntitiesWith1[*components.HoverComponent](s.entityManager)

	fired := make([]hoverEvent, 0)
	for _, id := range entities {
		hover, _ := ecs.GetComponent[*components.HoverComponent](s.entityManager, id)

		inside := false
		if hover.IsEnabled {
			if minX, minY, maxX, maxY, ok := SpriteBounds(s.entityManager, id); ok {
				inside = float64(mouseX) >= minX && float64(mouseX) <= maxX &&
					float64(mouseY) >= minY && float64(mouseY) <= maxY
			}
		}

		if inside == hover.IsHovered {
			continue
		}
		hover.IsHovered = inside
		if inside {
			fired = append(fired, hoverEvent{id: id, kind: events.EventHover})
		} else {
			fired = append(fired, hoverEvent{id: id, kind: events.EventOut})
		}
	}

	for _, e := range fired {
		s.registry.Dispatch(e.id, e.kind)
	}
}

// SpriteBounds 返回实体精灵按缩放后的矩形（以 Position 为中心）
// 缺少 Position 或 Sprite 时返回 ok=false
func SpriteBounds(em *ecs.EntityManager, id ecs.EntityID) (minX, minY, maxX, maxY float64, ok bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		return 0, 0, 0, 0, false
	}
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](em, id)
	if !ok || sprite.Image == nil {
		return 0, 0, 0, 0, false
	}

	scaleX, scaleY := 1.0, 1.0
	if scale, ok := ecs.GetComponent[*components.ScaleComponent](em, id); ok {
		scaleX, scaleY = scale.ScaleX, scale.ScaleY
	}

	bounds := sprite.Image.Bounds()
	halfW := float64(bounds.Dx()) * scaleX / 2
	halfH := float64(bounds.Dy()) * scaleY / 2
	return pos.X - halfW, pos.Y - halfH, pos.X + halfW, pos.Y + halfH, true
}
