package entities

import (
	"fmt"

	"github.com/decker502/duckpond/pkg/components"
	"github.com/decker502/duckpond/pkg/ecs"
)

// NewPondHouseEntity 创建池塘小屋实体
//
// 参数:
//   - imagePath: 小屋图片路径
//   - x, y: 小屋中心（屏幕坐标）
//   - scale: 精灵缩放
//   - seeThroughAlpha: 悬停半透明时的不透明度
func NewPondHouseEntity(
	em *ecs.EntityManager,
	rm ResourceLoader,
	imagePath string,
	x, y, scale, seeThroughAlpha float64,
) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if rm == nil {
		return 0, fmt.Errorf("resource manager cannot be nil")
	}

	img, err := rm.LoadImage(imagePath)
	if err != nil {
		return 0, fmt.Errorf("failed to load pond house image: %w", err)
	}

	entityID := em.CreateEntity()
	em.AddComponent(entityID, &components.PondHouseComponent{SeeThroughAlpha: seeThroughAlpha})
	em.AddComponent(entityID, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(entityID, &components.SpriteComponent{Image: img, Alpha: 1.0})
	em.AddComponent(entityID, &components.ScaleComponent{ScaleX: scale, ScaleY: scale})
	em.AddComponent(entityID, &components.HoverComponent{IsEnabled: true})

	return entityID, nil
}

// SetPondHouseSeeThrough 切换小屋半透明状态，同步更新精灵不透明度
func SetPondHouseSeeThrough(em *ecs.EntityManager, id ecs.EntityID, seeThrough bool) {
	house, ok := ecs.GetComponent[*components.PondHouseComponent](em, id)
	if !ok {
		return
	}
	house.SeeThrough = seeThrough

	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](em, id); ok {
		if seeThrough {
			sprite.Alpha = house.SeeThroughAlpha
		} else {
			sprite.Alpha = 1.0
		}
	}
}
