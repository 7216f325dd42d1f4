package entities

import (
	"fmt"

	"github.com/decker502/duckpond/pkg/components"
	"github.com/decker502/duckpond/pkg/ecs"
	"github.com/decker502/duckpond/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

// ResourceLoader 实体工厂需要的资源加载接口
// 由 game.ResourceManager 实现，测试中使用 mock 避免文件 I/O
type ResourceLoader interface {
	LoadImage(path string) (*ebiten.Image, error)
}

// DuckOptions 创建鸭子实体的参数
type DuckOptions struct {
	Skin      string  // 皮肤标识
	ImagePath string  // 皮肤图片路径
	Scale     float64 // 基础缩放
	Speed     float64 // 速度倍率（<= 0 时按 1.0 处理）
	IsLeader  bool    // 是否为领头鸭
	X, Y      float64 // 初始位置（屏幕坐标）
}

// NewDuckEntity 创建鸭子实体
//
// 实体包含 Duck、Position、Sprite、Scale、Hover 组件，状态为 DuckSpawned。
// 路径（PathComponent）由场景通过 systems.PlaySequence 设置。
//
// 返回:
//   - ecs.EntityID: 创建的鸭子实体ID，失败时返回 0
//   - error: 参数无效或图片加载失败
func NewDuckEntity(em *ecs.EntityManager, rm ResourceLoader, opts DuckOptions) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if rm == nil {
		return 0, fmt.Errorf("resource manager cannot be nil")
	}
	if opts.Scale <= 0 {
		return 0, fmt.Errorf("invalid duck scale %v, must be > 0", opts.Scale)
	}

	img, err := rm.LoadImage(opts.ImagePath)
	if err != nil {
		return 0, fmt.Errorf("failed to load duck skin %q: %w", opts.Skin, err)
	}

	speed := opts.Speed
	if speed <= 0 {
		speed = 1.0
	}

	entityID := em.CreateEntity()
	em.AddComponent(entityID, &components.DuckComponent{
		Skin:      opts.Skin,
		BaseScale: opts.Scale,
		Speed:     speed,
		State:     types.DuckSpawned,
		IsLeader:  opts.IsLeader,
	})
	em.AddComponent(entityID, &components.PositionComponent{X: opts.X, Y: opts.Y})
	em.AddComponent(entityID, &components.SpriteComponent{Image: img, Alpha: 1.0})
	em.AddComponent(entityID, &components.ScaleComponent{ScaleX: opts.Scale, ScaleY: opts.Scale})
	em.AddComponent(entityID, &components.HoverComponent{IsEnabled: true})

	return entityID, nil
}

// SetDuckExpanded 切换鸭子的悬停放大状态
// factor 为放大倍数；状态未变化时返回 false
func SetDuckExpanded(em *ecs.EntityManager, id ecs.EntityID, expanded bool, factor float64) bool {
	duck, ok := ecs.GetComponent[*components.DuckComponent](em, id)
	if !ok || duck.Expanded == expanded {
		return false
	}
	scale, ok := ecs.GetComponent[*components.ScaleComponent](em, id)
	if !ok {
		return false
	}

	duck.Expanded = expanded
	s := duck.BaseScale
	if expanded {
		s *= factor
	}
	scale.ScaleX, scale.ScaleY = s, s
	return true
}
