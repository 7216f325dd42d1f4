package systems

import (
	"github.com/decker502/duckpond/pkg/components"
	"github.com/decker502/duckpond/pkg/ecs"
)

// TimerSystem 推进所有计时器并触发到时回调
//
// 重复计时器每帧最多触发一次；间隔为 0 的重复计时器每帧触发。
// 停止计时器：移除 TimerComponent（或销毁实体）。
type TimerSystem struct {
	entityManager *ecs.EntityManager
}

// NewTimerSystem 创建计时器系统
func NewTimerSystem(em *ecs.EntityManager) *TimerSystem {
	return &TimerSystem{
		entityManager: em,
	}
}

// Update 推进计时器
func (s *TimerSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith1[*components.TimerComponent](s.entityManager)

	pending := make([]func(), 0)
	for _, id := range entities {
		timer, _ := ecs.GetComponent[*components.TimerComponent](s.entityManager, id)

		// 单次计时器完成后不再计时
		if timer.IsReady && !timer.Repeating {
			continue
		}

		timer.CurrentTime += deltaTime
		if timer.CurrentTime < timer.TargetTime {
			continue
		}

		if timer.Repeating {
			timer.CurrentTime -= timer.TargetTime
			if timer.CurrentTime < 0 || timer.TargetTime <= 0 {
				timer.CurrentTime = 0
			}
		} else {
			timer.IsReady = true
		}

		if timer.OnFire != nil {
			pending = append(pending, timer.OnFire)
		}
	}

	for _, fn := range pending {
		fn()
	}
}
