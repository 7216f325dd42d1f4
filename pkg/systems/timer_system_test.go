package systems

import (
	"testing"

	"github.com/decker502/duckpond/pkg/components"
	"github.com/decker502/duckpond/pkg/ecs"
)

func TestTimerSystemRepeating(t *testing.T) {
	em := ecs.NewEntityManager()
	sys := NewTimerSystem(em)

	fired := 0
	id := em.CreateEntity()
	em.AddComponent(id, &components.TimerComponent{
		Name:       "test",
		TargetTime: 1.0,
		Repeating:  true,
		OnFire:     func() { fired++ },
	})

	// 3.5 秒，每帧 0.25 秒
	for i := 0; i < 14; i++ {
		sys.Update(0.25)
	}
	if fired != 3 {
		t.Errorf("repeating timer fired %d times, want 3", fired)
	}
}

func TestTimerSystemOneShot(t *testing.T) {
	em := ecs.NewEntityManager()
	sys := NewTimerSystem(em)

	fired := 0
	id := em.CreateEntity()
	timer := &components.TimerComponent{TargetTime: 0.5, OnFire: func() { fired++ }}
	em.AddComponent(id, timer)

	for i := 0; i < 10; i++ {
		sys.Update(0.25)
	}
	if fired != 1 {
		t.Errorf("one-shot timer fired %d times, want 1", fired)
	}
	if !timer.IsReady {
		t.Error("one-shot timer should be ready")
	}
}

// TestTimerSystemStopFromCallback 回调中移除计时器后不再触发
func TestTimerSystemStopFromCallback(t *testing.T) {
	em := ecs.NewEntityManager()
	sys := NewTimerSystem(em)

	fired := 0
	id := em.CreateEntity()
	em.AddComponent(id, &components.TimerComponent{
		TargetTime: 0,
		Repeating:  true,
		OnFire: func() {
			fired++
			if fired == 3 {
				ecs.RemoveComponent[*components.TimerComponent](em, id)
			}
		},
	})

	for i := 0; i < 10; i++ {
		sys.Update(1.0 / 60.0)
	}
	if fired != 3 {
		t.Errorf("timer fired %d times, want 3", fired)
	}
}
