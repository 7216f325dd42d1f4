package systems

import (
	"math"
	"testing"

	"github.com/decker502/duckpond/internal/sequence"
	"github.com/decker502/duckpond/pkg/components"
	"github.com/decker502/duckpond/pkg/ecs"
)

func newPathEntity(em *ecs.EntityManager) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{})
	return id
}

// TestPathSystemMovesEntity 测试路径系统按关键帧插值移动实体
func TestPathSystemMovesEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	sys := NewPathSystem(em)
	id := newPathEntity(em)

	seq := sequence.New(
		sequence.KeyFrame{Time: 0, X: 0, Y: 0},
		sequence.KeyFrame{Time: 1, X: 100, Y: 200},
	)
	PlaySequence(em, id, seq)

	sys.Update(0.5)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if math.Abs(pos.X-50) > 1e-9 || math.Abs(pos.Y-100) > 1e-9 {
		t.Errorf("position after 0.5s = (%v, %v), want (50, 100)", pos.X, pos.Y)
	}

	sys.Update(0.75)
	path, _ := ecs.GetComponent[*components.PathComponent](em, id)
	if !path.Sequence.Finished(path.Elapsed) || path.IsPlaying {
		t.Error("path should be finished after TotalTime")
	}
	if pos.X != 100 || pos.Y != 200 {
		t.Errorf("position should clamp to the last key frame, got (%v, %v)", pos.X, pos.Y)
	}
}

// TestPathSystemCompletionFiresOnce 测试完成回调恰好触发一次
func TestPathSystemCompletionFiresOnce(t *testing.T) {
	em := ecs.NewEntityManager()
	sys := NewPathSystem(em)
	id := newPathEntity(em)

	seq := sequence.New(sequence.KeyFrame{Time: 0}, sequence.KeyFrame{Time: 1, X: 10})
	completed := 0
	seq.OnComplete(func() { completed++ })
	PlaySequence(em, id, seq)

	for i := 0; i < 59; i++ {
		sys.Update(1.0 / 120.0)
	}
	if completed != 0 {
		t.Fatalf("completion fired early at elapsed < total")
	}

	for i := 0; i < 240; i++ {
		sys.Update(1.0 / 60.0)
	}
	if completed != 1 {
		t.Errorf("completion fired %d times, want 1", completed)
	}
}

// TestPathSystemCallbackCanReplacePath 回调中替换路径不影响本帧遍历
func TestPathSystemCallbackCanReplacePath(t *testing.T) {
	em := ecs.NewEntityManager()
	sys := NewPathSystem(em)
	id := newPathEntity(em)

	first := sequence.New(sequence.KeyFrame{Time: 0}, sequence.KeyFrame{Time: 0.5, X: 10})
	second := sequence.Circle(0, 0, 5, 2, 8, 0)
	first.OnComplete(func() { PlaySequence(em, id, second) })
	PlaySequence(em, id, first)

	sys.Update(1)

	path, _ := ecs.GetComponent[*components.PathComponent](em, id)
	if path.Sequence != second {
		t.Fatal("callback should have replaced the sequence")
	}
	if !path.IsPlaying || path.Elapsed != 0 {
		t.Errorf("replacement should start from zero, playing=%v elapsed=%v", path.IsPlaying, path.Elapsed)
	}

	// 循环序列永不结束
	for i := 0; i < 600; i++ {
		sys.Update(1.0 / 60.0)
	}
	if !path.IsPlaying || path.Sequence.Finished(path.Elapsed) {
		t.Error("looping sequence should never finish")
	}
}

func TestPlaySequenceSnapsToStart(t *testing.T) {
	em := ecs.NewEntityManager()
	id := newPathEntity(em)

	PlaySequence(em, id, sequence.New(sequence.KeyFrame{Time: 0, X: 42, Y: 24}))

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X != 42 || pos.Y != 24 {
		t.Errorf("PlaySequence should snap to the first key frame, got (%v, %v)", pos.X, pos.Y)
	}

	// 空序列不移动实体
	PlaySequence(em, id, sequence.New())
	NewPathSystem(em).Update(1)
	if pos.X != 42 || pos.Y != 24 {
		t.Errorf("empty sequence should not move the entity, got (%v, %v)", pos.X, pos.Y)
	}
}
