package systems

import (
	"github.com/decker502/duckpond/internal/sequence"
	"github.com/decker502/duckpond/pkg/components"
	"github.com/decker502/duckpond/pkg/ecs"
)

// PathSystem 推进所有实体的关键帧路径
//
// 职责：
//   - 累加 PathComponent.Elapsed 并插值更新 PositionComponent
//   - 收集到期的 Sequence 回调，在遍历结束后统一执行
//     （回调可能为实体替换新路径，不能在遍历中执行）
//   - 非循环序列播放完毕后停止播放
type PathSystem struct {
	entityManager *ecs.EntityManager
}

// NewPathSystem 创建路径系统
func NewPathSystem(em *ecs.EntityManager) *PathSystem {
	return &PathSystem{
		entityManager: em,
	}
}

// Update 推进所有正在播放的路径
func (s *PathSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[*components.PathComponent, *components.PositionComponent](s.entityManager)

	pending := make([]func(), 0)
	for _, id := range entities {
		path, _ := ecs.GetComponent[*components.PathComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		if !path.IsPlaying || path.Sequence == nil {
			continue
		}

		path.Elapsed += deltaTime
		seq := path.Sequence

		if x, y, ok := seq.PositionAt(seq.LocalTime(path.Elapsed)); ok {
			pos.X, pos.Y = x, y
		}

		pending = append(pending, seq.Due(path.Elapsed)...)

		if seq.Finished(path.Elapsed) {
			path.IsPlaying = false
		}
	}

	for _, fn := range pending {
		fn()
	}
}

// PlaySequence 让实体从头开始播放 seq，替换正在播放的路径
//
// 实体位置立即跳到序列起点；没有 PathComponent 时自动添加。
func PlaySequence(em *ecs.EntityManager, id ecs.EntityID, seq *sequence.Sequence) {
	if seq == nil {
		return
	}
	seq.Reset()

	path, ok := ecs.GetComponent[*components.PathComponent](em, id)
	if !ok {
		path = &components.PathComponent{}
		em.AddComponent(id, path)
	}
	path.Sequence = seq
	path.Elapsed = 0
	path.IsPlaying = true

	if pos, ok := ecs.GetComponent[*components.PositionComponent](em, id); ok {
		if x, y, ok := seq.PositionAt(0); ok {
			pos.X, pos.Y = x, y
		}
	}
}
