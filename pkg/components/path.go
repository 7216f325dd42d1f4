package components

import "github.com/decker502/duckpond/internal/sequence"

// PathComponent 保存实体当前播放的关键帧路径及播放进度
//
// 工作流程：
//  1. 场景通过 systems.PlaySequence 为实体设置新的 Sequence（替换旧路径）
//  2. PathSystem 每帧累加 Elapsed，插值更新 PositionComponent
//  3. 到达回调时间点时触发 Sequence 上注册的回调
//  4. 非循环序列播放到 TotalTime 后 IsPlaying = false
type PathComponent struct {
	Sequence  *sequence.Sequence
	Elapsed   float64 // 累计播放时间（秒）
	IsPlaying bool    // 是否正在播放（循环序列播放中永远为 true）
}
