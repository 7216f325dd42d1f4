// Package sequence 提供基于关键帧的路径动画数据结构
//
// 一个 Sequence 是按时间排序的关键帧列表（时间偏移 + 屏幕坐标），
// 总时长等于最后一个关键帧的时间。可以在任意时间点注册回调，
// 回调在播放时间首次到达该时间点时触发一次。
//
// Sequence 只描述路径，不保存播放进度；播放进度由
// components.PathComponent 保存，由 systems.PathSystem 推进。
package sequence

import (
	"math"
	"sort"

	"github.com/decker502/duckpond/pkg/utils"
)

// KeyFrame 关键帧
type KeyFrame struct {
	Time float64 // 相对于序列开始的时间（秒）
	X    float64 // 屏幕坐标X
	Y    float64 // 屏幕坐标Y
}

type callback struct {
	at    float64
	fn    func()
	fired bool
}

// Sequence 关键帧路径序列
type Sequence struct {
	frames    []KeyFrame
	callbacks []*callback
	loop      bool
	easing    utils.EasingFunc
}

// New 创建关键帧序列，关键帧会按时间排序
func New(frames ...KeyFrame) *Sequence {
	s := &Sequence{
		frames: append([]KeyFrame(nil), frames...),
		easing: utils.EaseLinear,
	}
	sort.SliceStable(s.frames, func(i, j int) bool {
		return s.frames[i].Time < s.frames[j].Time
	})
	return s
}

// AddKeyFrame 追加关键帧，并保持时间顺序
func (s *Sequence) AddKeyFrame(at, x, y float64) {
	s.frames = append(s.frames, KeyFrame{Time: at, X: x, Y: y})
	sort.SliceStable(s.frames, func(i, j int) bool {
		return s.frames[i].Time < s.frames[j].Time
	})
}

// KeyFrames 返回关键帧副本
func (s *Sequence) KeyFrames() []KeyFrame {
	return append([]KeyFrame(nil), s.frames...)
}

// Len 返回关键帧数量
func (s *Sequence) Len() int {
	return len(s.frames)
}

// TotalTime 返回序列总时长（最后一个关键帧的时间）
// 空序列总时长为 0
func (s *Sequence) TotalTime() float64 {
	if len(s.frames) == 0 {
		return 0
	}
	return s.frames[len(s.frames)-1].Time
}

// SetLoop 设置是否循环播放
// 循环序列永远不会结束
func (s *Sequence) SetLoop(loop bool) {
	s.loop = loop
}

// Loop 返回是否循环播放
func (s *Sequence) Loop() bool {
	return s.loop
}

// SetEasing 设置关键帧之间的缓动函数，nil 表示线性
func (s *Sequence) SetEasing(easing utils.EasingFunc) {
	if easing == nil {
		easing = utils.EaseLinear
	}
	s.easing = easing
}

// AddCallback 注册在指定时间触发的回调
//
// 每个回调在一次播放中只触发一次。
// 对循环序列，回调只在第一圈触发。
func (s *Sequence) AddCallback(at float64, fn func()) {
	if fn == nil {
		return
	}
	s.callbacks = append(s.callbacks, &callback{at: at, fn: fn})
}

// OnComplete 在序列结束时（TotalTime）触发回调
func (s *Sequence) OnComplete(fn func()) {
	s.AddCallback(s.TotalTime(), fn)
}

// Due 返回播放时间 elapsed 时应触发但尚未触发的回调，并将其标记为已触发
// 回调按注册时间升序返回；调用方负责执行
func (s *Sequence) Due(elapsed float64) []func() {
	due := make([]*callback, 0)
	for _, cb := range s.callbacks {
		if !cb.fired && cb.at <= elapsed {
			cb.fired = true
			due = append(due, cb)
		}
	}
	sort.SliceStable(due, func(i, j int) bool { return due[i].at < due[j].at })

	result := make([]func(), 0, len(due))
	for _, cb := range due {
		result = append(result, cb.fn)
	}
	return result
}

// Reset 重置所有回调的触发状态，用于重新播放
func (s *Sequence) Reset() {
	for _, cb := range s.callbacks {
		cb.fired = false
	}
}

// LocalTime 将累计播放时间换算为序列内的时间
// 循环序列取模，非循环序列截断到 [0, TotalTime]
func (s *Sequence) LocalTime(elapsed float64) float64 {
	total := s.TotalTime()
	if elapsed < 0 {
		return 0
	}
	if s.loop && total > 0 {
		return math.Mod(elapsed, total)
	}
	if elapsed > total {
		return total
	}
	return elapsed
}

// Finished 检查在累计播放时间 elapsed 时序列是否已结束
func (s *Sequence) Finished(elapsed float64) bool {
	return !s.loop && elapsed >= s.TotalTime()
}

// PositionAt 返回序列内时间 t 的插值位置
// 空序列返回 ok=false
func (s *Sequence) PositionAt(t float64) (x, y float64, ok bool) {
	n := len(s.frames)
	if n == 0 {
		return 0, 0, false
	}
	if t <= s.frames[0].Time {
		return s.frames[0].X, s.frames[0].Y, true
	}
	if t >= s.frames[n-1].Time {
		return s.frames[n-1].X, s.frames[n-1].Y, true
	}

	// 找到 t 所在的区间 [i-1, i]
	i := sort.Search(n, func(i int) bool { return s.frames[i].Time > t })
	from, to := s.frames[i-1], s.frames[i]
	span := to.Time - from.Time
	if span <= 0 {
		return to.X, to.Y, true
	}
	p := s.easing(utils.Clamp01((t - from.Time) / span))
	return utils.Lerp(from.X, to.X, p), utils.Lerp(from.Y, to.Y, p), true
}
