package components

import "github.com/decker502/duckpond/pkg/types"

// DuckComponent 鸭子的身份与视觉状态
type DuckComponent struct {
	Skin      string          // 皮肤标识（对应 assets/ducks/<skin>.png）
	BaseScale float64         // 未放大时的缩放
	Speed     float64         // 每秒经过的路径段数（1 / 每段耗时）
	State     types.DuckState // 生命周期状态
	IsLeader  bool            // 是否为领头鸭（不参与排队）
	Expanded  bool            // 是否处于悬停放大状态
}
