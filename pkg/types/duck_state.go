// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

// DuckState 鸭子的生命周期状态
//
// 状态只会单向推进：Spawned -> InTransit -> Queued -> InPond
type DuckState int

const (
	// DuckSpawned 刚创建，尚未开始沿河移动
	DuckSpawned DuckState = iota
	// DuckInTransit 沿河道路径移动中
	DuckInTransit
	// DuckQueued 在池塘小屋外绕圈排队
	DuckQueued
	// DuckInPond 已被放行进入池塘（终态）
	DuckInPond
)

// String 返回鸭子状态的字符串表示
func (s DuckState) String() string {
	switch s {
	case DuckSpawned:
		return "Spawned"
	case DuckInTransit:
		return "InTransit"
	case DuckQueued:
		return "Queued"
	case DuckInPond:
		return "InPond"
	default:
		return "Unknown"
	}
}

// CanAdvanceTo 检查状态迁移是否合法（只允许前进到下一个状态）
func (s DuckState) CanAdvanceTo(next DuckState) bool {
	return next == s+1 && next <= DuckInPond
}
