package components

// TimerComponent 通用计时器组件
// 用于处理需要时间延迟的行为（如鸭子生成间隔）
type TimerComponent struct {
	Name        string  // 计时器名称，如 "duck_spawn"
	TargetTime  float64 // 目标时间（秒）
	CurrentTime float64 // 当前已过时间（秒）
	IsReady     bool    // 计时器是否已完成（单次计时器）
	Repeating   bool    // 是否重复触发
	OnFire      func()  // 到时回调
}
