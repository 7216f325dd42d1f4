package config

// 布局配置常量
// 所有坐标使用逻辑屏幕坐标（原点左上角，Y 轴向下），与窗口实际大小无关

const (
	// GameWindowWidth 默认逻辑屏幕宽度
	GameWindowWidth = 800

	// GameWindowHeight 默认逻辑屏幕高度
	GameWindowHeight = 600

	// WindowTitle 默认窗口标题
	WindowTitle = "Duck Pond"

	// HintPrecision 设计辅助点击坐标保留的小数位数
	HintPrecision = 3

	// DeltaTime 固定逻辑帧时长（秒），Ebitengine 默认 60 TPS
	DeltaTime = 1.0 / 60.0
)
