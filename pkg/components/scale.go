package components

// ScaleComponent 存储实体级别的缩放因子
// 用于在渲染时对整个实体进行缩放（如鸭子悬停时放大）
type ScaleComponent struct {
	// ScaleX X轴缩放因子（1.0 = 原始大小，0.5 = 50%，2.0 = 200%）
	ScaleX float64

	// ScaleY Y轴缩放因子（1.0 = 原始大小，0.5 = 50%，2.0 = 200%）
	ScaleY float64
}
