package types

// NormalizedPoint 归一化坐标点
// X、Y 均为相对于逻辑屏幕宽高的比例（0.0 ~ 1.0），Y 轴向下
type NormalizedPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// ToScreen 将归一化坐标转换为屏幕像素坐标
func (p NormalizedPoint) ToScreen(width, height float64) (float64, float64) {
	return p.X * width, p.Y * height
}
