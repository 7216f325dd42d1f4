package components

// PondHouseComponent 池塘小屋
// 悬停时变为半透明，方便看到后面排队的鸭子
type PondHouseComponent struct {
	SeeThrough      bool    // 当前是否半透明
	SeeThroughAlpha float64 // 半透明时的不透明度
}
