package sequence

import (
	"math"

	"github.com/decker502/duckpond/pkg/types"
	"github.com/decker502/duckpond/pkg/utils"
)

// River 根据归一化路径点构建沿河路径
//
// 第 i 个点位于 i*secondsPerSegment 秒，坐标换算到 width x height 的屏幕。
// 没有路径点时返回空序列。
func River(points []types.NormalizedPoint, width, height, secondsPerSegment float64) *Sequence {
	s := New()
	for i, p := range points {
		x, y := p.ToScreen(width, height)
		s.AddKeyFrame(float64(i)*secondsPerSegment, x, y)
	}
	return s
}

// Circle 构建围绕 (cx, cy) 的循环绕圈路径
//
// 从 startAngle（弧度）出发，steps 段折线逼近一整圈，耗时 period 秒。
func Circle(cx, cy, radius, period float64, steps int, startAngle float64) *Sequence {
	if steps < 3 {
		steps = 3
	}
	s := New()
	for i := 0; i <= steps; i++ {
		angle := startAngle + 2*math.Pi*float64(i)/float64(steps)
		s.AddKeyFrame(period*float64(i)/float64(steps), cx+radius*math.Cos(angle), cy+radius*math.Sin(angle))
	}
	s.SetLoop(true)
	return s
}

// Line 构建从 (fromX, fromY) 到 (toX, toY) 的直线路径，缓出结束
func Line(fromX, fromY, toX, toY, duration float64) *Sequence {
	s := New(
		KeyFrame{Time: 0, X: fromX, Y: fromY},
		KeyFrame{Time: duration, X: toX, Y: toY},
	)
	s.SetEasing(utils.EaseOutQuad)
	return s
}
