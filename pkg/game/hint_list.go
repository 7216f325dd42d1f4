package game

import (
	"fmt"

	"github.com/decker502/duckpond/pkg/config"
	"github.com/decker502/duckpond/pkg/types"
	"github.com/decker502/duckpond/pkg/utils"
	"gopkg.in/yaml.v3"
)

// HintList 河道路径提示点列表
//
// 点以归一化坐标保存，保留 config.HintPrecision 位小数。
// 由 App 持有，以指针形式传给场景；会话内只追加或清空，从不写盘。
type HintList struct {
	points []types.NormalizedPoint
}

// hintListDocument 打印时使用的 YAML 结构，可直接粘贴到 duck_scene.yaml
type hintListDocument struct {
	HintPoints []types.NormalizedPoint `yaml:"hintPoints,flow"`
}

// NewHintList 以给定的点初始化列表（点会被复制）
func NewHintList(points ...types.NormalizedPoint) *HintList {
	h := &HintList{points: make([]types.NormalizedPoint, 0, len(points))}
	h.points = append(h.points, points...)
	return h
}

// Append 记录一个屏幕坐标，按逻辑屏幕尺寸归一化后追加
// 屏幕尺寸非正时忽略该点并返回 false
func (h *HintList) Append(x, y, screenWidth, screenHeight float64) (types.NormalizedPoint, bool) {
	if screenWidth <= 0 || screenHeight <= 0 {
		return types.NormalizedPoint{}, false
	}
	p := types.NormalizedPoint{
		X: utils.RoundTo(x/screenWidth, config.HintPrecision),
		Y: utils.RoundTo(y/screenHeight, config.HintPrecision),
	}
	h.points = append(h.points, p)
	return p, true
}

// Points 返回当前点的副本
func (h *HintList) Points() []types.NormalizedPoint {
	out := make([]types.NormalizedPoint, len(h.points))
	copy(out, h.points)
	return out
}

// Len 返回点的数量
func (h *HintList) Len() int {
	return len(h.points)
}

// Clear 清空列表
func (h *HintList) Clear() {
	h.points = h.points[:0]
}

// YAML 将列表序列化为 `hintPoints: [...]` 片段
func (h *HintList) YAML() (string, error) {
	out, err := yaml.Marshal(hintListDocument{HintPoints: h.Points()})
	if err != nil {
		return "", fmt.Errorf("failed to marshal hint points: %w", err)
	}
	return string(out), nil
}
