package game

import (
	"strings"
	"testing"

	"github.com/decker502/duckpond/pkg/types"
	"gopkg.in/yaml.v3"
)

// TestHintListAppend 测试屏幕坐标归一化与舍入
func TestHintListAppend(t *testing.T) {
	tests := []struct {
		name   string
		x, y   float64
		w, h   float64
		want   types.NormalizedPoint
		wantOK bool
	}{
		{"屏幕中心", 400, 300, 800, 600, types.NormalizedPoint{X: 0.5, Y: 0.5}, true},
		{"左上角", 0, 0, 800, 600, types.NormalizedPoint{X: 0, Y: 0}, true},
		{"保留三位小数", 100, 100, 300, 300, types.NormalizedPoint{X: 0.333, Y: 0.333}, true},
		{"向上舍入", 200, 200, 300, 300, types.NormalizedPoint{X: 0.667, Y: 0.667}, true},
		{"宽度为零", 10, 10, 0, 600, types.NormalizedPoint{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hints := NewHintList()
			got, ok := hints.Append(tt.x, tt.y, tt.w, tt.h)
			if ok != tt.wantOK {
				t.Fatalf("Append ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Append = %+v, want %+v", got, tt.want)
			}
			wantLen := 0
			if tt.wantOK {
				wantLen = 1
			}
			if hints.Len() != wantLen {
				t.Errorf("Len = %d, want %d", hints.Len(), wantLen)
			}
		})
	}
}

// TestHintListClear 测试清空
func TestHintListClear(t *testing.T) {
	hints := NewHintList(types.NormalizedPoint{X: 0.1, Y: 0.2})
	hints.Append(400, 300, 800, 600)
	if hints.Len() != 2 {
		t.Fatalf("Len = %d, want 2", hints.Len())
	}

	hints.Clear()
	if hints.Len() != 0 || len(hints.Points()) != 0 {
		t.Error("Clear should empty the list")
	}
}

// TestHintListPointsCopy 验证 Points 返回副本
func TestHintListPointsCopy(t *testing.T) {
	seed := []types.NormalizedPoint{{X: 0.1, Y: 0.2}}
	hints := NewHintList(seed...)
	seed[0].X = 0.9

	pts := hints.Points()
	pts[0].Y = 0.9

	got := hints.Points()[0]
	if got.X != 0.1 || got.Y != 0.2 {
		t.Errorf("internal state modified through copies: %+v", got)
	}
}

// TestHintListYAML 验证打印结果可作为配置片段解析
func TestHintListYAML(t *testing.T) {
	hints := NewHintList()
	hints.Append(400, 300, 800, 600)
	hints.Append(80, 60, 800, 600)

	out, err := hints.YAML()
	if err != nil {
		t.Fatalf("YAML failed: %v", err)
	}
	if !strings.HasPrefix(out, "hintPoints:") {
		t.Errorf("unexpected YAML output: %q", out)
	}

	var doc struct {
		HintPoints []types.NormalizedPoint `yaml:"hintPoints"`
	}
	if err := yaml.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	want := []types.NormalizedPoint{{X: 0.5, Y: 0.5}, {X: 0.1, Y: 0.1}}
	if len(doc.HintPoints) != len(want) {
		t.Fatalf("parsed %d points, want %d", len(doc.HintPoints), len(want))
	}
	for i := range want {
		if doc.HintPoints[i] != want[i] {
			t.Errorf("point %d = %+v, want %+v", i, doc.HintPoints[i], want[i])
		}
	}
}
