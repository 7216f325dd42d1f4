package types

import "testing"

func TestDuckStateString(t *testing.T) {
	tests := []struct {
		state DuckState
		want  string
	}{
		{DuckSpawned, "Spawned"},
		{DuckInTransit, "InTransit"},
		{DuckQueued, "Queued"},
		{DuckInPond, "InPond"},
		{DuckState(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("DuckState(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}

// TestDuckStateCanAdvanceTo 状态只能单向推进一步，不能回退或跳跃
func TestDuckStateCanAdvanceTo(t *testing.T) {
	tests := []struct {
		name string
		from DuckState
		to   DuckState
		want bool
	}{
		{"生成->河道", DuckSpawned, DuckInTransit, true},
		{"河道->排队", DuckInTransit, DuckQueued, true},
		{"排队->池塘", DuckQueued, DuckInPond, true},
		{"河道直接进池塘", DuckInTransit, DuckInPond, false},
		{"排队回退到河道", DuckQueued, DuckInTransit, false},
		{"池塘是终态", DuckInPond, DuckInPond + 1, false},
		{"原地不动", DuckQueued, DuckQueued, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanAdvanceTo(tt.to); got != tt.want {
				t.Errorf("%v.CanAdvanceTo(%v) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestNormalizedPointToScreen(t *testing.T) {
	p := NormalizedPoint{X: 0.5, Y: 0.25}
	x, y := p.ToScreen(800, 600)
	if x != 400 || y != 150 {
		t.Errorf("ToScreen = (%v, %v), want (400, 150)", x, y)
	}
}
