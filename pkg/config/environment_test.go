package config

import "testing"

func testEnvironment() EnvironmentConfig {
	return EnvironmentConfig{
		Default: EnvironmentLook{Background: "default", Pond: "blue"},
		Tiers: []EnvironmentTier{
			{Above: 20, EnvironmentLook: EnvironmentLook{Background: "scorched", Pond: "black"}},
			{Above: 15, EnvironmentLook: EnvironmentLook{Background: "dirt", Pond: "purple"}},
			{Above: 10, EnvironmentLook: EnvironmentLook{Background: "dirt", Pond: "yellow"}},
			{Above: 5, EnvironmentLook: EnvironmentLook{Background: "default", Pond: "green"}},
		},
	}
}

// TestEnvironmentSelect 环境贴图是排队数量的纯阶梯函数
func TestEnvironmentSelect(t *testing.T) {
	env := testEnvironment()

	tests := []struct {
		queued         int
		wantBackground string
		wantPond       string
	}{
		{0, "default", "blue"},
		{5, "default", "blue"},
		{6, "default", "green"},
		{10, "default", "green"},
		{11, "dirt", "yellow"},
		{15, "dirt", "yellow"},
		{16, "dirt", "purple"},
		{20, "dirt", "purple"},
		{21, "scorched", "black"},
		{100, "scorched", "black"},
	}

	for _, tt := range tests {
		got := env.Select(tt.queued)
		if got.Background != tt.wantBackground || got.Pond != tt.wantPond {
			t.Errorf("Select(%d) = %+v, want {%s %s}", tt.queued, got, tt.wantBackground, tt.wantPond)
		}
	}

	// 同一输入多次调用结果一致（不依赖历史）
	_ = env.Select(30)
	if got := env.Select(0); got.Background != "default" {
		t.Errorf("Select(0) after Select(30) = %+v, want default background", got)
	}
}

func TestEnvironmentLooks(t *testing.T) {
	looks := testEnvironment().Looks()
	if len(looks) != 5 {
		t.Fatalf("expected 5 looks, got %d", len(looks))
	}
	if looks[0].Pond != "blue" {
		t.Errorf("default look should come first, got %+v", looks[0])
	}
}
