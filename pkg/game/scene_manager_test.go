package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
}

// Update records that Update was called and stores the deltaTime.
func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

// Draw records that Draw was called.
func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

// enterScene 记录 Enter 调用
type enterScene struct {
	MockScene
	entered  int
	previous Scene
}

func (e *enterScene) Enter(previous Scene) {
	e.entered++
	e.previous = previous
}

// TestNewSceneManager verifies that NewSceneManager creates a valid instance.
func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm == nil {
		t.Fatal("NewSceneManager() returned nil")
	}
	if sm.CurrentScene() != nil {
		t.Error("Expected current scene to be nil initially")
	}
	if sm.IsCurrent("") {
		t.Error("IsCurrent should be false when no scene is active")
	}
}

// TestSceneManagerSetScene 验证按名称切换场景
func TestSceneManagerSetScene(t *testing.T) {
	sm := NewSceneManager()
	pond := &MockScene{}
	sm.AddScene("pond", pond)

	if err := sm.SetScene("pond"); err != nil {
		t.Fatalf("SetScene failed: %v", err)
	}
	if sm.CurrentScene() != pond {
		t.Error("SetScene did not set the current scene correctly")
	}
	if !sm.IsCurrent("pond") {
		t.Error("IsCurrent(pond) should be true")
	}
	if sm.IsCurrent("menu") {
		t.Error("IsCurrent(menu) should be false")
	}
	if sm.CurrentName() != "pond" {
		t.Errorf("CurrentName = %q, want pond", sm.CurrentName())
	}
}

// TestSceneManagerSetSceneUnknown 验证未注册的名称返回错误且不改变当前场景
func TestSceneManagerSetSceneUnknown(t *testing.T) {
	sm := NewSceneManager()
	pond := &MockScene{}
	sm.AddScene("pond", pond)
	_ = sm.SetScene("pond")

	if err := sm.SetScene("missing"); err == nil {
		t.Fatal("expected error for unknown scene")
	}
	if sm.CurrentScene() != pond {
		t.Error("current scene changed after failed SetScene")
	}
}

// TestSceneManagerEnter 验证 Enter 收到切换前的场景
func TestSceneManagerEnter(t *testing.T) {
	sm := NewSceneManager()
	first := &enterScene{}
	second := &enterScene{}
	sm.AddScene("first", first)
	sm.AddScene("second", second)

	if err := sm.SetScene("first"); err != nil {
		t.Fatal(err)
	}
	if first.entered != 1 || first.previous != nil {
		t.Errorf("first: entered=%d previous=%v, want 1/nil", first.entered, first.previous)
	}

	if err := sm.SetScene("second"); err != nil {
		t.Fatal(err)
	}
	if second.entered != 1 {
		t.Errorf("second.entered = %d, want 1", second.entered)
	}
	if second.previous != Scene(first) {
		t.Error("second should receive first as previous scene")
	}
}

// TestSceneManagerUpdate verifies that Update calls the current scene's Update method.
func TestSceneManagerUpdate(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.AddScene("mock", mockScene)
	_ = sm.SetScene("mock")

	deltaTime := 0.016 // ~60 FPS
	sm.Update(deltaTime)

	if !mockScene.updateCalled {
		t.Error("Scene's Update method was not called")
	}
	if mockScene.deltaTime != deltaTime {
		t.Errorf("Expected deltaTime %f, got %f", deltaTime, mockScene.deltaTime)
	}
}

// TestSceneManagerDraw verifies that Draw calls the current scene's Draw method.
func TestSceneManagerDraw(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.AddScene("mock", mockScene)
	_ = sm.SetScene("mock")

	sm.Draw(ebiten.NewImage(10, 10))

	if !mockScene.drawCalled {
		t.Error("Scene's Draw method was not called")
	}
}

// TestSceneManagerNoScene verifies that Update and Draw don't panic with no active scene.
func TestSceneManagerNoScene(t *testing.T) {
	sm := NewSceneManager()
	sm.Update(0.016)
	sm.Draw(ebiten.NewImage(10, 10))
}
