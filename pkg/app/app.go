// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/decker502/duckpond/pkg/config"
	"github.com/decker502/duckpond/pkg/embedded"
	"github.com/decker502/duckpond/pkg/entities"
	"github.com/decker502/duckpond/pkg/game"
	"github.com/decker502/duckpond/pkg/scenes"
	"github.com/decker502/duckpond/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// SceneConfigPath 内嵌场景配置路径
const SceneConfigPath = "data/duck_scene.yaml"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Debug 调试模式：清空路径点，不自动生成鸭子，启用 A/P/X/G 调试按键
	Debug bool
	// SceneConfigFile 磁盘上的场景配置文件，为空则使用内嵌的 data/duck_scene.yaml
	SceneConfigFile string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	duckScene    *scenes.DuckScene
	sceneConfig  *config.SceneConfig
	hints        *game.HintList
	verbose      bool
	debug        bool

	// out 调试按键 P 打印路径点的目标
	out io.Writer

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	sceneConfig, err := loadSceneConfig(cfg.SceneConfigFile)
	if err != nil {
		return nil, err
	}
	log.Printf("[Config] 场景配置加载完成: %d 个路径点, 目标 %d 只鸭子", len(sceneConfig.HintPoints), sceneConfig.TargetDucks)

	resourceManager := game.NewResourceManager(embedded.FS())
	return NewAppWith(resourceManager, sceneConfig, cfg, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// loadSceneConfig 读取磁盘上的场景配置，未指定时读取内嵌配置
func loadSceneConfig(file string) (*config.SceneConfig, error) {
	if file != "" {
		sceneConfig, err := config.LoadSceneConfig(file)
		if err != nil {
			return nil, fmt.Errorf("场景配置加载失败: %w", err)
		}
		return sceneConfig, nil
	}

	data, err := embedded.ReadFile(SceneConfigPath)
	if err != nil {
		return nil, fmt.Errorf("场景配置读取失败: %w", err)
	}
	sceneConfig, err := config.ParseSceneConfig(data)
	if err != nil {
		return nil, fmt.Errorf("场景配置加载失败: %w", err)
	}
	return sceneConfig, nil
}

// NewAppWith 使用给定的资源加载器和场景配置创建应用
//
// 调试模式下路径点列表初始为空，用于重新绘制河道。
func NewAppWith(rm entities.ResourceLoader, sceneConfig *config.SceneConfig, cfg Config, rng *rand.Rand) (*App, error) {
	hints := game.NewHintList(sceneConfig.HintPoints...)
	if cfg.Debug {
		hints.Clear()
		log.Printf("[App] 调试模式: 路径点已清空")
	}

	duckScene, err := scenes.NewDuckScene(rm, sceneConfig, hints, cfg.Debug, rng)
	if err != nil {
		return nil, fmt.Errorf("鸭子场景初始化失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.AddScene(scenes.DuckSceneName, duckScene)
	if err := sceneManager.SetScene(scenes.DuckSceneName); err != nil {
		return nil, err
	}

	return &App{
		sceneManager: sceneManager,
		duckScene:    duckScene,
		sceneConfig:  sceneConfig,
		hints:        hints,
		verbose:      cfg.Verbose,
		debug:        cfg.Debug,
		out:          os.Stdout,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.sceneConfig.Screen.Width, a.sceneConfig.Screen.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.sceneConfig.Screen.Width, a.sceneConfig.Screen.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	utils.UpdateLastTouchPosition()
	if released, x, y := utils.IsPointerJustReleased(); released {
		a.RecordClick(x, y)
	}

	// 移动端没有键盘
	if a.debug && !utils.IsMobile() {
		for _, key := range utils.JustReleasedKeys(ebiten.KeyA, ebiten.KeyP, ebiten.KeyX, ebiten.KeyG) {
			a.HandleDebugKey(key)
		}
	}

	a.sceneManager.Update(config.DeltaTime)
	return nil
}

// toggleFullscreen 切换全屏，退出全屏后延迟恢复窗口大小
func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		return
	}
	ebiten.SetFullscreen(true)
}

// RecordClick 将逻辑屏幕坐标归一化后追加到路径点列表
func (a *App) RecordClick(x, y int) {
	p, ok := a.hints.Append(float64(x), float64(y), float64(a.sceneConfig.Screen.Width), float64(a.sceneConfig.Screen.Height))
	if ok {
		log.Printf("[App] 记录路径点 #%d: (%.3f, %.3f)", a.hints.Len(), p.X, p.Y)
	}
}

// HandleDebugKey 处理调试按键（按键松开时触发）
//
//   - A: 生成一只鸭子
//   - P: 打印路径点列表（YAML 片段）
//   - X: 清空路径点列表
//   - G: 随机放行一只排队的鸭子
//
// 非调试模式或按键未处理时返回 false。
func (a *App) HandleDebugKey(key ebiten.Key) bool {
	if !a.debug {
		return false
	}

	switch key {
	case ebiten.KeyA:
		if a.sceneManager.IsCurrent(scenes.DuckSceneName) {
			a.duckScene.SpawnDuck()
		}
	case ebiten.KeyP:
		out, err := a.hints.YAML()
		if err != nil {
			log.Printf("[App] 打印路径点失败: %v", err)
			return false
		}
		fmt.Fprint(a.out, out)
	case ebiten.KeyX:
		a.hints.Clear()
		log.Printf("[App] 路径点已清空")
	case ebiten.KeyG:
		if a.sceneManager.IsCurrent(scenes.DuckSceneName) {
			a.duckScene.GrantRandomEntry()
		}
	default:
		return false
	}
	return true
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充暖黑色背景（全屏时左右两边）
	screen.Fill(color.RGBA{R: 0x1C, G: 0x1C, B: 0x1C, A: 0xFF})
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear // 使用线性滤波减少锯齿和模糊
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.sceneConfig.Screen.Width, a.sceneConfig.Screen.Height
}

// SceneConfig 返回当前使用的场景配置
func (a *App) SceneConfig() *config.SceneConfig {
	return a.sceneConfig
}

// Hints 返回路径点列表
func (a *App) Hints() *game.HintList {
	return a.hints
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
