package main

import (
	"flag"
	"log"

	"github.com/decker502/duckpond/pkg/app"
	"github.com/decker502/duckpond/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	debug := flag.Bool("debug", false, "调试模式：清空路径点，启用 A/P/X/G 调试按键")
	configFile := flag.String("config", "", "场景配置文件路径（默认使用内嵌的 data/duck_scene.yaml）")
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(assetsFS, dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:         *verbose,
		Debug:           *debug,
		SceneConfigFile: *configFile,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	screen := gameApp.SceneConfig().Screen
	ebiten.SetWindowSize(screen.Width, screen.Height)
	ebiten.SetWindowTitle(screen.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
