// validate_scene 校验场景配置文件，并检查其引用的贴图是否存在
//
// 用法:
//
//	go run ./cmd/validate_scene -config data/duck_scene.yaml -root .
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/decker502/duckpond/pkg/config"
)

func main() {
	configFile := flag.String("config", "data/duck_scene.yaml", "场景配置文件路径")
	root := flag.String("root", ".", "资源根目录（包含 assets/）")
	flag.Parse()

	sceneConfig, err := config.LoadSceneConfig(*configFile)
	if err != nil {
		fmt.Printf("❌ 配置校验失败: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ YAML 格式与 Schema 校验通过\n")
	fmt.Printf("✅ 路径点数量: %d, 目标鸭子: %d, 生成间隔: %.2f 秒\n",
		len(sceneConfig.HintPoints), sceneConfig.TargetDucks, sceneConfig.SpawnInterval(len(sceneConfig.HintPoints)))
	fmt.Printf("✅ 环境阈值: %d 档\n", len(sceneConfig.Environment.Tiers))

	missing := 0
	for _, p := range referencedImages(sceneConfig) {
		if _, err := os.Stat(filepath.Join(*root, filepath.FromSlash(p))); err != nil {
			fmt.Printf("❌ 缺少贴图: %s\n", p)
			missing++
		}
	}

	if missing > 0 {
		fmt.Printf("❌ 有 %d 个贴图缺失\n", missing)
		os.Exit(1)
	}
	fmt.Printf("✅ 所有贴图都存在\n")
}

// referencedImages 返回配置引用的全部贴图路径（去重）
func referencedImages(c *config.SceneConfig) []string {
	seen := make(map[string]bool)
	paths := make([]string, 0)
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			paths = append(paths, p)
		}
	}

	for _, look := range c.Environment.Looks() {
		add(look.Background)
		add(look.Pond)
	}
	add(c.Assets.PondHouse)
	for _, skin := range c.Skins {
		add(c.DuckImagePath(skin))
	}
	return paths
}
