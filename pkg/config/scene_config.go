package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path"

	"github.com/decker502/duckpond/pkg/types"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed duck_scene.schema.json
var sceneSchemaJSON string

// SceneConfig 鸭子场景配置（data/duck_scene.yaml）
type SceneConfig struct {
	Screen               ScreenConfig            `yaml:"screen"`
	Assets               AssetsConfig            `yaml:"assets"`
	Skins                []string                `yaml:"skins"`                // 鸭子皮肤列表，生成时随机选择
	TargetDucks          int                     `yaml:"targetDucks"`          // 自动生成的鸭子总数
	SpawnSecondsPerPoint float64                 `yaml:"spawnSecondsPerPoint"` // 生成间隔 = 路径点数 * 此值 / TargetDucks
	HintPoints           []types.NormalizedPoint `yaml:"hintPoints"`           // 设计好的河道路径点
	Leader               DuckProfile             `yaml:"leader"`               // 领头鸭
	Duck                 DuckProfile             `yaml:"duck"`                 // 普通鸭子
	HoverScale           float64                 `yaml:"hoverScale"`           // 悬停放大倍数
	PondHouse            PondHouseConfig         `yaml:"pondHouse"`
	Pond                 PondConfig              `yaml:"pond"`
	Environment          EnvironmentConfig       `yaml:"environment"`
}

// ScreenConfig 逻辑屏幕配置
type ScreenConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// AssetsConfig 资源路径配置
type AssetsConfig struct {
	PondHouse string `yaml:"pondHouse"` // 池塘小屋图片
	DuckDir   string `yaml:"duckDir"`   // 鸭子皮肤目录，图片为 <duckDir>/<skin>.png
}

// DuckProfile 鸭子外观与速度
type DuckProfile struct {
	Scale             float64 `yaml:"scale"`             // 精灵缩放
	SecondsPerSegment float64 `yaml:"secondsPerSegment"` // 相邻路径点之间的耗时
}

// PondHouseConfig 池塘小屋配置
type PondHouseConfig struct {
	Position        types.NormalizedPoint `yaml:"position"`
	Scale           float64               `yaml:"scale"`
	SeeThroughAlpha float64               `yaml:"seeThroughAlpha"` // 悬停时的不透明度
	CircleRadius    float64               `yaml:"circleRadius"`    // 排队绕圈半径（像素）
	CirclePeriod    float64               `yaml:"circlePeriod"`    // 绕一圈耗时（秒）
	CircleSteps     int                   `yaml:"circleSteps"`     // 绕圈折线段数
}

// PondConfig 池塘配置
type PondConfig struct {
	Position      types.NormalizedPoint `yaml:"position"`      // 池塘中心
	EntryDuration float64               `yaml:"entryDuration"` // 进入池塘动画时长（秒）
	EntrySpread   float64               `yaml:"entrySpread"`   // 落点随机范围（屏幕宽度比例）
}

// EnvironmentLook 背景与池塘贴图组合
type EnvironmentLook struct {
	Background string `yaml:"background"`
	Pond       string `yaml:"pond"`
}

// EnvironmentTier 排队数量超过 Above 时使用的贴图
type EnvironmentTier struct {
	Above           int `yaml:"above"`
	EnvironmentLook `yaml:",inline"`
}

// EnvironmentConfig 环境退化配置
// Tiers 必须按 Above 严格降序排列，都不满足时使用 Default
type EnvironmentConfig struct {
	Default EnvironmentLook   `yaml:"default"`
	Tiers   []EnvironmentTier `yaml:"tiers"`
}

// DuckImagePath 返回皮肤对应的图片路径
func (c *SceneConfig) DuckImagePath(skin string) string {
	return path.Join(c.Assets.DuckDir, skin+".png")
}

// SpawnInterval 返回生成计时器间隔（秒）
// 公式：路径点数 * SpawnSecondsPerPoint / TargetDucks
func (c *SceneConfig) SpawnInterval(hintCount int) float64 {
	if c.TargetDucks <= 0 {
		return 0
	}
	return float64(hintCount) * c.SpawnSecondsPerPoint / float64(c.TargetDucks)
}

// LoadSceneConfig 从 YAML 文件加载场景配置
func LoadSceneConfig(filePath string) (*SceneConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene config file: %w", err)
	}
	return ParseSceneConfig(data)
}

// ParseSceneConfig 解析并校验场景配置
//
// 校验分两步：
//  1. JSON Schema（结构、类型、取值范围）
//  2. validateSceneConfig（跨字段约束，如阈值降序）
func ParseSceneConfig(data []byte) (*SceneConfig, error) {
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse scene config YAML: %w", err)
	}
	if err := validateSceneSchema(raw); err != nil {
		return nil, fmt.Errorf("scene config does not match schema: %w", err)
	}

	config := defaultSceneConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse scene config YAML: %w", err)
	}

	if err := validateSceneConfig(config); err != nil {
		return nil, fmt.Errorf("invalid scene config: %w", err)
	}
	return config, nil
}

// defaultSceneConfig 可选字段的默认值
func defaultSceneConfig() *SceneConfig {
	return &SceneConfig{
		Screen:               ScreenConfig{Width: GameWindowWidth, Height: GameWindowHeight, Title: WindowTitle},
		SpawnSecondsPerPoint: 10,
		HoverScale:           1.5,
		PondHouse: PondHouseConfig{
			SeeThroughAlpha: 0.4,
			CircleRadius:    40,
			CirclePeriod:    4,
			CircleSteps:     16,
		},
		Pond: PondConfig{
			EntryDuration: 2,
			EntrySpread:   0.15,
		},
	}
}

var sceneSchema *jsonschema.Schema

// compiledSceneSchema 延迟编译内嵌的 JSON Schema
func compiledSceneSchema() (*jsonschema.Schema, error) {
	if sceneSchema != nil {
		return sceneSchema, nil
	}
	schema, err := jsonschema.CompileString("duck_scene.schema.json", sceneSchemaJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to compile scene schema: %w", err)
	}
	sceneSchema = schema
	return schema, nil
}

// validateSceneSchema 使用 JSON Schema 校验 YAML 解码后的数据
// YAML 数值类型先经 JSON 往返转换为 jsonschema 需要的表示
func validateSceneSchema(raw interface{}) error {
	schema, err := compiledSceneSchema()
	if err != nil {
		return err
	}

	buf, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("failed to convert scene config to JSON: %w", err)
	}
	decoder := json.NewDecoder(bytes.NewReader(buf))
	decoder.UseNumber()
	var doc interface{}
	if err := decoder.Decode(&doc); err != nil {
		return fmt.Errorf("failed to convert scene config to JSON: %w", err)
	}
	return schema.Validate(doc)
}

// validateSceneConfig 验证配置的有效性
func validateSceneConfig(config *SceneConfig) error {
	if config.Screen.Width <= 0 || config.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", config.Screen.Width, config.Screen.Height)
	}

	if len(config.Skins) == 0 {
		return fmt.Errorf("skins cannot be empty")
	}
	for i, skin := range config.Skins {
		if skin == "" {
			return fmt.Errorf("skin %d cannot be empty", i)
		}
	}

	if config.TargetDucks <= 0 {
		return fmt.Errorf("targetDucks must be > 0, got %d", config.TargetDucks)
	}
	if config.SpawnSecondsPerPoint < 0 {
		return fmt.Errorf("spawnSecondsPerPoint must be >= 0, got %v", config.SpawnSecondsPerPoint)
	}

	for i, p := range config.HintPoints {
		if p.X < 0 || p.X > 1 || p.Y < 0 || p.Y > 1 {
			return fmt.Errorf("hint point %d (%v, %v) must be within [0, 1]", i, p.X, p.Y)
		}
	}

	for name, profile := range map[string]DuckProfile{"leader": config.Leader, "duck": config.Duck} {
		if profile.Scale <= 0 {
			return fmt.Errorf("%s.scale must be > 0, got %v", name, profile.Scale)
		}
		if profile.SecondsPerSegment <= 0 {
			return fmt.Errorf("%s.secondsPerSegment must be > 0, got %v", name, profile.SecondsPerSegment)
		}
	}

	if config.HoverScale <= 0 {
		return fmt.Errorf("hoverScale must be > 0, got %v", config.HoverScale)
	}
	if a := config.PondHouse.SeeThroughAlpha; a <= 0 || a > 1 {
		return fmt.Errorf("pondHouse.seeThroughAlpha must be in (0, 1], got %v", a)
	}

	if config.Environment.Default.Background == "" || config.Environment.Default.Pond == "" {
		return fmt.Errorf("environment.default must name a background and a pond")
	}
	for i, tier := range config.Environment.Tiers {
		if tier.Above < 0 {
			return fmt.Errorf("environment tier %d: above must be >= 0, got %d", i, tier.Above)
		}
		if i > 0 && tier.Above >= config.Environment.Tiers[i-1].Above {
			return fmt.Errorf("environment tiers must be sorted by above in strictly descending order (tier %d: %d >= %d)",
				i, tier.Above, config.Environment.Tiers[i-1].Above)
		}
	}

	return nil
}
