package scenes

import (
	"fmt"
	"image/color"

	"github.com/decker502/duckpond/pkg/config"
	"github.com/decker502/duckpond/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 调试叠加层样式
var (
	hintDotColor     = color.RGBA{R: 255, G: 64, B: 64, A: 220}
	hintDotRadius    = float32(4)
	debugTextOffsetX = 10
	debugTextOffsetY = 10
)

// currentLook 根据排队数量选择当前环境贴图
func (s *DuckScene) currentLook() config.EnvironmentLook {
	return s.cfg.Environment.Select(s.QueuedCount())
}

// Draw 绘制场景
//
// 绘制顺序：背景、池塘、领头鸭、鸭子（池塘中、排队、沿河）、池塘小屋、调试叠加层
func (s *DuckScene) Draw(screen *ebiten.Image) {
	look := s.currentLook()
	s.drawBackground(screen, s.images[look.Background])
	s.drawPond(screen, s.images[look.Pond])

	order := make([]ecs.EntityID, 0, 2+len(s.inPond)+len(s.queued)+len(s.transit))
	order = append(order, s.leaderID)
	order = append(order, s.inPond...)
	order = append(order, s.queued...)
	order = append(order, s.transit...)
	s.renderSystem.DrawEntities(screen, order)
	s.renderSystem.DrawEntity(screen, s.pondHouseID)

	if s.debug {
		s.drawDebugOverlay(screen)
	}
}

// drawBackground 背景拉伸铺满整个屏幕
func (s *DuckScene) drawBackground(screen, bg *ebiten.Image) {
	if bg == nil {
		return
	}
	bounds := bg.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(s.screenWidth/float64(bounds.Dx()), s.screenHeight/float64(bounds.Dy()))
	screen.DrawImage(bg, op)
}

// drawPond 池塘按屏幕宽度等比缩放，以配置位置为中心
func (s *DuckScene) drawPond(screen, pond *ebiten.Image) {
	if pond == nil {
		return
	}
	op := pondDrawOptions(pond, s.cfg.Pond, s.screenWidth, s.screenHeight)
	screen.DrawImage(pond, op)
}

// pondDrawOptions 计算池塘贴图的绘制变换
func pondDrawOptions(pond *ebiten.Image, cfg config.PondConfig, screenWidth, screenHeight float64) *ebiten.DrawImageOptions {
	bounds := pond.Bounds()
	w, h := float64(bounds.Dx()), float64(bounds.Dy())
	scale := screenWidth / w

	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterLinear
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(scale, scale)
	cx, cy := cfg.Position.ToScreen(screenWidth, screenHeight)
	op.GeoM.Translate(cx, cy)
	return op
}

// drawDebugOverlay 绘制路径点和鸭子计数
func (s *DuckScene) drawDebugOverlay(screen *ebiten.Image) {
	for _, p := range s.hints.Points() {
		x, y := p.ToScreen(s.screenWidth, s.screenHeight)
		vector.DrawFilledCircle(screen, float32(x), float32(y), hintDotRadius, hintDotColor, true)
	}
	ebitenutil.DebugPrintAt(screen, s.debugText(), debugTextOffsetX, debugTextOffsetY)
}

// debugText 调试叠加层文本
func (s *DuckScene) debugText() string {
	return fmt.Sprintf("hints: %d  transit: %d  queued: %d  pond: %d  spawned: %d/%d\n[A] spawn  [G] grant  [P] print  [X] clear",
		s.hints.Len(), s.TransitCount(), s.QueuedCount(), s.PondCount(), s.spawned, s.cfg.TargetDucks)
}
