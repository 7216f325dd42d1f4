package scenes

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/decker502/duckpond/internal/sequence"
	"github.com/decker502/duckpond/pkg/components"
	"github.com/decker502/duckpond/pkg/config"
	"github.com/decker502/duckpond/pkg/ecs"
	"github.com/decker502/duckpond/pkg/entities"
	"github.com/decker502/duckpond/pkg/events"
	"github.com/decker502/duckpond/pkg/game"
	"github.com/decker502/duckpond/pkg/systems"
	"github.com/decker502/duckpond/pkg/types"
	"github.com/decker502/duckpond/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// DuckSceneName 鸭子场景在 SceneManager 中的注册名
const DuckSceneName = "swimming_scene"

// spawnTimerName 生成计时器名称
const spawnTimerName = "duck_spawn"

// DuckScene 鸭子沿河游向池塘小屋、排队、被放行进入池塘的场景
//
// 每只生成的鸭子在任意时刻恰好属于 transit、queued、inPond 三个集合之一。
// 领头鸭不属于任何集合，只沿河游一遍。
type DuckScene struct {
	rm    entities.ResourceLoader
	cfg   *config.SceneConfig
	hints *game.HintList
	debug bool
	rng   *rand.Rand

	entityManager *ecs.EntityManager
	registry      *events.Registry
	timerSystem   *systems.TimerSystem
	pathSystem    *systems.PathSystem
	hoverSystem   *systems.HoverSystem
	renderSystem  *systems.RenderSystem
	cursor        systems.CursorFunc

	screenWidth  float64
	screenHeight float64

	// 背景与池塘贴图（按路径索引）
	images map[string]*ebiten.Image

	pondHouseID ecs.EntityID
	leaderID    ecs.EntityID

	transit []ecs.EntityID // 沿河移动中
	queued  []ecs.EntityID // 在小屋外排队
	inPond  []ecs.EntityID // 已进入池塘

	spawnTimerID ecs.EntityID
	spawned      int
	entered      bool
	started      bool
}

// NewDuckScene 创建鸭子场景并加载全部贴图
//
// 参数:
//   - rm: 图片加载器（通常为 *game.ResourceManager）
//   - cfg: 已校验的场景配置
//   - hints: 河道路径点列表，由 App 持有
//   - debug: 调试模式下进入场景不会自动开始领头鸭和生成计时器
//   - rng: 随机源，nil 时使用当前时间作为种子
//
// 任何贴图加载失败都会返回错误。
func NewDuckScene(rm entities.ResourceLoader, cfg *config.SceneConfig, hints *game.HintList, debug bool, rng *rand.Rand) (*DuckScene, error) {
	if rm == nil {
		return nil, fmt.Errorf("resource loader cannot be nil")
	}
	if cfg == nil {
		return nil, fmt.Errorf("scene config cannot be nil")
	}
	if hints == nil {
		hints = game.NewHintList()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s := &DuckScene{
		rm:            rm,
		cfg:           cfg,
		hints:         hints,
		debug:         debug,
		rng:           rng,
		entityManager: ecs.NewEntityManager(),
		registry:      events.NewRegistry(),
		cursor:        utils.GetPointerPosition,
		screenWidth:   float64(cfg.Screen.Width),
		screenHeight:  float64(cfg.Screen.Height),
		images:        make(map[string]*ebiten.Image),
	}
	s.timerSystem = systems.NewTimerSystem(s.entityManager)
	s.pathSystem = systems.NewPathSystem(s.entityManager)
	s.hoverSystem = systems.NewHoverSystem(s.entityManager, s.registry, func() (int, int) {
		return s.cursor()
	})
	s.renderSystem = systems.NewRenderSystem(s.entityManager)

	if err := s.setup(); err != nil {
		return nil, err
	}
	return s, nil
}

// setup 加载贴图，创建池塘小屋和领头鸭
func (s *DuckScene) setup() error {
	for _, look := range s.cfg.Environment.Looks() {
		for _, p := range []string{look.Background, look.Pond} {
			if _, ok := s.images[p]; ok {
				continue
			}
			img, err := s.rm.LoadImage(p)
			if err != nil {
				return fmt.Errorf("failed to load environment texture: %w", err)
			}
			s.images[p] = img
		}
	}
	for _, skin := range s.cfg.Skins {
		if _, err := s.rm.LoadImage(s.cfg.DuckImagePath(skin)); err != nil {
			return fmt.Errorf("failed to load duck skin %q: %w", skin, err)
		}
	}

	houseX, houseY := s.cfg.PondHouse.Position.ToScreen(s.screenWidth, s.screenHeight)
	houseID, err := entities.NewPondHouseEntity(
		s.entityManager, s.rm, s.cfg.Assets.PondHouse,
		houseX, houseY, s.cfg.PondHouse.Scale, s.cfg.PondHouse.SeeThroughAlpha,
	)
	if err != nil {
		return err
	}
	s.pondHouseID = houseID
	s.registry.Hover(houseID, func(id ecs.EntityID) {
		entities.SetPondHouseSeeThrough(s.entityManager, id, true)
	})
	s.registry.Out(houseID, func(id ecs.EntityID) {
		entities.SetPondHouseSeeThrough(s.entityManager, id, false)
	})

	leaderID, err := s.newDuck(s.cfg.Leader, true)
	if err != nil {
		return err
	}
	s.leaderID = leaderID

	s.transit = make([]ecs.EntityID, 0, s.cfg.TargetDucks)
	s.queued = make([]ecs.EntityID, 0, s.cfg.TargetDucks)
	s.inPond = make([]ecs.EntityID, 0, s.cfg.TargetDucks)

	log.Printf("[DuckScene] 场景初始化完成: %d 个皮肤, %d 个路径点, 目标 %d 只鸭子",
		len(s.cfg.Skins), s.hints.Len(), s.cfg.TargetDucks)
	return nil
}

// newDuck 以随机皮肤创建一只鸭子，位置在路径起点（没有路径点时在屏幕外）
func (s *DuckScene) newDuck(profile config.DuckProfile, leader bool) (ecs.EntityID, error) {
	skin := s.cfg.Skins[s.rng.Intn(len(s.cfg.Skins))]

	x, y := -s.screenWidth, -s.screenHeight
	if s.hints.Len() > 0 {
		x, y = s.hints.Points()[0].ToScreen(s.screenWidth, s.screenHeight)
	}

	return entities.NewDuckEntity(s.entityManager, s.rm, entities.DuckOptions{
		Skin:      skin,
		ImagePath: s.cfg.DuckImagePath(skin),
		Scale:     profile.Scale,
		Speed:     1 / profile.SecondsPerSegment,
		IsLeader:  leader,
		X:         x,
		Y:         y,
	})
}

// riverSequence 按鸭子自身速度，根据当前路径点构建沿河路径
func (s *DuckScene) riverSequence(id ecs.EntityID) *sequence.Sequence {
	speed := 1.0
	if duck, ok := ecs.GetComponent[*components.DuckComponent](s.entityManager, id); ok && duck.Speed > 0 {
		speed = duck.Speed
	}
	return sequence.River(s.hints.Points(), s.screenWidth, s.screenHeight, 1/speed)
}

// Enter 场景成为当前场景时调用
//
// 非调试模式下开始领头鸭的路径，并创建重复的生成计时器。
// 没有路径点时推迟到第一个路径点出现后的 Update。
func (s *DuckScene) Enter(previous game.Scene) {
	if s.debug || s.entered {
		return
	}
	s.entered = true

	if s.hints.Len() == 0 {
		log.Printf("[DuckScene] 没有路径点，等待路径点后启动领头鸭和生成计时器")
		return
	}
	s.start()
}

// start 开始领头鸭的路径并创建生成计时器
//
// 计时器间隔 = 路径点数 * SpawnSecondsPerPoint / TargetDucks。
func (s *DuckScene) start() {
	s.started = true

	s.advance(s.leaderID, types.DuckInTransit)
	systems.PlaySequence(s.entityManager, s.leaderID, s.riverSequence(s.leaderID))

	interval := s.cfg.SpawnInterval(s.hints.Len())
	s.spawnTimerID = s.entityManager.CreateEntity()
	s.entityManager.AddComponent(s.spawnTimerID, &components.TimerComponent{
		Name:       spawnTimerName,
		TargetTime: interval,
		Repeating:  true,
		OnFire: func() {
			s.SpawnDuck()
		},
	})
	log.Printf("[DuckScene] 生成计时器启动: 间隔 %.2f 秒", interval)
}

// SpawnDuck 生成一只鸭子并让它沿河游向池塘小屋
//
// 没有路径点时不做任何事并返回 false。
// 生成数量达到 TargetDucks 时停止生成计时器；手动生成不受此限制。
func (s *DuckScene) SpawnDuck() bool {
	if s.hints.Len() == 0 {
		return false
	}

	id, err := s.newDuck(s.cfg.Duck, false)
	if err != nil {
		log.Printf("[DuckScene] 生成鸭子失败: %v", err)
		return false
	}

	s.registry.Hover(id, func(id ecs.EntityID) {
		entities.SetDuckExpanded(s.entityManager, id, true, s.cfg.HoverScale)
	})
	s.registry.Out(id, func(id ecs.EntityID) {
		entities.SetDuckExpanded(s.entityManager, id, false, s.cfg.HoverScale)
	})

	s.advance(id, types.DuckInTransit)
	s.transit = append(s.transit, id)

	river := s.riverSequence(id)
	river.OnComplete(func() {
		s.enterPondHouse(id)
	})
	systems.PlaySequence(s.entityManager, id, river)

	s.spawned++
	if s.spawned >= s.cfg.TargetDucks {
		s.stopSpawnTimer()
	}
	return true
}

// stopSpawnTimer 移除生成计时器（不会再启动）
func (s *DuckScene) stopSpawnTimer() {
	if s.spawnTimerID == 0 {
		return
	}
	ecs.RemoveComponent[*components.TimerComponent](s.entityManager, s.spawnTimerID)
	s.entityManager.DestroyEntity(s.spawnTimerID)
	s.spawnTimerID = 0
	log.Printf("[DuckScene] 已生成 %d 只鸭子，停止生成计时器", s.spawned)
}

// enterPondHouse 鸭子到达河道终点，开始在池塘小屋外绕圈排队
func (s *DuckScene) enterPondHouse(id ecs.EntityID) {
	if !s.advance(id, types.DuckQueued) {
		return
	}
	s.transit = removeID(s.transit, id)
	s.queued = append(s.queued, id)

	house, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.pondHouseID)
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

	startAngle := 0.0
	if house != nil && pos != nil {
		startAngle = math.Atan2(pos.Y-house.Y, pos.X-house.X)
	}
	var cx, cy float64
	if house != nil {
		cx, cy = house.X, house.Y
	}

	circle := sequence.Circle(cx, cy, s.cfg.PondHouse.CircleRadius, s.cfg.PondHouse.CirclePeriod, s.cfg.PondHouse.CircleSteps, startAngle)
	systems.PlaySequence(s.entityManager, id, circle)
	log.Printf("[DuckScene] 鸭子 %d 开始排队 (排队 %d 只)", id, len(s.queued))
}

// GrantPondEntry 放行一只排队的鸭子进入池塘
//
// id 为 0 时随机选择一只；否则 id 必须正在排队。
// 队列为空或 id 不在队列中时不做任何事并返回 false。
func (s *DuckScene) GrantPondEntry(id ecs.EntityID) bool {
	if len(s.queued) == 0 {
		return false
	}
	if id == 0 {
		id = s.queued[s.rng.Intn(len(s.queued))]
	} else if indexOf(s.queued, id) < 0 {
		return false
	}

	if !s.advance(id, types.DuckInPond) {
		return false
	}
	s.queued = removeID(s.queued, id)
	s.inPond = append(s.inPond, id)

	pondX, pondY := s.cfg.Pond.Position.ToScreen(s.screenWidth, s.screenHeight)
	spread := s.cfg.Pond.EntrySpread
	targetX := pondX + (s.rng.Float64()*2-1)*spread*s.screenWidth
	targetY := pondY + (s.rng.Float64()*2-1)*spread*s.screenHeight/2

	fromX, fromY := targetX, targetY
	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id); ok {
		fromX, fromY = pos.X, pos.Y
	}
	systems.PlaySequence(s.entityManager, id, sequence.Line(fromX, fromY, targetX, targetY, s.cfg.Pond.EntryDuration))

	log.Printf("[DuckScene] 鸭子 %d 进入池塘 (排队 %d 只, 池塘 %d 只)", id, len(s.queued), len(s.inPond))
	return true
}

// GrantRandomEntry 随机放行一只排队的鸭子
func (s *DuckScene) GrantRandomEntry() bool {
	return s.GrantPondEntry(0)
}

// advance 推进鸭子状态，非法迁移返回 false
func (s *DuckScene) advance(id ecs.EntityID, next types.DuckState) bool {
	duck, ok := ecs.GetComponent[*components.DuckComponent](s.entityManager, id)
	if !ok || !duck.State.CanAdvanceTo(next) {
		return false
	}
	duck.State = next
	return true
}

// Update 推进计时器、路径和悬停检测
func (s *DuckScene) Update(deltaTime float64) {
	if s.entered && !s.started && s.hints.Len() > 0 {
		s.start()
	}
	s.timerSystem.Update(deltaTime)
	s.pathSystem.Update(deltaTime)
	s.hoverSystem.Update(deltaTime)
	s.entityManager.RemoveMarkedEntities()
}

// SetCursor 替换悬停检测使用的指针位置来源
func (s *DuckScene) SetCursor(cursor systems.CursorFunc) {
	if cursor != nil {
		s.cursor = cursor
	}
}

// TransitCount 沿河移动中的鸭子数量
func (s *DuckScene) TransitCount() int { return len(s.transit) }

// QueuedCount 排队中的鸭子数量
func (s *DuckScene) QueuedCount() int { return len(s.queued) }

// PondCount 已进入池塘的鸭子数量
func (s *DuckScene) PondCount() int { return len(s.inPond) }

// SpawnedCount 已生成的鸭子数量（不含领头鸭）
func (s *DuckScene) SpawnedCount() int { return s.spawned }

// SpawnTimerActive 生成计时器是否仍在运行
func (s *DuckScene) SpawnTimerActive() bool { return s.spawnTimerID != 0 }

func indexOf(ids []ecs.EntityID, id ecs.EntityID) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}

func removeID(ids []ecs.EntityID, id ecs.EntityID) []ecs.EntityID {
	if i := indexOf(ids, id); i >= 0 {
		return append(ids[:i], ids[i+1:]...)
	}
	return ids
}
