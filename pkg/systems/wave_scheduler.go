package systems

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/gonewx/survival/pkg/config"
	"github.com/gonewx/survival/pkg/ecs"
	"github.com/gonewx/survival/pkg/entities"
	"github.com/gonewx/survival/pkg/types"
	"github.com/gonewx/survival/pkg/utils"
)

// WaveState 波次状态
type WaveState int

const (
	// WaveIdle 尚未开始任何波次
	WaveIdle WaveState = iota
	// WaveActive 波次进行中
	WaveActive
	// WaveOver 本波配额已刷完且场上僵尸已清空，等待进入下一关
	WaveOver
)

// String 返回状态名
func (s WaveState) String() string {
	switch s {
	case WaveIdle:
		return "idle"
	case WaveActive:
		return "active"
	case WaveOver:
		return "over"
	default:
		return "unknown"
	}
}

// WaveScheduler 关卡/波次调度器
//
// 状态机：IDLE → StartWave → ACTIVE → 配额刷完且清场 → OVER → 暂歇计时结束 → ACTIVE(下一关)
//
// 职责：
//   - 按关卡配置计算刷怪间隔（waveDuration / 总数，总数为 0 时不刷怪）
//   - 每 tick 至多刷一只僵尸，位置在竞技场四条边之一
//   - 按类型配额拒绝采样选择僵尸类型
//
// 调度器由会话持有，不使用任何全局状态。
type WaveScheduler struct {
	em       *ecs.EntityManager
	provider *config.Provider
	rng      *rand.Rand

	level       int
	state       WaveState
	levelConfig config.LevelConfig
	quota       map[types.ZombieType]int
	remaining   map[types.ZombieType]int
	spawned     map[types.ZombieType]int

	spawnEnabled bool
	spawnTimer   *utils.TickTimer
	waveTimer    *utils.TickTimer
	suspendTimer *utils.TickTimer

	// AutoAdvance 为 true 时 OVER 后经过 WaveSuspendTicks 自动开始下一关
	AutoAdvance bool
	// OnWaveStarted 新波次开始时回调
	OnWaveStarted func(level int)
	// OnWaveCleared 波次进入 OVER 时回调，prize 为本关奖励武器（可能为 WeaponUnknown）
	OnWaveCleared func(level int, prize types.WeaponType)

	verbose bool
}

// NewWaveScheduler 创建波次调度器
//
// 返回：
//   - ErrNilCollaborator: em、provider 或 rng 为 nil
func NewWaveScheduler(em *ecs.EntityManager, provider *config.Provider, rng *rand.Rand) (*WaveScheduler, error) {
	if em == nil || provider == nil || rng == nil {
		return nil, fmt.Errorf("wave scheduler requires entity manager, config provider and rng: %w", types.ErrNilCollaborator)
	}
	suspend, err := utils.NewTickTimer(config.WaveSuspendTicks, utils.RepeatForever, nil)
	if err != nil {
		return nil, err
	}
	return &WaveScheduler{
		em:           em,
		provider:     provider,
		rng:          rng,
		state:        WaveIdle,
		suspendTimer: suspend,
		AutoAdvance:  true,
	}, nil
}

// SetVerbose 开启逐 tick 日志
func (w *WaveScheduler) SetVerbose(v bool) { w.verbose = v }

// StartWave 开始下一关的波次，波次进行中时为空操作
// 返回是否真正开始了新波次
func (w *WaveScheduler) StartWave() bool {
	if w.state == WaveActive {
		return false
	}

	w.level++
	w.levelConfig = w.provider.Level(w.level)
	w.quota = w.levelConfig.Quota()
	w.remaining = make(map[types.ZombieType]int, len(w.quota))
	w.spawned = make(map[types.ZombieType]int, len(w.quota))
	for zt, n := range w.quota {
		w.remaining[zt] = n
	}

	total := w.levelConfig.TotalZombies()
	period := 0
	w.spawnEnabled = total > 0
	if w.spawnEnabled {
		period = w.levelConfig.WaveDuration / total
	}

	// 周期均来自已校验的非负配置
	w.spawnTimer, _ = utils.NewTickTimer(period, utils.RepeatForever, nil)
	w.waveTimer, _ = utils.NewTickTimer(w.levelConfig.WaveDuration, 1, nil)
	w.state = WaveActive

	log.Printf("[WaveScheduler] Level %d started: %d zombies over %d ticks (spawn every %d ticks)",
		w.level, total, w.levelConfig.WaveDuration, period)

	if w.OnWaveStarted != nil {
		w.OnWaveStarted(w.level)
	}
	return true
}

// Update 推进调度器一个 tick
//
// 参数：
//   - arenaWidth, arenaHeight: 竞技场尺寸，用于确定刷怪边缘
//
// 返回：
//   - ecs.EntityID: 本 tick 刷出的僵尸，没有则为 0
//   - error: 僵尸构造失败（配额不会被扣减）
func (w *WaveScheduler) Update(arenaWidth, arenaHeight int) (ecs.EntityID, error) {
	switch w.state {
	case WaveOver:
		if w.AutoAdvance {
			w.suspendTimer.Tick()
			if w.suspendTimer.IsExpired() {
				w.StartWave()
			}
		}
		return 0, nil
	case WaveIdle:
		return 0, nil
	}

	w.waveTimer.Tick()

	var spawned ecs.EntityID
	if w.spawnEnabled && w.remainingTotal() > 0 {
		w.spawnTimer.Tick()
		if w.spawnTimer.IsExpired() {
			id, err := w.spawnZombie(arenaWidth, arenaHeight)
			if err != nil {
				return 0, err
			}
			w.spawnTimer.Reset()
			spawned = id
		}
	}

	if w.remainingTotal() == 0 && len(liveZombies(w.em)) == 0 {
		w.finishWave()
	}
	return spawned, nil
}

// finishWave 进入 OVER 并启动暂歇计时
func (w *WaveScheduler) finishWave() {
	w.state = WaveOver
	w.suspendTimer.Reset()

	prize := w.levelConfig.Prize()
	log.Printf("[WaveScheduler] Level %d cleared (prize: %s)", w.level, prize)

	if w.OnWaveCleared != nil {
		w.OnWaveCleared(w.level, prize)
	}
}

// spawnZombie 在随机边缘刷出一只僵尸
// 调用前需保证剩余配额大于 0
func (w *WaveScheduler) spawnZombie(arenaWidth, arenaHeight int) (ecs.EntityID, error) {
	x, y := w.randomEdgePoint(arenaWidth, arenaHeight)
	zombieType := w.pickZombieType()

	stats, err := w.provider.ZombieStats(zombieType)
	if err != nil {
		return 0, fmt.Errorf("spawn %s: %w", zombieType, err)
	}
	id, err := entities.NewZombie(w.em, zombieType, stats, x, y)
	if err != nil {
		return 0, fmt.Errorf("spawn %s: %w", zombieType, err)
	}

	w.remaining[zombieType]--
	w.spawned[zombieType]++

	if w.verbose {
		log.Printf("[WaveScheduler] Spawned %s %d at (%d, %d), %d left", zombieType, id, x, y, w.remainingTotal())
	}
	return id, nil
}

// randomEdgePoint 均匀选择四条边之一，再在该边上均匀取点
func (w *WaveScheduler) randomEdgePoint(width, height int) (int, int) {
	switch w.rng.Intn(4) {
	case 0: // 上
		return w.rng.Intn(width + 1), 0
	case 1: // 下
		return w.rng.Intn(width + 1), height
	case 2: // 左
		return 0, w.rng.Intn(height + 1)
	default: // 右
		return width, w.rng.Intn(height + 1)
	}
}

// pickZombieType 在四种类型中均匀抽取，剩余配额为 0 的类型重新抽取
func (w *WaveScheduler) pickZombieType() types.ZombieType {
	for {
		zt := types.AllZombieTypes[w.rng.Intn(len(types.AllZombieTypes))]
		if w.remaining[zt] > 0 {
			return zt
		}
	}
}

func (w *WaveScheduler) remainingTotal() int {
	total := 0
	for _, n := range w.remaining {
		total += n
	}
	return total
}

// State 返回当前状态
func (w *WaveScheduler) State() WaveState { return w.state }

// IsActive 波次是否进行中
func (w *WaveScheduler) IsActive() bool { return w.state == WaveActive }

// IsWaveOver 波次是否已结束
func (w *WaveScheduler) IsWaveOver() bool { return w.state == WaveOver }

// Level 返回当前关卡号（尚未开始时为 0）
func (w *WaveScheduler) Level() int { return w.level }

// Quota 返回当前关卡某类型的配额
func (w *WaveScheduler) Quota(zombieType types.ZombieType) int { return w.quota[zombieType] }

// Remaining 返回当前关卡某类型尚未刷出的数量
func (w *WaveScheduler) Remaining(zombieType types.ZombieType) int { return w.remaining[zombieType] }

// Spawned 返回当前关卡某类型已刷出的数量
func (w *WaveScheduler) Spawned(zombieType types.ZombieType) int { return w.spawned[zombieType] }

// RemainingZombies 尚未刷出的配额加上场上存活僵尸
func (w *WaveScheduler) RemainingZombies() int {
	return w.remainingTotal() + len(liveZombies(w.em))
}

// RemainingWaveTicks 返回波次剩余时间（tick），未开始时为 0
func (w *WaveScheduler) RemainingWaveTicks() int {
	if w.waveTimer == nil {
		return 0
	}
	return w.waveTimer.Remaining()
}

// SpawnPeriod 返回当前关卡的刷怪间隔（tick），不刷怪时为 0
func (w *WaveScheduler) SpawnPeriod() int {
	if w.spawnTimer == nil || !w.spawnEnabled {
		return 0
	}
	return w.spawnTimer.Period()
}
