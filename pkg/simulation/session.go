// Package simulation 固定步长的生存射击仿真会话
//
// Session 聚合玩家、实体管理器和全部系统，每次 Tick 推进 15ms。
// 会话本身是单线程的：Tick 与所有查询必须在同一个 goroutine 调用；
// 跨线程交互只通过 InputLatch（输入）和 game.EventBus（输出）进行。
package simulation

import (
	"errors"
	"fmt"
	"log"
	"math/rand"

	"github.com/gonewx/survival/pkg/config"
	"github.com/gonewx/survival/pkg/ecs"
	"github.com/gonewx/survival/pkg/entities"
	"github.com/gonewx/survival/pkg/game"
	"github.com/gonewx/survival/pkg/systems"
	"github.com/gonewx/survival/pkg/types"
	"github.com/gonewx/survival/pkg/weapons"
	"github.com/google/uuid"
)

// Options 会话创建参数
type Options struct {
	// Provider 武器/僵尸/关卡配置，必需
	Provider *config.Provider
	// Seed 随机种子，相同种子与相同输入序列产生相同结果
	Seed int64
	// Events 事件输出，可选（nil 时不发事件）
	Events *game.EventBus
	// HighScores 排行榜，可选（nil 时游戏结束不记录）
	HighScores *game.HighScoreManager
	// ArenaWidth/ArenaHeight 竞技场尺寸，0 时使用默认值
	ArenaWidth, ArenaHeight int
	// Verbose 开启各系统的逐 tick 日志
	Verbose bool
}

// Session 一局游戏
type Session struct {
	id       string
	provider *config.Provider
	rng      *rand.Rand
	events   *game.EventBus
	scores   *game.HighScoreManager

	width, height int

	em        *ecs.EntityManager
	player    *game.Player
	scheduler *systems.WaveScheduler

	projectileSystem *systems.ProjectileSystem
	behaviorSystem   *systems.ZombieBehaviorSystem
	combatSystem     *systems.CombatSystem
	lifetimeSystem   *systems.LifetimeSystem

	tick     uint64
	firing   bool
	paused   bool
	gameOver bool
	rank     int

	lastSnapshot Snapshot
}

// NewSession 创建会话，玩家位于竞技场中央，持有手枪
// 波次需要调用 StartWave 开始
//
// 返回：
//   - ErrNilCollaborator: Provider 为 nil
//   - ErrInvalidConfiguration: 手枪配置非法
func NewSession(opts Options) (*Session, error) {
	if opts.Provider == nil {
		return nil, fmt.Errorf("session: config provider: %w", types.ErrNilCollaborator)
	}

	width, height := opts.ArenaWidth, opts.ArenaHeight
	if width <= 0 || height <= 0 {
		width, height = config.ArenaWidth, config.ArenaHeight
	}

	s := &Session{
		id:       uuid.NewString(),
		provider: opts.Provider,
		rng:      rand.New(rand.NewSource(opts.Seed)),
		events:   opts.Events,
		scores:   opts.HighScores,
		width:    width,
		height:   height,
		em:       ecs.NewEntityManager(),
	}

	player, err := game.NewPlayer(opts.Provider, width/2, height/2)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	s.player = player

	scheduler, err := systems.NewWaveScheduler(s.em, opts.Provider, s.rng)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	scheduler.OnWaveStarted = s.onWaveStarted
	scheduler.OnWaveCleared = s.onWaveCleared
	s.scheduler = scheduler

	s.projectileSystem = systems.NewProjectileSystem(s.em, width, height)
	s.behaviorSystem = systems.NewZombieBehaviorSystem(s.em, s.rng)
	s.combatSystem = systems.NewCombatSystem(s.em, s.rng)
	s.lifetimeSystem = systems.NewLifetimeSystem(s.em)

	if opts.Verbose {
		s.projectileSystem.SetVerbose(true)
		s.behaviorSystem.SetVerbose(true)
		s.combatSystem.SetVerbose(true)
		s.scheduler.SetVerbose(true)
	}

	s.lastSnapshot = s.buildSnapshot()
	log.Printf("[Session %s] Created (seed=%d, arena=%dx%d)", s.id, opts.Seed, width, height)
	return s, nil
}

// Tick 推进仿真一个 tick 并返回结束时的快照
//
// 暂停或游戏结束后不推进任何计时器，直接返回上一个快照。
// 执行顺序固定：
//  1. 应用输入意图（切枪、医疗包、移动、瞄准）
//  2. 武器冷却推进
//  3. 换弹、射击生成投射物
//  4. 投射物移动与越界清理
//  5. 僵尸行为（追击、飞扑、吐酸）
//  6. 战斗结算
//  7. 掉落物寿命
//  8. 波次调度（刷怪、清场判定、自动进入下一关）
//  9. 移除本 tick 销毁的实体
func (s *Session) Tick(in Intents) Snapshot {
	if s.paused || s.gameOver {
		return s.lastSnapshot
	}
	s.tick++

	s.applyIntents(in)
	s.player.Update()
	s.handleWeapon(in)

	s.projectileSystem.Update()
	s.behaviorSystem.Update(s.player.Bounds())

	report := s.combatSystem.Update(s.player)
	s.publishCombat(report)

	if report.GameOver {
		s.em.RemoveMarkedEntities()
		s.endGame()
		s.lastSnapshot = s.buildSnapshot()
		return s.lastSnapshot
	}

	s.lifetimeSystem.Update()
	if _, err := s.scheduler.Update(s.width, s.height); err != nil {
		log.Printf("[Session %s] Spawn failed: %v", s.id, err)
	}

	s.em.RemoveMarkedEntities()
	s.lastSnapshot = s.buildSnapshot()
	return s.lastSnapshot
}

func (s *Session) applyIntents(in Intents) {
	if in.SwitchWeapon != 0 {
		s.player.SwitchWeapon(in.SwitchWeapon)
	}
	if in.UseMedkit {
		if healed, ok := s.player.UseMedkit(); ok {
			x, y := s.player.Position()
			s.publish(game.Event{Type: game.EventMedkitUsed, X: x, Y: y, Amount: healed})
		}
	}
	if in.MoveX != 0 || in.MoveY != 0 {
		s.player.Move(clampAxis(in.MoveX)*config.PlayerSpeed, clampAxis(in.MoveY)*config.PlayerSpeed, s.width, s.height)
	}
	if in.HasAim {
		s.player.SetFacing(in.Aim)
	}
	if in.FireStart {
		s.firing = true
	}
	if in.FireStop {
		s.firing = false
	}
}

func (s *Session) handleWeapon(in Intents) {
	current := s.player.CurrentWeapon()
	if current == nil {
		return
	}

	if in.Reload {
		switch err := s.player.Reload(); {
		case err == nil:
			s.publish(game.Event{Type: game.EventReloadStarted, Weapon: current.Type()})
		case errors.Is(err, weapons.ErrOutOfReserveAmmo):
			s.publish(game.Event{Type: game.EventOutOfAmmo, Weapon: current.Type()})
		}
	}

	if !s.firing {
		return
	}
	shot, err := s.player.Fire()
	switch {
	case err == nil:
		if _, err := entities.SpawnShot(s.em, shot); err != nil {
			log.Printf("[Session %s] Failed to spawn %s: %v", s.id, shot.Type, err)
			return
		}
		s.publish(game.Event{Type: game.EventShotFired, X: shot.X, Y: shot.Y, Weapon: current.Type()})
	case errors.Is(err, weapons.ErrOutOfAmmo) && in.FireStart:
		s.publish(game.Event{Type: game.EventOutOfAmmo, Weapon: current.Type()})
	}
}

func (s *Session) publishCombat(report systems.CombatReport) {
	for _, k := range report.Kills {
		s.publish(game.Event{
			Type:   game.EventZombieKilled,
			X:      k.X,
			Y:      k.Y,
			Zombie: k.Type,
			Item:   k.Loot.Type,
			Score:  k.Points,
		})
	}
	if report.PlayerDamage > 0 {
		x, y := s.player.Position()
		s.publish(game.Event{Type: game.EventPlayerDamaged, X: x, Y: y, Amount: report.PlayerDamage})
	}
	for _, item := range report.Pickups {
		s.publish(game.Event{Type: game.EventItemPickedUp, Item: item.Type, Weapon: item.WeaponType})
	}
}

// endGame 游戏结束只处理一次：冻结仿真并记录成绩
func (s *Session) endGame() {
	if s.gameOver {
		return
	}
	s.gameOver = true
	s.firing = false

	score, level := s.player.Score(), s.scheduler.Level()
	log.Printf("[Session %s] Game over at tick %d: score=%d level=%d", s.id, s.tick, score, level)
	s.publish(game.Event{Type: game.EventGameOver, Score: score})

	if s.scores != nil {
		rank, err := s.scores.Record(s.id, score, level)
		if err != nil {
			log.Printf("[Session %s] Failed to save high score: %v", s.id, err)
		}
		s.rank = rank
	}
}

func (s *Session) onWaveStarted(level int) {
	log.Printf("[Session %s] Level %d started", s.id, level)
	s.publish(game.Event{Type: game.EventWaveStarted, Level: level})
}

// onWaveCleared 清场后发放本关奖励武器
func (s *Session) onWaveCleared(level int, prize types.WeaponType) {
	s.publish(game.Event{Type: game.EventWaveCleared, Level: level, Score: s.player.Score()})
	if prize == types.WeaponUnknown {
		return
	}
	added, err := s.player.GrantWeapon(prize)
	if err != nil {
		log.Printf("[Session %s] Failed to award %s: %v", s.id, prize, err)
		return
	}
	if added {
		s.publish(game.Event{Type: game.EventWeaponAwarded, Level: level, Weapon: prize})
	}
}

func (s *Session) publish(e game.Event) {
	e.Tick = s.tick
	if e.Level == 0 {
		e.Level = s.scheduler.Level()
	}
	s.events.Publish(e)
}

// StartWave 开始下一关，波次进行中或游戏结束后为空操作
func (s *Session) StartWave() bool {
	if s.gameOver {
		return false
	}
	started := s.scheduler.StartWave()
	if started {
		s.lastSnapshot = s.buildSnapshot()
	}
	return started
}

// Pause 暂停，所有计时器冻结
func (s *Session) Pause() {
	if !s.paused {
		s.paused = true
		s.lastSnapshot.Paused = true
		log.Printf("[Session %s] Paused at tick %d", s.id, s.tick)
	}
}

// Resume 恢复
func (s *Session) Resume() {
	if s.paused {
		s.paused = false
		s.lastSnapshot.Paused = false
		log.Printf("[Session %s] Resumed at tick %d", s.id, s.tick)
	}
}

// IsPaused 是否暂停
func (s *Session) IsPaused() bool { return s.paused }

// IsGameOver 游戏是否结束
func (s *Session) IsGameOver() bool { return s.gameOver }

// IsWaveOver 当前波次是否已清场
func (s *Session) IsWaveOver() bool { return s.scheduler.IsWaveOver() }

// ID 会话 ID
func (s *Session) ID() string { return s.id }

// CurrentTick 已推进的 tick 数
func (s *Session) CurrentTick() uint64 { return s.tick }

// Snapshot 返回最近一次的快照
func (s *Session) Snapshot() Snapshot { return s.lastSnapshot }

// Health 玩家当前生命值
func (s *Session) Health() float64 { return s.player.Health() }

// Score 玩家得分
func (s *Session) Score() int { return s.player.Score() }

// Level 当前关卡（尚未开始时为 0）
func (s *Session) Level() int { return s.scheduler.Level() }

// Inventory 武器背包状态（按获得顺序）
func (s *Session) Inventory() []weapons.State { return s.player.State().Weapons }

// ItemCount 道具数量
func (s *Session) ItemCount(itemType types.ItemType) int { return s.player.ItemCount(itemType) }

// RemainingZombies 本波剩余僵尸（未刷出的配额加场上存活）
func (s *Session) RemainingZombies() int { return s.scheduler.RemainingZombies() }

// RemainingWaveTicks 本波剩余时间（tick）
func (s *Session) RemainingWaveTicks() int { return s.scheduler.RemainingWaveTicks() }

// HighScoreRank 本局在排行榜中的名次，未记录或未上榜时为 0
func (s *Session) HighScoreRank() int { return s.rank }

// Player 返回玩家（仅供同一 goroutine 的测试与工具使用）
func (s *Session) Player() *game.Player { return s.player }

// EntityManager 返回实体管理器（仅供同一 goroutine 的测试与工具使用）
func (s *Session) EntityManager() *ecs.EntityManager { return s.em }
