package simulation

import (
	"github.com/gonewx/survival/pkg/components"
	"github.com/gonewx/survival/pkg/ecs"
	"github.com/gonewx/survival/pkg/game"
	"github.com/gonewx/survival/pkg/systems"
	"github.com/gonewx/survival/pkg/types"
)

// ZombieView 僵尸的只读视图
type ZombieView struct {
	ID            ecs.EntityID
	Type          types.ZombieType
	X, Y          int
	Facing        float64
	Width, Height int
	Health        float64
	MaxHealth     float64
}

// ProjectileView 投射物的只读视图
type ProjectileView struct {
	ID      ecs.EntityID
	Type    types.ProjectileType
	X, Y    int
	Facing  float64
	Size    int
	Hostile bool
}

// LootView 掉落物的只读视图
type LootView struct {
	ID             ecs.EntityID
	Item           types.PlayerItem
	X, Y           int
	Size           int
	RemainingTicks int
}

// Snapshot 一个 tick 结束时的完整状态（值拷贝，渲染端只读）
type Snapshot struct {
	SessionID string
	Tick      uint64
	Paused    bool
	GameOver  bool

	Level              int
	WaveState          systems.WaveState
	RemainingZombies   int
	RemainingWaveTicks int

	Player      game.PlayerState
	Zombies     []ZombieView
	Projectiles []ProjectileView
	Loot        []LootView
}

// buildSnapshot 按创建顺序收集实体视图
func (s *Session) buildSnapshot() Snapshot {
	snap := Snapshot{
		SessionID:          s.id,
		Tick:               s.tick,
		Paused:             s.paused,
		GameOver:           s.gameOver,
		Level:              s.scheduler.Level(),
		WaveState:          s.scheduler.State(),
		RemainingZombies:   s.scheduler.RemainingZombies(),
		RemainingWaveTicks: s.scheduler.RemainingWaveTicks(),
		Player:             s.player.State(),
	}

	for _, id := range ecs.GetEntitiesWith3[*components.ZombieComponent, *components.PositionComponent, *components.HealthComponent](s.em) {
		if !s.em.IsAlive(id) {
			continue
		}
		zombie, _ := ecs.GetComponent[*components.ZombieComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		health, _ := ecs.GetComponent[*components.HealthComponent](s.em, id)
		view := ZombieView{
			ID:        id,
			Type:      zombie.Type,
			X:         pos.X,
			Y:         pos.Y,
			Facing:    pos.Facing,
			Health:    health.Current,
			MaxHealth: health.Max,
		}
		if col, ok := ecs.GetComponent[*components.CollisionComponent](s.em, id); ok {
			view.Width, view.Height = col.Width, col.Height
		}
		snap.Zombies = append(snap.Zombies, view)
	}

	for _, id := range ecs.GetEntitiesWith2[*components.ProjectileComponent, *components.PositionComponent](s.em) {
		if !s.em.IsAlive(id) {
			continue
		}
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		view := ProjectileView{
			ID:      id,
			Type:    proj.Type,
			X:       pos.X,
			Y:       pos.Y,
			Facing:  pos.Facing,
			Hostile: proj.Hostile,
		}
		if col, ok := ecs.GetComponent[*components.CollisionComponent](s.em, id); ok {
			view.Size = col.Width
		}
		snap.Projectiles = append(snap.Projectiles, view)
	}

	for _, id := range ecs.GetEntitiesWith2[*components.LootComponent, *components.PositionComponent](s.em) {
		if !s.em.IsAlive(id) {
			continue
		}
		loot, _ := ecs.GetComponent[*components.LootComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		view := LootView{ID: id, Item: loot.Item, X: pos.X, Y: pos.Y}
		if col, ok := ecs.GetComponent[*components.CollisionComponent](s.em, id); ok {
			view.Size = col.Width
		}
		if lt, ok := ecs.GetComponent[*components.LifetimeComponent](s.em, id); ok {
			view.RemainingTicks = max(lt.MaxTicks-lt.ElapsedTicks, 0)
		}
		snap.Loot = append(snap.Loot, view)
	}

	return snap
}

// Score 玩家得分
func (s Snapshot) Score() int { return s.Player.Score }
