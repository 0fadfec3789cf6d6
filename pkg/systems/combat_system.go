package systems

import (
	"log"
	"math"
	"math/rand"

	"github.com/gonewx/survival/pkg/components"
	"github.com/gonewx/survival/pkg/config"
	"github.com/gonewx/survival/pkg/ecs"
	"github.com/gonewx/survival/pkg/entities"
	"github.com/gonewx/survival/pkg/types"
	"github.com/gonewx/survival/pkg/utils"
)

// CombatTarget 战斗结算所需的玩家能力
type CombatTarget interface {
	Bounds() utils.BoundingBox
	// TakeDamage 扣血，仅在本次伤害导致死亡时返回 true
	TakeDamage(amount float64) bool
	IsDead() bool
	AddScore(points int)
	// WeaponTypes 当前拥有的武器类型（按背包顺序）
	WeaponTypes() []types.WeaponType
	// Pickup 拾取掉落物，返回是否被消耗
	Pickup(item types.PlayerItem) bool
}

// Kill 一次击杀的结算结果
type Kill struct {
	Zombie     ecs.EntityID
	Type       types.ZombieType
	X, Y       int
	Points     int
	Loot       types.PlayerItem
	LootEntity ecs.EntityID
}

// CombatReport 单个 tick 的战斗结算结果，供会话转换为事件
type CombatReport struct {
	Hits         int
	Kills        []Kill
	PlayerDamage float64
	Pickups      []types.PlayerItem
	GameOver     bool
}

// CombatSystem 碰撞与战斗结算
//
// 每 tick 在所有实体移动之后执行，顺序固定：
//  1. 友方投射物（外层）× 存活僵尸（内层），按创建顺序，首个命中生效
//  2. 敌方酸液 × 玩家
//  3. 与玩家重叠的僵尸持续造成接触伤害
//  4. 玩家拾取掉落物
//  5. 玩家生命值 ≤ 0 时触发一次游戏结束
type CombatSystem struct {
	em       *ecs.EntityManager
	rng      *rand.Rand
	gameOver bool
	verbose  bool
}

// NewCombatSystem 创建战斗系统
// rng 用于掉落物抽取
func NewCombatSystem(em *ecs.EntityManager, rng *rand.Rand) *CombatSystem {
	return &CombatSystem{em: em, rng: rng}
}

// SetVerbose 开启逐 tick 日志
func (s *CombatSystem) SetVerbose(v bool) { s.verbose = v }

// IsGameOver 是否已触发游戏结束
func (s *CombatSystem) IsGameOver() bool { return s.gameOver }

// Update 结算一个 tick 的战斗
// 游戏结束后不再做任何结算
func (s *CombatSystem) Update(player CombatTarget) CombatReport {
	var report CombatReport
	if s.gameOver || player == nil {
		return report
	}

	s.resolveProjectiles(player, &report)
	s.resolveHostileProjectiles(player, &report)
	s.resolveContact(player, &report)
	if !player.IsDead() {
		s.resolvePickups(player, &report)
	}

	if player.IsDead() {
		s.gameOver = true
		report.GameOver = true
		log.Printf("[CombatSystem] Player died, game over")
	}
	return report
}

// resolveProjectiles 友方投射物与僵尸的碰撞，一颗投射物至多命中一只僵尸
func (s *CombatSystem) resolveProjectiles(player CombatTarget, report *CombatReport) {
	projectiles := ecs.GetEntitiesWith3[*components.ProjectileComponent, *components.PositionComponent, *components.CollisionComponent](s.em)
	for _, pid := range projectiles {
		if !isLive(s.em, pid) {
			continue
		}
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](s.em, pid)
		if proj.Hostile {
			continue
		}
		box, _ := entityBox(s.em, pid)

		for _, zid := range liveZombies(s.em) {
			if !entityHitsBox(s.em, zid, box) {
				continue
			}

			s.em.DestroyEntity(pid)
			report.Hits++
			s.damageZombie(zid, proj.Damage, player, report)

			if proj.Type == types.ProjectileRocket {
				s.blast(zid, proj.Damage, player, report)
			}
			break
		}
	}
}

// blast 火箭爆炸：命中点半径内的其他存活僵尸承受同样伤害
func (s *CombatSystem) blast(center ecs.EntityID, damage float64, player CombatTarget, report *CombatReport) {
	for _, zid := range liveZombies(s.em) {
		if zid == center || distanceBetween(s.em, center, zid) > config.RocketBlastRadius {
			continue
		}
		s.damageZombie(zid, damage, player, report)
	}
}

// damageZombie 对僵尸造成伤害，死亡时结算掉落和得分并移除僵尸
func (s *CombatSystem) damageZombie(zid ecs.EntityID, damage float64, player CombatTarget, report *CombatReport) {
	health, ok := ecs.GetComponent[*components.HealthComponent](s.em, zid)
	if !ok || !health.TakeDamage(damage) {
		return
	}

	zombie, _ := ecs.GetComponent[*components.ZombieComponent](s.em, zid)
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, zid)

	kill := Kill{Zombie: zid, Type: zombie.Type, X: pos.X, Y: pos.Y, Points: zombie.Points}
	kill.Loot = GeneratePlayerItem(s.rng, zombie.Points, player.WeaponTypes())
	if kill.Loot.Type != types.ItemNone {
		lootID, err := entities.NewLoot(s.em, kill.Loot, pos.X, pos.Y)
		if err != nil {
			log.Printf("[CombatSystem] Failed to drop loot for zombie %d: %v", zid, err)
		}
		kill.LootEntity = lootID
	}

	player.AddScore(zombie.Points)
	s.em.DestroyEntity(zid)
	report.Kills = append(report.Kills, kill)

	if s.verbose {
		log.Printf("[CombatSystem] %s %d killed (+%d), loot: %s", zombie.Type, zid, zombie.Points, kill.Loot.Type)
	}
}

// resolveHostileProjectiles 酸液只与玩家判定
func (s *CombatSystem) resolveHostileProjectiles(player CombatTarget, report *CombatReport) {
	target := player.Bounds()
	projectiles := ecs.GetEntitiesWith3[*components.ProjectileComponent, *components.PositionComponent, *components.CollisionComponent](s.em)
	for _, pid := range projectiles {
		if !isLive(s.em, pid) {
			continue
		}
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](s.em, pid)
		if !proj.Hostile || !entityHitsBox(s.em, pid, target) {
			continue
		}
		s.em.DestroyEntity(pid)
		report.PlayerDamage += proj.Damage
		player.TakeDamage(proj.Damage)
	}
}

// resolveContact 重叠期间每 tick 都造成接触伤害
func (s *CombatSystem) resolveContact(player CombatTarget, report *CombatReport) {
	target := player.Bounds()
	for _, zid := range liveZombies(s.em) {
		if !entityHitsBox(s.em, zid, target) {
			continue
		}
		zombie, _ := ecs.GetComponent[*components.ZombieComponent](s.em, zid)
		report.PlayerDamage += zombie.Damage
		player.TakeDamage(zombie.Damage)
	}
}

// resolvePickups 玩家碰到掉落物即拾取，每个掉落物只会被消耗一次
func (s *CombatSystem) resolvePickups(player CombatTarget, report *CombatReport) {
	target := player.Bounds()
	for _, lid := range ecs.GetEntitiesWith1[*components.LootComponent](s.em) {
		if !isLive(s.em, lid) || !entityHitsBox(s.em, lid, target) {
			continue
		}
		loot, _ := ecs.GetComponent[*components.LootComponent](s.em, lid)
		if !player.Pickup(loot.Item) {
			continue
		}
		s.em.DestroyEntity(lid)
		report.Pickups = append(report.Pickups, loot.Item)
	}
}

// GeneratePlayerItem 击杀掉落抽取
//
// 先抽 spawnChance ∈ [0,100)，仅当 spawnChance·points > LootDropThreshold 时掉落；
// 再抽 itemType ∈ [0,10)：9 为大医疗包，[6,9) 为小医疗包，[0,6) 为玩家已有武器之一的弹药。
// 分值越高的僵尸越容易掉落。
func GeneratePlayerItem(rng *rand.Rand, points int, owned []types.WeaponType) types.PlayerItem {
	spawnChance := rng.Intn(100)
	if spawnChance*points <= config.LootDropThreshold {
		return types.PlayerItem{Type: types.ItemNone}
	}

	switch itemType := rng.Intn(10); {
	case itemType == 9:
		return types.PlayerItem{Type: types.ItemLargeMedicPack, Count: 1, Heal: config.LargeMedicPackHeal}
	case itemType >= 6:
		return types.PlayerItem{Type: types.ItemSmallMedicPack, Count: 1, Heal: config.SmallMedicPackHeal}
	default:
		if len(owned) == 0 {
			return types.PlayerItem{Type: types.ItemNone}
		}
		return types.PlayerItem{
			Type:       types.ItemAmmunition,
			WeaponType: owned[rng.Intn(len(owned))],
			Count:      config.AmmoPickupMagazines,
		}
	}
}

// distanceBetween 两个实体中心的距离，任一缺少位置时返回 +Inf
func distanceBetween(em *ecs.EntityManager, a, b ecs.EntityID) float64 {
	pa, ok := ecs.GetComponent[*components.PositionComponent](em, a)
	if !ok {
		return math.Inf(1)
	}
	pb, ok := ecs.GetComponent[*components.PositionComponent](em, b)
	if !ok {
		return math.Inf(1)
	}
	return utils.Distance(float64(pa.X), float64(pa.Y), float64(pb.X), float64(pb.Y))
}
