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

// ZombieBehaviorSystem 僵尸每 tick 的追击与特殊行为
//
// 行为按类型区分：
//   - 普通/坦克：直线追击玩家中心
//   - 爬行者：追击，距离进入跳跃范围时扑到玩家身边（每次接近只跳一次）
//   - 酸液僵尸：射程外追击，射程内停步并随机吐酸
type ZombieBehaviorSystem struct {
	em      *ecs.EntityManager
	rng     *rand.Rand
	verbose bool
}

// NewZombieBehaviorSystem 创建僵尸行为系统
// rng 决定酸液的触发和散布，固定种子即可复现
func NewZombieBehaviorSystem(em *ecs.EntityManager, rng *rand.Rand) *ZombieBehaviorSystem {
	return &ZombieBehaviorSystem{em: em, rng: rng}
}

// SetVerbose 开启逐 tick 日志
func (s *ZombieBehaviorSystem) SetVerbose(v bool) { s.verbose = v }

// Update 推进所有存活僵尸一个 tick
//
// 参数:
//   - player: 玩家碰撞盒
//
// 返回:
//   - []ecs.EntityID: 本 tick 新生成的酸液投射物
func (s *ZombieBehaviorSystem) Update(player utils.BoundingBox) []ecs.EntityID {
	var spits []ecs.EntityID
	target := player.Center()

	for _, id := range liveZombies(s.em) {
		zombie, ok := ecs.GetComponent[*components.ZombieComponent](s.em, id)
		if !ok {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)

		dx := target.X - float64(pos.X)
		dy := target.Y - float64(pos.Y)
		dist := math.Hypot(dx, dy)
		pos.Facing = math.Atan2(dy, dx)

		switch zombie.Type {
		case types.ZombieCrawler:
			if dist > float64(zombie.Range) {
				zombie.IsJumped = false
			} else if !zombie.IsJumped {
				s.leap(id, pos, player, dx, dy, dist)
				zombie.IsJumped = true
				continue
			}
		case types.ZombieAcid:
			if dist <= float64(zombie.Range) {
				if spit, ok := s.trySpit(id, zombie, pos); ok {
					spits = append(spits, spit)
				}
				continue
			}
		}

		if entityHitsBox(s.em, id, player) {
			continue
		}
		s.pursue(pos, zombie.Speed, dx, dy, dist)
	}

	return spits
}

// pursue 按轴分解追击：每个轴独立按 speed·|d|/dist 远离零取整，且不越过目标
// 斜向移动的合速度会大于 speed
func (s *ZombieBehaviorSystem) pursue(pos *components.PositionComponent, speed int, dx, dy, dist float64) {
	if dist == 0 {
		return
	}
	pos.X += clampStep(utils.RoundAwayFromZero(float64(speed)*dx/dist), dx)
	pos.Y += clampStep(utils.RoundAwayFromZero(float64(speed)*dy/dist), dy)
}

// clampStep 限制单轴步长不超过到目标的剩余距离
func clampStep(step int, remaining float64) int {
	limit := int(math.Abs(remaining))
	if step > limit {
		return limit
	}
	if step < -limit {
		return -limit
	}
	return step
}

// leap 爬行者扑到玩家身边：沿来向停在两个碰撞盒刚好相接的位置
func (s *ZombieBehaviorSystem) leap(id ecs.EntityID, pos *components.PositionComponent, player utils.BoundingBox, dx, dy, dist float64) {
	col, _ := ecs.GetComponent[*components.CollisionComponent](s.em, id)
	size := 0
	if col != nil {
		size = col.Width
	}
	adjacent := float64(player.Width+size) / 2
	if dist <= adjacent {
		return
	}

	c := player.Center()
	ux, uy := dx/dist, dy/dist
	pos.X = int(math.Round(c.X - ux*adjacent))
	pos.Y = int(math.Round(c.Y - uy*adjacent))

	if s.verbose {
		log.Printf("[ZombieBehavior] crawler %d leaped to (%d, %d)", id, pos.X, pos.Y)
	}
}

// trySpit 酸液僵尸在射程内每 tick 抽签吐酸
// 从按朝向旋转的枪口位置发射，方向带 ±AcidSpitSpreadDeg 随机散布
func (s *ZombieBehaviorSystem) trySpit(id ecs.EntityID, zombie *components.ZombieComponent, pos *components.PositionComponent) (ecs.EntityID, bool) {
	if s.rng.Intn(config.TicksPerSecond) >= config.AcidSpitThreshold {
		return 0, false
	}

	spread := (s.rng.Float64()*2 - 1) * utils.DegToRad(config.AcidSpitSpreadDeg)
	muzzleX, muzzleY := utils.PointAt(pos.X, pos.Y, pos.Facing, config.AcidMuzzleOffset)

	spit, err := entities.NewProjectile(s.em, types.ProjectileAcidSpit, muzzleX, muzzleY, pos.Facing+spread, zombie.Damage*config.AcidSpitDamageFactor)
	if err != nil {
		log.Printf("[ZombieBehavior] acid zombie %d failed to spit: %v", id, err)
		return 0, false
	}
	if s.verbose {
		log.Printf("[ZombieBehavior] acid zombie %d spat %d", id, spit)
	}
	return spit, true
}
