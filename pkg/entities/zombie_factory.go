package entities

import (
	"fmt"
	"math"

	"github.com/gonewx/survival/pkg/components"
	"github.com/gonewx/survival/pkg/config"
	"github.com/gonewx/survival/pkg/ecs"
	"github.com/gonewx/survival/pkg/types"
)

// ZombieConstructor 僵尸构造函数签名
type ZombieConstructor func(em *ecs.EntityManager, stats config.ZombieStats, x, y int) (ecs.EntityID, error)

// ZombieConstructors 僵尸类型到构造函数的映射，刷怪调度按类型查表
var ZombieConstructors = map[types.ZombieType]ZombieConstructor{
	types.ZombieOrdinary: NewOrdinaryZombie,
	types.ZombieCrawler:  NewCrawlerZombie,
	types.ZombieTank:     NewTankZombie,
	types.ZombieAcid:     NewAcidZombie,
}

// NewOrdinaryZombie 创建普通僵尸：直线追击
func NewOrdinaryZombie(em *ecs.EntityManager, stats config.ZombieStats, x, y int) (ecs.EntityID, error) {
	return newZombie(em, types.ZombieOrdinary, stats, x, y)
}

// NewCrawlerZombie 创建爬行者：追击，进入跳跃距离后扑到玩家身边
func NewCrawlerZombie(em *ecs.EntityManager, stats config.ZombieStats, x, y int) (ecs.EntityID, error) {
	return newZombie(em, types.ZombieCrawler, stats, x, y)
}

// NewTankZombie 创建坦克僵尸：高血量、慢速、高接触伤害
func NewTankZombie(em *ecs.EntityManager, stats config.ZombieStats, x, y int) (ecs.EntityID, error) {
	return newZombie(em, types.ZombieTank, stats, x, y)
}

// NewAcidZombie 创建酸液僵尸：射程内停步并随机吐酸
func NewAcidZombie(em *ecs.EntityManager, stats config.ZombieStats, x, y int) (ecs.EntityID, error) {
	return newZombie(em, types.ZombieAcid, stats, x, y)
}

// NewZombie 按类型创建僵尸实体
//
// 参数:
//   - em: 实体管理器
//   - zombieType: 僵尸类型
//   - stats: 该类型的属性配置
//   - x, y: 生成位置（中心）
//
// 返回:
//   - ecs.EntityID: 僵尸实体ID
//   - error: em 为 nil 或类型未知时返回 ErrNilCollaborator
func NewZombie(em *ecs.EntityManager, zombieType types.ZombieType, stats config.ZombieStats, x, y int) (ecs.EntityID, error) {
	ctor, ok := ZombieConstructors[zombieType]
	if !ok {
		return 0, fmt.Errorf("zombie type %d: %w", zombieType, types.ErrNilCollaborator)
	}
	return ctor(em, stats, x, y)
}

func newZombie(em *ecs.EntityManager, zombieType types.ZombieType, stats config.ZombieStats, x, y int) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager: %w", types.ErrNilCollaborator)
	}
	if stats.Health <= 0 {
		return 0, fmt.Errorf("zombie %s health %.1f: %w", zombieType, stats.Health, types.ErrInvalidConfiguration)
	}

	id := em.CreateEntity()

	// 初始朝向竞技场中心，首个 tick 会重新对准玩家
	facing := math.Atan2(float64(config.ArenaHeight/2-y), float64(config.ArenaWidth/2-x))
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y, Facing: facing})
	ecs.AddComponent(em, id, &components.CollisionComponent{
		Width:   stats.Size,
		Height:  stats.Size,
		Rotated: true,
	})
	ecs.AddComponent(em, id, &components.HealthComponent{
		Current: stats.Health,
		Max:     stats.Health,
	})
	ecs.AddComponent(em, id, &components.ZombieComponent{
		Type:   zombieType,
		Speed:  stats.Speed,
		Damage: float64(stats.Damage),
		Range:  stats.Range,
		Points: stats.Points,
	})

	return id, nil
}
