package entities

import (
	"fmt"

	"github.com/gonewx/survival/pkg/components"
	"github.com/gonewx/survival/pkg/config"
	"github.com/gonewx/survival/pkg/ecs"
	"github.com/gonewx/survival/pkg/types"
	"github.com/gonewx/survival/pkg/utils"
	"github.com/gonewx/survival/pkg/weapons"
)

// projectileSpec 每种单体投射物的速度和尺寸
type projectileSpec struct {
	speed int
	size  int
}

var projectileSpecs = map[types.ProjectileType]projectileSpec{
	types.ProjectileBullet:        {config.BulletSpeed, config.BulletSize},
	types.ProjectileArmorPiercing: {config.ArmorPiercingSpeed, config.ArmorPiercingSize},
	types.ProjectileRocket:        {config.RocketSpeed, config.RocketSize},
	types.ProjectileAcidSpit:      {config.AcidSpitSpeed, config.AcidSpitSize},
}

// NewProjectile 创建单体投射物实体（子弹、穿甲弹、火箭、酸液）
// 霰弹需使用 NewShotgunPellets
func NewProjectile(em *ecs.EntityManager, projectileType types.ProjectileType, x, y int, facing, damage float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager: %w", types.ErrNilCollaborator)
	}
	spec, ok := projectileSpecs[projectileType]
	if !ok {
		return 0, fmt.Errorf("projectile type %s: %w", projectileType, types.ErrNilCollaborator)
	}
	return newProjectile(em, projectileType, spec, x, y, facing, damage, 0), nil
}

func newProjectile(em *ecs.EntityManager, projectileType types.ProjectileType, spec projectileSpec, x, y int, facing, damage float64, group ecs.EntityID) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y, Facing: facing})
	ecs.AddComponent(em, id, &components.CollisionComponent{Width: spec.size, Height: spec.size})
	ecs.AddComponent(em, id, &components.ProjectileComponent{
		Type:    projectileType,
		Damage:  damage,
		Speed:   spec.speed,
		Hostile: projectileType.IsHostile(),
		Group:   group,
	})
	return id
}

// PelletOffset 第 i 颗弹丸相对射击方向的偏角（弧度）
// offset_i = (i - PelletCount/2) * (PelletSpreadDeg / PelletCount)
func PelletOffset(i int) float64 {
	step := config.PelletSpreadDeg / float64(config.PelletCount)
	return utils.DegToRad(float64(i-config.PelletCount/2) * step)
}

// NewShotgunPellets 创建霰弹组
//
// 组实体只持有子弹列表，生成 PelletCount 颗子弹，
// 以 facing 为中心在 PelletSpreadDeg 的扇面内均匀分布，每颗伤害为 damage * PelletDamageFactor
//
// 返回:
//   - ecs.EntityID: 霰弹组实体ID
//   - []ecs.EntityID: 子弹实体ID（按偏角从小到大）
func NewShotgunPellets(em *ecs.EntityManager, x, y int, facing, damage float64) (ecs.EntityID, []ecs.EntityID, error) {
	if em == nil {
		return 0, nil, fmt.Errorf("entity manager: %w", types.ErrNilCollaborator)
	}

	group := em.CreateEntity()
	ecs.AddComponent(em, group, &components.PositionComponent{X: x, Y: y, Facing: facing})

	spec := projectileSpecs[types.ProjectileBullet]
	children := make([]ecs.EntityID, 0, config.PelletCount)
	for i := 0; i < config.PelletCount; i++ {
		child := newProjectile(em, types.ProjectileBullet, spec, x, y, facing+PelletOffset(i), damage*config.PelletDamageFactor, group)
		children = append(children, child)
	}

	ecs.AddComponent(em, group, &components.PelletGroupComponent{Children: children})
	return group, children, nil
}

// SpawnShot 将武器的一次射击转换为投射物实体
// 返回所有参与碰撞的实体（霰弹为全部子弹）
func SpawnShot(em *ecs.EntityManager, shot weapons.Shot) ([]ecs.EntityID, error) {
	if shot.Type == types.ProjectileShotgunPellets {
		_, children, err := NewShotgunPellets(em, shot.X, shot.Y, shot.Facing, float64(shot.Damage))
		return children, err
	}
	id, err := NewProjectile(em, shot.Type, shot.X, shot.Y, shot.Facing, float64(shot.Damage))
	if err != nil {
		return nil, err
	}
	return []ecs.EntityID{id}, nil
}
