package components

import (
	"github.com/gonewx/survival/pkg/ecs"
	"github.com/gonewx/survival/pkg/types"
)

// ProjectileComponent 投射物数据
// 运动方向取自 PositionComponent.Facing
type ProjectileComponent struct {
	Type    types.ProjectileType
	Damage  float64
	Speed   int
	Hostile bool         // 敌方投射物（酸液）只与玩家判定
	Group   ecs.EntityID // 所属霰弹组，0 表示独立投射物
}

// PelletGroupComponent 霰弹组
// 组实体本身不参与碰撞，碰撞逐个检查 Children
type PelletGroupComponent struct {
	Children []ecs.EntityID
}
