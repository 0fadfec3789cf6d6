package systems

import (
	"github.com/gonewx/survival/pkg/components"
	"github.com/gonewx/survival/pkg/ecs"
	"github.com/gonewx/survival/pkg/utils"
)

// entityBox 返回实体的轴对齐碰撞盒（以位置为中心）
func entityBox(em *ecs.EntityManager, id ecs.EntityID) (utils.BoundingBox, bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		return utils.BoundingBox{}, false
	}
	col, ok := ecs.GetComponent[*components.CollisionComponent](em, id)
	if !ok {
		return utils.BoundingBox{}, false
	}
	return utils.BoxAround(pos.X, pos.Y, col.Width, col.Height), true
}

// entityHitsBox 实体碰撞盒是否与给定碰撞盒重叠
// Rotated 的实体按朝向旋转后用分离轴定理判定，否则用 AABB
func entityHitsBox(em *ecs.EntityManager, id ecs.EntityID, other utils.BoundingBox) bool {
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		return false
	}
	col, ok := ecs.GetComponent[*components.CollisionComponent](em, id)
	if !ok {
		return false
	}

	box := utils.BoxAround(pos.X, pos.Y, col.Width, col.Height)
	if !col.Rotated {
		return box.Intersects(other)
	}
	return utils.RotatedBoundingBox{BoundingBox: box, Angle: pos.Facing}.IntersectsBox(other)
}

// isLive 实体存在且未被标记删除
func isLive(em *ecs.EntityManager, id ecs.EntityID) bool {
	return em.IsAlive(id)
}

// liveZombies 返回存活僵尸（按创建顺序），跳过已死亡或已标记删除的
func liveZombies(em *ecs.EntityManager) []ecs.EntityID {
	ids := ecs.GetEntitiesWith3[*components.ZombieComponent, *components.HealthComponent, *components.PositionComponent](em)
	out := make([]ecs.EntityID, 0, len(ids))
	for _, id := range ids {
		if !isLive(em, id) {
			continue
		}
		health, _ := ecs.GetComponent[*components.HealthComponent](em, id)
		if health.Dead {
			continue
		}
		out = append(out, id)
	}
	return out
}
