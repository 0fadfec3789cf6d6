package systems

import (
	"github.com/gonewx/survival/pkg/components"
	"github.com/gonewx/survival/pkg/ecs"
)

// LifetimeSystem 管理实体的生命周期
type LifetimeSystem struct {
	entityManager *ecs.EntityManager
}

// NewLifetimeSystem 创建一个新的生命周期系统
func NewLifetimeSystem(em *ecs.EntityManager) *LifetimeSystem {
	return &LifetimeSystem{
		entityManager: em,
	}
}

// Update 推进所有拥有生命周期组件的实体一个 tick
func (s *LifetimeSystem) Update() {
	entities := ecs.GetEntitiesWith1[*components.LifetimeComponent](s.entityManager)

	for _, id := range entities {
		lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
		if !ok {
			continue
		}

		lifetime.ElapsedTicks++
		if lifetime.ElapsedTicks >= lifetime.MaxTicks {
			lifetime.IsExpired = true
		}

		// 过期实体标记待删除
		if lifetime.IsExpired {
			s.entityManager.DestroyEntity(id)
		}
	}
}
