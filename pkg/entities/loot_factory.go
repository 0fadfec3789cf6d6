package entities

import (
	"fmt"

	"github.com/gonewx/survival/pkg/components"
	"github.com/gonewx/survival/pkg/config"
	"github.com/gonewx/survival/pkg/ecs"
	"github.com/gonewx/survival/pkg/types"
)

// NewLoot 在 (x, y) 放置掉落物，LootLifetimeTicks 后自动消失
// ItemNone 不创建实体，返回 0
func NewLoot(em *ecs.EntityManager, item types.PlayerItem, x, y int) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager: %w", types.ErrNilCollaborator)
	}
	if item.Type == types.ItemNone {
		return 0, nil
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.CollisionComponent{Width: config.LootSize, Height: config.LootSize})
	ecs.AddComponent(em, id, &components.LootComponent{Item: item})
	ecs.AddComponent(em, id, &components.LifetimeComponent{MaxTicks: config.LootLifetimeTicks})
	return id, nil
}
