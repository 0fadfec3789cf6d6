package entities

import (
	"testing"

	"github.com/gonewx/survival/pkg/components"
	"github.com/gonewx/survival/pkg/config"
	"github.com/gonewx/survival/pkg/ecs"
	"github.com/gonewx/survival/pkg/types"
)

func TestNewLoot(t *testing.T) {
	em := ecs.NewEntityManager()

	t.Run("空掉落物不创建实体", func(t *testing.T) {
		id, err := NewLoot(em, types.PlayerItem{Type: types.ItemNone}, 0, 0)
		if err != nil || id != 0 {
			t.Errorf("expected (0, nil), got (%d, %v)", id, err)
		}
		if em.EntityCount() != 0 {
			t.Error("no entity should be created")
		}
	})

	t.Run("医疗包带生命周期", func(t *testing.T) {
		item := types.PlayerItem{Type: types.ItemLargeMedicPack, Heal: config.LargeMedicPackHeal}
		id, err := NewLoot(em, item, 50, 60)
		if err != nil {
			t.Fatalf("NewLoot failed: %v", err)
		}
		loot, ok := ecs.GetComponent[*components.LootComponent](em, id)
		if !ok || loot.Item != item {
			t.Errorf("unexpected loot %+v", loot)
		}
		life, ok := ecs.GetComponent[*components.LifetimeComponent](em, id)
		if !ok || life.MaxTicks != config.LootLifetimeTicks {
			t.Errorf("unexpected lifetime %+v", life)
		}
	})
}
