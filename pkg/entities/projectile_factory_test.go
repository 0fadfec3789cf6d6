package entities

import (
	"errors"
	"math"
	"testing"

	"github.com/gonewx/survival/pkg/components"
	"github.com/gonewx/survival/pkg/ecs"
	"github.com/gonewx/survival/pkg/types"
	"github.com/gonewx/survival/pkg/weapons"
)

// TestNewShotgunPellets 霰弹 (100,100) 朝向 0 伤害 10：9 颗子弹，45° 扇面，每颗伤害 5
func TestNewShotgunPellets(t *testing.T) {
	em := ecs.NewEntityManager()

	group, children, err := NewShotgunPellets(em, 100, 100, 0, 10)
	if err != nil {
		t.Fatalf("NewShotgunPellets failed: %v", err)
	}
	if len(children) != 9 {
		t.Fatalf("Expected 9 pellets, got %d", len(children))
	}

	step := 45.0 / 9.0 * math.Pi / 180
	for i, id := range children {
		proj, ok := ecs.GetComponent[*components.ProjectileComponent](em, id)
		if !ok {
			t.Fatalf("pellet %d missing ProjectileComponent", i)
		}
		if proj.Type != types.ProjectileBullet {
			t.Errorf("pellet %d: expected bullet, got %s", i, proj.Type)
		}
		if proj.Damage != 5 {
			t.Errorf("pellet %d: expected damage 5, got %v", i, proj.Damage)
		}
		if proj.Group != group {
			t.Errorf("pellet %d: group mismatch", i)
		}

		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		want := float64(i-4) * step
		if math.Abs(pos.Facing-want) > 1e-9 {
			t.Errorf("pellet %d: facing %.6f, want %.6f", i, pos.Facing, want)
		}
		if pos.X != 100 || pos.Y != 100 {
			t.Errorf("pellet %d: position (%d,%d)", i, pos.X, pos.Y)
		}
	}

	first, _ := ecs.GetComponent[*components.PositionComponent](em, children[0])
	last, _ := ecs.GetComponent[*components.PositionComponent](em, children[8])
	if spread := (last.Facing - first.Facing) * 180 / math.Pi; math.Abs(spread-40) > 1e-9 {
		t.Errorf("outermost pellets should be 8 steps apart (40°), got %.4f°", spread)
	}

	pg, ok := ecs.GetComponent[*components.PelletGroupComponent](em, group)
	if !ok || len(pg.Children) != 9 {
		t.Error("group should list all 9 pellets")
	}
	if ecs.HasComponent[*components.CollisionComponent](em, group) {
		t.Error("group entity must not have its own hitbox")
	}
}

func TestNewProjectile(t *testing.T) {
	em := ecs.NewEntityManager()

	t.Run("酸液为敌方投射物", func(t *testing.T) {
		id, err := NewProjectile(em, types.ProjectileAcidSpit, 10, 20, 0, 0.5)
		if err != nil {
			t.Fatalf("NewProjectile failed: %v", err)
		}
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](em, id)
		if !proj.Hostile {
			t.Error("acid spit should be hostile")
		}
	})

	t.Run("霰弹不能用单体构造", func(t *testing.T) {
		_, err := NewProjectile(em, types.ProjectileShotgunPellets, 0, 0, 0, 1)
		if !errors.Is(err, types.ErrNilCollaborator) {
			t.Errorf("Expected ErrNilCollaborator, got %v", err)
		}
	})

	t.Run("实体管理器为 nil", func(t *testing.T) {
		_, err := NewProjectile(nil, types.ProjectileBullet, 0, 0, 0, 1)
		if !errors.Is(err, types.ErrNilCollaborator) {
			t.Errorf("Expected ErrNilCollaborator, got %v", err)
		}
	})
}

func TestSpawnShot(t *testing.T) {
	em := ecs.NewEntityManager()

	ids, err := SpawnShot(em, weapons.Shot{Type: types.ProjectileShotgunPellets, X: 1, Y: 2, Damage: 20})
	if err != nil || len(ids) != 9 {
		t.Fatalf("shotgun shot: ids=%d err=%v", len(ids), err)
	}

	ids, err = SpawnShot(em, weapons.Shot{Type: types.ProjectileRocket, X: 1, Y: 2, Damage: 150})
	if err != nil || len(ids) != 1 {
		t.Fatalf("rocket shot: ids=%d err=%v", len(ids), err)
	}
	proj, _ := ecs.GetComponent[*components.ProjectileComponent](em, ids[0])
	if proj.Damage != 150 || proj.Hostile {
		t.Errorf("unexpected rocket %+v", proj)
	}
}
