package game

import (
	"errors"
	"testing"

	"github.com/gonewx/survival/pkg/config"
	"github.com/gonewx/survival/pkg/types"
)

func newTestPlayer(t *testing.T) *Player {
	t.Helper()
	p, err := NewPlayer(config.DefaultProvider(), 640, 360)
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	return p
}

func TestNewPlayer(t *testing.T) {
	t.Run("初始只有手枪", func(t *testing.T) {
		p := newTestPlayer(t)
		got := p.WeaponTypes()
		if len(got) != 1 || got[0] != types.WeaponPistol {
			t.Errorf("expected [pistol], got %v", got)
		}
		if p.Health() != config.PlayerMaxHealth || p.Score() != 0 {
			t.Errorf("unexpected initial health/score %v/%d", p.Health(), p.Score())
		}
	})

	t.Run("provider为空", func(t *testing.T) {
		if _, err := NewPlayer(nil, 0, 0); !errors.Is(err, types.ErrNilCollaborator) {
			t.Errorf("expected ErrNilCollaborator, got %v", err)
		}
	})
}

func TestPlayer_MoveClamped(t *testing.T) {
	p := newTestPlayer(t)
	p.Move(-10000, 10000, config.ArenaWidth, config.ArenaHeight)
	x, y := p.Position()
	half := config.PlayerSize / 2
	if x != half || y != config.ArenaHeight-half {
		t.Errorf("expected clamp to (%d,%d), got (%d,%d)", half, config.ArenaHeight-half, x, y)
	}
}

func TestPlayer_TakeDamage(t *testing.T) {
	p := newTestPlayer(t)

	if p.TakeDamage(0) || p.TakeDamage(-5) {
		t.Error("non-positive damage should be ignored")
	}
	if p.TakeDamage(60) {
		t.Error("60 damage should not kill")
	}
	if !p.TakeDamage(60) {
		t.Error("second hit should kill")
	}
	if p.Health() != 0 || !p.IsDead() {
		t.Errorf("health should clamp to 0, got %v", p.Health())
	}
	if p.TakeDamage(10) {
		t.Error("dead player must not report death again")
	}
}

func TestPlayer_GrantAndSwitchWeapon(t *testing.T) {
	p := newTestPlayer(t)

	added, err := p.GrantWeapon(types.WeaponShotgun)
	if err != nil || !added {
		t.Fatalf("grant shotgun: %v %v", added, err)
	}
	added, _ = p.GrantWeapon(types.WeaponShotgun)
	if added {
		t.Error("duplicate weapon should not be added")
	}
	if _, err := p.GrantWeapon(types.WeaponUnknown); err == nil {
		t.Error("unknown weapon should fail")
	}

	p.SwitchWeapon(1)
	if p.CurrentWeapon().Type() != types.WeaponShotgun {
		t.Errorf("expected shotgun, got %s", p.CurrentWeapon().Type())
	}
	p.SwitchWeapon(1)
	if p.CurrentWeapon().Type() != types.WeaponPistol {
		t.Error("switch should wrap around")
	}
	p.SwitchWeapon(-1)
	if p.CurrentWeapon().Type() != types.WeaponShotgun {
		t.Error("negative switch should wrap around")
	}
	if p.SelectWeapon(5) {
		t.Error("out-of-range select should be ignored")
	}
}

func TestPlayer_Fire(t *testing.T) {
	p := newTestPlayer(t)
	p.SetFacing(1.5)

	shot, err := p.Fire()
	if err != nil {
		t.Fatalf("Fire: %v", err)
	}
	if shot.X != 640 || shot.Y != 360 || shot.Facing != 1.5 || shot.Type != types.ProjectileBullet {
		t.Errorf("unexpected shot %+v", shot)
	}
	if _, err := p.Fire(); err == nil {
		t.Error("second shot in the same tick should be on cooldown")
	}
}

func TestPlayer_Pickup(t *testing.T) {
	t.Run("没有对应武器的弹药不拾取", func(t *testing.T) {
		p := newTestPlayer(t)
		item := types.PlayerItem{Type: types.ItemAmmunition, WeaponType: types.WeaponShotgun, Count: 1}
		if p.Pickup(item) {
			t.Error("ammo for an unowned weapon should not be consumed")
		}
	})

	t.Run("弹药补充弹匣", func(t *testing.T) {
		p := newTestPlayer(t)
		p.GrantWeapon(types.WeaponShotgun)
		before := p.Weapon(types.WeaponShotgun).Magazines()
		item := types.PlayerItem{Type: types.ItemAmmunition, WeaponType: types.WeaponShotgun, Count: 1}
		if !p.Pickup(item) {
			t.Fatal("ammo should be consumed")
		}
		if got := p.Weapon(types.WeaponShotgun).Magazines(); got != before+1 {
			t.Errorf("expected %d magazines, got %d", before+1, got)
		}
	})

	t.Run("医疗包进入道具栏", func(t *testing.T) {
		p := newTestPlayer(t)
		p.Pickup(types.PlayerItem{Type: types.ItemSmallMedicPack, Heal: config.SmallMedicPackHeal})
		p.Pickup(types.PlayerItem{Type: types.ItemLargeMedicPack, Heal: config.LargeMedicPackHeal})
		if p.ItemCount(types.ItemSmallMedicPack) != 1 || p.ItemCount(types.ItemLargeMedicPack) != 1 {
			t.Error("medkits should be stored")
		}
		if p.Pickup(types.PlayerItem{Type: types.ItemNone}) {
			t.Error("none item should not be consumed")
		}
	})
}

func TestPlayer_UseMedkit(t *testing.T) {
	tests := []struct {
		name      string
		damage    float64
		wantHeal  float64
		wantSmall int
		wantLarge int
	}{
		{"轻伤优先小医疗包", 10, 10, 0, 1},
		{"重伤优先大医疗包", 40, 40, 1, 0},
		{"濒死用大医疗包", 90, 50, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPlayer(t)
			p.Pickup(types.PlayerItem{Type: types.ItemSmallMedicPack})
			p.Pickup(types.PlayerItem{Type: types.ItemLargeMedicPack})
			p.TakeDamage(tt.damage)

			healed, ok := p.UseMedkit()
			if !ok || healed != tt.wantHeal {
				t.Errorf("expected heal %v, got %v (%v)", tt.wantHeal, healed, ok)
			}
			if p.ItemCount(types.ItemSmallMedicPack) != tt.wantSmall || p.ItemCount(types.ItemLargeMedicPack) != tt.wantLarge {
				t.Errorf("unexpected inventory small=%d large=%d",
					p.ItemCount(types.ItemSmallMedicPack), p.ItemCount(types.ItemLargeMedicPack))
			}
		})
	}

	t.Run("满血不使用", func(t *testing.T) {
		p := newTestPlayer(t)
		p.Pickup(types.PlayerItem{Type: types.ItemSmallMedicPack})
		if _, ok := p.UseMedkit(); ok {
			t.Error("full health should not consume a medkit")
		}
	})

	t.Run("没有医疗包", func(t *testing.T) {
		p := newTestPlayer(t)
		p.TakeDamage(20)
		if _, ok := p.UseMedkit(); ok {
			t.Error("empty inventory should not heal")
		}
	})
}

func TestPlayer_StateIsCopy(t *testing.T) {
	p := newTestPlayer(t)
	p.Pickup(types.PlayerItem{Type: types.ItemSmallMedicPack})
	s := p.State()
	s.Items[types.ItemSmallMedicPack] = 99
	if p.ItemCount(types.ItemSmallMedicPack) != 1 {
		t.Error("State must not alias the inventory")
	}
	if len(s.Weapons) != 1 || s.Weapons[0].Type != types.WeaponPistol {
		t.Errorf("unexpected weapons %+v", s.Weapons)
	}
}
