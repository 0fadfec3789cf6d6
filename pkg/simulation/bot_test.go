package simulation

import (
	"math"
	"testing"

	"github.com/gonewx/survival/pkg/game"
	"github.com/gonewx/survival/pkg/types"
	"github.com/gonewx/survival/pkg/weapons"
)

func botSnapshot(zombies ...ZombieView) Snapshot {
	return Snapshot{
		Player: game.PlayerState{
			X: 100, Y: 100, Health: 100, MaxHealth: 100,
			Weapons: []weapons.State{{Type: types.WeaponPistol, Ammo: 12, MagazineCapacity: 12, MagazineCount: -1}},
		},
		Zombies: zombies,
	}
}

func TestBot_AimsAtNearestZombie(t *testing.T) {
	b := NewBot()
	in := b.Decide(botSnapshot(
		ZombieView{ID: 1, X: 400, Y: 100},
		ZombieView{ID: 2, X: 100, Y: 150},
	))
	if !in.HasAim || math.Abs(in.Aim-math.Pi/2) > 1e-9 {
		t.Errorf("expected aim straight down, got %v", in.Aim)
	}
	if !in.FireStart {
		t.Error("bot should start firing when a zombie is visible")
	}

	in = b.Decide(botSnapshot(ZombieView{ID: 2, X: 100, Y: 150}))
	if in.FireStart {
		t.Error("fire start should only be sent once")
	}

	in = b.Decide(botSnapshot())
	if !in.FireStop {
		t.Error("bot should stop firing once the field is empty")
	}
}

func TestBot_ReloadAndSwitch(t *testing.T) {
	t.Run("空弹匣换弹", func(t *testing.T) {
		snap := botSnapshot(ZombieView{X: 200, Y: 100})
		snap.Player.Weapons[0].Ammo = 0
		if in := NewBot().Decide(snap); !in.Reload || in.SwitchWeapon != 0 {
			t.Errorf("expected reload, got %+v", in)
		}
	})

	t.Run("没有备用弹匣时切枪", func(t *testing.T) {
		snap := botSnapshot(ZombieView{X: 200, Y: 100})
		snap.Player.Weapons[0] = weapons.State{Type: types.WeaponShotgun, MagazineCapacity: 6}
		if in := NewBot().Decide(snap); in.Reload || in.SwitchWeapon != 1 {
			t.Errorf("expected weapon switch, got %+v", in)
		}
	})

	t.Run("低血量用医疗包", func(t *testing.T) {
		snap := botSnapshot()
		snap.Player.Health = 30
		if in := NewBot().Decide(snap); !in.UseMedkit {
			t.Error("expected medkit request")
		}
	})
}

func TestBot_SurvivesFirstLevel(t *testing.T) {
	s := newTestSession(t, Options{Seed: 11})
	s.StartWave()
	b := NewBot()

	snap := s.Snapshot()
	for i := 0; i < 4000 && !s.IsWaveOver() && !s.IsGameOver(); i++ {
		snap = s.Tick(b.Decide(snap))
	}
	if s.IsGameOver() {
		t.Fatalf("bot died on level 1 at tick %d", s.CurrentTick())
	}
	if !s.IsWaveOver() {
		t.Fatalf("level 1 not cleared after %d ticks, %d zombies left", s.CurrentTick(), s.RemainingZombies())
	}
	if s.Score() != 8*10 {
		t.Errorf("expected 80 points for 8 ordinary zombies, got %d", s.Score())
	}
}
