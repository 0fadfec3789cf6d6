package scenes

import (
	"testing"

	"github.com/gonewx/survival/pkg/config"
	"github.com/gonewx/survival/pkg/simulation"
)

func newTestGameScene(t *testing.T) *GameScene {
	t.Helper()
	session, err := simulation.NewSession(simulation.Options{Provider: config.DefaultProvider(), Seed: 1})
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	return NewGameScene(session, NewSceneManager(), nil, nil)
}

func TestGameScene_AdvanceKeepsRequestsWhilePaused(t *testing.T) {
	t.Run("暂停时按下开火在恢复后生效", func(t *testing.T) {
		s := newTestGameScene(t)
		s.session.Pause()

		s.latch.SetAim(0)
		s.latch.StartFire()
		s.advance()
		if !s.snapshot.Paused || len(s.snapshot.Projectiles) != 0 {
			t.Fatalf("paused scene must not fire, snapshot paused=%v projectiles=%d", s.snapshot.Paused, len(s.snapshot.Projectiles))
		}

		s.session.Resume()
		s.advance()
		if len(s.snapshot.Projectiles) != 1 {
			t.Errorf("fire pressed while paused should apply after resume, got %d projectiles", len(s.snapshot.Projectiles))
		}
	})

	t.Run("暂停期间 tick 不前进", func(t *testing.T) {
		s := newTestGameScene(t)
		s.advance()
		before := s.snapshot.Tick

		s.session.Pause()
		for i := 0; i < 10; i++ {
			s.advance()
		}
		if s.snapshot.Tick != before {
			t.Errorf("tick advanced while paused: %d -> %d", before, s.snapshot.Tick)
		}
	})
}
