package scenes

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalls int
	drawCalled  bool
	closed      bool
}

func (m *MockScene) Update()                   { m.updateCalls++ }
func (m *MockScene) Draw(screen *ebiten.Image) { m.drawCalled = true }
func (m *MockScene) Close()                    { m.closed = true }

// TestSceneManagerSwitchTo verifies that SwitchTo changes the active scene and closes the old one.
func TestSceneManagerSwitchTo(t *testing.T) {
	sm := NewSceneManager()
	first := &MockScene{}
	second := &MockScene{}

	sm.SwitchTo(first)
	sm.SwitchTo(first)
	if first.closed {
		t.Error("switching to the same scene must not close it")
	}

	sm.SwitchTo(second)
	if sm.GetCurrentScene() != second {
		t.Error("SwitchTo did not set the current scene correctly")
	}
	if !first.closed {
		t.Error("previous scene should be closed")
	}
}

// TestSceneManagerUpdateDraw verifies delegation to the active scene.
func TestSceneManagerUpdateDraw(t *testing.T) {
	sm := NewSceneManager()
	sm.Update()
	sm.Draw(nil)

	scene := &MockScene{}
	sm.SwitchTo(scene)
	sm.Update()
	sm.Update()
	sm.Draw(nil)

	if scene.updateCalls != 2 || !scene.drawCalled {
		t.Errorf("expected 2 updates and a draw, got %d / %v", scene.updateCalls, scene.drawCalled)
	}
}

// TestSceneManagerNewGame verifies the factory is used for new games.
func TestSceneManagerNewGame(t *testing.T) {
	sm := NewSceneManager()
	sm.NewGame()
	if sm.GetCurrentScene() != nil {
		t.Error("NewGame without a factory must not change the scene")
	}

	created := 0
	sm.SetSceneFactory(func() Scene {
		created++
		return &MockScene{}
	})
	sm.NewGame()
	sm.NewGame()
	if created != 2 || sm.GetCurrentScene() == nil {
		t.Errorf("expected 2 scenes created, got %d", created)
	}
}
