package game

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// openTestGdata 在临时 HOME 下打开 gdata 存储
func openTestGdata(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	gdataManager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return gdataManager
}

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings.SoundVolume != 0.8 {
		t.Errorf("SoundVolume: got %v, want 0.8", settings.SoundVolume)
	}
	if !settings.SoundEnabled {
		t.Error("SoundEnabled: got false, want true")
	}
	if settings.Fullscreen || settings.ShowHitboxes {
		t.Error("Fullscreen and ShowHitboxes should default to false")
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager(nil) error: %v", err)
	}

	sm.SetSoundVolume(0.3)
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should not fail: %v", err)
	}
	if err := sm.Load(); err != nil {
		t.Errorf("Load() in degraded mode should not fail: %v", err)
	}
	if sm.GetSettings().SoundVolume != 0.8 {
		t.Errorf("After Load() in degraded mode, SoundVolume: got %v, want 0.8", sm.GetSettings().SoundVolume)
	}
}

// TestSettingsLoadSave 测试设置的保存和重新加载
func TestSettingsLoadSave(t *testing.T) {
	gdataManager := openTestGdata(t, "test_survival_settings")

	sm1, _ := NewSettingsManager(gdataManager)
	sm1.SetSoundVolume(0.25)
	sm1.SetSoundEnabled(false)
	sm1.SetFullscreen(true)
	sm1.SetShowHitboxes(true)
	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	sm2, _ := NewSettingsManager(gdataManager)
	settings := sm2.GetSettings()
	if settings.SoundVolume != 0.25 {
		t.Errorf("Loaded SoundVolume: got %v, want 0.25", settings.SoundVolume)
	}
	if settings.SoundEnabled {
		t.Error("Loaded SoundEnabled: got true, want false")
	}
	if !settings.Fullscreen || !settings.ShowHitboxes {
		t.Error("Loaded display settings mismatch")
	}
}

// TestClampVolume 测试音量范围限制
func TestClampVolume(t *testing.T) {
	tests := []struct {
		name   string
		input  float64
		expect float64
	}{
		{"低于下限", -0.5, 0.0},
		{"正常值", 0.5, 0.5},
		{"高于上限", 1.5, 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm, _ := NewSettingsManager(nil)
			sm.SetSoundVolume(tt.input)
			if got := sm.GetSettings().SoundVolume; got != tt.expect {
				t.Errorf("SetSoundVolume(%v): got %v, want %v", tt.input, got, tt.expect)
			}
		})
	}
}
