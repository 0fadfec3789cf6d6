package game

import (
	"log"
	"sync"

	"github.com/quasilyte/gdata/v2"
)

// GameSettings 全局游戏设置
type GameSettings struct {
	// 音频设置
	SoundVolume  float64 `yaml:"soundVolume"`  // 音效音量 0.0 ~ 1.0
	SoundEnabled bool    `yaml:"soundEnabled"` // 音效开关

	// 显示设置
	Fullscreen   bool `yaml:"fullscreen"`   // 启动时是否全屏
	ShowHitboxes bool `yaml:"showHitboxes"` // 绘制碰撞盒（调试）
}

// DefaultSettings 返回默认设置
func DefaultSettings() *GameSettings {
	return &GameSettings{
		SoundVolume:  0.8,
		SoundEnabled: true,
	}
}

// SettingsManager 设置管理器
//
// 设置修改后立即写回存储；存储不可用时只在内存中生效。
// 音效在事件分发 goroutine 中读取设置，所有访问都经过锁。
type SettingsManager struct {
	mu       sync.RWMutex
	store    yamlStore
	settings *GameSettings
}

// NewSettingsManager 创建设置管理器并加载已保存的设置
//
// 参数：
//   - gdataManager: 可为 nil（降级模式，仅内存设置）
//
// 加载失败不是致命错误，使用默认设置，error 始终为 nil
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		store:    yamlStore{manager: gdataManager, object: "settings", property: "global"},
		settings: DefaultSettings(),
	}
	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: %v (using defaults)", err)
	}
	return sm, nil
}

// Load 重新加载设置
// 缺失的字段保留默认值，失败时整体回退到默认设置
func (sm *SettingsManager) Load() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	loaded := DefaultSettings()
	found, err := sm.store.load(loaded)
	if err != nil || !found {
		sm.settings = DefaultSettings()
		return err
	}
	loaded.SoundVolume = clampVolume(loaded.SoundVolume)
	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded")
	return nil
}

// Save 保存设置
func (sm *SettingsManager) Save() error {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.store.save(sm.settings)
}

// GetSettings 返回当前设置的副本
func (sm *SettingsManager) GetSettings() *GameSettings {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	s := *sm.settings
	return &s
}

// update 在锁内修改设置并写回存储
func (sm *SettingsManager) update(fn func(s *GameSettings)) {
	sm.mu.Lock()
	fn(sm.settings)
	sm.mu.Unlock()

	if err := sm.Save(); err != nil {
		log.Printf("[SettingsManager] Failed to save settings: %v", err)
	}
}

// SetSoundVolume 设置音效音量，限制在 0.0 ~ 1.0
func (sm *SettingsManager) SetSoundVolume(volume float64) {
	sm.update(func(s *GameSettings) { s.SoundVolume = clampVolume(volume) })
}

// SetSoundEnabled 设置音效开关
func (sm *SettingsManager) SetSoundEnabled(enabled bool) {
	sm.update(func(s *GameSettings) { s.SoundEnabled = enabled })
}

// SetFullscreen 设置全屏模式
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.update(func(s *GameSettings) { s.Fullscreen = enabled })
}

// SetShowHitboxes 设置是否绘制碰撞盒
func (sm *SettingsManager) SetShowHitboxes(enabled bool) {
	sm.update(func(s *GameSettings) { s.ShowHitboxes = enabled })
}

func clampVolume(volume float64) float64 {
	return min(max(volume, 0.0), 1.0)
}
