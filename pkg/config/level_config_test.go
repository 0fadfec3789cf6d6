package config

import (
	"errors"
	"testing"

	"github.com/gonewx/survival/pkg/types"
)

func TestLoadLevelsConfig(t *testing.T) {
	t.Run("加载有效配置并回退到 overflow", func(t *testing.T) {
		path := writeTestConfig(t, "levels.yaml", `
levels:
  - level: 1
    waveDuration: 300
    counts: {ordinary: 3}
    weaponPrize: shotgun
  - level: 2
    waveDuration: 600
    counts: {ordinary: 2, crawler: 2, tank: 1, acid: 1}
overflow:
  waveDuration: 900
  counts: {ordinary: 10}
`)
		config, err := LoadLevelsConfig(path)
		if err != nil {
			t.Fatalf("LoadLevelsConfig failed: %v", err)
		}

		l1 := config.GetLevel(1)
		if l1.WaveDuration != 300 || l1.TotalZombies() != 3 {
			t.Errorf("level 1: duration=%d total=%d", l1.WaveDuration, l1.TotalZombies())
		}
		if l1.Prize() != types.WeaponShotgun {
			t.Errorf("level 1 prize: expected shotgun, got %s", l1.Prize())
		}

		quota := config.GetLevel(2).Quota()
		if quota[types.ZombieCrawler] != 2 || quota[types.ZombieTank] != 1 || quota[types.ZombieAcid] != 1 {
			t.Errorf("level 2 quota mismatch: %v", quota)
		}

		l7 := config.GetLevel(7)
		if l7.Level != 7 || l7.WaveDuration != 900 || l7.TotalZombies() != 10 {
			t.Errorf("level 7 should use overflow, got %+v", l7)
		}
		if l7.Prize() != types.WeaponUnknown {
			t.Errorf("overflow should have no prize, got %s", l7.Prize())
		}
	})

	t.Run("非法关卡被剔除并回退", func(t *testing.T) {
		path := writeTestConfig(t, "levels.yaml", `
levels:
  - level: 1
    waveDuration: -5
    counts: {ordinary: 3}
  - level: 2
    waveDuration: 100
    counts: {ghost: 3}
overflow:
  waveDuration: 900
  counts: {ordinary: 10}
`)
		config, err := LoadLevelsConfig(path)
		if err != nil {
			t.Fatalf("LoadLevelsConfig failed: %v", err)
		}
		if len(config.Levels) != 0 {
			t.Errorf("expected all authored levels dropped, got %d", len(config.Levels))
		}
		if config.GetLevel(1).WaveDuration != 900 {
			t.Error("dropped level should fall back to overflow")
		}
	})

	t.Run("overflow 非法时报错", func(t *testing.T) {
		path := writeTestConfig(t, "levels.yaml", `
levels: []
overflow:
  waveDuration: 900
  counts: {ordinary: -1}
`)
		if _, err := LoadLevelsConfig(path); !errors.Is(err, types.ErrInvalidConfiguration) {
			t.Errorf("Expected ErrInvalidConfiguration, got %v", err)
		}
	})

	t.Run("非法奖励武器", func(t *testing.T) {
		if err := validateLevel(LevelConfig{WaveDuration: 1, WeaponPrize: "bfg"}); !errors.Is(err, types.ErrInvalidConfiguration) {
			t.Errorf("Expected ErrInvalidConfiguration, got %v", err)
		}
	})
}

func TestLevelConfig_ZeroQuota(t *testing.T) {
	lc := LevelConfig{WaveDuration: 300}
	if lc.TotalZombies() != 0 {
		t.Errorf("expected 0 zombies, got %d", lc.TotalZombies())
	}
	for _, zt := range types.AllZombieTypes {
		if lc.Quota()[zt] != 0 {
			t.Errorf("quota for %s should be 0", zt)
		}
	}
}
