package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gonewx/survival/pkg/types"
)

func writeTestConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return path
}

func TestLoadZombieStats(t *testing.T) {
	t.Run("加载有效配置文件", func(t *testing.T) {
		path := writeTestConfig(t, "zombies.yaml", `
zombies:
  ordinary:
    health: 30
    speed: 2
    damage: 1
    points: 10
    size: 36
  acid:
    health: 40
    speed: 2
    damage: 1
    range: 500
    points: 25
    size: 36
`)
		config, err := LoadZombieStats(path)
		if err != nil {
			t.Fatalf("LoadZombieStats failed: %v", err)
		}

		if len(config.Zombies) != 2 {
			t.Errorf("Expected 2 zombie types, got %d", len(config.Zombies))
		}

		acid, err := config.GetZombieStats(types.ZombieAcid)
		if err != nil {
			t.Fatalf("acid zombie not found: %v", err)
		}
		if acid.Range != 500 {
			t.Errorf("acid range: expected 500, got %d", acid.Range)
		}
		if acid.Points != 25 {
			t.Errorf("acid points: expected 25, got %d", acid.Points)
		}

		if _, err := config.GetZombieStats(types.ZombieTank); !errors.Is(err, types.ErrInvalidConfiguration) {
			t.Errorf("missing tank should be ErrInvalidConfiguration, got %v", err)
		}
	})

	t.Run("文件不存在", func(t *testing.T) {
		_, err := LoadZombieStats(filepath.Join(t.TempDir(), "nonexistent.yaml"))
		if err == nil {
			t.Error("Expected error for nonexistent file")
		}
	})

	invalid := []struct {
		name    string
		content string
	}{
		{"无效 YAML 格式", "invalid: yaml: content: ["},
		{"空僵尸列表", "zombies: {}"},
		{"未知僵尸类型", "zombies:\n  dragon: {health: 10, speed: 1, size: 10}\n"},
		{"非正血量", "zombies:\n  ordinary: {health: 0, speed: 1, size: 10}\n"},
		{"负速度", "zombies:\n  ordinary: {health: 10, speed: -1, size: 10}\n"},
		{"负分值", "zombies:\n  ordinary: {health: 10, speed: 1, points: -5, size: 10}\n"},
		{"缺少尺寸", "zombies:\n  ordinary: {health: 10, speed: 1}\n"},
	}

	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadZombieStats(writeTestConfig(t, "zombies.yaml", tt.content))
			if !errors.Is(err, types.ErrInvalidConfiguration) {
				t.Errorf("Expected ErrInvalidConfiguration, got %v", err)
			}
		})
	}
}

func TestLoadZombieStats_RangeDefaults(t *testing.T) {
	path := writeTestConfig(t, "zombies.yaml", `
zombies:
  ordinary: {health: 30, speed: 2, damage: 1, points: 10, size: 36}
  crawler: {health: 15, speed: 3, damage: 1, points: 15, size: 28}
  acid: {health: 40, speed: 2, damage: 1, points: 25, size: 36}
  tank: {health: 200, speed: 1, damage: 3, range: 80, points: 40, size: 56}
`)
	config, err := LoadZombieStats(path)
	if err != nil {
		t.Fatalf("LoadZombieStats failed: %v", err)
	}

	tests := []struct {
		name       string
		zombieType types.ZombieType
		wantRange  int
	}{
		{"爬行僵尸缺省飞扑距离", types.ZombieCrawler, JumpDistance},
		{"酸液僵尸缺省射程", types.ZombieAcid, SpitRange},
		{"普通僵尸保持 0", types.ZombieOrdinary, 0},
		{"显式配置不被覆盖", types.ZombieTank, 80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats, err := config.GetZombieStats(tt.zombieType)
			if err != nil {
				t.Fatalf("GetZombieStats(%s) failed: %v", tt.zombieType, err)
			}
			if stats.Range != tt.wantRange {
				t.Errorf("range: expected %d, got %d", tt.wantRange, stats.Range)
			}
		})
	}
}
