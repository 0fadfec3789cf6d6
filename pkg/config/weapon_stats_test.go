package config

import (
	"errors"
	"testing"

	"github.com/gonewx/survival/pkg/types"
)

func TestLoadWeaponStats(t *testing.T) {
	t.Run("加载有效配置文件", func(t *testing.T) {
		path := writeTestConfig(t, "weapons.yaml", `
weapons:
  pistol:
    damage: 10
    fireRate: 600
    magazineCapacity: 12
    magazineCount: -1
    reloadDuration: 1
  shotgun:
    damage: 20
    fireRate: 60
    magazineCapacity: 6
    magazineCount: 4
    reloadDuration: 150
`)
		config, err := LoadWeaponStats(path)
		if err != nil {
			t.Fatalf("LoadWeaponStats failed: %v", err)
		}

		pistol, err := config.GetWeaponStats(types.WeaponPistol)
		if err != nil {
			t.Fatalf("pistol not found: %v", err)
		}
		if pistol.MagazineCount != -1 {
			t.Errorf("pistol magazineCount: expected -1, got %d", pistol.MagazineCount)
		}
		if pistol.FireRate != 600 {
			t.Errorf("pistol fireRate: expected 600, got %d", pistol.FireRate)
		}

		if _, err := config.GetWeaponStats(types.WeaponRocketLauncher); !errors.Is(err, types.ErrInvalidConfiguration) {
			t.Errorf("unconfigured weapon should be ErrInvalidConfiguration, got %v", err)
		}
	})

	invalid := []struct {
		name    string
		content string
	}{
		{"空武器列表", "weapons: {}"},
		{"未知武器", "weapons:\n  laser: {damage: 1, fireRate: 1, magazineCapacity: 1}\n"},
		{"弹匣容量为 0", "weapons:\n  pistol: {damage: 1, fireRate: 1, magazineCapacity: 0}\n"},
		{"弹匣数小于 -1", "weapons:\n  pistol: {damage: 1, fireRate: 1, magazineCapacity: 1, magazineCount: -2}\n"},
		{"负换弹时间", "weapons:\n  pistol: {damage: 1, fireRate: 1, magazineCapacity: 1, reloadDuration: -1}\n"},
		{"负射速", "weapons:\n  pistol: {damage: 1, fireRate: -1, magazineCapacity: 1}\n"},
	}

	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadWeaponStats(writeTestConfig(t, "weapons.yaml", tt.content))
			if !errors.Is(err, types.ErrInvalidConfiguration) {
				t.Errorf("Expected ErrInvalidConfiguration, got %v", err)
			}
		})
	}
}
