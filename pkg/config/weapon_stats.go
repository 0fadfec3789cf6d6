package config

import (
	"fmt"

	"github.com/gonewx/survival/pkg/types"
	"gopkg.in/yaml.v3"
)

// WeaponStats 单个武器类型的属性配置
type WeaponStats struct {
	Damage           int `yaml:"damage"`           // 单发伤害（霰弹为每次射击总伤害，每颗弹丸取 50%）
	FireRate         int `yaml:"fireRate"`         // 射速（发/分钟），0 会被钳制为 1
	MagazineCapacity int `yaml:"magazineCapacity"` // 弹匣容量
	MagazineCount    int `yaml:"magazineCount"`    // 备用弹匣数，-1 表示无限
	ReloadDuration   int `yaml:"reloadDuration"`   // 换弹冷却（tick）
}

// WeaponStatsConfig 武器属性配置文件结构
type WeaponStatsConfig struct {
	Weapons map[string]WeaponStats `yaml:"weapons"` // 武器类型名到属性的映射
}

// LoadWeaponStats 从 YAML 文件加载武器属性配置
//
// 参数：
//
//	filepath - 配置文件路径（"data/" 前缀优先从嵌入资源读取）
//
// 返回：
//
//	*WeaponStatsConfig - 解析后的配置对象
//	error - 读取、解析或校验失败
func LoadWeaponStats(filepath string) (*WeaponStatsConfig, error) {
	data, err := readConfigFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read weapon stats file %s: %w", filepath, err)
	}

	var config WeaponStatsConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse weapon stats YAML from %s: %w: %w", filepath, types.ErrInvalidConfiguration, err)
	}

	if err := validateWeaponStats(&config); err != nil {
		return nil, fmt.Errorf("invalid weapon stats in %s: %w", filepath, err)
	}

	return &config, nil
}

// validateWeaponStats 验证武器属性配置的完整性和合法性
func validateWeaponStats(config *WeaponStatsConfig) error {
	if len(config.Weapons) == 0 {
		return fmt.Errorf("at least one weapon type is required: %w", types.ErrInvalidConfiguration)
	}

	for name, stats := range config.Weapons {
		if _, err := types.ParseWeaponType(name); err != nil {
			return fmt.Errorf("%w: %w", types.ErrInvalidConfiguration, err)
		}
		if err := stats.Validate(); err != nil {
			return fmt.Errorf("weapon %s: %w", name, err)
		}
	}

	return nil
}

// Validate 校验单个武器的属性
func (s WeaponStats) Validate() error {
	if s.Damage < 0 {
		return fmt.Errorf("damage cannot be negative, got %d: %w", s.Damage, types.ErrInvalidConfiguration)
	}
	if s.FireRate < 0 {
		return fmt.Errorf("fireRate cannot be negative, got %d: %w", s.FireRate, types.ErrInvalidConfiguration)
	}
	if s.MagazineCapacity < 1 {
		return fmt.Errorf("magazineCapacity must be at least 1, got %d: %w", s.MagazineCapacity, types.ErrInvalidConfiguration)
	}
	if s.MagazineCount < -1 {
		return fmt.Errorf("magazineCount must be -1 (infinite) or >= 0, got %d: %w", s.MagazineCount, types.ErrInvalidConfiguration)
	}
	if s.ReloadDuration < 0 {
		return fmt.Errorf("reloadDuration cannot be negative, got %d: %w", s.ReloadDuration, types.ErrInvalidConfiguration)
	}
	return nil
}

// GetWeaponStats 获取指定武器类型的属性
// 类型未配置时返回 ErrInvalidConfiguration，调用方据此拒绝构造该武器
func (c *WeaponStatsConfig) GetWeaponStats(weaponType types.WeaponType) (WeaponStats, error) {
	stats, ok := c.Weapons[weaponType.String()]
	if !ok {
		return WeaponStats{}, fmt.Errorf("weapon %s not configured: %w", weaponType, types.ErrInvalidConfiguration)
	}
	return stats, nil
}
