package config

import (
	"fmt"

	"github.com/gonewx/survival/pkg/types"
	"gopkg.in/yaml.v3"
)

// ZombieStats 单个僵尸类型的属性配置
type ZombieStats struct {
	Health float64 `yaml:"health"` // 初始生命值
	Speed  int     `yaml:"speed"`  // 移动速度（像素/tick）
	Damage int     `yaml:"damage"` // 接触伤害（每 tick）
	Range  int     `yaml:"range"`  // 特殊行为距离：爬行僵尸飞扑距离 / 酸液僵尸射程，0 使用默认值
	Points int     `yaml:"points"` // 击杀得分
	Size   int     `yaml:"size"`   // 碰撞盒边长（像素）
}

// ZombieStatsConfig 僵尸属性配置文件结构
type ZombieStatsConfig struct {
	Zombies map[string]ZombieStats `yaml:"zombies"` // 僵尸类型到属性的映射
}

// LoadZombieStats 从 YAML 文件加载僵尸属性配置
// 参数：
//
//	filepath - 配置文件路径（"data/" 前缀优先从嵌入资源读取）
//
// 返回：
//
//	*ZombieStatsConfig - 解析后的配置对象
//	error - 如果文件读取或解析失败，返回错误信息
func LoadZombieStats(filepath string) (*ZombieStatsConfig, error) {
	data, err := readConfigFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read zombie stats file %s: %w", filepath, err)
	}

	var config ZombieStatsConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse zombie stats YAML from %s: %w: %w", filepath, types.ErrInvalidConfiguration, err)
	}

	if err := validateZombieStats(&config); err != nil {
		return nil, fmt.Errorf("invalid zombie stats in %s: %w", filepath, err)
	}

	applyDefaults(&config)

	return &config, nil
}

// applyDefaults 为未配置 range 的爬行/酸液僵尸填入默认飞扑距离和射程
func applyDefaults(config *ZombieStatsConfig) {
	for name, stats := range config.Zombies {
		if stats.Range != 0 {
			continue
		}
		switch name {
		case types.ZombieCrawler.String():
			stats.Range = JumpDistance
		case types.ZombieAcid.String():
			stats.Range = SpitRange
		default:
			continue
		}
		config.Zombies[name] = stats
	}
}

// validateZombieStats 验证僵尸属性配置的完整性和合法性
func validateZombieStats(config *ZombieStatsConfig) error {
	if len(config.Zombies) == 0 {
		return fmt.Errorf("at least one zombie type is required: %w", types.ErrInvalidConfiguration)
	}

	for zombieType, stats := range config.Zombies {
		if _, err := types.ParseZombieType(zombieType); err != nil {
			return fmt.Errorf("%w: %w", types.ErrInvalidConfiguration, err)
		}

		if stats.Health <= 0 {
			return fmt.Errorf("zombie %s: health must be positive, got %v: %w", zombieType, stats.Health, types.ErrInvalidConfiguration)
		}

		if stats.Speed < 0 {
			return fmt.Errorf("zombie %s: speed cannot be negative, got %d: %w", zombieType, stats.Speed, types.ErrInvalidConfiguration)
		}

		if stats.Damage < 0 {
			return fmt.Errorf("zombie %s: damage cannot be negative, got %d: %w", zombieType, stats.Damage, types.ErrInvalidConfiguration)
		}

		if stats.Range < 0 {
			return fmt.Errorf("zombie %s: range cannot be negative, got %d: %w", zombieType, stats.Range, types.ErrInvalidConfiguration)
		}

		if stats.Points < 0 {
			return fmt.Errorf("zombie %s: points cannot be negative, got %d: %w", zombieType, stats.Points, types.ErrInvalidConfiguration)
		}

		if stats.Size <= 0 {
			return fmt.Errorf("zombie %s: size must be positive, got %d: %w", zombieType, stats.Size, types.ErrInvalidConfiguration)
		}
	}

	return nil
}

// GetZombieStats 获取指定僵尸类型的完整属性
// 如果僵尸类型不存在，返回 ErrInvalidConfiguration
func (c *ZombieStatsConfig) GetZombieStats(zombieType types.ZombieType) (ZombieStats, error) {
	stats, ok := c.Zombies[zombieType.String()]
	if !ok {
		return ZombieStats{}, fmt.Errorf("zombie %s not configured: %w", zombieType, types.ErrInvalidConfiguration)
	}
	return stats, nil
}
