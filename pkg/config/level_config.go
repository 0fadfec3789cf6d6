package config

import (
	"fmt"
	"log"

	"github.com/gonewx/survival/pkg/types"
	"gopkg.in/yaml.v3"
)

// LevelConfig 单个关卡（波次）配置
type LevelConfig struct {
	Level        int            `yaml:"level"`        // 关卡编号，从 1 开始
	WaveDuration int            `yaml:"waveDuration"` // 波次时长（tick），刷怪间隔 = 时长 / 僵尸总数
	Counts       map[string]int `yaml:"counts"`       // 各类型僵尸数量，如 {ordinary: 3, crawler: 1}
	WeaponPrize  string         `yaml:"weaponPrize"`  // 通关奖励武器，空表示无奖励
}

// LevelsConfig 关卡配置文件结构
//
// Levels 按编号排列的已编写关卡；超出最后一关后统一使用 Overflow，
// 保证关卡推进永远不会耗尽配置。
type LevelsConfig struct {
	Levels   []LevelConfig `yaml:"levels"`
	Overflow LevelConfig   `yaml:"overflow"`
}

// LoadLevelsConfig 从YAML文件加载关卡配置
// 参数：
//
//	filepath - 关卡配置文件的路径（"data/" 前缀优先从嵌入资源读取）
//
// 返回：
//
//	*LevelsConfig - 解析后的关卡配置对象
//	error - 如果文件读取或解析失败，返回错误信息
func LoadLevelsConfig(filepath string) (*LevelsConfig, error) {
	data, err := readConfigFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read level config file %s: %w", filepath, err)
	}

	var config LevelsConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse level config YAML from %s: %w: %w", filepath, types.ErrInvalidConfiguration, err)
	}

	// 非法关卡不会阻止整个文件加载：剔除后该关卡回退到 overflow 配置
	config.Levels = dropInvalidLevels(config.Levels)

	if err := validateLevel(config.Overflow); err != nil {
		return nil, fmt.Errorf("invalid overflow level in %s: %w", filepath, err)
	}

	return &config, nil
}

// dropInvalidLevels 剔除非法关卡并记录日志
func dropInvalidLevels(levels []LevelConfig) []LevelConfig {
	valid := levels[:0]
	for _, lc := range levels {
		if err := validateLevel(lc); err != nil {
			log.Printf("[LevelConfig] Warning: level %d disabled, falling back to overflow: %v", lc.Level, err)
			continue
		}
		valid = append(valid, lc)
	}
	return valid
}

// validateLevel 验证单个关卡配置
func validateLevel(lc LevelConfig) error {
	if lc.WaveDuration < 0 {
		return fmt.Errorf("waveDuration cannot be negative, got %d: %w", lc.WaveDuration, types.ErrInvalidConfiguration)
	}

	for name, count := range lc.Counts {
		if _, err := types.ParseZombieType(name); err != nil {
			return fmt.Errorf("%w: %w", types.ErrInvalidConfiguration, err)
		}
		if count < 0 {
			return fmt.Errorf("count for %s cannot be negative, got %d: %w", name, count, types.ErrInvalidConfiguration)
		}
	}

	if lc.WeaponPrize != "" {
		if _, err := types.ParseWeaponType(lc.WeaponPrize); err != nil {
			return fmt.Errorf("weaponPrize: %w: %w", types.ErrInvalidConfiguration, err)
		}
	}

	return nil
}

// GetLevel 获取指定编号的关卡配置
// 编号未配置（超出最后一关或被剔除）时返回 overflow 关卡
func (c *LevelsConfig) GetLevel(level int) LevelConfig {
	for _, lc := range c.Levels {
		if lc.Level == level {
			return lc
		}
	}
	overflow := c.Overflow
	overflow.Level = level
	return overflow
}

// Quota 返回各类型僵尸配额
func (lc LevelConfig) Quota() map[types.ZombieType]int {
	quota := make(map[types.ZombieType]int, len(types.AllZombieTypes))
	for _, zt := range types.AllZombieTypes {
		quota[zt] = lc.Counts[zt.String()]
	}
	return quota
}

// TotalZombies 返回本关僵尸总数
func (lc LevelConfig) TotalZombies() int {
	total := 0
	for _, zt := range types.AllZombieTypes {
		total += lc.Counts[zt.String()]
	}
	return total
}

// Prize 返回通关奖励武器，无奖励时返回 WeaponUnknown
func (lc LevelConfig) Prize() types.WeaponType {
	if lc.WeaponPrize == "" {
		return types.WeaponUnknown
	}
	wt, err := types.ParseWeaponType(lc.WeaponPrize)
	if err != nil {
		return types.WeaponUnknown
	}
	return wt
}
