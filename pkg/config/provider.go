package config

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/gonewx/survival/pkg/types"
)

// 默认配置文件路径
const (
	WeaponStatsPath = "data/weapon_stats.yaml"
	ZombieStatsPath = "data/zombie_stats.yaml"
	LevelsPath      = "data/levels.yaml"
)

// Provider 汇总武器、僵尸、关卡三张配置表，加载后只读
type Provider struct {
	weapons *WeaponStatsConfig
	zombies *ZombieStatsConfig
	levels  *LevelsConfig
}

// NewProvider 用已加载的配置表创建 Provider
// 任一配置表为 nil 属于编程错误，返回 ErrNilCollaborator。
// 关卡引用了未配置属性的僵尸类型时：普通关卡被剔除并回退到 overflow，
// overflow 本身不可用则返回 ErrInvalidConfiguration。
func NewProvider(weapons *WeaponStatsConfig, zombies *ZombieStatsConfig, levels *LevelsConfig) (*Provider, error) {
	if weapons == nil || zombies == nil || levels == nil {
		return nil, fmt.Errorf("config provider requires weapon, zombie and level tables: %w", types.ErrNilCollaborator)
	}

	if err := checkLevelZombies(levels.Overflow, zombies); err != nil {
		return nil, fmt.Errorf("overflow level unusable: %w", err)
	}

	usable := make([]LevelConfig, 0, len(levels.Levels))
	for _, lc := range levels.Levels {
		if err := checkLevelZombies(lc, zombies); err != nil {
			log.Printf("[Provider] Warning: level %d disabled, falling back to overflow: %v", lc.Level, err)
			continue
		}
		usable = append(usable, lc)
	}
	checked := &LevelsConfig{Levels: usable, Overflow: levels.Overflow}

	return &Provider{weapons: weapons, zombies: zombies, levels: checked}, nil
}

// checkLevelZombies 确认关卡中数量非零的僵尸类型都有属性配置
func checkLevelZombies(lc LevelConfig, zombies *ZombieStatsConfig) error {
	for _, zt := range types.AllZombieTypes {
		if lc.Counts[zt.String()] == 0 {
			continue
		}
		if _, err := zombies.GetZombieStats(zt); err != nil {
			return fmt.Errorf("level %d: %w", lc.Level, err)
		}
	}
	return nil
}

// LoadProvider 从目录加载三张配置表
//
// 参数：
//   - dir: 配置目录，传入 "data" 时优先读取嵌入资源
func LoadProvider(dir string) (*Provider, error) {
	weapons, err := LoadWeaponStats(filepath.ToSlash(filepath.Join(dir, filepath.Base(WeaponStatsPath))))
	if err != nil {
		return nil, err
	}
	zombies, err := LoadZombieStats(filepath.ToSlash(filepath.Join(dir, filepath.Base(ZombieStatsPath))))
	if err != nil {
		return nil, err
	}
	levels, err := LoadLevelsConfig(filepath.ToSlash(filepath.Join(dir, filepath.Base(LevelsPath))))
	if err != nil {
		return nil, err
	}
	return NewProvider(weapons, zombies, levels)
}

// WeaponStats 获取武器属性
func (p *Provider) WeaponStats(weaponType types.WeaponType) (WeaponStats, error) {
	return p.weapons.GetWeaponStats(weaponType)
}

// ZombieStats 获取僵尸属性
func (p *Provider) ZombieStats(zombieType types.ZombieType) (ZombieStats, error) {
	return p.zombies.GetZombieStats(zombieType)
}

// Level 获取关卡配置（超出已配置关卡时回退到 overflow）
func (p *Provider) Level(level int) LevelConfig {
	return p.levels.GetLevel(level)
}

// DefaultProvider 返回内置默认配置，与 data/ 下的 YAML 文件内容一致
// 用于测试和无配置文件的无头运行
func DefaultProvider() *Provider {
	return &Provider{
		weapons: &WeaponStatsConfig{Weapons: map[string]WeaponStats{
			"pistol":          {Damage: 10, FireRate: 240, MagazineCapacity: 12, MagazineCount: -1, ReloadDuration: 80},
			"assault_rifle":   {Damage: 8, FireRate: 600, MagazineCapacity: 30, MagazineCount: 4, ReloadDuration: 120},
			"shotgun":         {Damage: 20, FireRate: 60, MagazineCapacity: 6, MagazineCount: 4, ReloadDuration: 150},
			"sniper_rifle":    {Damage: 100, FireRate: 40, MagazineCapacity: 5, MagazineCount: 3, ReloadDuration: 160},
			"rocket_launcher": {Damage: 150, FireRate: 30, MagazineCapacity: 1, MagazineCount: 5, ReloadDuration: 200},
		}},
		zombies: &ZombieStatsConfig{Zombies: map[string]ZombieStats{
			"ordinary": {Health: 30, Speed: 2, Damage: 1, Range: 0, Points: 10, Size: 36},
			"crawler":  {Health: 15, Speed: 3, Damage: 1, Range: JumpDistance, Points: 15, Size: 28},
			"tank":     {Health: 200, Speed: 1, Damage: 3, Range: 0, Points: 40, Size: 56},
			"acid":     {Health: 40, Speed: 2, Damage: 1, Range: SpitRange, Points: 25, Size: 36},
		}},
		levels: &LevelsConfig{
			Levels: []LevelConfig{
				{Level: 1, WaveDuration: 1800, Counts: map[string]int{"ordinary": 8}, WeaponPrize: "assault_rifle"},
				{Level: 2, WaveDuration: 2400, Counts: map[string]int{"ordinary": 10, "crawler": 4}, WeaponPrize: "shotgun"},
				{Level: 3, WaveDuration: 3000, Counts: map[string]int{"ordinary": 12, "crawler": 6, "acid": 2}, WeaponPrize: "sniper_rifle"},
				{Level: 4, WaveDuration: 3600, Counts: map[string]int{"ordinary": 14, "crawler": 8, "tank": 2, "acid": 4}, WeaponPrize: "rocket_launcher"},
				{Level: 5, WaveDuration: 4200, Counts: map[string]int{"ordinary": 16, "crawler": 10, "tank": 4, "acid": 6}},
			},
			Overflow: LevelConfig{WaveDuration: 4800, Counts: map[string]int{"ordinary": 20, "crawler": 12, "tank": 6, "acid": 8}},
		},
	}
}
