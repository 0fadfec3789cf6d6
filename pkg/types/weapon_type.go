package types

import "fmt"

// WeaponType 定义武器的类型
type WeaponType int

const (
	// WeaponUnknown 未知武器类型
	WeaponUnknown WeaponType = iota
	// WeaponPistol 手枪：基础武器，弹匣无限
	WeaponPistol
	// WeaponAssaultRifle 突击步枪：高射速
	WeaponAssaultRifle
	// WeaponShotgun 霰弹枪：一次发射 9 颗弹丸，扇形散布
	WeaponShotgun
	// WeaponSniperRifle 狙击步枪：穿甲弹，高伤害低射速
	WeaponSniperRifle
	// WeaponRocketLauncher 火箭筒：范围伤害
	WeaponRocketLauncher
)

// AllWeaponTypes 按固定顺序列出所有武器类型
var AllWeaponTypes = []WeaponType{
	WeaponPistol,
	WeaponAssaultRifle,
	WeaponShotgun,
	WeaponSniperRifle,
	WeaponRocketLauncher,
}

var weaponTypeNames = map[WeaponType]string{
	WeaponPistol:         "pistol",
	WeaponAssaultRifle:   "assault_rifle",
	WeaponShotgun:        "shotgun",
	WeaponSniperRifle:    "sniper_rifle",
	WeaponRocketLauncher: "rocket_launcher",
}

// String 返回武器类型在配置文件中的名称
func (w WeaponType) String() string {
	if name, ok := weaponTypeNames[w]; ok {
		return name
	}
	return "unknown"
}

// ParseWeaponType 将配置文件中的名称解析为 WeaponType
func ParseWeaponType(name string) (WeaponType, error) {
	for wt, n := range weaponTypeNames {
		if n == name {
			return wt, nil
		}
	}
	return WeaponUnknown, fmt.Errorf("unknown weapon type %q", name)
}
