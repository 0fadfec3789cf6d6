// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import "fmt"

// ZombieType 定义僵尸的类型
type ZombieType int

const (
	// ZombieUnknown 未知僵尸类型
	ZombieUnknown ZombieType = iota
	// ZombieOrdinary 普通僵尸：直线追击玩家
	ZombieOrdinary
	// ZombieCrawler 爬行僵尸：追击 + 近距离飞扑
	ZombieCrawler
	// ZombieTank 坦克僵尸：血厚、移动慢、接触伤害高
	ZombieTank
	// ZombieAcid 酸液僵尸：进入射程后停下远程吐酸
	ZombieAcid
)

// AllZombieTypes 按固定顺序列出所有可生成的僵尸类型
// 波次调度器依赖该顺序做均匀随机选择，保证同一随机种子下结果可复现
var AllZombieTypes = []ZombieType{ZombieOrdinary, ZombieCrawler, ZombieTank, ZombieAcid}

// zombieTypeNames 配置文件中使用的僵尸类型名称
var zombieTypeNames = map[ZombieType]string{
	ZombieOrdinary: "ordinary",
	ZombieCrawler:  "crawler",
	ZombieTank:     "tank",
	ZombieAcid:     "acid",
}

// String 返回僵尸类型在配置文件中的名称
func (z ZombieType) String() string {
	if name, ok := zombieTypeNames[z]; ok {
		return name
	}
	return "unknown"
}

// ParseZombieType 将配置文件中的名称解析为 ZombieType
func ParseZombieType(name string) (ZombieType, error) {
	for zt, n := range zombieTypeNames {
		if n == name {
			return zt, nil
		}
	}
	return ZombieUnknown, fmt.Errorf("unknown zombie type %q", name)
}
