package components

import "github.com/gonewx/survival/pkg/types"

// ZombieComponent 僵尸的类型与行为参数
type ZombieComponent struct {
	Type     types.ZombieType
	Speed    int     // 每 tick 每轴最大位移
	Damage   float64 // 接触伤害（每 tick）
	Range    int     // 爬行者为跳跃距离，酸液僵尸为吐酸射程
	Points   int     // 击杀得分
	IsJumped bool    // 爬行者本次接近是否已跳跃
}
