package config

// 模拟时间常量
//
// 整个模拟以固定步长运行：每个 tick 15 毫秒。
// 所有冷却、刷怪间隔、波次时长均以 tick 为单位。
const (
	// TickDurationMs 每个 tick 的时长（毫秒）
	TickDurationMs = 15
	// TicksPerSecond 每秒 tick 数（整数截断，66）
	TicksPerSecond = 1000 / TickDurationMs
	// TicksPerMinute 每分钟 tick 数（4000）
	TicksPerMinute = 60000 / TickDurationMs
)

// 战场尺寸（像素）
const (
	ArenaWidth  = 1280
	ArenaHeight = 720
)

// 玩家参数
const (
	PlayerSize      = 40
	PlayerSpeed     = 4
	PlayerMaxHealth = 100.0
)

// 僵尸行为参数
const (
	// JumpDistance 爬行僵尸飞扑触发距离
	JumpDistance = 100
	// SpitRange 酸液僵尸停下吐酸的距离
	SpitRange = 500
	// AcidSpitThreshold 每 tick 在 [0, TicksPerSecond) 内抽签，小于该值即吐酸
	// 约等于每秒一次
	AcidSpitThreshold = 1
	// AcidSpitSpreadDeg 吐酸方向的随机散布（±度）
	AcidSpitSpreadDeg = 7.5
	// AcidMuzzleOffset 吐酸起点相对僵尸中心沿朝向的偏移
	AcidMuzzleOffset = 20
	// AcidSpitDamageFactor 酸液伤害占接触伤害的比例
	AcidSpitDamageFactor = 0.5
)

// 霰弹参数
const (
	PelletCount        = 9
	PelletSpreadDeg    = 45.0
	PelletDamageFactor = 0.5
)

// 投射物速度（像素/tick）与尺寸（像素）
const (
	BulletSpeed        = 18
	BulletSize         = 6
	ArmorPiercingSpeed = 28
	ArmorPiercingSize  = 8
	RocketSpeed        = 10
	RocketSize         = 14
	AcidSpitSpeed      = 7
	AcidSpitSize       = 12

	// RocketBlastRadius 火箭弹爆炸半径，以命中点为圆心
	RocketBlastRadius = 120
)

// 掉落物参数
const (
	LootSize = 20
	// LootLifetimeTicks 掉落物存在时间（约 10 秒）
	LootLifetimeTicks = 10 * TicksPerSecond
	// LootDropThreshold spawnChance * 僵尸分值 大于该值才掉落
	LootDropThreshold = 90
	// AmmoPickupMagazines 拾取弹药补充的弹匣数
	AmmoPickupMagazines = 1
	SmallMedicPackHeal  = 15.0
	LargeMedicPackHeal  = 50.0
)

// 波次参数
const (
	// WaveSuspendTicks 一波结束后到下一关开始之间的间隔（约 3 秒）
	WaveSuspendTicks = 3 * TicksPerSecond
)
