package components

// LifetimeComponent 管理实体的生命周期（以 tick 计）
// 用于自动清理存在时间超过上限的实体（如掉落物）
type LifetimeComponent struct {
	MaxTicks     int  // 最大存活 tick 数
	ElapsedTicks int  // 已存活 tick 数
	IsExpired    bool // 是否已过期
}
