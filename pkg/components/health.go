package components

// HealthComponent 存储实体的生命值信息
// 用于僵尸等可被攻击的实体
type HealthComponent struct {
	Current float64 // 当前生命值
	Max     float64 // 最大生命值
	Dead    bool    // 已触发死亡（单次转换，不可重入）
}

// TakeDamage 扣除生命值
// 仅在本次伤害使生命值首次降到 0 及以下时返回 true，之后的伤害不再返回 true
func (h *HealthComponent) TakeDamage(amount float64) bool {
	if h.Dead || amount <= 0 {
		return false
	}
	h.Current -= amount
	if h.Current <= 0 {
		h.Dead = true
		return true
	}
	return false
}
