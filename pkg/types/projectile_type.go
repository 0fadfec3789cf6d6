package types

// ProjectileType 定义投射物的类型
type ProjectileType int

const (
	// ProjectileBullet 普通子弹（手枪、突击步枪、霰弹枪弹丸）
	ProjectileBullet ProjectileType = iota
	// ProjectileArmorPiercing 穿甲弹（狙击步枪）
	ProjectileArmorPiercing
	// ProjectileShotgunPellets 霰弹组合体，本身不参与碰撞，由子弹丸参与
	ProjectileShotgunPellets
	// ProjectileRocket 火箭弹，命中后对半径内僵尸造成范围伤害
	ProjectileRocket
	// ProjectileAcidSpit 酸液，由酸液僵尸发射，只对玩家有效
	ProjectileAcidSpit
)

// String 返回投射物类型名称
func (p ProjectileType) String() string {
	switch p {
	case ProjectileBullet:
		return "bullet"
	case ProjectileArmorPiercing:
		return "armor_piercing"
	case ProjectileShotgunPellets:
		return "shotgun_pellets"
	case ProjectileRocket:
		return "rocket"
	case ProjectileAcidSpit:
		return "acid_spit"
	default:
		return "unknown"
	}
}

// IsHostile 返回该投射物是否由僵尸发射（只能伤害玩家）
func (p ProjectileType) IsHostile() bool {
	return p == ProjectileAcidSpit
}
