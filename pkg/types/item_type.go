package types

// ItemType 定义掉落物（玩家道具）的类型
type ItemType int

const (
	// ItemNone 不掉落
	ItemNone ItemType = iota
	// ItemAmmunition 弹药：为指定武器补充弹匣
	ItemAmmunition
	// ItemSmallMedicPack 小医疗包：回复 15 点生命
	ItemSmallMedicPack
	// ItemLargeMedicPack 大医疗包：回复 50 点生命
	ItemLargeMedicPack
)

// String 返回道具类型名称
func (i ItemType) String() string {
	switch i {
	case ItemNone:
		return "none"
	case ItemAmmunition:
		return "ammunition"
	case ItemSmallMedicPack:
		return "small_medic_pack"
	case ItemLargeMedicPack:
		return "large_medic_pack"
	default:
		return "unknown"
	}
}

// PlayerItem 掉落物描述（纯数据）
// Ammunition 类型使用 WeaponType 与 Count，医疗包使用 Heal
type PlayerItem struct {
	Type       ItemType
	WeaponType WeaponType
	Count      int
	Heal       float64
}
