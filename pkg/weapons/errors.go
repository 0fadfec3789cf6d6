package weapons

import "errors"

// 武器操作的预期失败（非致命，调用方可据此给出界面反馈）
var (
	// ErrOnCooldown 射击或换弹冷却尚未结束
	ErrOnCooldown = errors.New("weapon on cooldown")
	// ErrOutOfAmmo 弹匣已空
	ErrOutOfAmmo = errors.New("out of ammo")
	// ErrOutOfReserveAmmo 没有备用弹匣可换
	ErrOutOfReserveAmmo = errors.New("out of reserve ammo")
	// ErrMagazineFull 弹匣已满，无需换弹
	ErrMagazineFull = errors.New("magazine full")
)
