package weapons

import (
	"fmt"

	"github.com/gonewx/survival/pkg/config"
	"github.com/gonewx/survival/pkg/types"
	"github.com/gonewx/survival/pkg/utils"
)

// projectileByWeapon 武器类型到弹种的固定映射
var projectileByWeapon = map[types.WeaponType]types.ProjectileType{
	types.WeaponPistol:         types.ProjectileBullet,
	types.WeaponAssaultRifle:   types.ProjectileBullet,
	types.WeaponShotgun:        types.ProjectileShotgunPellets,
	types.WeaponSniperRifle:    types.ProjectileArmorPiercing,
	types.WeaponRocketLauncher: types.ProjectileRocket,
}

// Shot 一次成功射击的描述（纯数据）
// 由调用方交给 entities 工厂生成对应的投射物实体
type Shot struct {
	Type   types.ProjectileType
	X, Y   int
	Facing float64 // 弧度
	Damage int     // 霰弹为整次射击的伤害，工厂按弹丸拆分
}

// State 武器状态快照，供渲染层和存档使用
type State struct {
	Type             types.WeaponType
	Ammo             int
	MagazineCapacity int
	MagazineCount    int // -1 表示无限
	FireCooldown     int // 剩余射击冷却（tick）
	ReloadCooldown   int // 剩余换弹冷却（tick）
}

// Weapon 武器状态机
//
// 射击和换弹各有一个冷却计时器，新武器两个计时器都处于到期状态，
// 弹匣为满。Update() 必须每个 tick 恰好调用一次。
type Weapon struct {
	weaponType  types.WeaponType
	stats       config.WeaponStats
	ammo        int
	magazines   int
	fireTimer   *utils.TickTimer
	reloadTimer *utils.TickTimer
}

// FireCooldownTicks 将射速（发/分钟）换算为射击冷却 tick 数
// 射速为 0 或负数时按 1 处理
func FireCooldownTicks(fireRate int) int {
	if fireRate < 1 {
		fireRate = 1
	}
	return config.TicksPerMinute / fireRate
}

// NewWeapon 按属性创建武器
//
// 返回：
//   - ErrNilCollaborator: 武器类型未知
//   - ErrInvalidConfiguration: 属性不合法
func NewWeapon(weaponType types.WeaponType, stats config.WeaponStats) (*Weapon, error) {
	if _, ok := projectileByWeapon[weaponType]; !ok {
		return nil, fmt.Errorf("weapon type %d: %w", weaponType, types.ErrNilCollaborator)
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("weapon %s: %w", weaponType, err)
	}

	fireTimer, err := utils.NewReadyTickTimer(FireCooldownTicks(stats.FireRate))
	if err != nil {
		return nil, err
	}
	reloadTimer, err := utils.NewReadyTickTimer(stats.ReloadDuration)
	if err != nil {
		return nil, err
	}

	return &Weapon{
		weaponType:  weaponType,
		stats:       stats,
		ammo:        stats.MagazineCapacity,
		magazines:   stats.MagazineCount,
		fireTimer:   fireTimer,
		reloadTimer: reloadTimer,
	}, nil
}

// NewWeaponFromProvider 从配置提供者读取属性并创建武器
func NewWeaponFromProvider(p *config.Provider, weaponType types.WeaponType) (*Weapon, error) {
	if p == nil {
		return nil, fmt.Errorf("weapon %s: config provider: %w", weaponType, types.ErrNilCollaborator)
	}
	stats, err := p.WeaponStats(weaponType)
	if err != nil {
		return nil, err
	}
	return NewWeapon(weaponType, stats)
}

// Fire 尝试射击
// 仅当射击冷却到期且弹匣非空时成功：弹药减一并重置射击冷却
func (w *Weapon) Fire(x, y int, facing float64) (Shot, error) {
	if !w.fireTimer.IsExpired() {
		return Shot{}, ErrOnCooldown
	}
	if w.ammo <= 0 {
		return Shot{}, ErrOutOfAmmo
	}

	w.ammo--
	w.fireTimer.Reset()

	return Shot{
		Type:   projectileByWeapon[w.weaponType],
		X:      x,
		Y:      y,
		Facing: facing,
		Damage: w.stats.Damage,
	}, nil
}

// Reload 尝试换弹
// 仅当换弹冷却到期、弹匣未满且有备用弹匣时成功：立即装满并开始换弹冷却
func (w *Weapon) Reload() error {
	if !w.reloadTimer.IsExpired() {
		return ErrOnCooldown
	}
	if w.ammo >= w.stats.MagazineCapacity {
		return ErrMagazineFull
	}
	if w.magazines == 0 {
		return ErrOutOfReserveAmmo
	}

	w.ammo = w.stats.MagazineCapacity
	if w.magazines > 0 {
		w.magazines--
	}
	w.reloadTimer.Reset()
	return nil
}

// Update 推进射击和换弹冷却一个 tick
func (w *Weapon) Update() {
	w.fireTimer.Tick()
	w.reloadTimer.Tick()
}

// AddMagazines 增加备用弹匣（拾取弹药），无限弹匣的武器不受影响
func (w *Weapon) AddMagazines(count int) {
	if w.magazines < 0 || count <= 0 {
		return
	}
	w.magazines += count
}

// Type 返回武器类型
func (w *Weapon) Type() types.WeaponType { return w.weaponType }

// Ammo 返回弹匣内剩余子弹数
func (w *Weapon) Ammo() int { return w.ammo }

// Magazines 返回备用弹匣数（-1 表示无限）
func (w *Weapon) Magazines() int { return w.magazines }

// Stats 返回武器属性
func (w *Weapon) Stats() config.WeaponStats { return w.stats }

// IsReloading 换弹冷却是否进行中
func (w *Weapon) IsReloading() bool { return !w.reloadTimer.IsExpired() }

// State 返回当前状态快照
func (w *Weapon) State() State {
	return State{
		Type:             w.weaponType,
		Ammo:             w.ammo,
		MagazineCapacity: w.stats.MagazineCapacity,
		MagazineCount:    w.magazines,
		FireCooldown:     w.fireTimer.Remaining(),
		ReloadCooldown:   w.reloadTimer.Remaining(),
	}
}
