// Package game 包含玩家状态、事件总线以及设置和最高分的持久化，不依赖图形和音频后端
package game

import (
	"fmt"
	"log"

	"github.com/gonewx/survival/pkg/config"
	"github.com/gonewx/survival/pkg/types"
	"github.com/gonewx/survival/pkg/utils"
	"github.com/gonewx/survival/pkg/weapons"
)

// PlayerState 玩家状态快照（纯数据）
type PlayerState struct {
	X, Y      int
	Facing    float64
	Health    float64
	MaxHealth float64
	Score     int
	Selected  int
	Weapons   []weapons.State
	Items     map[types.ItemType]int
	Dead      bool
}

// Player 玩家聚合：位置、生命值、得分、武器背包和道具
//
// 武器背包按获得顺序排列，每种类型至多一把；新游戏只有手枪。
type Player struct {
	x, y      int
	facing    float64
	health    float64
	maxHealth float64
	score     int
	dead      bool

	weapons  []*weapons.Weapon
	selected int
	items    map[types.ItemType]int

	provider *config.Provider
}

// NewPlayer 在 (x, y) 创建玩家，初始武器为手枪
//
// 返回：
//   - ErrNilCollaborator: provider 为 nil
//   - ErrInvalidConfiguration: 手枪属性缺失或非法
func NewPlayer(provider *config.Provider, x, y int) (*Player, error) {
	if provider == nil {
		return nil, fmt.Errorf("player: config provider: %w", types.ErrNilCollaborator)
	}
	p := &Player{
		x:         x,
		y:         y,
		health:    config.PlayerMaxHealth,
		maxHealth: config.PlayerMaxHealth,
		items:     make(map[types.ItemType]int),
		provider:  provider,
	}
	if _, err := p.GrantWeapon(types.WeaponPistol); err != nil {
		return nil, err
	}
	return p, nil
}

// Update 推进所有武器的冷却一个 tick
func (p *Player) Update() {
	for _, w := range p.weapons {
		w.Update()
	}
}

// Move 按位移移动，并限制在竞技场内
func (p *Player) Move(dx, dy, arenaWidth, arenaHeight int) {
	half := config.PlayerSize / 2
	p.x = clampInt(p.x+dx, half, arenaWidth-half)
	p.y = clampInt(p.y+dy, half, arenaHeight-half)
}

// SetFacing 设置瞄准方向（弧度）
func (p *Player) SetFacing(facing float64) { p.facing = facing }

// Bounds 返回玩家碰撞盒
func (p *Player) Bounds() utils.BoundingBox {
	return utils.BoxAround(p.x, p.y, config.PlayerSize, config.PlayerSize)
}

// TakeDamage 扣除生命值（不低于 0）
// 仅在本次伤害导致死亡时返回 true
func (p *Player) TakeDamage(amount float64) bool {
	if p.dead || amount <= 0 {
		return false
	}
	p.health -= amount
	if p.health <= 0 {
		p.health = 0
		p.dead = true
		return true
	}
	return false
}

// Heal 回复生命值，不超过上限，返回实际回复量
func (p *Player) Heal(amount float64) float64 {
	if p.dead || amount <= 0 {
		return 0
	}
	before := p.health
	p.health = min(p.maxHealth, p.health+amount)
	return p.health - before
}

// IsDead 玩家是否死亡
func (p *Player) IsDead() bool { return p.dead }

// AddScore 增加得分
func (p *Player) AddScore(points int) { p.score += points }

// GrantWeapon 获得武器，已有同类型武器时不重复添加
// 返回是否新增
func (p *Player) GrantWeapon(weaponType types.WeaponType) (bool, error) {
	if p.HasWeapon(weaponType) {
		return false, nil
	}
	w, err := weapons.NewWeaponFromProvider(p.provider, weaponType)
	if err != nil {
		return false, err
	}
	p.weapons = append(p.weapons, w)
	log.Printf("[Player] Acquired %s", weaponType)
	return true, nil
}

// HasWeapon 是否拥有指定类型的武器
func (p *Player) HasWeapon(weaponType types.WeaponType) bool {
	return p.Weapon(weaponType) != nil
}

// Weapon 返回指定类型的武器，没有时返回 nil
func (p *Player) Weapon(weaponType types.WeaponType) *weapons.Weapon {
	for _, w := range p.weapons {
		if w.Type() == weaponType {
			return w
		}
	}
	return nil
}

// WeaponTypes 按背包顺序返回拥有的武器类型
func (p *Player) WeaponTypes() []types.WeaponType {
	out := make([]types.WeaponType, len(p.weapons))
	for i, w := range p.weapons {
		out[i] = w.Type()
	}
	return out
}

// CurrentWeapon 返回当前选中的武器
func (p *Player) CurrentWeapon() *weapons.Weapon {
	if len(p.weapons) == 0 {
		return nil
	}
	return p.weapons[p.selected]
}

// SwitchWeapon 按偏移循环切换武器（+1 下一把，-1 上一把）
func (p *Player) SwitchWeapon(delta int) {
	n := len(p.weapons)
	if n == 0 {
		return
	}
	p.selected = ((p.selected+delta)%n + n) % n
}

// SelectWeapon 按背包下标选择武器，越界时忽略
func (p *Player) SelectWeapon(index int) bool {
	if index < 0 || index >= len(p.weapons) {
		return false
	}
	p.selected = index
	return true
}

// Fire 用当前武器射击，子弹从玩家中心沿朝向发出
func (p *Player) Fire() (weapons.Shot, error) {
	w := p.CurrentWeapon()
	if w == nil {
		return weapons.Shot{}, weapons.ErrOutOfAmmo
	}
	return w.Fire(p.x, p.y, p.facing)
}

// Reload 为当前武器换弹
func (p *Player) Reload() error {
	w := p.CurrentWeapon()
	if w == nil {
		return weapons.ErrOutOfReserveAmmo
	}
	return w.Reload()
}

// Pickup 拾取掉落物
//
// 弹药：为同类型武器增加弹匣（没有该武器时不拾取）；医疗包：放入道具栏
// 返回掉落物是否被消耗
func (p *Player) Pickup(item types.PlayerItem) bool {
	switch item.Type {
	case types.ItemAmmunition:
		w := p.Weapon(item.WeaponType)
		if w == nil {
			return false
		}
		w.AddMagazines(item.Count)
		return true
	case types.ItemSmallMedicPack, types.ItemLargeMedicPack:
		p.items[item.Type] += max(item.Count, 1)
		return true
	default:
		return false
	}
}

// UseMedkit 使用一个医疗包
// 缺失生命值不超过小医疗包回复量时优先用小的，否则优先用大的
// 返回实际回复量和是否使用了医疗包
func (p *Player) UseMedkit() (float64, bool) {
	if p.dead || p.health >= p.maxHealth {
		return 0, false
	}

	order := []types.ItemType{types.ItemLargeMedicPack, types.ItemSmallMedicPack}
	if p.maxHealth-p.health <= config.SmallMedicPackHeal {
		order = []types.ItemType{types.ItemSmallMedicPack, types.ItemLargeMedicPack}
	}

	for _, it := range order {
		if p.items[it] == 0 {
			continue
		}
		p.items[it]--
		heal := config.SmallMedicPackHeal
		if it == types.ItemLargeMedicPack {
			heal = config.LargeMedicPackHeal
		}
		return p.Heal(heal), true
	}
	return 0, false
}

// Position 返回玩家中心坐标
func (p *Player) Position() (int, int) { return p.x, p.y }

// Facing 返回瞄准方向
func (p *Player) Facing() float64 { return p.facing }

// Health 返回当前生命值
func (p *Player) Health() float64 { return p.health }

// MaxHealth 返回生命值上限
func (p *Player) MaxHealth() float64 { return p.maxHealth }

// Score 返回得分
func (p *Player) Score() int { return p.score }

// ItemCount 返回道具数量
func (p *Player) ItemCount(itemType types.ItemType) int { return p.items[itemType] }

// State 返回玩家状态快照
func (p *Player) State() PlayerState {
	ws := make([]weapons.State, len(p.weapons))
	for i, w := range p.weapons {
		ws[i] = w.State()
	}
	items := make(map[types.ItemType]int, len(p.items))
	for k, v := range p.items {
		items[k] = v
	}
	return PlayerState{
		X:         p.x,
		Y:         p.y,
		Facing:    p.facing,
		Health:    p.health,
		MaxHealth: p.maxHealth,
		Score:     p.score,
		Selected:  p.selected,
		Weapons:   ws,
		Items:     items,
		Dead:      p.dead,
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
