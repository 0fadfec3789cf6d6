package simulation

import (
	"math"

	"github.com/gonewx/survival/pkg/utils"
)

// lowHealthRatio 生命值低于该比例时使用医疗包
const lowHealthRatio = 0.5

// Bot 简单的自动瞄准机器人，用于无头运行和回归测试
//
// 策略：原地不动，瞄准最近的僵尸持续射击；弹匣打空时换弹，
// 当前武器彻底没子弹时切到下一把；血量过低时吃医疗包。
type Bot struct {
	firing bool
}

// NewBot 创建机器人
func NewBot() *Bot {
	return &Bot{}
}

// Decide 根据上一 tick 的快照决定本 tick 的输入
func (b *Bot) Decide(snap Snapshot) Intents {
	var in Intents
	p := snap.Player

	if p.MaxHealth > 0 && p.Health < p.MaxHealth*lowHealthRatio {
		in.UseMedkit = true
	}

	target, ok := nearestZombie(snap)
	if !ok {
		if b.firing {
			in.FireStop = true
			b.firing = false
		}
		return in
	}

	in.Aim = utils.AimAngle(p.X, p.Y, target.X, target.Y)
	in.HasAim = true
	if !b.firing {
		in.FireStart = true
		b.firing = true
	}

	if p.Selected >= 0 && p.Selected < len(p.Weapons) {
		w := p.Weapons[p.Selected]
		if w.Ammo == 0 {
			if w.MagazineCount == 0 {
				in.SwitchWeapon = 1
			} else {
				in.Reload = true
			}
		}
	}
	return in
}

// nearestZombie 返回离玩家最近的僵尸，距离相同时取创建较早的
func nearestZombie(snap Snapshot) (ZombieView, bool) {
	best := -1
	bestDist := math.Inf(1)
	for i, z := range snap.Zombies {
		d := utils.Distance(float64(snap.Player.X), float64(snap.Player.Y), float64(z.X), float64(z.Y))
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return ZombieView{}, false
	}
	return snap.Zombies[best], true
}
