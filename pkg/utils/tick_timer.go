package utils

import (
	"fmt"

	"github.com/gonewx/survival/pkg/types"
)

// RepeatForever 表示计时器无限次触发
const RepeatForever = -1

// TickTimer 基于 tick 的倒计时器
//
// 用作射击冷却、换弹冷却、刷怪节奏、波次时长等的基础构件。
//
// 规则：
//   - remaining 只会通过 Tick() 递减，且不会小于 0
//   - 本次 Tick() 恰好减到 0 时触发 onExpire（repeatsLeft 不为 0 时），
//     并在 repeatsLeft > 0 时将其减一
//   - 到期后不会自动重置，需要调用方显式调用 Reset()
type TickTimer struct {
	remaining   int
	period      int
	repeatsLeft int
	onExpire    func()
}

// NewTickTimer 创建一个已上膛的计时器（remaining = period）
//
// 参数：
//   - period: 周期（tick），不能为负
//   - repeats: 触发次数，RepeatForever(-1) 表示无限，0 表示停止触发回调
//   - onExpire: 到期回调，可为 nil
func NewTickTimer(period, repeats int, onExpire func()) (*TickTimer, error) {
	if period < 0 {
		return nil, fmt.Errorf("tick timer period %d: %w", period, types.ErrInvalidConfiguration)
	}
	return &TickTimer{
		remaining:   period,
		period:      period,
		repeatsLeft: repeats,
		onExpire:    onExpire,
	}, nil
}

// NewReadyTickTimer 创建一个已到期的计时器（remaining = 0）
// 用于武器冷却：新武器可以立即开火/换弹
func NewReadyTickTimer(period int) (*TickTimer, error) {
	t, err := NewTickTimer(period, RepeatForever, nil)
	if err != nil {
		return nil, err
	}
	t.remaining = 0
	return t, nil
}

// Tick 推进一个 tick
func (t *TickTimer) Tick() {
	if t.remaining == 0 {
		return
	}
	t.remaining--
	if t.remaining != 0 {
		return
	}

	if t.repeatsLeft != 0 && t.onExpire != nil {
		t.onExpire()
	}
	if t.repeatsLeft > 0 {
		t.repeatsLeft--
	}
}

// IsExpired 返回计时器是否已到期
func (t *TickTimer) IsExpired() bool {
	return t.remaining == 0
}

// Reset 将剩余时间重置为周期
func (t *TickTimer) Reset() {
	t.remaining = t.period
}

// Remaining 返回剩余 tick 数
func (t *TickTimer) Remaining() int {
	return t.remaining
}

// Period 返回周期
func (t *TickTimer) Period() int {
	return t.period
}

// RepeatsLeft 返回剩余触发次数（-1 表示无限）
func (t *TickTimer) RepeatsLeft() int {
	return t.repeatsLeft
}
