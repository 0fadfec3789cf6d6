package game

import (
	"context"
	"log"
	"sync"
	"sync/atomic"

	"github.com/gonewx/survival/pkg/types"
)

// EventType 仿真事件类型
type EventType int

const (
	EventShotFired EventType = iota
	EventReloadStarted
	EventOutOfAmmo
	EventZombieKilled
	EventPlayerDamaged
	EventItemPickedUp
	EventMedkitUsed
	EventWeaponAwarded
	EventWaveStarted
	EventWaveCleared
	EventGameOver
)

// String 返回事件名
func (e EventType) String() string {
	switch e {
	case EventShotFired:
		return "shot_fired"
	case EventReloadStarted:
		return "reload_started"
	case EventOutOfAmmo:
		return "out_of_ammo"
	case EventZombieKilled:
		return "zombie_killed"
	case EventPlayerDamaged:
		return "player_damaged"
	case EventItemPickedUp:
		return "item_picked_up"
	case EventMedkitUsed:
		return "medkit_used"
	case EventWeaponAwarded:
		return "weapon_awarded"
	case EventWaveStarted:
		return "wave_started"
	case EventWaveCleared:
		return "wave_cleared"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event 仿真向外发出的一次通知（纯数据）
// 只有与事件类型相关的字段有意义
type Event struct {
	Type   EventType
	Tick   uint64
	Level  int
	X, Y   int
	Weapon types.WeaponType
	Zombie types.ZombieType
	Item   types.ItemType
	Amount float64 // 伤害或回复量
	Score  int
}

// EventBus 有界、非阻塞的事件队列
//
// 仿真线程 Publish，消费者（音效、日志）在其他 goroutine 读取 Events()。
// 队列满时丢弃新事件：音效丢失不影响仿真正确性。
type EventBus struct {
	ch      chan Event
	mu      sync.RWMutex
	closed  bool
	dropped atomic.Uint64
}

// NewEventBus 创建容量为 size 的事件队列
func NewEventBus(size int) *EventBus {
	if size < 1 {
		size = 1
	}
	return &EventBus{ch: make(chan Event, size)}
}

// Publish 投递事件，从不阻塞
// 返回事件是否入队（队列已满或已关闭时返回 false）
func (b *EventBus) Publish(e Event) bool {
	if b == nil {
		return false
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return false
	}
	select {
	case b.ch <- e:
		return true
	default:
		b.dropped.Add(1)
		return false
	}
}

// Events 返回只读事件通道，Close 后会被关闭
func (b *EventBus) Events() <-chan Event {
	return b.ch
}

// Len 返回队列中待处理的事件数
func (b *EventBus) Len() int {
	return len(b.ch)
}

// Dropped 返回因队列满被丢弃的事件数
func (b *EventBus) Dropped() uint64 {
	return b.dropped.Load()
}

// Close 关闭队列，重复调用安全
func (b *EventBus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	close(b.ch)
}

// EventHandler 事件处理函数
type EventHandler func(Event)

// EventDispatcher 从 EventBus 读取事件并按订阅顺序分发
// Run 在独立 goroutine 中运行，处理函数不得回写仿真状态
type EventDispatcher struct {
	bus      *EventBus
	mu       sync.RWMutex
	handlers []EventHandler
}

// NewEventDispatcher 创建分发器
func NewEventDispatcher(bus *EventBus) *EventDispatcher {
	return &EventDispatcher{bus: bus}
}

// Subscribe 注册处理函数
func (d *EventDispatcher) Subscribe(h EventHandler) {
	if h == nil {
		return
	}
	d.mu.Lock()
	d.handlers = append(d.handlers, h)
	d.mu.Unlock()
}

// Run 分发事件直到 ctx 结束或事件队列关闭
// 队列关闭时会先处理完剩余事件
func (d *EventDispatcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case e, ok := <-d.bus.Events():
			if !ok {
				log.Printf("[EventDispatcher] Event bus closed, %d events dropped", d.bus.Dropped())
				return nil
			}
			d.dispatch(e)
		}
	}
}

func (d *EventDispatcher) dispatch(e Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, h := range d.handlers {
		h(e)
	}
}

// LogEvent 以日志形式记录事件，可直接作为 EventHandler 订阅
func LogEvent(e Event) {
	switch e.Type {
	case EventShotFired, EventPlayerDamaged:
		// 高频事件不记录
	default:
		log.Printf("[Event] tick=%d %s level=%d weapon=%s zombie=%s item=%s amount=%.1f score=%d",
			e.Tick, e.Type, e.Level, e.Weapon, e.Zombie, e.Item, e.Amount, e.Score)
	}
}
