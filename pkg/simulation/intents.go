package simulation

import "sync"

// Intents 一个 tick 的玩家输入意图（纯数据）
//
// MoveX/MoveY 取 -1、0、1，乘以 PlayerSpeed 得到位移。
// FireStart/FireStop 切换持续射击状态，其余字段为一次性请求。
type Intents struct {
	MoveX, MoveY int
	Aim          float64
	HasAim       bool
	FireStart    bool
	FireStop     bool
	Reload       bool
	SwitchWeapon int
	UseMedkit    bool
}

// InputLatch 输入锁存器
//
// 输入生产者（键鼠、机器人）可以在任意 goroutine 以任意频率写入，
// 会话每 tick 调用一次 Sample 取走意图。移动与瞄准保持最新值，
// 一次性请求在 Sample 后清除，两次采样之间的多次请求合并为一次。
type InputLatch struct {
	mu      sync.Mutex
	pending Intents
}

// NewInputLatch 创建输入锁存器
func NewInputLatch() *InputLatch {
	return &InputLatch{}
}

// SetMove 设置移动方向，各轴取值被限制在 [-1, 1]
func (l *InputLatch) SetMove(dx, dy int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pending.MoveX = clampAxis(dx)
	l.pending.MoveY = clampAxis(dy)
}

// SetAim 设置瞄准方向（弧度）
func (l *InputLatch) SetAim(angle float64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pending.Aim = angle
	l.pending.HasAim = true
}

// StartFire 开始持续射击
func (l *InputLatch) StartFire() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pending.FireStart = true
	l.pending.FireStop = false
}

// StopFire 停止射击
func (l *InputLatch) StopFire() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pending.FireStop = true
	l.pending.FireStart = false
}

// RequestReload 请求换弹
func (l *InputLatch) RequestReload() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pending.Reload = true
}

// RequestSwitch 请求切换武器，多次请求累加
func (l *InputLatch) RequestSwitch(delta int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pending.SwitchWeapon += delta
}

// RequestMedkit 请求使用医疗包
func (l *InputLatch) RequestMedkit() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pending.UseMedkit = true
}

// Sample 取出当前意图并清除一次性请求
func (l *InputLatch) Sample() Intents {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := l.pending
	l.pending = Intents{
		MoveX:  out.MoveX,
		MoveY:  out.MoveY,
		Aim:    out.Aim,
		HasAim: out.HasAim,
	}
	return out
}

func clampAxis(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
