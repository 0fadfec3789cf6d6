// Package sound 根据仿真事件播放合成音效
package sound

import (
	"encoding/binary"
	"log"
	"math"
	"sync"
	"time"

	"github.com/gonewx/survival/pkg/game"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// toneSpec 合成音效参数
type toneSpec struct {
	freq     float64       // 起始频率（Hz）
	endFreq  float64       // 结束频率（Hz），与起始不同时为滑音
	duration time.Duration // 时长
	noise    float64       // 噪声比例 0.0 ~ 1.0
}

// cueTable 事件类型到音效的映射，没有列出的事件不发声
var cueTable = map[game.EventType]toneSpec{
	game.EventShotFired:     {freq: 880, endFreq: 220, duration: 60 * time.Millisecond, noise: 0.6},
	game.EventReloadStarted: {freq: 300, endFreq: 600, duration: 120 * time.Millisecond},
	game.EventOutOfAmmo:     {freq: 160, endFreq: 160, duration: 50 * time.Millisecond},
	game.EventZombieKilled:  {freq: 200, endFreq: 60, duration: 180 * time.Millisecond, noise: 0.3},
	game.EventPlayerDamaged: {freq: 120, endFreq: 90, duration: 90 * time.Millisecond, noise: 0.2},
	game.EventItemPickedUp:  {freq: 660, endFreq: 990, duration: 100 * time.Millisecond},
	game.EventMedkitUsed:    {freq: 520, endFreq: 780, duration: 200 * time.Millisecond},
	game.EventWeaponAwarded: {freq: 440, endFreq: 880, duration: 300 * time.Millisecond},
	game.EventWaveStarted:   {freq: 330, endFreq: 330, duration: 250 * time.Millisecond},
	game.EventGameOver:      {freq: 220, endFreq: 55, duration: 900 * time.Millisecond},
}

// AudioManager 音效管理器
// 职责：
//   - 订阅仿真事件，播放对应的合成音效
//   - 实现音量控制（从 SettingsManager 读取设置）
//
// 音效是尽力而为的旁路：没有音频上下文时静默，播放失败只记录日志。
type AudioManager struct {
	context         *audio.Context        // 音频上下文，可为 nil（无头模式）
	settingsManager *game.SettingsManager // 设置管理器（用于读取音量设置，可为 nil）

	mu      sync.Mutex
	cues    map[game.EventType][]byte        // 预合成的 PCM 数据
	players map[game.EventType]*audio.Player // 每种音效最近一次的播放器
}

// NewAudioManager 创建新的音效管理器
//
// 参数：
//   - ctx: 音频上下文，为 nil 时所有播放调用都是空操作
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
func NewAudioManager(ctx *audio.Context, sm *game.SettingsManager) *AudioManager {
	am := &AudioManager{
		context:         ctx,
		settingsManager: sm,
		cues:            make(map[game.EventType][]byte),
		players:         make(map[game.EventType]*audio.Player),
	}
	if ctx != nil {
		for t, spec := range cueTable {
			am.cues[t] = synthesizeTone(ctx.SampleRate(), spec)
		}
		log.Printf("[AudioManager] Synthesized %d sound cues at %d Hz", len(am.cues), ctx.SampleRate())
	}
	return am
}

// HandleEvent 事件处理函数，可直接订阅到 EventDispatcher
func (am *AudioManager) HandleEvent(e game.Event) {
	am.PlaySound(e.Type)
}

// PlaySound 播放事件对应的音效
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(eventType game.EventType) bool {
	if am.context == nil {
		return false
	}
	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false
	}

	am.mu.Lock()
	defer am.mu.Unlock()

	pcm, ok := am.cues[eventType]
	if !ok {
		return false
	}

	player := am.context.NewPlayerFromBytes(pcm)
	player.SetVolume(am.getSoundVolume())
	player.Play()
	am.players[eventType] = player
	return true
}

// SetSoundVolume 设置音效音量
// 此方法会影响后续播放的所有音效
func (am *AudioManager) SetSoundVolume(volume float64) {
	if am.settingsManager != nil {
		am.settingsManager.SetSoundVolume(volume)
	}
}

// GetSoundVolume 获取当前音效音量
func (am *AudioManager) GetSoundVolume() float64 {
	return am.getSoundVolume()
}

// getSoundVolume 获取音效音量设置
func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return 0.8 // 默认值
}

// synthesizeTone 合成 16 位小端立体声 PCM
// 频率在时长内线性滑动，振幅线性衰减；噪声由固定种子的线性同余序列生成
func synthesizeTone(sampleRate int, spec toneSpec) []byte {
	n := int(float64(sampleRate) * spec.duration.Seconds())
	buf := make([]byte, n*4)

	phase := 0.0
	seed := uint32(0x2545F491)
	for i := 0; i < n; i++ {
		progress := float64(i) / float64(n)
		freq := spec.freq + (spec.endFreq-spec.freq)*progress
		phase += 2 * math.Pi * freq / float64(sampleRate)

		seed = seed*1664525 + 1013904223
		noise := float64(seed)/float64(math.MaxUint32)*2 - 1

		v := (1-spec.noise)*math.Sin(phase) + spec.noise*noise
		v *= (1 - progress) * 0.5

		sample := int16(v * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(sample))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(sample))
	}
	return buf
}
