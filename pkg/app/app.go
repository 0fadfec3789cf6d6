// Package app 提供游戏应用的核心包装器
//
// 该包把配置加载、存储、音效和场景装配从 main 包提取出来，
// main.go 只负责解析参数、启动事件分发 goroutine 和运行 ebiten 主循环。
package app

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"log"
	"time"

	"github.com/gonewx/survival/pkg/config"
	"github.com/gonewx/survival/pkg/game"
	"github.com/gonewx/survival/pkg/scenes"
	"github.com/gonewx/survival/pkg/simulation"
	"github.com/gonewx/survival/pkg/sound"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// AppName gdata 存储使用的应用名
const AppName = "zombie_survival"

// eventBufferSize 事件总线容量，足够容纳数秒的高频事件
const eventBufferSize = 1024

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Seed 第一局的随机种子，0 表示使用当前时间；之后每局加一
	Seed int64
	// DataDir 配置目录，"data" 时优先读取嵌入资源
	DataDir string
	// AutoStart 新局创建后立即开始第一波
	AutoStart bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *scenes.SceneManager
	provider     *config.Provider
	settings     *game.SettingsManager
	highScores   *game.HighScoreManager
	audioManager *sound.AudioManager
	events       *game.EventBus
	dispatcher   *game.EventDispatcher

	cfg   Config
	seed  int64
	games int
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，如需读取嵌入配置，必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}

	provider, err := config.LoadProvider(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("配置加载失败: %w", err)
	}
	log.Printf("[App] Loaded configuration from %s", cfg.DataDir)

	// 存储不可用时降级为仅内存
	gdataManager, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable, settings and high scores will not persist: %v", err)
		gdataManager = nil
	}
	settings, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		return nil, fmt.Errorf("设置初始化失败: %w", err)
	}
	highScores := game.NewHighScoreManager(gdataManager)

	audioManager := sound.NewAudioManager(audio.NewContext(48000), settings)
	log.Printf("[App] AudioManager initialized")

	events := game.NewEventBus(eventBufferSize)
	dispatcher := game.NewEventDispatcher(events)
	dispatcher.Subscribe(audioManager.HandleEvent)
	dispatcher.Subscribe(game.LogEvent)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	a := &App{
		sceneManager: scenes.NewSceneManager(),
		provider:     provider,
		settings:     settings,
		highScores:   highScores,
		audioManager: audioManager,
		events:       events,
		dispatcher:   dispatcher,
		cfg:          cfg,
		seed:         seed,
	}
	a.sceneManager.SetSceneFactory(a.newGameScene)
	a.sceneManager.NewGame()
	if a.sceneManager.GetCurrentScene() == nil {
		return nil, fmt.Errorf("无法创建游戏场景")
	}

	return a, nil
}

// newGameScene 创建一局新游戏，失败时返回 nil
func (a *App) newGameScene() scenes.Scene {
	seed := a.seed + int64(a.games)
	a.games++

	session, err := simulation.NewSession(simulation.Options{
		Provider:   a.provider,
		Seed:       seed,
		Events:     a.events,
		HighScores: a.highScores,
	})
	if err != nil {
		log.Printf("[App] Failed to create session: %v", err)
		return nil
	}
	if a.cfg.AutoStart {
		session.StartWave()
	}
	return scenes.NewGameScene(session, a.sceneManager, a.settings, a.highScores)
}

// RunEvents 在调用方的 goroutine 中分发事件，直到 ctx 取消或 Close
func (a *App) RunEvents(ctx context.Context) error {
	return a.dispatcher.Run(ctx)
}

// Close 关闭当前场景和事件总线，保存设置
func (a *App) Close() {
	a.sceneManager.Close()
	a.events.Close()
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Failed to save settings: %v", err)
	}
	if dropped := a.events.Dropped(); dropped > 0 {
		log.Printf("[App] %d events were dropped", dropped)
	}
}

// Update 推进一个固定 tick
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		fullscreen := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(fullscreen)
		a.settings.SetFullscreen(fullscreen)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		a.settings.SetSoundEnabled(!a.settings.GetSettings().SoundEnabled)
	}

	a.sceneManager.Update()
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ArenaWidth, config.ArenaHeight
}

// Settings 返回设置管理器
func (a *App) Settings() *game.SettingsManager {
	return a.settings
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.cfg.Verbose
}
