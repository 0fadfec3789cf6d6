package scenes

import (
	"image/color"
	"log"

	"github.com/gonewx/survival/pkg/config"
	"github.com/gonewx/survival/pkg/game"
	"github.com/gonewx/survival/pkg/simulation"
	"github.com/gonewx/survival/pkg/systems"
	"github.com/gonewx/survival/pkg/types"
	"github.com/gonewx/survival/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 渲染颜色
var (
	backgroundColor = color.RGBA{R: 34, G: 38, B: 30, A: 255}
	arenaBorder     = color.RGBA{R: 90, G: 96, B: 80, A: 255}
	playerColor     = color.RGBA{R: 70, G: 140, B: 230, A: 255}
	aimColor        = color.RGBA{R: 200, G: 220, B: 255, A: 180}
	bulletColor     = color.RGBA{R: 255, G: 230, B: 120, A: 255}
	acidColor       = color.RGBA{R: 140, G: 230, B: 60, A: 255}
	hitboxColor     = color.RGBA{R: 255, G: 0, B: 0, A: 160}
	healthBarBack   = color.RGBA{R: 60, G: 0, B: 0, A: 200}
	healthBarFront  = color.RGBA{R: 220, G: 40, B: 40, A: 255}
	overlayColor    = color.RGBA{A: 160}
)

var zombieColors = map[types.ZombieType]color.RGBA{
	types.ZombieOrdinary: {R: 110, G: 150, B: 90, A: 255},
	types.ZombieCrawler:  {R: 170, G: 120, B: 70, A: 255},
	types.ZombieTank:     {R: 120, G: 90, B: 130, A: 255},
	types.ZombieAcid:     {R: 150, G: 210, B: 60, A: 255},
}

var lootColors = map[types.ItemType]color.RGBA{
	types.ItemAmmunition:     {R: 230, G: 190, B: 60, A: 255},
	types.ItemSmallMedicPack: {R: 240, G: 240, B: 240, A: 255},
	types.ItemLargeMedicPack: {R: 255, G: 90, B: 90, A: 255},
}

var _ Scene = (*GameScene)(nil)

// GameScene 游戏场景
//
// 场景是仿真的薄外壳：Update 把键鼠输入写入 InputLatch，
// 再推进会话一个 tick；Draw 只读取最近的快照。
type GameScene struct {
	session      *simulation.Session
	latch        *simulation.InputLatch
	sceneManager *SceneManager
	settings     *game.SettingsManager
	highScores   *game.HighScoreManager

	snapshot simulation.Snapshot
}

// NewGameScene 创建游戏场景
//
// 参数：
//   - session: 新建的仿真会话
//   - sceneManager: 游戏结束后重新开局使用
//   - settings, highScores: 可为 nil
func NewGameScene(session *simulation.Session, sceneManager *SceneManager, settings *game.SettingsManager, highScores *game.HighScoreManager) *GameScene {
	return &GameScene{
		session:      session,
		latch:        simulation.NewInputLatch(),
		sceneManager: sceneManager,
		settings:     settings,
		highScores:   highScores,
		snapshot:     session.Snapshot(),
	}
}

// Update 读取输入并推进仿真一个 tick
func (s *GameScene) Update() {
	if s.session.IsGameOver() {
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyR) {
			s.sceneManager.NewGame()
		}
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if s.session.IsPaused() {
			s.session.Resume()
		} else {
			s.session.Pause()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) && s.settings != nil {
		s.settings.SetShowHitboxes(!s.settings.GetSettings().ShowHitboxes)
	}
	if s.snapshot.WaveState == systems.WaveIdle && inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.session.StartWave()
	}

	s.readInput()
	s.advance()
}

// advance 推进仿真一个 tick
// 暂停期间不取样锁存器，暂停时按下的换弹、换枪、急救包和开火在恢复后生效
func (s *GameScene) advance() {
	if s.session.IsPaused() {
		s.snapshot = s.session.Snapshot()
		return
	}
	s.snapshot = s.session.Tick(s.latch.Sample())
}

// readInput 把当前帧的键鼠状态写入锁存器
func (s *GameScene) readInput() {
	s.latch.SetMove(moveAxes())

	mx, my := pointerPosition()
	s.latch.SetAim(utils.AimAngle(s.snapshot.Player.X, s.snapshot.Player.Y, mx, my))

	if pointerJustPressed() || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.latch.StartFire()
	}
	if pointerJustReleased() || inpututil.IsKeyJustReleased(ebiten.KeySpace) {
		s.latch.StopFire()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.latch.RequestReload()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		s.latch.RequestSwitch(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		s.latch.RequestSwitch(-1)
	}
	if d := wheelDelta(); d != 0 {
		s.latch.RequestSwitch(d)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		s.latch.RequestMedkit()
	}
}

// Draw 绘制当前快照
func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	vector.StrokeRect(screen, 1, 1, config.ArenaWidth-2, config.ArenaHeight-2, 2, arenaBorder, false)

	snap := s.snapshot
	showHitboxes := s.settings != nil && s.settings.GetSettings().ShowHitboxes

	for _, l := range snap.Loot {
		drawBox(screen, utils.BoxAround(l.X, l.Y, l.Size, l.Size), lootColors[l.Item.Type])
	}

	for _, z := range snap.Zombies {
		box := utils.RotatedBoundingBox{BoundingBox: utils.BoxAround(z.X, z.Y, z.Width, z.Height), Angle: z.Facing}
		drawPolygon(screen, box.Polygon(), zombieColors[z.Type], 3)
		drawHealthBar(screen, z)
		if showHitboxes {
			drawPolygon(screen, box.Polygon(), hitboxColor, 1)
		}
	}

	for _, p := range snap.Projectiles {
		clr := bulletColor
		if p.Hostile {
			clr = acidColor
		}
		drawBox(screen, utils.BoxAround(p.X, p.Y, p.Size, p.Size), clr)
	}

	player := utils.BoxAround(snap.Player.X, snap.Player.Y, config.PlayerSize, config.PlayerSize)
	drawBox(screen, player, playerColor)
	drawAimLine(screen, snap.Player.X, snap.Player.Y, snap.Player.Facing)
	if showHitboxes {
		drawPolygon(screen, player.Polygon(), hitboxColor, 1)
	}

	s.drawHUD(screen)
}

// Close 场景被替换时暂停会话
func (s *GameScene) Close() {
	s.session.Pause()
	log.Printf("[GameScene] Closed session %s", s.session.ID())
}

func drawBox(screen *ebiten.Image, b utils.BoundingBox, clr color.Color) {
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), clr, false)
}

func drawPolygon(screen *ebiten.Image, poly [4]utils.Point, clr color.Color, width float32) {
	for i := range poly {
		a, b := poly[i], poly[(i+1)%len(poly)]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, clr, true)
	}
}

func drawAimLine(screen *ebiten.Image, x, y int, facing float64) {
	const length = 36
	ex, ey := utils.PointAt(x, y, facing, length)
	vector.StrokeLine(screen, float32(x), float32(y), float32(ex), float32(ey), 2, aimColor, true)
}

func drawHealthBar(screen *ebiten.Image, z simulation.ZombieView) {
	if z.MaxHealth <= 0 || z.Health >= z.MaxHealth {
		return
	}
	w := float32(z.Width)
	x := float32(z.X) - w/2
	y := float32(z.Y-z.Height/2) - 8
	vector.DrawFilledRect(screen, x, y, w, 4, healthBarBack, false)
	vector.DrawFilledRect(screen, x, y, w*float32(max(z.Health, 0)/z.MaxHealth), 4, healthBarFront, false)
}
