package scenes

import (
	"fmt"
	"strings"

	"github.com/gonewx/survival/pkg/config"
	"github.com/gonewx/survival/pkg/simulation"
	"github.com/gonewx/survival/pkg/systems"
	"github.com/gonewx/survival/pkg/types"
	"github.com/gonewx/survival/pkg/weapons"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	hudX          = 10
	hudY          = 10
	hudLineHeight = 16
)

// drawHUD 绘制左上角状态信息和暂停/结束遮罩
func (s *GameScene) drawHUD(screen *ebiten.Image) {
	best := 0
	if s.highScores != nil {
		best = s.highScores.Best()
	}
	for i, line := range hudLines(s.snapshot, best) {
		ebitenutil.DebugPrintAt(screen, line, hudX, hudY+i*hudLineHeight)
	}

	if msg := overlayMessage(s.snapshot, s.session.HighScoreRank()); msg != "" {
		vector.DrawFilledRect(screen, 0, 0, config.ArenaWidth, config.ArenaHeight, overlayColor, false)
		ebitenutil.DebugPrintAt(screen, msg, config.ArenaWidth/2-120, config.ArenaHeight/2)
	}
}

// hudLines 由快照生成 HUD 文本
func hudLines(snap simulation.Snapshot, best int) []string {
	lines := []string{
		fmt.Sprintf("Level %d  [%s]", snap.Level, snap.WaveState),
		fmt.Sprintf("Health %.0f/%.0f", snap.Player.Health, snap.Player.MaxHealth),
		fmt.Sprintf("Score %d  Best %d", snap.Score(), max(best, snap.Score())),
	}

	if snap.WaveState == systems.WaveActive {
		lines = append(lines, fmt.Sprintf("Zombies %d  Time %ds",
			snap.RemainingZombies, snap.RemainingWaveTicks/config.TicksPerSecond))
	}

	for i, w := range snap.Player.Weapons {
		marker := "  "
		if i == snap.Player.Selected {
			marker = "> "
		}
		lines = append(lines, marker+formatWeapon(w))
	}

	lines = append(lines, fmt.Sprintf("Medkits S:%d L:%d",
		snap.Player.Items[types.ItemSmallMedicPack], snap.Player.Items[types.ItemLargeMedicPack]))
	return lines
}

// formatWeapon 武器状态文本，如 "shotgun 4/6 x3 (reloading)"
func formatWeapon(w weapons.State) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d/%d", w.Type, w.Ammo, w.MagazineCapacity)
	if w.MagazineCount < 0 {
		b.WriteString(" x inf")
	} else {
		fmt.Fprintf(&b, " x%d", w.MagazineCount)
	}
	if w.ReloadCooldown > 0 {
		b.WriteString(" (reloading)")
	}
	return b.String()
}

// overlayMessage 暂停、游戏结束和开局提示
func overlayMessage(snap simulation.Snapshot, rank int) string {
	switch {
	case snap.GameOver:
		msg := fmt.Sprintf("GAME OVER  score %d  level %d", snap.Score(), snap.Level)
		if rank > 0 {
			msg += fmt.Sprintf("  (#%d)", rank)
		}
		return msg + "\nPress Enter to play again"
	case snap.Paused:
		return "PAUSED  (P to resume)"
	case snap.WaveState == systems.WaveIdle:
		return "Press Enter to start"
	default:
		return ""
	}
}
