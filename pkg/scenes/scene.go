// Package scenes 是 ebiten 侧的渲染和输入适配层，把键鼠输入写入锁存器并绘制仿真快照
package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene (gameplay, game over screen).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update advances the scene by one fixed tick.
	Update()

	// Draw renders the scene to the provided screen.
	// Draw must not mutate simulation state.
	Draw(screen *ebiten.Image)
}

// Closer 是一个可选接口，场景在被替换或窗口关闭时收到通知
type Closer interface {
	Close()
}
