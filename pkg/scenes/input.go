package scenes

import (
	"github.com/gonewx/survival/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// pointerPosition 获取当前指针位置（触摸或鼠标）
// 优先返回触摸位置，如果没有触摸则返回鼠标位置
func pointerPosition() (int, int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		return ebiten.TouchPosition(touchIDs[0])
	}
	return ebiten.CursorPosition()
}

// pointerJustPressed 检查是否刚刚按下指针（触摸或鼠标左键）
func pointerJustPressed() bool {
	if len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		return true
	}
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// pointerJustReleased 检查是否刚刚释放指针（触摸或鼠标左键）
func pointerJustReleased() bool {
	if len(inpututil.AppendJustReleasedTouchIDs(nil)) > 0 {
		return true
	}
	return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}

// moveAxes 读取 WASD / 方向键，返回每轴 -1、0、1
func moveAxes() (int, int) {
	dx := utils.Axis(
		ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
	)
	dy := utils.Axis(
		ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
	)
	return dx, dy
}

// wheelDelta 返回鼠标滚轮方向：向上 -1，向下 1，没有滚动为 0
func wheelDelta() int {
	_, wy := ebiten.Wheel()
	switch {
	case wy > 0:
		return -1
	case wy < 0:
		return 1
	default:
		return 0
	}
}
