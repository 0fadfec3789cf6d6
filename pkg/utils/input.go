// Package utils 提供通用工具函数
package utils

import (
	"math"
)

// Axis 将一对相反方向的按键合成为 -1、0、1
// 同时按下时互相抵消
func Axis(negative, positive bool) int {
	v := 0
	if negative {
		v--
	}
	if positive {
		v++
	}
	return v
}

// AimAngle 返回从 (fromX, fromY) 指向 (toX, toY) 的角度（弧度）
// 屏幕坐标系 y 轴向下，0 指向右侧
func AimAngle(fromX, fromY, toX, toY int) float64 {
	return math.Atan2(float64(toY-fromY), float64(toX-fromX))
}
