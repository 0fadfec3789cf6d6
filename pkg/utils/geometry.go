package utils

import "math"

// Point 二维浮点坐标，用于旋转碰撞盒的多边形顶点
type Point struct {
	X, Y float64
}

// BoundingBox 轴对齐碰撞盒（左上角 + 宽高，整数像素）
type BoundingBox struct {
	X, Y          int
	Width, Height int
}

// BoxAround 以 (cx, cy) 为中心构造碰撞盒
// 实体的 PositionComponent.X/Y 表示视觉中心
func BoxAround(cx, cy, width, height int) BoundingBox {
	return BoundingBox{
		X:      cx - width/2,
		Y:      cy - height/2,
		Width:  width,
		Height: height,
	}
}

// Center 返回碰撞盒中心
func (b BoundingBox) Center() Point {
	return Point{
		X: float64(b.X) + float64(b.Width)/2,
		Y: float64(b.Y) + float64(b.Height)/2,
	}
}

// Intersects AABB 碰撞检测，边界接触也算碰撞
func (b BoundingBox) Intersects(o BoundingBox) bool {
	return b.X+b.Width >= o.X &&
		b.X <= o.X+o.Width &&
		b.Y+b.Height >= o.Y &&
		b.Y <= o.Y+o.Height
}

// Polygon 返回碰撞盒的四个顶点（顺时针）
func (b BoundingBox) Polygon() [4]Point {
	x0, y0 := float64(b.X), float64(b.Y)
	x1, y1 := x0+float64(b.Width), y0+float64(b.Height)
	return [4]Point{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
}

// RotatedBoundingBox 绕自身中心旋转的碰撞盒，用于精确命中判定
type RotatedBoundingBox struct {
	BoundingBox
	Angle float64 // 弧度
}

// Polygon 返回旋转后的四个顶点，旋转中心始终是碰撞盒自身中心
func (r RotatedBoundingBox) Polygon() [4]Point {
	c := r.Center()
	sin, cos := math.Sincos(r.Angle)
	var out [4]Point
	for i, p := range r.BoundingBox.Polygon() {
		dx, dy := p.X-c.X, p.Y-c.Y
		out[i] = Point{
			X: c.X + dx*cos - dy*sin,
			Y: c.Y + dx*sin + dy*cos,
		}
	}
	return out
}

// Intersects 两个旋转碰撞盒是否重叠（分离轴定理）
func (r RotatedBoundingBox) Intersects(o RotatedBoundingBox) bool {
	return PolygonsIntersect(r.Polygon(), o.Polygon())
}

// IntersectsBox 旋转碰撞盒与轴对齐碰撞盒是否重叠
func (r RotatedBoundingBox) IntersectsBox(b BoundingBox) bool {
	return PolygonsIntersect(r.Polygon(), b.Polygon())
}

// PolygonsIntersect 使用分离轴定理判断两个凸四边形是否重叠
// 只要在任一边的法线方向上投影不重叠，就说明两者分离
func PolygonsIntersect(a, b [4]Point) bool {
	for _, poly := range [2][4]Point{a, b} {
		for i := range poly {
			p1 := poly[i]
			p2 := poly[(i+1)%len(poly)]
			axis := Point{X: p2.Y - p1.Y, Y: p1.X - p2.X}

			minA, maxA := project(a, axis)
			minB, maxB := project(b, axis)
			if maxA < minB || maxB < minA {
				return false
			}
		}
	}
	return true
}

// project 将多边形投影到轴上，返回投影区间
func project(poly [4]Point, axis Point) (float64, float64) {
	lo := math.Inf(1)
	hi := math.Inf(-1)
	for _, p := range poly {
		v := p.X*axis.X + p.Y*axis.Y
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

// Distance 两点间欧氏距离
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// RoundAwayFromZero 远离零取整，1.2 -> 2，-1.2 -> -2
func RoundAwayFromZero(v float64) int {
	if v < 0 {
		return -int(math.Ceil(-v))
	}
	return int(math.Ceil(v))
}

// DegToRad 角度转弧度
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// PointAt 返回从 (x, y) 沿 angle 方向前进 dist 后的整数坐标（各轴四舍五入）
func PointAt(x, y int, angle, dist float64) (int, int) {
	sin, cos := math.Sincos(angle)
	return x + int(math.Round(cos*dist)), y + int(math.Round(sin*dist))
}
