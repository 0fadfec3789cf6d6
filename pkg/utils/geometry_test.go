package utils

import (
	"math"
	"testing"
)

func TestBoxAround(t *testing.T) {
	b := BoxAround(100, 100, 20, 10)
	if b.X != 90 || b.Y != 95 || b.Width != 20 || b.Height != 10 {
		t.Errorf("unexpected box %+v", b)
	}
	c := b.Center()
	if c.X != 100 || c.Y != 100 {
		t.Errorf("center: expected (100,100), got (%.1f,%.1f)", c.X, c.Y)
	}
}

func TestBoundingBox_Intersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     BoundingBox
		expected bool
	}{
		{"完全重叠", BoundingBox{0, 0, 10, 10}, BoundingBox{0, 0, 10, 10}, true},
		{"部分重叠", BoundingBox{0, 0, 10, 10}, BoundingBox{5, 5, 10, 10}, true},
		{"边界接触", BoundingBox{0, 0, 10, 10}, BoundingBox{10, 0, 10, 10}, true},
		{"水平分离", BoundingBox{0, 0, 10, 10}, BoundingBox{11, 0, 10, 10}, false},
		{"垂直分离", BoundingBox{0, 0, 10, 10}, BoundingBox{0, 20, 10, 10}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.expected {
				t.Errorf("Intersects = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRotatedBoundingBox_Polygon(t *testing.T) {
	r := RotatedBoundingBox{BoundingBox: BoundingBox{0, 0, 20, 10}, Angle: math.Pi / 2}
	poly := r.Polygon()

	// 旋转 90° 后，20x10 的盒子变成以 (10,5) 为中心的 10x20 盒子
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, p := range poly {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	const eps = 1e-9
	if math.Abs(minX-5) > eps || math.Abs(maxX-15) > eps || math.Abs(minY+5) > eps || math.Abs(maxY-15) > eps {
		t.Errorf("unexpected rotated extent x[%.2f,%.2f] y[%.2f,%.2f]", minX, maxX, minY, maxY)
	}
}

func TestRotatedBoundingBox_IntersectsBox(t *testing.T) {
	// 细长盒子旋转 45° 后，原本 AABB 会命中的角落不再命中
	long := RotatedBoundingBox{BoundingBox: BoundingBox{0, 45, 100, 10}, Angle: math.Pi / 4}
	corner := BoundingBox{X: 0, Y: 40, Width: 8, Height: 8}

	if !long.BoundingBox.Intersects(corner) {
		t.Fatal("precondition: axis-aligned boxes overlap")
	}
	if long.IntersectsBox(corner) {
		t.Error("rotated box should not hit the corner box")
	}

	center := BoxAround(50, 50, 6, 6)
	if !long.IntersectsBox(center) {
		t.Error("rotated box should hit a box at its centre")
	}
}

func TestRoundAwayFromZero(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{0, 0}, {1.2, 2}, {-1.2, -2}, {2, 2}, {-2, -2}, {0.01, 1},
	}
	for _, tt := range tests {
		if got := RoundAwayFromZero(tt.in); got != tt.want {
			t.Errorf("RoundAwayFromZero(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestPointAt(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		wantX int
		wantY int
	}{
		{"向右", 0, 120, 100},
		{"向下", math.Pi / 2, 100, 120},
		{"左上45度", -3 * math.Pi / 4, 86, 86},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := PointAt(100, 100, tt.angle, 20)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("PointAt = (%d,%d), want (%d,%d)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}
