package components

// PositionComponent 存储实体的世界坐标和朝向
// X/Y 为实体中心（像素），Facing 为朝向角（弧度，0 指向 +X，顺时针为正）
type PositionComponent struct {
	X      int
	Y      int
	Facing float64
}
