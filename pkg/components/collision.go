package components

// CollisionComponent 定义实体的碰撞盒尺寸
// 碰撞盒以 PositionComponent 为中心；Rotated 为 true 时按 Facing 旋转后做精确判定
type CollisionComponent struct {
	Width   int  // 碰撞盒宽度（像素）
	Height  int  // 碰撞盒高度（像素）
	Rotated bool // 是否使用旋转碰撞盒（僵尸）
}
