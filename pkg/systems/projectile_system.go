package systems

import (
	"log"
	"math"

	"github.com/gonewx/survival/pkg/components"
	"github.com/gonewx/survival/pkg/ecs"
)

// ProjectileSystem 推进投射物并清理越界的投射物
type ProjectileSystem struct {
	em      *ecs.EntityManager
	width   int
	height  int
	verbose bool
}

// NewProjectileSystem 创建投射物系统
//
// 参数:
//   - em: 实体管理器
//   - width, height: 竞技场尺寸，投射物离开 [0,width]×[0,height] 即被移除
func NewProjectileSystem(em *ecs.EntityManager, width, height int) *ProjectileSystem {
	return &ProjectileSystem{em: em, width: width, height: height}
}

// SetVerbose 开启逐 tick 日志
func (s *ProjectileSystem) SetVerbose(v bool) { s.verbose = v }

// Update 移动所有投射物一个 tick
// 越界的投射物在本 tick 内标记删除，之后不会再参与碰撞
func (s *ProjectileSystem) Update() {
	ids := ecs.GetEntitiesWith2[*components.ProjectileComponent, *components.PositionComponent](s.em)
	for _, id := range ids {
		if !isLive(s.em, id) {
			continue
		}
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)

		pos.X += int(math.Round(float64(proj.Speed) * math.Cos(pos.Facing)))
		pos.Y += int(math.Round(float64(proj.Speed) * math.Sin(pos.Facing)))

		if !s.inBounds(pos.X, pos.Y) {
			if s.verbose {
				log.Printf("[ProjectileSystem] %s %d left arena at (%d, %d)", proj.Type, id, pos.X, pos.Y)
			}
			s.em.DestroyEntity(id)
		}
	}

	s.pruneGroups()
}

func (s *ProjectileSystem) inBounds(x, y int) bool {
	return x >= 0 && x <= s.width && y >= 0 && y <= s.height
}

// pruneGroups 移除已失效的弹丸，所有弹丸都消失后删除霰弹组
func (s *ProjectileSystem) pruneGroups() {
	for _, id := range ecs.GetEntitiesWith1[*components.PelletGroupComponent](s.em) {
		if !isLive(s.em, id) {
			continue
		}
		group, _ := ecs.GetComponent[*components.PelletGroupComponent](s.em, id)

		alive := make([]ecs.EntityID, 0, len(group.Children))
		for _, child := range group.Children {
			if isLive(s.em, child) {
				alive = append(alive, child)
			}
		}
		group.Children = alive

		if len(group.Children) == 0 {
			s.em.DestroyEntity(id)
		}
	}
}
