package systems

import (
	"math/rand"
	"testing"

	"github.com/gonewx/survival/pkg/config"
	"github.com/gonewx/survival/pkg/ecs"
	"github.com/gonewx/survival/pkg/entities"
	"github.com/gonewx/survival/pkg/types"
	"github.com/gonewx/survival/pkg/utils"
)

// fakePlayer 实现 CombatTarget 的测试替身，记录所有交互
type fakePlayer struct {
	box     utils.BoundingBox
	health  float64
	dead    bool
	deaths  int
	score   int
	weapons []types.WeaponType
	picked  []types.PlayerItem
}

func newFakePlayer(cx, cy int) *fakePlayer {
	return &fakePlayer{
		box:     utils.BoxAround(cx, cy, config.PlayerSize, config.PlayerSize),
		health:  config.PlayerMaxHealth,
		weapons: []types.WeaponType{types.WeaponPistol},
	}
}

func (p *fakePlayer) Bounds() utils.BoundingBox { return p.box }

func (p *fakePlayer) TakeDamage(amount float64) bool {
	if p.dead {
		return false
	}
	p.health -= amount
	if p.health <= 0 {
		p.dead = true
		p.deaths++
		return true
	}
	return false
}

func (p *fakePlayer) IsDead() bool                    { return p.dead }
func (p *fakePlayer) AddScore(points int)             { p.score += points }
func (p *fakePlayer) WeaponTypes() []types.WeaponType { return p.weapons }

func (p *fakePlayer) Pickup(item types.PlayerItem) bool {
	p.picked = append(p.picked, item)
	return true
}

// spawnTestZombie 用默认属性在指定位置创建僵尸
func spawnTestZombie(t *testing.T, em *ecs.EntityManager, zt types.ZombieType, x, y int) ecs.EntityID {
	t.Helper()
	stats, err := config.DefaultProvider().ZombieStats(zt)
	if err != nil {
		t.Fatalf("ZombieStats failed: %v", err)
	}
	id, err := entities.NewZombie(em, zt, stats, x, y)
	if err != nil {
		t.Fatalf("NewZombie failed: %v", err)
	}
	return id
}

// testProvider 构造只有一个关卡的配置
func testProvider(t *testing.T, level config.LevelConfig, overflow config.LevelConfig) *config.Provider {
	t.Helper()
	p, err := config.NewProvider(
		&config.WeaponStatsConfig{Weapons: map[string]config.WeaponStats{}},
		zombieTable(),
		&config.LevelsConfig{Levels: []config.LevelConfig{level}, Overflow: overflow},
	)
	if err != nil {
		t.Fatalf("NewProvider failed: %v", err)
	}
	return p
}

// newTestRand 固定种子的随机源
func newTestRand() *rand.Rand {
	return rand.New(rand.NewSource(1))
}
