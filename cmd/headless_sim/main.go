// headless_sim 无窗口运行一局仿真，用自动瞄准机器人代替玩家
//
// 用法:
//
//	go run ./cmd/headless_sim -seed 42 -ticks 20000
//	go run ./cmd/headless_sim -data ./data -verbose
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"sync"

	"github.com/gonewx/survival/pkg/config"
	"github.com/gonewx/survival/pkg/game"
	"github.com/gonewx/survival/pkg/simulation"
	"golang.org/x/sync/errgroup"
)

var (
	seed    = flag.Int64("seed", 1, "随机种子")
	ticks   = flag.Int("ticks", 20000, "最多运行的 tick 数")
	dataDir = flag.String("data", "", "配置目录（为空时使用内置默认配置）")
	verbose = flag.Bool("verbose", false, "显示详细日志")
)

// eventCounter 统计各类事件数量
type eventCounter struct {
	mu     sync.Mutex
	counts map[game.EventType]int
}

func (c *eventCounter) handle(e game.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[e.Type]++
}

func (c *eventCounter) print(w io.Writer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	types := make([]game.EventType, 0, len(c.counts))
	for t := range c.counts {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	for _, t := range types {
		fmt.Fprintf(w, "  %-16s %d\n", t, c.counts[t])
	}
}

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	provider := config.DefaultProvider()
	if *dataDir != "" {
		p, err := config.LoadProvider(*dataDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "配置加载失败: %v\n", err)
			os.Exit(1)
		}
		provider = p
	}

	bus := game.NewEventBus(4096)
	dispatcher := game.NewEventDispatcher(bus)
	counter := &eventCounter{counts: make(map[game.EventType]int)}
	dispatcher.Subscribe(counter.handle)
	dispatcher.Subscribe(game.LogEvent)

	session, err := simulation.NewSession(simulation.Options{
		Provider: provider,
		Seed:     *seed,
		Events:   bus,
		Verbose:  *verbose,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "会话创建失败: %v\n", err)
		os.Exit(1)
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		return dispatcher.Run(ctx)
	})
	g.Go(func() error {
		// 总线关闭后分发 goroutine 排空剩余事件再退出
		defer bus.Close()
		return run(ctx, session)
	})
	if err := g.Wait(); err != nil {
		fmt.Fprintf(os.Stderr, "运行失败: %v\n", err)
		os.Exit(1)
	}

	snap := session.Snapshot()
	fmt.Printf("session   %s (seed %d)\n", session.ID(), *seed)
	fmt.Printf("ticks     %d\n", snap.Tick)
	fmt.Printf("level     %d [%s]\n", snap.Level, snap.WaveState)
	fmt.Printf("score     %d\n", snap.Score())
	fmt.Printf("health    %.0f/%.0f\n", snap.Player.Health, snap.Player.MaxHealth)
	fmt.Printf("game over %v\n", snap.GameOver)
	for _, w := range snap.Player.Weapons {
		fmt.Printf("weapon    %s ammo %d/%d magazines %d\n", w.Type, w.Ammo, w.MagazineCapacity, w.MagazineCount)
	}
	fmt.Println("events:")
	counter.print(os.Stdout)
	if dropped := bus.Dropped(); dropped > 0 {
		fmt.Printf("  (dropped %d)\n", dropped)
	}
}

// run 推进仿真直到游戏结束或达到 tick 上限
func run(ctx context.Context, session *simulation.Session) error {
	bot := simulation.NewBot()
	session.StartWave()

	snap := session.Snapshot()
	for i := 0; i < *ticks && !session.IsGameOver(); i++ {
		if i%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		snap = session.Tick(bot.Decide(snap))
	}
	return nil
}
