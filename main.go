package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/gonewx/survival/pkg/app"
	"github.com/gonewx/survival/pkg/config"
	"github.com/gonewx/survival/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/sync/errgroup"
)

var (
	verbose   = flag.Bool("verbose", false, "显示详细日志")
	seed      = flag.Int64("seed", 0, "随机种子（0 表示使用当前时间）")
	dataDir   = flag.String("data", "data", "配置目录（默认使用嵌入配置）")
	autoStart = flag.Bool("autostart", false, "开局后立即开始第一波")
)

func main() {
	flag.Parse()
	embedded.Init(dataFS)

	a, err := app.NewApp(app.Config{
		Verbose:   *verbose,
		Seed:      *seed,
		DataDir:   *dataDir,
		AutoStart: *autoStart,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "启动失败: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// 事件分发在后台 goroutine 运行，ebiten 主循环必须留在主线程
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.RunEvents(gctx)
	})

	ebiten.SetWindowSize(config.ArenaWidth, config.ArenaHeight)
	ebiten.SetWindowTitle("Zombie Survival")
	ebiten.SetTPS(config.TicksPerSecond)
	ebiten.SetFullscreen(a.Settings().GetSettings().Fullscreen)

	runErr := ebiten.RunGame(a)
	a.Close()
	if err := g.Wait(); err != nil {
		log.Printf("[Main] Event dispatcher stopped: %v", err)
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "运行错误: %v\n", runErr)
		os.Exit(1)
	}
}
