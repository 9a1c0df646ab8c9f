// Dr. Cat: 俯视角 2D 精灵世界
//
// Usage:
//
//	go run . [flags]
//
// Flags:
//
//	-config <path>     游戏配置文件（默认 data/game.yaml）
//	-verbose           输出日志
//	-debug             绘制命中盒与调试信息
//	-profile cpu|mem   写出性能分析文件
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/decker502/drcat/pkg/app"
	"github.com/decker502/drcat/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/profile"
)

var (
	configFlag  = flag.String("config", config.DefaultConfigPath, "Path to the game config file")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging (default off)")
	debugFlag   = flag.Bool("debug", false, "Draw hitboxes and debug info")
	profileFlag = flag.String("profile", "", "Write a cpu or mem profile to the working directory")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		// 非 verbose 模式下 NewApp 会关闭日志输出，错误直接写到 stderr
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run 启动游戏；返回前停止性能分析，保证分析文件写出
func run() error {
	switch *profileFlag {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	default:
		return fmt.Errorf("unknown profile mode %q (want cpu or mem)", *profileFlag)
	}

	game, err := app.NewApp(app.Config{
		ConfigPath: *configFlag,
		Verbose:    *verboseFlag,
		Debug:      *debugFlag,
	})
	if err != nil {
		return err
	}

	cfg := game.GameConfig()
	vp := cfg.Window.Viewport
	ebiten.SetTPS(cfg.Window.TPS)
	ebiten.SetWindowSize(vp.Width, vp.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return ebiten.RunGame(game)
}
