// Package main checks a game config and the sprite sheets it references.
//
// Usage:
//
//	go run ./cmd/validate_config [flags]
//
// Flags:
//
//	-config <path>   Game config file (default data/game.yaml)
//	-assets <dir>    Override the asset root from the config
//
// Every animation is listed with its sheet size and frame size. Missing or
// unreadable sheets, and sheets whose size is not a multiple of the grid,
// make the tool exit with status 1.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"slices"

	"github.com/decker502/drcat/pkg/config"
)

var (
	configFlag = flag.String("config", config.DefaultConfigPath, "Path to the game config file")
	assetsFlag = flag.String("assets", "", "Override the asset root directory")
)

// sheetInfo 精灵表检查结果
type sheetInfo struct {
	width, height int
	err           error
}

func main() {
	flag.Parse()

	cfg, err := config.LoadGameConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
	root := cfg.Assets.Root
	if *assetsFlag != "" {
		root = *assetsFlag
	}

	named := cfg.NamedAnimations()
	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	slices.Sort(names)

	cache := make(map[string]sheetInfo)
	problems := 0
	for _, name := range names {
		a := named[name]
		info, ok := cache[a.Sheet]
		if !ok {
			info = inspect(filepath.Join(root, a.Sheet))
			cache[a.Sheet] = info
		}

		if info.err != nil {
			fmt.Printf("❌ %-26s %s: %v\n", name, a.Sheet, info.err)
			problems++
			continue
		}
		if a.Override == nil && (info.width%a.Cols != 0 || info.height%a.Rows != 0) {
			fmt.Printf("⚠️  %-26s %s: %dx%d is not a multiple of %dx%d grid\n",
				name, a.Sheet, info.width, info.height, a.Cols, a.Rows)
			problems++
			continue
		}
		fmt.Printf("✅ %-26s %s: %dx%d, frame %dx%d\n",
			name, a.Sheet, info.width, info.height, info.width/a.Cols, info.height/a.Rows)
	}

	fmt.Printf("\n%d animations, %d sheets, %d zones, %d problems\n",
		len(named), len(cache), len(cfg.World.Zones), problems)
	if problems > 0 {
		os.Exit(1)
	}
}

// inspect 只读取图片头部获取尺寸
func inspect(path string) sheetInfo {
	f, err := os.Open(path)
	if err != nil {
		return sheetInfo{err: err}
	}
	defer f.Close()

	c, _, err := image.DecodeConfig(f)
	if err != nil {
		return sheetInfo{err: fmt.Errorf("decode: %w", err)}
	}
	return sheetInfo{width: c.Width, height: c.Height}
}
