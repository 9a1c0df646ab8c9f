// Package app 提供游戏应用的核心包装器
//
// 该包把配置加载、资源与音频初始化、场景注册从 main 包中提取出来，
// main.go 只负责命令行参数与窗口设置。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/drcat/pkg/config"
	"github.com/decker502/drcat/pkg/game"
	"github.com/decker502/drcat/pkg/scenes"
	"github.com/decker502/drcat/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/quasilyte/gdata/v2"
)

const (
	appName    = "drcat"
	sampleRate = 48000

	// volumeStep 每次按键调整的音量
	volumeStep = 0.1
)

// Config 定义应用启动配置
type Config struct {
	// ConfigPath 游戏配置文件路径
	ConfigPath string
	// Verbose 启用详细日志输出
	Verbose bool
	// Debug 绘制命中盒与调试信息
	Debug bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	config   *config.GameConfig
	keys     config.Keys
	clock    *game.Clock
	scenes   *game.SceneManager
	settings *game.SettingsManager
	// audio 静音时停止循环音效，可为 nil
	audio interface{ StopAll() }

	// setFullscreen 切换全屏（测试中替换）
	setFullscreen func(bool)
}

// NewApp 创建并初始化游戏应用
func NewApp(opts Config) (*App, error) {
	// 配置日志输出
	if !opts.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	path := opts.ConfigPath
	if path == "" {
		path = config.DefaultConfigPath
	}
	cfg, err := config.LoadGameConfig(path)
	if err != nil {
		return nil, err
	}
	keys, err := cfg.Keys.Resolve()
	if err != nil {
		return nil, fmt.Errorf("invalid key bindings: %w", err)
	}
	log.Printf("[App] Loaded config %s", path)

	// 设置存储不可用时以默认设置运行
	store, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[App] Settings storage unavailable: %v", err)
		store = nil
	}
	settings := game.NewSettingsManager(store)

	resourceManager := game.NewResourceManager(cfg.Assets.Root, audio.NewContext(sampleRate))
	audioManager := game.NewAudioManager(resourceManager, settings)
	log.Printf("[App] AudioManager initialized")

	a := newApp(cfg, keys, settings)
	a.audio = audioManager
	ctx := &scenes.Context{
		Config: cfg,
		Keys:   keys,
		Sheets: resourceManager,
		Fonts:  resourceManager,
		Audio:  audioManager,
		Scenes: a.scenes,
		Debug:  opts.Debug,
	}
	scenes.Register(ctx, scenes.DefaultActions())

	if err := a.scenes.Start(game.SceneIntro); err != nil {
		return nil, err
	}
	ebiten.SetFullscreen(settings.Settings().Fullscreen)
	return a, nil
}

func newApp(cfg *config.GameConfig, keys config.Keys, settings *game.SettingsManager) *App {
	return &App{
		config:        cfg,
		keys:          keys,
		clock:         game.NewClock(cfg.Window.TPS),
		scenes:        game.NewSceneManager(),
		settings:      settings,
		setFullscreen: ebiten.SetFullscreen,
	}
}

// Update 更新游戏逻辑
// 每个 tick 调用一次
func (a *App) Update() error {
	return a.step(utils.PollInput(a.keys.All()))
}

// step 用一帧输入推进游戏
func (a *App) step(input utils.InputState) error {
	if input.IsJustPressed(a.keys.Quit) {
		log.Printf("[App] Quit requested")
		return ebiten.Termination
	}

	// F11 切换全屏并保存
	if input.IsJustPressed(a.keys.Fullscreen) {
		on, err := a.settings.ToggleFullscreen()
		if err != nil {
			log.Printf("[App] Failed to save settings: %v", err)
		}
		a.setFullscreen(on)
	}
	a.stepSound(input)

	a.clock.Tick()
	return a.scenes.Update(game.Frame{
		Now:   a.clock.Now(),
		Delta: a.clock.Delta(),
		Input: input,
	})
}

// stepSound 处理静音与音量按键，修改立即保存
func (a *App) stepSound(input utils.InputState) {
	var err error
	switch {
	case input.IsJustPressed(a.keys.Mute):
		var on bool
		on, err = a.settings.ToggleSound()
		if !on && a.audio != nil {
			a.audio.StopAll()
		}
		log.Printf("[App] Sound enabled: %v", on)
	case input.IsJustPressed(a.keys.VolumeUp):
		var v float64
		v, err = a.settings.AdjustVolume(volumeStep)
		log.Printf("[App] Sound volume: %.2f", v)
	case input.IsJustPressed(a.keys.VolumeDown):
		var v float64
		v, err = a.settings.AdjustVolume(-volumeStep)
		log.Printf("[App] Sound volume: %.2f", v)
	}
	if err != nil {
		log.Printf("[App] Failed to save settings: %v", err)
	}
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.scenes.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时两侧填充黑色，使用线性滤波缩放
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸（视口），Ebitengine 负责缩放到窗口
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	vp := a.config.Window.Viewport
	return vp.Width, vp.Height
}

// GameConfig 返回已加载的配置
func (a *App) GameConfig() *config.GameConfig {
	return a.config
}

// Ticks 已运行的 tick 数
func (a *App) Ticks() int64 {
	return a.clock.Ticks()
}
