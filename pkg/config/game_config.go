package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"
	"time"

	"github.com/decker502/drcat/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// GameConfig 游戏总配置
//
// 配置文件位置: data/game.yaml
//
// 包含窗口/视口、玩家移动与冲刺参数、自主行动体参数、按键绑定、
// 资源路径以及世界布局。所有字段都有默认值（见 DefaultGameConfig），
// 配置文件只需覆盖需要修改的部分。
type GameConfig struct {
	Window   WindowConfig   `yaml:"window"`
	Movement MovementConfig `yaml:"movement"`
	Agents   AgentsConfig   `yaml:"agents"`
	Keys     KeyBindings    `yaml:"keys"`
	Assets   AssetsConfig   `yaml:"assets"`
	HUD      HUDConfig      `yaml:"hud"`
	Menu     MenuConfig     `yaml:"menu"`
	World    WorldConfig    `yaml:"world"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Title    string   `yaml:"title"`
	Viewport Viewport `yaml:"viewport"`
	// TPS 每秒逻辑帧数，驱动整个 tick 循环
	TPS int `yaml:"tps"`
	// FadeTicks 开场淡入持续的 tick 数
	FadeTicks int `yaml:"fadeTicks"`
}

// Viewport 逻辑屏幕尺寸
//
// 精灵的目标矩形以视口中心为原点计算，
// 因此视口尺寸需要显式传入每个精灵，而不是使用全局常量。
type Viewport struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// CenterOrigin 返回尺寸为 (w, h) 的矩形居中放置时的左上角坐标
func (v Viewport) CenterOrigin(w, h int) (int, int) {
	return (v.Width - w) / 2, (v.Height - h) / 2
}

// MovementConfig 玩家移动与冲刺参数
type MovementConfig struct {
	BaseSpeed   int `yaml:"baseSpeed"`   // 默认速度（像素/tick）
	SprintSpeed int `yaml:"sprintSpeed"` // 按住加速键时的速度

	// DashBurstSpeed 冲刺后 DashBurstWindow 时间内的速度
	DashBurstSpeed  int           `yaml:"dashBurstSpeed"`
	DashBurstWindow time.Duration `yaml:"dashBurstWindow"`

	// DashSpeed 冲刺触发当帧的速度
	DashSpeed    int           `yaml:"dashSpeed"`
	DashCooldown time.Duration `yaml:"dashCooldown"`
}

// AgentsConfig 自主行动体参数
type AgentsConfig struct {
	Animal WanderConfig `yaml:"animal"`
	Enemy  WanderConfig `yaml:"enemy"`
}

// WanderConfig 漫游行为参数
type WanderConfig struct {
	// TurnChance 每 tick 随机换方向的概率（百分比）
	TurnChance int `yaml:"turnChance"`
	// SkipChance 每 tick 原地不动的概率（百分比）
	SkipChance int `yaml:"skipChance"`
	// Animate 是否每 tick 自行推进动画
	Animate bool `yaml:"animate"`
}

// KeyBindings 按键绑定，值为 ebiten 键名（如 "D", "ShiftLeft", "ArrowRight"）
type KeyBindings struct {
	Left        string `yaml:"left"`
	Right       string `yaml:"right"`
	Up          string `yaml:"up"`
	Down        string `yaml:"down"`
	Sprint      string `yaml:"sprint"`
	Dash        string `yaml:"dash"`
	Interact    string `yaml:"interact"`
	Death       string `yaml:"death"`
	AttackRight string `yaml:"attackRight"`
	AttackLeft  string `yaml:"attackLeft"`
	Quit        string `yaml:"quit"`
	Fullscreen  string `yaml:"fullscreen"`
	Mute        string `yaml:"mute"`
	VolumeUp    string `yaml:"volumeUp"`
	VolumeDown  string `yaml:"volumeDown"`
}

// Keys 解析后的按键
type Keys struct {
	Left, Right, Up, Down   ebiten.Key
	Sprint, Dash, Interact  ebiten.Key
	Death                   ebiten.Key
	AttackRight, AttackLeft ebiten.Key
	Quit, Fullscreen        ebiten.Key
	Mute                    ebiten.Key
	VolumeUp, VolumeDown    ebiten.Key
}

// All 返回所有绑定的按键，用于输入轮询
func (k Keys) All() []ebiten.Key {
	return []ebiten.Key{
		k.Left, k.Right, k.Up, k.Down,
		k.Sprint, k.Dash, k.Interact, k.Death,
		k.AttackRight, k.AttackLeft, k.Quit, k.Fullscreen,
		k.Mute, k.VolumeUp, k.VolumeDown,
	}
}

// Resolve 将键名解析为 ebiten.Key
func (b KeyBindings) Resolve() (Keys, error) {
	var keys Keys
	bindings := []struct {
		name   string
		value  string
		target *ebiten.Key
	}{
		{"left", b.Left, &keys.Left},
		{"right", b.Right, &keys.Right},
		{"up", b.Up, &keys.Up},
		{"down", b.Down, &keys.Down},
		{"sprint", b.Sprint, &keys.Sprint},
		{"dash", b.Dash, &keys.Dash},
		{"interact", b.Interact, &keys.Interact},
		{"death", b.Death, &keys.Death},
		{"attackRight", b.AttackRight, &keys.AttackRight},
		{"attackLeft", b.AttackLeft, &keys.AttackLeft},
		{"quit", b.Quit, &keys.Quit},
		{"fullscreen", b.Fullscreen, &keys.Fullscreen},
		{"mute", b.Mute, &keys.Mute},
		{"volumeUp", b.VolumeUp, &keys.VolumeUp},
		{"volumeDown", b.VolumeDown, &keys.VolumeDown},
	}

	for _, binding := range bindings {
		if binding.value == "" {
			return Keys{}, fmt.Errorf("key binding %q is empty", binding.name)
		}
		if err := binding.target.UnmarshalText([]byte(binding.value)); err != nil {
			return Keys{}, fmt.Errorf("key binding %q: %w", binding.name, err)
		}
	}
	return keys, nil
}

// AssetsConfig 资源路径
type AssetsConfig struct {
	Root     string  `yaml:"root"`     // 资源根目录，其余路径相对于它
	Font     string  `yaml:"font"`     // 菜单字体，为空时使用内置 Go Regular 字体
	FontSize float64 `yaml:"fontSize"` // 菜单字体大小

	Logo      AnimationConfig `yaml:"logo"`
	Indicator AnimationConfig `yaml:"indicator"`

	RunningSound string `yaml:"runningSound"`
	SlashSound   string `yaml:"slashSound"`

	// InteractSound 触发交互区域时的音效，为空时不播放
	InteractSound string `yaml:"interactSound"`

	// RunningFadeOut 停止移动时奔跑音效的淡出时长
	RunningFadeOut time.Duration `yaml:"runningFadeOut"`
}

// AnimationConfig 单个动画的定义
//
// 布尔字段使用"否定"命名，使零值对应默认行为：
// 循环、可打断、允许移动、立即播放。
type AnimationConfig struct {
	Sheet string `yaml:"sheet"`
	Rows  int    `yaml:"rows"`
	Cols  int    `yaml:"cols"`

	// Frames 显式帧序列；为空时按网格顺序生成 Count 帧
	Frames []FrameConfig `yaml:"frames"`
	// Count 自动生成的帧数，0 表示全部网格
	Count int `yaml:"count"`
	// Reverse 自动生成的帧序列是否倒序
	Reverse bool `yaml:"reverse"`
	// Override 第一帧的显式源矩形（覆盖网格计算）
	Override *utils.Rect `yaml:"override"`

	Duration        time.Duration `yaml:"duration"`
	OneShot         bool          `yaml:"oneShot"`
	Uninterruptable bool          `yaml:"uninterruptable"`
	Immovable       bool          `yaml:"immovable"`
	// Held 初始不播放，停在第一帧，需要显式 Play
	Held bool `yaml:"held"`
}

// FrameConfig 网格帧坐标
type FrameConfig struct {
	Col int `yaml:"col"`
	Row int `yaml:"row"`
}

// HitboxConfig 命中盒定义（相对精灵左上角）
//
// 锚点标志允许命中盒随精灵尺寸计算，例如"底部 10 像素高、水平居中"：
//
//	{x: -15, y: -10, w: 25, h: 10, anchorCenterX: true, anchorBottom: true}
type HitboxConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`

	AnchorCenterX bool `yaml:"anchorCenterX"` // X 相对精灵水平中心
	AnchorBottom  bool `yaml:"anchorBottom"`  // Y 相对精灵底边
	FullWidth     bool `yaml:"fullWidth"`     // W 取精灵宽度
}

// Resolve 根据精灵尺寸计算局部命中盒
func (h HitboxConfig) Resolve(spriteW, spriteH int) utils.Rect {
	r := utils.NewRect(h.X, h.Y, h.W, h.H)
	if h.AnchorCenterX {
		r.X += spriteW / 2
	}
	if h.AnchorBottom {
		r.Y += spriteH
	}
	if h.FullWidth {
		r.W = spriteW
	}
	return r
}

// CharacterConfig 玩家角色定义
//
// 动画槽位约定：
//
//	0 站立, 1-4 左/右/上/下, 5 死亡, 6-9 冲刺 左/右/上/下, 10 右攻击, 11 左攻击
type CharacterConfig struct {
	Width  int          `yaml:"width"`
	Height int          `yaml:"height"`
	Hitbox HitboxConfig `yaml:"hitbox"`

	Standing    AnimationConfig `yaml:"standing"`
	Left        AnimationConfig `yaml:"left"`
	Right       AnimationConfig `yaml:"right"`
	Up          AnimationConfig `yaml:"up"`
	Down        AnimationConfig `yaml:"down"`
	Death       AnimationConfig `yaml:"death"`
	DashLeft    AnimationConfig `yaml:"dashLeft"`
	DashRight   AnimationConfig `yaml:"dashRight"`
	DashUp      AnimationConfig `yaml:"dashUp"`
	DashDown    AnimationConfig `yaml:"dashDown"`
	AttackRight AnimationConfig `yaml:"attackRight"`
	AttackLeft  AnimationConfig `yaml:"attackLeft"`
}

// Slots 按槽位顺序返回全部动画
func (c CharacterConfig) Slots() []AnimationConfig {
	return []AnimationConfig{
		c.Standing, c.Left, c.Right, c.Up, c.Down, c.Death,
		c.DashLeft, c.DashRight, c.DashUp, c.DashDown,
		c.AttackRight, c.AttackLeft,
	}
}

// PropConfig 静态物体（树木等）
type PropConfig struct {
	Animation AnimationConfig `yaml:"animation"`
	X         int             `yaml:"x"`
	Y         int             `yaml:"y"`
	ScaleW    float64         `yaml:"scaleW"` // 0 视为 1
	ScaleH    float64         `yaml:"scaleH"` // 0 视为 1
	Layer     int             `yaml:"layer"`
	Hitbox    *HitboxConfig   `yaml:"hitbox"`
}

// AgentConfig 自主行动体（动物、敌人）
type AgentConfig struct {
	Animations  []AnimationConfig `yaml:"animations"`
	InitialSlot int               `yaml:"initialSlot"`
	X           int               `yaml:"x"`
	Y           int               `yaml:"y"`
	ScaleW      float64           `yaml:"scaleW"`
	ScaleH      float64           `yaml:"scaleH"`
	Layer       int               `yaml:"layer"`
	Speed       int               `yaml:"speed"`
	Hitbox      *HitboxConfig     `yaml:"hitbox"`
}

// MapConfig 地图底图及其静态碰撞区域
type MapConfig struct {
	Animation AnimationConfig `yaml:"animation"`
	Scale     float64         `yaml:"scale"`
	// Hitboxes 相对地图左上角的阻挡矩形
	Hitboxes []utils.Rect `yaml:"hitboxes"`
}

// ZoneConfig 交互区域
type ZoneConfig struct {
	// Rect 相对地图左上角的矩形
	Rect utils.Rect `yaml:"rect"`
	// Action 触发时执行的动作名，为空表示没有回调
	Action string `yaml:"action"`
}

// WorldConfig 世界布局
type WorldConfig struct {
	StartX       int             `yaml:"startX"`
	StartY       int             `yaml:"startY"`
	HighestLayer int             `yaml:"highestLayer"`
	Map          MapConfig       `yaml:"map"`
	Character    CharacterConfig `yaml:"character"`
	Props        []PropConfig    `yaml:"props"`
	Animals      []AgentConfig   `yaml:"animals"`
	Enemies      []AgentConfig   `yaml:"enemies"`
	Zones        []ZoneConfig    `yaml:"zones"`
}

// HUDConfig 屏幕叠加层（生命值、冲刺冷却）
type HUDConfig struct {
	Heart        AnimationConfig `yaml:"heart"`
	HeartCount   int             `yaml:"heartCount"`
	HeartSize    int             `yaml:"heartSize"`
	HeartMargin  int             `yaml:"heartMargin"`
	HeartSpacing int             `yaml:"heartSpacing"`

	Dash        AnimationConfig `yaml:"dash"`
	DashScale   int             `yaml:"dashScale"`
	DashOffsetX int             `yaml:"dashOffsetX"` // 距右边缘
	DashOffsetY int             `yaml:"dashOffsetY"` // 距上边缘
}

// MenuConfig 开始菜单
type MenuConfig struct {
	ButtonWidth  int    `yaml:"buttonWidth"`
	ButtonHeight int    `yaml:"buttonHeight"`
	Label        string `yaml:"label"`
	// LabelOffsetY 文字相对按钮中心的垂直偏移
	LabelOffsetY int `yaml:"labelOffsetY"`
}

// LoadGameConfig 加载游戏配置
//
// 先填充默认值，再用 YAML 覆盖，最后校验。
//
// 参数:
//   - path: 配置文件路径（如 "data/game.yaml"）
//
// 返回:
//   - *GameConfig: 加载成功后的配置
//   - error: 读取、解析或校验失败时返回错误
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}

	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}
	return cfg, nil
}

// ErrInvalidConfig 配置校验失败
var ErrInvalidConfig = errors.New("invalid config")

// Validate 校验配置有效性
func (c *GameConfig) Validate() error {
	if c.Window.Viewport.Width <= 0 || c.Window.Viewport.Height <= 0 {
		return fmt.Errorf("%w: viewport must be positive, got %dx%d",
			ErrInvalidConfig, c.Window.Viewport.Width, c.Window.Viewport.Height)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("%w: tps must be positive, got %d", ErrInvalidConfig, c.Window.TPS)
	}

	m := c.Movement
	if m.BaseSpeed <= 0 || m.SprintSpeed <= 0 || m.DashSpeed <= 0 || m.DashBurstSpeed <= 0 {
		return fmt.Errorf("%w: movement speeds must be positive", ErrInvalidConfig)
	}
	if m.DashCooldown < 0 || m.DashBurstWindow < 0 {
		return fmt.Errorf("%w: dash timings must not be negative", ErrInvalidConfig)
	}

	agents := []struct {
		name string
		w    WanderConfig
	}{{"animal", c.Agents.Animal}, {"enemy", c.Agents.Enemy}}
	for _, agent := range agents {
		name, w := agent.name, agent.w
		if w.TurnChance < 0 || w.TurnChance > 100 || w.SkipChance < 0 || w.SkipChance > 100 {
			return fmt.Errorf("%w: %s chances must be within 0..100", ErrInvalidConfig, name)
		}
	}

	if _, err := c.Keys.Resolve(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if c.World.HighestLayer < 1 {
		return fmt.Errorf("%w: highestLayer must be >= 1, got %d", ErrInvalidConfig, c.World.HighestLayer)
	}

	if err := c.validateAnimations(); err != nil {
		return err
	}

	checkLayer := func(kind string, i, layer int) error {
		if layer < 1 || layer > c.World.HighestLayer {
			return fmt.Errorf("%w: %s[%d] layer %d outside 1..%d",
				ErrInvalidConfig, kind, i, layer, c.World.HighestLayer)
		}
		return nil
	}
	for i, p := range c.World.Props {
		if err := checkLayer("props", i, p.Layer); err != nil {
			return err
		}
	}
	for i, a := range c.World.Animals {
		if err := checkLayer("animals", i, a.Layer); err != nil {
			return err
		}
		if len(a.Animations) == 0 {
			return fmt.Errorf("%w: animals[%d] has no animations", ErrInvalidConfig, i)
		}
	}
	for i, e := range c.World.Enemies {
		if err := checkLayer("enemies", i, e.Layer); err != nil {
			return err
		}
		// 敌人槽位 1/2 为向下/向上移动动画
		if len(e.Animations) < 3 {
			return fmt.Errorf("%w: enemies[%d] needs at least 3 animations, got %d",
				ErrInvalidConfig, i, len(e.Animations))
		}
		if e.InitialSlot < 0 || e.InitialSlot >= len(e.Animations) {
			return fmt.Errorf("%w: enemies[%d] initialSlot %d out of range", ErrInvalidConfig, i, e.InitialSlot)
		}
	}
	return nil
}

// NamedAnimations 按配置路径命名返回全部动画定义
func (c *GameConfig) NamedAnimations() map[string]AnimationConfig {
	named := map[string]AnimationConfig{
		"assets.logo":      c.Assets.Logo,
		"assets.indicator": c.Assets.Indicator,
		"hud.heart":        c.HUD.Heart,
		"hud.dash":         c.HUD.Dash,
		"world.map":        c.World.Map.Animation,
	}
	for i, a := range c.World.Character.Slots() {
		named[fmt.Sprintf("world.character[%d]", i)] = a
	}
	for i, p := range c.World.Props {
		named[fmt.Sprintf("world.props[%d]", i)] = p.Animation
	}
	for i, agent := range c.World.Animals {
		for j, a := range agent.Animations {
			named[fmt.Sprintf("world.animals[%d][%d]", i, j)] = a
		}
	}
	for i, agent := range c.World.Enemies {
		for j, a := range agent.Animations {
			named[fmt.Sprintf("world.enemies[%d][%d]", i, j)] = a
		}
	}
	return named
}

// validateAnimations 校验所有动画定义，按名称顺序报告第一个错误
func (c *GameConfig) validateAnimations() error {
	named := c.NamedAnimations()
	for _, name := range slices.Sorted(maps.Keys(named)) {
		a := named[name]
		if a.Sheet == "" {
			return fmt.Errorf("%w: %s has no sheet", ErrInvalidConfig, name)
		}
		if a.Rows <= 0 || a.Cols <= 0 {
			return fmt.Errorf("%w: %s grid must be positive, got %dx%d", ErrInvalidConfig, name, a.Rows, a.Cols)
		}
		if a.Count < 0 || a.Count > a.Rows*a.Cols {
			return fmt.Errorf("%w: %s count %d outside grid", ErrInvalidConfig, name, a.Count)
		}
		for i, f := range a.Frames {
			if f.Col < 0 || f.Col >= a.Cols || f.Row < 0 || f.Row >= a.Rows {
				return fmt.Errorf("%w: %s frames[%d] (col %d, row %d) outside %dx%d grid",
					ErrInvalidConfig, name, i, f.Col, f.Row, a.Rows, a.Cols)
			}
		}
	}
	return nil
}
