package config

import (
	"time"

	"github.com/decker502/drcat/pkg/utils"
)

// 默认值
const (
	DefaultViewportWidth  = 1920
	DefaultViewportHeight = 1080
	DefaultTPS            = 60

	// DefaultFadeTicks 开场淡入：背景从白到黑，每 tick 递减 1
	DefaultFadeTicks = 255

	DefaultConfigPath = "data/game.yaml"
)

// strip 单行精灵条动画
func strip(sheet string, cols int) AnimationConfig {
	return AnimationConfig{Sheet: sheet, Rows: 1, Cols: cols}
}

// still 单帧静态图
func still(sheet string) AnimationConfig {
	return strip(sheet, 1)
}

// dash 冲刺动画：20ms 一帧，单次播放，不可打断
func dash(sheet string, cols int) AnimationConfig {
	a := strip(sheet, cols)
	a.Duration = 20 * time.Millisecond
	a.OneShot = true
	a.Uninterruptable = true
	return a
}

// attack 攻击动画：单次播放，不可打断，播放期间不可移动
func attack(sheet string) AnimationConfig {
	a := strip(sheet, 8)
	a.OneShot = true
	a.Uninterruptable = true
	a.Immovable = true
	return a
}

// DefaultGameConfig 返回默认配置
func DefaultGameConfig() *GameConfig {
	standing := strip("front.png", 2)
	standing.Duration = 400 * time.Millisecond

	death := strip("death.png", 15)
	death.Duration = 100 * time.Millisecond
	death.OneShot = true
	death.Uninterruptable = true
	death.Immovable = true

	dashLeft := dash("movements/dash_left.png", 8)
	dashLeft.Reverse = true
	dashUp := dash("movements/dash_back.png", 8)
	dashUp.Count = 7

	heart := strip("selet.png", 5)
	heart.Duration = 400 * time.Millisecond
	heart.OneShot = true
	heart.Held = true

	dashHUD := AnimationConfig{Sheet: "dash.png", Rows: 7, Cols: 1}
	dashHUD.Duration = 286 * time.Millisecond
	dashHUD.OneShot = true
	dashHUD.Held = true

	cat := still("TX Player.png")
	cat.Override = &utils.Rect{X: 5, Y: 13, W: 23, H: 45}

	enemyDown := strip("enemy/down.png", 8)
	enemyUp := strip("enemy/up.png", 8)

	treeHitbox := &HitboxConfig{X: -15, Y: -10, W: 25, H: 10, AnchorCenterX: true, AnchorBottom: true}

	return &GameConfig{
		Window: WindowConfig{
			Title:     "Dr. Cat Games",
			Viewport:  Viewport{Width: DefaultViewportWidth, Height: DefaultViewportHeight},
			TPS:       DefaultTPS,
			FadeTicks: DefaultFadeTicks,
		},
		Movement: MovementConfig{
			BaseSpeed:       3,
			SprintSpeed:     5,
			DashBurstSpeed:  18,
			DashBurstWindow: 150 * time.Millisecond,
			DashSpeed:       20,
			DashCooldown:    2 * time.Second,
		},
		Agents: AgentsConfig{
			Animal: WanderConfig{TurnChance: 5, SkipChance: 50, Animate: false},
			Enemy:  WanderConfig{TurnChance: 2, SkipChance: 50, Animate: true},
		},
		Keys: KeyBindings{
			Left:        "A",
			Right:       "D",
			Up:          "W",
			Down:        "S",
			Sprint:      "ShiftLeft",
			Dash:        "AltLeft",
			Interact:    "E",
			Death:       "K",
			AttackRight: "ArrowRight",
			AttackLeft:  "ArrowLeft",
			Quit:        "Escape",
			Fullscreen:  "F11",
			Mute:        "M",
			VolumeUp:    "Equal",
			VolumeDown:  "Minus",
		},
		Assets: AssetsConfig{
			Root:           "assets",
			FontSize:       100,
			Logo:           still("UI/DRcatgameslogo.png"),
			Indicator:      still("E.png"),
			RunningSound:   "sounds/running_in_grass.mp3",
			SlashSound:     "sounds/slash.mp3",
			RunningFadeOut: time.Second,
		},
		HUD: HUDConfig{
			Heart:        heart,
			HeartCount:   3,
			HeartSize:    50,
			HeartMargin:  25,
			HeartSpacing: 50,
			Dash:         dashHUD,
			DashScale:    3,
			DashOffsetX:  44,
			DashOffsetY:  28,
		},
		Menu: MenuConfig{
			ButtonWidth:  400,
			ButtonHeight: 100,
			Label:        "JÁTÉK KEZDÉSE",
			LabelOffsetY: 0,
		},
		World: WorldConfig{
			StartX:       5670,
			StartY:       370,
			HighestLayer: 3,
			Map: MapConfig{
				Animation: still("map_base.png"),
				Scale:     7,
				Hitboxes: []utils.Rect{
					{X: 416, Y: 2922, W: 1284, H: 1213},
					{X: 1130, Y: 3350, W: 77, H: 33},
				},
			},
			Character: CharacterConfig{
				Width:       100,
				Height:      100,
				Hitbox:      HitboxConfig{X: -15, Y: -10, W: 25, H: 1, AnchorCenterX: true, AnchorBottom: true},
				Standing:    standing,
				Left:        strip("movements/left.png", 4),
				Right:       strip("movements/right.png", 4),
				Up:          strip("movements/back.png", 6),
				Down:        strip("movements/front.png", 5),
				Death:       death,
				DashLeft:    dashLeft,
				DashRight:   dash("movements/dash_right.png", 8),
				DashUp:      dashUp,
				DashDown:    dash("movements/dash_front.png", 11),
				AttackRight: attack("attack.png"),
				AttackLeft:  attack("attack_left.png"),
			},
			Props: []PropConfig{
				{Animation: still("tree.png"), X: 100, ScaleW: 2, ScaleH: 2, Layer: 3, Hitbox: treeHitbox},
				{Animation: still("tree.png"), X: 200, ScaleW: 2, ScaleH: 2, Layer: 3, Hitbox: treeHitbox},
			},
			Animals: []AgentConfig{
				{
					Animations: []AnimationConfig{cat},
					X:          -5670,
					Y:          -350,
					ScaleW:     0.7,
					Layer:      2,
					Speed:      3,
					Hitbox:     &HitboxConfig{Y: -30, H: 30, AnchorBottom: true, FullWidth: true},
				},
			},
			Enemies: []AgentConfig{
				{
					Animations:  []AnimationConfig{enemyDown, enemyDown, enemyUp},
					InitialSlot: 2,
					X:           -5670,
					Y:           -350,
					ScaleW:      2,
					ScaleH:      2,
					Layer:       2,
					Speed:       3,
				},
			},
			Zones: []ZoneConfig{
				{Rect: utils.Rect{X: 1128, Y: 3383, W: 86, H: 36}, Action: "log"},
			},
		},
	}
}
