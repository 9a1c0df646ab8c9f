package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestDefaultGameConfigIsValid(t *testing.T) {
	cfg := DefaultGameConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid, got %v", err)
	}

	if got := len(cfg.World.Character.Slots()); got != 12 {
		t.Errorf("Expected 12 character slots, got %d", got)
	}
	if cfg.World.Character.Standing.Duration != 400*time.Millisecond {
		t.Errorf("Expected standing duration 400ms, got %v", cfg.World.Character.Standing.Duration)
	}
	if cfg.World.Character.DashUp.Count != 7 {
		t.Errorf("Expected dash-up to use 7 frames, got %d", cfg.World.Character.DashUp.Count)
	}
	if !cfg.World.Character.DashLeft.Reverse {
		t.Error("Expected dash-left frames to be reversed")
	}
}

func TestLoadGameConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *GameConfig)
	}{
		{
			name: "partial override keeps defaults",
			yamlContent: `
movement:
  sprintSpeed: 7
  dashCooldown: 3s
`,
			validate: func(t *testing.T, cfg *GameConfig) {
				if cfg.Movement.SprintSpeed != 7 {
					t.Errorf("expected sprintSpeed = 7, got %d", cfg.Movement.SprintSpeed)
				}
				if cfg.Movement.DashCooldown != 3*time.Second {
					t.Errorf("expected dashCooldown = 3s, got %v", cfg.Movement.DashCooldown)
				}
				// 未覆盖的字段保持默认值
				if cfg.Movement.BaseSpeed != 3 {
					t.Errorf("expected baseSpeed default 3, got %d", cfg.Movement.BaseSpeed)
				}
				if cfg.World.HighestLayer != 3 {
					t.Errorf("expected highestLayer default 3, got %d", cfg.World.HighestLayer)
				}
			},
		},
		{
			name: "custom key bindings",
			yamlContent: `
keys:
  left: ArrowLeft
  attackLeft: J
`,
			validate: func(t *testing.T, cfg *GameConfig) {
				keys, err := cfg.Keys.Resolve()
				if err != nil {
					t.Fatalf("unexpected resolve error: %v", err)
				}
				if keys.Left != ebiten.KeyArrowLeft {
					t.Errorf("expected left = ArrowLeft, got %v", keys.Left)
				}
				if keys.AttackLeft != ebiten.KeyJ {
					t.Errorf("expected attackLeft = J, got %v", keys.AttackLeft)
				}
				if keys.Right != ebiten.KeyD {
					t.Errorf("expected right default D, got %v", keys.Right)
				}
			},
		},
		{
			name: "unknown key name",
			yamlContent: `
keys:
  dash: NotAKey
`,
			wantErr:     true,
			errContains: "dash",
		},
		{
			name: "chance out of range",
			yamlContent: `
agents:
  animal:
    turnChance: 150
`,
			wantErr:     true,
			errContains: "animal chances",
		},
		{
			name: "prop layer above highest",
			yamlContent: `
world:
  highestLayer: 2
`,
			wantErr:     true,
			errContains: "props[0] layer 3",
		},
		{
			name: "enemy with too few animations",
			yamlContent: `
world:
  enemies:
    - animations:
        - { sheet: enemy/down.png, rows: 1, cols: 8 }
      layer: 2
      speed: 3
`,
			wantErr:     true,
			errContains: "at least 3 animations",
		},
		{
			name: "animation count outside grid",
			yamlContent: `
assets:
  logo: { sheet: logo.png, rows: 1, cols: 2, count: 3 }
`,
			wantErr:     true,
			errContains: "assets.logo count 3",
		},
		{
			name:        "malformed yaml",
			yamlContent: "movement: [",
			wantErr:     true,
			errContains: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			tmpFile := filepath.Join(tmpDir, "game.yaml")
			if err := os.WriteFile(tmpFile, []byte(tt.yamlContent), 0644); err != nil {
				t.Fatalf("failed to create temp file: %v", err)
			}

			cfg, err := LoadGameConfig(tmpFile)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.errContains)
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %q", tt.errContains, err.Error())
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadGameConfigMissingFile(t *testing.T) {
	_, err := LoadGameConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected wrapped ErrNotExist, got %v", err)
	}
}

func TestValidateWrapsErrInvalidConfig(t *testing.T) {
	cfg := DefaultGameConfig()
	cfg.Window.TPS = 0

	err := cfg.Validate()
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestValidateAnimationFrames(t *testing.T) {
	tests := []struct {
		name    string
		frames  []FrameConfig
		wantErr bool
	}{
		{"inside grid", []FrameConfig{{Col: 0, Row: 0}, {Col: 3, Row: 1}}, false},
		{"column past grid", []FrameConfig{{Col: 4, Row: 0}}, true},
		{"row past grid", []FrameConfig{{Col: 0, Row: 2}}, true},
		{"negative", []FrameConfig{{Col: -1, Row: 0}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultGameConfig()
			cfg.HUD.Dash = AnimationConfig{Sheet: "dash.png", Rows: 2, Cols: 4, Frames: tt.frames}

			err := cfg.Validate()
			if tt.wantErr && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Expected valid config, got %v", err)
			}
		})
	}
}

// TestValidateAnimationsStableOrder 多个错误时总是报告名称最靠前的一个
func TestValidateAnimationsStableOrder(t *testing.T) {
	for i := 0; i < 20; i++ {
		cfg := DefaultGameConfig()
		cfg.HUD.Heart.Sheet = ""
		cfg.Assets.Logo.Sheet = ""
		cfg.World.Map.Animation.Sheet = ""

		err := cfg.Validate()
		if err == nil || !strings.Contains(err.Error(), "assets.logo has no sheet") {
			t.Fatalf("Expected assets.logo to be reported first, got %v", err)
		}
	}
}

// TestLoadShippedGameConfig 确保随仓库发布的配置文件可以加载
func TestLoadShippedGameConfig(t *testing.T) {
	path := filepath.Join("..", "..", "data", "game.yaml")
	if _, err := os.Stat(path); err != nil {
		t.Skipf("shipped config not found: %v", err)
	}

	cfg, err := LoadGameConfig(path)
	if err != nil {
		t.Fatalf("failed to load shipped config: %v", err)
	}

	if cfg.World.StartX != 5670 || cfg.World.StartY != 370 {
		t.Errorf("expected start (5670, 370), got (%d, %d)", cfg.World.StartX, cfg.World.StartY)
	}
	if len(cfg.World.Props) != 2 {
		t.Errorf("expected 2 props, got %d", len(cfg.World.Props))
	}
	if len(cfg.World.Zones) != 1 || cfg.World.Zones[0].Action != "log" {
		t.Errorf("expected one log zone, got %+v", cfg.World.Zones)
	}
	if cfg.World.Animals[0].Animations[0].Override == nil {
		t.Error("expected animal override rect to be loaded")
	}
}

func TestHitboxConfigResolve(t *testing.T) {
	tests := []struct {
		name string
		cfg  HitboxConfig
		w, h int
		want [4]int
	}{
		{"absolute", HitboxConfig{X: 1, Y: 2, W: 3, H: 4}, 100, 100, [4]int{1, 2, 3, 4}},
		{"bottom center", HitboxConfig{X: -15, Y: -10, W: 25, H: 1, AnchorCenterX: true, AnchorBottom: true}, 100, 100, [4]int{35, 90, 25, 1}},
		{"full width", HitboxConfig{Y: -30, H: 30, AnchorBottom: true, FullWidth: true}, 16, 45, [4]int{0, 15, 16, 30}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.cfg.Resolve(tt.w, tt.h)
			got := [4]int{r.X, r.Y, r.W, r.H}
			if got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}
