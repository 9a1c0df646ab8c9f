package systems

import (
	"log"
	"time"

	"github.com/decker502/drcat/pkg/components"
	"github.com/decker502/drcat/pkg/config"
	"github.com/decker502/drcat/pkg/ecs"
	"github.com/decker502/drcat/pkg/utils"
	"github.com/decker502/drcat/pkg/world"
)

// PlayerSystem 把输入转换为玩家动作
//
// 每 tick 依次处理：死亡键、攻击键、速度与冲刺、按轴移动、站立回退、深度排序。
// 玩家在屏幕上不动，移动通过 World.MoveCharacter 反向滚动世界。
type PlayerSystem struct {
	entityManager *ecs.EntityManager
	world         *world.World
	char          world.Character
	keys          config.Keys

	cues  CuePlayer // 可为 nil
	sound SoundCues
}

// PlayerResult 本 tick 的动作结果
type PlayerResult struct {
	Moved  bool
	Dashed bool
}

// NewPlayerSystem 创建玩家系统
func NewPlayerSystem(em *ecs.EntityManager, w *world.World, char world.Character, keys config.Keys, cues CuePlayer, sound SoundCues) *PlayerSystem {
	return &PlayerSystem{
		entityManager: em,
		world:         w,
		char:          char,
		keys:          keys,
		cues:          cues,
		sound:         sound,
	}
}

// Character 玩家角色
func (s *PlayerSystem) Character() world.Character {
	return s.char
}

// Update 处理一帧输入
func (s *PlayerSystem) Update(now time.Duration, input utils.InputState) PlayerResult {
	sprite := s.char.Sprite

	if input.IsPressed(s.keys.Death) {
		PlayHUD(s.entityManager, components.HUDHeart, now)
		s.playSlot(components.SlotDeath, now)
	}

	if input.IsPressed(s.keys.AttackRight) {
		s.attack(components.SlotAttackRight, input.IsJustPressed(s.keys.AttackRight), now)
	} else if input.IsPressed(s.keys.AttackLeft) {
		s.attack(components.SlotAttackLeft, input.IsJustPressed(s.keys.AttackLeft), now)
	}

	var result PlayerResult
	if sprite.Animation().Movable {
		result.Dashed = s.resolveSpeed(now, input)
		result.Moved = s.move(input)
	}

	if !result.Moved {
		_ = sprite.SwitchTo(components.SlotStanding)
		if s.cues != nil {
			s.cues.FadeOut(s.sound.Running, s.sound.RunningFadeOut)
		}
	} else if s.cues != nil {
		s.cues.StartLoop(s.sound.Running)
	}

	s.world.ReorderChar(s.char)
	return result
}

func (s *PlayerSystem) playSlot(slot int, now time.Duration) {
	if err := s.char.Sprite.PlaySlot(slot, now); err != nil {
		log.Printf("[PlayerSystem] Failed to play slot %d: %v", slot, err)
	}
}

func (s *PlayerSystem) attack(slot int, fresh bool, now time.Duration) {
	s.playSlot(slot, now)
	if fresh && s.cues != nil {
		s.cues.PlaySound(s.sound.Slash)
	}
}

// resolveSpeed 计算速度；冲刺时播放冲刺动画和冷却指示
func (s *PlayerSystem) resolveSpeed(now time.Duration, input utils.InputState) bool {
	state := s.char.State
	dashed := state.ResolveSpeed(input.IsPressed(s.keys.Sprint), input.IsJustPressed(s.keys.Dash), now)
	if !dashed {
		return false
	}

	s.playSlot(state.Dir.DashSlot(), now)
	PlayHUD(s.entityManager, components.HUDDashCooldown, now)
	log.Printf("[PlayerSystem] Dash %s at %v", state.Dir, now)
	return true
}

// move 左右互斥、上下互斥，每个轴单独检测碰撞
func (s *PlayerSystem) move(input utils.InputState) bool {
	moved := false

	horizontal := components.Direction(0)
	if input.IsPressed(s.keys.Right) {
		horizontal = components.Right
	} else if input.IsPressed(s.keys.Left) {
		horizontal = components.Left
	}
	if horizontal != 0 && s.world.CanMove(s.char, horizontal) {
		s.world.MoveCharacter(s.char, horizontal)
		moved = true
	}

	vertical := components.Direction(0)
	if input.IsPressed(s.keys.Up) {
		vertical = components.Up
	} else if input.IsPressed(s.keys.Down) {
		vertical = components.Down
	}
	if vertical != 0 && s.world.CanMove(s.char, vertical) {
		s.world.MoveCharacter(s.char, vertical)
		moved = true
	}

	return moved
}
