package systems

import (
	"log"
	"time"

	"github.com/decker502/drcat/pkg/utils"
	"github.com/decker502/drcat/pkg/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEvent 玩家在交互区域内按下交互键
type InteractionEvent struct {
	// Zone 区域索引（World.Zones 中的位置）
	Zone int
	// Name 区域动作名
	Name string
	// Callback 区域回调，由订阅者执行
	Callback func() bool
	At       time.Duration
}

// InteractionTriggered 交互事件类型
var InteractionTriggered = events.NewEventType[InteractionEvent]()

// InteractionSystem 检测交互并通过 donburi 事件分发
//
// 检测在 Update 中进行，事件在同一次 Update 末尾统一处理，
// 订阅者（执行回调、播放音效、记录日志）互不依赖。
type InteractionSystem struct {
	world *world.World
	char  world.Character
	key   ebiten.Key
	bus   donburi.World
}

// NewInteractionSystem 创建交互系统，并订阅默认的回调执行者
func NewInteractionSystem(w *world.World, char world.Character, key ebiten.Key) *InteractionSystem {
	s := &InteractionSystem{
		world: w,
		char:  char,
		key:   key,
		bus:   donburi.NewWorld(),
	}
	InteractionTriggered.Subscribe(s.bus, runInteraction)
	return s
}

// Subscribe 追加一个交互事件订阅者
func (s *InteractionSystem) Subscribe(fn func(InteractionEvent)) {
	InteractionTriggered.Subscribe(s.bus, func(_ donburi.World, ev InteractionEvent) {
		fn(ev)
	})
}

// Update 交互键刚按下且玩家位于某个区域内时发布事件
//
// 返回是否发布了事件。
func (s *InteractionSystem) Update(now time.Duration, input utils.InputState) bool {
	cb, i, ok := s.world.CheckInteract(s.char, input.IsJustPressed(s.key))
	if ok {
		InteractionTriggered.Publish(s.bus, InteractionEvent{
			Zone:     i,
			Name:     s.world.Zones()[i].Name,
			Callback: cb,
			At:       now,
		})
	}
	InteractionTriggered.ProcessEvents(s.bus)
	return ok
}

func runInteraction(_ donburi.World, ev InteractionEvent) {
	result := ev.Callback()
	log.Printf("[InteractionSystem] Zone %d (%s) returned %v", ev.Zone, ev.Name, result)
}
