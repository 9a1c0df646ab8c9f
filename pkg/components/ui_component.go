package components

// UIState represents the current state of a UI element (e.g., button).
type UIState int

const (
	// UINormal indicates the UI element is in its default state.
	UINormal UIState = iota
	// UIHovered indicates the mouse cursor is hovering over the UI element.
	UIHovered
	// UIClicked indicates the UI element is being clicked.
	UIClicked
	// UIDisabled indicates the UI element is disabled and cannot be interacted with.
	UIDisabled
)

// HUDComponent 标记屏幕叠加层精灵（不随世界滚动）
type HUDComponent struct {
	// Kind 叠加层种类，决定何时被触发播放
	Kind HUDKind
}

// HUDKind 叠加层种类
type HUDKind int

const (
	// HUDHeart 生命值，受到致命伤害时播放
	HUDHeart HUDKind = iota
	// HUDDashCooldown 冲刺冷却，冲刺时播放
	HUDDashCooldown
)
