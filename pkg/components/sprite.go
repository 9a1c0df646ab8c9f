package components

import (
	"errors"
	"fmt"
	"time"

	"github.com/decker502/drcat/pkg/config"
	"github.com/decker502/drcat/pkg/utils"
)

// ErrSlotOutOfRange 动画槽位越界
var ErrSlotOutOfRange = errors.New("animation slot out of range")

// SpriteComponent 带动画、位置与命中盒的精灵（实体的可视表现）
//
// 坐标约定:
//   - X, Y 为世界坐标，(0, 0) 对应视口中心
//   - Dst = 视口中心 - 半尺寸 + (X, Y)，是实际绘制的屏幕矩形（未叠加世界滚动）
//   - Hitbox 与 Dst 处于同一坐标系，由 GenHitbox 一次性生成，之后只随位移平移
//
// 所有修改位置或尺寸的方法都会同步更新 Dst 与 Hitbox。
type SpriteComponent struct {
	X, Y int
	W, H int

	// Animations 按槽位索引的动画列表
	Animations []*AnimationComponent
	// Active 当前动画槽位
	Active int
	// Last 上一个动画槽位，单次动画结束后切回
	Last int

	Dst    utils.Rect
	Hitbox utils.Rect
	// Layer 绘制层（越大越靠上）
	Layer int

	// Viewport 计算 Dst 时使用的视口尺寸
	Viewport config.Viewport
}

// NewSprite 以一个动画为槽位 0 创建精灵
//
// 尺寸取该动画的单帧尺寸，命中盒初始等于 Dst。
func NewSprite(base *AnimationComponent, x, y int, vp config.Viewport) *SpriteComponent {
	w, h := base.UnitSize()
	s := &SpriteComponent{
		X:          x,
		Y:          y,
		W:          w,
		H:          h,
		Animations: []*AnimationComponent{base},
		Viewport:   vp,
	}
	s.UpdateDst()
	s.Hitbox = s.Dst
	return s
}

// AddAnimation 追加一个动画槽位，返回新槽位索引
func (s *SpriteComponent) AddAnimation(a *AnimationComponent) int {
	s.Animations = append(s.Animations, a)
	return len(s.Animations) - 1
}

// Animation 当前动画
func (s *SpriteComponent) Animation() *AnimationComponent {
	return s.Animations[s.Active]
}

// UpdateDst 根据位置与尺寸重新计算 Dst
func (s *SpriteComponent) UpdateDst() {
	ox, oy := s.Viewport.CenterOrigin(s.W, s.H)
	s.Dst = utils.NewRect(ox+s.X, oy+s.Y, s.W, s.H)
}

// OffsetX 水平位移，Dst 与 Hitbox 同步平移
func (s *SpriteComponent) OffsetX(v int) {
	s.X += v
	s.Hitbox.X += v
	s.UpdateDst()
}

// OffsetY 垂直位移，Dst 与 Hitbox 同步平移
func (s *SpriteComponent) OffsetY(v int) {
	s.Y += v
	s.Hitbox.Y += v
	s.UpdateDst()
}

// MultW 按比例缩放宽度，命中盒宽度同比缩放（命中盒原点不变）
func (s *SpriteComponent) MultW(f float64) {
	s.W = int(float64(s.W) * f)
	s.Hitbox.W = int(float64(s.Hitbox.W) * f)
	s.UpdateDst()
}

// MultH 按比例缩放高度
func (s *SpriteComponent) MultH(f float64) {
	s.H = int(float64(s.H) * f)
	s.Hitbox.H = int(float64(s.Hitbox.H) * f)
	s.UpdateDst()
}

// Center 把精灵放到视口正中（用于界面元素）
func (s *SpriteComponent) Center() {
	oldX, oldY := s.Dst.X, s.Dst.Y
	s.X, s.Y = 0, 0
	s.UpdateDst()
	s.Hitbox = s.Hitbox.Translate(s.Dst.X-oldX, s.Dst.Y-oldY)
}

// GenHitbox 以当前 Dst 原点为基准生成命中盒
//
// local 为相对精灵左上角的矩形。之后尺寸变化不会重新生成命中盒。
func (s *SpriteComponent) GenHitbox(local utils.Rect) {
	s.Hitbox = local.Translate(s.Dst.X, s.Dst.Y)
}

func (s *SpriteComponent) checkSlot(slot int) error {
	if slot < 0 || slot >= len(s.Animations) {
		return fmt.Errorf("%w: slot %d, have %d", ErrSlotOutOfRange, slot, len(s.Animations))
	}
	return nil
}

// SwitchTo 切换到指定槽位
//
// 当前动画不可打断时请求被静默丢弃；越界槽位返回错误且不改变状态。
func (s *SpriteComponent) SwitchTo(slot int) error {
	if err := s.checkSlot(slot); err != nil {
		return err
	}
	if s.Active != slot && s.Animation().Interruptable {
		s.Last = s.Active
		s.Active = slot
	}
	return nil
}

// Play 让当前动画开始播放；已停止的动画从第 0 帧重新开始
func (s *SpriteComponent) Play(now time.Duration) {
	if a := s.Animation(); !a.Ongoing {
		a.Restart(now)
	}
}

// PlaySlot 切换到指定槽位并播放（切换可能因不可打断而被忽略）
func (s *SpriteComponent) PlaySlot(slot int, now time.Duration) error {
	if err := s.SwitchTo(slot); err != nil {
		return err
	}
	s.Play(now)
	return nil
}

// ForceSwitch 无视打断规则切换槽位
func (s *SpriteComponent) ForceSwitch(slot int) error {
	if err := s.checkSlot(slot); err != nil {
		return err
	}
	s.Active = slot
	return nil
}

// Next 推进当前动画；动画结束时切回上一个槽位
func (s *SpriteComponent) Next(now time.Duration) {
	if s.Animation().Next(now) {
		s.Active = s.Last
	}
}

// Clone 复制精灵，动画状态独立，精灵表共享
func (s *SpriteComponent) Clone() *SpriteComponent {
	c := *s
	c.Animations = make([]*AnimationComponent, len(s.Animations))
	for i, a := range s.Animations {
		c.Animations[i] = a.Clone()
	}
	return &c
}

// Collide 两个精灵的命中盒是否重叠
func (s *SpriteComponent) Collide(other *SpriteComponent) bool {
	return s.Hitbox.HasIntersection(other.Hitbox)
}

// CheckMove 扫掠矩形 sweep 能否通过本精灵
//
// 本精灵的命中盒先叠加世界滚动 (wx, wy)，重叠时返回 false。
func (s *SpriteComponent) CheckMove(wx, wy int, sweep utils.Rect) bool {
	return !sweep.HasIntersection(s.Hitbox.Translate(wx, wy))
}

// WorldHitbox 叠加世界滚动后的命中盒
func (s *SpriteComponent) WorldHitbox(wx, wy int) utils.Rect {
	return s.Hitbox.Translate(wx, wy)
}

// Present 把当前帧绘制到 Dst 叠加 (wx, wy) 的位置
func (s *SpriteComponent) Present(sink RenderSink, wx, wy int) error {
	a := s.Animation()
	return sink.Blit(a.Sheet, a.Src(), s.Dst.Translate(wx, wy))
}
