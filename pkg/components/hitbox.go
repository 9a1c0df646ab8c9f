package components

import "github.com/decker502/drcat/pkg/utils"

// CompositeHitbox 由多个矩形组成的静态碰撞形状（如地图）
//
// Real[i] 为 Ideal[i] 在加入时按底图 Dst 原点平移后的结果，之后不再重算，
// 因此底图必须是静止的。底图自身的命中盒是 Real 的第一个元素，没有对应的 Ideal。
type CompositeHitbox struct {
	Base  *SpriteComponent
	Ideal []utils.Rect
	Real  []utils.Rect
}

// NewCompositeHitbox 以 base 的命中盒为第一个区域创建复合命中盒
func NewCompositeHitbox(base *SpriteComponent) *CompositeHitbox {
	return &CompositeHitbox{
		Base: base,
		Real: []utils.Rect{base.Hitbox},
	}
}

// AddHitbox 追加一个相对底图左上角的矩形
func (c *CompositeHitbox) AddHitbox(ideal utils.Rect) {
	c.Ideal = append(c.Ideal, ideal)
	c.Real = append(c.Real, ideal.Translate(c.Base.Dst.X, c.Base.Dst.Y))
}

// AddHitboxes 批量追加
func (c *CompositeHitbox) AddHitboxes(ideals []utils.Rect) {
	for _, r := range ideals {
		c.AddHitbox(r)
	}
}

// CollideAll candidate 是否被任一区域阻挡
//
// 每个区域先叠加世界滚动 (wx, wy)。交集恰好等于 candidate 本身时不算阻挡，
// 按加入顺序检查，遇到第一个阻挡即返回。
func (c *CompositeHitbox) CollideAll(candidate utils.Rect, wx, wy int) bool {
	for _, r := range c.Real {
		inter, ok := r.Translate(wx, wy).Intersection(candidate)
		if ok && inter != candidate {
			return true
		}
	}
	return false
}
