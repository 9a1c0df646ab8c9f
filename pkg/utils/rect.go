// Package utils 提供游戏开发中常用的工具函数
//
// rect.go 提供整数像素坐标下的轴对齐矩形（AABB），所有碰撞、命中盒与
// 绘制目标区域都使用它表示。
//
// # 坐标约定
//
//   - (X, Y) 为矩形左上角，W/H 为宽高（像素）
//   - 右边界与下边界为开区间：X+W、Y+H 不属于矩形
//   - 宽或高 <= 0 的矩形视为空矩形，与任何矩形都不相交
package utils

import "image"

// Rect 轴对齐矩形
type Rect struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// NewRect 创建矩形
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right 返回右边界（开区间）
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom 返回下边界（开区间）
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty 判断矩形是否为空
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Translate 返回平移后的矩形
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Intersection 计算两个矩形的交集
//
// 返回:
//   - Rect: 交集矩形（仅在 ok 为 true 时有效）
//   - bool: 是否存在非空交集
func (r Rect) Intersection(other Rect) (Rect, bool) {
	if r.Empty() || other.Empty() {
		return Rect{}, false
	}

	x0 := max(r.X, other.X)
	y0 := max(r.Y, other.Y)
	x1 := min(r.Right(), other.Right())
	y1 := min(r.Bottom(), other.Bottom())

	if x1 <= x0 || y1 <= y0 {
		return Rect{}, false
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}, true
}

// HasIntersection 判断两个矩形是否重叠
func (r Rect) HasIntersection(other Rect) bool {
	_, ok := r.Intersection(other)
	return ok
}

// ContainsPoint 判断点是否位于矩形内
func (r Rect) ContainsPoint(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center 返回矩形中心点（整数除法，向下取整）
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Image 转换为 image.Rectangle，用于 ebiten.Image.SubImage
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.Right(), r.Bottom())
}
