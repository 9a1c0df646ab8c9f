package components

import (
	"github.com/decker502/drcat/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// Sheet 精灵表句柄
//
// 同一路径的 Sheet 由资源管理器加载一次并按指针共享，
// 克隆出的精灵与原精灵引用同一个 Sheet，不会重新加载图片。
type Sheet struct {
	// Path 资源路径（用于日志与调试）
	Path string
	// Image 已解码的图片；无图形环境的测试中可以为 nil
	Image *ebiten.Image
	// Width, Height 整张精灵表的像素尺寸
	Width, Height int
}

// NewSheet 从已加载的图片创建 Sheet
func NewSheet(path string, img *ebiten.Image) *Sheet {
	b := img.Bounds()
	return &Sheet{Path: path, Image: img, Width: b.Dx(), Height: b.Dy()}
}

// SheetProvider 按路径提供精灵表
type SheetProvider interface {
	LoadSheet(path string) (*Sheet, error)
}

// RenderSink 接收绘制请求：把 sheet 上的 src 区域绘制到屏幕的 dst 区域
type RenderSink interface {
	Blit(sheet *Sheet, src, dst utils.Rect) error
}
