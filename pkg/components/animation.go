package components

import (
	"errors"
	"fmt"
	"time"

	"github.com/decker502/drcat/pkg/utils"
)

// DefaultFrameDuration 默认帧间隔
const DefaultFrameDuration = 100 * time.Millisecond

var (
	// ErrEmptyFrames 帧序列为空
	ErrEmptyFrames = errors.New("animation has no frames")
	// ErrInvalidGrid 精灵表网格行列数必须为正
	ErrInvalidGrid = errors.New("animation grid must have positive rows and cols")
)

// FrameCoord 帧坐标
//
// 默认按 (Col, Row) 在精灵表网格中取一格；
// Override 非空时直接使用该源矩形（用于不规则排布的精灵表）。
type FrameCoord struct {
	Col, Row int
	Override *utils.Rect
}

// AnimationComponent 基于精灵表的帧动画状态机
//
// 状态:
//   - 保持: Ongoing=false，停留在当前帧
//   - 循环: Ongoing=true, Looped=true，播放到末帧后回到第 0 帧
//   - 单次: Ongoing=true, Looped=false，播放到末帧后停住并报告完成
//
// 时间以"游戏开始后的时长"表示，由调用方每 tick 传入，
// 状态机本身不读取系统时钟。
type AnimationComponent struct {
	// Sheet 精灵表（构造后不可变，多个动画可共享）
	Sheet *Sheet
	// Rows, Cols 网格行列数，用于计算单帧尺寸
	Rows, Cols int

	// Frames 帧坐标序列（至少一帧）
	Frames []FrameCoord
	// Current 当前帧索引，始终位于 [0, len(Frames)-1]
	Current int

	// Duration 帧间隔
	Duration time.Duration
	// LastAdvance 上次推进帧的时间
	LastAdvance time.Duration

	// Ongoing 计时器是否在推进
	Ongoing bool
	// Interruptable 播放期间能否被其他动画抢占
	Interruptable bool
	// Looped 末帧后回到第 0 帧，否则停止并报告完成
	Looped bool
	// Movable 播放期间所属实体是否允许移动
	Movable bool
}

// NewAnimation 创建动画
//
// 默认: 100ms 帧间隔、循环、可打断、可移动、立即播放。
//
// 返回:
//   - ErrInvalidGrid: rows 或 cols <= 0
//   - ErrEmptyFrames: 帧序列为空
func NewAnimation(sheet *Sheet, rows, cols int, frames []FrameCoord) (*AnimationComponent, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidGrid, rows, cols)
	}
	if len(frames) == 0 {
		return nil, ErrEmptyFrames
	}

	return &AnimationComponent{
		Sheet:         sheet,
		Rows:          rows,
		Cols:          cols,
		Frames:        append([]FrameCoord(nil), frames...),
		Duration:      DefaultFrameDuration,
		Ongoing:       true,
		Interruptable: true,
		Looped:        true,
		Movable:       true,
	}, nil
}

// GridFrames 生成按行优先顺序排列的网格帧序列
//
// 参数:
//   - rows, cols: 网格尺寸
//   - count: 取前 count 帧，<= 0 表示全部
//   - reverse: 是否倒序
func GridFrames(rows, cols, count int, reverse bool) []FrameCoord {
	total := rows * cols
	if count <= 0 || count > total {
		count = total
	}

	frames := make([]FrameCoord, 0, count)
	for i := 0; i < count; i++ {
		frames = append(frames, FrameCoord{Col: i % cols, Row: i / cols})
	}

	if reverse {
		for i, j := 0, len(frames)-1; i < j; i, j = i+1, j-1 {
			frames[i], frames[j] = frames[j], frames[i]
		}
	}
	return frames
}

// Total 末帧索引
func (a *AnimationComponent) Total() int {
	return len(a.Frames) - 1
}

// Finished 单次动画是否已停止（保持状态也视为停止）
func (a *AnimationComponent) Finished() bool {
	return !a.Ongoing
}

// UnitSize 单帧尺寸（整张精灵表按网格均分）
func (a *AnimationComponent) UnitSize() (int, int) {
	if a.Sheet == nil {
		return 0, 0
	}
	return a.Sheet.Width / a.Cols, a.Sheet.Height / a.Rows
}

// Src 当前帧在精灵表上的源矩形
func (a *AnimationComponent) Src() utils.Rect {
	frame := a.Frames[a.Current]
	if frame.Override != nil {
		return *frame.Override
	}
	w, h := a.UnitSize()
	return utils.NewRect(frame.Col*w, frame.Row*h, w, h)
}

// Next 推进一帧
//
// 返回 true 表示动画已结束（刚刚结束或早已结束），
// 所属实体据此切回之前的动画槽位。
func (a *AnimationComponent) Next(now time.Duration) bool {
	if now-a.LastAdvance < a.Duration {
		return false
	}
	if !a.Ongoing {
		return true
	}

	if a.Current == a.Total() {
		if !a.Looped {
			a.Ongoing = false
			return true
		}
		a.Current = 0
	} else {
		a.Current++
	}

	a.LastAdvance = now
	return false
}

// Restart 回到第 0 帧并开始播放
func (a *AnimationComponent) Restart(now time.Duration) {
	a.Current = 0
	a.Ongoing = true
	a.LastAdvance = now
}

// Clone 复制动画状态，精灵表按指针共享
func (a *AnimationComponent) Clone() *AnimationComponent {
	c := *a
	c.Frames = append([]FrameCoord(nil), a.Frames...)
	return &c
}
