// Package core 定义了时间轴框架的核心类型和接口
// 这些接口保证了布局引擎与具体渲染器的完全解耦
package core

import (
	"time"
)

// Granularity 表示日历粒度级别
// 数值从细到粗排列，可以直接用 Finer/Coarser 比较
type Granularity int

const (
	Second Granularity = iota // 秒
	Minute                    // 分
	Hour                      // 时
	Day                       // 日
	Month                     // 月
	Year                      // 年
)

// 各粒度的自然单位长度（毫秒）
// 月和年取近似值，仅用于跨度阈值判断，不用于日历运算
const (
	MillisPerSecond int64 = 1000
	MillisPerMinute int64 = 60 * MillisPerSecond
	MillisPerHour   int64 = 60 * MillisPerMinute
	MillisPerDay    int64 = 24 * MillisPerHour
	MillisPerMonth  int64 = 30 * MillisPerDay
	MillisPerYear   int64 = 365 * MillisPerDay
)

// Finer 判断g是否比other更细
func (g Granularity) Finer(other Granularity) bool {
	return g < other
}

// Coarser 判断g是否比other更粗
func (g Granularity) Coarser(other Granularity) bool {
	return g > other
}

// String 返回粒度的英文名称
func (g Granularity) String() string {
	switch g {
	case Second:
		return "second"
	case Minute:
		return "minute"
	case Hour:
		return "hour"
	case Day:
		return "day"
	case Month:
		return "month"
	case Year:
		return "year"
	}
	return "unknown"
}

// LabeledInstant 表示一个带标签的对齐时刻
// Time 总是对齐值：低于所属粒度的日历字段都处于最小值
// Valid 为 false 表示无效时刻哨兵，布局循环遇到后静默终止
type LabeledInstant struct {
	Text  string    // 该时刻在特定粒度下的显示文本
	Time  time.Time // 对齐后的时刻
	Valid bool      // 无效时刻哨兵标志
}

// LevelPair 表示当前跨度选出的两个显示粒度
// 不变式：Outer 不比 Inner 更细；Outer == Inner 时只绘制一层
type LevelPair struct {
	Outer Granularity // 外层（粗）粒度
	Inner Granularity // 内层（细）粒度
}

// Orientation 表示坐标轴的方向
type Orientation int

const (
	Horizontal Orientation = iota // 水平轴：刻度和标签在轴线下方
	Vertical                      // 垂直轴：刻度和标签在轴线左侧，文本旋转90度
)

// Align 表示文本相对锚点的对齐方式
type Align int

const (
	AlignLeft   Align = iota // 左对齐
	AlignCenter              // 居中
	AlignRight               // 右对齐
)

// Geometry 表示一次绘制调用的轴几何信息
// 由宿主视图提供，布局引擎只读，不做任何修改
type Geometry struct {
	LowerBound       float64           // 下界时刻（秒）
	UpperBound       float64           // 上界时刻（秒）
	PixelMin         int               // 轴的起始像素（字符格）
	PixelMax         int               // 轴的结束像素（字符格）
	Orientation      Orientation       // 轴方向
	Baseline         int               // 轴线所在的交叉轴坐标
	DataToCoordinate func(float64) int // 数据值（秒）到像素的映射函数
}

// Ready 判断几何信息是否就绪
// 上下界未设置或相等时视为"未就绪"，绘制调用应当为空操作
func (g *Geometry) Ready() bool {
	if g == nil || g.DataToCoordinate == nil {
		return false
	}
	return g.UpperBound > g.LowerBound
}

// LowerTime 返回下界对应的时刻
func (g *Geometry) LowerTime() time.Time {
	return SecondsToTime(g.LowerBound)
}

// UpperTime 返回上界对应的时刻
func (g *Geometry) UpperTime() time.Time {
	return SecondsToTime(g.UpperBound)
}

// SecondsToTime 将秒值转换为时刻（毫秒精度）
func SecondsToTime(seconds float64) time.Time {
	return time.UnixMilli(int64(seconds * 1000))
}

// TimeToSeconds 将时刻转换为秒值
func TimeToSeconds(t time.Time) float64 {
	return float64(t.UnixMilli()) / 1000
}

// Renderer 定义了渲染表面的标准接口
// 任何绘制目标（如字符画布、SVG输出等）都应该实现这个接口
type Renderer interface {
	// TextExtent 返回文本沿轴方向占用的像素宽度
	TextExtent(text string) int

	// DrawLine 绘制一条水平或垂直线段
	DrawLine(x1, y1, x2, y2 int)

	// DrawText 在锚点处绘制文本
	// rotated 为 true 时文本旋转90度（用于垂直轴）
	DrawText(text string, x, y int, align Align, rotated bool)

	// Clear 清除所有已累积的绘制元素
	Clear()
}

// Localizer 定义了本地化提供者的标准接口
type Localizer interface {
	// MonthName 返回月份索引（0-11）对应的显示名称
	MonthName(index int) string
}

// EnglishLocalizer 默认的英文本地化实现
type EnglishLocalizer struct{}

// MonthName 返回英文月份缩写
func (EnglishLocalizer) MonthName(index int) string {
	if index < 0 || index > 11 {
		return "???"
	}
	return time.Month(index + 1).String()[:3]
}
