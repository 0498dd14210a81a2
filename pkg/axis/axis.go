// Package axis 实现双层日历刻度布局引擎
// 消费粒度解析结果和日历步进函数，通过注入的渲染器发出绘制调用
package axis

import (
	"time"

	"github.com/Kevin-Rudy/goaxis/pkg/calendar"
	"github.com/Kevin-Rudy/goaxis/pkg/core"
)

// Engine 刻度布局引擎
// 除 lastRowHeight 外不跨绘制缓存任何状态，每次调用都从当前几何信息重算
// 不支持对同一渲染表面的并发调用，宿主每个重绘周期至多调用一次
type Engine struct {
	renderer  core.Renderer
	localizer core.Localizer
	config    *Config

	// 上次上报的标签行高，用于行高重新协商
	lastRowHeight int
}

// New 创建布局引擎实例
// localizer 为 nil 时使用默认英文本地化，config 为 nil 时使用默认配置
func New(renderer core.Renderer, localizer core.Localizer, config *Config) *Engine {
	if localizer == nil {
		localizer = core.EnglishLocalizer{}
	}
	if config == nil {
		config = DefaultConfig()
	}
	return &Engine{
		renderer:  renderer,
		localizer: localizer,
		config:    config,
	}
}

// DrawTicks 编排一次完整的刻度绘制：粒度解析+双层布局
// 若计算出的标签行高与上次上报值不同，则不绘制而返回true，
// 提示宿主预留空间后重绘；几何信息未就绪时为空操作
func (e *Engine) DrawTicks(geom *core.Geometry) bool {
	if !geom.Ready() {
		return false
	}

	levels := calendar.DetermineLevels(geom.LowerTime(), geom.UpperTime())

	height := e.RowHeight(levels)
	if height != e.lastRowHeight {
		e.lastRowHeight = height
		return true
	}

	// 外层与内层相同时只绘制一层
	if levels.Outer != levels.Inner {
		e.DrawOuterLabels(levels.Outer, geom)
	}
	e.DrawInnerLabels(levels.Inner, geom)

	return false
}

// RowHeight 计算指定粒度组合需要的标签区行高（格）
func (e *Engine) RowHeight(levels core.LevelPair) int {
	height := e.config.TickLength + e.config.LabelGap + 1
	if levels.Outer != levels.Inner {
		height++
	}
	return height
}

// LastRowHeight 返回上次上报的标签行高
func (e *Engine) LastRowHeight() int {
	return e.lastRowHeight
}

// pixelFor 把时刻映射为轴上的像素坐标
func pixelFor(geom *core.Geometry, t time.Time) int {
	return geom.DataToCoordinate(core.TimeToSeconds(t))
}

// innerLabelPos 内层标签行（水平轴）或列（垂直轴）的交叉轴坐标
func (e *Engine) innerLabelPos(geom *core.Geometry) int {
	offset := e.config.TickLength + e.config.LabelGap
	if geom.Orientation == core.Horizontal {
		return geom.Baseline + offset
	}
	return geom.Baseline - offset
}

// outerLabelPos 外层标签行/列的交叉轴坐标，在内层标签外侧一格
func (e *Engine) outerLabelPos(geom *core.Geometry) int {
	if geom.Orientation == core.Horizontal {
		return e.innerLabelPos(geom) + 1
	}
	return e.innerLabelPos(geom) - 1
}

// drawTickMark 在指定像素处绘制一条刻度线
func (e *Engine) drawTickMark(geom *core.Geometry, pixel int) {
	if e.config.TickLength <= 0 {
		return
	}
	if geom.Orientation == core.Horizontal {
		e.renderer.DrawLine(pixel, geom.Baseline+1, pixel, geom.Baseline+e.config.TickLength)
	} else {
		e.renderer.DrawLine(geom.Baseline-e.config.TickLength, pixel, geom.Baseline-1, pixel)
	}
}

// placeText 在轴向像素pixel、交叉轴坐标cross处放置文本
// 水平轴：文本不旋转；垂直轴：文本旋转90度并以锚点右对齐
func (e *Engine) placeText(geom *core.Geometry, text string, pixel, cross int, align core.Align) {
	if geom.Orientation == core.Horizontal {
		e.renderer.DrawText(text, pixel, cross, align, false)
	} else {
		e.renderer.DrawText(text, cross, pixel, core.AlignRight, true)
	}
}
