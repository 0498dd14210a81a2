// Package tui 提供交互式时间轴查看器
// 支持平移、缩放和轴方向切换，用于预览刻度布局效果
package tui

import (
	"fmt"
	"time"

	"github.com/rivo/tview"

	"github.com/Kevin-Rudy/goaxis/pkg/axis"
	"github.com/Kevin-Rudy/goaxis/pkg/canvas"
	"github.com/Kevin-Rudy/goaxis/pkg/core"
)

// Viewer 查看器主结构
type Viewer struct {
	app  *tview.Application
	view *tview.TextView
	info *tview.TextView
	flex *tview.Flex

	// 布局引擎与画布
	engine  *axis.Engine
	surface *canvas.Canvas

	// 配置信息
	viewerConfig *Config

	// 当前时间窗口与轴方向
	lower       time.Time
	upper       time.Time
	orientation core.Orientation

	// 控制
	stopChan chan struct{}

	// 测试模式标志
	testMode bool
}

// NewViewer 创建新的查看器实例
func NewViewer(lower, upper time.Time, viewerConfig *Config, axisConfig *axis.Config, localizer core.Localizer) *Viewer {
	v := newViewer(lower, upper, viewerConfig, axisConfig, localizer)
	v.app = tview.NewApplication()
	v.view = tview.NewTextView()
	v.info = tview.NewTextView()

	v.setupUI()
	v.setupKeyBindings()

	return v
}

// NewHeadlessViewer 创建不启动终端界面的查看器
// 仅用于通过RenderFrame做一次性渲染输出
func NewHeadlessViewer(lower, upper time.Time, viewerConfig *Config, axisConfig *axis.Config, localizer core.Localizer) *Viewer {
	v := newViewer(lower, upper, viewerConfig, axisConfig, localizer)
	v.testMode = true
	return v
}

// NewViewerForTest 创建用于测试的查看器实例（不初始化图形组件）
func NewViewerForTest(lower, upper time.Time, viewerConfig *Config, axisConfig *axis.Config, localizer core.Localizer) *Viewer {
	return NewHeadlessViewer(lower, upper, viewerConfig, axisConfig, localizer)
}

// newViewer 公共初始化逻辑
func newViewer(lower, upper time.Time, viewerConfig *Config, axisConfig *axis.Config, localizer core.Localizer) *Viewer {
	if viewerConfig == nil {
		viewerConfig = DefaultConfig()
	}
	surface := canvas.New(0, 0)
	return &Viewer{
		engine:       axis.New(surface, localizer, axisConfig),
		surface:      surface,
		viewerConfig: viewerConfig,
		lower:        lower,
		upper:        upper,
		orientation:  core.Horizontal,
		stopChan:     make(chan struct{}),
	}
}

// setupUI 设置用户界面布局
func (v *Viewer) setupUI() {
	v.view.SetWordWrap(false)
	v.view.SetDynamicColors(false)
	v.view.SetText("正在初始化...")

	v.info.SetDynamicColors(true)
	v.info.SetTextAlign(tview.AlignCenter)
	v.info.SetText(v.windowTitle())

	v.flex = tview.NewFlex()
	v.flex.SetDirection(tview.FlexRow)
	v.flex.AddItem(v.info, 1, 0, false)
	v.flex.AddItem(v.view, 0, 1, false)

	v.app.SetRoot(v.flex, true)
}

// Run 启动查看器界面
func (v *Viewer) Run() error {
	// 首帧在界面建立后绘制
	v.app.SetFocus(v.view)
	go func() {
		v.app.QueueUpdateDraw(func() {
			v.redraw()
		})
	}()

	return v.app.Run()
}

// Stop 停止查看器界面
func (v *Viewer) Stop() {
	select {
	case <-v.stopChan:
		// stopChan已经关闭，避免重复关闭
	default:
		close(v.stopChan)
	}

	if v.app != nil {
		v.app.Stop()
	}
}

// Window 返回当前时间窗口
func (v *Viewer) Window() (time.Time, time.Time) {
	return v.lower, v.upper
}

// Orientation 返回当前轴方向
func (v *Viewer) Orientation() core.Orientation {
	return v.orientation
}

// SetOrientation 设置轴方向
func (v *Viewer) SetOrientation(orientation core.Orientation) {
	v.orientation = orientation
	v.redraw()
}

// redraw 按视图当前尺寸重绘轴
func (v *Viewer) redraw() {
	if v.testMode || v.view == nil {
		return
	}

	_, _, width, height := v.view.GetInnerRect()
	v.view.SetText(v.RenderFrame(width, height))
	v.info.SetText(v.windowTitle())
}

// RenderFrame 渲染一帧指定尺寸的轴图像
// 引擎上报标签行高变化时，预留空间后立即重新布局一次
func (v *Viewer) RenderFrame(width, height int) string {
	if width < v.viewerConfig.MinChartWidth || height < v.viewerConfig.MinChartHeight {
		return "终端尺寸过小"
	}

	v.surface.Resize(width, height)
	geom := v.geometryFor(width, height)
	v.drawAxisLine(geom)

	if v.engine.DrawTicks(geom) {
		// 行高变化：按新行高重新计算基线并重绘
		v.surface.Clear()
		geom = v.geometryFor(width, height)
		v.drawAxisLine(geom)
		v.engine.DrawTicks(geom)
	}

	return v.surface.String()
}

// geometryFor 根据视图尺寸和当前窗口构造轴几何信息
// 水平轴：轴线在标签区上方；垂直轴：轴线在标签列右侧
func (v *Viewer) geometryFor(width, height int) *core.Geometry {
	rowHeight := v.engine.LastRowHeight()

	geom := &core.Geometry{
		LowerBound:  core.TimeToSeconds(v.lower),
		UpperBound:  core.TimeToSeconds(v.upper),
		Orientation: v.orientation,
	}

	if v.orientation == core.Horizontal {
		geom.PixelMin = 0
		geom.PixelMax = width - 1
		geom.Baseline = height - 1 - rowHeight
		if geom.Baseline < 0 {
			geom.Baseline = 0
		}
	} else {
		geom.PixelMin = 0
		geom.PixelMax = height - 1
		geom.Baseline = rowHeight
		if geom.Baseline > width-1 {
			geom.Baseline = width - 1
		}
	}

	lowerSec := geom.LowerBound
	upperSec := geom.UpperBound
	pixelMin := geom.PixelMin
	pixelSpan := geom.PixelMax - geom.PixelMin
	geom.DataToCoordinate = func(value float64) int {
		ratio := (value - lowerSec) / (upperSec - lowerSec)
		return pixelMin + int(ratio*float64(pixelSpan))
	}

	return geom
}

// drawAxisLine 绘制轴线本体
func (v *Viewer) drawAxisLine(geom *core.Geometry) {
	if v.orientation == core.Horizontal {
		v.surface.DrawLine(geom.PixelMin, geom.Baseline, geom.PixelMax, geom.Baseline)
	} else {
		v.surface.DrawLine(geom.Baseline, geom.PixelMin, geom.Baseline, geom.PixelMax)
	}
}

// windowTitle 生成标题栏文本
func (v *Viewer) windowTitle() string {
	orientName := "水平"
	if v.orientation == core.Vertical {
		orientName = "垂直"
	}
	return fmt.Sprintf("[yellow]%s ~ %s[white]  方向: %s  (←/→平移 +/-缩放 o切换方向 q退出)",
		v.lower.Format("2006-01-02 15:04:05"),
		v.upper.Format("2006-01-02 15:04:05"),
		orientName)
}
