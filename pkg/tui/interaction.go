// Package tui 交互控制模块
package tui

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Kevin-Rudy/goaxis/pkg/core"
)

// setupKeyBindings 设置键盘绑定
func (v *Viewer) setupKeyBindings() {
	v.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyCtrlC:
			v.Stop()
			return nil
		case tcell.KeyLeft:
			v.panLeft()
			return nil
		case tcell.KeyRight:
			v.panRight()
			return nil
		case tcell.KeyRune:
			switch event.Rune() {
			case 'q', 'Q':
				v.Stop()
				return nil
			case '+', '=':
				v.zoomIn()
				return nil
			case '-', '_':
				v.zoomOut()
				return nil
			case 'o', 'O':
				v.toggleOrientation()
				return nil
			}
		}
		return event
	})
}

// zoomIn 缩小时间窗口（放大显示）
func (v *Viewer) zoomIn() {
	v.scaleWindow(1 / v.viewerConfig.ZoomFactor)
}

// zoomOut 放大时间窗口（缩小显示）
func (v *Viewer) zoomOut() {
	v.scaleWindow(v.viewerConfig.ZoomFactor)
}

// scaleWindow 以窗口中心为不动点缩放跨度，并夹在配置的上下限内
func (v *Viewer) scaleWindow(factor float64) {
	span := v.upper.Sub(v.lower)
	newSpan := time.Duration(float64(span) * factor)

	if newSpan < v.viewerConfig.MinSpan {
		newSpan = v.viewerConfig.MinSpan
	}
	if newSpan > v.viewerConfig.MaxSpan {
		newSpan = v.viewerConfig.MaxSpan
	}

	center := v.lower.Add(span / 2)
	v.lower = center.Add(-newSpan / 2)
	v.upper = center.Add(newSpan / 2)

	v.redraw()
}

// panLeft 向过去平移
func (v *Viewer) panLeft() {
	v.shiftWindow(-v.viewerConfig.PanRatio)
}

// panRight 向未来平移
func (v *Viewer) panRight() {
	v.shiftWindow(v.viewerConfig.PanRatio)
}

// shiftWindow 按跨度比例平移窗口
func (v *Viewer) shiftWindow(ratio float64) {
	span := v.upper.Sub(v.lower)
	delta := time.Duration(float64(span) * ratio)

	v.lower = v.lower.Add(delta)
	v.upper = v.upper.Add(delta)

	v.redraw()
}

// toggleOrientation 切换轴方向
func (v *Viewer) toggleOrientation() {
	if v.orientation == core.Horizontal {
		v.orientation = core.Vertical
	} else {
		v.orientation = core.Horizontal
	}

	v.redraw()
}
