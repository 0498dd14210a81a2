// Package axis 外层（粗粒度）标签布局
package axis

import (
	"time"

	"github.com/Kevin-Rudy/goaxis/pkg/calendar"
	"github.com/Kevin-Rudy/goaxis/pkg/core"
)

// PlacedLabel 表示一个已放置的外层标签
type PlacedLabel struct {
	Text     string    // 标签文本
	Pixel    int       // 放置位置的轴向像素
	Time     time.Time // 段起点的对齐时刻
	Centered bool      // 是否因整段覆盖可见范围而居中放置
}

// DrawOuterLabels 沿轴向前遍历粗粒度的"段"，每段至多绘制一个标签
// 段起点早于可见下界的截断段，仅当标签宽度不会与下一段标签
// 碰撞时才绘制；某个段覆盖整条可见轴时标签居中；
// 遇到无效时刻或越过上界时终止
func (e *Engine) DrawOuterLabels(level core.Granularity, geom *core.Geometry) []PlacedLabel {
	if !geom.Ready() {
		return nil
	}

	lower := geom.LowerTime()
	upper := geom.UpperTime()
	pos := e.outerLabelPos(geom)

	var placed []PlacedLabel

	// 从包含下界的段开始：向下对齐，段起点可能早于可见范围
	current := calendar.LabelAt(level, e.localizer, lower)

	for steps := 0; current.Valid && current.Time.Before(upper) && steps < e.config.MaxTicks; steps++ {
		next := calendar.NextAligned(level, e.localizer, current.Time)

		// 整段覆盖可见范围：单个标签在轴上居中
		if !current.Time.After(lower) && (!next.Valid || !next.Time.Before(upper)) {
			center := (geom.PixelMin + geom.PixelMax) / 2
			e.placeText(geom, current.Text, center, pos, core.AlignCenter)
			placed = append(placed, PlacedLabel{
				Text:     current.Text,
				Pixel:    center,
				Time:     current.Time,
				Centered: true,
			})
			break
		}

		startPixel := pixelFor(geom, current.Time)
		if startPixel < geom.PixelMin {
			startPixel = geom.PixelMin
		}

		if current.Time.Before(lower) {
			// 前导截断段：标签宽度须小于到下一段位置间距的7/8，
			// 否则被截短的首标签会与邻居重叠，直接抑制
			if next.Valid {
				extent := e.renderer.TextExtent(current.Text)
				gap := abs(pixelFor(geom, next.Time) - startPixel)
				if float64(extent) < e.config.OuterGapRatio*float64(gap) {
					e.placeText(geom, current.Text, startPixel, pos, core.AlignLeft)
					placed = append(placed, PlacedLabel{Text: current.Text, Pixel: startPixel, Time: current.Time})
				}
			}
		} else {
			e.placeText(geom, current.Text, startPixel, pos, core.AlignLeft)
			placed = append(placed, PlacedLabel{Text: current.Text, Pixel: startPixel, Time: current.Time})
		}

		if !next.Valid {
			break
		}
		current = next
	}

	return placed
}

// abs 返回整数的绝对值
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
