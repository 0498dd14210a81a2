// Package axis 内层（细粒度）刻度布局与自适应步长搜索
package axis

import (
	"github.com/Kevin-Rudy/goaxis/pkg/calendar"
	"github.com/Kevin-Rudy/goaxis/pkg/core"
)

// PlacedTick 表示一个已放置的内层刻度
type PlacedTick struct {
	Value   float64 // 刻度对应的数据值（秒）
	Pixel   int     // 轴向像素位置
	Text    string  // 刻度标签文本
	Labeled bool    // 是否额外绘制了文本标签
}

// tickCandidate 步长搜索阶段的候选刻度
type tickCandidate struct {
	instant core.LabeledInstant
	pixel   int
	extent  int
}

// DrawInnerLabels 布局内层刻度：每个刻度画刻度线，
// 按自适应步长搜索选出的间隔绘制文本标签
// 像素宽度不足时不绘制任何内容（步长视为1）
func (e *Engine) DrawInnerLabels(level core.Granularity, geom *core.Geometry) []PlacedTick {
	if !geom.Ready() {
		return nil
	}

	// 病态几何防护：宽度≤0时不绘制，避免步长无界增长
	if geom.PixelMax-geom.PixelMin <= 0 {
		return nil
	}

	ticks := e.collectTicks(level, geom)
	if len(ticks) == 0 {
		return nil
	}

	stride := e.searchStride(ticks)

	pos := e.innerLabelPos(geom)
	placed := make([]PlacedTick, 0, len(ticks))

	for i, tick := range ticks {
		e.drawTickMark(geom, tick.pixel)

		labeled := i%stride == 0
		if labeled {
			e.placeText(geom, tick.instant.Text, tick.pixel, pos, core.AlignLeft)
		}

		placed = append(placed, PlacedTick{
			Value:   core.TimeToSeconds(tick.instant.Time),
			Pixel:   tick.pixel,
			Text:    tick.instant.Text,
			Labeled: labeled,
		})
	}

	return placed
}

// collectTicks 收集可见范围内的全部内层对齐刻度
// 从下界的向上对齐时刻开始，按单位步进直到越过上界、
// 遇到无效时刻或达到数量上限
func (e *Engine) collectTicks(level core.Granularity, geom *core.Geometry) []tickCandidate {
	upper := geom.UpperTime()

	first := calendar.FirstAlignedAtOrAfter(level, e.localizer, geom.LowerTime())
	if !first.Valid {
		return nil
	}

	var ticks []tickCandidate
	for i := 0; i < e.config.MaxTicks; i++ {
		tick := calendar.IncrementedAligned(level, e.localizer, first.Time, i)
		if !tick.Valid || !tick.Time.Before(upper) {
			break
		}
		ticks = append(ticks, tickCandidate{
			instant: tick,
			pixel:   pixelFor(geom, tick.Time),
			extent:  e.renderer.TextExtent(tick.Text),
		})
	}
	return ticks
}

// searchStride 自适应步长搜索
// 从步长1开始模拟整个跨度的标签放置，发现任何一处碰撞就
// 递增步长重新模拟；步长严格递增且标签总数随之严格减少，
// 搜索必然终止，最坏情况下整页只剩一个标签
func (e *Engine) searchStride(ticks []tickCandidate) int {
	stride := 1
	for ; stride < len(ticks); stride++ {
		if !e.hasOverlap(ticks, stride) {
			return stride
		}
	}
	return stride
}

// hasOverlap 模拟以指定步长放置标签，检测任意相邻标签的像素区间重叠
// 半宽按测量宽度的5/8估算，刻意偏大以保证标签之间留有可见空隙
func (e *Engine) hasOverlap(ticks []tickCandidate, stride int) bool {
	prevIndex := -1
	prevHalf := 0

	for i := 0; i < len(ticks); i += stride {
		half := int(e.config.HalfWidthRatio * float64(ticks[i].extent))
		if prevIndex >= 0 {
			distance := abs(ticks[i].pixel - ticks[prevIndex].pixel)
			if distance < prevHalf+half {
				return true
			}
		}
		prevIndex = i
		prevHalf = half
	}
	return false
}
