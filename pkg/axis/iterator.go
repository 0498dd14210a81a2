// Package axis 渲染无关的刻度遍历
package axis

import (
	"github.com/Kevin-Rudy/goaxis/pkg/calendar"
	"github.com/Kevin-Rudy/goaxis/pkg/core"
)

// TickVisitor 刻度访问函数：依次接收刻度的数据值（秒）和像素坐标
type TickVisitor func(value float64, pixel int)

// ForEachTick 按递增顺序访问[下界,上界)内每个内层粒度的对齐时刻
// 只使用粒度解析的内层结果，不做文本测量和碰撞检测；
// 供只需要坐标不需要绘制的调用方使用（如网格线）
func (e *Engine) ForEachTick(geom *core.Geometry, visitor TickVisitor) {
	if !geom.Ready() || visitor == nil {
		return
	}

	level := calendar.DetermineLevels(geom.LowerTime(), geom.UpperTime()).Inner
	upper := geom.UpperTime()

	first := calendar.FirstAlignedAtOrAfter(level, e.localizer, geom.LowerTime())
	if !first.Valid {
		return
	}

	for i := 0; i < e.config.MaxTicks; i++ {
		tick := calendar.IncrementedAligned(level, e.localizer, first.Time, i)
		if !tick.Valid || !tick.Time.Before(upper) {
			break
		}
		value := core.TimeToSeconds(tick.Time)
		visitor(value, geom.DataToCoordinate(value))
	}
}
