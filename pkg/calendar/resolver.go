// Package calendar 粒度解析模块
package calendar

import (
	"time"

	"github.com/Kevin-Rudy/goaxis/pkg/core"
)

// DetermineLevels 根据跨度选择外层（粗）和内层（细）显示粒度
// 阈值按"下一级更细粒度最多跨越约3个粗单位"选取，
// 保证内层刻度数量处于可读范围；这是启发式而非可证明的上界
func DetermineLevels(min, max time.Time) core.LevelPair {
	span := max.Sub(min).Milliseconds()

	switch {
	case span < 3*core.MillisPerMinute:
		return core.LevelPair{Outer: core.Day, Inner: core.Second}
	case span < 3*core.MillisPerHour:
		return core.LevelPair{Outer: core.Day, Inner: core.Minute}
	case span < 3*core.MillisPerDay:
		return core.LevelPair{Outer: core.Day, Inner: core.Hour}
	case span < 3*core.MillisPerMonth:
		return core.LevelPair{Outer: core.Month, Inner: core.Day}
	case span < 3*core.MillisPerYear:
		return core.LevelPair{Outer: core.Year, Inner: core.Month}
	default:
		return core.LevelPair{Outer: core.Year, Inner: core.Year}
	}
}
