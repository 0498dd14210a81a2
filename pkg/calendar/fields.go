// Package calendar 实现纯日历运算：字段对齐、单位步进和标签生成
// 所有函数都是纯函数，不依赖外部状态
package calendar

import (
	"time"

	"github.com/Kevin-Rudy/goaxis/pkg/core"
)

// 可表示的年份范围，超出范围的时刻视为运算耗尽
const (
	minValidYear = 1
	maxValidYear = 9999
)

// Fields 表示一个时刻分解后的日历字段记录
// Month 取值 0-11，Day 从 1 起；不做任何时区换算，
// 字段就是给定时刻在本地日历下的原样读数
type Fields struct {
	Year   int // 年
	Month  int // 月（0-11）
	Day    int // 日（1起）
	Hour   int // 时
	Minute int // 分
	Second int // 秒
}

// FieldsOf 从时刻读出日历字段
func FieldsOf(t time.Time) Fields {
	return Fields{
		Year:   t.Year(),
		Month:  int(t.Month()) - 1,
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
	}
}

// Time 把字段记录转换回时刻
// 越界字段由 time.Date 的日历归一化处理（如1月32日归入2月1日）
func (f Fields) Time() time.Time {
	return time.Date(f.Year, time.Month(f.Month+1), f.Day, f.Hour, f.Minute, f.Second, 0, time.Local)
}

// Valid 判断字段记录是否在可表示的日历范围内
func (f Fields) Valid() bool {
	return f.Year >= minValidYear && f.Year <= maxValidYear
}

// InRange 判断所有字段是否都处于规范取值区间
// 用于回归测试：进位运算不允许返回瞬态越界值（如月=12、时=24）
func (f Fields) InRange() bool {
	if f.Month < 0 || f.Month > 11 {
		return false
	}
	if f.Day < 1 || f.Day > 31 {
		return false
	}
	if f.Hour < 0 || f.Hour > 23 {
		return false
	}
	if f.Minute < 0 || f.Minute > 59 {
		return false
	}
	return f.Second >= 0 && f.Second <= 59
}

// invalidInstant 返回无效时刻哨兵
func invalidInstant() core.LabeledInstant {
	return core.LabeledInstant{Valid: false}
}
