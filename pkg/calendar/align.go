// Package calendar 对齐与步进规则
package calendar

import (
	"github.com/Kevin-Rudy/goaxis/pkg/core"
)

// Align 把字段记录向下取整到指定粒度的对齐值
// 逐字段处理：年份始终保留，更细的字段按粒度逐级纳入，
// 其余字段落到各自的最小值
func Align(level core.Granularity, f Fields) Fields {
	switch level {
	case core.Year:
		return alignYear(f)
	case core.Month:
		return alignMonth(f)
	case core.Day:
		return alignDay(f)
	case core.Hour:
		return alignHour(f)
	case core.Minute:
		return alignMinute(f)
	default:
		return alignSecond(f)
	}
}

func alignYear(f Fields) Fields {
	return Fields{Year: f.Year, Month: 0, Day: 1}
}

func alignMonth(f Fields) Fields {
	return Fields{Year: f.Year, Month: f.Month, Day: 1}
}

func alignDay(f Fields) Fields {
	return Fields{Year: f.Year, Month: f.Month, Day: f.Day}
}

func alignHour(f Fields) Fields {
	return Fields{Year: f.Year, Month: f.Month, Day: f.Day, Hour: f.Hour}
}

func alignMinute(f Fields) Fields {
	return Fields{Year: f.Year, Month: f.Month, Day: f.Day, Hour: f.Hour, Minute: f.Minute}
}

func alignSecond(f Fields) Fields {
	return f
}

// Increment 给已对齐的字段记录加上n个指定粒度的整单位
// 每个粒度的规则都是独立的纯函数，返回值始终是规范化后的记录：
// 进位在溢出阈值处用包含边界（≥）立即归一，不产生瞬态越界字段
func Increment(level core.Granularity, f Fields, n int) Fields {
	switch level {
	case core.Year:
		return incrementYear(f, n)
	case core.Month:
		return incrementMonth(f, n)
	case core.Day:
		return incrementDay(f, n)
	case core.Hour:
		return incrementHour(f, n)
	case core.Minute:
		return incrementMinute(f, n)
	default:
		return incrementSecond(f, n)
	}
}

// incrementYear 年粒度步进：直接加到年字段，归一到1月1日
func incrementYear(f Fields, n int) Fields {
	return Fields{Year: f.Year + n, Month: 0, Day: 1}
}

// incrementMonth 月粒度步进：月字段溢出时向年进位
// 用整体月序号计算，12月+1直接落到次年1月
func incrementMonth(f Fields, n int) Fields {
	total := f.Year*12 + f.Month + n
	year := total / 12
	month := total % 12
	if month < 0 {
		month += 12
		year--
	}
	return Fields{Year: year, Month: month, Day: 1}
}

// incrementDay 日粒度步进：依赖日历归一化处理月长差异和闰日
func incrementDay(f Fields, n int) Fields {
	f.Day += n
	return FieldsOf(f.Time())
}

// incrementHour 时粒度步进
func incrementHour(f Fields, n int) Fields {
	f.Hour += n
	return FieldsOf(f.Time())
}

// incrementMinute 分粒度步进
func incrementMinute(f Fields, n int) Fields {
	f.Minute += n
	return FieldsOf(f.Time())
}

// incrementSecond 秒粒度步进
func incrementSecond(f Fields, n int) Fields {
	f.Second += n
	return FieldsOf(f.Time())
}
