// Package calendar 标签引擎：对齐时刻的文本生成与步进
package calendar

import (
	"strconv"
	"time"

	"github.com/Kevin-Rudy/goaxis/pkg/core"
)

// LabelAt 把时刻向下取整到指定粒度的对齐值并生成显示文本
func LabelAt(level core.Granularity, loc core.Localizer, t time.Time) core.LabeledInstant {
	f := Align(level, FieldsOf(t))
	return labelFields(level, loc, f)
}

// NextAligned 返回恰好晚一个粒度单位的下一个对齐时刻
// 仅用于判断一个"段"是否结束
func NextAligned(level core.Granularity, loc core.Localizer, t time.Time) core.LabeledInstant {
	f := Align(level, FieldsOf(t))
	return labelFields(level, loc, Increment(level, f, 1))
}

// FirstAlignedAtOrAfter 返回不早于t的最小对齐时刻（向上对齐）
// 先向下对齐，若对齐值严格早于输入则前进一个单位
func FirstAlignedAtOrAfter(level core.Granularity, loc core.Localizer, t time.Time) core.LabeledInstant {
	f := Align(level, FieldsOf(t))
	if f.Time().Before(t) {
		f = Increment(level, f, 1)
	}
	return labelFields(level, loc, f)
}

// IncrementedAligned 给已对齐时刻加上n个粒度单位并重新生成标签
// n=0 是合法的，仅用于重新导出显示文本而不移动时刻
// 调用者必须传入已对齐的时刻，未对齐输入的行为未定义
func IncrementedAligned(level core.Granularity, loc core.Localizer, aligned time.Time, n int) core.LabeledInstant {
	f := FieldsOf(aligned)
	if n != 0 {
		f = Increment(level, f, n)
	}
	return labelFields(level, loc, f)
}

// labelFields 为已对齐的字段记录生成带标签时刻
// 字段超出可表示范围时返回无效时刻哨兵
func labelFields(level core.Granularity, loc core.Localizer, f Fields) core.LabeledInstant {
	if !f.Valid() {
		return invalidInstant()
	}
	return core.LabeledInstant{
		Text:  formatFields(level, loc, f),
		Time:  f.Time(),
		Valid: true,
	}
}

// formatFields 按粒度生成显示文本
// 年：纯年份数字；月：本地化月名+年份；
// 日显示完整日期，时/分/秒只显示时刻字段（外层已提供日期上下文），
// 非首位字段补零到两位
func formatFields(level core.Granularity, loc core.Localizer, f Fields) string {
	switch level {
	case core.Year:
		return strconv.Itoa(f.Year)
	case core.Month:
		return loc.MonthName(f.Month) + " " + strconv.Itoa(f.Year)
	case core.Day:
		return f.Time().Format("2006-01-02")
	case core.Hour:
		return f.Time().Format("15:00")
	case core.Minute:
		return f.Time().Format("15:04")
	default:
		return f.Time().Format("15:04:05")
	}
}
