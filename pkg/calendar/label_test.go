package calendar

import (
	"testing"
	"time"

	"github.com/Kevin-Rudy/goaxis/pkg/core"
)

var loc = core.EnglishLocalizer{}

// TestLabelAtFormats 测试各粒度的标签文本
func TestLabelAtFormats(t *testing.T) {
	instant := time.Date(2023, time.June, 15, 9, 5, 7, 0, time.Local)

	cases := []struct {
		level core.Granularity
		text  string
	}{
		{core.Year, "2023"},
		{core.Month, "Jun 2023"},
		{core.Day, "2023-06-15"},
		{core.Hour, "09:00"},
		{core.Minute, "09:05"},
		{core.Second, "09:05:07"},
	}

	for _, tc := range cases {
		got := LabelAt(tc.level, loc, instant)
		if !got.Valid {
			t.Errorf("LabelAt(%v) unexpectedly invalid", tc.level)
			continue
		}
		if got.Text != tc.text {
			t.Errorf("LabelAt(%v): expected %q, got %q", tc.level, tc.text, got.Text)
		}
	}
}

// TestLabelAtAligns 测试LabelAt返回的时刻是对齐值
func TestLabelAtAligns(t *testing.T) {
	instant := time.Date(2023, time.June, 15, 9, 5, 7, 0, time.Local)

	monthly := LabelAt(core.Month, loc, instant)
	expected := time.Date(2023, time.June, 1, 0, 0, 0, 0, time.Local)
	if !monthly.Time.Equal(expected) {
		t.Errorf("Month alignment: expected %v, got %v", expected, monthly.Time)
	}

	yearly := LabelAt(core.Year, loc, instant)
	expected = time.Date(2023, time.January, 1, 0, 0, 0, 0, time.Local)
	if !yearly.Time.Equal(expected) {
		t.Errorf("Year alignment: expected %v, got %v", expected, yearly.Time)
	}
}

// TestNextAlignedRollover 测试NextAligned的年末滚动
func TestNextAlignedRollover(t *testing.T) {
	december := time.Date(2023, time.December, 20, 10, 0, 0, 0, time.Local)
	next := NextAligned(core.Month, loc, december)

	expected := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local)
	if !next.Valid || !next.Time.Equal(expected) {
		t.Errorf("Expected next month %v, got %v (valid=%v)", expected, next.Time, next.Valid)
	}
	if next.Text != "Jan 2024" {
		t.Errorf("Expected label 'Jan 2024', got %q", next.Text)
	}
}

// TestFirstAlignedAtOrAfter 测试向上对齐
func TestFirstAlignedAtOrAfter(t *testing.T) {
	// 未对齐输入：前进到下一个对齐值
	instant := time.Date(2023, time.June, 15, 9, 5, 7, 0, time.Local)
	got := FirstAlignedAtOrAfter(core.Month, loc, instant)
	expected := time.Date(2023, time.July, 1, 0, 0, 0, 0, time.Local)
	if !got.Time.Equal(expected) {
		t.Errorf("Expected ceiling %v, got %v", expected, got.Time)
	}

	// 已对齐输入：原样返回
	aligned := time.Date(2023, time.July, 1, 0, 0, 0, 0, time.Local)
	got = FirstAlignedAtOrAfter(core.Month, loc, aligned)
	if !got.Time.Equal(aligned) {
		t.Errorf("Aligned input should be returned as-is, got %v", got.Time)
	}
}

// TestFirstAlignedAtOrAfterSecondLevel 测试秒粒度的向上对齐
// 秒粒度同样前进一个单位，与其他粒度保持一致
func TestFirstAlignedAtOrAfterSecondLevel(t *testing.T) {
	// 带亚秒部分的输入
	instant := time.Date(2023, time.June, 15, 9, 5, 7, 500_000_000, time.Local)
	got := FirstAlignedAtOrAfter(core.Second, loc, instant)
	expected := time.Date(2023, time.June, 15, 9, 5, 8, 0, time.Local)
	if !got.Time.Equal(expected) {
		t.Errorf("Expected next second %v, got %v", expected, got.Time)
	}
}

// TestFirstAlignedAtOrAfterIdempotent 测试向上对齐的幂等性
func TestFirstAlignedAtOrAfterIdempotent(t *testing.T) {
	instant := time.Date(2023, time.June, 15, 9, 5, 7, 250_000_000, time.Local)

	for _, level := range allLevels {
		once := FirstAlignedAtOrAfter(level, loc, instant)
		twice := FirstAlignedAtOrAfter(level, loc, once.Time)
		if !once.Time.Equal(twice.Time) {
			t.Errorf("FirstAlignedAtOrAfter(%v) not idempotent: %v != %v",
				level, once.Time, twice.Time)
		}
	}
}

// TestIncrementedAlignedZero 测试n=0只重新生成标签不移动时刻
func TestIncrementedAlignedZero(t *testing.T) {
	aligned := time.Date(2023, time.June, 1, 0, 0, 0, 0, time.Local)

	got := IncrementedAligned(core.Month, loc, aligned, 0)
	if !got.Time.Equal(aligned) {
		t.Errorf("n=0 should not move the instant: %v != %v", got.Time, aligned)
	}

	direct := LabelAt(core.Month, loc, aligned)
	if got.Text != direct.Text {
		t.Errorf("n=0 label mismatch: %q != %q", got.Text, direct.Text)
	}
}

// TestIncrementedAlignedComposition 测试带标签步进的可加性
func TestIncrementedAlignedComposition(t *testing.T) {
	instant := time.Date(2023, time.March, 10, 14, 30, 20, 0, time.Local)

	for _, level := range allLevels {
		aligned := LabelAt(level, loc, instant).Time
		for _, p := range [][2]int{{1, 2}, {3, 4}, {0, 6}} {
			a, b := p[0], p[1]
			step1 := IncrementedAligned(level, loc, aligned, a)
			step2 := IncrementedAligned(level, loc, step1.Time, b)
			direct := IncrementedAligned(level, loc, aligned, a+b)
			if !step2.Time.Equal(direct.Time) || step2.Text != direct.Text {
				t.Errorf("IncrementedAligned(%v) composition failed for a=%d b=%d: (%v,%q) != (%v,%q)",
					level, a, b, step2.Time, step2.Text, direct.Time, direct.Text)
			}
		}
	}
}

// TestInvalidInstantSentinel 测试超出可表示范围时的无效哨兵
func TestInvalidInstantSentinel(t *testing.T) {
	lastYear := time.Date(9999, time.January, 1, 0, 0, 0, 0, time.Local)

	got := IncrementedAligned(core.Year, loc, lastYear, 1)
	if got.Valid {
		t.Errorf("Expected invalid sentinel past year 9999, got %+v", got)
	}

	// 范围内的运算保持有效
	got = IncrementedAligned(core.Year, loc, lastYear, 0)
	if !got.Valid {
		t.Error("Year 9999 itself should still be valid")
	}
}

// TestMonthLabelUsesLocalizer 测试月标签使用本地化提供者
func TestMonthLabelUsesLocalizer(t *testing.T) {
	instant := time.Date(2023, time.November, 5, 0, 0, 0, 0, time.Local)
	got := LabelAt(core.Month, loc, instant)
	if got.Text != "Nov 2023" {
		t.Errorf("Expected 'Nov 2023', got %q", got.Text)
	}
}
