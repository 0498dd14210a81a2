package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/Kevin-Rudy/goaxis/pkg/core"
)

// newTestViewer 构造测试用查看器
func newTestViewer(lower, upper time.Time) *Viewer {
	return NewViewerForTest(lower, upper, nil, nil, core.EnglishLocalizer{})
}

// TestNewViewerForTest 测试查看器创建
func TestNewViewerForTest(t *testing.T) {
	lower := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.Local)
	upper := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local)
	v := newTestViewer(lower, upper)

	if v == nil {
		t.Fatal("NewViewerForTest should return a valid Viewer instance")
	}

	if !v.testMode {
		t.Error("Viewer should be in test mode")
	}

	if v.engine == nil || v.surface == nil {
		t.Error("Viewer should have engine and surface initialized")
	}

	gotLower, gotUpper := v.Window()
	if !gotLower.Equal(lower) || !gotUpper.Equal(upper) {
		t.Errorf("Window() = (%v, %v), want (%v, %v)", gotLower, gotUpper, lower, upper)
	}

	if v.Orientation() != core.Horizontal {
		t.Error("Initial orientation should be horizontal")
	}
}

// TestRenderFrameContainsLabels 测试渲染输出包含预期的年份标签
func TestRenderFrameContainsLabels(t *testing.T) {
	lower := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.Local)
	upper := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.Local)
	v := newTestViewer(lower, upper)

	out := v.RenderFrame(80, 12)

	for _, label := range []string{"2023", "2024", "2025"} {
		if !strings.Contains(out, label) {
			t.Errorf("Expected frame to contain label %q, output:\n%s", label, out)
		}
	}

	if !strings.Contains(out, "─") {
		t.Error("Expected frame to contain the axis line")
	}
}

// TestRenderFrameTooSmall 测试终端尺寸不足时的提示
func TestRenderFrameTooSmall(t *testing.T) {
	lower := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.Local)
	upper := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local)
	v := newTestViewer(lower, upper)

	out := v.RenderFrame(5, 2)
	if out != "终端尺寸过小" {
		t.Errorf("Expected size warning, got %q", out)
	}
}

// TestRenderFrameVertical 测试垂直方向渲染包含竖线
func TestRenderFrameVertical(t *testing.T) {
	lower := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.Local)
	upper := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.Local)
	v := newTestViewer(lower, upper)
	v.toggleOrientation()

	if v.Orientation() != core.Vertical {
		t.Fatal("Orientation should be vertical after toggle")
	}

	out := v.RenderFrame(40, 20)
	if !strings.Contains(out, "│") {
		t.Error("Expected vertical frame to contain the axis line")
	}
	if !strings.Contains(out, "2") {
		t.Errorf("Expected vertical frame to contain label digits, output:\n%s", out)
	}
}

// TestZoomPreservesCenter 测试缩放保持窗口中心不变
func TestZoomPreservesCenter(t *testing.T) {
	lower := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.Local)
	upper := time.Date(2023, time.January, 2, 0, 0, 0, 0, time.Local)
	v := newTestViewer(lower, upper)

	center := lower.Add(upper.Sub(lower) / 2)
	v.zoomIn()

	newLower, newUpper := v.Window()
	newCenter := newLower.Add(newUpper.Sub(newLower) / 2)
	if !newCenter.Equal(center) {
		t.Errorf("Zoom should preserve center: expected %v, got %v", center, newCenter)
	}

	newSpan := newUpper.Sub(newLower)
	if newSpan != 12*time.Hour {
		t.Errorf("Expected span 12h after zoom in, got %v", newSpan)
	}

	v.zoomOut()
	newLower, newUpper = v.Window()
	if newUpper.Sub(newLower) != 24*time.Hour {
		t.Errorf("Expected span restored to 24h, got %v", newUpper.Sub(newLower))
	}
}

// TestZoomClampsSpan 测试缩放受跨度上下限约束
func TestZoomClampsSpan(t *testing.T) {
	lower := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.Local)
	upper := lower.Add(15 * time.Second)
	v := newTestViewer(lower, upper)

	v.zoomIn()
	newLower, newUpper := v.Window()
	if newUpper.Sub(newLower) != v.viewerConfig.MinSpan {
		t.Errorf("Expected span clamped to MinSpan %v, got %v",
			v.viewerConfig.MinSpan, newUpper.Sub(newLower))
	}

	v.lower = lower
	v.upper = lower.Add(v.viewerConfig.MaxSpan - time.Hour)
	v.zoomOut()
	newLower, newUpper = v.Window()
	if newUpper.Sub(newLower) != v.viewerConfig.MaxSpan {
		t.Errorf("Expected span clamped to MaxSpan %v, got %v",
			v.viewerConfig.MaxSpan, newUpper.Sub(newLower))
	}
}

// TestPanShiftsWindow 测试平移按比例移动窗口两端
func TestPanShiftsWindow(t *testing.T) {
	lower := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.Local)
	upper := lower.Add(10 * time.Hour)
	v := newTestViewer(lower, upper)

	v.panRight()
	newLower, newUpper := v.Window()
	if !newLower.Equal(lower.Add(time.Hour)) || !newUpper.Equal(upper.Add(time.Hour)) {
		t.Errorf("Pan right by 10%% should shift both bounds by 1h, got (%v, %v)", newLower, newUpper)
	}

	if newUpper.Sub(newLower) != 10*time.Hour {
		t.Errorf("Pan should preserve span, got %v", newUpper.Sub(newLower))
	}

	v.panLeft()
	newLower, newUpper = v.Window()
	if !newLower.Equal(lower) || !newUpper.Equal(upper) {
		t.Errorf("Pan left should restore the original window, got (%v, %v)", newLower, newUpper)
	}
}

// chineseLocalizer 测试用的中文月份名提供者
type chineseLocalizer struct{}

func (chineseLocalizer) MonthName(month int) string {
	names := []string{"一月", "二月", "三月", "四月", "五月", "六月",
		"七月", "八月", "九月", "十月", "十一月", "十二月"}
	if month < 0 || month > 11 {
		return "???"
	}
	return names[month]
}

// TestCustomLocalizerReachesOutput 测试注入的本地化月名出现在渲染结果中
func TestCustomLocalizerReachesOutput(t *testing.T) {
	// 约5个月跨度：内层月级刻度，标签为"月名 年份"
	lower := time.Date(2023, time.April, 1, 0, 0, 0, 0, time.Local)
	upper := time.Date(2023, time.September, 1, 0, 0, 0, 0, time.Local)
	v := NewViewerForTest(lower, upper, nil, nil, chineseLocalizer{})

	out := v.RenderFrame(80, 12)
	if !strings.Contains(out, "五月 2023") {
		t.Errorf("Expected frame to contain localized label '五月 2023', output:\n%s", out)
	}
}

// TestViewerStop 测试停止信号只关闭一次
func TestViewerStop(t *testing.T) {
	lower := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.Local)
	upper := lower.Add(time.Hour)
	v := newTestViewer(lower, upper)

	v.Stop()

	select {
	case <-v.stopChan:
		// 正常关闭
	default:
		t.Error("Stop should close stopChan")
	}

	// 再次调用不应panic
	v.Stop()
}

// TestConfigValidate 测试配置验证
func TestConfigValidate(t *testing.T) {
	config := DefaultConfig()
	if err := config.Validate(); err != nil {
		t.Errorf("Default config should be valid: %v", err)
	}

	bad := DefaultConfig()
	bad.ZoomFactor = 1.0
	if err := bad.Validate(); err == nil {
		t.Error("ZoomFactor=1.0 should be invalid")
	}

	bad = DefaultConfig()
	bad.PanRatio = 1.5
	if err := bad.Validate(); err == nil {
		t.Error("PanRatio=1.5 should be invalid")
	}

	bad = DefaultConfig()
	bad.MaxSpan = bad.MinSpan
	if err := bad.Validate(); err == nil {
		t.Error("MaxSpan<=MinSpan should be invalid")
	}
}
