// Package tui 配置定义
package tui

import (
	"errors"
	"time"
)

// Config 查看器组件的配置结构
type Config struct {
	MinChartWidth  int           // 最小图表宽度
	MinChartHeight int           // 最小图表高度
	ZoomFactor     float64       // 单次缩放倍率
	PanRatio       float64       // 单次平移占窗口跨度的比例
	MinSpan        time.Duration // 窗口跨度下限
	MaxSpan        time.Duration // 窗口跨度上限
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		MinChartWidth:  20,                        // 最小图表宽度
		MinChartHeight: 6,                         // 最小图表高度
		ZoomFactor:     2.0,                       // 每次缩放2倍
		PanRatio:       0.1,                       // 每次平移10%
		MinSpan:        10 * time.Second,          // 最小窗口10秒
		MaxSpan:        30 * 365 * 24 * time.Hour, // 最大窗口约30年
	}
}

// Validate 验证配置的合理性
func (c *Config) Validate() error {
	if c.MinChartWidth <= 0 {
		return errors.New("最小图表宽度必须大于0")
	}

	if c.MinChartHeight <= 0 {
		return errors.New("最小图表高度必须大于0")
	}

	if c.ZoomFactor <= 1.0 {
		return errors.New("缩放倍率必须大于1.0")
	}

	if c.PanRatio <= 0 || c.PanRatio >= 1 {
		return errors.New("平移比例必须在(0,1)范围内")
	}

	if c.MinSpan <= 0 {
		return errors.New("窗口跨度下限必须大于0")
	}

	if c.MaxSpan <= c.MinSpan {
		return errors.New("窗口跨度上限必须大于下限")
	}

	return nil
}
