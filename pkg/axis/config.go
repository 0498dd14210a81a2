// Package axis 配置定义
package axis

import (
	"errors"
)

// Config 布局引擎的配置结构
type Config struct {
	TickLength     int     // 刻度线长度（格）
	LabelGap       int     // 刻度线末端与标签行之间的间隙（格）
	OuterGapRatio  float64 // 前导段标签抑制阈值：标签宽度须小于该比例乘以到下一段的间距
	HalfWidthRatio float64 // 内层标签半宽的过估比例，刻意偏大以强制留出可见空隙
	MaxTicks       int     // 单次布局模拟的刻度数量硬上限，防止病态几何导致失控
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		TickLength:     1,     // 刻度线占1格
		LabelGap:       1,     // 标签与刻度线间隔1格
		OuterGapRatio:  0.875, // 7/8
		HalfWidthRatio: 0.625, // 5/8
		MaxTicks:       10000, // 刻度数量上限
	}
}

// Validate 验证配置的合理性
func (c *Config) Validate() error {
	if c.TickLength < 0 {
		return errors.New("刻度线长度不能为负数")
	}

	if c.LabelGap < 0 {
		return errors.New("标签间隙不能为负数")
	}

	if c.OuterGapRatio <= 0 || c.OuterGapRatio > 1 {
		return errors.New("前导段抑制阈值必须在(0,1]范围内")
	}

	if c.HalfWidthRatio < 0.5 {
		return errors.New("半宽比例不能小于0.5，否则相邻标签可能紧贴")
	}

	if c.MaxTicks <= 0 {
		return errors.New("刻度数量上限必须大于0")
	}

	return nil
}
