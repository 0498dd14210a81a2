// Package axis 选项模式支持
package axis

// Option 布局引擎配置选项函数类型
type Option func(*Config)

// WithTickLength 设置刻度线长度
func WithTickLength(length int) Option {
	return func(c *Config) {
		c.TickLength = length
	}
}

// WithLabelGap 设置标签间隙
func WithLabelGap(gap int) Option {
	return func(c *Config) {
		c.LabelGap = gap
	}
}

// WithOuterGapRatio 设置前导段标签抑制阈值
func WithOuterGapRatio(ratio float64) Option {
	return func(c *Config) {
		c.OuterGapRatio = ratio
	}
}

// WithHalfWidthRatio 设置内层标签半宽过估比例
func WithHalfWidthRatio(ratio float64) Option {
	return func(c *Config) {
		c.HalfWidthRatio = ratio
	}
}

// WithMaxTicks 设置刻度数量硬上限
func WithMaxTicks(max int) Option {
	return func(c *Config) {
		c.MaxTicks = max
	}
}

// NewConfigWithOptions 使用选项模式创建布局配置
func NewConfigWithOptions(opts ...Option) *Config {
	config := DefaultConfig()

	// 应用所有选项
	for _, opt := range opts {
		opt(config)
	}

	return config
}
