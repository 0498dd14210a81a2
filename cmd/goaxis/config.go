package main

import (
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/Kevin-Rudy/goaxis/pkg/axis"
	"github.com/Kevin-Rudy/goaxis/pkg/core"
	"github.com/Kevin-Rudy/goaxis/pkg/tui"
)

// AppConfig 应用层配置聚合
type AppConfig struct {
	AxisConfig   *axis.Config
	ViewerConfig *tui.Config
	Localizer    core.Localizer

	Lower       time.Time
	Upper       time.Time
	Width       int
	Height      int
	Vertical    bool
	Interactive bool
}

// FileConfig YAML配置文件结构
type FileConfig struct {
	// 自定义月份名，必须恰好12项，留空则使用英文缩写
	Months []string `yaml:"months"`

	Axis struct {
		TickLength int `yaml:"tick_length"`
		LabelGap   int `yaml:"label_gap"`
	} `yaml:"axis"`

	Viewer struct {
		ZoomFactor float64 `yaml:"zoom_factor"`
		PanRatio   float64 `yaml:"pan_ratio"`
	} `yaml:"viewer"`
}

// 支持的时间戳输入格式，按精度从高到低依次尝试
var timestampFormats = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// buildConfigFromCLI 从命令行参数和可选的配置文件构建配置
func buildConfigFromCLI(c *cli.Context) (*AppConfig, error) {
	appConfig := &AppConfig{
		AxisConfig:   axis.DefaultConfig(),
		ViewerConfig: tui.DefaultConfig(),
		Localizer:    core.EnglishLocalizer{},
		Width:        c.Int("width"),
		Height:       c.Int("height"),
		Vertical:     c.Bool("vertical"),
		Interactive:  c.Bool("interactive"),
	}

	// 先应用配置文件，再让命令行参数覆盖
	if path := c.String("config"); path != "" {
		fileConfig, err := loadFileConfig(path)
		if err != nil {
			return nil, err
		}
		applyFileConfig(appConfig, fileConfig)
	}

	// 解析时间窗口，默认显示最近24小时
	now := time.Now()
	appConfig.Lower = now.Add(-24 * time.Hour)
	appConfig.Upper = now

	if c.IsSet("from") {
		lower, err := parseTimestamp(c.String("from"))
		if err != nil {
			return nil, fmt.Errorf("起点时间格式错误: %v", err)
		}
		appConfig.Lower = lower
	}
	if c.IsSet("to") {
		upper, err := parseTimestamp(c.String("to"))
		if err != nil {
			return nil, fmt.Errorf("终点时间格式错误: %v", err)
		}
		appConfig.Upper = upper
	}

	return appConfig, nil
}

// loadFileConfig 读取并解析YAML配置文件
func loadFileConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("无法读取配置文件 %s: %v", path, err)
	}

	var fileConfig FileConfig
	if err := yaml.Unmarshal(data, &fileConfig); err != nil {
		return nil, fmt.Errorf("配置文件解析失败: %v", err)
	}

	if len(fileConfig.Months) != 0 && len(fileConfig.Months) != 12 {
		return nil, fmt.Errorf("months必须恰好包含12个月份名，当前为%d个", len(fileConfig.Months))
	}

	return &fileConfig, nil
}

// applyFileConfig 把配置文件中的非零项写入应用配置
func applyFileConfig(appConfig *AppConfig, fileConfig *FileConfig) {
	if len(fileConfig.Months) == 12 {
		appConfig.Localizer = &yamlLocalizer{months: fileConfig.Months}
	}
	if fileConfig.Axis.TickLength > 0 {
		appConfig.AxisConfig.TickLength = fileConfig.Axis.TickLength
	}
	if fileConfig.Axis.LabelGap > 0 {
		appConfig.AxisConfig.LabelGap = fileConfig.Axis.LabelGap
	}
	if fileConfig.Viewer.ZoomFactor > 0 {
		appConfig.ViewerConfig.ZoomFactor = fileConfig.Viewer.ZoomFactor
	}
	if fileConfig.Viewer.PanRatio > 0 {
		appConfig.ViewerConfig.PanRatio = fileConfig.Viewer.PanRatio
	}
}

// yamlLocalizer 配置文件驱动的月份名提供者
type yamlLocalizer struct {
	months []string
}

// MonthName 返回配置的月份名，索引越界时回退到英文缩写
func (l *yamlLocalizer) MonthName(month int) string {
	if month >= 0 && month < len(l.months) {
		return l.months[month]
	}
	return core.EnglishLocalizer{}.MonthName(month)
}

// parseTimestamp 依次尝试各支持格式解析时间戳
func parseTimestamp(value string) (time.Time, error) {
	for _, layout := range timestampFormats {
		if parsed, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("无法识别的时间格式 %q，支持如 2006-01-02 或 2006-01-02 15:04:05", value)
}

// validateConfig 验证配置的合理性
func validateConfig(config *AppConfig) error {
	if err := config.AxisConfig.Validate(); err != nil {
		return fmt.Errorf("轴配置错误: %v", err)
	}

	if err := config.ViewerConfig.Validate(); err != nil {
		return fmt.Errorf("查看器配置错误: %v", err)
	}

	if !config.Upper.After(config.Lower) {
		return fmt.Errorf("终点时间必须晚于起点时间")
	}

	if config.Width <= 0 || config.Height <= 0 {
		return fmt.Errorf("输出尺寸必须为正数")
	}

	return nil
}
