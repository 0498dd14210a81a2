package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/Kevin-Rudy/goaxis/pkg/core"
	"github.com/Kevin-Rudy/goaxis/pkg/tui"
)

// runApp 主要应用逻辑处理函数
func runApp(c *cli.Context) error {
	// 构建配置
	appConfig, err := buildConfigFromCLI(c)
	if err != nil {
		return cli.Exit(fmt.Sprintf("错误: %v", err), 1)
	}

	// 验证配置
	if err := validateConfig(appConfig); err != nil {
		return cli.Exit(fmt.Sprintf("配置验证失败: %v", err), 1)
	}

	// 一次性输出模式：渲染一帧后直接退出
	if !appConfig.Interactive {
		viewer := tui.NewHeadlessViewer(appConfig.Lower, appConfig.Upper,
			appConfig.ViewerConfig, appConfig.AxisConfig, appConfig.Localizer)
		if appConfig.Vertical {
			viewer.SetOrientation(core.Vertical)
		}
		fmt.Println(viewer.RenderFrame(appConfig.Width, appConfig.Height))
		return nil
	}

	// 显示运行配置
	printRunningConfig(appConfig)

	fmt.Println("\n正在启动交互式查看器...")

	// 显示使用说明
	printUsageInstructions()

	// 创建并启动查看器 - 阻塞直到用户退出
	viewer := tui.NewViewer(appConfig.Lower, appConfig.Upper,
		appConfig.ViewerConfig, appConfig.AxisConfig, appConfig.Localizer)
	if appConfig.Vertical {
		viewer.SetOrientation(core.Vertical)
	}

	if err := viewer.Run(); err != nil {
		return cli.Exit(fmt.Sprintf("查看器运行出错: %v", err), 1)
	}

	fmt.Println("\n程序已退出")
	return nil
}

// printRunningConfig 打印运行配置信息
func printRunningConfig(config *AppConfig) {
	fmt.Printf("时间窗口: %s ~ %s\n",
		config.Lower.Format("2006-01-02 15:04:05"),
		config.Upper.Format("2006-01-02 15:04:05"))
	fmt.Printf("缩放倍率: %.1f\n", config.ViewerConfig.ZoomFactor)
	fmt.Printf("平移比例: %.0f%%\n", config.ViewerConfig.PanRatio*100)
}
