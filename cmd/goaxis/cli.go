package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

// createCliApp 创建CLI应用实例
func createCliApp() *cli.App {
	app := &cli.App{
		Name:    AppName,
		Version: AppVersion,
		Usage:   AppDesc,
		Flags:   createCliFlags(),
		Action:  runApp,
	}

	// 添加版本子命令
	app.Commands = createCommands()

	return app
}

// createCliFlags 创建CLI参数定义
func createCliFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "from",
			Aliases: []string{"f"},
			Usage:   "时间窗口起点 (例如: 2023-01-01, 2023-01-01 08:30)",
		},
		&cli.StringFlag{
			Name:    "to",
			Aliases: []string{"t"},
			Usage:   "时间窗口终点 (例如: 2024-01-01, 2024-01-01 18:00)",
		},
		&cli.IntFlag{
			Name:    "width",
			Aliases: []string{"w"},
			Value:   80,
			Usage:   "输出宽度（字符数）",
		},
		&cli.IntFlag{
			Name:  "height",
			Value: 12,
			Usage: "输出高度（行数）",
		},
		&cli.BoolFlag{
			Name:  "vertical",
			Usage: "使用垂直方向的轴",
		},
		&cli.BoolFlag{
			Name:    "interactive",
			Aliases: []string{"i"},
			Usage:   "启动交互式查看器（支持平移缩放）",
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "YAML配置文件路径（月份名、刻度样式等）",
		},
	}
}

// createCommands 创建子命令
func createCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:    "version",
			Aliases: []string{"v"},
			Usage:   "显示详细版本信息",
			Action: func(c *cli.Context) error {
				fmt.Printf("%s v%s\n", AppName, AppVersion)
				fmt.Printf("描述: %s\n", AppDesc)
				return nil
			},
		},
	}
}
