package main

import "fmt"

// 程序信息常量
const (
	AppName    = "goaxis"
	AppVersion = "0.1.0"
	AppDesc    = "日历感知的双层时间轴刻度布局工具"
)

// printUsageInstructions 显示交互界面操作说明
func printUsageInstructions() {
	fmt.Println("操作说明:")
	fmt.Println("  ←/→ 方向键  - 平移时间窗口")
	fmt.Println("  + / -       - 缩放时间窗口")
	fmt.Println("  o           - 切换水平/垂直方向")
	fmt.Println("  q 或 Ctrl+C - 退出程序")
	fmt.Println("========================================")
}
