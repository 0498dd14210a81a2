// Package canvas 提供基于字符格的画布渲染器
// 实现core.Renderer接口，输出可直接交给tview.TextView显示的字符串
package canvas

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/Kevin-Rudy/goaxis/pkg/core"
)

// 线段字符
const (
	horizontalRune = '─'
	verticalRune   = '│'
	crossRune      = '┼'
)

// 宽字符占位标记：宽度为2的字符写入后，右侧格子用它占位
const wideFiller = '\x00'

// Canvas 字符格画布
// 每个格子存一个rune；东亚宽字符占两格，右格用占位标记填充
type Canvas struct {
	width  int
	height int
	cells  [][]rune
}

// New 创建指定尺寸的画布
func New(width, height int) *Canvas {
	c := &Canvas{}
	c.Resize(width, height)
	return c
}

// Resize 调整画布尺寸并清空内容
func (c *Canvas) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	c.width = width
	c.height = height
	c.cells = make([][]rune, height)
	for y := range c.cells {
		c.cells[y] = make([]rune, width)
		for x := range c.cells[y] {
			c.cells[y][x] = ' '
		}
	}
}

// Width 返回画布宽度
func (c *Canvas) Width() int {
	return c.width
}

// Height 返回画布高度
func (c *Canvas) Height() int {
	return c.height
}

// Clear 清空画布
func (c *Canvas) Clear() {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = ' '
		}
	}
}

// TextExtent 返回文本占用的格数
// 使用runewidth测量，东亚宽字符（如中文月名）按两格计算
func (c *Canvas) TextExtent(text string) int {
	return runewidth.StringWidth(text)
}

// DrawLine 绘制水平或垂直线段（其他方向忽略）
// 与已有线段垂直相交的格子绘制交叉字符
func (c *Canvas) DrawLine(x1, y1, x2, y2 int) {
	switch {
	case y1 == y2:
		if x1 > x2 {
			x1, x2 = x2, x1
		}
		for x := x1; x <= x2; x++ {
			c.setLineRune(x, y1, horizontalRune)
		}
	case x1 == x2:
		if y1 > y2 {
			y1, y2 = y2, y1
		}
		for y := y1; y <= y2; y++ {
			c.setLineRune(x1, y, verticalRune)
		}
	}
}

// setLineRune 放置线段字符，处理垂直相交
func (c *Canvas) setLineRune(x, y int, r rune) {
	if !c.inBounds(x, y) {
		return
	}
	existing := c.cells[y][x]
	if (existing == horizontalRune && r == verticalRune) ||
		(existing == verticalRune && r == horizontalRune) ||
		existing == crossRune {
		c.cells[y][x] = crossRune
		return
	}
	c.cells[y][x] = r
}

// DrawText 在锚点(x,y)处绘制文本
// rotated为false时沿行方向书写：左对齐从锚点向右，
// 右对齐以锚点为终点，居中以锚点为中心；
// rotated为true时逐字符竖排，对齐方式作用于列方向
func (c *Canvas) DrawText(text string, x, y int, align core.Align, rotated bool) {
	if rotated {
		c.drawTextVertical(text, x, y, align)
		return
	}

	extent := c.TextExtent(text)
	switch align {
	case core.AlignRight:
		x -= extent - 1
	case core.AlignCenter:
		x -= extent / 2
	}

	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		c.setRune(x, y, r)
		if w == 2 {
			c.setRune(x+1, y, wideFiller)
		}
		x += w
	}
}

// drawTextVertical 竖排书写：每个字符占一行
func (c *Canvas) drawTextVertical(text string, x, y int, align core.Align) {
	runes := []rune(text)
	switch align {
	case core.AlignRight:
		y -= len(runes) - 1
	case core.AlignCenter:
		y -= len(runes) / 2
	}

	for i, r := range runes {
		c.setRune(x, y+i, r)
		if runewidth.RuneWidth(r) == 2 {
			c.setRune(x+1, y+i, wideFiller)
		}
	}
}

// setRune 边界检查后写入单个字符
func (c *Canvas) setRune(x, y int, r rune) {
	if c.inBounds(x, y) {
		c.cells[y][x] = r
	}
}

// inBounds 判断坐标是否在画布内
func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// String 把画布内容拼接为多行字符串
// 宽字符占位格被跳过，保证每行显示宽度一致
func (c *Canvas) String() string {
	lines := make([]string, c.height)
	var sb strings.Builder
	for y := 0; y < c.height; y++ {
		sb.Reset()
		for x := 0; x < c.width; x++ {
			r := c.cells[y][x]
			if r == wideFiller {
				continue
			}
			sb.WriteRune(r)
		}
		lines[y] = strings.TrimRight(sb.String(), " ")
	}
	return strings.Join(lines, "\n")
}
