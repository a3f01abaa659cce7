// Package term 把模拟快照栅格化为终端字符网格，并把终端输入翻译为模拟事件
//
// Canvas 是纯内存结构，不依赖具体终端；cmd/cannon-term 负责把它刷到 tcell 屏幕上。
package term

import (
	"image/color"
	"math"
)

// Cell 一个字符格，Rune 为 0 表示空白
type Cell struct {
	Rune  rune
	Color color.RGBA
}

// Canvas 字符网格，附带世界坐标到格子坐标的缩放
type Canvas struct {
	Cols, Rows int

	width, height float64 // 世界尺寸（像素）
	cells         []Cell
}

// NewCanvas 创建 cols×rows 的网格，映射 width×height 像素的世界
func NewCanvas(cols, rows, width, height int) *Canvas {
	c := &Canvas{width: float64(width), height: float64(height)}
	c.Resize(cols, rows)
	return c
}

// Resize 调整网格尺寸并清空内容
func (c *Canvas) Resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	c.Cols, c.Rows = cols, rows
	if cap(c.cells) >= cols*rows {
		c.cells = c.cells[:cols*rows]
	} else {
		c.cells = make([]Cell, cols*rows)
	}
	c.Clear()
}

// Clear 清空所有格子
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = Cell{}
	}
}

// Set 写入一个格子，越界时忽略
func (c *Canvas) Set(col, row int, r rune, clr color.RGBA) {
	if col < 0 || row < 0 || col >= c.Cols || row >= c.Rows {
		return
	}
	c.cells[row*c.Cols+col] = Cell{Rune: r, Color: clr}
}

// At 读取一个格子，越界时返回空格子
func (c *Canvas) At(col, row int) Cell {
	if col < 0 || row < 0 || col >= c.Cols || row >= c.Rows {
		return Cell{}
	}
	return c.cells[row*c.Cols+col]
}

// Text 从 (col, row) 开始写一行文本，超出右边界的部分被截断
func (c *Canvas) Text(col, row int, s string, clr color.RGBA) {
	for _, r := range s {
		c.Set(col, row, r, clr)
		col++
	}
}

// ToCell 世界坐标转格子坐标
func (c *Canvas) ToCell(x, y float64) (col, row int) {
	if c.width <= 0 || c.height <= 0 {
		return -1, -1
	}
	col = int(math.Floor(x * float64(c.Cols) / c.width))
	row = int(math.Floor(y * float64(c.Rows) / c.height))
	return col, row
}

// ToWorld 格子中心对应的世界坐标
func (c *Canvas) ToWorld(col, row int) (x, y float64) {
	if c.Cols == 0 || c.Rows == 0 {
		return 0, 0
	}
	x = (float64(col) + 0.5) * c.width / float64(c.Cols)
	y = (float64(row) + 0.5) * c.height / float64(c.Rows)
	return x, y
}

// Plot 按世界坐标写入一个格子
func (c *Canvas) Plot(x, y float64, r rune, clr color.RGBA) {
	col, row := c.ToCell(x, y)
	c.Set(col, row, r, clr)
}
