package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/decker502/firesim/pkg/config"
	"github.com/decker502/firesim/pkg/sim"
)

// Input 终端输入翻译器
//
// 终端没有按键松开事件，空格改为切换连发；回车沿当前瞄准方向单发。
type Input struct {
	holding     bool
	lastButtons tcell.ButtonMask
	lastCol     int
	lastRow     int
}

// NewInput 创建输入翻译器
func NewInput() *Input {
	return &Input{lastCol: -1, lastRow: -1}
}

// Key 翻译按键，quit 为 true 表示应退出
func (in *Input) Key(key tcell.Key, r rune) (events []sim.Event, quit bool) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return nil, true
	case tcell.KeyLeft, tcell.KeyUp:
		return []sim.Event{sim.AimNudge(-config.AimNudgeStep)}, false
	case tcell.KeyRight, tcell.KeyDown:
		return []sim.Event{sim.AimNudge(config.AimNudgeStep)}, false
	case tcell.KeyEnter:
		return []sim.Event{sim.Fire()}, false
	case tcell.KeyRune:
	default:
		return nil, false
	}

	switch r {
	case 'q', 'Q':
		return nil, true
	case ' ':
		in.holding = !in.holding
		return []sim.Event{sim.FireHold(in.holding)}, false
	case 'd', 'D':
		return []sim.Event{sim.ToggleDebug()}, false
	case '[':
		return []sim.Event{sim.WindAdjust(-config.WindStep)}, false
	case ']':
		return []sim.Event{sim.WindAdjust(config.WindStep)}, false
	case 'r', 'R':
		in.holding = false
		return []sim.Event{sim.FireHold(false), sim.Reset()}, false
	}
	return nil, false
}

// Mouse 翻译鼠标事件：移动到新格子时瞄准，左键按下时开火
func (in *Input) Mouse(c *Canvas, col, row int, buttons tcell.ButtonMask) []sim.Event {
	var events []sim.Event
	x, y := c.ToWorld(col, row)

	if col != in.lastCol || row != in.lastRow {
		in.lastCol, in.lastRow = col, row
		events = append(events, sim.PointerMove(x, y))
	}

	pressed := buttons&tcell.Button1 != 0 && in.lastButtons&tcell.Button1 == 0
	in.lastButtons = buttons
	if pressed {
		events = append(events, sim.Click(x, y))
	}
	return events
}

// Holding 当前是否处于连发状态
func (in *Input) Holding() bool {
	return in.holding
}
