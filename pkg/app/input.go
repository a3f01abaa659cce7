package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/firesim/pkg/config"
	"github.com/decker502/firesim/pkg/sim"
)

// keyDownBindings 按键按下时产生的事件
var keyDownBindings = map[ebiten.Key]sim.Event{
	ebiten.KeySpace:        sim.FireHold(true),
	ebiten.KeyEnter:        sim.Fire(),
	ebiten.KeyArrowLeft:    sim.AimNudge(-config.AimNudgeStep),
	ebiten.KeyArrowUp:      sim.AimNudge(-config.AimNudgeStep),
	ebiten.KeyArrowRight:   sim.AimNudge(config.AimNudgeStep),
	ebiten.KeyArrowDown:    sim.AimNudge(config.AimNudgeStep),
	ebiten.KeyD:            sim.ToggleDebug(),
	ebiten.KeyBracketLeft:  sim.WindAdjust(-config.WindStep),
	ebiten.KeyBracketRight: sim.WindAdjust(config.WindStep),
	ebiten.KeyR:            sim.Reset(),
}

// keyUpBindings 按键松开时产生的事件
var keyUpBindings = map[ebiten.Key]sim.Event{
	ebiten.KeySpace: sim.FireHold(false),
}

// InputMapper 把 ebiten 输入翻译为模拟事件
type InputMapper struct {
	lastX, lastY int
	hasCursor    bool

	pressed  []ebiten.Key
	released []ebiten.Key
}

// translateKeys 根据本帧按下和松开的键生成事件，顺序与输入一致
func translateKeys(pressed, released []ebiten.Key) []sim.Event {
	var events []sim.Event
	for _, k := range pressed {
		if ev, ok := keyDownBindings[k]; ok {
			events = append(events, ev)
		}
	}
	for _, k := range released {
		if ev, ok := keyUpBindings[k]; ok {
			events = append(events, ev)
		}
	}
	return events
}

// pointerEvents 鼠标移动时瞄准，点击时开火
func (m *InputMapper) pointerEvents(x, y int, clicked bool) []sim.Event {
	var events []sim.Event
	if !m.hasCursor || x != m.lastX || y != m.lastY {
		events = append(events, sim.PointerMove(float64(x), float64(y)))
		m.lastX, m.lastY = x, y
		m.hasCursor = true
	}
	if clicked {
		events = append(events, sim.Click(float64(x), float64(y)))
	}
	return events
}

// Poll 读取本帧的键盘、鼠标和触摸输入
func (m *InputMapper) Poll() []sim.Event {
	m.pressed = inpututil.AppendJustPressedKeys(m.pressed[:0])
	m.released = inpututil.AppendJustReleasedKeys(m.released[:0])
	events := translateKeys(m.pressed, m.released)

	x, y := ebiten.CursorPosition()
	clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	events = append(events, m.pointerEvents(x, y, clicked)...)

	// 移动端：触摸即点击开火
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		tx, ty := ebiten.TouchPosition(id)
		events = append(events, sim.Click(float64(tx), float64(ty)))
	}
	return events
}
