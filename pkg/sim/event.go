package sim

import "fmt"

// EventKind 输入事件类型
type EventKind int

const (
	// EventPointerMove 鼠标移动：瞄准指向 (X, Y)
	EventPointerMove EventKind = iota
	// EventClick 鼠标点击：朝 (X, Y) 开火
	EventClick
	// EventFireHold 按下/松开开火键，Down 表示是否按住
	EventFireHold
	// EventAimNudge 微调瞄准角度 Delta（弧度）
	EventAimNudge
	// EventToggleDebug 切换调试覆盖层
	EventToggleDebug
	// EventWindAdjust 风力增减 Delta
	EventWindAdjust
	// EventSetParam 按名称设置参数 Name=Value
	EventSetParam
	// EventReset 清空实体，目标归位
	EventReset
	// EventFire 沿当前瞄准方向单发
	EventFire
)

var eventKindNames = map[EventKind]string{
	EventPointerMove: "PointerMove",
	EventClick:       "Click",
	EventFireHold:    "FireHold",
	EventAimNudge:    "AimNudge",
	EventToggleDebug: "ToggleDebug",
	EventWindAdjust:  "WindAdjust",
	EventSetParam:    "SetParam",
	EventReset:       "Reset",
	EventFire:        "Fire",
}

func (k EventKind) String() string {
	if name, ok := eventKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event 一个输入事件
// 前端把平台输入翻译为 Event，由模拟循环在 tick 之间应用
type Event struct {
	Kind  EventKind
	X, Y  float64 // PointerMove / Click
	Down  bool    // FireHold
	Delta float64 // AimNudge / WindAdjust
	Name  string  // SetParam
	Value string  // SetParam
}

// PointerMove 构造鼠标移动事件
func PointerMove(x, y float64) Event { return Event{Kind: EventPointerMove, X: x, Y: y} }

// Click 构造点击开火事件
func Click(x, y float64) Event { return Event{Kind: EventClick, X: x, Y: y} }

// FireHold 构造开火键事件
func FireHold(down bool) Event { return Event{Kind: EventFireHold, Down: down} }

// AimNudge 构造瞄准微调事件
func AimNudge(delta float64) Event { return Event{Kind: EventAimNudge, Delta: delta} }

// ToggleDebug 构造调试开关事件
func ToggleDebug() Event { return Event{Kind: EventToggleDebug} }

// WindAdjust 构造风力调整事件
func WindAdjust(delta float64) Event { return Event{Kind: EventWindAdjust, Delta: delta} }

// SetParam 构造参数设置事件
func SetParam(name, value string) Event { return Event{Kind: EventSetParam, Name: name, Value: value} }

// Reset 构造重置事件
func Reset() Event { return Event{Kind: EventReset} }

// Fire 构造单发事件
func Fire() Event { return Event{Kind: EventFire} }
