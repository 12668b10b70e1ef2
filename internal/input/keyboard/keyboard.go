// internal/input/keyboard/keyboard.go
package keyboard

import (
	"steering-box/internal/event"
	"steering-box/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Binding связывает физическую клавишу с органом управления
type Binding struct {
	Key     ebiten.Key
	Control input.Control
}

// DefaultBindings — A/D как в исходной версии, плюс стрелки
var DefaultBindings = []Binding{
	{Key: ebiten.KeyA, Control: input.ControlTurnLeft},
	{Key: ebiten.KeyArrowLeft, Control: input.ControlTurnLeft},
	{Key: ebiten.KeyD, Control: input.ControlTurnRight},
	{Key: ebiten.KeyArrowRight, Control: input.ControlTurnRight},
}

// Poller опрашивает клавиатуру раз в тик и рассылает события нажатия и отпускания
type Poller struct {
	bindings     []Binding
	dispatcher   *event.Dispatcher
	justPressed  func(ebiten.Key) bool
	justReleased func(ebiten.Key) bool
}

func NewPoller(bindings []Binding, dispatcher *event.Dispatcher) *Poller {
	return &Poller{
		bindings:     bindings,
		dispatcher:   dispatcher,
		justPressed:  inpututil.IsKeyJustPressed,
		justReleased: inpututil.IsKeyJustReleased,
	}
}

// Poll рассылает сначала все отпускания, потом все нажатия, в порядке привязок.
// Так при перекате с A на D в одном тике последней остаётся зажатая D.
func (p *Poller) Poll() {
	for _, b := range p.bindings {
		if p.justReleased(b.Key) {
			p.dispatcher.Dispatch(event.Event{Type: event.ControlReleased, Data: b.Control})
		}
	}
	for _, b := range p.bindings {
		if p.justPressed(b.Key) {
			p.dispatcher.Dispatch(event.Event{Type: event.ControlPressed, Data: b.Control})
		}
	}
}
