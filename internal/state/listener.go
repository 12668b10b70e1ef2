// internal/state/listener.go
package state

import (
	"steering-box/internal/event"
	"steering-box/internal/input"
)

// InputListener переводит события ввода в вызовы EventHandler
type InputListener struct {
	handler EventHandler
}

// NewInputListener создаёт слушателя и подписывает его на события органов управления
func NewInputListener(handler EventHandler, dispatcher *event.Dispatcher) *InputListener {
	l := &InputListener{handler: handler}
	dispatcher.Subscribe(event.ControlPressed, l)
	dispatcher.Subscribe(event.ControlReleased, l)
	return l
}

func (l *InputListener) OnEvent(e event.Event) {
	c, ok := e.Data.(input.Control)
	if !ok {
		return
	}
	switch e.Type {
	case event.ControlPressed:
		l.handler.OnKeyDown(c)
	case event.ControlReleased:
		l.handler.OnKeyUp(c)
	}
}
