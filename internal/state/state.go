// internal/state/state.go
package state

import (
	"image/color"

	"steering-box/internal/input"
	"steering-box/pkg/geom"
)

// EventHandler — контракт, через который любой внешний цикл управляет симуляцией.
// Цикл вызывает Update (ноль или несколько раз), затем Draw, на одном потоке.
type EventHandler interface {
	Update(now float64)
	Draw(canvas Canvas)
	OnKeyDown(c input.Control)
	OnKeyUp(c input.Control)
}

// Canvas — примитивы рисования, которые нужны состоянию от рендерера
type Canvas interface {
	Clear(c color.Color)
	FillQuad(q geom.Quad, c color.Color)
	Text(s string, x, y int, c color.Color)
	FillCircle(x, y, radius float32, fill, stroke color.Color)
}
