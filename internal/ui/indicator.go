// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"

	"steering-box/internal/config"
	"steering-box/internal/input"
)

// CircleDrawer — то, что индикатору нужно от холста
type CircleDrawer interface {
	FillCircle(x, y, radius float32, fill, stroke color.Color)
}

// TurnIndicator — кружок в углу экрана, цвет которого показывает направление поворота.
// При смене направления он коротко «вспыхивает», увеличиваясь.
type TurnIndicator struct {
	X, Y       float32
	Radius     float32
	current    input.Direction
	lastChange float64 // время симуляции последней смены направления
}

func NewTurnIndicator(x, y, radius float32) *TurnIndicator {
	return &TurnIndicator{
		X:          x,
		Y:          y,
		Radius:     radius,
		current:    input.Neutral,
		lastChange: math.Inf(-1),
	}
}

// Observe запоминает направление и момент его смены
func (i *TurnIndicator) Observe(d input.Direction, now float64) {
	if d == i.current {
		return
	}
	i.current = d
	i.lastChange = now
}

// CurrentRadius возвращает радиус с учётом затухающей вспышки
func (i *TurnIndicator) CurrentRadius(now float64) float32 {
	elapsed := now - i.lastChange
	if elapsed < 0 {
		elapsed = 0
	}
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	return i.Radius * float32(scale)
}

// Color возвращает цвет для текущего направления
func (i *TurnIndicator) Color() color.RGBA {
	switch i.current {
	case input.TurnLeft:
		return config.TurnLeftColor
	case input.TurnRight:
		return config.TurnRightColor
	}
	return config.TurnNeutralColor
}

// Draw отрисовывает индикатор
func (i *TurnIndicator) Draw(c CircleDrawer, now float64) {
	c.FillCircle(i.X, i.Y, i.CurrentRadius(now), i.Color(), config.IndicatorStroke)
}
