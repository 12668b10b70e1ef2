// internal/config/config.go
package config

import (
	"image/color"
	"math"
)

const (
	ScreenWidth  = 1600 // логическое разрешение, пиксели
	ScreenHeight = 1600
	WindowScale  = 0.5 // окно вдвое меньше логического экрана
	WindowTitle  = "Steering Box"

	TicksPerSecond = 60

	BoxWidth  = 100.0 // пиксели
	BoxLength = 200.0
	BoxTipLen = 20.0 // отступ прямоугольника от точки поворота

	// Точка поворота прямоугольника на экране
	BoxPivotX = ScreenWidth / 2
	BoxPivotY = ScreenHeight / 3

	TurnRate = 110.0 / 180.0 * math.Pi // радианы в секунду
	MaxAngle = 75.0 / 180.0 * math.Pi  // радианы

	HUDOffsetX = 20
	HUDOffsetY = 30

	OutlineWidth = 3.0

	IndicatorOffsetX = 40
	IndicatorRadius  = 14.0

	LogLevel = "info"
)

var (
	BackgroundColor = color.RGBA{0, 0, 0, 255}
	BoxColor        = color.RGBA{255, 0, 255, 255} // пурпурный, как в исходной версии
	HUDTextColor    = color.RGBA{240, 240, 240, 255}
	IndicatorStroke = color.RGBA{240, 240, 240, 255}

	TurnNeutralColor = color.RGBA{70, 130, 180, 220}
	TurnLeftColor    = color.RGBA{50, 205, 50, 255}
	TurnRightColor   = color.RGBA{220, 60, 60, 220}
)
