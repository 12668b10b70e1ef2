// internal/steering/model.go
package steering

import (
	"steering-box/internal/config"
	"steering-box/internal/input"
	"steering-box/internal/utils"
)

// Model — состояние руля: текущий угол, нажатое направление и время последнего тика
type Model struct {
	heading  float64 // радианы, всегда в [-MaxAngle, MaxAngle]
	turn     input.Direction
	lastTick float64 // абсолютное время симуляции, секунды
}

// NewModel создаёт модель с нулевым углом и нейтральным вводом
func NewModel() *Model {
	return &Model{turn: input.Neutral}
}

// SetTurnInput задаёт направление поворота
func (m *Model) SetTurnInput(d input.Direction) {
	m.turn = d
}

// TurnInput возвращает текущее направление поворота
func (m *Model) TurnInput() input.Direction {
	return m.turn
}

// Heading возвращает текущий угол в радианах
func (m *Model) Heading() float64 {
	return m.heading
}

// Advance поворачивает руль на elapsed секунд с постоянной угловой скоростью
func (m *Model) Advance(elapsed float64) {
	if m.turn == input.Neutral {
		return
	}
	m.heading += config.TurnRate * elapsed * float64(m.turn)
	m.heading = utils.Clamp(m.heading, -config.MaxAngle, config.MaxAngle)
}

// Tick продвигает модель до момента now, интегрируя разницу с прошлым тиком.
// Время, ушедшее назад (сброс часов), только пересинхронизирует отметку.
func (m *Model) Tick(now float64) {
	elapsed := now - m.lastTick
	m.lastTick = now
	if elapsed < 0 {
		return
	}
	m.Advance(elapsed)
}
