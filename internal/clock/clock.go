// internal/clock/clock.go
package clock

import "steering-box/internal/config"

// Fixed — часы симуляции с фиксированным шагом. Абсолютное время
// вычисляется из числа тиков и не расходится с ними.
type Fixed struct {
	rate  int
	ticks uint64
}

// NewFixed создаёт часы на rate тиков в секунду.
// Неположительная частота заменяется на config.TicksPerSecond.
func NewFixed(rate int) *Fixed {
	if rate <= 0 {
		rate = config.TicksPerSecond
	}
	return &Fixed{rate: rate}
}

// Step делает один тик и возвращает новое абсолютное время в секундах
func (c *Fixed) Step() float64 {
	c.ticks++
	return c.Now()
}

// Now — абсолютное время симуляции в секундах
func (c *Fixed) Now() float64 {
	return float64(c.ticks) / float64(c.rate)
}

func (c *Fixed) Ticks() uint64 {
	return c.ticks
}

func (c *Fixed) Rate() int {
	return c.rate
}

// StepDuration — длительность одного тика в секундах
func (c *Fixed) StepDuration() float64 {
	return 1 / float64(c.rate)
}
