// internal/state/sim_state.go
package state

import (
	"fmt"

	"steering-box/internal/config"
	"steering-box/internal/input"
	"steering-box/internal/steering"
	"steering-box/internal/ui"
	"steering-box/internal/utils"
	"steering-box/pkg/geom"

	"github.com/rs/zerolog"
)

// Убеждаемся, что SimState соответствует интерфейсу EventHandler
var _ EventHandler = (*SimState)(nil)

// SimState — состояние симуляции: модель руля и её отрисовка
type SimState struct {
	model     *steering.Model
	box       geom.Box
	pivot     geom.Point
	indicator *ui.TurnIndicator
	now       float64 // время последнего Update
	logger    zerolog.Logger
}

func NewSimState(logger zerolog.Logger) *SimState {
	indicator := ui.NewTurnIndicator(
		float32(config.ScreenWidth-config.IndicatorOffsetX),
		float32(config.IndicatorOffsetX),
		float32(config.IndicatorRadius),
	)

	return &SimState{
		model: steering.NewModel(),
		box: geom.Box{
			Width:  config.BoxWidth,
			Length: config.BoxLength,
			Tip:    config.BoxTipLen,
		},
		pivot:     geom.Point{X: config.BoxPivotX, Y: config.BoxPivotY},
		indicator: indicator,
		logger:    logger,
	}
}

// Heading возвращает текущий угол руля
func (s *SimState) Heading() float64 {
	return s.model.Heading()
}

// TurnInput возвращает направление, которое сейчас держит игрок
func (s *SimState) TurnInput() input.Direction {
	return s.model.TurnInput()
}

func (s *SimState) Update(now float64) {
	s.now = now
	s.model.Tick(now)
	s.indicator.Observe(s.model.TurnInput(), now)
}

func (s *SimState) OnKeyDown(c input.Control) {
	if !c.IsTurn() {
		return
	}
	s.model.SetTurnInput(c.Direction())
	s.logger.Debug().Stringer("control", c).Stringer("turn", c.Direction()).Msg("turn pressed")
}

// OnKeyUp сбрасывает поворот при отпускании любой из клавиш поворота,
// даже если вторая ещё зажата
func (s *SimState) OnKeyUp(c input.Control) {
	if !c.IsTurn() {
		return
	}
	s.model.SetTurnInput(input.Neutral)
	s.logger.Debug().Stringer("control", c).Float64("heading", s.model.Heading()).Msg("turn released")
}

func (s *SimState) Draw(canvas Canvas) {
	canvas.Clear(config.BackgroundColor)
	canvas.FillQuad(s.box.Quad(s.pivot, s.model.Heading()), config.BoxColor)

	hud := fmt.Sprintf("Heading: %+.1f deg  Turn: %s", utils.RadToDeg(s.model.Heading()), s.model.TurnInput())
	canvas.Text(hud, config.HUDOffsetX, config.HUDOffsetY, config.HUDTextColor)
	s.indicator.Draw(canvas, s.now)
}
