// cmd/game/main.go
package main

import (
	"os"

	"steering-box/internal/clock"
	"steering-box/internal/config"
	"steering-box/internal/event"
	"steering-box/internal/input/keyboard"
	"steering-box/internal/logging"
	"steering-box/internal/state"
	"steering-box/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

type AppGame struct {
	handler state.EventHandler
	clock   *clock.Fixed
	poller  *keyboard.Poller
	canvas  *render.Canvas
}

// Update вызывается ebiten с фиксированной частотой TPS, при отставании несколько раз подряд
func (a *AppGame) Update() error {
	a.poller.Poll()
	a.handler.Update(a.clock.Step())
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	if a.canvas == nil {
		a.canvas = render.NewCanvas(screen, config.OutlineWidth)
	} else {
		a.canvas.SetTarget(screen)
	}
	a.handler.Draw(a.canvas)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func newAppGame(logger zerolog.Logger) *AppGame {
	dispatcher := event.NewDispatcher()
	sim := state.NewSimState(logger)
	state.NewInputListener(sim, dispatcher)

	return &AppGame{
		handler: sim,
		clock:   clock.NewFixed(config.TicksPerSecond),
		poller:  keyboard.NewPoller(keyboard.DefaultBindings, dispatcher),
	}
}

func main() {
	logger, err := logging.New(os.Stderr, config.LogLevel)
	if err != nil {
		fallback := zerolog.New(os.Stderr)
		fallback.Fatal().Err(err).Msg("could not configure logging")
	}

	app := newAppGame(logger)

	ebiten.SetTPS(config.TicksPerSecond)
	ebiten.SetWindowSize(int(config.ScreenWidth*config.WindowScale), int(config.ScreenHeight*config.WindowScale))
	ebiten.SetWindowTitle(config.WindowTitle)

	logger.Info().
		Int("tps", config.TicksPerSecond).
		Int("width", config.ScreenWidth).
		Int("height", config.ScreenHeight).
		Msg("starting simulation")

	if err := ebiten.RunGame(app); err != nil {
		logger.Fatal().Err(err).Msg("could not run game")
	}
}
