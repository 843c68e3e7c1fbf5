// cmd/game/main.go
package main

import (
	"context"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"go-reef-survivors/internal/app"
	"go-reef-survivors/internal/audio"
	"go-reef-survivors/internal/config"
	"go-reef-survivors/internal/logging"
	"go-reef-survivors/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	rt, err := config.LoadRuntime()
	if err != nil {
		bootLog := logging.New("info", true)
		bootLog.Fatal().Err(err).Msg("bad runtime config")
	}
	log := logging.New(rt.LogLevel, rt.LogPretty)

	if rt.PprofAddr != "" {
		go func() {
			log.Info().Str("addr", rt.PprofAddr).Msg("pprof listening")
			log.Warn().Err(http.ListenAndServe(rt.PprofAddr, nil)).Msg("pprof stopped")
		}()
	}
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	ctx := context.Background()
	c, err := app.NewContext(ctx, rt, log)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot open profile")
	}

	sound := audio.NewSoundManager(log)
	if rt.Audio {
		if err := sound.Initialize(); err != nil {
			log.Warn().Err(err).Msg("audio disabled")
		}
	}

	svc := &state.Services{Context: c, Sound: sound, Log: log, Character: rt.Character}
	sm := state.NewStateMachine()
	sm.SetState(startScene(sm, svc, rt.StartScene, log))

	game := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Reef Survivors")
	runErr := ebiten.RunGame(game)

	sound.Cleanup()
	if err := c.Close(ctx); err != nil {
		log.Error().Err(err).Msg("close profile")
	}
	if runErr != nil {
		log.Error().Err(runErr).Msg("game loop failed")
		os.Exit(1)
	}
}

// startScene выбирает первое состояние. Если забег не стартовал, открываем меню.
func startScene(sm *state.StateMachine, svc *state.Services, scene string, log zerolog.Logger) state.State {
	switch scene {
	case "game":
		gs, err := state.NewGameState(sm, svc)
		if err == nil {
			return gs
		}
		log.Error().Err(err).Msg("cannot start run, falling back to menu")
	case "shop":
		return state.NewShopState(sm, svc)
	}
	return state.NewMenuState(sm, svc)
}
