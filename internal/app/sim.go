// internal/app/sim.go
package app

import (
	"context"
	"math"

	"go-reef-survivors/internal/config"
	"go-reef-survivors/internal/system"
	"go-reef-survivors/pkg/geom"
)

// SimOptions — параметры безголового забега.
type SimOptions struct {
	Character string
	Duration  float64 // 0 — до конца сессии
	Step      float64 // 0 — config.FixedTick
	Orbit     float64 // угловая скорость кружения игрока, рад/с
}

// Simulate прогоняет забег без отрисовки: игрок кружит, драфты закрываются первой
// доступной карточкой, статуи активируются при первой возможности.
func Simulate(ctx context.Context, c *Context, opts SimOptions) (*system.RunResult, *Game, error) {
	if opts.Character == "" {
		opts.Character = config.DefaultCharacterID
	}
	if opts.Step <= 0 {
		opts.Step = config.FixedTick
	}
	if opts.Duration <= 0 {
		opts.Duration = config.SessionDuration
	}
	if opts.Orbit == 0 {
		opts.Orbit = 0.5
	}

	g, err := NewGame(c, opts.Character)
	if err != nil {
		return nil, nil, err
	}
	defer func() {
		if err := g.Quit(ctx); err != nil {
			c.Log.Error().Err(err).Msg("save after simulation failed")
		}
	}()

	for t := 0.0; t < opts.Duration && g.Result() == nil; t += opts.Step {
		if err := ctx.Err(); err != nil {
			return nil, g, err
		}
		if draft := g.DraftSystem.Current(); draft != nil {
			if err := g.SelectDraft(firstActive(draft)); err != nil {
				c.Log.Warn().Err(err).Msg("simulated draft pick failed")
			}
		}
		angle := t * opts.Orbit
		g.SetInput(geom.V(-math.Sin(angle), math.Cos(angle)))
		g.Interact()
		g.Update(opts.Step)
	}
	if res := g.Result(); res != nil {
		return res, g, nil
	}
	return &system.RunResult{
		TimeSurvived: g.SessionSystem.Elapsed(),
		Kills:        g.SessionSystem.Kills(),
		Reason:       "simulation stopped",
	}, g, nil
}

func firstActive(d *system.Draft) int {
	for i, e := range d.Entries {
		if e.Active {
			return i
		}
	}
	return 0
}
