// cmd/reefctl/root/db.go
package root

import (
	"context"

	"go-reef-survivors/internal/app"
	"go-reef-survivors/internal/config"
	"go-reef-survivors/internal/logging"
)

// openContext открывает профиль. cleanup сохраняет его и закрывает базу.
func openContext(ctx context.Context, opts *options) (*app.Context, func(), error) {
	rt, err := config.LoadRuntime()
	if err != nil {
		return nil, nil, err
	}
	if opts.dbPath != "" {
		rt.DBPath = opts.dbPath
	}
	if opts.content != "" {
		rt.Content = opts.content
	}
	if opts.logLevel != "" {
		rt.LogLevel = opts.logLevel
	}
	if opts.seed != 0 {
		rt.Seed = opts.seed
	}
	log := logging.New(rt.LogLevel, rt.LogPretty)

	c, err := app.NewContext(ctx, rt, log)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := c.Close(ctx); err != nil {
			log.Error().Err(err).Msg("close profile")
		}
	}
	return c, cleanup, nil
}
