// internal/app/context.go
package app

import (
	"context"
	"errors"
	"fmt"

	"go-reef-survivors/internal/config"
	"go-reef-survivors/internal/defs"
	"go-reef-survivors/internal/meta"
	"go-reef-survivors/internal/storage"
	"go-reef-survivors/internal/utils"

	"github.com/rs/zerolog"
)

// Context — сервисы, которые живут дольше одного забега: хранилище, прокачка,
// кошелёк, загрязнение, магазин и контент.
type Context struct {
	Store     storage.Store
	Runs      storage.RunLog
	Library   *defs.Library
	Ledger    *meta.Ledger
	Wallet    *meta.Wallet
	Pollution *meta.PollutionMeter
	Shop      *meta.Shop
	Rng       *utils.PRNGService
	Log       zerolog.Logger
}

// NewContext открывает базу по пути из окружения, грузит контент и профиль игрока.
func NewContext(ctx context.Context, rt config.Runtime, log zerolog.Logger) (*Context, error) {
	lib, err := loadLibrary(rt.Content, log)
	if err != nil {
		return nil, err
	}
	db, err := storage.OpenSQLite(ctx, rt.DBPath)
	if err != nil {
		return nil, err
	}
	store := storage.NewSQLiteStore(db)
	c := newContext(store, storage.NewRunRepo(db), lib, rt.Seed, log)
	if err := c.Load(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}
	c.Log.Info().Str("db", rt.DBPath).Int64("seed", c.Rng.Seed()).Msg("context ready")
	return c, nil
}

// NewMemoryContext — контекст без диска, для тестов и симуляций.
func NewMemoryContext(lib *defs.Library, seed int64, log zerolog.Logger) *Context {
	if lib == nil {
		lib = defs.Default()
	}
	return newContext(storage.NewMemoryStore(), storage.NewMemoryRuns(), lib, seed, log)
}

func newContext(store storage.Store, runs storage.RunLog, lib *defs.Library, seed int64, log zerolog.Logger) *Context {
	ledger := meta.NewLedger(log)
	wallet := meta.NewWallet(0)
	return &Context{
		Store:     store,
		Runs:      runs,
		Library:   lib,
		Ledger:    ledger,
		Wallet:    wallet,
		Pollution: meta.NewPollutionMeter(config.PollutionMax),
		Shop:      meta.NewShop(ledger, wallet, log),
		Rng:       utils.NewPRNGService(seed),
		Log:       log,
	}
}

func loadLibrary(path string, log zerolog.Logger) (*defs.Library, error) {
	if path == "" {
		return defs.Default(), nil
	}
	lib, err := defs.LoadContent(path)
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	for _, p := range lib.Problems() {
		log.Warn().Str("content", path).Msg(p)
	}
	return lib, nil
}

// Load читает профиль из хранилища в живые сервисы.
func (c *Context) Load(ctx context.Context) error {
	p, err := storage.LoadProfile(ctx, c.Store)
	if err != nil {
		return err
	}
	p.Apply(c.Ledger, c.Wallet, c.Pollution)
	c.Log.Debug().Int("currency", p.Currency).Ints("upgrades", p.Upgrades[:]).
		Float64("pollution", p.Pollution).Msg("profile loaded")
	return nil
}

// Save записывает текущее состояние сервисов.
func (c *Context) Save(ctx context.Context) error {
	return storage.SaveProfile(ctx, c.Store, c.Profile())
}

func (c *Context) Profile() storage.Profile {
	return storage.ProfileFrom(c.Ledger, c.Wallet, c.Pollution)
}

// Offers — витрина магазина прокачки.
func (c *Context) Offers() []meta.Offer {
	return c.Shop.Offers()
}

// BuyUpgrade покупает уровень прокачки и сразу сохраняет профиль.
func (c *Context) BuyUpgrade(ctx context.Context, cat meta.Category) error {
	if err := c.Shop.Buy(cat); err != nil {
		return err
	}
	return c.Save(ctx)
}

// ResetProgress стирает профиль и возвращает сервисы к начальному состоянию.
func (c *Context) ResetProgress(ctx context.Context) error {
	if err := storage.ResetProfile(ctx, c.Store); err != nil {
		return err
	}
	storage.DefaultProfile().Apply(c.Ledger, c.Wallet, c.Pollution)
	c.Log.Info().Msg("progress reset")
	return nil
}

// Close сохраняет профиль и закрывает хранилище.
func (c *Context) Close(ctx context.Context) error {
	return errors.Join(c.Save(ctx), c.Store.Close())
}
