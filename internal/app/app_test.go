package app

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"go-reef-survivors/internal/component"
	"go-reef-survivors/internal/config"
	"go-reef-survivors/internal/event"
	"go-reef-survivors/internal/meta"
	"go-reef-survivors/internal/storage"

	"github.com/rs/zerolog"
)

type recorder struct {
	got []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.got = append(r.got, e)
}

func TestNewGameUnknownCharacter(t *testing.T) {
	c := NewMemoryContext(nil, 1, zerolog.Nop())
	if _, err := NewGame(c, "kraken"); !errors.Is(err, ErrUnknownCharacter) {
		t.Fatalf("err = %v, want ErrUnknownCharacter", err)
	}
}

func TestNewGameUsesUpgrades(t *testing.T) {
	c := NewMemoryContext(nil, 1, zerolog.Nop())
	c.Ledger.SetLevel(meta.Health, 4)
	g, err := NewGame(c, "diver")
	if err != nil {
		t.Fatal(err)
	}
	if got := g.PlayerSystem.Stats().MaxHealth; got != 125 {
		t.Fatalf("max health = %v, want 125", got)
	}
	if g.ECS.Wave == nil || g.ECS.Wave.Index != 0 {
		t.Fatal("first wave not prepared")
	}
}

func TestGameLoopSpawnsAndFights(t *testing.T) {
	c := NewMemoryContext(nil, 42, zerolog.Nop())
	res, g, err := Simulate(context.Background(), c, SimOptions{Duration: 30})
	if err != nil {
		t.Fatal(err)
	}
	if res == nil || res.TimeSurvived <= 0 {
		t.Fatalf("result = %+v", res)
	}
	if g.WaveSpawner.EnemiesAlive == 0 && res.Kills == 0 {
		t.Fatal("no enemies were spawned in 30 seconds")
	}
	if len(g.ECS.Chunks) == 0 {
		t.Fatal("terrain not generated")
	}
}

func TestPlayerDeathRecordsRun(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryContext(nil, 3, zerolog.Nop())
	g, err := NewGame(c, "diver")
	if err != nil {
		t.Fatal(err)
	}
	g.PlayerSystem.AddGold(12)
	g.Update(0.5)
	g.PlayerSystem.TakeDamage(1000, 0)

	if g.SessionSystem.State() != component.GameOver {
		t.Fatalf("state = %v", g.SessionSystem.State())
	}
	rec := g.Record()
	if rec == nil || rec.Survived || rec.GoldEarned != 12 || rec.Character != "diver" || rec.ID == "" {
		t.Fatalf("record = %+v", rec)
	}
	runs, _ := c.Runs.Recent(ctx, 5)
	if len(runs) != 1 {
		t.Fatalf("stored runs = %d", len(runs))
	}
	saved, err := storage.LoadProfile(ctx, c.Store)
	if err != nil || saved.Currency != 12 {
		t.Fatalf("saved profile = %+v, %v", saved, err)
	}

	// после конца забега кадры ничего не меняют
	before := g.ECS.GameTime
	g.Update(1)
	if g.ECS.GameTime != before {
		t.Fatal("game kept running after game over")
	}
}

func TestBridgesForwardServiceChanges(t *testing.T) {
	c := NewMemoryContext(nil, 3, zerolog.Nop())
	g, err := NewGame(c, "diver")
	if err != nil {
		t.Fatal(err)
	}
	rec := &recorder{}
	g.EventDispatcher.SubscribeAll(rec, event.CurrencyChanged, event.PollutionChanged)

	c.Wallet.Add(5)
	c.Pollution.Decrease(10)
	if len(rec.got) != 2 || rec.got[0].Data.(int) != 5 || rec.got[1].Data.(float64) != 90 {
		t.Fatalf("events = %+v", rec.got)
	}

	if err := g.Quit(context.Background()); err != nil {
		t.Fatal(err)
	}
	c.Wallet.Add(1)
	if len(rec.got) != 2 {
		t.Fatal("bridge still active after quit")
	}
}

func TestPauseSavesAndFreezes(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryContext(nil, 3, zerolog.Nop())
	g, err := NewGame(c, "diver")
	if err != nil {
		t.Fatal(err)
	}
	c.Wallet.Add(30)
	if !g.Pause(ctx) {
		t.Fatal("pause rejected")
	}
	if p, _ := storage.LoadProfile(ctx, c.Store); p.Currency != 30 {
		t.Fatalf("profile not saved on pause: %+v", p)
	}
	g.Update(1)
	if g.SessionSystem.Elapsed() != 0 {
		t.Fatal("paused game advanced")
	}
	if !g.Resume() {
		t.Fatal("resume rejected")
	}
	g.Update(config.FixedTick)
	if g.SessionSystem.Elapsed() == 0 {
		t.Fatal("resumed game did not advance")
	}
}

func TestContextPersistsWithSQLite(t *testing.T) {
	ctx := context.Background()
	rt := config.Runtime{DBPath: filepath.Join(t.TempDir(), "reef.db"), Seed: 9}

	c, err := NewContext(ctx, rt, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	c.Wallet.Add(500)
	if err := c.BuyUpgrade(ctx, meta.Strength); err != nil {
		t.Fatalf("BuyUpgrade: %v", err)
	}
	c.Pollution.Set(42)
	if err := c.Close(ctx); err != nil {
		t.Fatalf("Close: %v", err)
	}

	c, err = NewContext(ctx, rt, zerolog.Nop())
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer c.Close(ctx)
	if c.Wallet.Balance() != 400 || c.Ledger.Points(meta.Strength) != 1 || c.Pollution.Level() != 42 {
		t.Fatalf("reloaded profile = %+v", c.Profile())
	}

	if err := c.ResetProgress(ctx); err != nil {
		t.Fatal(err)
	}
	if c.Wallet.Balance() != 0 || c.Pollution.Level() != 100 {
		t.Fatalf("after reset = %+v", c.Profile())
	}
}
