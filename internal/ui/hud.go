// internal/ui/hud.go
package ui

import (
	"go-reef-survivors/internal/config"
	"go-reef-survivors/internal/defs"
	"go-reef-survivors/internal/event"
	"go-reef-survivors/internal/inventory"
	"go-reef-survivors/internal/stats"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// HUDState — всё, что HUD знает о забеге. Заполняется из событий и Sync.
type HUDState struct {
	Stats      stats.RuntimeStats
	Level      int
	Experience int
	ExpCap     int
	Kills      int
	RunGold    int
	Currency   int
	Pets       int
	MaxPets    int
	Wave       int // с единицы
	WaveName   string
	Pollution  float64
}

// HUD слушает события игры и рисует индикаторы поверх мира.
type HUD struct {
	state     HUDState
	health    *PlayerHealthIndicator
	level     *PlayerLevelIndicator
	pollution *PollutionIndicator
	wave      *WaveIndicator
	inventory *InventoryStrip
	ShowStats bool
}

func NewHUD(eventDispatcher *event.Dispatcher, lib *defs.Library, currency int, pollution float64) *HUD {
	h := &HUD{
		state: HUDState{
			Level:     1,
			Currency:  currency,
			MaxPets:   config.MaxPets,
			Wave:      1,
			Pollution: pollution,
		},
		health:    NewPlayerHealthIndicator(40, 5),
		level:     NewPlayerLevelIndicator(0, 0, config.ScreenWidth, 18),
		pollution: NewPollutionIndicator(config.ScreenWidth-170, 44, 10, pollution),
		wave:      NewWaveIndicator(config.ScreenWidth/2, 40),
		inventory: NewInventoryStrip(10, 28, lib),
	}
	eventDispatcher.SubscribeAll(h,
		event.StatChanged,
		event.ExpChanged,
		event.LevelUp,
		event.PlayerDamaged,
		event.EnemyKilled,
		event.PickupCollected,
		event.CurrencyChanged,
		event.PollutionChanged,
		event.PetSummoned,
		event.WaveAdvanced,
	)
	return h
}

func (h *HUD) State() HUDState {
	return h.state
}

// Sync подтягивает характеристики и опыт, разосланные до подписки HUD.
func (h *HUD) Sync(s stats.RuntimeStats, p *stats.Progression) {
	h.state.Stats = s
	if p != nil {
		h.state.Level, h.state.Experience, h.state.ExpCap = p.Level, p.Experience, p.ExperienceCap
	}
}

func (h *HUD) OnEvent(e event.Event) {
	switch e.Type {
	case event.StatChanged:
		if s, ok := e.Data.(stats.RuntimeStats); ok {
			h.state.Stats = s
		}
	case event.ExpChanged:
		if d, ok := e.Data.(event.ExpData); ok {
			h.state.Experience, h.state.ExpCap, h.state.Level = d.Experience, d.Cap, d.Level
		}
	case event.LevelUp:
		if d, ok := e.Data.(event.LevelUpData); ok {
			h.state.Level = d.Level
		}
	case event.PlayerDamaged:
		if d, ok := e.Data.(event.DamageData); ok {
			h.state.Stats.CurrentHealth = d.Health
		}
		h.health.Hit()
	case event.EnemyKilled:
		h.state.Kills++
	case event.PickupCollected:
		if d, ok := e.Data.(event.PickupData); ok && d.Kind == string(defs.PickupGold) {
			h.state.RunGold += int(d.Amount)
		}
	case event.CurrencyChanged:
		if n, ok := e.Data.(int); ok {
			h.state.Currency = n
		}
	case event.PollutionChanged:
		if level, ok := e.Data.(float64); ok {
			h.state.Pollution = level
			h.pollution.SetLevel(level)
		}
	case event.PetSummoned:
		if d, ok := e.Data.(event.PetData); ok {
			h.state.Pets, h.state.MaxPets = d.Count, d.Max
		}
	case event.WaveAdvanced:
		if d, ok := e.Data.(event.WaveData); ok {
			h.state.Wave, h.state.WaveName = d.Index+1, d.Name
		}
	}
}

func (h *HUD) Update(deltaTime float64) {
	h.health.Update(deltaTime)
	h.pollution.Update(deltaTime)
}

// Draw рисует HUD. playerX/playerY — экранные координаты игрока.
func (h *HUD) Draw(screen *ebiten.Image, remaining float64, inv *inventory.Inventory, playerX, playerY float32) {
	s := h.state
	h.health.Draw(screen, playerX, playerY+config.PlayerRadius*config.PixelsPerUnit+6, s.Stats.CurrentHealth, s.Stats.MaxHealth)
	h.level.Draw(screen, s.Level, s.Experience, s.ExpCap)
	h.wave.Draw(screen, remaining, s.Wave, s.WaveName)
	h.pollution.Draw(screen)
	if inv != nil {
		h.inventory.Draw(screen, inv)
	}

	x, y := config.ScreenWidth-170, 74
	for _, line := range []string{
		HealthCounter(s.Stats.CurrentHealth, s.Stats.MaxHealth),
		KillCounter(s.Kills),
		CurrencyLabel(s.Currency),
		PetCounter(s.Pets, s.MaxPets),
	} {
		text.Draw(screen, line, DefaultFace, x, y, config.TextLightColor)
		y += lineHeight
	}
	if h.ShowStats {
		y += lineHeight
		for _, line := range StatLines(s.Stats) {
			text.Draw(screen, line, DefaultFace, x, y, config.TextLightColor)
			y += lineHeight
		}
	}
}
