package ui

import (
	"testing"

	"go-reef-survivors/internal/config"
	"go-reef-survivors/internal/defs"
	"go-reef-survivors/internal/event"
	"go-reef-survivors/internal/inventory"
	"go-reef-survivors/internal/stats"
	"go-reef-survivors/internal/system"
)

func TestHUDTracksEvents(t *testing.T) {
	d := event.NewDispatcher()
	h := NewHUD(d, defs.Default(), 10, 80)

	d.Dispatch(event.Event{Type: event.StatChanged, Data: stats.RuntimeStats{CurrentHealth: 90, MaxHealth: 100}})
	d.Dispatch(event.Event{Type: event.PlayerDamaged, Data: event.DamageData{Amount: 15, Health: 75}})
	d.Dispatch(event.Event{Type: event.ExpChanged, Data: event.ExpData{Experience: 2, Cap: 15, Level: 2}})
	d.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyKilledData{ID: 4}})
	d.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyKilledData{ID: 5}})
	d.Dispatch(event.Event{Type: event.PickupCollected, Data: event.PickupData{Kind: string(defs.PickupGold), Amount: 3}})
	d.Dispatch(event.Event{Type: event.PickupCollected, Data: event.PickupData{Kind: string(defs.PickupExp), Amount: 1}})
	d.Dispatch(event.Event{Type: event.CurrencyChanged, Data: 13})
	d.Dispatch(event.Event{Type: event.PollutionChanged, Data: 72.5})
	d.Dispatch(event.Event{Type: event.PetSummoned, Data: event.PetData{Count: 1, Max: 3}})
	d.Dispatch(event.Event{Type: event.WaveAdvanced, Data: event.WaveData{Index: 2, Name: "Jellyfish"}})

	s := h.State()
	if s.Stats.CurrentHealth != 75 || s.Stats.MaxHealth != 100 {
		t.Errorf("health = %v/%v", s.Stats.CurrentHealth, s.Stats.MaxHealth)
	}
	if s.Level != 2 || s.Experience != 2 || s.ExpCap != 15 {
		t.Errorf("exp state = %+v", s)
	}
	if s.Kills != 2 || s.RunGold != 3 || s.Currency != 13 {
		t.Errorf("counters = kills %d gold %d currency %d", s.Kills, s.RunGold, s.Currency)
	}
	if s.Pollution != 72.5 || h.pollution.Level() != 72.5 {
		t.Errorf("pollution = %v", s.Pollution)
	}
	if s.Pets != 1 || s.MaxPets != 3 {
		t.Errorf("pets = %d/%d", s.Pets, s.MaxPets)
	}
	if s.Wave != 3 || s.WaveName != "Jellyfish" {
		t.Errorf("wave = %d %q", s.Wave, s.WaveName)
	}
}

func TestHUDSync(t *testing.T) {
	h := NewHUD(event.NewDispatcher(), nil, 0, config.PollutionMax)
	p := stats.NewProgression([]defs.LevelRange{{Start: 1, End: 20, CapIncrease: 10}})
	p.AddExperience(4)
	h.Sync(stats.RuntimeStats{CurrentHealth: 100, MaxHealth: 100}, p)

	s := h.State()
	if s.Level != 1 || s.Experience != 4 || s.ExpCap != 10 || s.Stats.MaxHealth != 100 {
		t.Errorf("synced state = %+v", s)
	}
}

func TestPollutionIndicatorPulse(t *testing.T) {
	i := NewPollutionIndicator(0, 0, 10, 50)
	if i.scale() != 1 {
		t.Errorf("idle scale = %v", i.scale())
	}
	i.SetLevel(50)
	if i.scale() != 1 {
		t.Error("same level must not pulse")
	}
	i.SetLevel(40)
	if s := i.scale(); s <= 1.29 {
		t.Errorf("pulse scale = %v", s)
	}
	i.Update(2)
	if s := i.scale(); s > 1.001 {
		t.Errorf("pulse must fade, got %v", s)
	}
}

func TestDraftPanelFollowsDraftEvents(t *testing.T) {
	d := event.NewDispatcher()
	p := NewDraftPanel(d)
	draft := &system.Draft{Entries: []system.DraftEntry{
		{Kind: inventory.Weapon, Name: "Trident", Active: true},
		{Kind: inventory.Passive, Name: "Amulet", Active: false},
		{Kind: inventory.Passive, Name: "Shell", Active: true, Upgrade: true, Level: 2},
	}}
	d.Dispatch(event.Event{Type: event.DraftOpened, Data: draft})
	if !p.Open() {
		t.Fatal("panel should open on DraftOpened")
	}
	for i := 0; i < 30; i++ {
		p.Update()
	}

	center := func(i int) (int, int) {
		r := p.cards[i].Rect
		return (r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2
	}
	if idx, ok := p.CardAt(center(0)); !ok || idx != 0 {
		t.Errorf("card 0 hit = %d, %v", idx, ok)
	}
	if _, ok := p.CardAt(center(1)); ok {
		t.Error("disabled card must not be selectable")
	}
	if idx, ok := p.CardAt(center(2)); !ok || idx != 2 {
		t.Errorf("card 2 hit = %d, %v", idx, ok)
	}
	if got := cardSubtitle(draft.Entries[2]); got != "Passive Lv. 2" {
		t.Errorf("subtitle = %q", got)
	}

	d.Dispatch(event.Event{Type: event.DraftClosed})
	if p.Open() {
		t.Error("panel should close on DraftClosed")
	}
	for i := 0; i < 30; i++ {
		p.Update()
	}
	if p.IsVisible {
		t.Error("panel should be hidden after sliding out")
	}
	if _, ok := p.CardAt(10, 10); ok {
		t.Error("hidden panel must not report cards")
	}
}

func TestResultsPanel(t *testing.T) {
	p := NewResultsPanel()
	r := p.retry.Rect
	if got := p.ActionAt(r.Min.X+1, r.Min.Y+1); got != ActionRetry {
		t.Errorf("retry action = %v", got)
	}
	m := p.menu.Rect
	if got := p.ActionAt(m.Max.X-1, m.Max.Y-1); got != ActionMenu {
		t.Errorf("menu action = %v", got)
	}
	if got := p.ActionAt(0, 0); got != ActionNone {
		t.Errorf("outside action = %v", got)
	}

	lines := ResultLines(system.RunResult{Survived: true, TimeSurvived: 125, Kills: 7}, 12)
	want := []string{"You survived!", "Time 02:05", "Kills 7", "Pearls +12"}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}
