package stats

import (
	"math"
	"testing"

	"go-reef-survivors/internal/defs"
	"go-reef-survivors/internal/meta"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

var testBase = Base{MaxHealth: 100, Recovery: 0.1, MoveSpeed: 5, Strength: 1, ProjectileSpeed: 1, Magnet: 1.5}

func TestComputeCurrentStatsAddsUpgradeBonus(t *testing.T) {
	levels := [meta.CategoryCount]int{meta.Strength: 4, meta.Recovery: 1, meta.Speed: 2, meta.Magnet: 3, meta.Health: 4}
	s := ComputeCurrentStats(testBase, levels, nil)

	checks := []struct {
		name      string
		got, want float64
	}{
		{"strength", s.Strength, 1.5},
		{"recovery", s.Recovery, 0.35},
		{"move speed", s.MoveSpeed, 6},
		{"magnet", s.Magnet, 3.8},
		{"max health", s.MaxHealth, 125},
		{"current health", s.CurrentHealth, 125},
		{"projectile speed", s.ProjectileSpeed, 1},
	}
	for _, c := range checks {
		t.Run(c.name, func(t *testing.T) {
			if !near(c.got, c.want) {
				t.Errorf("got %v, want %v", c.got, c.want)
			}
		})
	}
}

func TestComputeCurrentStatsClampsLevels(t *testing.T) {
	levels := [meta.CategoryCount]int{meta.Health: 99, meta.Speed: -5}
	s := ComputeCurrentStats(testBase, levels, nil)
	if !near(s.MaxHealth, 125) || !near(s.MoveSpeed, 5) {
		t.Fatalf("clamping failed: %+v", s)
	}
}

func TestPercentModifiersCompoundInOrder(t *testing.T) {
	mods := []Modifier{
		{Stat: Strength, Kind: Percent, Value: 10},
		{Stat: Strength, Kind: Flat, Value: 1},
	}
	ab := ComputeCurrentStats(testBase, [meta.CategoryCount]int{}, mods)
	ba := ComputeCurrentStats(testBase, [meta.CategoryCount]int{}, []Modifier{mods[1], mods[0]})

	// 1*1.1+1 = 2.1, (1+1)*1.1 = 2.2
	if !near(ab.Strength, 2.1) || !near(ba.Strength, 2.2) {
		t.Fatalf("order dependence lost: %v vs %v", ab.Strength, ba.Strength)
	}

	s := ComputeCurrentStats(testBase, [meta.CategoryCount]int{}, nil)
	s.ApplyModifier(Modifier{Stat: Strength, Kind: Percent, Value: 10})
	s.ApplyModifier(Modifier{Stat: Strength, Kind: Percent, Value: 10})
	if !near(s.Strength, 1.21) {
		t.Fatalf("percent should compound: %v", s.Strength)
	}
}

func TestMaxHealthIncreaseDoesNotHeal(t *testing.T) {
	s := ComputeCurrentStats(testBase, [meta.CategoryCount]int{}, nil)
	s.TakeDamage(30)
	s.ApplyModifier(Modifier{Stat: MaxHealth, Kind: Flat, Value: 20})
	if !near(s.MaxHealth, 120) || !near(s.CurrentHealth, 70) {
		t.Fatalf("max=%v current=%v", s.MaxHealth, s.CurrentHealth)
	}
	s.ApplyModifier(Modifier{Stat: MaxHealth, Kind: Flat, Value: -60})
	if s.CurrentHealth > s.MaxHealth {
		t.Fatalf("invariant broken: current %v > max %v", s.CurrentHealth, s.MaxHealth)
	}
}

func TestRestoreHealthCaps(t *testing.T) {
	s := ComputeCurrentStats(testBase, [meta.CategoryCount]int{}, nil)
	s.TakeDamage(10)
	if got := s.RestoreHealth(50); !near(got, 10) || !near(s.CurrentHealth, 100) {
		t.Fatalf("restored %v, health %v", got, s.CurrentHealth)
	}
	if got := s.RestoreHealth(5); got != 0 {
		t.Fatalf("restore at full = %v", got)
	}
}

func TestTakeDamageAndRecover(t *testing.T) {
	s := ComputeCurrentStats(testBase, [meta.CategoryCount]int{}, nil)
	if s.TakeDamage(40) {
		t.Fatal("should survive 40 damage")
	}
	s.Recover(10)
	if !near(s.CurrentHealth, 61) {
		t.Fatalf("after recover: %v", s.CurrentHealth)
	}
	if !s.TakeDamage(500) || s.CurrentHealth != 0 || s.Alive() {
		t.Fatalf("overkill: %v", s.CurrentHealth)
	}
}

func TestReflectedDamage(t *testing.T) {
	s := RuntimeStats{Strength: 1, Reflect: 10}
	if got := s.ReflectedDamage(20); !near(got, 4) {
		t.Fatalf("reflect = %v", got)
	}
	if (RuntimeStats{Strength: 1}).ReflectedDamage(20) != 0 {
		t.Fatal("no cloak, no reflect")
	}
}

func TestModifierFromDef(t *testing.T) {
	m, err := ModifierFromDef(defs.ModifierDefinition{Stat: "strength", Kind: "percent", Value: 10})
	if err != nil || m.Stat != Strength || m.Kind != Percent {
		t.Fatalf("ModifierFromDef = %+v, %v", m, err)
	}
	if _, err := ModifierFromDef(defs.ModifierDefinition{Stat: "luck"}); err == nil {
		t.Fatal("expected error for unknown stat")
	}
	if _, err := ModifierFromDef(defs.ModifierDefinition{Stat: "magnet", Kind: "double"}); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestProgression(t *testing.T) {
	p := NewProgression([]defs.LevelRange{
		{Start: 1, End: 2, CapIncrease: 10},
		{Start: 3, End: 100, CapIncrease: 20},
	})
	if p.Level != 1 || p.ExperienceCap != 10 {
		t.Fatalf("start = %+v", p)
	}
	if gained := p.AddExperience(9); gained != 0 {
		t.Fatalf("gained %d at 9 xp", gained)
	}
	// 9+3 = 12 -> level 2, leftover 2, cap 10+10 = 20
	if gained := p.AddExperience(3); gained != 1 || p.Level != 2 || p.Experience != 2 || p.ExperienceCap != 20 {
		t.Fatalf("after level up: %+v", p)
	}
	// 2+60 = 62 -> level 3 (42 left, cap 40) -> level 4 (2 left, cap 60)
	if gained := p.AddExperience(60); gained != 2 || p.Level != 4 || p.Experience != 2 || p.ExperienceCap != 60 {
		t.Fatalf("multi level up: gained %d, %+v", gained, p)
	}
	if p.AddExperience(-5) != 0 {
		t.Fatal("negative experience")
	}
}
