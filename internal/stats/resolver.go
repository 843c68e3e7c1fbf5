// internal/stats/resolver.go
package stats

import (
	"go-reef-survivors/internal/defs"
	"go-reef-survivors/internal/meta"
)

// Base — неизменяемые базовые характеристики персонажа.
type Base struct {
	MaxHealth       float64
	Recovery        float64
	MoveSpeed       float64
	Strength        float64
	ProjectileSpeed float64
	Magnet          float64
}

// BaseFromCharacter takes the base stats from a character definition.
func BaseFromCharacter(c defs.CharacterDefinition) Base {
	return Base{
		MaxHealth:       c.MaxHealth,
		Recovery:        c.Recovery,
		MoveSpeed:       c.MoveSpeed,
		Strength:        c.Strength,
		ProjectileSpeed: c.ProjectileSpeed,
		Magnet:          c.Magnet,
	}
}

// ComputeCurrentStats resolves the stats a run starts with: base plus the
// permanent upgrade bonus, then mods in acquisition order. Percent mods
// compound on the current value, so the order of mods matters.
// The run starts at full health.
func ComputeCurrentStats(base Base, levels [meta.CategoryCount]int, mods []Modifier) RuntimeStats {
	s := RuntimeStats{
		MaxHealth:       base.MaxHealth + meta.GetUpgradeBonus(meta.Health, levels[meta.Health]),
		Recovery:        base.Recovery + meta.GetUpgradeBonus(meta.Recovery, levels[meta.Recovery]),
		MoveSpeed:       base.MoveSpeed + meta.GetUpgradeBonus(meta.Speed, levels[meta.Speed]),
		Strength:        base.Strength + meta.GetUpgradeBonus(meta.Strength, levels[meta.Strength]),
		ProjectileSpeed: base.ProjectileSpeed,
		Magnet:          base.Magnet + meta.GetUpgradeBonus(meta.Magnet, levels[meta.Magnet]),
	}
	for _, m := range mods {
		s.ApplyModifier(m)
	}
	s.CurrentHealth = s.MaxHealth
	return s
}
