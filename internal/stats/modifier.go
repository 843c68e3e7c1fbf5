// internal/stats/modifier.go
package stats

import (
	"fmt"

	"go-reef-survivors/internal/defs"
)

// Stat — изменяемая характеристика игрока.
type Stat int

const (
	MaxHealth Stat = iota
	Recovery
	MoveSpeed
	Strength
	ProjectileSpeed
	Magnet
	Reflect
)

var statNames = map[string]Stat{
	"max_health":       MaxHealth,
	"recovery":         Recovery,
	"move_speed":       MoveSpeed,
	"strength":         Strength,
	"projectile_speed": ProjectileSpeed,
	"magnet":           Magnet,
	"reflect":          Reflect,
}

func (s Stat) String() string {
	for name, v := range statNames {
		if v == s {
			return name
		}
	}
	return fmt.Sprintf("Stat(%d)", int(s))
}

// ModKind — как применяется модификатор.
type ModKind int

const (
	Percent ModKind = iota // v *= 1 + value/100
	Flat                   // v += value
)

// Modifier is a single stat change from a passive item.
type Modifier struct {
	Stat  Stat
	Kind  ModKind
	Value float64
}

// ModifierFromDef converts a content definition into a Modifier.
func ModifierFromDef(d defs.ModifierDefinition) (Modifier, error) {
	stat, ok := statNames[d.Stat]
	if !ok {
		return Modifier{}, fmt.Errorf("unknown stat %q", d.Stat)
	}
	var kind ModKind
	switch d.Kind {
	case "percent":
		kind = Percent
	case "flat", "":
		kind = Flat
	default:
		return Modifier{}, fmt.Errorf("unknown modifier kind %q", d.Kind)
	}
	return Modifier{Stat: stat, Kind: kind, Value: d.Value}, nil
}

func (m Modifier) apply(v float64) float64 {
	if m.Kind == Percent {
		return v * (1 + m.Value/100)
	}
	return v + m.Value
}
