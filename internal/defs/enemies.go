// internal/defs/enemies.go
package defs

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID        string  `json:"id" yaml:"id"`
	Name      string  `json:"name" yaml:"name"`
	Health    float64 `json:"health" yaml:"health"`
	Speed     float64 `json:"speed" yaml:"speed"`
	Damage    float64 `json:"damage" yaml:"damage"`
	DropTable string  `json:"drop_table" yaml:"drop_table"`
	// PollutionCleanup задаёт, насколько уменьшается загрязнение при смерти (роевые враги).
	PollutionCleanup Range   `json:"pollution_cleanup" yaml:"pollution_cleanup"`
	Visuals          Visuals `json:"visuals" yaml:"visuals"`
}

// Range is an inclusive [Min, Max] interval.
type Range struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// IsZero reports whether the range is unset.
func (r Range) IsZero() bool {
	return r.Min == 0 && r.Max == 0
}
