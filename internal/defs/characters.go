// internal/defs/characters.go
package defs

// CharacterDefinition holds the immutable base stats of a playable character.
type CharacterDefinition struct {
	ID              string  `json:"id" yaml:"id"`
	Name            string  `json:"name" yaml:"name"`
	MaxHealth       float64 `json:"max_health" yaml:"max_health"`
	Recovery        float64 `json:"recovery" yaml:"recovery"`
	MoveSpeed       float64 `json:"move_speed" yaml:"move_speed"`
	Strength        float64 `json:"strength" yaml:"strength"`
	ProjectileSpeed float64 `json:"projectile_speed" yaml:"projectile_speed"`
	Magnet          float64 `json:"magnet" yaml:"magnet"`
	StartingWeapon  string  `json:"starting_weapon" yaml:"starting_weapon"`
}

// LevelRange задаёт прирост порога опыта для уровней [Start, End].
type LevelRange struct {
	Start       int `json:"start" yaml:"start"`
	End         int `json:"end" yaml:"end"`
	CapIncrease int `json:"cap_increase" yaml:"cap_increase"`
}
