// internal/defs/items.go
package defs

// WeaponKind selects how a weapon attacks.
type WeaponKind string

const (
	WeaponProjectile WeaponKind = "projectile"
	WeaponOrbit      WeaponKind = "orbit"
)

// WeaponDefinition is one level of a weapon. Levels are chained by NextLevelID.
type WeaponDefinition struct {
	ID          string     `json:"id" yaml:"id"`
	Name        string     `json:"name" yaml:"name"`
	Description string     `json:"description" yaml:"description"`
	Kind        WeaponKind `json:"kind" yaml:"kind"`
	Level       int        `json:"level" yaml:"level"`
	NextLevelID string     `json:"next_level_id" yaml:"next_level_id"`
	Damage      float64    `json:"damage" yaml:"damage"`
	Speed       float64    `json:"speed" yaml:"speed"`
	Cooldown    float64    `json:"cooldown" yaml:"cooldown"`
	Lifetime    float64    `json:"lifetime" yaml:"lifetime"`
	Radius      float64    `json:"radius" yaml:"radius"`
	Pierce      int        `json:"pierce" yaml:"pierce"`
	Bounce      int        `json:"bounce" yaml:"bounce"`
	Count       int        `json:"count" yaml:"count"`
	OrbitRadius float64    `json:"orbit_radius" yaml:"orbit_radius"`
}

// PassiveItemDefinition is one level of a passive item.
type PassiveItemDefinition struct {
	ID          string             `json:"id" yaml:"id"`
	Name        string             `json:"name" yaml:"name"`
	Description string             `json:"description" yaml:"description"`
	Level       int                `json:"level" yaml:"level"`
	NextLevelID string             `json:"next_level_id" yaml:"next_level_id"`
	Modifier    ModifierDefinition `json:"modifier" yaml:"modifier"`
}

// PickupKind — что даёт подобранный предмет.
type PickupKind string

const (
	PickupExp  PickupKind = "exp"
	PickupGold PickupKind = "gold"
	PickupHeal PickupKind = "heal"
)

// PickupDefinition — кристалл опыта, монета или аптечка.
type PickupDefinition struct {
	ID      string     `json:"id" yaml:"id"`
	Kind    PickupKind `json:"kind" yaml:"kind"`
	Amount  float64    `json:"amount" yaml:"amount"`
	Visuals Visuals    `json:"visuals" yaml:"visuals"`
}

// DropEntry представляет одну запись в таблице выпадения.
// Пустой PickupID означает, что ничего не выпадает.
type DropEntry struct {
	PickupID string  `json:"pickup_id" yaml:"pickup_id"`
	Weight   float64 `json:"weight" yaml:"weight"`
}

// DropTable — взвешенный список возможных дропов.
type DropTable struct {
	ID      string      `json:"id" yaml:"id"`
	Entries []DropEntry `json:"entries" yaml:"entries"`
}

// PropDefinition — разрушаемый объект окружения.
type PropDefinition struct {
	ID        string  `json:"id" yaml:"id"`
	Health    float64 `json:"health" yaml:"health"`
	DropTable string  `json:"drop_table" yaml:"drop_table"`
	Visuals   Visuals `json:"visuals" yaml:"visuals"`
}

// TerrainDefinition — параметры генерации чанков.
type TerrainDefinition struct {
	CleanVariants    int     `json:"clean_variants" yaml:"clean_variants"`
	PollutedVariants int     `json:"polluted_variants" yaml:"polluted_variants"`
	PropsPerChunk    int     `json:"props_per_chunk" yaml:"props_per_chunk"`
	PropID           string  `json:"prop_id" yaml:"prop_id"`
	StatueChance     float64 `json:"statue_chance" yaml:"statue_chance"`
}
