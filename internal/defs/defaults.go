// internal/defs/defaults.go
package defs

import (
	"math"
	"strconv"

	"go-reef-survivors/pkg/geom"
)

// Default returns the built-in content used when no content file is given.
func Default() *Library {
	l := NewLibrary()

	l.Characters["diver"] = CharacterDefinition{
		ID: "diver", Name: "Diver",
		MaxHealth: 100, Recovery: 0.1, MoveSpeed: 5, Strength: 1,
		ProjectileSpeed: 1, Magnet: 1.5, StartingWeapon: "trident_1",
	}
	l.Characters["mermaid"] = CharacterDefinition{
		ID: "mermaid", Name: "Mermaid",
		MaxHealth: 80, Recovery: 0.3, MoveSpeed: 6, Strength: 1,
		ProjectileSpeed: 1.2, Magnet: 2, StartingWeapon: "shell_shield_1",
	}

	l.Enemies["plastic_bag"] = EnemyDefinition{
		ID: "plastic_bag", Name: "Plastic Bag", Health: 12, Speed: 1.6, Damage: 5,
		DropTable: "common", Visuals: Visuals{Color: Color{230, 230, 230, 255}, Radius: 0.4},
	}
	l.Enemies["oil_blob"] = EnemyDefinition{
		ID: "oil_blob", Name: "Oil Blob", Health: 30, Speed: 1.1, Damage: 10,
		DropTable: "common", Visuals: Visuals{Color: Color{30, 30, 30, 255}, Radius: 0.6},
	}
	l.Enemies["bottle_swarm"] = EnemyDefinition{
		ID: "bottle_swarm", Name: "Bottle Swarm", Health: 6, Speed: 2.4, Damage: 3,
		DropTable: "swarm", PollutionCleanup: Range{Min: 0.6, Max: 2.0},
		Visuals: Visuals{Color: Color{120, 200, 120, 255}, Radius: 0.3},
	}
	l.Enemies["ghost_net"] = EnemyDefinition{
		ID: "ghost_net", Name: "Ghost Net", Health: 400, Speed: 1, Damage: 25,
		DropTable: "boss", Visuals: Visuals{Color: Color{90, 60, 140, 255}, Radius: 1.2},
	}

	l.Waves = []WaveDefinition{
		{Name: "Drift", SpawnInterval: 1.0, Groups: []EnemyGroupDefinition{{EnemyID: "plastic_bag", Count: 20}}},
		{Name: "Slick", SpawnInterval: 0.8, Groups: []EnemyGroupDefinition{
			{EnemyID: "plastic_bag", Count: 25}, {EnemyID: "oil_blob", Count: 10}}},
		{Name: "Swarm", SpawnInterval: 0.3, Groups: []EnemyGroupDefinition{
			{EnemyID: "bottle_swarm", Count: 80}, {EnemyID: "oil_blob", Count: 15}}},
		{Name: "Tide", SpawnInterval: 0.4, Groups: []EnemyGroupDefinition{
			{EnemyID: "oil_blob", Count: 40}, {EnemyID: "bottle_swarm", Count: 60}}},
		{Name: "Ghost Net", SpawnInterval: 0.5, Groups: []EnemyGroupDefinition{
			{EnemyID: "ghost_net", Count: 1}, {EnemyID: "bottle_swarm", Count: 120}, {EnemyID: "oil_blob", Count: 60}}},
	}

	points := make([]geom.Vec2, 0, 12)
	for i := 0; i < 12; i++ {
		points = append(points, geom.FromAngle(float64(i)*math.Pi/6, 14))
	}
	l.Spawner = SpawnerDefinition{MaxEnemiesAllowed: 300, WaveInterval: 60, SpawnPoints: points}

	l.LevelRanges = []LevelRange{
		{Start: 1, End: 20, CapIncrease: 10},
		{Start: 21, End: 40, CapIncrease: 13},
		{Start: 41, End: 1000, CapIncrease: 16},
	}

	addWeaponChain(l, "trident", "Trident", "Throws a trident along your heading.", WeaponProjectile, []WeaponDefinition{
		{Damage: 10, Speed: 10, Cooldown: 1.0, Lifetime: 3, Radius: 0.3, Pierce: 1},
		{Damage: 15, Speed: 11, Cooldown: 0.85, Lifetime: 3, Radius: 0.3, Pierce: 2, Bounce: 1},
		{Damage: 22, Speed: 12, Cooldown: 0.7, Lifetime: 3, Radius: 0.35, Pierce: 3, Bounce: 2},
	})
	addWeaponChain(l, "shell_shield", "Shell Shield", "Shells circle around you.", WeaponOrbit, []WeaponDefinition{
		{Damage: 8, Speed: 3, Cooldown: 6, Lifetime: 4, Radius: 0.4, Count: 2, OrbitRadius: 2},
		{Damage: 12, Speed: 3.5, Cooldown: 5.5, Lifetime: 4.5, Radius: 0.4, Count: 3, OrbitRadius: 2.2},
		{Damage: 16, Speed: 4, Cooldown: 5, Lifetime: 5, Radius: 0.45, Count: 4, OrbitRadius: 2.4},
	})
	l.WeaponPool = []string{"trident_1", "shell_shield_1"}

	addPassiveChain(l, "amulet", "Amulet", "Increases strength.", ModifierDefinition{Stat: "strength", Kind: "percent", Value: 10}, 3)
	addPassiveChain(l, "shell", "Shell", "Increases max health.", ModifierDefinition{Stat: "max_health", Kind: "flat", Value: 20}, 3)
	addPassiveChain(l, "anemone_cloak", "Anemone Cloak", "Reflects part of the damage taken.", ModifierDefinition{Stat: "reflect", Kind: "flat", Value: 10}, 3)
	l.PassivePool = []string{"amulet_1", "shell_1", "anemone_cloak_1"}

	l.Pickups["exp_small"] = PickupDefinition{ID: "exp_small", Kind: PickupExp, Amount: 1,
		Visuals: Visuals{Color: Color{80, 200, 255, 255}, Radius: 0.2}}
	l.Pickups["exp_big"] = PickupDefinition{ID: "exp_big", Kind: PickupExp, Amount: 5,
		Visuals: Visuals{Color: Color{40, 120, 255, 255}, Radius: 0.3}}
	l.Pickups["coin"] = PickupDefinition{ID: "coin", Kind: PickupGold, Amount: 1,
		Visuals: Visuals{Color: Color{255, 215, 0, 255}, Radius: 0.2}}
	l.Pickups["coin_bag"] = PickupDefinition{ID: "coin_bag", Kind: PickupGold, Amount: 10,
		Visuals: Visuals{Color: Color{255, 180, 0, 255}, Radius: 0.3}}
	l.Pickups["heal"] = PickupDefinition{ID: "heal", Kind: PickupHeal, Amount: 20,
		Visuals: Visuals{Color: Color{255, 90, 120, 255}, Radius: 0.25}}

	l.DropTables["common"] = DropTable{ID: "common", Entries: []DropEntry{
		{PickupID: "exp_small", Weight: 80}, {PickupID: "coin", Weight: 10}, {PickupID: "", Weight: 10}}}
	l.DropTables["swarm"] = DropTable{ID: "swarm", Entries: []DropEntry{
		{PickupID: "exp_small", Weight: 60}, {PickupID: "", Weight: 40}}}
	l.DropTables["boss"] = DropTable{ID: "boss", Entries: []DropEntry{
		{PickupID: "exp_big", Weight: 50}, {PickupID: "coin_bag", Weight: 50}}}
	l.DropTables["crate"] = DropTable{ID: "crate", Entries: []DropEntry{
		{PickupID: "coin", Weight: 40}, {PickupID: "heal", Weight: 40}, {PickupID: "exp_big", Weight: 20}}}

	l.Props["crate"] = PropDefinition{ID: "crate", Health: 15, DropTable: "crate",
		Visuals: Visuals{Color: Color{140, 100, 60, 255}, Radius: 0.5}}

	l.Terrain = TerrainDefinition{CleanVariants: 3, PollutedVariants: 3, PropsPerChunk: 2, PropID: "crate", StatueChance: 0.1}
	return l
}

func addWeaponChain(l *Library, base, name, desc string, kind WeaponKind, levels []WeaponDefinition) {
	for i, w := range levels {
		w.ID = levelID(base, i+1)
		w.Name = name
		w.Description = desc
		w.Kind = kind
		w.Level = i + 1
		if i+1 < len(levels) {
			w.NextLevelID = levelID(base, i+2)
		}
		l.Weapons[w.ID] = w
	}
}

func addPassiveChain(l *Library, base, name, desc string, mod ModifierDefinition, levels int) {
	for i := 0; i < levels; i++ {
		p := PassiveItemDefinition{
			ID: levelID(base, i+1), Name: name, Description: desc, Level: i + 1, Modifier: mod,
		}
		if i+1 < levels {
			p.NextLevelID = levelID(base, i+2)
		}
		l.Passives[p.ID] = p
	}
}

func levelID(base string, level int) string {
	return base + "_" + strconv.Itoa(level)
}
