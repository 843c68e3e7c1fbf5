// internal/defs/library.go
package defs

import (
	"fmt"
	"sort"
)

// Library holds every content definition used by a run, keyed by ID.
type Library struct {
	Characters  map[string]CharacterDefinition
	Enemies     map[string]EnemyDefinition
	Weapons     map[string]WeaponDefinition
	Passives    map[string]PassiveItemDefinition
	Pickups     map[string]PickupDefinition
	DropTables  map[string]DropTable
	Props       map[string]PropDefinition
	Waves       []WaveDefinition
	Spawner     SpawnerDefinition
	LevelRanges []LevelRange
	Terrain     TerrainDefinition
	// WeaponPool и PassivePool — базовые (первый уровень) предметы для драфта.
	WeaponPool  []string
	PassivePool []string
}

// NewLibrary returns an empty library with all maps allocated.
func NewLibrary() *Library {
	return &Library{
		Characters: make(map[string]CharacterDefinition),
		Enemies:    make(map[string]EnemyDefinition),
		Weapons:    make(map[string]WeaponDefinition),
		Passives:   make(map[string]PassiveItemDefinition),
		Pickups:    make(map[string]PickupDefinition),
		DropTables: make(map[string]DropTable),
		Props:      make(map[string]PropDefinition),
	}
}

// Problems returns human-readable descriptions of dangling references.
// They are not fatal: systems treat a missing definition as a no-op.
func (l *Library) Problems() []string {
	var out []string
	for _, id := range sortedKeys(l.Characters) {
		c := l.Characters[id]
		if c.StartingWeapon != "" {
			if _, ok := l.Weapons[c.StartingWeapon]; !ok {
				out = append(out, fmt.Sprintf("character %s: unknown starting weapon %s", id, c.StartingWeapon))
			}
		}
	}
	for _, id := range sortedKeys(l.Weapons) {
		if next := l.Weapons[id].NextLevelID; next != "" {
			if _, ok := l.Weapons[next]; !ok {
				out = append(out, fmt.Sprintf("weapon %s: unknown next level %s", id, next))
			}
		}
	}
	for _, id := range sortedKeys(l.Passives) {
		if next := l.Passives[id].NextLevelID; next != "" {
			if _, ok := l.Passives[next]; !ok {
				out = append(out, fmt.Sprintf("passive %s: unknown next level %s", id, next))
			}
		}
	}
	for i, w := range l.Waves {
		for _, g := range w.Groups {
			if _, ok := l.Enemies[g.EnemyID]; !ok {
				out = append(out, fmt.Sprintf("wave %d (%s): unknown enemy %s", i, w.Name, g.EnemyID))
			}
		}
	}
	for _, id := range sortedKeys(l.Enemies) {
		if t := l.Enemies[id].DropTable; t != "" {
			if _, ok := l.DropTables[t]; !ok {
				out = append(out, fmt.Sprintf("enemy %s: unknown drop table %s", id, t))
			}
		}
	}
	for _, id := range sortedKeys(l.DropTables) {
		for _, e := range l.DropTables[id].Entries {
			if e.PickupID == "" {
				continue
			}
			if _, ok := l.Pickups[e.PickupID]; !ok {
				out = append(out, fmt.Sprintf("drop table %s: unknown pickup %s", id, e.PickupID))
			}
		}
	}
	for _, id := range l.WeaponPool {
		if _, ok := l.Weapons[id]; !ok {
			out = append(out, fmt.Sprintf("weapon pool: unknown weapon %s", id))
		}
	}
	for _, id := range l.PassivePool {
		if _, ok := l.Passives[id]; !ok {
			out = append(out, fmt.Sprintf("passive pool: unknown passive %s", id))
		}
	}
	if len(l.Spawner.SpawnPoints) == 0 {
		out = append(out, "spawner: no spawn points")
	}
	return out
}

// CharacterIDs returns character ids in stable order.
func (l *Library) CharacterIDs() []string {
	return sortedKeys(l.Characters)
}

// DisplayName returns the weapon or passive name for id, or id itself.
func (l *Library) DisplayName(id string) string {
	if w, ok := l.Weapons[id]; ok && w.Name != "" {
		return w.Name
	}
	if p, ok := l.Passives[id]; ok && p.Name != "" {
		return p.Name
	}
	return id
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
