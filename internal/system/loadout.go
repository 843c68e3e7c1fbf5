// internal/system/loadout.go
package system

import (
	"go-reef-survivors/internal/component"
	"go-reef-survivors/internal/defs"
	"go-reef-survivors/internal/inventory"
	"go-reef-survivors/internal/stats"
	"go-reef-survivors/internal/types"
)

// Equipper выдаёт и улучшает предметы по выбору в драфте.
type Equipper interface {
	SpawnWeapon(defID string) bool
	SpawnPassiveItem(defID string) bool
	LevelUpWeapon(slot int) (string, bool)
	LevelUpPassiveItem(slot int) (string, bool)
}

var _ Equipper = (*PlayerSystem)(nil)

// SpawnWeapon кладёт новое оружие в следующую свободную ячейку.
func (s *PlayerSystem) SpawnWeapon(defID string) bool {
	def, ok := s.lib.Weapons[defID]
	if !ok {
		s.log.Warn().Str("weapon", defID).Msg("weapon definition not found")
		return false
	}
	if s.inventory.Full(inventory.Weapon) {
		s.log.Info().Str("weapon", defID).Msg("weapon slots full")
		return false
	}
	id := s.newWeaponEntity(def)
	slot, _ := s.inventory.Add(inventory.Weapon, def.ID, def.Level, id)
	s.ecs.Weapons[id].Slot = slot
	s.log.Debug().Str("weapon", def.ID).Int("slot", slot).Msg("weapon equipped")
	return true
}

// LevelUpWeapon заменяет оружие в ячейке его следующим уровнем.
func (s *PlayerSystem) LevelUpWeapon(slot int) (string, bool) {
	current, ok := s.inventory.Slot(inventory.Weapon, slot)
	if !ok {
		s.log.Warn().Int("slot", slot).Msg("no weapon in slot")
		return "", false
	}
	def, ok := s.lib.Weapons[current.DefID]
	if !ok || def.NextLevelID == "" {
		s.log.Info().Str("weapon", current.DefID).Msg("weapon has no next level")
		return "", false
	}
	next, ok := s.lib.Weapons[def.NextLevelID]
	if !ok {
		s.log.Warn().Str("weapon", def.NextLevelID).Msg("next level definition not found")
		return "", false
	}

	s.ecs.Destroy(current.Entity)
	id := s.newWeaponEntity(next)
	s.ecs.Weapons[id].Slot = slot
	s.inventory.Replace(inventory.Weapon, slot, next.ID, next.Level, id)
	return next.ID, true
}

// SpawnPassiveItem кладёт пассивный предмет и применяет его модификатор.
func (s *PlayerSystem) SpawnPassiveItem(defID string) bool {
	def, ok := s.lib.Passives[defID]
	if !ok {
		s.log.Warn().Str("passive", defID).Msg("passive definition not found")
		return false
	}
	if s.inventory.Full(inventory.Passive) {
		s.log.Info().Str("passive", defID).Msg("passive slots full")
		return false
	}
	mod, err := stats.ModifierFromDef(def.Modifier)
	if err != nil {
		s.log.Warn().Err(err).Str("passive", defID).Msg("bad modifier")
		return false
	}
	s.inventory.Add(inventory.Passive, def.ID, def.Level, 0)
	s.ApplyModifier(mod)
	return true
}

// LevelUpPassiveItem заменяет пассивку следующим уровнем. Модификатор нового
// уровня добавляется поверх уже действующих, кроме отражения: там действует
// только значение текущего уровня.
func (s *PlayerSystem) LevelUpPassiveItem(slot int) (string, bool) {
	current, ok := s.inventory.Slot(inventory.Passive, slot)
	if !ok {
		s.log.Warn().Int("slot", slot).Msg("no passive item in slot")
		return "", false
	}
	def, ok := s.lib.Passives[current.DefID]
	if !ok || def.NextLevelID == "" {
		s.log.Info().Str("passive", current.DefID).Msg("passive item has no next level")
		return "", false
	}
	next, ok := s.lib.Passives[def.NextLevelID]
	if !ok {
		s.log.Warn().Str("passive", def.NextLevelID).Msg("next level definition not found")
		return "", false
	}
	mod, err := stats.ModifierFromDef(next.Modifier)
	if err != nil {
		s.log.Warn().Err(err).Str("passive", next.ID).Msg("bad modifier")
		return "", false
	}
	if prev, err := stats.ModifierFromDef(def.Modifier); err == nil && replacesOnLevelUp(prev, mod) {
		mod.Value -= prev.Value
	}
	s.inventory.Replace(inventory.Passive, slot, next.ID, next.Level, 0)
	s.ApplyModifier(mod)
	return next.ID, true
}

func replacesOnLevelUp(prev, next stats.Modifier) bool {
	return next.Stat == stats.Reflect && prev.Stat == next.Stat && prev.Kind == stats.Flat && next.Kind == stats.Flat
}

func (s *PlayerSystem) newWeaponEntity(def defs.WeaponDefinition) types.EntityID {
	id := s.ecs.NewEntity()
	s.ecs.Weapons[id] = &component.Weapon{DefID: def.ID, Cooldown: def.Cooldown}
	return id
}
