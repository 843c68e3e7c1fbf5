// internal/inventory/inventory.go
package inventory

import "go-reef-survivors/internal/types"

// Kind — оружие или пассивный предмет.
type Kind int

const (
	Weapon Kind = iota
	Passive
)

func (k Kind) String() string {
	if k == Weapon {
		return "weapon"
	}
	return "passive"
}

// Slot — ячейка инвентаря. DefID указывает на определение текущего уровня.
type Slot struct {
	DefID  string
	Level  int
	Entity types.EntityID
	Filled bool
}

// Inventory — ячейки оружия и пассивок игрока на один забег.
// Новые предметы занимают следующую свободную ячейку; индекс не переиспользуется.
type Inventory struct {
	slots [2][]Slot
	next  [2]int
}

func New(weaponSlots, passiveSlots int) *Inventory {
	inv := &Inventory{}
	inv.slots[Weapon] = make([]Slot, weaponSlots)
	inv.slots[Passive] = make([]Slot, passiveSlots)
	return inv
}

// Add puts an item into the next free slot and returns its index.
func (inv *Inventory) Add(kind Kind, defID string, level int, entity types.EntityID) (int, bool) {
	if inv.Full(kind) {
		return -1, false
	}
	idx := inv.next[kind]
	inv.slots[kind][idx] = Slot{DefID: defID, Level: level, Entity: entity, Filled: true}
	inv.next[kind]++
	return idx, true
}

// Replace swaps the item in an occupied slot, keeping the index. Returns the old slot.
func (inv *Inventory) Replace(kind Kind, index int, defID string, level int, entity types.EntityID) (Slot, bool) {
	if index < 0 || index >= len(inv.slots[kind]) || !inv.slots[kind][index].Filled {
		return Slot{}, false
	}
	old := inv.slots[kind][index]
	inv.slots[kind][index] = Slot{DefID: defID, Level: level, Entity: entity, Filled: true}
	return old, true
}

// Find returns the slot index that holds defID.
func (inv *Inventory) Find(kind Kind, defID string) (int, bool) {
	for i, s := range inv.slots[kind] {
		if s.Filled && s.DefID == defID {
			return i, true
		}
	}
	return -1, false
}

// Slot returns a copy of the slot at index.
func (inv *Inventory) Slot(kind Kind, index int) (Slot, bool) {
	if index < 0 || index >= len(inv.slots[kind]) {
		return Slot{}, false
	}
	s := inv.slots[kind][index]
	return s, s.Filled
}

// Slots returns a copy of all slots of a kind.
func (inv *Inventory) Slots(kind Kind) []Slot {
	out := make([]Slot, len(inv.slots[kind]))
	copy(out, inv.slots[kind])
	return out
}

// Full reports whether no free slot is left.
func (inv *Inventory) Full(kind Kind) bool {
	return inv.next[kind] >= len(inv.slots[kind])
}

// Count returns how many slots are filled.
func (inv *Inventory) Count(kind Kind) int {
	return inv.next[kind]
}
