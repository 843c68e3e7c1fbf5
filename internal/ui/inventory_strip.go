// internal/ui/inventory_strip.go
package ui

import (
	"go-reef-survivors/internal/config"
	"go-reef-survivors/internal/defs"
	"go-reef-survivors/internal/inventory"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	slotSize = 34
	slotGap  = 6
)

// InventoryStrip — ряды ячеек оружия и пассивок в углу экрана.
// В ячейке — первые буквы названия и уровень римскими цифрами.
type InventoryStrip struct {
	X, Y int
	lib  *defs.Library
}

func NewInventoryStrip(x, y int, lib *defs.Library) *InventoryStrip {
	return &InventoryStrip{X: x, Y: y, lib: lib}
}

func (s *InventoryStrip) Draw(screen *ebiten.Image, inv *inventory.Inventory) {
	s.drawRow(screen, s.Y, inv.Slots(inventory.Weapon), config.WeaponSlots)
	s.drawRow(screen, s.Y+slotSize+slotGap, inv.Slots(inventory.Passive), config.PassiveSlots)
}

func (s *InventoryStrip) drawRow(screen *ebiten.Image, y int, slots []inventory.Slot, capacity int) {
	for i := 0; i < capacity; i++ {
		x := s.X + i*(slotSize+slotGap)
		vector.DrawFilledRect(screen, float32(x), float32(y), slotSize, slotSize, config.PanelColor, true)
		vector.StrokeRect(screen, float32(x), float32(y), slotSize, slotSize, borderWidth, config.PanelStroke, true)
		if i >= len(slots) || !slots[i].Filled {
			continue
		}
		slot := slots[i]
		drawCentered(screen, s.abbrev(slot.DefID), DefaultFace, x+slotSize/2, y+15, config.TextLightColor)
		drawCentered(screen, toRoman(slot.Level), DefaultFace, x+slotSize/2, y+slotSize-5, config.PickupGoldColor)
	}
}

// abbrev — две буквы названия предмета.
func (s *InventoryStrip) abbrev(defID string) string {
	name := defID
	if s.lib != nil {
		name = s.lib.DisplayName(defID)
	}
	r := []rune(name)
	if len(r) > 2 {
		r = r[:2]
	}
	return string(r)
}
