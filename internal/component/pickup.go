// internal/component/pickup.go
package component

import "go-reef-survivors/internal/defs"

// Pickup — кристалл опыта, монета или аптечка на земле
type Pickup struct {
	DefID     string
	Kind      defs.PickupKind
	Amount    float64
	Attracted bool // попал в радиус магнита, летит к игроку
}
