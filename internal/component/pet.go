// internal/component/pet.go
package component

import (
	"go-reef-survivors/internal/types"
	"go-reef-survivors/pkg/geom"
)

// PetState — состояние боевого автомата питомца
type PetState int

const (
	PetRoaming PetState = iota
	PetSeekingTarget
	PetMovingToTarget
	PetReturning
	PetRecharging
)

func (s PetState) String() string {
	switch s {
	case PetRoaming:
		return "Roaming"
	case PetSeekingTarget:
		return "SeekingTarget"
	case PetMovingToTarget:
		return "MovingToTarget"
	case PetReturning:
		return "Returning"
	case PetRecharging:
		return "Recharging"
	default:
		return "Unknown"
	}
}

// PetMove — текущее сглаженное перемещение. Одновременно активно не больше одного.
type PetMove struct {
	Dest    geom.Vec2
	Total   float64 // расстояние в начале, для прогресса прыжка
	Hopping bool
}

// Pet — акула-компаньон
type Pet struct {
	State         PetState
	Target        types.EntityID
	RechargeTimer float64
	Move          *PetMove
	Velocity      geom.Vec2
	HitThisRun    map[types.EntityID]bool
	HopOffset     float64 // только для отрисовки
	FacingLeft    bool
}

// PetStatue — статуя, у которой можно призвать питомца
type PetStatue struct {
	Used          bool
	PlayerInRange bool
}
