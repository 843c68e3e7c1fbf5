// internal/component/movement.go
package component

import (
	"go-reef-survivors/internal/types"
	"go-reef-survivors/pkg/geom"
)

// Position — компонент позиции в мировых единицах
type Position struct {
	geom.Vec2
}

// Velocity — направление и скорость движения
type Velocity struct {
	Dir   geom.Vec2
	Speed float64
}

// Knockback — отбрасывание после удара, перекрывает обычное движение
type Knockback struct {
	Velocity geom.Vec2
	Timer    float64
}

// Collider — круглый триггер с меткой
type Collider struct {
	Radius float64
	Tag    types.Tag
}
