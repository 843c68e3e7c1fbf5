// internal/component/projectile.go
package component

import (
	"go-reef-survivors/internal/types"
	"go-reef-survivors/pkg/geom"
)

// Projectile представляет летящий снаряд (трезубец).
type Projectile struct {
	WeaponID string
	Dir      geom.Vec2
	Speed    float64
	Damage   float64 // базовый урон оружия, умножается на силу при попадании
	Pierce   int     // сколько ещё попаданий выдержит
	Bounce   int     // сколько раз может отскочить к следующему врагу
	Lifetime float64
	Hit      map[types.EntityID]bool
}

// Orbiter — снаряд, кружащий вокруг игрока (ракушка).
type Orbiter struct {
	WeaponID string
	Angle    float64
	Radius   float64
	Speed    float64 // радиан в секунду
	Damage   float64
	Lifetime float64
}
