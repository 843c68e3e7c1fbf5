// internal/system/utils.go
package system

import (
	"math"

	"go-reef-survivors/internal/component"
	"go-reef-survivors/internal/config"
	"go-reef-survivors/internal/defs"
	"go-reef-survivors/internal/entity"
	"go-reef-survivors/internal/types"
	"go-reef-survivors/pkg/geom"
)

// Damager наносит урон врагу или разрушаемому объекту. Возвращает true, если цель уничтожена.
type Damager interface {
	Hurt(target types.EntityID, damage float64, from geom.Vec2, knockback float64) bool
}

// ApplyDamage снимает здоровье и вешает вспышку урона. Возвращает true, если здоровье кончилось.
func ApplyDamage(ecs *entity.ECS, entityID types.EntityID, damage float64) bool {
	health, ok := ecs.Healths[entityID]
	if !ok || damage <= 0 {
		return false
	}
	health.Value -= damage
	if health.Value < 0 {
		health.Value = 0
	}
	ecs.DamageFlashes[entityID] = &component.DamageFlash{
		Timer:    config.DamageFlashDuration,
		Duration: config.DamageFlashDuration,
	}
	return health.Value <= 0
}

// nearestEnemy ищет ближайшего врага в радиусе. skip может отфильтровать кандидатов.
// При равных расстояниях побеждает меньший id.
func nearestEnemy(ecs *entity.ECS, from geom.Vec2, radius float64, skip func(types.EntityID) bool) (types.EntityID, bool) {
	best := types.EntityID(0)
	bestDist := math.Inf(1)
	for _, id := range entity.SortedIDs(ecs.Enemies) {
		if skip != nil && skip(id) {
			continue
		}
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		d := geom.Dist(from, pos.Vec2)
		if d <= radius && d < bestDist {
			best, bestDist = id, d
		}
	}
	return best, best != 0
}

// SpawnEnemy создаёт врага по определению.
func SpawnEnemy(ecs *entity.ECS, def defs.EnemyDefinition, at geom.Vec2) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{Vec2: at}
	ecs.Velocities[id] = &component.Velocity{Speed: def.Speed}
	ecs.Healths[id] = &component.Health{Value: def.Health, Max: def.Health}
	ecs.Colliders[id] = &component.Collider{Radius: def.Visuals.Radius, Tag: types.TagEnemy}
	ecs.Renderables[id] = &component.Renderable{Color: def.Visuals.Color.RGBA(), Radius: def.Visuals.Radius}
	ecs.Enemies[id] = &component.Enemy{DefID: def.ID, Damage: def.Damage}
	return id
}

// SpawnPickup кладёт подбираемый предмет на землю.
func SpawnPickup(ecs *entity.ECS, def defs.PickupDefinition, at geom.Vec2) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{Vec2: at}
	ecs.Renderables[id] = &component.Renderable{Color: def.Visuals.Color.RGBA(), Radius: def.Visuals.Radius}
	ecs.Pickups[id] = &component.Pickup{DefID: def.ID, Kind: def.Kind, Amount: def.Amount}
	return id
}

// SpawnProp ставит разрушаемый объект.
func SpawnProp(ecs *entity.ECS, def defs.PropDefinition, at geom.Vec2) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{Vec2: at}
	ecs.Healths[id] = &component.Health{Value: def.Health, Max: def.Health}
	ecs.Colliders[id] = &component.Collider{Radius: def.Visuals.Radius, Tag: types.TagProp}
	ecs.Renderables[id] = &component.Renderable{Color: def.Visuals.Color.RGBA(), Radius: def.Visuals.Radius}
	ecs.Props[id] = &component.Prop{DefID: def.ID, DropTable: def.DropTable}
	return id
}

// SpawnStatue ставит статую призыва питомца.
func SpawnStatue(ecs *entity.ECS, at geom.Vec2) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{Vec2: at}
	ecs.Colliders[id] = &component.Collider{Radius: config.StatueRadius, Tag: types.TagStatue}
	ecs.Renderables[id] = &component.Renderable{Color: config.StatueColor, Radius: config.StatueRadius}
	ecs.PetStatues[id] = &component.PetStatue{}
	return id
}
