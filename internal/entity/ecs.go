// internal/entity/ecs.go
package entity

import (
	"sort"

	"go-reef-survivors/internal/component"
	"go-reef-survivors/internal/types"
	"go-reef-survivors/pkg/geom"
)

type ECS struct {
	GameTime      float64
	NextID        types.EntityID
	PlayerID      types.EntityID
	Positions     map[types.EntityID]*component.Position
	Velocities    map[types.EntityID]*component.Velocity
	Knockbacks    map[types.EntityID]*component.Knockback
	Colliders     map[types.EntityID]*component.Collider
	Healths       map[types.EntityID]*component.Health
	Renderables   map[types.EntityID]*component.Renderable
	Enemies       map[types.EntityID]*component.Enemy
	Props         map[types.EntityID]*component.Prop
	Weapons       map[types.EntityID]*component.Weapon
	Projectiles   map[types.EntityID]*component.Projectile
	Orbiters      map[types.EntityID]*component.Orbiter
	Pets          map[types.EntityID]*component.Pet
	PetStatues    map[types.EntityID]*component.PetStatue
	Pickups       map[types.EntityID]*component.Pickup
	Chunks        map[types.EntityID]*component.Chunk
	DamageFlashes map[types.EntityID]*component.DamageFlash
	Player        *component.Player
	Wave          *component.Wave
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Positions:     make(map[types.EntityID]*component.Position),
		Velocities:    make(map[types.EntityID]*component.Velocity),
		Knockbacks:    make(map[types.EntityID]*component.Knockback),
		Colliders:     make(map[types.EntityID]*component.Collider),
		Healths:       make(map[types.EntityID]*component.Health),
		Renderables:   make(map[types.EntityID]*component.Renderable),
		Enemies:       make(map[types.EntityID]*component.Enemy),
		Props:         make(map[types.EntityID]*component.Prop),
		Weapons:       make(map[types.EntityID]*component.Weapon),
		Projectiles:   make(map[types.EntityID]*component.Projectile),
		Orbiters:      make(map[types.EntityID]*component.Orbiter),
		Pets:          make(map[types.EntityID]*component.Pet),
		PetStatues:    make(map[types.EntityID]*component.PetStatue),
		Pickups:       make(map[types.EntityID]*component.Pickup),
		Chunks:        make(map[types.EntityID]*component.Chunk),
		DamageFlashes: make(map[types.EntityID]*component.DamageFlash),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// Destroy удаляет сущность из всех хранилищ компонентов.
func (ecs *ECS) Destroy(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Knockbacks, id)
	delete(ecs.Colliders, id)
	delete(ecs.Healths, id)
	delete(ecs.Renderables, id)
	delete(ecs.Enemies, id)
	delete(ecs.Props, id)
	delete(ecs.Weapons, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Orbiters, id)
	delete(ecs.Pets, id)
	delete(ecs.PetStatues, id)
	delete(ecs.Pickups, id)
	delete(ecs.Chunks, id)
	delete(ecs.DamageFlashes, id)
}

// PlayerPosition returns the player's position, or the origin when there is no player.
func (ecs *ECS) PlayerPosition() geom.Vec2 {
	if pos, ok := ecs.Positions[ecs.PlayerID]; ok {
		return pos.Vec2
	}
	return geom.Zero
}

// Position returns the position of id.
func (ecs *ECS) Position(id types.EntityID) (geom.Vec2, bool) {
	pos, ok := ecs.Positions[id]
	if !ok {
		return geom.Zero, false
	}
	return pos.Vec2, true
}

// SortedIDs returns the keys of m in ascending order so systems iterate deterministically.
func SortedIDs[V any](m map[types.EntityID]V) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
