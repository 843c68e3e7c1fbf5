// internal/types/types.go
package types

// EntityID — идентификатор сущности в ECS
type EntityID uint64

// Tag — метка коллайдера, по ней системы фильтруют события триггеров
type Tag int

const (
	TagNone Tag = iota
	TagPlayer
	TagEnemy
	TagProp
	TagPickup
	TagPet
	TagProjectile
	TagOrbiter
	TagStatue
)

func (t Tag) String() string {
	switch t {
	case TagPlayer:
		return "Player"
	case TagEnemy:
		return "Enemy"
	case TagProp:
		return "Prop"
	case TagPickup:
		return "Pickup"
	case TagPet:
		return "Pet"
	case TagProjectile:
		return "Projectile"
	case TagOrbiter:
		return "Orbiter"
	case TagStatue:
		return "Statue"
	default:
		return "None"
	}
}
