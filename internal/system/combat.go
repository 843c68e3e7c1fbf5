// internal/system/combat.go
package system

import (
	"math"

	"go-reef-survivors/internal/component"
	"go-reef-survivors/internal/config"
	"go-reef-survivors/internal/defs"
	"go-reef-survivors/internal/entity"
	"go-reef-survivors/internal/event"
	"go-reef-survivors/internal/stats"
	"go-reef-survivors/internal/types"
	"go-reef-survivors/pkg/geom"

	"github.com/rs/zerolog"
)

// StatsSource даёт текущие характеристики игрока.
type StatsSource interface {
	Stats() stats.RuntimeStats
}

// CombatSystem управляет оружием игрока и нанесением урона врагам и объектам.
type CombatSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	lib             *defs.Library
	stats           StatsSource
	log             zerolog.Logger
}

func NewCombatSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, lib *defs.Library, stats StatsSource, log zerolog.Logger) *CombatSystem {
	return &CombatSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		lib:             lib,
		stats:           stats,
		log:             log.With().Str("system", "combat").Logger(),
	}
}

// Update отсчитывает перезарядку оружия и стреляет.
func (s *CombatSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.Weapons) {
		weapon := s.ecs.Weapons[id]
		weapon.Cooldown -= deltaTime
		if weapon.Cooldown > 0 {
			continue
		}
		def, ok := s.lib.Weapons[weapon.DefID]
		if !ok {
			s.log.Warn().Str("weapon", weapon.DefID).Msg("weapon definition not found")
			weapon.Cooldown = 1
			continue
		}
		s.fire(def)
		weapon.Cooldown = def.Cooldown
	}
}

func (s *CombatSystem) fire(def defs.WeaponDefinition) {
	origin := s.ecs.PlayerPosition()
	switch def.Kind {
	case defs.WeaponProjectile:
		dir := geom.V(config.DefaultMoveDirection, 0)
		if s.ecs.Player != nil && !s.ecs.Player.LastMoved.IsZero() {
			dir = s.ecs.Player.LastMoved
		}
		id := s.ecs.NewEntity()
		s.ecs.Positions[id] = &component.Position{Vec2: origin}
		s.ecs.Colliders[id] = &component.Collider{Radius: def.Radius, Tag: types.TagProjectile}
		s.ecs.Renderables[id] = &component.Renderable{Color: config.ProjectileColor, Radius: def.Radius}
		s.ecs.Projectiles[id] = &component.Projectile{
			WeaponID: def.ID,
			Dir:      dir.Normalized(),
			Speed:    def.Speed * s.stats.Stats().ProjectileSpeed,
			Damage:   def.Damage,
			Pierce:   max(def.Pierce, 1),
			Bounce:   def.Bounce,
			Lifetime: def.Lifetime,
			Hit:      make(map[types.EntityID]bool),
		}
	case defs.WeaponOrbit:
		count := max(def.Count, 1)
		for i := 0; i < count; i++ {
			angle := 2 * math.Pi * float64(i) / float64(count)
			id := s.ecs.NewEntity()
			s.ecs.Positions[id] = &component.Position{Vec2: origin.Add(geom.FromAngle(angle, def.OrbitRadius))}
			s.ecs.Colliders[id] = &component.Collider{Radius: def.Radius, Tag: types.TagOrbiter}
			s.ecs.Renderables[id] = &component.Renderable{Color: config.OrbiterColor, Radius: def.Radius}
			s.ecs.Orbiters[id] = &component.Orbiter{
				WeaponID: def.ID,
				Angle:    angle,
				Radius:   def.OrbitRadius,
				Speed:    def.Speed,
				Damage:   def.Damage,
				Lifetime: def.Lifetime,
			}
		}
	default:
		s.log.Warn().Str("weapon", def.ID).Str("kind", string(def.Kind)).Msg("unknown weapon kind")
	}
}

// WeaponDamage — урон оружия с учётом силы игрока.
func (s *CombatSystem) WeaponDamage(base float64) float64 {
	return base * s.stats.Stats().Strength
}

// Hurt наносит урон врагу (с отбрасыванием) или объекту. Возвращает true, если цель уничтожена.
func (s *CombatSystem) Hurt(target types.EntityID, damage float64, from geom.Vec2, knockback float64) bool {
	pos, ok := s.ecs.Positions[target]
	if !ok {
		return false
	}
	if enemy, isEnemy := s.ecs.Enemies[target]; isEnemy {
		killed := ApplyDamage(s.ecs, target, damage)
		s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyHit, Data: event.EnemyHitData{ID: target, Damage: damage}})
		if killed {
			s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyKilledData{
				ID: target, DefID: enemy.DefID, Position: pos.Vec2,
			}})
			s.ecs.Destroy(target)
			return true
		}
		if knockback > 0 {
			dir := pos.Vec2.Sub(from).Normalized()
			s.ecs.Knockbacks[target] = &component.Knockback{Velocity: dir.Scale(knockback), Timer: config.KnockbackDuration}
		}
		return false
	}
	if prop, isProp := s.ecs.Props[target]; isProp {
		if ApplyDamage(s.ecs, target, damage) {
			s.eventDispatcher.Dispatch(event.Event{Type: event.PropDestroyed, Data: event.PropDestroyedData{
				ID: target, DropTable: prop.DropTable, Position: pos.Vec2,
			}})
			s.ecs.Destroy(target)
			return true
		}
	}
	return false
}
