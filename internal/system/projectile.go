// internal/system/projectile.go
package system

import (
	"go-reef-survivors/internal/config"
	"go-reef-survivors/internal/entity"
	"go-reef-survivors/internal/event"
	"go-reef-survivors/internal/types"
	"go-reef-survivors/pkg/geom"
)

// bounceRange — как далеко трезубец ищет следующую цель для отскока
const bounceRange = 8.0

// ProjectileSystem двигает снаряды и ракушки и обрабатывает их попадания
type ProjectileSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	combat          *CombatSystem
}

func NewProjectileSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, combat *CombatSystem) *ProjectileSystem {
	s := &ProjectileSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		combat:          combat,
	}
	eventDispatcher.Subscribe(event.TriggerEnter, s)
	return s
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.Projectiles) {
		proj := s.ecs.Projectiles[id]
		pos, ok := s.ecs.Positions[id]
		if !ok {
			s.ecs.Destroy(id)
			continue
		}
		proj.Lifetime -= deltaTime
		if proj.Lifetime <= 0 {
			s.ecs.Destroy(id)
			continue
		}
		pos.Vec2 = pos.Vec2.Add(proj.Dir.Scale(proj.Speed * deltaTime))
	}

	center := s.ecs.PlayerPosition()
	for _, id := range entity.SortedIDs(s.ecs.Orbiters) {
		orb := s.ecs.Orbiters[id]
		orb.Lifetime -= deltaTime
		if orb.Lifetime <= 0 {
			s.ecs.Destroy(id)
			continue
		}
		orb.Angle += orb.Speed * deltaTime
		if pos, ok := s.ecs.Positions[id]; ok {
			pos.Vec2 = center.Add(geom.FromAngle(orb.Angle, orb.Radius))
		}
	}
}

func (s *ProjectileSystem) OnEvent(e event.Event) {
	data, ok := e.Data.(event.TriggerData)
	if !ok {
		return
	}
	for _, tag := range []types.Tag{types.TagEnemy, types.TagProp} {
		if self, other, ok := data.Match(types.TagProjectile, tag); ok {
			s.projectileHit(self, other, tag)
			return
		}
		if self, other, ok := data.Match(types.TagOrbiter, tag); ok {
			s.orbiterHit(self, other)
			return
		}
	}
}

func (s *ProjectileSystem) projectileHit(id, target types.EntityID, tag types.Tag) {
	proj, ok := s.ecs.Projectiles[id]
	if !ok || proj.Hit[target] {
		return
	}
	pos, ok := s.ecs.Positions[id]
	if !ok {
		return
	}
	proj.Hit[target] = true
	s.combat.Hurt(target, s.combat.WeaponDamage(proj.Damage), pos.Vec2, config.KnockbackForce)

	// отскок к ближайшему ещё не задетому врагу не тратит пробитие
	if tag == types.TagEnemy && proj.Bounce > 0 {
		next, found := nearestEnemy(s.ecs, pos.Vec2, bounceRange, func(c types.EntityID) bool {
			return proj.Hit[c]
		})
		if found {
			nextPos := s.ecs.Positions[next].Vec2
			proj.Dir = nextPos.Sub(pos.Vec2).Normalized()
			proj.Bounce--
			return
		}
	}

	proj.Pierce--
	if proj.Pierce <= 0 {
		s.ecs.Destroy(id)
	}
}

func (s *ProjectileSystem) orbiterHit(id, target types.EntityID) {
	orb, ok := s.ecs.Orbiters[id]
	if !ok {
		return
	}
	pos, ok := s.ecs.Positions[id]
	if !ok {
		return
	}
	s.combat.Hurt(target, s.combat.WeaponDamage(orb.Damage), pos.Vec2, config.KnockbackForce)
}
