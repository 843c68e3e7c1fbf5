package system

import (
	"go-reef-survivors/internal/component"
	"go-reef-survivors/internal/entity"
	"go-reef-survivors/internal/event"
	"go-reef-survivors/internal/stats"
	"go-reef-survivors/internal/types"
	"go-reef-survivors/pkg/geom"
)

type recorder struct {
	got []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.got = append(r.got, e)
}

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.got {
		if e.Type == t {
			n++
		}
	}
	return n
}

func listen(d *event.Dispatcher, kinds ...event.EventType) *recorder {
	r := &recorder{}
	d.SubscribeAll(r, kinds...)
	return r
}

type fixedStats struct {
	s stats.RuntimeStats
}

func (f *fixedStats) Stats() stats.RuntimeStats {
	return f.s
}

func defaultStats() *fixedStats {
	return &fixedStats{s: stats.RuntimeStats{
		CurrentHealth: 100, MaxHealth: 100, MoveSpeed: 5,
		Strength: 1, ProjectileSpeed: 1, Magnet: 1.5,
	}}
}

type hurtCall struct {
	target types.EntityID
	damage float64
}

type fakeDamager struct {
	calls []hurtCall
}

func (f *fakeDamager) Hurt(target types.EntityID, damage float64, _ geom.Vec2, _ float64) bool {
	f.calls = append(f.calls, hurtCall{target, damage})
	return false
}

func placePlayer(ecs *entity.ECS, at geom.Vec2) types.EntityID {
	id := ecs.NewEntity()
	ecs.PlayerID = id
	ecs.Player = &component.Player{}
	ecs.Positions[id] = &component.Position{Vec2: at}
	return id
}

func placeEnemy(ecs *entity.ECS, at geom.Vec2, health float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{Vec2: at}
	ecs.Velocities[id] = &component.Velocity{Speed: 1}
	ecs.Healths[id] = &component.Health{Value: health, Max: health}
	ecs.Colliders[id] = &component.Collider{Radius: 0.5, Tag: types.TagEnemy}
	ecs.Enemies[id] = &component.Enemy{DefID: "plastic_bag", Damage: 5}
	return id
}

func trigger(a types.EntityID, tagA types.Tag, b types.EntityID, tagB types.Tag) event.TriggerData {
	if a > b {
		a, b, tagA, tagB = b, a, tagB, tagA
	}
	return event.TriggerData{A: a, B: b, TagA: tagA, TagB: tagB}
}
