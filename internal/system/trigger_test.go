package system

import (
	"testing"

	"go-reef-survivors/internal/component"
	"go-reef-survivors/internal/entity"
	"go-reef-survivors/internal/event"
	"go-reef-survivors/internal/types"
	"go-reef-survivors/pkg/geom"
)

func TestTriggerEnterStayExit(t *testing.T) {
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	rec := listen(d, event.TriggerEnter, event.TriggerStay, event.TriggerExit)
	s := NewTriggerSystem(ecs, d)

	player := placePlayer(ecs, geom.Zero)
	ecs.Colliders[player] = &component.Collider{Radius: 0.5, Tag: types.TagPlayer}
	enemy := placeEnemy(ecs, geom.V(0.8, 0), 10)

	s.Update()
	s.Update()
	ecs.Positions[enemy].Vec2 = geom.V(5, 0)
	s.Update()
	s.Update()

	want := []event.EventType{event.TriggerEnter, event.TriggerStay, event.TriggerExit}
	if len(rec.got) != len(want) {
		t.Fatalf("got %d events, want %d", len(rec.got), len(want))
	}
	for i, e := range rec.got {
		if e.Type != want[i] {
			t.Errorf("event %d = %v, want %v", i, e.Type, want[i])
		}
		data := e.Data.(event.TriggerData)
		if self, other, ok := data.Match(types.TagPlayer, types.TagEnemy); !ok || self != player || other != enemy {
			t.Errorf("event %d data = %+v", i, data)
		}
	}
}

func TestTriggerIgnoresUninterestingPairs(t *testing.T) {
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	rec := listen(d, event.TriggerEnter)
	s := NewTriggerSystem(ecs, d)

	// два врага и снаряд с ракушкой в одной точке
	placeEnemy(ecs, geom.Zero, 10)
	placeEnemy(ecs, geom.Zero, 10)
	shot := ecs.NewEntity()
	ecs.Positions[shot] = &component.Position{}
	ecs.Colliders[shot] = &component.Collider{Radius: 0.3, Tag: types.TagProjectile}
	orb := ecs.NewEntity()
	ecs.Positions[orb] = &component.Position{}
	ecs.Colliders[orb] = &component.Collider{Radius: 0.3, Tag: types.TagOrbiter}

	s.Update()
	// враг-враг и снаряд-ракушка не интересны: 2 врага x (снаряд + ракушка)
	if len(rec.got) != 4 {
		t.Fatalf("got %d enter events, want 4", len(rec.got))
	}
	for i := 1; i < len(rec.got); i++ {
		prev, cur := rec.got[i-1].Data.(event.TriggerData), rec.got[i].Data.(event.TriggerData)
		if prev.A > cur.A || (prev.A == cur.A && prev.B >= cur.B) {
			t.Fatalf("events out of order: %+v then %+v", prev, cur)
		}
	}
}

func TestTriggerExitWhenDestroyed(t *testing.T) {
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	rec := listen(d, event.TriggerExit)
	s := NewTriggerSystem(ecs, d)

	player := placePlayer(ecs, geom.Zero)
	ecs.Colliders[player] = &component.Collider{Radius: 0.5, Tag: types.TagPlayer}
	enemy := placeEnemy(ecs, geom.Zero, 10)
	s.Update()
	ecs.Destroy(enemy)
	s.Update()
	if len(rec.got) != 1 {
		t.Fatalf("exit events = %d", len(rec.got))
	}
}
