// internal/system/trigger.go
package system

import (
	"sort"

	"go-reef-survivors/internal/entity"
	"go-reef-survivors/internal/event"
	"go-reef-survivors/internal/types"
	"go-reef-survivors/pkg/geom"
)

type triggerPair struct {
	a, b types.EntityID
}

// TriggerSystem находит пересечения круглых коллайдеров и рассылает
// TriggerEnter / TriggerStay / TriggerExit.
type TriggerSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	active          map[triggerPair]event.TriggerData
}

func NewTriggerSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *TriggerSystem {
	return &TriggerSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		active:          make(map[triggerPair]event.TriggerData),
	}
}

// interacts — какие пары тегов вообще интересны системам
func interacts(a, b types.Tag) bool {
	if a > b {
		a, b = b, a
	}
	switch {
	case a == types.TagPlayer && (b == types.TagEnemy || b == types.TagStatue):
		return true
	case a == types.TagEnemy && (b == types.TagPet || b == types.TagProjectile || b == types.TagOrbiter):
		return true
	case a == types.TagProp && (b == types.TagProjectile || b == types.TagOrbiter):
		return true
	}
	return false
}

func (s *TriggerSystem) Update() {
	ids := entity.SortedIDs(s.ecs.Colliders)
	current := make(map[triggerPair]event.TriggerData)
	var order []triggerPair

	for i, a := range ids {
		ca := s.ecs.Colliders[a]
		pa, ok := s.ecs.Positions[a]
		if !ok {
			continue
		}
		for _, b := range ids[i+1:] {
			cb := s.ecs.Colliders[b]
			if !interacts(ca.Tag, cb.Tag) {
				continue
			}
			pb, ok := s.ecs.Positions[b]
			if !ok || !geom.CirclesOverlap(pa.Vec2, ca.Radius, pb.Vec2, cb.Radius) {
				continue
			}
			key := triggerPair{a, b}
			current[key] = event.TriggerData{A: a, B: b, TagA: ca.Tag, TagB: cb.Tag}
			order = append(order, key)
		}
	}

	var exits []event.TriggerData
	for key, data := range s.active {
		if _, still := current[key]; !still {
			exits = append(exits, data)
		}
	}
	previous := s.active
	s.active = current

	sortTriggers(exits)
	for _, data := range exits {
		s.eventDispatcher.Dispatch(event.Event{Type: event.TriggerExit, Data: data})
	}
	for _, key := range order {
		data := current[key]
		if _, was := previous[key]; was {
			s.eventDispatcher.Dispatch(event.Event{Type: event.TriggerStay, Data: data})
		} else {
			s.eventDispatcher.Dispatch(event.Event{Type: event.TriggerEnter, Data: data})
		}
	}
}

func sortTriggers(list []event.TriggerData) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].A != list[j].A {
			return list[i].A < list[j].A
		}
		return list[i].B < list[j].B
	})
}
