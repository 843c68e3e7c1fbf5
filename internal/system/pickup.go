// internal/system/pickup.go
package system

import (
	"go-reef-survivors/internal/config"
	"go-reef-survivors/internal/defs"
	"go-reef-survivors/internal/entity"
	"go-reef-survivors/internal/event"
	"go-reef-survivors/pkg/geom"
)

// Collector применяет подобранный предмет к игроку.
type Collector interface {
	Collect(kind defs.PickupKind, amount float64)
}

// PickupSystem притягивает предметы в радиусе магнита и подбирает их.
type PickupSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	stats           StatsSource
	collector       Collector
}

func NewPickupSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, stats StatsSource, collector Collector) *PickupSystem {
	return &PickupSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		stats:           stats,
		collector:       collector,
	}
}

func (s *PickupSystem) Update(deltaTime float64) {
	if s.ecs.Player == nil {
		return
	}
	playerPos := s.ecs.PlayerPosition()
	magnet := s.stats.Stats().Magnet
	collectRadius := config.PlayerRadius + config.PickupCollectRadius

	for _, id := range entity.SortedIDs(s.ecs.Pickups) {
		pickup := s.ecs.Pickups[id]
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		dist := geom.Dist(pos.Vec2, playerPos)
		if !pickup.Attracted && dist <= magnet {
			pickup.Attracted = true
		}
		if pickup.Attracted {
			pos.Vec2 = geom.MoveTowards(pos.Vec2, playerPos, config.PickupPullSpeed*deltaTime)
			dist = geom.Dist(pos.Vec2, playerPos)
		}
		if dist > collectRadius {
			continue
		}

		s.collector.Collect(pickup.Kind, pickup.Amount)
		s.eventDispatcher.Dispatch(event.Event{Type: event.PickupCollected, Data: event.PickupData{
			Kind: string(pickup.Kind), Amount: pickup.Amount,
		}})
		s.ecs.Destroy(id)
	}
}
