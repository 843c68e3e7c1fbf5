// internal/system/drop.go
package system

import (
	"go-reef-survivors/internal/defs"
	"go-reef-survivors/internal/entity"
	"go-reef-survivors/internal/event"
	"go-reef-survivors/internal/utils"
	"go-reef-survivors/pkg/geom"

	"github.com/rs/zerolog"
)

// DropSystem бросает добычу по таблице, когда умирает враг или ломается ящик.
type DropSystem struct {
	ecs *entity.ECS
	lib *defs.Library
	rng *utils.PRNGService
	log zerolog.Logger
}

func NewDropSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, lib *defs.Library, rng *utils.PRNGService, log zerolog.Logger) *DropSystem {
	s := &DropSystem{
		ecs: ecs,
		lib: lib,
		rng: rng,
		log: log.With().Str("system", "drop").Logger(),
	}
	eventDispatcher.SubscribeAll(s, event.EnemyKilled, event.PropDestroyed)
	return s
}

func (s *DropSystem) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.EnemyKilledData:
		def, ok := s.lib.Enemies[data.DefID]
		if !ok {
			return
		}
		s.Drop(def.DropTable, data.Position)
	case event.PropDestroyedData:
		s.Drop(data.DropTable, data.Position)
	}
}

// Drop выбирает предмет из таблицы и кладёт его в точку. Пустой выбор — ничего не выпало.
func (s *DropSystem) Drop(tableID string, at geom.Vec2) bool {
	if tableID == "" {
		return false
	}
	table, ok := s.lib.DropTables[tableID]
	if !ok {
		s.log.Warn().Str("table", tableID).Msg("unknown drop table")
		return false
	}
	pickupID := s.rng.ChooseWeighted(table.Entries)
	if pickupID == "" {
		return false
	}
	def, ok := s.lib.Pickups[pickupID]
	if !ok {
		s.log.Warn().Str("pickup", pickupID).Msg("unknown pickup")
		return false
	}
	SpawnPickup(s.ecs, def, at)
	return true
}
