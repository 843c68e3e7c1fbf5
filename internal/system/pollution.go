// internal/system/pollution.go
package system

import (
	"go-reef-survivors/internal/defs"
	"go-reef-survivors/internal/event"
	"go-reef-survivors/internal/meta"
	"go-reef-survivors/internal/utils"

	"github.com/rs/zerolog"
)

// PollutionSystem очищает риф: некоторые враги при смерти снижают загрязнение.
type PollutionSystem struct {
	lib   *defs.Library
	rng   *utils.PRNGService
	meter *meta.PollutionMeter
	log   zerolog.Logger
}

func NewPollutionSystem(eventDispatcher *event.Dispatcher, lib *defs.Library, rng *utils.PRNGService, meter *meta.PollutionMeter, log zerolog.Logger) *PollutionSystem {
	s := &PollutionSystem{
		lib:   lib,
		rng:   rng,
		meter: meter,
		log:   log.With().Str("system", "pollution").Logger(),
	}
	eventDispatcher.Subscribe(event.EnemyKilled, s)
	return s
}

func (s *PollutionSystem) OnEvent(e event.Event) {
	data, ok := e.Data.(event.EnemyKilledData)
	if !ok {
		return
	}
	def, ok := s.lib.Enemies[data.DefID]
	if !ok || def.PollutionCleanup.IsZero() {
		return
	}
	amount := s.rng.Range(def.PollutionCleanup.Min, def.PollutionCleanup.Max)
	if s.meter.Decrease(amount) {
		s.log.Debug().Float64("amount", amount).Float64("level", s.meter.Level()).Msg("reef cleaned")
	}
}
