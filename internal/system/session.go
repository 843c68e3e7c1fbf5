// internal/system/session.go
package system

import (
	"go-reef-survivors/internal/component"
	"go-reef-survivors/internal/event"

	"github.com/rs/zerolog"
)

// RunResult — итог забега для экрана результатов и истории.
type RunResult struct {
	Survived     bool
	Reason       string
	TimeSurvived float64
	Kills        int
}

// SessionSystem ведёт фазы сессии и обратный отсчёт.
type SessionSystem struct {
	eventDispatcher *event.Dispatcher
	log             zerolog.Logger

	state     component.GameState
	duration  float64
	remaining float64
	elapsed   float64
	kills     int
	result    *RunResult
}

func NewSessionSystem(eventDispatcher *event.Dispatcher, duration float64, log zerolog.Logger) *SessionSystem {
	s := &SessionSystem{
		eventDispatcher: eventDispatcher,
		log:             log.With().Str("system", "session").Logger(),
		state:           component.Gameplay,
		duration:        duration,
		remaining:       duration,
	}
	eventDispatcher.SubscribeAll(s, event.EnemyKilled, event.DraftOpened, event.DraftClosed, event.GameOver)
	return s
}

func (s *SessionSystem) State() component.GameState {
	return s.state
}

// Running — идёт ли симуляция в этом кадре.
func (s *SessionSystem) Running() bool {
	return s.state == component.Gameplay
}

func (s *SessionSystem) Remaining() float64 {
	return s.remaining
}

func (s *SessionSystem) Elapsed() float64 {
	return s.elapsed
}

func (s *SessionSystem) Kills() int {
	return s.kills
}

// Result возвращает итог; nil, пока забег не закончен.
func (s *SessionSystem) Result() *RunResult {
	return s.result
}

// Update отсчитывает время. По истечении таймера забег выигран.
func (s *SessionSystem) Update(deltaTime float64) {
	if s.state != component.Gameplay {
		return
	}
	s.elapsed += deltaTime
	s.remaining -= deltaTime
	if s.remaining <= 0 {
		s.remaining = 0
		s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: event.GameOverData{Survived: true, Reason: "time up"}})
	}
}

func (s *SessionSystem) Pause() bool {
	if s.state != component.Gameplay {
		return false
	}
	s.state = component.Paused
	s.eventDispatcher.Dispatch(event.Event{Type: event.GamePaused})
	return true
}

func (s *SessionSystem) Resume() bool {
	if s.state != component.Paused {
		return false
	}
	s.state = component.Gameplay
	s.eventDispatcher.Dispatch(event.Event{Type: event.GameResumed})
	return true
}

func (s *SessionSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		if s.state != component.GameOver {
			s.kills++
		}
	case event.DraftOpened:
		if s.state == component.Gameplay {
			s.state = component.LevelUp
		}
	case event.DraftClosed:
		if s.state == component.LevelUp {
			s.state = component.Gameplay
		}
	case event.GameOver:
		if s.result != nil {
			return
		}
		data, _ := e.Data.(event.GameOverData)
		s.state = component.GameOver
		s.result = &RunResult{
			Survived:     data.Survived,
			Reason:       data.Reason,
			TimeSurvived: s.elapsed,
			Kills:        s.kills,
		}
		s.log.Info().Bool("survived", data.Survived).Str("reason", data.Reason).
			Float64("time", s.elapsed).Int("kills", s.kills).Msg("run finished")
	}
}
