package system

import (
	"testing"

	"go-reef-survivors/internal/component"
	"go-reef-survivors/internal/event"

	"github.com/rs/zerolog"
)

func TestSessionTimerEndsRun(t *testing.T) {
	d := event.NewDispatcher()
	rec := listen(d, event.GameOver)
	s := NewSessionSystem(d, 10, zerolog.Nop())

	d.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyKilledData{}})
	d.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyKilledData{}})
	s.Update(4)
	if s.Remaining() != 6 || s.Elapsed() != 4 || !s.Running() {
		t.Fatalf("remaining %v elapsed %v", s.Remaining(), s.Elapsed())
	}
	s.Update(7)
	if s.State() != component.GameOver || s.Remaining() != 0 {
		t.Fatalf("state %v remaining %v", s.State(), s.Remaining())
	}
	res := s.Result()
	if res == nil || !res.Survived || res.Kills != 2 || res.TimeSurvived != 11 {
		t.Fatalf("result = %+v", res)
	}
	s.Update(5)
	if rec.count(event.GameOver) != 1 || s.Elapsed() != 11 {
		t.Fatalf("timer kept running after game over")
	}
}

func TestSessionFirstResultWins(t *testing.T) {
	d := event.NewDispatcher()
	s := NewSessionSystem(d, 100, zerolog.Nop())
	s.Update(3)
	d.Dispatch(event.Event{Type: event.GameOver, Data: event.GameOverData{Survived: false, Reason: "player died"}})
	d.Dispatch(event.Event{Type: event.GameOver, Data: event.GameOverData{Survived: true, Reason: "time up"}})
	if res := s.Result(); res.Survived || res.Reason != "player died" || res.TimeSurvived != 3 {
		t.Fatalf("result = %+v", res)
	}
}

func TestSessionStates(t *testing.T) {
	d := event.NewDispatcher()
	rec := listen(d, event.GamePaused, event.GameResumed)
	s := NewSessionSystem(d, 100, zerolog.Nop())

	d.Dispatch(event.Event{Type: event.DraftOpened})
	if s.State() != component.LevelUp {
		t.Fatalf("state = %v, want LevelUp", s.State())
	}
	s.Update(5)
	if s.Elapsed() != 0 {
		t.Fatal("timer ran during level up")
	}
	if s.Pause() {
		t.Fatal("paused during level up")
	}
	d.Dispatch(event.Event{Type: event.DraftClosed})
	if s.State() != component.Gameplay {
		t.Fatalf("state = %v, want Gameplay", s.State())
	}

	if !s.Pause() || s.State() != component.Paused {
		t.Fatal("pause failed")
	}
	s.Update(5)
	if s.Elapsed() != 0 {
		t.Fatal("timer ran while paused")
	}
	if !s.Resume() || s.Resume() {
		t.Fatal("resume should succeed exactly once")
	}
	if rec.count(event.GamePaused) != 1 || rec.count(event.GameResumed) != 1 {
		t.Fatalf("paused=%d resumed=%d", rec.count(event.GamePaused), rec.count(event.GameResumed))
	}
}
