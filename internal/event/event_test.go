package event

import (
	"go-reef-survivors/internal/types"
	"testing"
)

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e)
}

func TestDispatcherDeliversToSubscribers(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(EnemyKilled, a)
	d.SubscribeAll(b, EnemyKilled, LevelUp)

	d.Dispatch(Event{Type: EnemyKilled, Data: EnemyKilledData{ID: 5}})
	d.Dispatch(Event{Type: LevelUp, Data: LevelUpData{Level: 2}})

	if len(a.got) != 1 {
		t.Fatalf("a got %d events, want 1", len(a.got))
	}
	if len(b.got) != 2 {
		t.Fatalf("b got %d events, want 2", len(b.got))
	}
	if data := a.got[0].Data.(EnemyKilledData); data.ID != 5 {
		t.Errorf("payload lost: %+v", data)
	}
}

func TestDispatcherUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(GameOver, a)
	d.Subscribe(GameOver, b)
	d.Unsubscribe(GameOver, a)

	d.Dispatch(Event{Type: GameOver})
	if len(a.got) != 0 || len(b.got) != 1 {
		t.Fatalf("unsubscribe failed: a=%d b=%d", len(a.got), len(b.got))
	}
	if d.Count(GameOver) != 1 {
		t.Fatalf("Count = %d", d.Count(GameOver))
	}
}

func TestTriggerDataMatch(t *testing.T) {
	d := TriggerData{A: 1, B: 2, TagA: types.TagEnemy, TagB: types.TagPet}
	self, other, ok := d.Match(types.TagPet, types.TagEnemy)
	if !ok || self != 2 || other != 1 {
		t.Fatalf("Match = %d %d %v", self, other, ok)
	}
	if _, _, ok := d.Match(types.TagPlayer, types.TagEnemy); ok {
		t.Fatal("unexpected match")
	}
}
