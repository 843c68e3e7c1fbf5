package audio

import (
	"testing"
	"time"

	"go-reef-survivors/internal/defs"
	"go-reef-survivors/internal/event"

	"github.com/gopxl/beep"
	"github.com/rs/zerolog"
)

func TestCueFor(t *testing.T) {
	tests := []struct {
		e    event.Event
		want Cue
	}{
		{event.Event{Type: event.EnemyHit}, CueEnemyHit},
		{event.Event{Type: event.EnemyKilled}, CueEnemyDeath},
		{event.Event{Type: event.PetAttacked}, CueSharkBite},
		{event.Event{Type: event.PetSummoned}, CueSummonCompanion},
		{event.Event{Type: event.LevelUp}, CueLevelUp},
		{event.Event{Type: event.PickupCollected, Data: event.PickupData{Kind: string(defs.PickupExp)}}, CuePickUpExp},
		{event.Event{Type: event.PickupCollected, Data: event.PickupData{Kind: string(defs.PickupGold)}}, CuePickUpMoney},
		{event.Event{Type: event.PickupCollected, Data: event.PickupData{Kind: string(defs.PickupHeal)}}, CuePickUpHeal},
		{event.Event{Type: event.PickupCollected, Data: event.PickupData{Kind: "mystery"}}, CueNone},
		{event.Event{Type: event.PickupCollected}, CueNone},
		{event.Event{Type: event.GameOver}, CueNone},
	}
	for _, tt := range tests {
		if got := CueFor(tt.e); got != tt.want {
			t.Errorf("CueFor(%s) = %v, want %v", tt.e.Type, got, tt.want)
		}
	}
}

func TestPlayWithoutSpeakerIsNoop(t *testing.T) {
	sm := NewSoundManager(zerolog.Nop())
	d := event.NewDispatcher()
	sm.Subscribe(d)
	if d.Count(event.EnemyHit) != 1 {
		t.Fatal("sound manager should listen to hits")
	}
	if sm.Play(CueLevelUp) {
		t.Error("play must be a no-op before Initialize")
	}
	d.Dispatch(event.Event{Type: event.EnemyHit})
	sm.Cleanup()

	sm.Unsubscribe(d)
	if d.Count(event.EnemyHit) != 0 {
		t.Error("unsubscribe should remove the listener")
	}
}

func TestEveryCueSynthesizesFiniteSound(t *testing.T) {
	rate := beep.SampleRate(8000)
	for cue := CueEnemyHit; cue <= CueLevelUp; cue++ {
		s := Synthesize(cue, rate)
		if s == nil {
			t.Fatalf("%v has no sound", cue)
		}
		total := 0
		buf := make([][2]float64, 512)
		for i := 0; i < 100; i++ {
			n, ok := s.Stream(buf)
			total += n
			for j := 0; j < n; j++ {
				if buf[j][0] < -1 || buf[j][0] > 1 {
					t.Fatalf("%v sample %f out of range", cue, buf[j][0])
				}
			}
			if !ok {
				break
			}
		}
		if total == 0 || total >= 100*512 {
			t.Errorf("%v streamed %d samples", cue, total)
		}
	}
	if Synthesize(CueNone, rate) != nil {
		t.Error("CueNone must have no sound")
	}
}

func TestOscillatorStopsAtDuration(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(100, 10*time.Millisecond, WaveSine, rate)
	buf := make([][2]float64, 32)
	n, ok := osc.Stream(buf)
	if n != 10 || !ok {
		t.Fatalf("first stream = %d, %v", n, ok)
	}
	n, ok = osc.Stream(buf)
	if n != 0 || ok {
		t.Errorf("drained stream = %d, %v", n, ok)
	}
}
