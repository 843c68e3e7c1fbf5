// internal/audio/sound_manager.go
package audio

import (
	"sync"
	"time"

	"go-reef-survivors/internal/defs"
	"go-reef-survivors/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"
)

const sampleRate = beep.SampleRate(44100)

// Cue — звуковой сигнал игры.
type Cue int

const (
	CueNone Cue = iota
	CueEnemyHit
	CueEnemyDeath
	CuePickUpExp
	CuePickUpMoney
	CuePickUpHeal
	CueSharkBite
	CueSummonCompanion
	CueLevelUp
)

var cueNames = map[Cue]string{
	CueEnemyHit:        "enemy_hit",
	CueEnemyDeath:      "enemy_death",
	CuePickUpExp:       "pickup_exp",
	CuePickUpMoney:     "pickup_money",
	CuePickUpHeal:      "pickup_heal",
	CueSharkBite:       "shark_bite",
	CueSummonCompanion: "summon_companion",
	CueLevelUp:         "level_up",
}

func (c Cue) String() string {
	if name, ok := cueNames[c]; ok {
		return name
	}
	return "none"
}

// CueFor сопоставляет событию звук.
func CueFor(e event.Event) Cue {
	switch e.Type {
	case event.EnemyHit:
		return CueEnemyHit
	case event.EnemyKilled:
		return CueEnemyDeath
	case event.PetAttacked:
		return CueSharkBite
	case event.PetSummoned:
		return CueSummonCompanion
	case event.LevelUp:
		return CueLevelUp
	case event.PickupCollected:
		d, ok := e.Data.(event.PickupData)
		if !ok {
			return CueNone
		}
		switch defs.PickupKind(d.Kind) {
		case defs.PickupExp:
			return CuePickUpExp
		case defs.PickupGold:
			return CuePickUpMoney
		case defs.PickupHeal:
			return CuePickUpHeal
		}
	}
	return CueNone
}

// SoundManager проигрывает звуки через общий микшер.
// Пока Initialize не вызван, Play ничего не делает: симуляция и тесты работают без звука.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	volume      float64
	log         zerolog.Logger
}

func NewSoundManager(log zerolog.Logger) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: 1,
		log:    log.With().Str("system", "audio").Logger(),
	}
}

// Initialize открывает устройство вывода.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Subscribe подписывает менеджер на игровые события.
func (sm *SoundManager) Subscribe(eventDispatcher *event.Dispatcher) {
	eventDispatcher.SubscribeAll(sm,
		event.EnemyHit,
		event.EnemyKilled,
		event.PickupCollected,
		event.PetAttacked,
		event.PetSummoned,
		event.LevelUp,
	)
}

func (sm *SoundManager) Unsubscribe(eventDispatcher *event.Dispatcher) {
	for _, t := range []event.EventType{event.EnemyHit, event.EnemyKilled, event.PickupCollected, event.PetAttacked, event.PetSummoned, event.LevelUp} {
		eventDispatcher.Unsubscribe(t, sm)
	}
}

func (sm *SoundManager) OnEvent(e event.Event) {
	if cue := CueFor(e); cue != CueNone {
		sm.Play(cue)
	}
}

// SetVolume — общая громкость в [0, 1].
func (sm *SoundManager) SetVolume(v float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.volume = min(max(v, 0), 1)
}

// Play добавляет звук в микшер. Возвращает false, если звук не запущен.
func (sm *SoundManager) Play(cue Cue) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.volume <= 0 {
		return false
	}
	s := Synthesize(cue, sampleRate)
	if s == nil {
		sm.log.Warn().Stringer("cue", cue).Msg("no sound for cue")
		return false
	}
	speaker.Lock()
	sm.mixer.Add(newVolume(s, sm.volume))
	speaker.Unlock()
	return true
}

// Cleanup останавливает все звуки.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}
