// internal/system/wave.go
package system

import (
	"go-reef-survivors/internal/component"
	"go-reef-survivors/internal/defs"
	"go-reef-survivors/internal/entity"
	"go-reef-survivors/internal/event"
	"go-reef-survivors/internal/utils"
	"go-reef-survivors/pkg/geom"

	"github.com/rs/zerolog"
)

// WaveSpawner выпускает врагов волнами вокруг игрока. Работает на фиксированном шаге.
type WaveSpawner struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	lib             *defs.Library
	rng             *utils.PRNGService
	log             zerolog.Logger

	waves        []defs.WaveDefinition
	spawnPoints  []geom.Vec2
	waveInterval float64
	spawnTimer   float64
	waveTimer    float64

	EnemiesAlive      int
	MaxEnemiesAllowed int
	MaxEnemiesReached bool
}

func NewWaveSpawner(ecs *entity.ECS, eventDispatcher *event.Dispatcher, lib *defs.Library, rng *utils.PRNGService, log zerolog.Logger) *WaveSpawner {
	s := &WaveSpawner{
		ecs:               ecs,
		eventDispatcher:   eventDispatcher,
		lib:               lib,
		rng:               rng,
		log:               log.With().Str("system", "wave").Logger(),
		waves:             lib.Waves,
		spawnPoints:       lib.Spawner.SpawnPoints,
		waveInterval:      lib.Spawner.WaveInterval,
		MaxEnemiesAllowed: lib.Spawner.MaxEnemiesAllowed,
	}
	if len(s.waves) > 0 {
		ecs.Wave = newWave(0, s.waves[0])
	}
	eventDispatcher.Subscribe(event.EnemyKilled, s)
	return s
}

func newWave(index int, def defs.WaveDefinition) *component.Wave {
	w := &component.Wave{Index: index, Name: def.Name, SpawnInterval: def.SpawnInterval}
	for _, g := range def.Groups {
		w.Groups = append(w.Groups, component.EnemyGroup{EnemyID: g.EnemyID, Count: g.Count})
		w.Quota += g.Count
	}
	return w
}

// Update продвигает таймеры спавна и смены волны.
func (s *WaveSpawner) Update(deltaTime float64) {
	wave := s.ecs.Wave
	if wave == nil {
		return
	}

	// пауза между волнами отсчитывается с момента, когда квота выпущена
	if wave.Done() {
		s.waveTimer += deltaTime
	}
	if wave.Done() && s.waveTimer >= s.waveInterval && wave.Index < len(s.waves)-1 {
		s.advance()
		wave = s.ecs.Wave
	}

	s.spawnTimer += deltaTime
	if s.spawnTimer >= wave.SpawnInterval {
		s.spawnTimer = 0
		s.spawnNext(wave)
	}
}

func (s *WaveSpawner) advance() {
	next := s.ecs.Wave.Index + 1
	s.ecs.Wave = newWave(next, s.waves[next])
	s.waveTimer = 0
	s.log.Info().Int("wave", next).Str("name", s.ecs.Wave.Name).Int("quota", s.ecs.Wave.Quota).Msg("wave started")
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveAdvanced, Data: event.WaveData{Index: next, Name: s.ecs.Wave.Name}})
}

// spawnNext выпускает одного врага из первой незаполненной группы.
// Возвращает false, если спавн не состоялся.
func (s *WaveSpawner) spawnNext(wave *component.Wave) bool {
	if wave.Done() || s.MaxEnemiesReached || s.EnemiesAlive >= s.MaxEnemiesAllowed {
		return false
	}
	for i := range wave.Groups {
		group := &wave.Groups[i]
		if group.Spawned >= group.Count {
			continue
		}
		def, ok := s.lib.Enemies[group.EnemyID]
		if !ok {
			s.log.Warn().Str("enemy", group.EnemyID).Msg("enemy definition not found, skipping spawn")
			return false
		}
		if len(s.spawnPoints) == 0 {
			s.log.Warn().Msg("no spawn points configured, skipping spawn")
			return false
		}
		offset := s.spawnPoints[s.rng.Intn(len(s.spawnPoints))]
		id := SpawnEnemy(s.ecs, def, s.ecs.PlayerPosition().Add(offset))

		group.Spawned++
		wave.Spawned++
		s.EnemiesAlive++
		if s.EnemiesAlive >= s.MaxEnemiesAllowed {
			s.MaxEnemiesReached = true
		}
		s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: id})
		return true
	}
	return false
}

// SpawnPoint возвращает случайную точку появления относительно игрока.
func (s *WaveSpawner) SpawnPoint() (geom.Vec2, bool) {
	if len(s.spawnPoints) == 0 {
		return geom.Zero, false
	}
	return s.ecs.PlayerPosition().Add(s.spawnPoints[s.rng.Intn(len(s.spawnPoints))]), true
}

func (s *WaveSpawner) OnEvent(e event.Event) {
	if e.Type != event.EnemyKilled {
		return
	}
	if s.EnemiesAlive > 0 {
		s.EnemiesAlive--
	}
	if s.EnemiesAlive < s.MaxEnemiesAllowed {
		s.MaxEnemiesReached = false
	}
}
