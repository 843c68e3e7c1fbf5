// internal/app/game.go
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-reef-survivors/internal/config"
	"go-reef-survivors/internal/defs"
	"go-reef-survivors/internal/entity"
	"go-reef-survivors/internal/event"
	"go-reef-survivors/internal/storage"
	"go-reef-survivors/internal/system"
	"go-reef-survivors/pkg/geom"

	"github.com/rs/zerolog"
)

var ErrUnknownCharacter = errors.New("unknown character")

// Game — один забег: мир, системы и связь с долгоживущими сервисами.
type Game struct {
	ctx             *Context
	log             zerolog.Logger
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	Character       defs.CharacterDefinition

	PlayerSystem       *system.PlayerSystem
	WaveSpawner        *system.WaveSpawner
	CombatSystem       *system.CombatSystem
	ProjectileSystem   *system.ProjectileSystem
	MovementSystem     *system.MovementSystem
	TriggerSystem      *system.TriggerSystem
	PetSystem          *system.PetSystem
	PickupSystem       *system.PickupSystem
	DropSystem         *system.DropSystem
	PollutionSystem    *system.PollutionSystem
	SessionSystem      *system.SessionSystem
	TerrainSystem      *system.TerrainSystem
	DraftSystem        *system.DraftSystem
	VisualEffectSystem *system.VisualEffectSystem

	accumulator    float64
	pollutionStart float64
	record         *storage.RunRecord
	unwatch        []func()
}

// NewGame собирает забег за выбранного персонажа. Прокачка берётся из ledger контекста.
func NewGame(c *Context, characterID string) (*Game, error) {
	character, ok := c.Library.Characters[characterID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCharacter, characterID)
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		ctx:             c,
		log:             c.Log.With().Str("run", characterID).Logger(),
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Character:       character,
		pollutionStart:  c.Pollution.Level(),
	}

	lib, rng := c.Library, c.Rng
	g.SessionSystem = system.NewSessionSystem(eventDispatcher, config.SessionDuration, g.log)
	g.PlayerSystem = system.NewPlayerSystem(ecs, eventDispatcher, lib, c.Wallet, g.log)
	g.WaveSpawner = system.NewWaveSpawner(ecs, eventDispatcher, lib, rng, g.log)
	g.CombatSystem = system.NewCombatSystem(ecs, eventDispatcher, lib, g.PlayerSystem, g.log)
	g.PlayerSystem.SetDamager(g.CombatSystem)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, eventDispatcher, g.CombatSystem)
	g.MovementSystem = system.NewMovementSystem(ecs, g.PlayerSystem, g.WaveSpawner)
	g.TriggerSystem = system.NewTriggerSystem(ecs, eventDispatcher)
	g.PetSystem = system.NewPetSystem(ecs, eventDispatcher, rng, g.CombatSystem, system.DefaultPetConfig(), g.log)
	g.PickupSystem = system.NewPickupSystem(ecs, eventDispatcher, g.PlayerSystem, g.PlayerSystem)
	g.DropSystem = system.NewDropSystem(ecs, eventDispatcher, lib, rng, g.log)
	g.PollutionSystem = system.NewPollutionSystem(eventDispatcher, lib, rng, c.Pollution, g.log)
	g.TerrainSystem = system.NewTerrainSystem(ecs, lib, rng, c.Pollution, g.log)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs)

	g.PlayerSystem.Spawn(character, c.Ledger.Levels(), geom.Zero)
	g.DraftSystem = system.NewDraftSystem(eventDispatcher, lib, rng, g.PlayerSystem.Inventory(), g.PlayerSystem, config.DraftSlots, g.log)
	g.DraftSystem.SyncOwned()

	// кошелёк и загрязнение живут дольше забега: их изменения пересылаются в диспетчер
	g.unwatch = append(g.unwatch,
		c.Wallet.Watch(func(balance int) {
			eventDispatcher.Dispatch(event.Event{Type: event.CurrencyChanged, Data: balance})
		}),
		c.Pollution.Watch(func(level float64) {
			eventDispatcher.Dispatch(event.Event{Type: event.PollutionChanged, Data: level})
		}),
	)

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.GameOver, listener)

	g.log.Info().Int64("seed", rng.Seed()).Msg("run started")
	return g, nil
}

// Update продвигает забег на один кадр. Спавнер и регенерация идут фиксированным шагом.
func (g *Game) Update(deltaTime float64) {
	if !g.SessionSystem.Running() {
		return
	}
	g.ECS.GameTime += deltaTime

	g.accumulator += deltaTime
	for g.accumulator >= config.FixedTick {
		g.WaveSpawner.Update(config.FixedTick)
		g.PlayerSystem.FixedUpdate(config.FixedTick)
		g.accumulator -= config.FixedTick
	}

	g.MovementSystem.Update(deltaTime)
	g.ProjectileSystem.Update(deltaTime)
	g.PetSystem.Update(deltaTime)
	g.TriggerSystem.Update()
	if !g.SessionSystem.Running() {
		return
	}
	g.CombatSystem.Update(deltaTime)
	g.PickupSystem.Update(deltaTime)
	g.PlayerSystem.Update(deltaTime)
	g.VisualEffectSystem.Update(deltaTime)
	g.TerrainSystem.Update(deltaTime)
	g.SessionSystem.Update(deltaTime)
}

// SetInput задаёт направление движения игрока.
func (g *Game) SetInput(dir geom.Vec2) {
	if g.ECS.Player != nil {
		g.ECS.Player.Input = dir
	}
}

// SelectDraft применяет карточку открытого драфта.
func (g *Game) SelectDraft(index int) error {
	return g.DraftSystem.Select(index)
}

// Interact призывает питомца у ближайшей статуи.
func (g *Game) Interact() bool {
	return g.PetSystem.Interact()
}

// Pause ставит забег на паузу и сохраняет профиль.
func (g *Game) Pause(ctx context.Context) bool {
	if !g.SessionSystem.Pause() {
		return false
	}
	if err := g.ctx.Save(ctx); err != nil {
		g.log.Error().Err(err).Msg("save on pause failed")
	}
	return true
}

func (g *Game) Resume() bool {
	return g.SessionSystem.Resume()
}

func (g *Game) Result() *system.RunResult {
	return g.SessionSystem.Result()
}

// Record — запись об окончившемся забеге; nil, пока забег идёт.
func (g *Game) Record() *storage.RunRecord {
	return g.record
}

func (g *Game) Context() *Context {
	return g.ctx
}

// Quit сохраняет профиль и отвязывает наблюдателей. Забег после этого не используется.
func (g *Game) Quit(ctx context.Context) error {
	for _, cancel := range g.unwatch {
		cancel()
	}
	g.unwatch = nil
	return g.ctx.Save(ctx)
}

// finish сохраняет профиль и итог забега.
func (g *Game) finish(ctx context.Context) {
	res := g.SessionSystem.Result()
	if res == nil || g.record != nil {
		return
	}
	g.record = &storage.RunRecord{
		Character:      g.Character.ID,
		Level:          g.PlayerSystem.Progression().Level,
		Kills:          res.Kills,
		TimeSurvived:   res.TimeSurvived,
		GoldEarned:     g.PlayerSystem.RunGold(),
		Survived:       res.Survived,
		PollutionAfter: g.ctx.Pollution.Level(),
		FinishedAt:     time.Now(),
	}
	if err := g.ctx.Save(ctx); err != nil {
		g.log.Error().Err(err).Msg("save after run failed")
	}
	id, err := g.ctx.Runs.Insert(ctx, *g.record)
	if err != nil {
		g.log.Error().Err(err).Msg("run record failed")
		return
	}
	g.record.ID = id
	g.log.Info().Str("id", id).Int("gold", g.record.GoldEarned).
		Float64("pollution_delta", g.pollutionStart-g.record.PollutionAfter).Msg("run recorded")
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.GameOver:
		l.game.finish(context.Background())
	}
}
