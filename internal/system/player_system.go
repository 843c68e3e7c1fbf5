// internal/system/player_system.go
package system

import (
	"go-reef-survivors/internal/component"
	"go-reef-survivors/internal/config"
	"go-reef-survivors/internal/defs"
	"go-reef-survivors/internal/entity"
	"go-reef-survivors/internal/event"
	"go-reef-survivors/internal/inventory"
	"go-reef-survivors/internal/meta"
	"go-reef-survivors/internal/stats"
	"go-reef-survivors/internal/types"
	"go-reef-survivors/pkg/geom"

	"github.com/rs/zerolog"
)

// PlayerSystem отвечает за всё, что связано с игроком: характеристики, опыт,
// инвентарь, получение урона и подбор предметов.
type PlayerSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	lib             *defs.Library
	wallet          *meta.Wallet
	damager         Damager
	log             zerolog.Logger

	character   defs.CharacterDefinition
	stats       stats.RuntimeStats
	progression *stats.Progression
	inventory   *inventory.Inventory
	runGold     int
	dead        bool
}

func NewPlayerSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, lib *defs.Library, wallet *meta.Wallet, log zerolog.Logger) *PlayerSystem {
	s := &PlayerSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		lib:             lib,
		wallet:          wallet,
		log:             log.With().Str("system", "player").Logger(),
		progression:     stats.NewProgression(lib.LevelRanges),
		inventory:       inventory.New(config.WeaponSlots, config.PassiveSlots),
	}
	eventDispatcher.SubscribeAll(s, event.TriggerEnter, event.TriggerStay)
	return s
}

// SetDamager задаёт, кому отражать урон (система боя создаётся после игрока).
func (s *PlayerSystem) SetDamager(d Damager) {
	s.damager = d
}

// Spawn создаёт игрока, считает стартовые характеристики и выдаёт стартовое оружие.
func (s *PlayerSystem) Spawn(character defs.CharacterDefinition, levels [meta.CategoryCount]int, at geom.Vec2) types.EntityID {
	s.character = character
	s.stats = stats.ComputeCurrentStats(stats.BaseFromCharacter(character), levels, nil)

	id := s.ecs.NewEntity()
	s.ecs.PlayerID = id
	s.ecs.Player = &component.Player{LastMoved: geom.V(config.DefaultMoveDirection, 0)}
	s.ecs.Positions[id] = &component.Position{Vec2: at}
	s.ecs.Colliders[id] = &component.Collider{Radius: config.PlayerRadius, Tag: types.TagPlayer}
	s.ecs.Renderables[id] = &component.Renderable{Color: config.PlayerColor, Radius: config.PlayerRadius}

	if character.StartingWeapon != "" {
		s.SpawnWeapon(character.StartingWeapon)
	}
	s.notifyStats()
	return id
}

func (s *PlayerSystem) Stats() stats.RuntimeStats {
	return s.stats
}

func (s *PlayerSystem) Character() defs.CharacterDefinition {
	return s.character
}

func (s *PlayerSystem) Progression() *stats.Progression {
	return s.progression
}

func (s *PlayerSystem) Inventory() *inventory.Inventory {
	return s.inventory
}

// RunGold — сколько монет собрано за забег.
func (s *PlayerSystem) RunGold() int {
	return s.runGold
}

func (s *PlayerSystem) Dead() bool {
	return s.dead
}

// Update отсчитывает неуязвимость.
func (s *PlayerSystem) Update(deltaTime float64) {
	if p := s.ecs.Player; p != nil && p.InvincibilityTimer > 0 {
		p.InvincibilityTimer -= deltaTime
	}
}

// FixedUpdate — регенерация здоровья.
func (s *PlayerSystem) FixedUpdate(deltaTime float64) {
	if !s.dead {
		s.stats.Recover(deltaTime)
	}
}

func (s *PlayerSystem) OnEvent(e event.Event) {
	data, ok := e.Data.(event.TriggerData)
	if !ok {
		return
	}
	_, enemyID, ok := data.Match(types.TagPlayer, types.TagEnemy)
	if !ok {
		return
	}
	if enemy, exists := s.ecs.Enemies[enemyID]; exists {
		s.TakeDamage(enemy.Damage, enemyID)
	}
}

// TakeDamage наносит урон игроку с учётом кадров неуязвимости.
// Возвращает true, если урон прошёл.
func (s *PlayerSystem) TakeDamage(amount float64, source types.EntityID) bool {
	player := s.ecs.Player
	if s.dead || player == nil || player.Invincible() || amount <= 0 {
		return false
	}
	died := s.stats.TakeDamage(amount)
	player.InvincibilityTimer = config.InvincibilityTime
	s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerDamaged, Data: event.DamageData{
		Amount: amount, Source: source, Health: s.stats.CurrentHealth,
	}})

	if reflected := s.stats.ReflectedDamage(amount); reflected > 0 && s.damager != nil {
		if _, isEnemy := s.ecs.Enemies[source]; isEnemy {
			s.damager.Hurt(source, reflected, s.ecs.PlayerPosition(), config.KnockbackForce)
		}
	}

	if died {
		s.dead = true
		s.log.Info().Float64("damage", amount).Msg("player died")
		s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: event.GameOverData{Survived: false, Reason: "player died"}})
	}
	return true
}

// Collect применяет подобранный предмет.
func (s *PlayerSystem) Collect(kind defs.PickupKind, amount float64) {
	switch kind {
	case defs.PickupExp:
		s.AddExperience(int(amount))
	case defs.PickupGold:
		s.AddGold(int(amount))
	case defs.PickupHeal:
		s.RestoreHealth(amount)
	default:
		s.log.Warn().Str("kind", string(kind)).Msg("unknown pickup kind")
	}
}

// AddExperience начисляет опыт и рассылает LevelUp за каждый полученный уровень.
func (s *PlayerSystem) AddExperience(n int) {
	gained := s.progression.AddExperience(n)
	s.eventDispatcher.Dispatch(event.Event{Type: event.ExpChanged, Data: event.ExpData{
		Experience: s.progression.Experience, Cap: s.progression.ExperienceCap, Level: s.progression.Level,
	}})
	first := s.progression.Level - gained + 1
	for lvl := first; lvl <= s.progression.Level; lvl++ {
		s.log.Debug().Int("level", lvl).Msg("level up")
		s.eventDispatcher.Dispatch(event.Event{Type: event.LevelUp, Data: event.LevelUpData{Level: lvl}})
	}
}

// AddGold зачисляет монеты сразу в кошелёк.
func (s *PlayerSystem) AddGold(n int) {
	if n <= 0 {
		return
	}
	s.runGold += n
	s.wallet.Add(n)
}

// RestoreHealth лечит не выше максимума.
func (s *PlayerSystem) RestoreHealth(amount float64) float64 {
	restored := s.stats.RestoreHealth(amount)
	if restored > 0 {
		s.notifyStats()
	}
	return restored
}

// ApplyModifier применяет модификатор характеристики.
func (s *PlayerSystem) ApplyModifier(m stats.Modifier) {
	s.stats.ApplyModifier(m)
	s.notifyStats()
}

func (s *PlayerSystem) notifyStats() {
	s.eventDispatcher.Dispatch(event.Event{Type: event.StatChanged, Data: s.stats})
}
