// internal/system/pet.go
package system

import (
	"math"

	"go-reef-survivors/internal/component"
	"go-reef-survivors/internal/config"
	"go-reef-survivors/internal/entity"
	"go-reef-survivors/internal/event"
	"go-reef-survivors/internal/types"
	"go-reef-survivors/internal/utils"
	"go-reef-survivors/pkg/geom"

	"github.com/rs/zerolog"
)

// PetConfig — параметры боевого поведения питомца.
type PetConfig struct {
	FollowRadius    float64
	DetectionRadius float64
	Damage          float64
	RechargeTime    float64
	RetryDelay      float64
	MaxSpeed        float64
	Smoothing       float64
	HopHeight       float64
	ArriveEpsilon   float64
	MaxPets         int
}

func DefaultPetConfig() PetConfig {
	return PetConfig{
		FollowRadius:    config.PetFollowRadius,
		DetectionRadius: config.PetDetectionRadius,
		Damage:          config.PetDamage,
		RechargeTime:    config.PetRechargeTime,
		RetryDelay:      config.PetRetryDelay,
		MaxSpeed:        config.PetMoveSpeed,
		Smoothing:       config.PetSmoothing,
		HopHeight:       config.PetHopHeight,
		ArriveEpsilon:   config.PetArriveEpsilon,
		MaxPets:         config.MaxPets,
	}
}

// PetSystem ведёт автомат питомцев: перезарядка с блужданием вокруг игрока,
// поиск цели, бросок, возврат.
type PetSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	damager         Damager
	cfg             PetConfig
	log             zerolog.Logger
}

func NewPetSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, rng *utils.PRNGService, damager Damager, cfg PetConfig, log zerolog.Logger) *PetSystem {
	s := &PetSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		damager:         damager,
		cfg:             cfg,
		log:             log.With().Str("system", "pet").Logger(),
	}
	eventDispatcher.SubscribeAll(s, event.TriggerEnter, event.TriggerStay, event.TriggerExit)
	return s
}

// SummonPet создаёт питомца в точке. Число питомцев ограничено.
func (s *PetSystem) SummonPet(at geom.Vec2) (types.EntityID, bool) {
	if len(s.ecs.Pets) >= s.cfg.MaxPets {
		s.log.Info().Int("max", s.cfg.MaxPets).Msg("pet limit reached")
		return 0, false
	}
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{Vec2: at}
	s.ecs.Colliders[id] = &component.Collider{Radius: config.PetRadius, Tag: types.TagPet}
	s.ecs.Renderables[id] = &component.Renderable{Color: config.PetColor, Radius: config.PetRadius}
	s.ecs.Pets[id] = &component.Pet{
		State:         component.PetRecharging,
		RechargeTimer: s.cfg.RechargeTime,
		HitThisRun:    make(map[types.EntityID]bool),
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.PetSummoned, Data: event.PetData{
		ID: id, Count: len(s.ecs.Pets), Max: s.cfg.MaxPets,
	}})
	return id, true
}

// Interact призывает питомца у статуи, рядом с которой стоит игрок.
func (s *PetSystem) Interact() bool {
	for _, id := range entity.SortedIDs(s.ecs.PetStatues) {
		statue := s.ecs.PetStatues[id]
		if statue.Used || !statue.PlayerInRange {
			continue
		}
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		if _, ok := s.SummonPet(pos.Vec2); !ok {
			return false
		}
		statue.Used = true
		return true
	}
	return false
}

func (s *PetSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.Pets) {
		pet := s.ecs.Pets[id]
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		s.think(pet, pos.Vec2, deltaTime)
		s.advanceMove(pet, pos, deltaTime)
	}
}

func (s *PetSystem) think(pet *component.Pet, pos geom.Vec2, deltaTime float64) {
	switch pet.State {
	case component.PetRoaming, component.PetRecharging:
		pet.RechargeTimer -= deltaTime
		if pet.RechargeTimer <= 0 {
			// блуждание прерывается, чтобы не спорить с броском за позицию
			s.cancelMove(pet)
			pet.State = component.PetSeekingTarget
			return
		}
		if pet.Move == nil {
			s.startMove(pet, pos, s.roamAnchor(), false)
		}

	case component.PetSeekingTarget:
		clear(pet.HitThisRun)
		target, found := nearestEnemy(s.ecs, pos, s.cfg.DetectionRadius, nil)
		if !found {
			pet.RechargeTimer = s.cfg.RetryDelay
			pet.State = component.PetRecharging
			return
		}
		pet.Target = target
		pet.State = component.PetMovingToTarget

	case component.PetMovingToTarget:
		targetPos, alive := s.ecs.Position(pet.Target)
		if _, isEnemy := s.ecs.Enemies[pet.Target]; !alive || !isEnemy {
			s.cancelMove(pet)
			pet.State = component.PetSeekingTarget
			return
		}
		if pet.Move == nil {
			s.startMove(pet, pos, targetPos, true)
		} else {
			pet.Move.Dest = targetPos
		}

	case component.PetReturning:
		if pet.Move == nil {
			s.startMove(pet, pos, s.roamAnchor(), true)
		}
	}
}

// roamAnchor — случайная точка на окружности вокруг игрока.
func (s *PetSystem) roamAnchor() geom.Vec2 {
	return s.ecs.PlayerPosition().Add(s.rng.Direction().Scale(s.cfg.FollowRadius))
}

func (s *PetSystem) startMove(pet *component.Pet, from, dest geom.Vec2, hop bool) {
	pet.Move = &component.PetMove{Dest: dest, Total: geom.Dist(from, dest), Hopping: hop}
}

func (s *PetSystem) cancelMove(pet *component.Pet) {
	pet.Move = nil
	pet.HopOffset = 0
}

func (s *PetSystem) advanceMove(pet *component.Pet, pos *component.Position, deltaTime float64) {
	move := pet.Move
	if move == nil {
		return
	}
	if geom.Dist(pos.Vec2, move.Dest) > s.cfg.ArriveEpsilon {
		if dx := move.Dest.X - pos.X; dx != 0 {
			pet.FacingLeft = dx < 0
		}
		pos.Vec2 = geom.SmoothDamp(pos.Vec2, move.Dest, &pet.Velocity, s.cfg.Smoothing, s.cfg.MaxSpeed, deltaTime)
		if move.Hopping && move.Total > 0 {
			progress := utils.Clamp(1-geom.Dist(pos.Vec2, move.Dest)/move.Total, 0, 1)
			pet.HopOffset = s.cfg.HopHeight * math.Sin(progress*math.Pi)
		}
	}
	if geom.Dist(pos.Vec2, move.Dest) > s.cfg.ArriveEpsilon {
		return
	}

	// прибыли
	pet.Move = nil
	pet.HopOffset = 0
	if pet.State == component.PetReturning {
		pet.RechargeTimer = s.cfg.RechargeTime
		pet.State = component.PetRecharging
	}
}

func (s *PetSystem) OnEvent(e event.Event) {
	data, ok := e.Data.(event.TriggerData)
	if !ok {
		return
	}
	if statueID, _, ok := data.Match(types.TagStatue, types.TagPlayer); ok {
		if statue, exists := s.ecs.PetStatues[statueID]; exists && e.Type != event.TriggerStay {
			statue.PlayerInRange = e.Type == event.TriggerEnter
		}
		return
	}
	// цель могла уже касаться питомца к началу броска, тогда придёт только Stay
	if e.Type == event.TriggerExit {
		return
	}
	petID, enemyID, ok := data.Match(types.TagPet, types.TagEnemy)
	if !ok {
		return
	}
	pet, exists := s.ecs.Pets[petID]
	if !exists || pet.State != component.PetMovingToTarget || pet.HitThisRun[enemyID] {
		return
	}
	if _, isEnemy := s.ecs.Enemies[enemyID]; !isEnemy {
		return
	}
	pos := s.ecs.Positions[petID].Vec2
	pet.HitThisRun[enemyID] = true
	s.damager.Hurt(enemyID, s.cfg.Damage, pos, config.KnockbackForce)
	s.eventDispatcher.Dispatch(event.Event{Type: event.PetAttacked, Data: event.PetData{ID: petID, Count: len(s.ecs.Pets), Max: s.cfg.MaxPets}})

	// бросок прерывается, питомец возвращается
	s.cancelMove(pet)
	pet.State = component.PetReturning
}
