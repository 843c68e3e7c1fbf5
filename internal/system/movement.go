// internal/system/movement.go
package system

import (
	"go-reef-survivors/internal/config"
	"go-reef-survivors/internal/entity"
	"go-reef-survivors/pkg/geom"
)

// SpawnPointSource выдаёт свежую точку появления врага.
type SpawnPointSource interface {
	SpawnPoint() (geom.Vec2, bool)
}

// MovementSystem двигает игрока по вводу и врагов к игроку.
type MovementSystem struct {
	ecs    *entity.ECS
	stats  StatsSource
	spawns SpawnPointSource
}

func NewMovementSystem(ecs *entity.ECS, stats StatsSource, spawns SpawnPointSource) *MovementSystem {
	return &MovementSystem{ecs: ecs, stats: stats, spawns: spawns}
}

func (s *MovementSystem) Update(deltaTime float64) {
	s.movePlayer(deltaTime)

	target := s.ecs.PlayerPosition()
	for _, id := range entity.SortedIDs(s.ecs.Enemies) {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}

		// Отбрасывание перекрывает преследование
		if kb, ok := s.ecs.Knockbacks[id]; ok {
			pos.Vec2 = pos.Vec2.Add(kb.Velocity.Scale(deltaTime))
			kb.Timer -= deltaTime
			if kb.Timer <= 0 {
				delete(s.ecs.Knockbacks, id)
			}
			continue
		}

		// Отставших врагов переносим на новую точку появления
		if geom.Dist(pos.Vec2, target) >= config.EnemyDespawnDistance && s.spawns != nil {
			if p, ok := s.spawns.SpawnPoint(); ok {
				pos.Vec2 = p
				continue
			}
		}

		vel, ok := s.ecs.Velocities[id]
		if !ok {
			continue
		}
		vel.Dir = target.Sub(pos.Vec2).Normalized()
		pos.Vec2 = geom.MoveTowards(pos.Vec2, target, vel.Speed*deltaTime)
	}
}

func (s *MovementSystem) movePlayer(deltaTime float64) {
	player := s.ecs.Player
	pos, ok := s.ecs.Positions[s.ecs.PlayerID]
	if player == nil || !ok {
		return
	}
	if player.Input.IsZero() {
		return
	}
	dir := player.Input.Normalized()
	player.LastMoved = dir
	pos.Vec2 = pos.Vec2.Add(dir.Scale(s.stats.Stats().MoveSpeed * deltaTime))
}
