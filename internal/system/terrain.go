// internal/system/terrain.go
package system

import (
	"math"

	"go-reef-survivors/internal/component"
	"go-reef-survivors/internal/config"
	"go-reef-survivors/internal/defs"
	"go-reef-survivors/internal/entity"
	"go-reef-survivors/internal/types"
	"go-reef-survivors/internal/utils"
	"go-reef-survivors/pkg/geom"

	"github.com/rs/zerolog"
)

// PollutionSource сообщает, каким делать новый участок дна.
type PollutionSource interface {
	IsPolluted() bool
}

// TerrainSystem достраивает дно чанками вокруг игрока и гасит дальние.
type TerrainSystem struct {
	ecs       *entity.ECS
	lib       *defs.Library
	rng       *utils.PRNGService
	pollution PollutionSource
	log       zerolog.Logger

	cells         map[component.ChunkCell]types.EntityID
	optimizeTimer float64
	safeRadius    float64
}

func NewTerrainSystem(ecs *entity.ECS, lib *defs.Library, rng *utils.PRNGService, pollution PollutionSource, log zerolog.Logger) *TerrainSystem {
	return &TerrainSystem{
		ecs:        ecs,
		lib:        lib,
		rng:        rng,
		pollution:  pollution,
		log:        log.With().Str("system", "terrain").Logger(),
		cells:      make(map[component.ChunkCell]types.EntityID),
		safeRadius: 3,
	}
}

// CellAt — чанк, которому принадлежит точка.
func CellAt(p geom.Vec2) component.ChunkCell {
	return component.ChunkCell{
		X: int(math.Floor(p.X / config.ChunkSize)),
		Y: int(math.Floor(p.Y / config.ChunkSize)),
	}
}

// CellCenter — центр чанка в мировых координатах.
func CellCenter(c component.ChunkCell) geom.Vec2 {
	return geom.V((float64(c.X)+0.5)*config.ChunkSize, (float64(c.Y)+0.5)*config.ChunkSize)
}

// Chunk возвращает чанк в клетке, если он уже создан.
func (s *TerrainSystem) Chunk(c component.ChunkCell) (*component.Chunk, bool) {
	id, ok := s.cells[c]
	if !ok {
		return nil, false
	}
	chunk, ok := s.ecs.Chunks[id]
	return chunk, ok
}

func (s *TerrainSystem) Update(deltaTime float64) {
	if s.ecs.Player == nil {
		return
	}
	playerPos := s.ecs.PlayerPosition()
	center := CellAt(playerPos)
	for dy := -config.ChunkCheckRadius; dy <= config.ChunkCheckRadius; dy++ {
		for dx := -config.ChunkCheckRadius; dx <= config.ChunkCheckRadius; dx++ {
			cell := component.ChunkCell{X: center.X + dx, Y: center.Y + dy}
			if chunk, ok := s.Chunk(cell); ok {
				chunk.Active = true
				continue
			}
			s.generate(cell, playerPos)
		}
	}

	s.optimizeTimer -= deltaTime
	if s.optimizeTimer > 0 {
		return
	}
	s.optimizeTimer = config.ChunkOptimizeCooldown
	for _, id := range entity.SortedIDs(s.ecs.Chunks) {
		chunk := s.ecs.Chunks[id]
		if chunk.Active && geom.Dist(CellCenter(chunk.Cell), playerPos) > config.ChunkCullDistance {
			chunk.Active = false
		}
	}
}

// generate создаёт чанк: вариант дна берётся по текущему загрязнению,
// ящики и статуя расставляются случайно.
func (s *TerrainSystem) generate(cell component.ChunkCell, playerPos geom.Vec2) {
	terrain := s.lib.Terrain
	polluted := s.pollution.IsPolluted()
	variants := terrain.CleanVariants
	if polluted {
		variants = terrain.PollutedVariants
	}

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{Vec2: CellCenter(cell)}
	s.ecs.Chunks[id] = &component.Chunk{
		Cell:     cell,
		Polluted: polluted,
		Variant:  s.rng.Intn(variants),
		Active:   true,
	}
	s.cells[cell] = id

	if prop, ok := s.lib.Props[terrain.PropID]; ok {
		for i := 0; i < terrain.PropsPerChunk; i++ {
			if at, ok := s.placement(cell, playerPos); ok {
				SpawnProp(s.ecs, prop, at)
			}
		}
	}
	if terrain.StatueChance > 0 && s.rng.Float64() < terrain.StatueChance {
		if at, ok := s.placement(cell, playerPos); ok {
			SpawnStatue(s.ecs, at)
		}
	}
	s.log.Debug().Int("x", cell.X).Int("y", cell.Y).Bool("polluted", polluted).Msg("chunk generated")
}

// placement — случайная точка внутри чанка не вплотную к игроку.
func (s *TerrainSystem) placement(cell component.ChunkCell, playerPos geom.Vec2) (geom.Vec2, bool) {
	half := config.ChunkSize / 2
	at := CellCenter(cell).Add(geom.V(s.rng.Range(-half, half), s.rng.Range(-half, half)))
	if geom.Dist(at, playerPos) < s.safeRadius {
		return geom.Vec2{}, false
	}
	return at, true
}
