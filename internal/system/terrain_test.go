package system

import (
	"testing"

	"go-reef-survivors/internal/component"
	"go-reef-survivors/internal/config"
	"go-reef-survivors/internal/defs"
	"go-reef-survivors/internal/entity"
	"go-reef-survivors/internal/event"
	"go-reef-survivors/internal/meta"
	"go-reef-survivors/internal/utils"
	"go-reef-survivors/pkg/geom"

	"github.com/rs/zerolog"
)

func TestCellAt(t *testing.T) {
	tests := []struct {
		p    geom.Vec2
		want component.ChunkCell
	}{
		{geom.V(0, 0), component.ChunkCell{X: 0, Y: 0}},
		{geom.V(19.9, 5), component.ChunkCell{X: 0, Y: 0}},
		{geom.V(20, 40), component.ChunkCell{X: 1, Y: 2}},
		{geom.V(-0.1, -20.5), component.ChunkCell{X: -1, Y: -2}},
	}
	for _, tt := range tests {
		if got := CellAt(tt.p); got != tt.want {
			t.Errorf("CellAt(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestTerrainVariantFollowsPollution(t *testing.T) {
	tests := []struct {
		name     string
		level    float64
		polluted bool
	}{
		{"clean", 49.9, false},
		{"threshold", 50, true},
		{"dirty", 100, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ecs := entity.NewECS()
			placePlayer(ecs, geom.V(10, 10))
			s := NewTerrainSystem(ecs, defs.Default(), utils.NewPRNGService(9), meta.NewPollutionMeter(tt.level), zerolog.Nop())
			s.Update(0.02)

			if len(ecs.Chunks) != 9 {
				t.Fatalf("chunks = %d, want 9", len(ecs.Chunks))
			}
			for _, c := range ecs.Chunks {
				if c.Polluted != tt.polluted || c.Variant < 0 || c.Variant >= 3 || !c.Active {
					t.Fatalf("chunk = %+v", c)
				}
			}
		})
	}
}

func TestTerrainCullsAndReactivates(t *testing.T) {
	ecs := entity.NewECS()
	player := placePlayer(ecs, geom.V(10, 10))
	lib := defs.Default()
	lib.Terrain.PropsPerChunk = 0
	lib.Terrain.StatueChance = 0
	s := NewTerrainSystem(ecs, lib, utils.NewPRNGService(9), meta.NewPollutionMeter(0), zerolog.Nop())
	s.Update(0.02)
	home, _ := s.Chunk(component.ChunkCell{X: 0, Y: 0})

	ecs.Positions[player].Vec2 = geom.V(10+5*config.ChunkSize, 10)
	s.Update(config.ChunkOptimizeCooldown)
	if home.Active {
		t.Fatal("far chunk still active")
	}
	if len(ecs.Chunks) != 18 {
		t.Fatalf("chunks = %d, want 18", len(ecs.Chunks))
	}

	ecs.Positions[player].Vec2 = geom.V(10, 10)
	s.Update(0.02)
	again, _ := s.Chunk(component.ChunkCell{X: 0, Y: 0})
	if again != home || !home.Active || len(ecs.Chunks) != 18 {
		t.Fatal("returning did not reuse the old chunk")
	}
}

func TestTerrainPlacesPropsAwayFromPlayer(t *testing.T) {
	ecs := entity.NewECS()
	placePlayer(ecs, geom.V(10, 10))
	lib := defs.Default()
	lib.Terrain.StatueChance = 1
	s := NewTerrainSystem(ecs, lib, utils.NewPRNGService(4), meta.NewPollutionMeter(100), zerolog.Nop())
	s.Update(0.02)

	if len(ecs.Props) == 0 || len(ecs.PetStatues) == 0 {
		t.Fatalf("props=%d statues=%d", len(ecs.Props), len(ecs.PetStatues))
	}
	for id := range ecs.Props {
		if geom.Dist(ecs.Positions[id].Vec2, geom.V(10, 10)) < 3 {
			t.Fatalf("prop spawned on top of the player")
		}
	}
}

func TestPollutionCleanupOnKill(t *testing.T) {
	d := event.NewDispatcher()
	meter := meta.NewPollutionMeter(50)
	NewPollutionSystem(d, defs.Default(), utils.NewPRNGService(2), meter, zerolog.Nop())

	d.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyKilledData{DefID: "plastic_bag"}})
	if meter.Level() != 50 {
		t.Fatalf("plain enemy cleaned the reef: %v", meter.Level())
	}
	d.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyKilledData{DefID: "bottle_swarm"}})
	if got := 50 - meter.Level(); got < 0.6 || got > 2.0 {
		t.Fatalf("cleanup = %v, want within [0.6, 2.0]", got)
	}
}
