package system

import (
	"testing"

	"go-reef-survivors/internal/component"
	"go-reef-survivors/internal/entity"
	"go-reef-survivors/pkg/geom"
)

type fixedSpawn struct {
	at geom.Vec2
}

func (f fixedSpawn) SpawnPoint() (geom.Vec2, bool) {
	return f.at, true
}

func TestMovementPlayerFollowsInput(t *testing.T) {
	ecs := entity.NewECS()
	player := placePlayer(ecs, geom.Zero)
	s := NewMovementSystem(ecs, defaultStats(), nil)

	ecs.Player.Input = geom.V(0, -3)
	s.Update(0.5)
	if got := ecs.Positions[player].Vec2; got != geom.V(0, -2.5) {
		t.Fatalf("player at %v", got)
	}
	if ecs.Player.LastMoved != geom.V(0, -1) {
		t.Fatalf("last moved = %v", ecs.Player.LastMoved)
	}

	ecs.Player.Input = geom.Zero
	s.Update(0.5)
	if ecs.Player.LastMoved != geom.V(0, -1) {
		t.Fatal("idle frame reset the heading")
	}
}

func TestMovementEnemies(t *testing.T) {
	ecs := entity.NewECS()
	placePlayer(ecs, geom.Zero)
	s := NewMovementSystem(ecs, defaultStats(), fixedSpawn{at: geom.V(0, 14)})

	chaser := placeEnemy(ecs, geom.V(4, 0), 10)
	pushed := placeEnemy(ecs, geom.V(-4, 0), 10)
	ecs.Knockbacks[pushed] = &component.Knockback{Velocity: geom.V(-2, 0), Timer: 0.1}
	straggler := placeEnemy(ecs, geom.V(30, 0), 10)

	s.Update(0.5)
	if got := ecs.Positions[chaser].Vec2; got != geom.V(3.5, 0) {
		t.Fatalf("chaser at %v", got)
	}
	if got := ecs.Velocities[chaser].Dir; got != geom.V(-1, 0) {
		t.Fatalf("chaser heading %v", got)
	}
	if got := ecs.Positions[pushed].Vec2; got != geom.V(-5, 0) {
		t.Fatalf("pushed enemy at %v", got)
	}
	if _, ok := ecs.Knockbacks[pushed]; ok {
		t.Fatal("expired knockback not removed")
	}
	if got := ecs.Positions[straggler].Vec2; got != geom.V(0, 14) {
		t.Fatalf("straggler not relocated: %v", got)
	}
}
