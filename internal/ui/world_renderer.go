// internal/ui/world_renderer.go
package ui

import (
	"go-reef-survivors/internal/config"
	"go-reef-survivors/internal/entity"
	"go-reef-survivors/internal/types"
	"go-reef-survivors/pkg/geom"
	"go-reef-survivors/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Слои отрисовки снизу вверх.
const (
	layerGround = iota
	layerPickup
	layerEnemy
	layerAttack
	layerPet
	layerPlayer
	layerCount
)

// WorldRenderer рисует мир кругами поверх дна, камера следует за игроком.
type WorldRenderer struct {
	Camera geom.Vec2
}

func NewWorldRenderer() *WorldRenderer {
	return &WorldRenderer{}
}

// ToScreen переводит мировые координаты в экранные.
func (r *WorldRenderer) ToScreen(p geom.Vec2) (float32, float32) {
	d := p.Sub(r.Camera).Scale(config.PixelsPerUnit)
	return float32(d.X + config.ScreenWidth/2), float32(d.Y + config.ScreenHeight/2)
}

// Follow ставит камеру на игрока.
func (r *WorldRenderer) Follow(ecs *entity.ECS) {
	r.Camera = ecs.PlayerPosition()
}

func (r *WorldRenderer) Draw(screen *ebiten.Image, ecs *entity.ECS) {
	screen.Fill(config.BackgroundColor)
	r.drawChunks(screen, ecs)

	ids := entity.SortedIDs(ecs.Renderables)
	for layer := 0; layer < layerCount; layer++ {
		for _, id := range ids {
			if layerOf(ecs, id) == layer {
				r.drawEntity(screen, ecs, id)
			}
		}
	}
}

func (r *WorldRenderer) drawChunks(screen *ebiten.Image, ecs *entity.ECS) {
	size := float32(config.ChunkSize * config.PixelsPerUnit)
	for _, id := range entity.SortedIDs(ecs.Chunks) {
		chunk := ecs.Chunks[id]
		pos, ok := ecs.Positions[id]
		if !chunk.Active || !ok {
			continue
		}
		base := config.CleanChunkColor
		if chunk.Polluted {
			base = config.DirtyChunkColor
		}
		// варианты отличаются яркостью
		clr := render.LerpColor(base, render.DarkenColor(base), float64(chunk.Variant)*0.15)
		x, y := r.ToScreen(pos.Vec2)
		vector.DrawFilledRect(screen, x-size/2, y-size/2, size, size, clr, false)
	}
}

func (r *WorldRenderer) drawEntity(screen *ebiten.Image, ecs *entity.ECS, id types.EntityID) {
	rend := ecs.Renderables[id]
	pos, ok := ecs.Positions[id]
	if !ok {
		return
	}
	x, y := r.ToScreen(pos.Vec2)
	radius := float32(rend.Radius * config.PixelsPerUnit)
	if x < -radius || y < -radius || x > config.ScreenWidth+radius || y > config.ScreenHeight+radius {
		return
	}

	clr := rend.Color
	if flash, ok := ecs.DamageFlashes[id]; ok && flash.Timer < flash.Duration {
		clr = config.FlashColor
	}
	if pet, ok := ecs.Pets[id]; ok {
		y -= float32(pet.HopOffset * config.PixelsPerUnit)
	}
	if statue, ok := ecs.PetStatues[id]; ok && statue.Used {
		clr = render.DarkenColor(clr)
	}
	vector.DrawFilledCircle(screen, x, y, radius, clr, true)

	if statue, ok := ecs.PetStatues[id]; ok && statue.PlayerInRange && !statue.Used {
		drawCentered(screen, "[E] summon", DefaultFace, int(x), int(y-radius)-6, config.TextLightColor)
	}
}

func layerOf(ecs *entity.ECS, id types.EntityID) int {
	switch {
	case id == ecs.PlayerID:
		return layerPlayer
	case hasKey(ecs.Pets, id):
		return layerPet
	case hasKey(ecs.Projectiles, id), hasKey(ecs.Orbiters, id):
		return layerAttack
	case hasKey(ecs.Enemies, id):
		return layerEnemy
	case hasKey(ecs.Pickups, id):
		return layerPickup
	}
	return layerGround
}

func hasKey[V any](m map[types.EntityID]V, id types.EntityID) bool {
	_, ok := m[id]
	return ok
}
