// internal/component/player.go
package component

import "go-reef-survivors/pkg/geom"

// Player — данные управления игроком. Характеристики живут в PlayerSystem.
type Player struct {
	Input              geom.Vec2 // направление ввода, нормализованное
	LastMoved          geom.Vec2 // последнее ненулевое направление
	InvincibilityTimer float64
}

// Invincible reports whether the player is inside the i-frame window.
func (p *Player) Invincible() bool {
	return p.InvincibilityTimer > 0
}
