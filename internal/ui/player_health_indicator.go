// internal/ui/player_health_indicator.go
package ui

import (
	"go-reef-survivors/internal/config"
	"go-reef-survivors/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PlayerHealthIndicator — полоска здоровья над игроком.
// После урона полоска «мигает» белым DamageFlashDuration секунд.
type PlayerHealthIndicator struct {
	Width, Height float32
	flash         float64
}

func NewPlayerHealthIndicator(width, height float32) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{Width: width, Height: height}
}

// Hit запускает вспышку.
func (i *PlayerHealthIndicator) Hit() {
	i.flash = config.DamageFlashDuration
}

func (i *PlayerHealthIndicator) Update(deltaTime float64) {
	if i.flash > 0 {
		i.flash -= deltaTime
	}
}

// Draw рисует полоску с центром в (cx, y).
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, cx, y float32, current, max float64) {
	x := cx - i.Width/2
	vector.DrawFilledRect(screen, x, y, i.Width, i.Height, render.DarkenColor(config.HealthBarColor), true)

	fill := i.Width * float32(fillRatio(current, max))
	clr := config.HealthBarColor
	if i.flash > 0 {
		clr = render.LerpColor(config.HealthBarColor, config.FlashColor, i.flash/config.DamageFlashDuration)
	}
	if fill > 0 {
		vector.DrawFilledRect(screen, x, y, fill, i.Height, clr, true)
	}
	vector.StrokeRect(screen, x, y, i.Width, i.Height, borderWidth, config.TextDarkColor, true)
}
