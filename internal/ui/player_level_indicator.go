// internal/ui/player_level_indicator.go
package ui

import (
	"go-reef-survivors/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PlayerLevelIndicator — полоса опыта во всю ширину экрана и номер уровня.
type PlayerLevelIndicator struct {
	X, Y          float32
	Width, Height float32
}

const borderWidth = 1

func NewPlayerLevelIndicator(x, y, width, height float32) *PlayerLevelIndicator {
	return &PlayerLevelIndicator{X: x, Y: y, Width: width, Height: height}
}

// Draw отрисовывает индикатор.
func (i *PlayerLevelIndicator) Draw(screen *ebiten.Image, level, currentXP, xpToNext int) {
	vector.DrawFilledRect(screen, i.X, i.Y, i.Width, i.Height, config.PanelColor, true)

	fill := fillRatio(float64(currentXP), float64(xpToNext))
	fillWidth := (i.Width - borderWidth*2) * float32(fill)
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth, fillWidth, i.Height-borderWidth*2, config.ExpBarColor, true)
	}
	vector.StrokeRect(screen, i.X, i.Y, i.Width, i.Height, borderWidth, config.PanelStroke, true)

	label := LevelCounter(level)
	b := text.BoundString(DefaultFace, label)
	text.Draw(screen, label, DefaultFace, int(i.X+i.Width)-b.Dx()-6, int(i.Y+i.Height/2)+b.Dy()/2-1, config.TextLightColor)
	drawCentered(screen, ExpCounter(currentXP, xpToNext), DefaultFace, int(i.X+i.Width/2), int(i.Y+i.Height/2)+4, config.TextLightColor)
}

// fillRatio — доля заполнения полосы в [0, 1].
func fillRatio(current, max float64) float64 {
	if max <= 0 {
		return 0
	}
	return clamp01(current / max)
}
