// internal/ui/wave_indicator.go
package ui

import (
	"image/color"

	"go-reef-survivors/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// WaveIndicator отображает обратный отсчёт и номер волны римскими цифрами.
type WaveIndicator struct {
	X, Y             int
	Color            color.Color
	OutlineColor     color.Color
	OutlineThickness int
}

func NewWaveIndicator(x, y int) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            config.TextLightColor,
		OutlineColor:     config.TextDarkColor,
		OutlineThickness: 1,
	}
}

// Draw рисует таймер, под ним волну. wave — номер с единицы, 0 — не рисовать волну.
func (i *WaveIndicator) Draw(screen *ebiten.Image, remaining float64, wave int, name string) {
	timer := FormatTimer(remaining)
	b := text.BoundString(DefaultFace, timer)
	drawOutlined(screen, timer, DefaultFace, i.X-b.Dx()/2, i.Y, i.OutlineThickness, i.Color, i.OutlineColor)

	if wave <= 0 {
		return
	}
	label := toRoman(wave)
	if name != "" {
		label += " " + name
	}
	b = text.BoundString(DefaultFace, label)
	drawOutlined(screen, label, DefaultFace, i.X-b.Dx()/2, i.Y+18, i.OutlineThickness, i.Color, i.OutlineColor)
}
