// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"go-reef-survivors/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button представляет кликабельную кнопку в UI.
type Button struct {
	Rect     image.Rectangle
	Text     string
	Color    color.RGBA
	Disabled bool
}

func NewButton(rect image.Rectangle, label string, clr color.RGBA) *Button {
	return &Button{Rect: rect, Text: label, Color: clr}
}

// Contains — попадает ли курсор в кнопку. Выключенная кнопка не кликается.
func (b *Button) Contains(x, y int) bool {
	return !b.Disabled && image.Pt(x, y).In(b.Rect)
}

func (b *Button) Draw(screen *ebiten.Image, face font.Face) {
	fill := b.Color
	if b.Disabled {
		fill = config.DisabledColor
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, fill, true)
	vector.StrokeRect(screen, x, y, w, h, float32(config.StrokeWidth), config.PanelStroke, true)

	bounds := text.BoundString(face, b.Text)
	textX := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2
	textY := b.Rect.Min.Y + (b.Rect.Dy()-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(screen, b.Text, face, textX, textY, config.TextLightColor)
}
