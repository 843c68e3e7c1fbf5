// internal/ui/indicator.go
package ui

import (
	"math"

	"go-reef-survivors/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PollutionIndicator — круг цвета загрязнения с подписью.
// При изменении уровня круг коротко «пульсирует».
type PollutionIndicator struct {
	X, Y    float32
	Radius  float32
	level   float64
	elapsed float64
}

func NewPollutionIndicator(x, y, radius float32, level float64) *PollutionIndicator {
	return &PollutionIndicator{X: x, Y: y, Radius: radius, level: level, elapsed: math.Inf(1)}
}

func (i *PollutionIndicator) Level() float64 {
	return i.level
}

// SetLevel запоминает уровень и перезапускает пульсацию, если он изменился.
func (i *PollutionIndicator) SetLevel(level float64) {
	if level == i.level {
		return
	}
	i.level = level
	i.elapsed = 0
}

func (i *PollutionIndicator) Update(deltaTime float64) {
	i.elapsed += deltaTime
}

// scale — множитель радиуса, затухающий после изменения.
func (i *PollutionIndicator) scale() float64 {
	return 1.0 + 0.3*math.Exp(-i.elapsed*8)
}

func (i *PollutionIndicator) Draw(screen *ebiten.Image) {
	r := i.Radius * float32(i.scale())
	vector.DrawFilledCircle(screen, i.X, i.Y, r, PollutionColor(i.level), true)
	vector.StrokeCircle(screen, i.X, i.Y, r, borderWidth, config.PanelStroke, true)
	text.Draw(screen, PollutionLabel(i.level), DefaultFace, int(i.X+i.Radius)+8, int(i.Y)+4, config.TextLightColor)
}
