// internal/ui/results_panel.go
package ui

import (
	"fmt"
	"image"

	"go-reef-survivors/internal/config"
	"go-reef-survivors/internal/system"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ResultAction — что выбрал игрок на экране итогов.
type ResultAction int

const (
	ActionNone ResultAction = iota
	ActionRetry
	ActionMenu
)

const (
	resultsWidth  = 420
	resultsHeight = 260
)

// ResultsPanel — итоги забега по центру экрана.
type ResultsPanel struct {
	rect  image.Rectangle
	retry *Button
	menu  *Button
}

func NewResultsPanel() *ResultsPanel {
	left := (config.ScreenWidth - resultsWidth) / 2
	top := (config.ScreenHeight - resultsHeight) / 2
	rect := image.Rect(left, top, left+resultsWidth, top+resultsHeight)
	btnY := rect.Max.Y - 60
	return &ResultsPanel{
		rect:  rect,
		retry: NewButton(image.Rect(left+30, btnY, left+190, btnY+40), "Retry", config.ExpBarColor),
		menu:  NewButton(image.Rect(rect.Max.X-190, btnY, rect.Max.X-30, btnY+40), "Menu", config.PanelColor),
	}
}

// ActionAt возвращает действие кнопки под курсором.
func (p *ResultsPanel) ActionAt(x, y int) ResultAction {
	switch {
	case p.retry.Contains(x, y):
		return ActionRetry
	case p.menu.Contains(x, y):
		return ActionMenu
	}
	return ActionNone
}

// ResultLines — заголовок и строки итогов.
func ResultLines(r system.RunResult, gold int) []string {
	title := "Defeated"
	if r.Survived {
		title = "You survived!"
	}
	return []string{
		title,
		"Time " + FormatTimer(r.TimeSurvived),
		KillCounter(r.Kills),
		fmt.Sprintf("Pearls +%d", gold),
	}
}

func (p *ResultsPanel) Draw(screen *ebiten.Image, r system.RunResult, gold int) {
	x, y := float32(p.rect.Min.X), float32(p.rect.Min.Y)
	w, h := float32(p.rect.Dx()), float32(p.rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, config.PanelColor, true)
	vector.StrokeRect(screen, x, y, w, h, float32(config.StrokeWidth), config.PanelStroke, true)

	cx := p.rect.Min.X + resultsWidth/2
	lineY := p.rect.Min.Y + 40
	for i, line := range ResultLines(r, gold) {
		clr := config.TextLightColor
		if i == 0 && !r.Survived {
			clr = config.HealthBarColor
		}
		drawCentered(screen, line, DefaultFace, cx, lineY, clr)
		lineY += lineHeight + 8
	}
	p.retry.Draw(screen, DefaultFace)
	p.menu.Draw(screen, DefaultFace)
}
