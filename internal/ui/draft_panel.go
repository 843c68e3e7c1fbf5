// internal/ui/draft_panel.go
package ui

import (
	"fmt"
	"image"
	"math"

	"go-reef-survivors/internal/config"
	"go-reef-survivors/internal/event"
	"go-reef-survivors/internal/inventory"
	"go-reef-survivors/internal/system"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	panelHeight    = 220
	panelMargin    = 5
	animationSpeed = 20.0
	cardWidth      = 340
	cardHeight     = 150
	cardGap        = 30
	lineHeight     = 16
)

// DraftPanel — выезжающая снизу панель выбора улучшения.
// Открывается по DraftOpened, уезжает по DraftClosed.
type DraftPanel struct {
	IsVisible bool
	draft     *system.Draft
	cards     []Button
	currentY  float64
	targetY   float64
}

func NewDraftPanel(eventDispatcher *event.Dispatcher) *DraftPanel {
	p := &DraftPanel{
		currentY: config.ScreenHeight,
		targetY:  config.ScreenHeight,
	}
	eventDispatcher.SubscribeAll(p, event.DraftOpened, event.DraftClosed)
	return p
}

func (p *DraftPanel) OnEvent(e event.Event) {
	switch e.Type {
	case event.DraftOpened:
		if draft, ok := e.Data.(*system.Draft); ok {
			p.Show(draft)
		}
	case event.DraftClosed:
		p.Hide()
	}
}

func (p *DraftPanel) Show(draft *system.Draft) {
	p.draft = draft
	p.IsVisible = true
	p.targetY = config.ScreenHeight - panelHeight
	p.layout()
}

func (p *DraftPanel) Hide() {
	p.targetY = config.ScreenHeight
}

// Open — есть ли драфт, который ждёт выбора.
func (p *DraftPanel) Open() bool {
	return p.IsVisible && p.targetY < config.ScreenHeight
}

// Update двигает панель к целевой позиции.
func (p *DraftPanel) Update() {
	if p.currentY == p.targetY {
		return
	}
	diff := p.targetY - p.currentY
	if math.Abs(diff) < animationSpeed {
		p.currentY = p.targetY
	} else if diff > 0 {
		p.currentY += animationSpeed
	} else {
		p.currentY -= animationSpeed
	}
	if p.currentY >= config.ScreenHeight {
		p.IsVisible = false
		p.draft = nil
	}
	p.layout()
}

// CardAt возвращает индекс карточки под курсором. Выключенные карточки не выбираются.
func (p *DraftPanel) CardAt(x, y int) (int, bool) {
	if !p.Open() {
		return 0, false
	}
	for i := range p.cards {
		if p.cards[i].Contains(x, y) {
			return i, true
		}
	}
	return 0, false
}

func (p *DraftPanel) layout() {
	if p.draft == nil {
		p.cards = p.cards[:0]
		return
	}
	n := len(p.draft.Entries)
	total := n*cardWidth + (n-1)*cardGap
	left := (config.ScreenWidth - total) / 2
	top := int(p.currentY) + (panelHeight-cardHeight)/2
	p.cards = p.cards[:0]
	for i, entry := range p.draft.Entries {
		x := left + i*(cardWidth+cardGap)
		p.cards = append(p.cards, Button{
			Rect:     image.Rect(x, top, x+cardWidth, top+cardHeight),
			Text:     entry.Name,
			Color:    config.PanelColor,
			Disabled: !entry.Active,
		})
	}
}

func (p *DraftPanel) Draw(screen *ebiten.Image) {
	if !p.IsVisible && p.currentY >= config.ScreenHeight {
		return
	}
	panelRect := image.Rect(
		panelMargin,
		int(p.currentY)+panelMargin,
		config.ScreenWidth-panelMargin,
		int(p.currentY)+panelHeight-panelMargin,
	)
	vector.DrawFilledRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), config.PanelColor, true)
	vector.StrokeRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), float32(config.StrokeWidth), config.ExpBarColor, true)

	if p.draft == nil {
		return
	}
	for i, entry := range p.draft.Entries {
		if i >= len(p.cards) {
			break
		}
		p.drawCard(screen, p.cards[i], i, entry)
	}
}

func (p *DraftPanel) drawCard(screen *ebiten.Image, card Button, index int, entry system.DraftEntry) {
	r := card.Rect
	fill := card.Color
	if card.Disabled {
		fill = config.DisabledColor
	}
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), fill, true)
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), borderWidth, config.PanelStroke, true)

	x := r.Min.X + 12
	y := r.Min.Y + 22
	text.Draw(screen, fmt.Sprintf("[%d] %s", index+1, entry.Name), DefaultFace, x, y, config.TextLightColor)
	y += lineHeight
	text.Draw(screen, cardSubtitle(entry), DefaultFace, x, y, config.PickupGoldColor)
	y += lineHeight * 2
	for _, line := range wrap(entry.Description, (cardWidth-24)/7) {
		if y > r.Max.Y-8 {
			break
		}
		text.Draw(screen, line, DefaultFace, x, y, config.TextLightColor)
		y += lineHeight
	}
}

// cardSubtitle — «New weapon» / «Passive Lv. 3».
func cardSubtitle(entry system.DraftEntry) string {
	kind := "Weapon"
	if entry.Kind == inventory.Passive {
		kind = "Passive"
	}
	if !entry.Active {
		return kind + " - slots full"
	}
	if entry.Upgrade {
		return fmt.Sprintf("%s %s", kind, LevelCounter(entry.Level))
	}
	return "New " + kind
}
