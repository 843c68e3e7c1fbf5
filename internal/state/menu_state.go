// internal/state/menu_state.go
package state

import (
	"fmt"
	"image"

	"go-reef-survivors/internal/config"
	"go-reef-survivors/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// MenuState — главное меню: выбор персонажа, старт забега, магазин.
type MenuState struct {
	sm         *StateMachine
	svc        *Services
	characters []string
	selected   int
	play       *ui.Button
	shop       *ui.Button
	message    string
}

func NewMenuState(sm *StateMachine, svc *Services) *MenuState {
	cx := config.ScreenWidth / 2
	m := &MenuState{
		sm:         sm,
		svc:        svc,
		characters: svc.Context.Library.CharacterIDs(),
		play:       ui.NewButton(image.Rect(cx-110, 420, cx+110, 470), "Dive [Space]", config.ExpBarColor),
		shop:       ui.NewButton(image.Rect(cx-110, 490, cx+110, 540), "Upgrades [S]", config.PanelColor),
	}
	for i, id := range m.characters {
		if id == svc.Character {
			m.selected = i
		}
	}
	return m
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if len(m.characters) > 0 {
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA) {
			m.selected = (m.selected + len(m.characters) - 1) % len(m.characters)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) || inpututil.IsKeyJustPressed(ebiten.KeyD) {
			m.selected = (m.selected + 1) % len(m.characters)
		}
	}

	start := inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	openShop := inpututil.IsKeyJustPressed(ebiten.KeyS)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		start = start || m.play.Contains(x, y)
		openShop = openShop || m.shop.Contains(x, y)
	}

	switch {
	case start:
		m.startRun()
	case openShop:
		m.sm.SetState(NewShopState(m.sm, m.svc))
	}
}

func (m *MenuState) startRun() {
	if len(m.characters) == 0 {
		m.message = "no characters loaded"
		return
	}
	m.svc.Character = m.characters[m.selected]
	gs, err := NewGameState(m.sm, m.svc)
	if err != nil {
		m.svc.Log.Error().Err(err).Str("character", m.svc.Character).Msg("cannot start run")
		m.message = err.Error()
		return
	}
	m.sm.SetState(gs)
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	cx := config.ScreenWidth / 2
	face := ui.DefaultFace

	title := "REEF SURVIVORS"
	b := text.BoundString(face, title)
	text.Draw(screen, title, face, cx-b.Dx()/2, 200, config.TextLightColor)

	p := m.svc.Context.Profile()
	info := fmt.Sprintf("%s    %s", ui.CurrencyLabel(p.Currency), ui.PollutionLabel(p.Pollution))
	b = text.BoundString(face, info)
	text.Draw(screen, info, face, cx-b.Dx()/2, 240, m.svc.Context.Pollution.Color())

	if len(m.characters) > 0 {
		ch := m.svc.Context.Library.Characters[m.characters[m.selected]]
		label := fmt.Sprintf("< %s >", ch.Name)
		b = text.BoundString(face, label)
		text.Draw(screen, label, face, cx-b.Dx()/2, 340, config.PlayerColor)
	}

	m.play.Draw(screen, face)
	m.shop.Draw(screen, face)

	if m.message != "" {
		b = text.BoundString(face, m.message)
		text.Draw(screen, m.message, face, cx-b.Dx()/2, 600, config.HealthBarColor)
	}
}

func (m *MenuState) Exit() {}
