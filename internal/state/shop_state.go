// internal/state/shop_state.go
package state

import (
	"errors"
	"fmt"
	"image"

	"go-reef-survivors/internal/config"
	"go-reef-survivors/internal/interfaces"
	"go-reef-survivors/internal/meta"
	"go-reef-survivors/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

var shopKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5}

const (
	shopRowTop    = 220
	shopRowHeight = 70
)

// ShopState — покупка постоянной прокачки за валюту.
type ShopState struct {
	sm       *StateMachine
	svc      *Services
	progress interfaces.Progress
	buttons  []*ui.Button
	back     *ui.Button
	message  string
}

func NewShopState(sm *StateMachine, svc *Services) *ShopState {
	s := &ShopState{
		sm:       sm,
		svc:      svc,
		progress: svc.Context,
		back:     ui.NewButton(image.Rect(40, config.ScreenHeight-90, 240, config.ScreenHeight-40), "Back [Esc]", config.PanelColor),
	}
	for i := range meta.Categories() {
		y := shopRowTop + i*shopRowHeight
		s.buttons = append(s.buttons, ui.NewButton(image.Rect(config.ScreenWidth-360, y, config.ScreenWidth-160, y+50), "", config.ExpBarColor))
	}
	return s
}

func (s *ShopState) Enter() {}

func (s *ShopState) Update(deltaTime float64) {
	offers := s.progress.Offers()
	for i, offer := range offers {
		b := s.buttons[i]
		b.Disabled = offer.Maxed || offer.Cost > s.progress.Profile().Currency
		if offer.Maxed {
			b.Text = "MAX"
		} else {
			b.Text = fmt.Sprintf("Buy %d [%d]", offer.Cost, i+1)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.sm.SetState(NewMenuState(s.sm, s.svc))
		return
	}
	for i, key := range shopKeys {
		if i < len(offers) && inpututil.IsKeyJustPressed(key) {
			s.buy(offers[i].Category)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if s.back.Contains(x, y) {
			s.sm.SetState(NewMenuState(s.sm, s.svc))
			return
		}
		for i, b := range s.buttons {
			if i < len(offers) && b.Contains(x, y) {
				s.buy(offers[i].Category)
			}
		}
	}
}

func (s *ShopState) buy(cat meta.Category) {
	err := s.progress.BuyUpgrade(s.svc.ctx(), cat)
	switch {
	case err == nil:
		s.message = fmt.Sprintf("%s upgraded", cat)
	case errors.Is(err, meta.ErrMaxedOut):
		s.message = fmt.Sprintf("%s is maxed", cat)
	case errors.Is(err, meta.ErrInsufficientFunds):
		s.message = "not enough pearls"
	default:
		s.svc.Log.Error().Err(err).Stringer("category", cat).Msg("purchase failed")
		s.message = "purchase failed"
	}
}

func (s *ShopState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := ui.DefaultFace
	p := s.progress.Profile()

	text.Draw(screen, "UPGRADES", face, 80, 120, config.TextLightColor)
	text.Draw(screen, ui.CurrencyLabel(p.Currency), face, 80, 150, config.PickupGoldColor)

	for i, offer := range s.progress.Offers() {
		y := shopRowTop + i*shopRowHeight
		line := fmt.Sprintf("%-9s Lv. %d/%d   bonus +%g", offer.Category, offer.Level, meta.MaxLevel, offer.Bonus)
		text.Draw(screen, line, face, 80, y+30, config.TextLightColor)
		if i < len(s.buttons) {
			s.buttons[i].Draw(screen, face)
		}
	}
	s.back.Draw(screen, face)
	if s.message != "" {
		text.Draw(screen, s.message, face, 80, shopRowTop+len(s.buttons)*shopRowHeight+30, config.TextLightColor)
	}
}

func (s *ShopState) Exit() {}
