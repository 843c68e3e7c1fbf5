// internal/meta/shop.go
package meta

import (
	"fmt"

	"github.com/rs/zerolog"
)

// costTable[category][currentLevel] — цена следующего уровня.
var costTable = [CategoryCount][MaxLevel]int{
	Strength: {100, 250, 600, 1500},
	Recovery: {80, 220, 550, 1400},
	Speed:    {120, 300, 750, 1800},
	Magnet:   {90, 240, 620, 1600},
	Health:   {110, 280, 700, 1700},
}

// Shop продаёт уровни прокачки за валюту.
type Shop struct {
	ledger *Ledger
	wallet *Wallet
	log    zerolog.Logger
}

func NewShop(ledger *Ledger, wallet *Wallet, log zerolog.Logger) *Shop {
	return &Shop{ledger: ledger, wallet: wallet, log: log.With().Str("service", "shop").Logger()}
}

// Cost returns the price of the next level of c; false when maxed or unknown.
func (s *Shop) Cost(c Category) (int, bool) {
	if !c.Valid() {
		return 0, false
	}
	level := s.ledger.Points(c)
	if level >= MaxLevel {
		return 0, false
	}
	return costTable[c][level], true
}

// CanBuy reports whether the next level of c is affordable.
func (s *Shop) CanBuy(c Category) bool {
	cost, ok := s.Cost(c)
	return ok && s.wallet.Balance() >= cost
}

// Buy spends the cost and adds one level. On error nothing changes.
func (s *Shop) Buy(c Category) error {
	if !c.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownCategory, int(c))
	}
	cost, ok := s.Cost(c)
	if !ok {
		return fmt.Errorf("buy %s: %w", c, ErrMaxedOut)
	}
	if !s.wallet.Spend(cost) {
		return fmt.Errorf("buy %s for %d: %w", c, cost, ErrInsufficientFunds)
	}
	s.ledger.AddPoint(c)
	s.log.Info().Stringer("category", c).Int("cost", cost).Int("level", s.ledger.Points(c)).Msg("upgrade bought")
	return nil
}

// Offer describes one category for shop listings.
type Offer struct {
	Category Category
	Level    int
	Bonus    float64
	Cost     int
	Maxed    bool
}

// Offers lists every category with its current level and next price.
func (s *Shop) Offers() []Offer {
	out := make([]Offer, 0, CategoryCount)
	for _, c := range Categories() {
		cost, ok := s.Cost(c)
		out = append(out, Offer{
			Category: c,
			Level:    s.ledger.Points(c),
			Bonus:    s.ledger.Bonus(c),
			Cost:     cost,
			Maxed:    !ok,
		})
	}
	return out
}
