// internal/storage/profile.go
package storage

import (
	"context"
	"fmt"

	"go-reef-survivors/internal/config"
	"go-reef-survivors/internal/meta"
)

// upgradeKeys[category] — ключ в хранилище для уровня прокачки.
var upgradeKeys = [meta.CategoryCount]string{
	meta.Strength: KeyStrength,
	meta.Recovery: KeyRecovery,
	meta.Speed:    KeySpeed,
	meta.Magnet:   KeyMagnet,
	meta.Health:   KeyHealth,
}

// Profile — всё, что переживает забег: валюта, пять уровней прокачки, загрязнение.
type Profile struct {
	Currency  int
	Upgrades  [meta.CategoryCount]int
	Pollution float64
}

// DefaultProfile is what a fresh install starts with.
func DefaultProfile() Profile {
	return Profile{Pollution: config.PollutionMax}
}

// LoadProfile reads the profile; missing keys take their defaults.
func LoadProfile(ctx context.Context, s Store) (Profile, error) {
	p := DefaultProfile()
	var err error
	if p.Currency, err = s.GetInt(ctx, KeyCurrency, 0); err != nil {
		return DefaultProfile(), fmt.Errorf("load profile: %w", err)
	}
	for c, key := range upgradeKeys {
		if p.Upgrades[c], err = s.GetInt(ctx, key, 0); err != nil {
			return DefaultProfile(), fmt.Errorf("load profile: %w", err)
		}
	}
	if p.Pollution, err = s.GetFloat(ctx, KeyPollution, config.PollutionMax); err != nil {
		return DefaultProfile(), fmt.Errorf("load profile: %w", err)
	}
	return p, nil
}

// SaveProfile writes every key of p.
func SaveProfile(ctx context.Context, s Store, p Profile) error {
	if err := s.SetInt(ctx, KeyCurrency, p.Currency); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	for c, key := range upgradeKeys {
		if err := s.SetInt(ctx, key, p.Upgrades[c]); err != nil {
			return fmt.Errorf("save profile: %w", err)
		}
	}
	if err := s.SetFloat(ctx, KeyPollution, p.Pollution); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// ResetProfile deletes every key so the next load yields defaults.
func ResetProfile(ctx context.Context, s Store) error {
	keys := append([]string{KeyCurrency, KeyPollution}, upgradeKeys[:]...)
	for _, key := range keys {
		if err := s.Delete(ctx, key); err != nil {
			return fmt.Errorf("reset profile: %w", err)
		}
	}
	return nil
}

// ProfileFrom snapshots the live services.
func ProfileFrom(ledger *meta.Ledger, wallet *meta.Wallet, pollution *meta.PollutionMeter) Profile {
	return Profile{
		Currency:  wallet.Balance(),
		Upgrades:  ledger.Levels(),
		Pollution: pollution.Level(),
	}
}

// Apply pushes p into the live services. Levels are clamped by the ledger.
func (p Profile) Apply(ledger *meta.Ledger, wallet *meta.Wallet, pollution *meta.PollutionMeter) {
	wallet.Set(p.Currency)
	for _, c := range meta.Categories() {
		ledger.SetLevel(c, p.Upgrades[c])
	}
	pollution.Set(p.Pollution)
}
