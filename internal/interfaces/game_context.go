// internal/interfaces/game_context.go
package interfaces

import (
	"context"

	"go-reef-survivors/internal/meta"
	"go-reef-survivors/internal/storage"
)

// Progress — постоянный прогресс игрока, общий для меню и магазина.
type Progress interface {
	Profile() storage.Profile
	Offers() []meta.Offer
	BuyUpgrade(ctx context.Context, cat meta.Category) error
	ResetProgress(ctx context.Context) error
}
