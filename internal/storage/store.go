// internal/storage/store.go
package storage

import "context"

// Keys of the persisted settings.
const (
	KeyCurrency  = "Currency"
	KeyStrength  = "Strength"
	KeyRecovery  = "Recovery"
	KeySpeed     = "Speed"
	KeyMagnet    = "Magnet"
	KeyHealth    = "Health"
	KeyPollution = "PollutionLevel"
)

// Store — ключ-значение для настроек игрока. Отсутствующий ключ даёт значение по умолчанию.
type Store interface {
	GetInt(ctx context.Context, key string, def int) (int, error)
	SetInt(ctx context.Context, key string, v int) error
	GetFloat(ctx context.Context, key string, def float64) (float64, error)
	SetFloat(ctx context.Context, key string, v float64) error
	Delete(ctx context.Context, key string) error
	Close() error
}
