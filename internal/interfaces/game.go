// internal/interfaces/game.go
package interfaces

import "context"

// Pausable — забег, который можно поставить на паузу и продолжить.
type Pausable interface {
	Pause(ctx context.Context) bool
	Resume() bool
}
