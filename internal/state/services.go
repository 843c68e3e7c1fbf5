// internal/state/services.go
package state

import (
	"context"

	"go-reef-survivors/internal/app"
	"go-reef-survivors/internal/audio"
	"go-reef-survivors/internal/interfaces"

	"github.com/rs/zerolog"
)

var (
	_ interfaces.Progress = (*app.Context)(nil)
	_ interfaces.Pausable = (*app.Game)(nil)
)

// Services — долгоживущие зависимости, общие для всех состояний.
type Services struct {
	Context   *app.Context
	Sound     *audio.SoundManager
	Log       zerolog.Logger
	Character string
}

// ctx — контекст для сохранений из игрового цикла. ebiten не даёт своего.
func (s *Services) ctx() context.Context {
	return context.Background()
}
