// internal/state/pause_state.go
package state

import (
	"go-reef-survivors/internal/config"
	"go-reef-survivors/internal/interfaces"
	"go-reef-survivors/internal/ui"
	"go-reef-survivors/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState рисует замерший забег под затемнением. Профиль уже сохранён при входе в паузу.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	run           interfaces.Pausable
}

func NewPauseState(sm *StateMachine, prevState State, run interfaces.Pausable) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		run:           run,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.run.Resume()
		s.stateMachine.SetState(s.previousState)
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		if leaver, ok := s.previousState.(interface{ LeaveToMenu() }); ok {
			leaver.LeaveToMenu()
		}
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, render.WithAlpha(config.BackgroundColor, 180), false)

	face := ui.DefaultFace
	for i, line := range []string{"PAUSED", "[P] resume    [Q] menu"} {
		b := text.BoundString(face, line)
		text.Draw(screen, line, face, config.ScreenWidth/2-b.Dx()/2, config.ScreenHeight/2+i*24, config.TextLightColor)
	}
}

func (s *PauseState) Exit() {}
