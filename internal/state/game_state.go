// internal/state/game_state.go
package state

import (
	"go-reef-survivors/internal/app"
	"go-reef-survivors/internal/ui"
	"go-reef-survivors/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var draftKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3}

// GameState — идущий забег: ввод, симуляция, HUD и экран итогов.
type GameState struct {
	sm       *StateMachine
	svc      *Services
	game     *app.Game
	renderer *ui.WorldRenderer
	hud      *ui.HUD
	draft    *ui.DraftPanel
	results  *ui.ResultsPanel
}

func NewGameState(sm *StateMachine, svc *Services) (*GameState, error) {
	g, err := app.NewGame(svc.Context, svc.Character)
	if err != nil {
		return nil, err
	}
	c := svc.Context
	hud := ui.NewHUD(g.EventDispatcher, c.Library, c.Wallet.Balance(), c.Pollution.Level())
	hud.Sync(g.PlayerSystem.Stats(), g.PlayerSystem.Progression())
	if svc.Sound != nil {
		svc.Sound.Subscribe(g.EventDispatcher)
	}
	return &GameState{
		sm:       sm,
		svc:      svc,
		game:     g,
		renderer: ui.NewWorldRenderer(),
		hud:      hud,
		draft:    ui.NewDraftPanel(g.EventDispatcher),
		results:  ui.NewResultsPanel(),
	}, nil
}

func (s *GameState) Enter() {}

// Exit вызывается и при уходе в паузу, поэтому забег здесь не закрывается.
func (s *GameState) Exit() {}

func (s *GameState) Update(deltaTime float64) {
	s.hud.Update(deltaTime)
	s.draft.Update()

	if s.game.Result() != nil {
		s.updateResults()
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if s.game.Pause(s.svc.ctx()) {
			s.sm.SetState(NewPauseState(s.sm, s, s.game))
		}
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		s.hud.ShowStats = !s.hud.ShowStats
	}

	if s.draft.Open() {
		s.updateDraft()
	} else if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		s.game.Interact()
	}

	s.game.SetInput(readMoveInput())
	s.game.Update(deltaTime)
	s.renderer.Follow(s.game.ECS)
}

func (s *GameState) updateDraft() {
	for i, key := range draftKeys {
		if inpututil.IsKeyJustPressed(key) {
			s.selectDraft(i)
			return
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if i, ok := s.draft.CardAt(ebiten.CursorPosition()); ok {
			s.selectDraft(i)
		}
	}
}

func (s *GameState) selectDraft(i int) {
	if err := s.game.SelectDraft(i); err != nil {
		s.svc.Log.Debug().Err(err).Int("index", i).Msg("draft selection rejected")
	}
}

func (s *GameState) updateResults() {
	action := ui.ActionNone
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		action = ui.ActionRetry
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyM):
		action = ui.ActionMenu
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		action = s.results.ActionAt(ebiten.CursorPosition())
	}

	switch action {
	case ui.ActionRetry:
		s.close()
		gs, err := NewGameState(s.sm, s.svc)
		if err != nil {
			s.svc.Log.Error().Err(err).Msg("cannot restart run")
			s.sm.SetState(NewMenuState(s.sm, s.svc))
			return
		}
		s.sm.SetState(gs)
	case ui.ActionMenu:
		s.LeaveToMenu()
	}
}

// LeaveToMenu сохраняет профиль и возвращает в меню.
func (s *GameState) LeaveToMenu() {
	s.close()
	s.sm.SetState(NewMenuState(s.sm, s.svc))
}

func (s *GameState) close() {
	if s.svc.Sound != nil {
		s.svc.Sound.Unsubscribe(s.game.EventDispatcher)
	}
	if err := s.game.Quit(s.svc.ctx()); err != nil {
		s.svc.Log.Error().Err(err).Msg("save on quit failed")
	}
}

func (s *GameState) Draw(screen *ebiten.Image) {
	s.renderer.Draw(screen, s.game.ECS)
	px, py := s.renderer.ToScreen(s.game.ECS.PlayerPosition())
	s.hud.Draw(screen, s.game.SessionSystem.Remaining(), s.game.PlayerSystem.Inventory(), px, py)
	s.draft.Draw(screen)
	if res := s.game.Result(); res != nil {
		s.results.Draw(screen, *res, s.game.PlayerSystem.RunGold())
	}
}

// readMoveInput — WASD или стрелки, нормированный вектор.
func readMoveInput() geom.Vec2 {
	var dir geom.Vec2
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dir.Y--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dir.Y++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dir.X--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dir.X++
	}
	return dir.Normalized()
}
