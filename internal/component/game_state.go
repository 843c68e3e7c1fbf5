// internal/component/game_state.go
package component

// GameState — фаза игровой сессии
type GameState int

const (
	Gameplay GameState = iota
	Paused
	LevelUp
	GameOver
)

func (s GameState) String() string {
	switch s {
	case Gameplay:
		return "Gameplay"
	case Paused:
		return "Paused"
	case LevelUp:
		return "LevelUp"
	case GameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}
