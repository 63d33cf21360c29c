package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNoPlayers    GameError = "game needs at least one player"
	ErrNilBoard     GameError = "board cannot be nil"
	ErrGameOver     GameError = "game is already over"
	ErrTurnLimit    GameError = "turn limit reached"
	ErrCascadeLimit GameError = "landing effects did not settle"
)
