package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	HalfMoves int    // Successful half-moves so far
	GameOver  bool   // Whether the match has been decided
	Winner    string // Display name of the winner once GameOver
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// MatchResult describes a finished match for persistence.
type MatchResult struct {
	GameID     string
	Winner     string   // Display name of the winning player
	WinnerSeat int      // 1 or 2
	HalfMoves  int      // Successful half-moves including the deciding one
	Lines      []string // Names of the completed lines
	Transcript []string // Every half-move in play order
}
