package gobblet

import "fmt"

// DefaultPiecesPerSize is how many copies of each size a rack starts with.
const DefaultPiecesPerSize = 1

// Engine runs one game: it owns the current State and an append-only
// history of the State after every successful half-move.
//
// Engine is not safe for concurrent use; callers drive it from a single
// event loop.
type Engine struct {
	initial State
	current State
	history []State
}

// NewEngine starts a game with perSize copies of each piece per player.
func NewEngine(perSize int) *Engine {
	st := NewState(perSize)
	return &Engine{
		initial: st,
		current: st,
	}
}

// State returns a snapshot of the current position.
func (e *Engine) State() State {
	return e.current
}

// Pick lifts the current player's visible piece at (row, col) on board k
// into the staging slot.
func (e *Engine) Pick(k BoardKind, row, col int) error {
	if err := e.current.CheckPick(k, row, col); err != nil {
		return err
	}
	e.current.pick(k, row, col)
	e.record()
	return nil
}

// Place puts the staged piece at (row, col) on board k.
func (e *Engine) Place(k BoardKind, row, col int) error {
	if err := e.current.CheckPlace(k, row, col); err != nil {
		return err
	}
	e.current.place(row, col)
	e.record()
	return nil
}

// Attempt performs whichever action the current phase expects, the way a
// click on a cell would.
func (e *Engine) Attempt(k BoardKind, row, col int) error {
	switch e.current.phase {
	case PhaseStaging:
		return e.Pick(k, row, col)
	case PhaseCommit:
		return e.Place(k, row, col)
	default:
		return ErrGameComplete
	}
}

func (e *Engine) record() {
	e.history = append(e.history, e.current)
}

// Visible returns the owner and size of the top piece at (row, col).
func (e *Engine) Visible(k BoardKind, row, col int) (Player, Size) {
	return e.current.Visible(k, row, col)
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase { return e.current.Phase() }

// Turn returns the player to move, or the winner once complete.
func (e *Engine) Turn() Player { return e.current.Turn() }

// IsComplete reports whether the game has been won.
func (e *Engine) IsComplete() bool { return e.current.IsComplete() }

// Winner returns the winner, or Nobody.
func (e *Engine) Winner() Player { return e.current.Winner() }

// WinningCells returns the cells of every winning line.
func (e *Engine) WinningCells() []Coord { return e.current.WinningCells() }

// WinningLines returns every winning line.
func (e *Engine) WinningLines() []Line { return e.current.WinningLines() }

// LastPicked returns where the staged piece came from on the main board.
func (e *Engine) LastPicked() (Coord, bool) { return e.current.LastPicked() }

// Staged returns the size of the staged piece, or None.
func (e *Engine) Staged() Size { return e.current.Staged() }

// TurnNumber returns the number of successful half-moves.
func (e *Engine) TurnNumber() int { return e.current.TurnNumber() }

// HistoryLength returns how many half-move snapshots have been recorded.
func (e *Engine) HistoryLength() int {
	return len(e.history)
}

// SnapshotAt returns the position after the given number of half-moves.
// Turn 0 is the starting position; turn HistoryLength() is the current one.
func (e *Engine) SnapshotAt(turn int) (State, error) {
	if turn < 0 || turn > len(e.history) {
		return State{}, fmt.Errorf("gobblet: no snapshot for turn %d (have 0..%d)", turn, len(e.history))
	}
	if turn == 0 {
		return e.initial, nil
	}
	return e.history[turn-1], nil
}

// Moves returns the half-moves played so far, oldest first.
func (e *Engine) Moves() []Move {
	moves := make([]Move, 0, len(e.history))
	for _, st := range e.history {
		if m, ok := st.LastMove(); ok {
			moves = append(moves, m)
		}
	}
	return moves
}
