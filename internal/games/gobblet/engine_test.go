package gobblet

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// engineFrom starts an engine at an arbitrary position.
func engineFrom(st State) *Engine {
	return &Engine{initial: st, current: st}
}

func TestNewEngine(t *testing.T) {
	e := NewEngine(DefaultPiecesPerSize)

	assert.Equal(t, PhaseStaging, e.Phase())
	assert.Equal(t, Player1, e.Turn())
	assert.False(t, e.IsComplete())
	assert.Equal(t, Nobody, e.Winner())
	assert.Zero(t, e.TurnNumber())
	assert.Zero(t, e.HistoryLength())
	assert.Equal(t, None, e.Staged())
	assert.Empty(t, e.WinningCells())
	_, ok := e.LastPicked()
	assert.False(t, ok)
}

func TestPickFromSupplyThenPlace(t *testing.T) {
	e := NewEngine(DefaultPiecesPerSize)

	require.NoError(t, e.Pick(BoardSupply1, 0, 0))
	assert.Equal(t, PhaseCommit, e.Phase())
	assert.Equal(t, Player1, e.Turn(), "same player places")
	assert.Equal(t, Large, e.Staged())
	_, fromBoard := e.LastPicked()
	assert.False(t, fromBoard, "supply picks do not record an origin")
	assert.Equal(t, 1, e.TurnNumber())

	owner, size := e.Visible(BoardSupply1, 0, 0)
	assert.Equal(t, Nobody, owner)
	assert.Equal(t, None, size)

	require.NoError(t, e.Place(BoardMain, 0, 0))
	assert.Equal(t, Player2, e.Turn())
	assert.Equal(t, PhaseStaging, e.Phase())
	_, fromBoard = e.LastPicked()
	assert.False(t, fromBoard)
	assert.Equal(t, 2, e.HistoryLength())
	assert.Equal(t, 2, e.TurnNumber())
	assert.Equal(t, None, e.Staged())

	owner, size = e.Visible(BoardMain, 0, 0)
	assert.Equal(t, Player1, owner)
	assert.Equal(t, Large, size)
}

func TestPlayedRowWin(t *testing.T) {
	e := NewEngine(DefaultPiecesPerSize)
	moves := []struct {
		board    BoardKind
		row, col int
	}{
		{BoardSupply1, 0, 0}, {BoardMain, 0, 0}, // P1 L a1
		{BoardSupply2, 0, 0}, {BoardMain, 1, 1}, // P2 L b2
		{BoardSupply1, 1, 0}, {BoardMain, 0, 1}, // P1 M b1
		{BoardSupply2, 1, 0}, {BoardMain, 2, 2}, // P2 M c3
		{BoardSupply1, 2, 0}, {BoardMain, 0, 2}, // P1 S c1
	}
	for i, m := range moves {
		require.NoError(t, e.Attempt(m.board, m.row, m.col), "move %d", i)
	}

	assert.True(t, e.IsComplete())
	assert.Equal(t, PhaseComplete, e.Phase())
	assert.Equal(t, Player1, e.Winner())
	assert.Equal(t, Player1, e.Turn(), "turn records the winner")
	assert.Equal(t, []Coord{At(0, 0), At(0, 1), At(0, 2)}, e.WinningCells())
	require.Len(t, e.WinningLines(), 1)
	assert.Equal(t, "row 1", e.WinningLines()[0].Name)
	assert.Equal(t, len(moves), e.HistoryLength())
}

func TestPlaceCompletesRow(t *testing.T) {
	st := NewState(DefaultPiecesPerSize)
	st.board.at(0, 0).Place(Player1, Large)
	st.board.at(0, 1).Place(Player1, Large)
	e := engineFrom(st)

	require.NoError(t, e.Pick(BoardSupply1, 0, 0))
	assert.False(t, e.IsComplete(), "picking from supply reveals nothing")
	require.NoError(t, e.Place(BoardMain, 0, 2))

	assert.True(t, e.IsComplete())
	assert.Equal(t, Player1, e.Winner())
	assert.Equal(t, []Coord{At(0, 0), At(0, 1), At(0, 2)}, e.WinningCells())
}

func TestPickRevealsOpponentLine(t *testing.T) {
	st := NewState(DefaultPiecesPerSize)
	st.board.at(1, 0).Place(Player2, Small)
	st.board.at(1, 1).Place(Player2, Small)
	st.board.at(1, 2).Place(Player2, Small)
	st.board.at(1, 2).Place(Player1, Large)
	e := engineFrom(st)

	require.NoError(t, e.Pick(BoardMain, 1, 2))

	assert.True(t, e.IsComplete())
	assert.Equal(t, Player2, e.Winner())
	assert.Equal(t, []Coord{At(1, 0), At(1, 1), At(1, 2)}, e.WinningCells())
	assert.Equal(t, 1, e.HistoryLength())
}

func TestPlaceCanCompleteTwoLines(t *testing.T) {
	st := NewState(DefaultPiecesPerSize)
	st.board.at(0, 1).Place(Player1, Middle)
	st.board.at(0, 2).Place(Player1, Middle)
	st.board.at(1, 0).Place(Player1, Small)
	st.board.at(2, 0).Place(Player1, Small)
	e := engineFrom(st)

	require.NoError(t, e.Pick(BoardSupply1, 0, 0))
	require.NoError(t, e.Place(BoardMain, 0, 0))

	assert.Len(t, e.WinningLines(), 2)
	assert.Equal(t, []Coord{At(0, 0), At(0, 1), At(0, 2), At(1, 0), At(2, 0)}, e.WinningCells())
}

func TestReturnToOriginRejected(t *testing.T) {
	e := NewEngine(DefaultPiecesPerSize)
	require.NoError(t, e.Pick(BoardSupply1, 0, 0))
	require.NoError(t, e.Place(BoardMain, 0, 0))
	require.NoError(t, e.Pick(BoardSupply2, 2, 0))
	require.NoError(t, e.Place(BoardMain, 2, 2))

	require.NoError(t, e.Pick(BoardMain, 0, 0))
	at, ok := e.LastPicked()
	require.True(t, ok)
	assert.Equal(t, At(0, 0), at)

	before := e.State()
	historyBefore := e.HistoryLength()

	err := e.Place(BoardMain, 0, 0)
	assert.ErrorIs(t, err, ErrReturnToOrigin)
	assert.Equal(t, before, e.State(), "rejection must not change state")
	assert.Equal(t, historyBefore, e.HistoryLength())

	require.NoError(t, e.Place(BoardMain, 1, 1))
	_, ok = e.LastPicked()
	assert.False(t, ok)
}

func TestRejections(t *testing.T) {
	tests := []struct {
		name  string
		setup func(e *Engine)
		do    func(e *Engine) error
		want  error
	}{
		{
			name: "pick opponent supply",
			do:   func(e *Engine) error { return e.Pick(BoardSupply2, 0, 0) },
			want: ErrNotYourPiece,
		},
		{
			name: "pick empty cell",
			do:   func(e *Engine) error { return e.Pick(BoardMain, 1, 1) },
			want: ErrNotYourPiece,
		},
		{
			name: "pick empty staging slot",
			do:   func(e *Engine) error { return e.Pick(BoardStaging, 0, 0) },
			want: ErrNotYourPiece,
		},
		{
			name: "pick covered own piece",
			setup: func(e *Engine) {
				e.current.board.at(0, 0).Place(Player1, Small)
				e.current.board.at(0, 0).Place(Player2, Middle)
			},
			do:   func(e *Engine) error { return e.Pick(BoardMain, 0, 0) },
			want: ErrNotYourPiece,
		},
		{
			name: "place during staging",
			do:   func(e *Engine) error { return e.Place(BoardMain, 0, 0) },
			want: ErrWrongPhase,
		},
		{
			name:  "pick during commit",
			setup: func(e *Engine) { _ = e.Pick(BoardSupply1, 0, 0) },
			do:    func(e *Engine) error { return e.Pick(BoardSupply1, 1, 0) },
			want:  ErrWrongPhase,
		},
		{
			name:  "place on supply",
			setup: func(e *Engine) { _ = e.Pick(BoardSupply1, 1, 0) },
			do:    func(e *Engine) error { return e.Place(BoardSupply1, 1, 0) },
			want:  ErrWrongBoard,
		},
		{
			name:  "place on staging",
			setup: func(e *Engine) { _ = e.Pick(BoardSupply1, 1, 0) },
			do:    func(e *Engine) error { return e.Attempt(BoardStaging, 0, 0) },
			want:  ErrWrongBoard,
		},
		{
			name: "place on equal size",
			setup: func(e *Engine) {
				e.current.board.at(2, 2).Place(Player2, Middle)
				_ = e.Pick(BoardSupply1, 1, 0)
			},
			do:   func(e *Engine) error { return e.Place(BoardMain, 2, 2) },
			want: ErrCellOccupied,
		},
		{
			name: "place on larger",
			setup: func(e *Engine) {
				e.current.board.at(2, 2).Place(Player1, Large)
				_ = e.Pick(BoardSupply1, 2, 0)
			},
			do:   func(e *Engine) error { return e.Place(BoardMain, 2, 2) },
			want: ErrCellOccupied,
		},
		{
			name: "pick piece with nowhere to go",
			setup: func(e *Engine) {
				for r := range MainSize {
					for c := range MainSize {
						e.current.board.at(r, c).Place(Player2, Middle)
					}
				}
			},
			do:   func(e *Engine) error { return e.Pick(BoardSupply1, 2, 0) },
			want: ErrNotPlaceableAnywhere,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine(DefaultPiecesPerSize)
			if tt.setup != nil {
				tt.setup(e)
			}
			before := e.State()
			historyBefore := e.HistoryLength()

			err := tt.do(e)

			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, before, e.State())
			assert.Equal(t, historyBefore, e.HistoryLength())
		})
	}
}

func TestLargePickableWhenBoardFullOfMiddles(t *testing.T) {
	e := NewEngine(DefaultPiecesPerSize)
	for r := range MainSize {
		for c := range MainSize {
			e.current.board.at(r, c).Place(Player2, Middle)
		}
	}

	assert.NoError(t, e.Pick(BoardSupply1, 0, 0))
}

func TestCompleteRejectsEverything(t *testing.T) {
	st := NewState(DefaultPiecesPerSize)
	st.board.at(2, 0).Place(Player2, Small)
	st.board.at(1, 1).Place(Player2, Small)
	st.board.at(0, 2).Place(Player2, Small)
	st.board.at(0, 2).Place(Player1, Middle)
	e := engineFrom(st)

	require.NoError(t, e.Pick(BoardMain, 0, 2))
	require.True(t, e.IsComplete())
	require.Equal(t, "anti-diagonal", e.WinningLines()[0].Name)

	before := e.State()
	assert.ErrorIs(t, e.Pick(BoardSupply2, 0, 0), ErrGameComplete)
	assert.ErrorIs(t, e.Pick(BoardSupply1, 0, 0), ErrGameComplete)
	assert.ErrorIs(t, e.Place(BoardMain, 2, 2), ErrGameComplete)
	assert.ErrorIs(t, e.Attempt(BoardMain, 2, 2), ErrGameComplete)
	assert.Equal(t, before, e.State())
	assert.Equal(t, 1, e.HistoryLength())
}

func TestSnapshotAt(t *testing.T) {
	e := NewEngine(DefaultPiecesPerSize)
	require.NoError(t, e.Pick(BoardSupply1, 0, 0))
	require.NoError(t, e.Place(BoardMain, 1, 1))
	require.NoError(t, e.Pick(BoardSupply2, 1, 0))

	initial, err := e.SnapshotAt(0)
	require.NoError(t, err)
	assert.Equal(t, NewState(DefaultPiecesPerSize), initial)

	for turn := 0; turn <= e.HistoryLength(); turn++ {
		st, err := e.SnapshotAt(turn)
		require.NoError(t, err)
		assert.Equal(t, turn, st.TurnNumber())
	}

	last, err := e.SnapshotAt(e.HistoryLength())
	require.NoError(t, err)
	assert.Equal(t, e.State(), last)

	mid, err := e.SnapshotAt(1)
	require.NoError(t, err)
	assert.Equal(t, PhaseCommit, mid.Phase())
	assert.Equal(t, Large, mid.Staged())
	assert.True(t, mid.Board(BoardMain).Cell(1, 1).Empty(), "snapshot is frozen")

	_, err = e.SnapshotAt(-1)
	assert.Error(t, err)
	_, err = e.SnapshotAt(e.HistoryLength() + 1)
	assert.Error(t, err)
}

func TestMovesTranscript(t *testing.T) {
	e := NewEngine(DefaultPiecesPerSize)
	require.NoError(t, e.Pick(BoardSupply1, 0, 0))
	require.NoError(t, e.Place(BoardMain, 1, 1))

	moves := e.Moves()
	require.Len(t, moves, 2)
	assert.Equal(t, "P1 L supply1 a1", moves[0].String())
	assert.Equal(t, "P1 L>b2", moves[1].String())
}

// legalActions lists every (board, row, col) the current state accepts.
func legalActions(st State) [][3]int {
	var out [][3]int
	for _, k := range BoardKinds {
		b := st.Board(k)
		for r := range b.Rows() {
			for c := range b.Cols() {
				if st.Check(k, r, c) == nil {
					out = append(out, [3]int{int(k), r, c})
				}
			}
		}
	}
	return out
}

func assertInvariants(t *testing.T, st State, perSize int) {
	t.Helper()
	for _, k := range BoardKinds {
		b := st.Board(k)
		for r := range b.Rows() {
			for c := range b.Cols() {
				cell := b.Cell(r, c)
				require.Zero(t, cell.Stack(Player1)&cell.Stack(Player2), "stacks overlap on %v at %d,%d", k, r, c)
			}
		}
	}
	for _, p := range Players {
		for _, s := range Sizes {
			require.Equal(t, perSize, st.Pieces(p, s), "%v owns wrong number of %v pieces", p, s)
		}
	}
}

func TestRandomGamesKeepInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, perSize := range []int{1, 2} {
		for game := 0; game < 100; game++ {
			e := NewEngine(perSize)
			for step := 0; step < 200 && !e.IsComplete(); step++ {
				// Random clicks, legal or not, must never break the invariants.
				k := BoardKinds[rng.Intn(len(BoardKinds))]
				b := e.State().Board(k)
				before := e.State()
				if err := e.Attempt(k, rng.Intn(b.Rows()), rng.Intn(b.Cols())); err != nil {
					require.Equal(t, before, e.State())
				}
				assertInvariants(t, e.State(), perSize)

				legal := legalActions(e.State())
				if len(legal) == 0 {
					break
				}
				a := legal[rng.Intn(len(legal))]
				require.NoError(t, e.Attempt(BoardKind(a[0]), a[1], a[2]))
				assertInvariants(t, e.State(), perSize)
				require.Equal(t, e.TurnNumber(), e.HistoryLength())
			}
		}
	}
}
