package gobblet

import "fmt"

// Phase is the turn engine's position in a half-move cycle.
type Phase uint8

const (
	PhaseStaging  Phase = iota // Current player must pick a piece
	PhaseCommit                // Current player must place the staged piece
	PhaseComplete              // Someone won; no further moves
)

// String returns a human-readable name for the phase.
func (ph Phase) String() string {
	switch ph {
	case PhaseStaging:
		return "staging"
	case PhaseCommit:
		return "commit"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Action is the kind of half-move a Move records.
type Action uint8

const (
	ActionPick Action = iota + 1
	ActionPlace
)

// Move records one successful half-move.
type Move struct {
	Player Player
	Action Action
	Board  BoardKind
	At     Coord
	Size   Size
}

// String renders the move in transcript notation, e.g. "P1 L supply1 a1"
// for a pick or "P1 L>b2" for a placement.
func (m Move) String() string {
	who := "P1"
	if m.Player == Player2 {
		who = "P2"
	}
	switch m.Action {
	case ActionPick:
		return fmt.Sprintf("%s %s %s %s", who, m.Size.Letter(), m.Board, m.At)
	case ActionPlace:
		return fmt.Sprintf("%s %s>%s", who, m.Size.Letter(), m.At)
	default:
		return ""
	}
}

// origin is where the staged piece came from this half-move.
type origin struct {
	at      Coord
	onBoard bool
}

// State is a complete, self-contained game position. It is a value type:
// copying it yields an independent snapshot, which is how history works.
type State struct {
	supply     [2]Board
	stage      Board
	board      Board
	turn       Player
	phase      Phase
	lastPicked origin
	winning    lineSet
	turnNumber int
	last       Move
}

// NewState returns the starting position with perSize copies of every
// piece size in each supply rack.
func NewState(perSize int) State {
	return State{
		supply: [2]Board{
			NewSupplyBoard(Player1, perSize),
			NewSupplyBoard(Player2, perSize),
		},
		stage: NewStagingBoard(),
		board: NewMainBoard(),
		turn:  Player1,
		phase: PhaseStaging,
	}
}

// Board returns a copy of the requested board.
func (s State) Board(k BoardKind) Board {
	return *s.boardPtr(k)
}

func (s *State) boardPtr(k BoardKind) *Board {
	switch k {
	case BoardMain:
		return &s.board
	case BoardSupply1:
		return &s.supply[0]
	case BoardSupply2:
		return &s.supply[1]
	case BoardStaging:
		return &s.stage
	default:
		panic(fmt.Sprintf("gobblet: unknown board kind %d", k))
	}
}

// Visible returns the owner and size of the top piece at (row, col) on the
// given board.
func (s State) Visible(k BoardKind, row, col int) (Player, Size) {
	return s.boardPtr(k).at(row, col).Visible()
}

// Phase returns the current phase.
func (s State) Phase() Phase {
	return s.phase
}

// Turn returns the player to move. Once the game is complete it is the
// winner.
func (s State) Turn() Player {
	return s.turn
}

// IsComplete reports whether the game has been won.
func (s State) IsComplete() bool {
	return s.phase == PhaseComplete
}

// Winner returns the winning player, or Nobody while the game is running.
func (s State) Winner() Player {
	if !s.IsComplete() {
		return Nobody
	}
	return s.turn
}

// WinningLines returns every line that completed the game.
func (s State) WinningLines() []Line {
	return defaultJudge.fromSet(s.winning)
}

// WinningCells returns the union of all winning lines' cells in row-major
// order. It is empty until the game is complete.
func (s State) WinningCells() []Coord {
	var cells []Coord
	for r := range MainSize {
		for c := range MainSize {
			if s.IsWinningCell(At(r, c)) {
				cells = append(cells, At(r, c))
			}
		}
	}
	return cells
}

// IsWinningCell reports whether c belongs to a winning line.
func (s State) IsWinningCell(c Coord) bool {
	for _, l := range s.WinningLines() {
		if l.Contains(c) {
			return true
		}
	}
	return false
}

// LastPicked returns the main-board cell the staged piece was lifted from.
// ok is false when the piece came from a supply rack or nothing is staged.
func (s State) LastPicked() (c Coord, ok bool) {
	return s.lastPicked.at, s.lastPicked.onBoard
}

// Staged returns the size of the piece waiting in the staging slot.
func (s State) Staged() Size {
	_, size := s.stage.Cell(0, 0).Visible()
	return size
}

// TurnNumber counts successful half-moves since the start.
func (s State) TurnNumber() int {
	return s.turnNumber
}

// LastMove returns the half-move that produced this state. ok is false for
// the starting position.
func (s State) LastMove() (m Move, ok bool) {
	return s.last, s.last.Action != 0
}

// Pieces counts every piece p owns across all four boards, covered or not.
func (s State) Pieces(p Player, size Size) int {
	n := 0
	for _, k := range BoardKinds {
		n += s.boardPtr(k).Pieces(p, size)
	}
	return n
}

// CheckPick validates picking the visible piece at (row, col) on board k
// without changing anything.
func (s State) CheckPick(k BoardKind, row, col int) error {
	switch s.phase {
	case PhaseComplete:
		return ErrGameComplete
	case PhaseCommit:
		return ErrWrongPhase
	}
	owner, size := s.Visible(k, row, col)
	if owner != s.turn {
		return ErrNotYourPiece
	}
	// Checked against the main board whatever the source: a piece that
	// cannot land anywhere must not be lifted.
	if !s.board.IsPlaceableAnywhere(size) {
		return ErrNotPlaceableAnywhere
	}
	return nil
}

// CheckPlace validates placing the staged piece at (row, col) on board k
// without changing anything.
func (s State) CheckPlace(k BoardKind, row, col int) error {
	switch s.phase {
	case PhaseComplete:
		return ErrGameComplete
	case PhaseStaging:
		return ErrWrongPhase
	}
	if k != BoardMain {
		return ErrWrongBoard
	}
	if at, ok := s.LastPicked(); ok && at == At(row, col) {
		return ErrReturnToOrigin
	}
	if !s.board.at(row, col).IsPlaceable(s.Staged()) {
		return ErrCellOccupied
	}
	return nil
}

// Check validates whatever action the current phase expects at (row, col).
func (s State) Check(k BoardKind, row, col int) error {
	if s.phase == PhaseCommit {
		return s.CheckPlace(k, row, col)
	}
	return s.CheckPick(k, row, col)
}

// pick applies a validated pick.
func (s *State) pick(k BoardKind, row, col int) {
	size := s.boardPtr(k).at(row, col).Pick(s.turn)
	s.stage.at(0, 0).Place(s.turn, size)
	s.lastPicked = origin{at: At(row, col), onBoard: k == BoardMain}
	s.turnNumber++
	s.last = Move{Player: s.turn, Action: ActionPick, Board: k, At: At(row, col), Size: size}

	// Lifting a piece can only uncover the opponent's pieces.
	if s.settle(s.turn.Opponent()) {
		return
	}
	s.phase = PhaseCommit
}

// place applies a validated placement.
func (s *State) place(row, col int) {
	size := s.stage.at(0, 0).Pick(s.turn)
	s.board.at(row, col).Place(s.turn, size)
	s.lastPicked = origin{}
	s.turnNumber++
	s.last = Move{Player: s.turn, Action: ActionPlace, Board: BoardMain, At: At(row, col), Size: size}

	if s.settle(s.turn) {
		return
	}
	s.turn = s.turn.Opponent()
	s.phase = PhaseStaging
}

// settle ends the game if candidate owns a full line. It reports whether
// the game is now complete.
func (s *State) settle(candidate Player) bool {
	lines := defaultJudge.Judge(s.board, candidate)
	if len(lines) == 0 {
		return false
	}
	s.phase = PhaseComplete
	s.winning = defaultJudge.toSet(lines)
	s.turn = candidate
	return true
}
