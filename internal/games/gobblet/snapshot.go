package gobblet

// Snapshot captures what the player sees, for tests and debugging.
type Snapshot struct {
	Tick       uint64
	Phase      string
	Turn       string // display name of the player to move, or the winner
	TurnNumber int
	Main       [MainSize][MainSize]string // "1L", "2S", ".." per cell
	Cursor     string                     // e.g. "board b2"
	Notices    []string                   // newest first
	Replay     int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	st := g.view()
	s := Snapshot{
		Tick:       g.tick,
		Phase:      st.Phase().String(),
		Turn:       g.playerName(st.Turn()),
		TurnNumber: st.TurnNumber(),
		Cursor:     g.cursor.board.String() + " " + At(g.cursor.row, g.cursor.col).String(),
		Replay:     g.replay,
	}

	center := st.Board(BoardMain)
	for row := range MainSize {
		for col := range MainSize {
			owner, size := center.Cell(row, col).Visible()
			switch owner {
			case Player1:
				s.Main[row][col] = "1" + size.Letter()
			case Player2:
				s.Main[row][col] = "2" + size.Letter()
			default:
				s.Main[row][col] = ".."
			}
		}
	}

	for _, n := range g.notices {
		s.Notices = append(s.Notices, n.text)
	}
	return s
}
