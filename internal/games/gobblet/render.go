package gobblet

import (
	"fmt"

	"github.com/vovakirdan/tui-gobblet/internal/core"
)

const (
	gridColor   = core.ColorGray
	cursorColor = core.ColorBrightYellow
	hintColor   = core.ColorBrightGreen
	winColor    = core.ColorYellow
	noticeColor = core.ColorYellow
)

var boardLabels = [...]string{
	BoardMain:    "Board",
	BoardStaging: "Stage",
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	st := g.view()

	dst.DrawTextCentered(0, "G O B B L E T", core.ColorBrightCyan)
	g.renderStatus(dst, st)

	for _, k := range BoardKinds {
		g.renderBoard(dst, st, k)
	}

	g.renderNotices(dst)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH), core.ColorGray)
}

// renderStatus draws whose move it is and the turn counter.
func (g *Game) renderStatus(dst *core.Screen, st State) {
	who := st.Turn()
	dst.DrawTextCentered(1, g.statusText(st), g.playerColor(who))

	turn := g.turnText(st)
	if g.engine.IsComplete() {
		turn = fmt.Sprintf("%s  replay %d/%d", turn, g.replay, g.engine.HistoryLength())
	}
	dst.DrawTextCentered(2, turn, core.ColorGray)
}

// statusText is "Pick your piece, <name>", "Place your piece, <name>"
// or "<name> WIN !".
func (g *Game) statusText(st State) string {
	name := g.playerName(st.Turn())
	switch st.Phase() {
	case PhaseComplete:
		return name + " WIN !"
	case PhaseCommit:
		return "Place your piece, " + name
	default:
		return "Pick your piece, " + name
	}
}

// turnText counts player turns: a pick and its place make one turn.
func (g *Game) turnText(st State) string {
	if st.IsComplete() {
		return "Finish"
	}
	return fmt.Sprintf("Turn %d", st.TurnNumber()/2+1)
}

func (g *Game) renderBoard(dst *core.Screen, st State, k BoardKind) {
	r := g.layout.board(k)
	b := st.Board(k)

	label, color := boardLabels[k], core.ColorDefault
	switch k {
	case BoardSupply1:
		label, color = g.playerName(Player1), g.playerColor(Player1)
	case BoardSupply2:
		label, color = g.playerName(Player2), g.playerColor(Player2)
	}
	lx := r.X + (r.W-len([]rune(label)))/2
	dst.DrawTextColor(lx, r.Y-1, label, color)

	drawGrid(dst, r, b.Rows(), b.Cols())

	blinkOn := g.blinkOn()
	origin, picked := st.LastPicked()
	live := !g.engine.IsComplete() || g.replay == g.engine.HistoryLength()

	for row := range b.Rows() {
		for col := range b.Cols() {
			cell := g.layout.cell(k, row, col)
			x, y := cell.X+1, cell.Y+1

			owner, size := b.Cell(row, col).Visible()
			if size != None {
				dst.DrawTextColor(x+1, y, glyph(size), g.playerColor(owner))
			}

			switch {
			case st.IsComplete() && k == BoardMain && st.IsWinningCell(At(row, col)):
				if blinkOn {
					markCell(dst, x, y, '*', winColor)
				}
			case picked && k == BoardMain && origin == At(row, col):
				markCell(dst, x, y, '×', gridColor)
			case g.cfg.Display.ShowHints && live && blinkOn && st.Check(k, row, col) == nil:
				markCell(dst, x, y, '›', hintColor)
				dst.SetCell(x+cellWidth-2, y, '‹', hintColor)
			}

			if live && g.cursor == (cursor{board: k, row: row, col: col}) {
				dst.DrawBox(cell, cursorColor)
			}
		}
	}
}

// blinkOn reports whether blinking marks are visible this tick.
func (g *Game) blinkOn() bool {
	if g.cfg.Display.BlinkTicks <= 0 {
		return true
	}
	return (g.tick/uint64(g.cfg.Display.BlinkTicks))%2 == 0
}

func (g *Game) renderNotices(dst *core.Screen) {
	for i, n := range g.notices {
		dst.DrawTextCentered(g.layout.bottom+1+i, n.text, noticeColor)
	}
}

// glyph draws a piece five columns wide; bigger pieces are wider.
func glyph(s Size) string {
	switch s {
	case Large:
		return "((L))"
	case Middle:
		return " (M) "
	case Small:
		return "  S  "
	default:
		return "     "
	}
}

// markCell puts r in both marker columns of a cell interior.
func markCell(dst *core.Screen, x, y int, r rune, c core.Color) {
	dst.SetCell(x, y, r, c)
	dst.SetCell(x+cellWidth-2, y, r, c)
}

// drawGrid draws the borders of a rows x cols board.
func drawGrid(dst *core.Screen, r core.Rect, rows, cols int) {
	for y := range rows + 1 {
		for x := range cols + 1 {
			px := r.X + x*cellWidth
			py := r.Y + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == cols:
				corner = '┐'
			case y == rows && x == 0:
				corner = '└'
			case y == rows && x == cols:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == rows:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == cols:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetCell(px, py, corner, gridColor)

			if x < cols {
				for i := 1; i < cellWidth; i++ {
					dst.SetCell(px+i, py, '─', gridColor)
				}
			}
			if y < rows {
				for i := 1; i < cellHeight; i++ {
					dst.SetCell(px, py+i, '│', gridColor)
				}
			}
		}
	}
}
