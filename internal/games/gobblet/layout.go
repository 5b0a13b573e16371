package gobblet

import "github.com/vovakirdan/tui-gobblet/internal/core"

const (
	cellWidth  = 8 // Width of each cell including its left border
	cellHeight = 2 // Height of each cell including its top border
	boardGap   = 3 // Columns between racks and the main board

	minScreenW = 3*cellWidth + 2*(SupplyCols*cellWidth+1) + 2*boardGap + 1
	minScreenH = 24
)

// layout places every board on the screen. It is recomputed on resize.
type layout struct {
	boards [len(BoardKinds)]core.Rect
	top    int // First row below the status header
	bottom int // First row of the notice area
}

// boardSize returns the footprint of a board of rows x cols cells,
// borders included.
func boardSize(rows, cols int) (w, h int) {
	return cols*cellWidth + 1, rows*cellHeight + 1
}

func newLayout(screenW int) layout {
	var l layout

	mainW, mainH := boardSize(MainSize, MainSize)
	supW, supH := boardSize(SupplyRows, SupplyCols)
	stageW, stageH := boardSize(1, 1)

	total := supW + boardGap + mainW + boardGap + supW
	x := max((screenW-total)/2, 0)
	l.top = 4

	l.boards[BoardSupply1] = core.NewRect(x, l.top, supW, supH)
	l.boards[BoardMain] = core.NewRect(x+supW+boardGap, l.top, mainW, mainH)
	l.boards[BoardSupply2] = core.NewRect(x+supW+boardGap+mainW+boardGap, l.top, supW, supH)

	center := l.boards[BoardMain]
	l.boards[BoardStaging] = core.NewRect(center.X+(mainW-stageW)/2, center.Bottom()+2, stageW, stageH)

	l.bottom = l.boards[BoardStaging].Bottom() + 1
	return l
}

// board returns the rectangle of board k.
func (l layout) board(k BoardKind) core.Rect {
	return l.boards[k]
}

// cell returns the rectangle of one cell, borders included.
func (l layout) cell(k BoardKind, row, col int) core.Rect {
	b := l.boards[k]
	return core.NewRect(b.X+col*cellWidth, b.Y+row*cellHeight, cellWidth+1, cellHeight+1)
}

// hit maps a screen position to the cell under it. Border characters
// belong to no cell.
func (l layout) hit(x, y int) (k BoardKind, row, col int, ok bool) {
	for _, kind := range BoardKinds {
		b := l.boards[kind]
		if !b.Contains(x, y) {
			continue
		}
		dx, dy := x-b.X, y-b.Y
		if dx%cellWidth == 0 || dy%cellHeight == 0 {
			return 0, 0, 0, false
		}
		return kind, dy / cellHeight, dx / cellWidth, true
	}
	return 0, 0, 0, false
}
