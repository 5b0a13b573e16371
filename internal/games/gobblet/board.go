package gobblet

import "fmt"

// Board dimensions.
const (
	MainSize    = 3 // Main board is MainSize x MainSize
	SupplyRows  = 3 // One row per piece size, largest first
	SupplyCols  = 2 // Maximum copies of each size
	maxCells    = MainSize * MainSize
	stagingRows = 1
	stagingCols = 1
)

// Coord addresses a cell by row and column.
type Coord struct {
	Row int
	Col int
}

// At is a convenience constructor for Coord.
func At(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns chess-like notation, columns a..c and rows 1..3.
func (c Coord) String() string {
	return fmt.Sprintf("%c%d", 'a'+rune(c.Col), c.Row+1)
}

// BoardKind identifies one of the four boards a game is made of.
type BoardKind uint8

const (
	BoardMain BoardKind = iota
	BoardSupply1
	BoardSupply2
	BoardStaging
)

// BoardKinds lists every board kind.
var BoardKinds = [...]BoardKind{BoardMain, BoardSupply1, BoardSupply2, BoardStaging}

// String returns a human-readable board name.
func (k BoardKind) String() string {
	switch k {
	case BoardMain:
		return "board"
	case BoardSupply1:
		return "supply1"
	case BoardSupply2:
		return "supply2"
	case BoardStaging:
		return "stage"
	default:
		return "unknown"
	}
}

// SupplyOf returns the supply board kind belonging to p.
func SupplyOf(p Player) BoardKind {
	if p == Player2 {
		return BoardSupply2
	}
	return BoardSupply1
}

// Board is a fixed-size grid of cells. It is a value type: assigning a Board
// copies every cell.
type Board struct {
	rows  int
	cols  int
	cells [maxCells]Cell
}

// NewBoard creates a rows x cols board. If init is non-nil it supplies the
// starting contents of every cell.
func NewBoard(rows, cols int, init func(row, col int) Cell) Board {
	if rows <= 0 || cols <= 0 || rows*cols > maxCells {
		panic(fmt.Sprintf("gobblet: unsupported board size %dx%d", rows, cols))
	}
	b := Board{rows: rows, cols: cols}
	if init != nil {
		for r := range rows {
			for c := range cols {
				b.cells[r*cols+c] = init(r, c)
			}
		}
	}
	return b
}

// NewMainBoard returns an empty 3x3 playing board.
func NewMainBoard() Board {
	return NewBoard(MainSize, MainSize, nil)
}

// NewStagingBoard returns the empty 1x1 holding slot.
func NewStagingBoard() Board {
	return NewBoard(stagingRows, stagingCols, nil)
}

// NewSupplyBoard returns p's starting rack: row 0 Large, row 1 Middle,
// row 2 Small, with perSize copies of each filled from column 0.
func NewSupplyBoard(p Player, perSize int) Board {
	if perSize < 1 || perSize > SupplyCols {
		panic(fmt.Sprintf("gobblet: pieces per size must be 1..%d, got %d", SupplyCols, perSize))
	}
	return NewBoard(SupplyRows, SupplyCols, func(row, col int) Cell {
		if col >= perSize {
			return Cell{}
		}
		var stacks [2]Stack
		stacks[p.index()] = Stack(0).With(Sizes[row])
		return NewCell(stacks[0], stacks[1])
	})
}

// Rows returns the number of rows.
func (b Board) Rows() int {
	return b.rows
}

// Cols returns the number of columns.
func (b Board) Cols() int {
	return b.cols
}

// Contains reports whether (row, col) lies on the board.
func (b Board) Contains(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// Cell returns a copy of the cell at (row, col). Out-of-range indices are a
// caller bug and panic.
func (b Board) Cell(row, col int) Cell {
	return *b.at(row, col)
}

// at returns a pointer to the cell so engine code can mutate it in place.
func (b *Board) at(row, col int) *Cell {
	if !b.Contains(row, col) {
		panic(fmt.Sprintf("gobblet: cell (%d,%d) outside %dx%d board", row, col, b.rows, b.cols))
	}
	return &b.cells[row*b.cols+col]
}

// IsPlaceableAnywhere reports whether some cell could accept a piece of the
// given size.
func (b Board) IsPlaceableAnywhere(s Size) bool {
	for i := range b.rows * b.cols {
		if b.cells[i].IsPlaceable(s) {
			return true
		}
	}
	return false
}

// Serialize packs ownership into a bitmask, one bit per cell, set when p
// owns the visible piece there. Cells are scanned row-major; the first cell
// ends up in the most significant used bit.
func (b Board) Serialize(p Player) uint16 {
	var bits uint16
	for i := range b.rows * b.cols {
		bits <<= 1
		if b.cells[i].Owner() == p {
			bits |= 1
		}
	}
	return bits
}

// Pieces returns how many pieces of size s player p has anywhere on the
// board, counting covered ones.
func (b Board) Pieces(p Player, s Size) int {
	n := 0
	for i := range b.rows * b.cols {
		if b.cells[i].Stack(p).Has(s) {
			n++
		}
	}
	return n
}
