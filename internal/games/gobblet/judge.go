package gobblet

import (
	"github.com/samber/lo"
)

// Line is one winning pattern of the main board.
type Line struct {
	Name  string
	Cells []Coord
	mask  uint16
}

// Mask returns the line serialized the same way Board.Serialize does.
func (l Line) Mask() uint16 {
	return l.mask
}

// Contains reports whether c is one of the line's cells.
func (l Line) Contains(c Coord) bool {
	return lo.Contains(l.Cells, c)
}

// Judge checks boards for completed lines. Patterns are precomputed once by
// building a board per line and serializing it.
type Judge struct {
	lines []Line
}

// lineSpec describes a pattern by the cells it covers.
type lineSpec struct {
	name string
	on   func(row, col int) bool
}

// NewJudge precomputes the rows, columns and both diagonals of the main
// board.
func NewJudge() *Judge {
	specs := make([]lineSpec, 0, 2*MainSize+2)
	for i := range MainSize {
		row := i
		specs = append(specs, lineSpec{
			name: "row " + string(rune('1'+row)),
			on:   func(r, _ int) bool { return r == row },
		})
	}
	for i := range MainSize {
		col := i
		specs = append(specs, lineSpec{
			name: "column " + string(rune('a'+col)),
			on:   func(_, c int) bool { return c == col },
		})
	}
	specs = append(specs,
		lineSpec{name: "diagonal", on: func(r, c int) bool { return r == c }},
		lineSpec{name: "anti-diagonal", on: func(r, c int) bool { return MainSize-1-r == c }},
	)

	j := &Judge{lines: make([]Line, 0, len(specs))}
	for _, spec := range specs {
		// Any size and any reference player works: only ownership is serialized.
		pattern := NewBoard(MainSize, MainSize, func(r, c int) Cell {
			if spec.on(r, c) {
				return NewCell(Stack(0).With(Small), 0)
			}
			return Cell{}
		})

		var cells []Coord
		for r := range MainSize {
			for c := range MainSize {
				if spec.on(r, c) {
					cells = append(cells, At(r, c))
				}
			}
		}

		j.lines = append(j.lines, Line{
			Name:  spec.name,
			Cells: cells,
			mask:  pattern.Serialize(Player1),
		})
	}
	return j
}

// Lines returns every precomputed pattern in a fixed order.
func (j *Judge) Lines() []Line {
	return j.lines
}

// Judge returns every line on b fully owned by p. An empty result means p
// has not won.
func (j *Judge) Judge(b Board, p Player) []Line {
	s := b.Serialize(p)
	return lo.Filter(j.lines, func(l Line, _ int) bool {
		return s&l.mask == l.mask
	})
}

// lineSet records matched lines by their index in Lines, so a State can
// keep its winning lines without holding a slice.
type lineSet uint16

func (j *Judge) toSet(lines []Line) lineSet {
	var set lineSet
	for i, l := range j.lines {
		for _, m := range lines {
			if m.mask == l.mask {
				set |= 1 << i
			}
		}
	}
	return set
}

func (j *Judge) fromSet(set lineSet) []Line {
	return lo.Filter(j.lines, func(_ Line, i int) bool {
		return set&(1<<i) != 0
	})
}

// defaultJudge is shared by every engine; it is immutable after creation.
var defaultJudge = NewJudge()
