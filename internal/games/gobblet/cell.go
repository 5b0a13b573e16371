package gobblet

import "fmt"

// Cell holds, per player, the set of piece sizes stacked at one position.
//
// The two stacks are always disjoint: a given size can be present at a
// position for at most one player. Breaking that is a programming defect
// and panics.
type Cell struct {
	stacks [2]Stack
}

// NewCell returns a cell holding the given stacks.
func NewCell(p1, p2 Stack) Cell {
	c := Cell{stacks: [2]Stack{p1, p2}}
	c.mustBeDisjoint()
	return c
}

// Stack returns the sizes player p has stacked here.
func (c Cell) Stack(p Player) Stack {
	return c.stacks[p.index()]
}

// Visible returns the owner and size of the topmost piece. An empty cell
// returns (Nobody, None).
func (c Cell) Visible() (Player, Size) {
	top1, top2 := c.stacks[0].Top(), c.stacks[1].Top()
	switch {
	case top1 > top2:
		return Player1, top1
	case top2 > top1:
		return Player2, top2
	default:
		// Disjoint stacks share a top only when both are empty.
		return Nobody, None
	}
}

// Owner returns the player whose piece is visible, or Nobody.
func (c Cell) Owner() Player {
	p, _ := c.Visible()
	return p
}

// Empty reports whether no piece of either player is here.
func (c Cell) Empty() bool {
	return c.stacks[0].Empty() && c.stacks[1].Empty()
}

// IsPlaceable reports whether a piece of the given size may cover this cell,
// i.e. nothing of that size or larger is present for either player.
func (c Cell) IsPlaceable(s Size) bool {
	return c.stacks[0].Top() < s && c.stacks[1].Top() < s
}

// Pick removes player p's visible piece and returns its size. It returns
// None without touching the cell when the cell is empty or the visible
// piece belongs to the other player.
func (c *Cell) Pick(p Player) Size {
	owner, size := c.Visible()
	if size == None || owner != p {
		return None
	}
	i := p.index()
	c.stacks[i] = c.stacks[i].Without(size)
	return size
}

// Place covers the cell with player p's piece of the given size. It returns
// false without touching the cell when the cell already holds an equal or
// larger piece.
func (c *Cell) Place(p Player, s Size) bool {
	if !s.valid() {
		panic(fmt.Sprintf("gobblet: cannot place %v", s))
	}
	if !c.IsPlaceable(s) {
		return false
	}
	i := p.index()
	c.stacks[i] = c.stacks[i].With(s)
	c.mustBeDisjoint()
	return true
}

func (c Cell) mustBeDisjoint() {
	if c.stacks[0]&c.stacks[1] != 0 {
		panic(fmt.Sprintf("gobblet: cell stacks overlap (p1=%03b p2=%03b)", c.stacks[0], c.stacks[1]))
	}
}
