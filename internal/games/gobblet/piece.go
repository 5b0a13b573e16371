// Package gobblet implements a stackable-piece tic-tac-toe in the style of
// Gobblet Gobblers. Larger pieces cover smaller ones, and a line of three
// visible pieces wins.
//
// The rules engine (Cell, Board, Judge, Engine) is pure and deterministic.
// Game adapts it to the terminal platform for input and rendering.
package gobblet

import "fmt"

// Size is a piece size. Values are single bits so several sizes can be
// combined into a Stack.
type Size uint8

const (
	None   Size = 0
	Small  Size = 1
	Middle Size = 2
	Large  Size = 4
)

// Sizes lists every real piece size from largest to smallest.
var Sizes = [...]Size{Large, Middle, Small}

// String returns a human-readable name for the size.
func (s Size) String() string {
	switch s {
	case None:
		return "None"
	case Small:
		return "Small"
	case Middle:
		return "Middle"
	case Large:
		return "Large"
	default:
		return fmt.Sprintf("Size(%d)", uint8(s))
	}
}

// Letter returns the one-letter notation used in move transcripts.
func (s Size) Letter() string {
	switch s {
	case Small:
		return "S"
	case Middle:
		return "M"
	case Large:
		return "L"
	default:
		return "-"
	}
}

// valid reports whether s is exactly one real size.
func (s Size) valid() bool {
	return s == Small || s == Middle || s == Large
}

// Stack is the set of sizes one player has stacked at a single position.
// A physical stack is modelled as a set, not a sequence: only the largest
// member is visible.
type Stack uint8

// Has reports whether the stack contains a piece of the given size.
func (st Stack) Has(s Size) bool {
	return st&Stack(s) != 0
}

// With returns the stack with s added.
func (st Stack) With(s Size) Stack {
	return st | Stack(s)
}

// Without returns the stack with s removed.
func (st Stack) Without(s Size) Stack {
	return st &^ Stack(s)
}

// Top returns the largest size in the stack, or None if it is empty.
func (st Stack) Top() Size {
	for _, s := range Sizes {
		if st.Has(s) {
			return s
		}
	}
	return None
}

// Empty reports whether the stack holds no pieces.
func (st Stack) Empty() bool {
	return st == 0
}

// Count returns how many pieces the stack holds.
func (st Stack) Count() int {
	n := 0
	for _, s := range Sizes {
		if st.Has(s) {
			n++
		}
	}
	return n
}

// Player identifies a side. Nobody is used for empty cells and for
// "no winner yet".
type Player uint8

const (
	Nobody Player = iota
	Player1
	Player2
)

// Players lists both sides in turn order.
var Players = [...]Player{Player1, Player2}

// Opponent returns the other side. Nobody has no opponent.
func (p Player) Opponent() Player {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return Nobody
	}
}

// String returns the display name used in status lines.
func (p Player) String() string {
	switch p {
	case Player1:
		return "Player1"
	case Player2:
		return "Player2"
	default:
		return "Nobody"
	}
}

// index maps a real player to 0 or 1 for array lookups.
func (p Player) index() int {
	switch p {
	case Player1:
		return 0
	case Player2:
		return 1
	default:
		panic(fmt.Sprintf("gobblet: %v is not a playing side", p))
	}
}
