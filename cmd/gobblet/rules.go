package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const rulesText = `Gobblet Gobblers

Each player owns Large, Middle and Small pieces on a supply rack next to the
3x3 board. Players alternate; a turn has two steps:

  1. Pick one of your pieces, either from your rack or from the board, as
     long as it is the topmost piece of its cell. It moves to the stage.
  2. Place it on an empty cell or over a strictly smaller piece of either
     color. A piece picked from the board may not go back to the cell it
     came from.

A piece you cannot place anywhere cannot be picked. Pieces under a bigger
one stay hidden until it leaves.

The first player to show three visible pieces in a row, column or diagonal
wins. Lifting a piece can reveal a line for your opponent: if it does, your
opponent wins at once.`

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the rules",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(rulesText)
	},
}
