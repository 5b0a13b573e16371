package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-gobblet/internal/games/gobblet"
	"github.com/vovakirdan/tui-gobblet/internal/platform/tui"
	"github.com/vovakirdan/tui-gobblet/internal/storage"
)

var (
	flagResultsLimit int
	flagInteractive  bool
	flagClear        bool
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Show recent matches and win tallies",
	Long: `Display recently finished matches, wins per player and overall stats.

Examples:
  gobblet results
  gobblet results --limit 25
  gobblet results -i        # browse interactively, Enter shows the moves
  gobblet results --clear   # forget every recorded match`,
	Args: cobra.NoArgs,
	Run:  runResults,
}

func init() {
	resultsCmd.Flags().IntVarP(&flagResultsLimit, "limit", "n", 10, "Number of matches to show")
	resultsCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse results in a table")
	resultsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded matches")
}

func runResults(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClear:
		err = store.ClearMatches(gobblet.GameID)
		if err == nil {
			fmt.Println("All matches cleared.")
		}
	case flagInteractive:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		err = tui.RunResults(store, gobblet.GameID, "Gobblet", width, height)
	default:
		err = printResults(store)
	}

	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printResults(store *storage.Store) error {
	matches, err := store.RecentMatches(gobblet.GameID, flagResultsLimit)
	if err != nil {
		return err
	}

	fmt.Println("Recent Matches - Gobblet")
	fmt.Println()

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Run 'gobblet play' to record the first one!")
		return nil
	}

	fmt.Printf("  %-5s  %-12s  %-5s  %-24s  %s\n", "#", "Winner", "Moves", "Lines", "Date")
	fmt.Printf("  %-5s  %-12s  %-5s  %-24s  %s\n", "-", "------", "-----", "-----", "----")
	for _, m := range matches {
		fmt.Printf("  %-5d  %-12s  %-5d  %-24s  %s\n",
			m.ID, m.Winner, m.HalfMoves, strings.Join(m.Lines, ", "), m.CreatedAt.Format("2006-01-02 15:04"))
	}

	tally, err := store.WinTally(gobblet.GameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Println("Wins:")
	for _, t := range tally {
		fmt.Printf("  %-12s  %d\n", t.Winner, t.Wins)
	}

	stats, err := store.GetGameStats(gobblet.GameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Matches: %d  Avg moves: %.1f  First player wins: %d  Second player wins: %d\n",
		stats.MatchesCount, stats.AvgHalfMoves, stats.Seat1Wins, stats.Seat2Wins)
	return nil
}
