// gobblet plays Gobblet Gobblers in the terminal, two players on one keyboard.
//
// Usage:
//
//	gobblet play             - Play a hot-seat match
//	gobblet serve            - Start SSH server for remote play
//	gobblet results          - Show recent matches and win tallies
//	gobblet rules            - Print the rules
//	gobblet config           - Print the default configuration
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 30)
//	--db <path>      - Set database path (default: ~/.gobblet/results.db)
//	--config <path>  - Use a custom config YAML
//	--debug          - Write a debug log to ~/.gobblet/gobblet.log
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-gobblet/internal/config"
	"github.com/vovakirdan/tui-gobblet/internal/games/gobblet"
)

var (
	// Global flags
	flagFPS    int
	flagDBPath string
	flagConfig string
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gobblet",
	Short: "Gobblet Gobblers in your terminal",
	Long: `Gobblet Gobblers is tic-tac-toe where bigger pieces swallow smaller ones.
Two players share one terminal (or one SSH session) and take turns.

Available commands:
  play     - Play a match
  serve    - Start SSH server for remote play
  results  - View recent matches and win tallies
  rules    - Print the rules
  config   - Print the default configuration

Examples:
  gobblet play
  gobblet play --config ./two-of-each.yaml
  gobblet serve --ssh :2222
  gobblet results`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gobblet/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Write a debug log to ~/.gobblet/gobblet.log")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(configCmd)
}

// useConfig points new games at path and checks that it loads, so a broken
// file fails the command instead of silently falling back to defaults.
func useConfig(path string) error {
	if _, err := config.LoadGobblet(path); err != nil {
		return err
	}
	gobblet.SetConfigPath(path)
	return nil
}
