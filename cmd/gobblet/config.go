package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-gobblet/internal/config"
	"github.com/vovakirdan/tui-gobblet/internal/games/gobblet"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration as YAML. Save it to
~/.gobblet/configs/gobblet.yaml or pass it with --config to customize
player names, colors, the number of pieces per size and display timing.

With --config the given file is validated instead.

Examples:
  gobblet config > ~/.gobblet/configs/gobblet.yaml
  gobblet config --config ./my-gobblet.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagConfig == "" {
		fmt.Print(string(config.GetDefaultYAML(gobblet.GameID)))
		return
	}

	cfg, err := config.LoadGobblet(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s is valid: %s vs %s, %d piece(s) per size\n",
		flagConfig, cfg.Players.Player1.Name, cfg.Players.Player2.Name, cfg.Rules.PiecesPerSize)
}
