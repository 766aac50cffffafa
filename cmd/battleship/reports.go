package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-battleship/internal/platform/tui"
	"github.com/vovakirdan/tui-battleship/internal/storage"
)

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "Browse scores and the battle log interactively",
	Long: `Open the interactive record browser. Tab switches between the high
score table and the battle log of finished matches.

Examples:
  battleship reports
  battleship reports --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runReports,
}

func runReports(_ *cobra.Command, _ []string) {
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := tui.RunScoreboard(store, gameID, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error running reports view: %v\n", err)
		os.Exit(1)
	}
}
