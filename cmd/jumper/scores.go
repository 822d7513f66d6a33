package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jumper/internal/games/jumper"
	"github.com/vovakirdan/tui-jumper/internal/registry"
	"github.com/vovakirdan/tui-jumper/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high score",
	Long: `Display the best score of every game stored in the selected backend.

Examples:
  jumper scores
  jumper scores --store gdata
  jumper scores reset`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

var scoresResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the high score",
	Args:  cobra.NoArgs,
	RunE:  runScoresReset,
}

func init() {
	scoresCmd.AddCommand(scoresResetCmd)
}

func openStore() (storage.HighScores, error) {
	store, err := storage.OpenBackend(flagStore, flagDBPath)
	if err != nil {
		return nil, fmt.Errorf("opening score store: %w", err)
	}
	return store, nil
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()
	return printScores(os.Stdout, store)
}

// printScores writes one table per registered game.
func printScores(w io.Writer, store storage.HighScores) error {
	for _, info := range registry.List() {
		rec, err := store.Record(info.ID)
		if err != nil {
			return fmt.Errorf("retrieving score for %s: %w", info.ID, err)
		}

		fmt.Fprintf(w, "High Score - %s\n\n", info.Title)

		if rec == nil {
			fmt.Fprintln(w, "No score recorded yet.")
			fmt.Fprintln(w)
			fmt.Fprintf(w, "Play 'jumper play' to set the first high score!\n\n")
			continue
		}

		fmt.Fprintf(w, "  %-10s  %s\n", "Score", "Date")
		fmt.Fprintf(w, "  %-10s  %s\n", "-----", "----")
		date := "-"
		if !rec.UpdatedAt.IsZero() {
			date = rec.UpdatedAt.Local().Format("2006-01-02 15:04")
		}
		fmt.Fprintf(w, "  %-10d  %s\n\n", rec.Score, date)
	}
	return nil
}

func runScoresReset(_ *cobra.Command, _ []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Reset(jumper.ID); err != nil {
		return fmt.Errorf("resetting score: %w", err)
	}
	fmt.Println("High score cleared.")
	return nil
}
