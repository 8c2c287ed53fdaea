package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/simon/muxpick/internal/session"
	"github.com/simon/muxpick/internal/state"
	"github.com/simon/muxpick/internal/ui"
)

var timeSince = time.Since

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently dispatched actions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := state.Open()
		if err != nil {
			return fmt.Errorf("failed to open state db: %w", err)
		}
		defer store.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		entries, err := store.Recent(cmd.Context(), limit)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(entries) == 0 {
			fmt.Fprintln(out, "No history yet")
			return nil
		}

		table := ui.NewTable(out, []string{"When", "Action", "Session", "Authority", "Host"})
		for _, en := range entries {
			when := ""
			if !en.At.IsZero() {
				when = session.FormatDuration(timeSince(en.At)) + " ago"
			}
			table.Append([]string{when, en.Action, en.Session, en.Authority, en.Host})
		}
		table.Render()
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "number of entries to show")
	rootCmd.AddCommand(historyCmd)
}
