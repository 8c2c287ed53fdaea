package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/simon/muxpick/internal/session"
	"github.com/simon/muxpick/internal/ui"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List sessions with their letter shortcuts",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup()
		if err != nil {
			return err
		}
		defer e.close()

		ctx := cmd.Context()
		if err := e.authority.Check(ctx); err != nil {
			return err
		}
		sessions, err := e.authority.List(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		namesOnly, _ := cmd.Flags().GetBool("names")
		if namesOnly {
			for _, s := range sessions {
				fmt.Fprintln(out, s.Name)
			}
			return nil
		}

		if len(sessions) == 0 {
			fmt.Fprintf(out, "No %s sessions\n", e.authority.Name())
			return nil
		}

		now := time.Now()
		keys := session.NewLetterMap(sessions).Keys()
		table := ui.NewTable(out, []string{"Key", "Name", "Status", "Path"})
		for i, s := range sessions {
			table.Append([]string{keys[i], s.Name, s.Describe(now), s.Path})
		}
		table.Render()
		return nil
	},
}

func init() {
	listCmd.Flags().Bool("names", false, "print session names only, one per line")
	rootCmd.AddCommand(listCmd)
}
