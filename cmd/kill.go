package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/simon/muxpick/internal/state"
	"github.com/simon/muxpick/internal/ui"
)

var killCmd = &cobra.Command{
	Use:   "kill <[host:]name>",
	Short: "Kill a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		host, name := parseHostName(args[0])
		e, err := setupHost(host)
		if err != nil {
			return err
		}
		defer e.close()

		ctx := cmd.Context()
		if err := e.authority.Check(ctx); err != nil {
			return err
		}

		force, _ := cmd.Flags().GetBool("force")
		if !force {
			fmt.Fprintf(cmd.OutOrStdout(), "Kill session %q? [y/N] ", args[0])
			reader := bufio.NewReader(cmd.InOrStdin())
			answer, _ := reader.ReadString('\n')
			if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(answer)), "y") {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
				return nil
			}
		}

		if err := e.actuator().Kill(ctx, name); err != nil {
			return err
		}
		if e.journal != nil {
			if err := e.journal.Record(ctx, state.Entry{
				Authority: e.authority.Name(),
				Host:      e.host,
				Action:    "kill",
				Session:   name,
			}); err != nil {
				e.logger.Warn("could not journal action", "err", err)
			}
		}

		ui.Successf("Killed session %q", args[0])
		return nil
	},
}

func init() {
	killCmd.Flags().BoolP("force", "f", false, "Skip confirmation")
	rootCmd.AddCommand(killCmd)
}
