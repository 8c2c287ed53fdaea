package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simon/muxpick/internal/resolve"
)

var attachCmd = &cobra.Command{
	Use:   "attach <[host:]name>",
	Short: "Attach to a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		host, name := parseHostName(args[0])
		if name == "" {
			return fmt.Errorf("session name is required")
		}
		e, err := setupHost(host)
		if err != nil {
			return err
		}
		defer e.close()

		if err := e.authority.Check(cmd.Context()); err != nil {
			return err
		}
		return e.picker().Dispatch(cmd.Context(), resolve.Action{Kind: resolve.Attach, Name: name})
	},
}

func init() {
	rootCmd.AddCommand(attachCmd)
}
