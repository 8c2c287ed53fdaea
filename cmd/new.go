package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/simon/muxpick/internal/resolve"
)

var newCmd = &cobra.Command{
	Use:     "new <[host:]name>",
	Aliases: []string{"create"},
	Short:   "Create a session and attach to it",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		host, name := parseHostName(args[0])
		name = strings.TrimSpace(name)
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
		return e.picker().Dispatch(cmd.Context(), resolve.Action{Kind: resolve.Create, Name: name})
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
}
