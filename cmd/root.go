package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/simon/muxpick/internal/mux"
	"github.com/simon/muxpick/internal/ui"
)

var (
	versionString = "dev"
	flags         globalFlags
)

type globalFlags struct {
	authority string
	host      string
	config    string
	verbose   bool
}

func SetVersionInfo(version, commit string) {
	versionString = fmt.Sprintf("%s (%s)", version, commit)
	rootCmd.Version = versionString
}

var rootCmd = &cobra.Command{
	Use:   "muxpick",
	Short: "Pick, create or reset terminal multiplexer sessions",
	Long: `muxpick lists the sessions held by tmux, shpool or zmx, labels each with a
letter and hands your terminal to the one you choose.

At the prompt:
  a, b, ...   attach to the lettered session
  <name>      create (or attach to) a session with that name
  enter       create a session with a fresh random name
  reset       kill every listed session
  esc         cancel`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup()
		if err != nil {
			return err
		}
		defer e.close()

		p := e.picker()
		p.Placeholder = e.cfg.Placeholder
		return p.Run(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flags.authority, "authority", "a", "", "session authority: tmux, shpool, zmx or auto")
	rootCmd.PersistentFlags().StringVar(&flags.host, "host", "", "run against a host from the config file")
	rootCmd.PersistentFlags().StringVar(&flags.config, "config", "", "config file (default ~/.config/muxpick/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "debug logging on stderr")
	rootCmd.SetVersionTemplate("muxpick {{.Version}}\n")
}

// Execute runs the CLI and exits non-zero on any failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		reportError(err)
		os.Exit(1)
	}
}

// reportError prints one marked error line, plus remediation for a
// missing authority.
func reportError(err error) {
	ui.Error(err.Error())

	var missing *mux.MissingError
	if errors.As(err, &missing) && missing.Hint != "" {
		fmt.Fprintf(ui.Stderr, "  %s %s\n", ui.Dim("install:"), missing.Hint)
	}
}
