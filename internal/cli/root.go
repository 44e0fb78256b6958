// Package cli provides the zeta command.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"zeta/internal/app"
)

// Version is set at build time through -ldflags.
var Version = "v0.3.0-dev"

// NewRootCmd creates the root command. run starts the UI.
func NewRootCmd(run func(ctx context.Context) error) *cobra.Command {
	return &cobra.Command{
		Use:   "zeta",
		Short: "Zeta - a dual-pane terminal file manager",
		Long: `Zeta ` + Version + ` - a dual-pane terminal file manager.

The left pane opens in your home directory, the right pane at /.
Press F10 or q to quit.`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := NewRootCmd(func(ctx context.Context) error {
		return app.Run(ctx, os.Stdin, os.Stdout)
	})
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "zeta: %v\n", err)
		return 1
	}
	return 0
}
