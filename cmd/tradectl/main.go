// Command tradectl is the operator CLI: symbol lookups, one-off analysis
// requests and database migrations.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"trading_backend/internal/config"
	"trading_backend/internal/platform/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "tradectl",
		Short:         "Trading dashboard backend tools",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := "warn"
			if verbose {
				level = "debug"
			}
			logger.Setup(config.LogConfig{Level: level, Format: "text"}, cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(newSymbolCmd(), newAnalyzeCmd(), newMigrateCmd(), newTokenCmd())
	return root
}
