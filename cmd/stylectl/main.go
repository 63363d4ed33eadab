// Command stylectl inspects and edits element style documents stored as JSON files.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Notifuse/sitebuilder/config"
	"github.com/Notifuse/sitebuilder/pkg/logger"
)

// osExit is a variable to allow mocking os.Exit in tests
var osExit = os.Exit

// cli carries state shared by every subcommand
type cli struct {
	logLevel string
	logger   logger.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:           "stylectl",
		Short:         "Resolve and edit responsive element style documents",
		Version:       config.VERSION,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			c.logger = logger.NewLoggerWithWriter(cmd.ErrOrStderr(), c.logLevel)
		},
	}
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(
		c.resolveCmd(),
		c.effectiveCmd(),
		c.setCmd(),
		c.unsetCmd(),
		c.spacingCmd(),
		c.migrateCmd(),
	)
	return root
}

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
		osExit(1)
	}
}
