package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newTestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "test [go test flags] [packages]",
		Short: "Run go test with fingerprint caching enabled",
		Long: "Run go test in the current directory with SHIORI=1 set. " +
			"Every argument is passed to go test unchanged.",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if args == nil {
				args = []string{}
			}
			return c.app.Test(cmd.Context(), args, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}
