package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Install or upgrade the managed tool",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := c.app.Install(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func (c *CLI) newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Clear the cached fatal error and resolver state",
		Run: func(_ *cobra.Command, _ []string) {
			c.app.Reset()
		},
	}
}
