package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (c *CLI) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the resolved tool, its version, and the latest release",
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := c.app.Status(cmd.Context())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			invocation := status.Spec.Command
			if len(status.Spec.PrefixArgs) > 0 {
				invocation += " " + strings.Join(status.Spec.PrefixArgs, " ")
			}
			fmt.Fprintf(w, "command:   %s\n", invocation)
			fmt.Fprintf(w, "installed: %s\n", versionOrUnknown(status.Installed.String(), status.Installed.IsZero()))
			fmt.Fprintf(w, "required:  %s\n", status.Required)
			fmt.Fprintf(w, "latest:    %s\n", versionOrUnknown(status.Latest.String(), status.Latest.IsZero()))
			if !status.Latest.IsZero() && status.Latest.Newer(status.Installed) {
				fmt.Fprintln(w, "an update is available")
			}
			return nil
		},
	}
}

func versionOrUnknown(s string, unknown bool) string {
	if unknown {
		return "unknown"
	}
	return s
}
