package commands

import (
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/leashdev/leash/internal/core/domain"
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

func (c *CLI) newRunCmd() *cobra.Command {
	var (
		timeout   time.Duration
		cwd       string
		readStdin bool
	)

	cmd := &cobra.Command{
		Use:   "run [-- args...]",
		Short: "Run the wrapped tool with the given arguments",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var stdin string
			// The sentinel argument tells the tool to read a payload from
			// its input stream, so it implies --stdin.
			if readStdin || slices.Contains(args, domain.StdinSentinel) {
				data, err := io.ReadAll(os.Stdin)
				if err != nil {
					return zerr.Wrap(err, "failed to read stdin")
				}
				stdin = string(data)
			}

			out := c.app.Execute(cmd.Context(), domain.ExecutionRequest{
				Args:       args,
				Stdin:      stdin,
				Timeout:    timeout,
				WorkingDir: cwd,
			})

			// Stdout is forwarded on every branch that ran a process: some
			// tool subcommands emit diagnostics on stdout before failing.
			fmt.Fprint(cmd.OutOrStdout(), out.Stdout)
			fmt.Fprint(cmd.ErrOrStderr(), out.Stderr)

			switch out.Kind {
			case domain.OutcomeSuccess:
				return nil
			case domain.OutcomeFailure:
				return zerr.With(domain.ErrExecutionFailed, "exit_code", out.ExitCode)
			case domain.OutcomeTimeout:
				return zerr.With(domain.ErrExecutionFailed, "timed_out_after", out.Elapsed.String())
			default:
				return zerr.With(domain.ErrToolNotFound, "detail", out.Message)
			}
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "Kill the tool after this long")
	cmd.Flags().StringVar(&cwd, "cwd", "", "Working directory for the tool")
	cmd.Flags().BoolVar(&readStdin, "stdin", false, "Pipe this process's stdin to the tool")

	return cmd
}
