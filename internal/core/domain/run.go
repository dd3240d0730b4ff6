package domain

import (
	"slices"
	"time"
)

// StdinSentinel is the argument value the wrapped tool understands as "read
// this argument's payload from stdin". It lets callers pass large text
// payloads without running into command-line length limits.
const StdinSentinel = "-"

// RunSpec describes exactly how to invoke the wrapped tool: either a direct
// binary path, or an interpreter plus a fixed module-invocation prefix.
// RunSpec values are immutable once built.
type RunSpec struct {
	Command    string
	PrefixArgs []string
}

// Argv builds the final argument vector for a call.
func (s RunSpec) Argv(args []string) []string {
	out := make([]string, 0, len(s.PrefixArgs)+len(args))
	out = append(out, s.PrefixArgs...)
	out = append(out, args...)
	return out
}

// ExecutionRequest is a single invocation of the wrapped tool.
type ExecutionRequest struct {
	Args       []string
	Stdin      string
	Timeout    time.Duration
	WorkingDir string
}

// UsesStdinSentinel reports whether any argument is the stdin sentinel, in
// which case the request must carry the payload in Stdin.
func (r ExecutionRequest) UsesStdinSentinel() bool {
	return slices.Contains(r.Args, StdinSentinel)
}

// OutcomeKind tags an ExecutionOutcome variant.
type OutcomeKind int

const (
	// OutcomeSuccess means the process ran and exited zero.
	OutcomeSuccess OutcomeKind = iota
	// OutcomeFailure means the process ran and exited non-zero.
	OutcomeFailure
	// OutcomeTimeout means the process exceeded its deadline and was killed.
	OutcomeTimeout
	// OutcomeNotFound means no usable binary could be located or installed.
	OutcomeNotFound
	// OutcomeUnavailable means a previously recorded fatal error is being
	// replayed without any new resolution attempt.
	OutcomeUnavailable
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeFailure:
		return "failure"
	case OutcomeTimeout:
		return "timeout"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeUnavailable:
		return "unavailable"
	}
	return "unknown"
}

// ExecutionOutcome is the typed result of executing the wrapped tool.
// Stdout and stderr are preserved verbatim on every variant that ran a
// process: some tool subcommands emit machine-readable diagnostics on
// stdout before exiting non-zero.
type ExecutionOutcome struct {
	Kind     OutcomeKind
	Stdout   string
	Stderr   string
	ExitCode int
	Elapsed  time.Duration
	Message  string
	Silent   bool
}

// Succeeded builds a Success outcome.
func Succeeded(stdout, stderr string) ExecutionOutcome {
	return ExecutionOutcome{Kind: OutcomeSuccess, Stdout: stdout, Stderr: stderr}
}

// Failed builds a Failure outcome for a non-zero exit.
func Failed(exitCode int, stdout, stderr string) ExecutionOutcome {
	return ExecutionOutcome{Kind: OutcomeFailure, ExitCode: exitCode, Stdout: stdout, Stderr: stderr}
}

// TimedOut builds a Timeout outcome.
func TimedOut(elapsed time.Duration) ExecutionOutcome {
	return ExecutionOutcome{Kind: OutcomeTimeout, Elapsed: elapsed}
}

// NotFoundOutcome builds a NotFound outcome.
func NotFoundOutcome(message string, silent bool) ExecutionOutcome {
	return ExecutionOutcome{Kind: OutcomeNotFound, Message: message, Silent: silent}
}

// UnavailableOutcome builds an Unavailable outcome for a replayed fatal error.
func UnavailableOutcome(message string) ExecutionOutcome {
	return ExecutionOutcome{Kind: OutcomeUnavailable, Message: message, Silent: true}
}
