// Package runner abstracts external process execution so that callers can be
// tested without spawning real processes.
package runner

import (
	"context"
	"io"
)

// Options configures a single process invocation.
type Options struct {
	// Env is an optional set of KEY=VALUE pairs appended to the process environment.
	Env []string

	// Logger receives the process's combined output as it is produced.
	// May be nil.
	Logger io.Writer

	// Admin requests elevated privileges for the invocation.
	Admin bool

	// Detached starts the process without waiting for it to finish.
	// The returned Result carries no output for detached invocations.
	Detached bool
}

// Result holds the outcome of a successful invocation.
type Result struct {
	// Stdout is the process's standard output.
	Stdout string
}

// Runner executes external processes.
type Runner interface {
	// Exec runs the named binary with the given arguments. The context is
	// forwarded to the process; cancellation semantics are delegated to the
	// operating system.
	Exec(ctx context.Context, name string, args []string, opts Options) (Result, error)
}
