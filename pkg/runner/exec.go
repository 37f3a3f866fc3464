package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"strings"
)

// ExecError carries the failure details of a process invocation.
type ExecError struct {
	// Path is the binary that was invoked.
	Path string
	// Args are the arguments the binary was invoked with.
	Args []string
	// Stderr is the captured standard error output, if any.
	Stderr string
	// ExitCode is the process exit code, or -1 if the process did not start.
	ExitCode int
	// Err is the underlying error.
	Err error
}

// Error returns a human-readable description of the failure.
func (e *ExecError) Error() string {
	msg := fmt.Sprintf("command %q failed", e.Path+" "+strings.Join(e.Args, " "))
	if e.Stderr != "" {
		msg += ": " + strings.TrimSpace(e.Stderr)
	}

	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Unwrap returns the underlying error.
func (e *ExecError) Unwrap() error {
	return e.Err
}

// CommandRunner is the default Runner backed by os/exec.
type CommandRunner struct{}

// NewCommandRunner creates a CommandRunner.
func NewCommandRunner() *CommandRunner {
	return &CommandRunner{}
}

// Exec runs the named binary, optionally elevated or detached.
func (r *CommandRunner) Exec(
	ctx context.Context,
	name string,
	args []string,
	opts Options,
) (Result, error) {
	execName, execArgs := name, args
	if opts.Admin {
		execName, execArgs = elevate(name, args)
	}

	cmd := exec.CommandContext(ctx, execName, execArgs...)
	if len(opts.Env) > 0 {
		cmd.Env = append(cmd.Environ(), opts.Env...)
	}

	if opts.Detached {
		if opts.Logger != nil {
			cmd.Stdout = opts.Logger
			cmd.Stderr = opts.Logger
		}

		err := cmd.Start()
		if err != nil {
			return Result{}, &ExecError{Path: name, Args: args, ExitCode: -1, Err: err}
		}

		return Result{}, nil
	}

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if opts.Logger != nil {
		cmd.Stdout = io.MultiWriter(&stdout, opts.Logger)
		cmd.Stderr = io.MultiWriter(&stderr, opts.Logger)
	}

	err := cmd.Run()
	if err != nil {
		exitCode := -1

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}

		return Result{}, &ExecError{
			Path:     name,
			Args:     args,
			Stderr:   stderr.String(),
			ExitCode: exitCode,
			Err:      err,
		}
	}

	return Result{Stdout: stdout.String()}, nil
}

// elevate wraps a command line with the platform's privilege escalation mechanism.
func elevate(name string, args []string) (string, []string) {
	switch runtime.GOOS {
	case "windows":
		joined := strings.Join(append([]string{name}, args...), " ")

		return "powershell", []string{
			"-Command",
			fmt.Sprintf("Start-Process -Wait -Verb RunAs -FilePath %q -ArgumentList %q",
				name, joined),
		}
	case "darwin":
		script := fmt.Sprintf(
			"do shell script %q with administrator privileges",
			shellQuote(name, args),
		)

		return "osascript", []string{"-e", script}
	default:
		return "pkexec", append([]string{name}, args...)
	}
}

// shellQuote renders a command line with each argument single-quoted.
func shellQuote(name string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	for _, part := range append([]string{name}, args...) {
		parts = append(parts, "'"+strings.ReplaceAll(part, "'", `'\''`)+"'")
	}

	return strings.Join(parts, " ")
}
