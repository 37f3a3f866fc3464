package runner

import (
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecErrorMessage(t *testing.T) {
	t.Parallel()

	underlying := errors.New("exit status 1")

	execErr := &ExecError{
		Path:     "/usr/local/bin/minc",
		Args:     []string{"create"},
		Stderr:   "cluster already exists\n",
		ExitCode: 1,
		Err:      underlying,
	}

	msg := execErr.Error()
	assert.Contains(t, msg, "/usr/local/bin/minc create")
	assert.Contains(t, msg, "cluster already exists")
	assert.Contains(t, msg, "exit status 1")

	require.ErrorIs(t, execErr, underlying)
}

func TestExecErrorMessageWithoutStderr(t *testing.T) {
	t.Parallel()

	execErr := &ExecError{Path: "minc", Args: []string{"version"}, ExitCode: -1}

	assert.Equal(t, `command "minc version" failed`, execErr.Error())
	assert.NoError(t, execErr.Unwrap())
}

func TestElevateWrapsPlatformMechanism(t *testing.T) {
	t.Parallel()

	name, args := elevate("install", []string{"-m", "0755", "/src", "/dst"})

	switch runtime.GOOS {
	case "windows":
		assert.Equal(t, "powershell", name)
		require.Len(t, args, 2)
		assert.Contains(t, args[1], "Start-Process")
		assert.Contains(t, args[1], "RunAs")
	case "darwin":
		assert.Equal(t, "osascript", name)
		require.Len(t, args, 2)
		assert.Contains(t, args[1], "with administrator privileges")
	default:
		assert.Equal(t, "pkexec", name)
		assert.Equal(t, []string{"install", "-m", "0755", "/src", "/dst"}, args)
	}
}

func TestShellQuoteEscapesSingleQuotes(t *testing.T) {
	t.Parallel()

	quoted := shellQuote("echo", []string{"it's"})

	assert.Equal(t, `'echo' 'it'\''s'`, quoted)
}
