package runner_test

import (
	"bytes"
	"context"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minc-org/minc-desktop/pkg/runner"
)

func TestExecCapturesStdout(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("test shells out through sh")
	}

	run := runner.NewCommandRunner()

	result, err := run.Exec(context.Background(), "sh",
		[]string{"-c", "printf 'version: 0.0.3'"}, runner.Options{})
	require.NoError(t, err)

	assert.Equal(t, "version: 0.0.3", result.Stdout)
}

func TestExecMirrorsOutputToLogger(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("test shells out through sh")
	}

	var logged bytes.Buffer

	run := runner.NewCommandRunner()

	result, err := run.Exec(context.Background(), "sh",
		[]string{"-c", "printf hello"}, runner.Options{Logger: &logged})
	require.NoError(t, err)

	assert.Equal(t, "hello", result.Stdout)
	assert.Equal(t, "hello", logged.String())
}

func TestExecReportsExitCodeAndStderr(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("test shells out through sh")
	}

	run := runner.NewCommandRunner()

	_, err := run.Exec(context.Background(), "sh",
		[]string{"-c", "echo boom >&2; exit 3"}, runner.Options{})
	require.Error(t, err)

	var execErr *runner.ExecError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, 3, execErr.ExitCode)
	assert.Contains(t, execErr.Stderr, "boom")
}

func TestExecReportsMissingBinary(t *testing.T) {
	t.Parallel()

	run := runner.NewCommandRunner()

	_, err := run.Exec(context.Background(), "definitely-not-a-binary-on-path",
		[]string{"version"}, runner.Options{})
	require.Error(t, err)

	var execErr *runner.ExecError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, -1, execErr.ExitCode)
}

func TestExecDetachedStartsWithoutWaiting(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("test shells out through sh")
	}

	run := runner.NewCommandRunner()

	result, err := run.Exec(context.Background(), "sh",
		[]string{"-c", "sleep 0.1"}, runner.Options{Detached: true})
	require.NoError(t, err)

	assert.Empty(t, result.Stdout)
}

func TestExecAppliesEnvironment(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("test shells out through sh")
	}

	run := runner.NewCommandRunner()

	result, err := run.Exec(context.Background(), "sh",
		[]string{"-c", "printf \"$MINC_TEST_VALUE\""},
		runner.Options{Env: []string{"MINC_TEST_VALUE=forty-two"}})
	require.NoError(t, err)

	assert.Equal(t, "forty-two", result.Stdout)
}
