package clitool_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/minc-org/minc-desktop/pkg/runner"
	"github.com/minc-org/minc-desktop/pkg/svc/clitool"
)

func TestGetMincBinaryInfoParsesVersionLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		stdout string
		want   string
	}{
		{"plain version line", "version: 0.0.3\n", "0.0.3"},
		{"version line among other output", "minc - MicroShift in container\nversion: 0.0.3\n", "0.0.3"},
		{"surrounding whitespace", "  version:   1.2.3  \n", "1.2.3"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			run := runner.NewMockRunner()
			run.On("Exec", mock.Anything, "/usr/local/bin/minc", []string{"version"}, mock.Anything).
				Return(runner.Result{Stdout: tc.stdout}, nil)

			info, err := clitool.GetMincBinaryInfo(context.Background(), run, "/usr/local/bin/minc")
			require.NoError(t, err)

			assert.Equal(t, tc.want, info.Version)
			assert.Equal(t, "/usr/local/bin/minc", info.Path)
		})
	}
}

func TestGetMincBinaryInfoRejectsMalformedOutput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		stdout string
	}{
		{"empty output", ""},
		{"no version line", "minc - MicroShift in container\n"},
		{"empty version value", "version: \n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			run := runner.NewMockRunner()
			run.On("Exec", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
				Return(runner.Result{Stdout: tc.stdout}, nil)

			_, err := clitool.GetMincBinaryInfo(context.Background(), run, "/usr/local/bin/minc")
			require.ErrorIs(t, err, clitool.ErrVersionOutput)
		})
	}
}

func TestGetMincBinaryInfoPropagatesExecFailure(t *testing.T) {
	t.Parallel()

	execErr := errors.New("executable file not found")

	run := runner.NewMockRunner()
	run.On("Exec", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(runner.Result{}, execErr)

	_, err := clitool.GetMincBinaryInfo(context.Background(), run, "/nope/minc")
	require.ErrorIs(t, err, execErr)
}
