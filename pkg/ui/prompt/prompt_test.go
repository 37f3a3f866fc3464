package prompt_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/minc-org/minc-desktop/pkg/host"
	"github.com/minc-org/minc-desktop/pkg/ui/prompt"
)

func TestSelectReleaseWithoutChoicesReturnsNoSelection(t *testing.T) {
	t.Parallel()

	terminalPrompt := prompt.New()

	_, err := terminalPrompt.SelectRelease(context.Background(), "Select a version", nil)
	require.ErrorIs(t, err, host.ErrNoSelection)
}
