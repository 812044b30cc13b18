package build

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"davdeploy/internal/config"
)

func TestRunSuccess(t *testing.T) {
	var out bytes.Buffer
	cfg := config.BuildConfig{Command: "sh", Args: []string{"-c", "echo bundle ready"}}

	err := Run(context.Background(), cfg, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "bundle ready")
}

func TestRunFailureSurfacesToolOutput(t *testing.T) {
	cfg := config.BuildConfig{Command: "sh", Args: []string{"-c", "echo 'module not found' >&2; exit 1"}}

	err := Run(context.Background(), cfg, io.Discard)
	require.Error(t, err)
	assert.ErrorContains(t, err, "module not found")
}

func TestRunNoCommand(t *testing.T) {
	err := Run(context.Background(), config.BuildConfig{}, io.Discard)
	assert.ErrorContains(t, err, "no build command configured")
}
