package deploy

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"davdeploy/internal/config"
	"davdeploy/internal/logger"
)

// slowRemote fails one named write immediately and delays all others, to
// expose any short-circuiting in the batch.
type slowRemote struct {
	failName string
	delay    time.Duration
	writes   atomic.Int32
}

func (s *slowRemote) Mkdir(string) error { return nil }

func (s *slowRemote) Write(path string, _ []byte) error {
	s.writes.Add(1)
	if filepath.Base(path) == s.failName {
		return fmt.Errorf("423 locked")
	}
	time.Sleep(s.delay)
	return nil
}

func TestUploadAllWaitsForEveryUpload(t *testing.T) {
	dir := t.TempDir()
	names := []string{"a.js", "b.js", "c.js", "bad.js", "e.css"}
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0o644))
	}

	remote := &slowRemote{failName: "bad.js", delay: 50 * time.Millisecond}
	p, err := New(config.Default(),
		WithRemote(remote),
		WithOutput(io.Discard),
		WithLogger(logger.New(io.Discard, logger.LevelFatal)))
	require.NoError(t, err)

	start := time.Now()
	uploadErr := p.uploadAll(dir, "/content/checkout/x", names)
	elapsed := time.Since(start)

	require.Error(t, uploadErr)
	assert.ErrorContains(t, uploadErr, "uploading bad.js")
	// Every upload was attempted and the batch waited for the slow ones to
	// finish even though one had already failed.
	assert.Equal(t, int32(len(names)), remote.writes.Load())
	assert.GreaterOrEqual(t, elapsed, remote.delay)
}

func TestUploadAllConcurrent(t *testing.T) {
	dir := t.TempDir()
	var names []string
	for i := 0; i < 8; i++ {
		name := fmt.Sprintf("chunk-%d.js", i)
		names = append(names, name)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0o644))
	}

	remote := &slowRemote{delay: 40 * time.Millisecond}
	p, err := New(config.Default(),
		WithRemote(remote),
		WithOutput(io.Discard),
		WithLogger(logger.New(io.Discard, logger.LevelFatal)))
	require.NoError(t, err)

	start := time.Now()
	require.NoError(t, p.uploadAll(dir, "/content/checkout/x", names))
	elapsed := time.Since(start)

	// Eight sequential uploads would take at least 320ms; concurrent ones
	// should finish well under that.
	assert.Less(t, elapsed, 8*remote.delay)
	assert.Equal(t, int32(len(names)), remote.writes.Load())
}

func TestUploadAllEmptyBatch(t *testing.T) {
	remote := &slowRemote{}
	p, err := New(config.Default(),
		WithRemote(remote),
		WithOutput(io.Discard),
		WithLogger(logger.New(io.Discard, logger.LevelFatal)))
	require.NoError(t, err)

	require.NoError(t, p.uploadAll(t.TempDir(), "/content/checkout/x", nil))
	assert.Zero(t, remote.writes.Load())
}
