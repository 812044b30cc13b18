package build

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"

	"davdeploy/internal/config"
)

// Run executes the configured build command and waits for it to finish.
// Command output is streamed to out and kept so a failing build surfaces the
// tool's own message. A non-zero exit is fatal to the caller; there is no
// retry.
func Run(ctx context.Context, cfg config.BuildConfig, out io.Writer) error {
	if cfg.Command == "" {
		return fmt.Errorf("no build command configured")
	}

	var captured bytes.Buffer
	cmd := exec.CommandContext(ctx, cfg.Command, cfg.Args...)
	cmd.Stdout = io.MultiWriter(out, &captured)
	cmd.Stderr = io.MultiWriter(out, &captured)

	if err := cmd.Run(); err != nil {
		msg := bytes.TrimSpace(captured.Bytes())
		if len(msg) > 0 {
			return fmt.Errorf("build command failed: %s: %w", msg, err)
		}
		return fmt.Errorf("build command failed: %w", err)
	}
	return nil
}
