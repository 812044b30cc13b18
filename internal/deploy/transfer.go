package deploy

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// uploadAll pushes every named file from srcDir to destPath under the same
// name. Uploads run concurrently with no ordering guarantee; the call returns
// only after every upload has settled and then reports the first failure.
// In-flight uploads are never cancelled.
func (p *Pipeline) uploadAll(srcDir, destPath string, names []string) error {
	var g errgroup.Group
	for _, name := range names {
		name := name
		g.Go(func() error {
			data, err := os.ReadFile(filepath.Join(srcDir, name))
			if err != nil {
				return fmt.Errorf("reading %s: %w", name, err)
			}
			if err := p.remote.Write(path.Join(destPath, name), data); err != nil {
				return fmt.Errorf("uploading %s: %w", name, err)
			}
			p.log.Debug("uploaded %s", name)
			return nil
		})
	}
	return g.Wait()
}
