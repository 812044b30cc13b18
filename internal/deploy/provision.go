package deploy

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"time"
)

// deploymentIDFormat is an ISO-8601 UTC timestamp with colons and fractional
// seconds stripped, so successive IDs sort lexicographically in deploy order
// and are safe as WebDAV folder names.
const deploymentIDFormat = "2006-01-02T150405Z"

// NewDeploymentID derives the deployment identifier from t.
func NewDeploymentID(t time.Time) string {
	return t.UTC().Format(deploymentIDFormat)
}

// provision derives the remote destination for this deployment, creates the
// destination directory plus its static subdirectory on the content host, and
// enumerates the local build output. Any failure leaves already-created remote
// directories in place; nothing is cleaned up.
func (p *Pipeline) provision(d *Context) error {
	d.ID = NewDeploymentID(p.now())
	d.RemotePath = path.Join(p.cfg.Remote.ContentRoot, d.ID)
	d.RemoteStaticPath = path.Join(d.RemotePath, p.cfg.Build.Static)
	d.OutputDir = p.cfg.Build.Output
	d.StaticDir = filepath.Join(p.cfg.Build.Output, p.cfg.Build.Static)

	if err := p.remote.Mkdir(d.RemotePath); err != nil {
		return fmt.Errorf("creating remote directory %s: %w", d.RemotePath, err)
	}
	if err := p.remote.Mkdir(d.RemoteStaticPath); err != nil {
		return fmt.Errorf("creating remote directory %s: %w", d.RemoteStaticPath, err)
	}

	var err error
	if d.RootFiles, err = listUploadable(d.OutputDir); err != nil {
		return fmt.Errorf("enumerating build output: %w", err)
	}
	if d.StaticFiles, err = listUploadable(d.StaticDir); err != nil {
		return fmt.Errorf("enumerating static output: %w", err)
	}
	return nil
}

// listUploadable returns the names of the files in dir that should be
// uploaded. Directories are skipped, as are names without a file extension --
// the build tool emits extension-less entries only for nested folders, which
// are handled separately.
func listUploadable(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if filepath.Ext(entry.Name()) == "" {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}
