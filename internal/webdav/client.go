package webdav

import (
	"fmt"
	"os"

	"github.com/studio-b12/gowebdav"

	"davdeploy/internal/config"
)

// Remote is the slice of WebDAV used by the deployment pipeline: creating
// directories and writing files. Everything else stays with the client
// library.
type Remote interface {
	Mkdir(path string) error
	Write(path string, data []byte) error
}

// Client wraps a gowebdav connection to the content host.
type Client struct {
	dav *gowebdav.Client
}

var _ Remote = (*Client)(nil)

// Dial builds a WebDAV client for the content host named in creds. The
// endpoint is always HTTPS; authentication (digest on our hosts) is
// negotiated from the server challenge.
func Dial(creds *config.Credentials) (*Client, error) {
	endpoint := fmt.Sprintf("https://%s", creds.Host)
	dav := gowebdav.NewClient(endpoint, creds.Username, creds.Password)
	if err := dav.Connect(); err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", endpoint, err)
	}
	return &Client{dav: dav}, nil
}

// Mkdir creates a single remote directory.
func (c *Client) Mkdir(path string) error {
	return c.dav.Mkdir(path, os.FileMode(0o755))
}

// Write stores data as a remote file, overwriting any existing content.
func (c *Client) Write(path string, data []byte) error {
	return c.dav.Write(path, data, os.FileMode(0o644))
}
