package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// CredentialsDir holds one JSON credentials file per environment.
const CredentialsDir = "credentials"

// Credentials are the WebDAV login details for one environment. They are
// loaded once and never mutated afterwards.
type Credentials struct {
	Host     string `json:"host"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// ErrCredentialsCreated signals that no credentials file existed and an empty
// template was written in its place.
type ErrCredentialsCreated struct {
	Path string
}

func (e *ErrCredentialsCreated) Error() string {
	return fmt.Sprintf("no credentials found, wrote template to %s - fill it in and retry", e.Path)
}

// CredentialsPath returns the credentials file location for env.
func CredentialsPath(env string) string {
	return filepath.Join(CredentialsDir, env+".json")
}

// LoadCredentials reads the credentials for env. When the file is missing an
// empty template is generated at the expected path and *ErrCredentialsCreated
// is returned. Values can be overridden through DAVDEPLOY_HOST,
// DAVDEPLOY_USERNAME and DAVDEPLOY_PASSWORD; a .env file is honored if present.
func LoadCredentials(env string) (*Credentials, error) {
	_ = godotenv.Load()

	path := CredentialsPath(env)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if werr := WriteCredentialsTemplate(path); werr != nil {
			return nil, fmt.Errorf("generating credentials template: %w", werr)
		}
		return nil, &ErrCredentialsCreated{Path: path}
	}
	if err != nil {
		return nil, fmt.Errorf("reading credentials %s: %w", path, err)
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("invalid credentials format in %s: %w", path, err)
	}

	if v := os.Getenv("DAVDEPLOY_HOST"); v != "" {
		creds.Host = v
	}
	if v := os.Getenv("DAVDEPLOY_USERNAME"); v != "" {
		creds.Username = v
	}
	if v := os.Getenv("DAVDEPLOY_PASSWORD"); v != "" {
		creds.Password = v
	}

	if err := creds.Validate(); err != nil {
		return nil, fmt.Errorf("credentials %s: %w", path, err)
	}
	return &creds, nil
}

// Validate checks that all three credential fields are filled in.
func (c *Credentials) Validate() error {
	switch {
	case c.Host == "":
		return fmt.Errorf("missing 'host' field")
	case c.Username == "":
		return fmt.Errorf("missing 'username' field")
	case c.Password == "":
		return fmt.Errorf("missing 'password' field")
	}
	return nil
}

// WriteCredentialsTemplate writes an empty credentials file at path, creating
// the parent directory if needed. An existing file is never overwritten.
func WriteCredentialsTemplate(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("credentials file %s already exists", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(&Credentials{}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o600)
}
