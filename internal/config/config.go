package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// ConfigFile is the project configuration read from the working directory.
	ConfigFile = "davdeploy.yml"

	// DefaultContentRoot is the remote root every deployment folder lives under.
	DefaultContentRoot = "/content/checkout"
)

// BuildConfig describes the external build command and where its output lands.
type BuildConfig struct {
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`
	Output  string   `yaml:"output"`
	Static  string   `yaml:"static"`
}

// RemoteConfig describes the WebDAV side of a deployment.
type RemoteConfig struct {
	ContentRoot string `yaml:"contentRoot"`
	EntryScript string `yaml:"entryScript"`
}

// Config is the project-level configuration for davdeploy.
type Config struct {
	Build        BuildConfig  `yaml:"build"`
	Remote       RemoteConfig `yaml:"remote"`
	Environments []string     `yaml:"environments"`
}

// Default returns the configuration used when no davdeploy.yml is present.
func Default() *Config {
	return &Config{
		Build: BuildConfig{
			Command: "npm",
			Args:    []string{"run", "build"},
			Output:  "dist",
			Static:  "static",
		},
		Remote: RemoteConfig{
			ContentRoot: DefaultContentRoot,
			EntryScript: "checkout.js",
		},
		Environments: []string{"sandbox", "production"},
	}
}

// Load reads davdeploy.yml from path, falling back to defaults when the file
// does not exist. A present but malformed file is an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid config format in %s: %w", path, err)
	}
	return cfg, nil
}

// KnowsEnvironment reports whether env is one of the configured environments.
func (c *Config) KnowsEnvironment(env string) bool {
	for _, e := range c.Environments {
		if e == env {
			return true
		}
	}
	return false
}
