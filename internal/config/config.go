// Package config loads optional project defaults from routegen.yaml.
// Explicit command-line arguments always win over file values.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file looked up in the working directory when no
// --config flag is given.
const DefaultFile = "routegen.yaml"

// Config holds the generator defaults a project can pin in routegen.yaml.
type Config struct {
	Routes string `yaml:"routes"`
	Output string `yaml:"output"`
	Watch  bool   `yaml:"watch"`
	Deno   bool   `yaml:"deno"`
}

// Load reads and decodes a config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault loads DefaultFile if it exists. A missing file is not an
// error; it just yields the zero Config.
func LoadDefault() (Config, error) {
	if _, err := os.Stat(DefaultFile); os.IsNotExist(err) {
		return Config{}, nil
	}
	return Load(DefaultFile)
}
