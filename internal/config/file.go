package config

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

//go:embed lockforge.example.toml
var exampleConf []byte

// FileConfig represents CLI and TUI preferences loaded from a TOML file.
type FileConfig struct {
	Generator GeneratorConfig `toml:"generator"`
	Export    ExportConfig    `toml:"export"`
	UI        UIConfig        `toml:"ui"`
}

// GeneratorConfig holds the default options applied when flags are not given.
type GeneratorConfig struct {
	Length           int  `toml:"length"`
	Uppercase        bool `toml:"uppercase"`
	Lowercase        bool `toml:"lowercase"`
	Digits           bool `toml:"digits"`
	Symbols          bool `toml:"symbols"`
	ExcludeAmbiguous bool `toml:"exclude_ambiguous"`
}

// ExportConfig holds defaults for writing history files.
type ExportConfig struct {
	Directory string `toml:"directory"`
	Format    string `toml:"format"`
}

// UIConfig holds terminal UI settings.
type UIConfig struct {
	Theme string `toml:"theme"`
}

// LoadFile reads and parses a TOML preferences file from the given path.
func LoadFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config FileConfig
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &config, nil
}

// DefaultFileConfig returns preferences parsed from the embedded example file.
func DefaultFileConfig() *FileConfig {
	var config FileConfig
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateFile writes the embedded example preferences to path. It refuses
// to overwrite an existing file.
func CreateFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
