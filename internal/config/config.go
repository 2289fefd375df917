package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/nithya6875/gitbuddy-sub000/internal/health"
	"github.com/nithya6875/gitbuddy-sub000/internal/logger"
)

// Config holds all configuration options for gitbuddy.
type Config struct {
	Pet    PetConfig    `koanf:"pet"`
	Scan   ScanConfig   `koanf:"scan"`
	Output OutputConfig `koanf:"output"`
}

// PetConfig covers the companion itself.
type PetConfig struct {
	// Name is the default name for a freshly hatched companion. A name
	// chosen in the TUI (stored in the state file) wins over this.
	Name string `koanf:"name"`
}

// ScanConfig controls the health scanner.
type ScanConfig struct {
	// TimeoutSeconds overrides the per-probe timeout budget. 0 keeps the
	// per-query defaults (3-10s).
	TimeoutSeconds int `koanf:"timeout_seconds"`
	// Weights are the check weights; they must sum to 100 or the
	// defaults are used.
	Weights health.Weights `koanf:"weights"`
}

// OutputConfig controls CLI output formatting.
type OutputConfig struct {
	Format string `koanf:"format"` // text, json, markdown
	Color  bool   `koanf:"color"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Pet: PetConfig{
			Name: "Bud",
		},
		Scan: ScanConfig{
			Weights: health.DefaultWeights(),
		},
		Output: OutputConfig{
			Format: "text",
			Color:  true,
		},
	}
}

// Load reads configuration from the given file, picking the parser by
// extension.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		parser = toml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		parser = yaml.Parser()
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	cfg.normalize()
	return cfg, nil
}

// LoadOrDefault searches the conventional locations and returns the first
// config that loads, or the defaults. Configuration problems are logged,
// never fatal.
func LoadOrDefault() *Config {
	for _, path := range searchPaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		cfg, err := Load(path)
		if err != nil {
			logger.Warn("failed to load config, using defaults", "path", path, "error", err)
			break
		}
		logger.Debug("loaded config", "path", path)
		return cfg
	}
	return DefaultConfig()
}

func searchPaths() []string {
	names := []string{"gitbuddy.yaml", "gitbuddy.yml", "gitbuddy.toml", "gitbuddy.json"}

	paths := make([]string, 0, len(names)*2)
	paths = append(paths, names...)

	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	for _, name := range []string{"config.yaml", "config.yml", "config.toml", "config.json"} {
		paths = append(paths, filepath.Join(configDir, "gitbuddy", name))
	}
	return paths
}

// normalize replaces invalid values with their defaults.
func (c *Config) normalize() {
	if c.Pet.Name == "" {
		c.Pet.Name = DefaultConfig().Pet.Name
	}
	if !c.Scan.Weights.Valid() {
		logger.Warn("config weights do not sum to 100, using defaults", "sum", c.Scan.Weights.Sum())
		c.Scan.Weights = health.DefaultWeights()
	}
	if c.Scan.TimeoutSeconds < 0 {
		c.Scan.TimeoutSeconds = 0
	}
	switch strings.ToLower(c.Output.Format) {
	case "text", "json", "markdown", "md":
	default:
		c.Output.Format = "text"
	}
}
