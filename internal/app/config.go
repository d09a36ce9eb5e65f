package app

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"murmur/internal/domain"
	"murmur/internal/store"
)

// Config holds runtime options for building the app.
type Config struct {
	// Cache configures the local event store.
	Cache store.Config `yaml:"cache"`
	// WrapKind is the rumor kind the wrap command uses by default.
	WrapKind uint16 `yaml:"wrap_kind"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Cache:    store.Config{MaxEvents: 4096, Enabled: true},
		WrapKind: domain.KindChat,
	}
}

// Load reads a YAML config file over the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
