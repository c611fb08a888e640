//go:build !tinygo

package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load parses a JSON configuration. Missing fields keep their defaults.
func Load(data []byte) (Config, error) {
	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return c.WithDefaults(), nil
}

// LoadFile reads and parses a configuration file
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Load(data)
}
