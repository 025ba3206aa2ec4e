package server

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/Jason-Joannou/Property24-to-Obsidan/internal/config"
	"github.com/Jason-Joannou/Property24-to-Obsidan/pkg/affordability"
	"github.com/Jason-Joannou/Property24-to-Obsidan/pkg/constants"
)

// Config defines runtime parameters for the HTTP server.
type Config struct {
	Address      string               `yaml:"address"`
	MaxBodySize  string               `yaml:"maxBodySize"`
	Finance      config.FinanceConfig `yaml:"finance"`
	Logging      config.LoggingConfig `yaml:"logging"`
	maxBodyBytes int64
}

// LoadConfig loads the server configuration from YAML. If the file does not exist,
// defaults are returned without error.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Address:      constants.DefaultServerAddress,
		MaxBodySize:  fmt.Sprintf("%d", constants.DefaultMaxBodyBytes),
		Logging:      config.LoggingConfig{},
		maxBodyBytes: constants.DefaultMaxBodyBytes,
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read server config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse server config: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MaxBodyBytes returns the configured request body limit in bytes.
func (c *Config) MaxBodyBytes() int64 {
	return c.maxBodyBytes
}

// EngineConfig resolves the finance section into a complete engine configuration.
func (c *Config) EngineConfig() affordability.Config {
	conf := config.Configuration{Finance: c.Finance}
	return conf.EngineConfig()
}

func (c *Config) normalize() error {
	if strings.TrimSpace(c.Address) == "" {
		c.Address = constants.DefaultServerAddress
	}

	size, err := parseByteSize(c.MaxBodySize)
	if err != nil {
		return err
	}
	c.maxBodyBytes = size
	return nil
}

// parseByteSize parses a size like "65536", "64KB", or "1MB".
func parseByteSize(s string) (int64, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return constants.DefaultMaxBodyBytes, nil
	}

	split := len(trimmed)
	for i, r := range trimmed {
		if !unicode.IsDigit(r) {
			split = i
			break
		}
	}

	digits := trimmed[:split]
	unit := strings.ToUpper(strings.TrimSpace(trimmed[split:]))
	if digits == "" {
		return 0, fmt.Errorf("invalid body size %q", s)
	}

	value, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid body size %q: %w", s, err)
	}

	switch unit {
	case "", "B":
		return value, nil
	case "KB":
		return value * 1024, nil
	case "MB":
		return value * 1024 * 1024, nil
	default:
		return 0, fmt.Errorf("unsupported body size unit %q", unit)
	}
}
