// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/Jason-Joannou/Property24-to-Obsidan/pkg/affordability"
	"github.com/Jason-Joannou/Property24-to-Obsidan/pkg/constants"
)

// Configuration holds all configuration for property24-to-obsidian.
type Configuration struct {
	Vault   VaultConfig   `yaml:"vault,omitempty"`
	Scraper ScraperConfig `yaml:"scraper,omitempty"`
	Finance FinanceConfig `yaml:"finance,omitempty"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
}

// VaultConfig locates the Obsidian vault notes are written into. The
// directory is always an explicit value; it is resolved from the config
// file or the OBSIDIAN_VAULT_DIR environment variable, never from ambient
// process state at write time.
type VaultConfig struct {
	Directory string `yaml:"directory,omitempty"`
	Subfolder string `yaml:"subfolder,omitempty"` // optional folder between the vault root and the location hierarchy
}

// ScraperConfig holds scraping parameters.
type ScraperConfig struct {
	UserAgent      string `yaml:"userAgent,omitempty"`
	TimeoutSeconds int    `yaml:"timeoutSeconds,omitempty"`
}

// FinanceConfig holds the estimation engine overrides. Zero values fall
// back to the engine defaults so a minimal config stays minimal.
type FinanceConfig struct {
	InterestRate     float64                 `yaml:"interestRate,omitempty"`
	TermYears        int                     `yaml:"termYears,omitempty"`
	DepositRate      float64                 `yaml:"depositRate,omitempty"`
	DutyBrackets     []affordability.Bracket `yaml:"dutyBrackets,omitempty"`
	ExcludeUtilities bool                    `yaml:"excludeUtilities,omitempty"`
	ExcludeSecurity  bool                    `yaml:"excludeSecurity,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. A missing file is not an error; defaults apply.
func LoadConfiguration(configPath string) (*Configuration, error) {
	var configuration Configuration

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &configuration, nil
	}

	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// EngineConfig converts the finance section into an engine configuration,
// starting from the defaults and applying any overrides that were set.
func (conf *Configuration) EngineConfig() affordability.Config {
	cfg := affordability.DefaultConfig()

	if conf.Finance.InterestRate > 0 {
		cfg.InterestRate = conf.Finance.InterestRate
	}
	if conf.Finance.TermYears > 0 {
		cfg.TermYears = conf.Finance.TermYears
	}
	if conf.Finance.DepositRate > 0 {
		cfg.DepositRate = conf.Finance.DepositRate
	}
	if len(conf.Finance.DutyBrackets) > 0 {
		cfg.Brackets = affordability.BracketTable(conf.Finance.DutyBrackets)
	}
	cfg.ExcludeUtilities = conf.Finance.ExcludeUtilities
	cfg.ExcludeSecurity = conf.Finance.ExcludeSecurity

	return cfg
}

// VaultDirectory resolves the vault root: an explicit override wins, then
// the config file, then the OBSIDIAN_VAULT_DIR environment variable.
func (conf *Configuration) VaultDirectory(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	if conf.Vault.Directory != "" {
		return conf.Vault.Directory, nil
	}
	if dir := os.Getenv(constants.VaultDirEnvVar); dir != "" {
		return dir, nil
	}
	return "", fmt.Errorf("no vault directory configured; set vault.directory or %s", constants.VaultDirEnvVar)
}

// UserAgent returns the configured scraper user agent or the default.
func (conf *Configuration) UserAgent() string {
	if conf.Scraper.UserAgent != "" {
		return conf.Scraper.UserAgent
	}
	return constants.DefaultUserAgent
}

// ScrapeTimeoutSeconds returns the configured fetch timeout or the default.
func (conf *Configuration) ScrapeTimeoutSeconds() int {
	if conf.Scraper.TimeoutSeconds > 0 {
		return conf.Scraper.TimeoutSeconds
	}
	return constants.DefaultScrapeTimeoutSeconds
}
