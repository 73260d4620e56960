package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Advisor  AdvisorConfig
	UI       UIConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// AdvisorConfig holds redemption-advice provider settings.
type AdvisorConfig struct {
	Provider  string
	APIKeyEnv string
	APIKey    string
	Model     string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	HomeAirport    string
	CurrencySymbol string
	DateFormat     string
}

// Load reads configuration from file and env. Env var overrides use prefix
// FLYWITHPOINTS_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "flywithpoints", "flywithpoints.db"))
	v.SetDefault("advisor.provider", "gemini")
	v.SetDefault("advisor.api_key_env", "GEMINI_API_KEY")
	v.SetDefault("advisor.api_key", "")
	v.SetDefault("advisor.model", "gemini-3-flash-preview")
	v.SetDefault("ui.home_airport", "")
	v.SetDefault("ui.currency_symbol", "$")
	v.SetDefault("ui.date_format", "02 Jan")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("FLYWITHPOINTS_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "flywithpoints"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("FLYWITHPOINTS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.UI.HomeAirport = strings.ToUpper(strings.TrimSpace(c.UI.HomeAirport))
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if
// needed. Used by the TUI settings view for non-sensitive preferences. The
// API key belongs in env vars or the secrets store, not here.
func Save(cfg Config) error {
	path := os.Getenv("FLYWITHPOINTS_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "flywithpoints", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("advisor.provider", cfg.Advisor.Provider)
	v.Set("advisor.api_key_env", cfg.Advisor.APIKeyEnv)
	v.Set("advisor.model", cfg.Advisor.Model)
	v.Set("ui.home_airport", cfg.UI.HomeAirport)
	v.Set("ui.currency_symbol", cfg.UI.CurrencySymbol)
	v.Set("ui.date_format", cfg.UI.DateFormat)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
