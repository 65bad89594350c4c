package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sshub/ledger-assist/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by the configuration.
const EnvPrefix = "LEDGER"

// Output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatCSV  = "csv"
)

// LogConfig controls the logger.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// OCRConfig controls the image-to-text collaborator.
type OCRConfig struct {
	Enabled            bool    `mapstructure:"enabled" yaml:"enabled"`
	Model              string  `mapstructure:"model" yaml:"model"`
	TimeoutSeconds     int     `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
	FallbackText       string  `mapstructure:"fallback_text" yaml:"fallback_text"`
	FallbackConfidence float64 `mapstructure:"fallback_confidence" yaml:"fallback_confidence"`
	APIKey             string  `mapstructure:"api_key" yaml:"-"` // Never serialize API key
}

// DataConfig controls where scoped data is stored.
type DataConfig struct {
	Directory string `mapstructure:"directory" yaml:"directory"`
}

// OutputConfig controls how results are rendered.
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format"`
}

// Config represents the complete application configuration
type Config struct {
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
	OCR    OCRConfig    `mapstructure:"ocr" yaml:"ocr"`
	Data   DataConfig   `mapstructure:"data" yaml:"data"`
	Output OutputConfig `mapstructure:"output" yaml:"output"`
}

// DefaultFallbackText is returned in place of OCR output when the OCR
// service is unavailable.
const DefaultFallbackText = "Starbucks Coffee\nDate: 12/03/2025\nCafé Latte - 150\nCroissant - 80\nTax - 23\nTotal: 253"

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.ledger-assist")
	v.AddConfigPath(".ledger-assist")
	v.AddConfigPath(".")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	// The API key is shared with other Gemini tooling and is not prefixed.
	if err := v.BindEnv("ocr.api_key", "GEMINI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind GEMINI_API_KEY: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("ocr.enabled", false)
	v.SetDefault("ocr.model", "gemini-2.0-flash")
	v.SetDefault("ocr.timeout_seconds", 30)
	v.SetDefault("ocr.fallback_text", DefaultFallbackText)
	v.SetDefault("ocr.fallback_confidence", 60.0)

	v.SetDefault("data.directory", "")

	v.SetDefault("output.format", FormatJSON)
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.OCR.Enabled {
		if config.OCR.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY required when OCR is enabled")
		}
		if config.OCR.TimeoutSeconds < 1 || config.OCR.TimeoutSeconds > 300 {
			return fmt.Errorf("ocr.timeout_seconds must be between 1 and 300, got: %d", config.OCR.TimeoutSeconds)
		}
	}

	if config.OCR.FallbackConfidence < 0 || config.OCR.FallbackConfidence > 100 {
		return fmt.Errorf("ocr.fallback_confidence must be between 0 and 100, got: %g", config.OCR.FallbackConfidence)
	}

	if err := ValidateFormat(config.Output.Format); err != nil {
		return err
	}

	return nil
}

// ValidateFormat checks an output format name.
func ValidateFormat(format string) error {
	switch format {
	case FormatJSON, FormatYAML, FormatCSV:
		return nil
	}
	return fmt.Errorf("invalid output format: %s (must be 'json', 'yaml' or 'csv')", format)
}

// DataDirectory returns the configured data directory, defaulting to
// $HOME/.ledger-assist/data, or ./data when the home directory is unknown.
func (c *Config) DataDirectory() string {
	if c.Data.Directory != "" {
		return c.Data.Directory
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "data"
	}
	return filepath.Join(home, ".ledger-assist", "data")
}

// ConfigureLoggingFromConfig builds the application logger from the Config
func ConfigureLoggingFromConfig(config *Config) logging.Logger {
	return logging.NewLogrusAdapter(strings.ToLower(config.Log.Level), strings.ToLower(config.Log.Format))
}
