package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the renderer defaults that can come from a config file.
// Command-line flags override every field.
type Config struct {
	Lang        string `mapstructure:"lang"`
	HolidayFile string `mapstructure:"holiday_file"`
	Encoding    string `mapstructure:"encoding"`
	LogLevel    string `mapstructure:"log_level"`
}

// Load reads the optional config file. With an empty path the usual
// locations are searched ($HOME/.calp, then the working directory); a missing
// file there is not an error and the returned Config carries the defaults.
// An explicitly given path must be readable.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("lang", "ja")
	v.SetDefault("encoding", "sjis")
	v.SetDefault("log_level", "warn")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.calp")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("calp")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Lang {
	case "ja", "en":
	default:
		return fmt.Errorf("lang must be 'ja' or 'en', got '%s'", c.Lang)
	}

	switch c.Encoding {
	case "sjis", "utf8":
	default:
		return fmt.Errorf("encoding must be 'sjis' or 'utf8', got '%s'", c.Encoding)
	}

	return nil
}
