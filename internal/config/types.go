package config

import (
	"os"
	"path/filepath"
	"time"
)

// EnvPrefix prefixes environment variable overrides, e.g. WORLDVIEW_API_URL.
const EnvPrefix = "WORLDVIEW_"

// Config is the worldview configuration document.
type Config struct {
	APIURL          string        `yaml:"api_url" koanf:"api_url" validate:"required,url"`
	Timeout         time.Duration `yaml:"timeout" koanf:"timeout" validate:"min=100ms,max=5m"`
	PreferencesPath string        `yaml:"preferences_path" koanf:"preferences_path" validate:"required"`
	LogLevel        string        `yaml:"log_level" koanf:"log_level" validate:"oneof=trace debug info warn error"`
	LogFile         string        `yaml:"log_file" koanf:"log_file"`
	Server          ServerConfig  `yaml:"server" koanf:"server"`
}

// ServerConfig holds settings for the web shell.
type ServerConfig struct {
	Addr string `yaml:"addr" koanf:"addr" validate:"required,hostname_port"`
}

// DefaultDir returns the directory holding worldview's files.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".worldview"), nil
}

// DefaultPath returns the default configuration file location.
func DefaultPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// DefaultConfig returns the configuration used when nothing overrides it.
func DefaultConfig() *Config {
	dir, err := DefaultDir()
	if err != nil {
		dir = ".worldview"
	}

	return &Config{
		APIURL:          "https://restcountries.com/v3.1",
		Timeout:         15 * time.Second,
		PreferencesPath: filepath.Join(dir, "preferences.yaml"),
		LogLevel:        "info",
		LogFile:         filepath.Join(dir, "worldview.log"),
		Server: ServerConfig{
			Addr: "127.0.0.1:8080",
		},
	}
}
