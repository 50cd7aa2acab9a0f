package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the console's configuration.
type Config struct {
	API struct {
		BaseURL        string `yaml:"base_url"`
		TimeoutSeconds int64  `yaml:"timeout_seconds"`
	} `yaml:"api"`
	Credentials struct {
		File string `yaml:"file"`
	} `yaml:"credentials"`
}

// LoadConfig reads configuration from the specified YAML file.
func LoadConfig(configPath string) (*Config, error) {
	config := Default()

	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	// Empty values fall back to the defaults.
	if config.API.BaseURL == "" {
		config.API.BaseURL = Default().API.BaseURL
	}
	if config.API.TimeoutSeconds <= 0 {
		config.API.TimeoutSeconds = Default().API.TimeoutSeconds
	}
	if config.Credentials.File == "" {
		config.Credentials.File = defaultCredentialFile()
	}

	return config, nil
}

// Default returns a configuration usable without a config file.
func Default() *Config {
	config := &Config{}
	config.API.BaseURL = "http://localhost:8000"
	config.API.TimeoutSeconds = 10
	config.Credentials.File = defaultCredentialFile()
	return config
}

func defaultCredentialFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".wastedesk/token"
	}
	return filepath.Join(home, ".wastedesk", "token")
}
