package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	// Catalog service
	Endpoint      string
	Authorization string

	// Connectivity
	ProbeIntervalSeconds int // Seconds between connectivity probes (default: 15)

	// Server
	ServerPort string

	// Paths
	DatabaseFile string // $CONFIG_DIR/filmotek.db

	// Logging
	LogLevel string
}

// Load loads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Setup viper FIRST to load .env file
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Load .env file if it exists (ignore if not found)
	_ = viper.ReadInConfig()

	// Set defaults
	viper.SetDefault("PROBE_INTERVAL_SECONDS", 15)
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("LOG_LEVEL", "info")

	// NOW read CONFIG_DIR from viper (which has loaded .env file)
	configDir := viper.GetString("CONFIG_DIR")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(homeDir, ".config", "filmotek")
	} else {
		// Convert relative path to absolute path
		absPath, err := filepath.Abs(configDir)
		if err != nil {
			return nil, fmt.Errorf("failed to get absolute path for CONFIG_DIR: %w", err)
		}
		configDir = absPath
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	config := &Config{
		// Catalog service
		Endpoint:      viper.GetString("ENDPOINT"),
		Authorization: viper.GetString("AUTHORIZATION"),

		// Connectivity
		ProbeIntervalSeconds: viper.GetInt("PROBE_INTERVAL_SECONDS"),

		// Server
		ServerPort: viper.GetString("SERVER_PORT"),

		// Paths
		DatabaseFile: filepath.Join(configDir, "filmotek.db"),

		// Logging
		LogLevel: viper.GetString("LOG_LEVEL"),
	}

	// Validate required fields
	if config.Endpoint == "" {
		return nil, fmt.Errorf("ENDPOINT is required")
	}
	if config.Authorization == "" {
		return nil, fmt.Errorf("AUTHORIZATION is required")
	}

	return config, nil
}
