package config

import (
	"os"
	"strconv"

	"healthcharts/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Paths  PathConfig
	Charts ChartConfig
	Render RenderConfig
}

// PathConfig holds file system paths for the pipeline
type PathConfig struct {
	InputFile   string // Source dataset (CSV or XLSX)
	ScatterFile string // Destination for the scatter chart document
	BubbleFile  string // Destination for the bubble chart document
}

// ChartConfig holds chart construction settings
type ChartConfig struct {
	LoessBandwidth float64 // Smoothing bandwidth for the trend curve (0,1]
}

// RenderConfig holds renderer settings
type RenderConfig struct {
	MaxRows int // Row limit enforced before writing; 0 disables the limit
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Paths: PathConfig{
			InputFile:   getEnvOrDefault("HEALTH_DATA_FILE", "../data/Global Health.csv"),
			ScatterFile: getEnvOrDefault("SCATTER_CHART_FILE", "../charts/fruit_vegetable_life_expectancy.html"),
			BubbleFile:  getEnvOrDefault("BUBBLE_CHART_FILE", "../charts/gdp_life_expectancy_bubble_chart.html"),
		},
		Charts: ChartConfig{
			LoessBandwidth: getEnvFloatOrDefault("LOESS_BANDWIDTH", 0.3),
		},
		Render: RenderConfig{
			MaxRows: getEnvIntOrDefault("RENDER_MAX_ROWS", 0),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Paths.InputFile == "" {
		return errors.ConfigInvalid("input data file path is required")
	}
	if config.Paths.ScatterFile == "" || config.Paths.BubbleFile == "" {
		return errors.ConfigInvalid("chart output paths are required")
	}
	if config.Charts.LoessBandwidth <= 0 || config.Charts.LoessBandwidth > 1 {
		return errors.ConfigInvalid("LOESS_BANDWIDTH must be in (0, 1]")
	}
	if config.Render.MaxRows < 0 {
		return errors.ConfigInvalid("RENDER_MAX_ROWS must not be negative")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
