package engine

import (
	"encoding/json"
	"fmt"
	"os"
)

// ValidateGameConfig validates a board preset
func ValidateGameConfig(config *GameConfig) error {
	if config == nil {
		return fmt.Errorf("config validation: config is required")
	}
	if config.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}

	if config.Width < 1 || config.Width > MaxBoardLength {
		return fmt.Errorf("config validation: width must be between 1 and %d, got %d: %w",
			MaxBoardLength, config.Width, ErrInvalidDimension)
	}
	if config.Height < 1 || config.Height > MaxBoardLength {
		return fmt.Errorf("config validation: height must be between 1 and %d, got %d: %w",
			MaxBoardLength, config.Height, ErrInvalidDimension)
	}

	return nil
}

// LoadGameConfig loads a preset from a JSON file
func LoadGameConfig(filename string) (*GameConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", filename, err)
	}

	var config GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", filename, err)
	}

	if err := ValidateGameConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// DefaultConfig returns the classic 7 columns by 6 rows preset
func DefaultConfig() *GameConfig {
	return &GameConfig{
		Name:        "classic",
		Description: "Classic 7x6 Connect Four",
		Width:       DefaultWidth,
		Height:      DefaultHeight,
	}
}
