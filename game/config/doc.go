// Package config provides board preset management for Connect Four.
//
// The config package handles:
//   - Loading board presets from JSON files
//   - Preset validation
//   - Default preset selection
//   - Preset discovery and listing
//
// Preset Format:
//
// Presets are stored as JSON files in the configs directory, one board per
// file. The file name without extension is the preset ID:
//
//	{
//	  "name": "classic",
//	  "description": "Classic 7x6 Connect Four",
//	  "width": 7,
//	  "height": 6
//	}
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	gameConfig, err := manager.LoadConfig("large")
//	defaultConfig := manager.GetDefault()
//	presets, err := manager.ListConfigs()
//
// When classic.json is missing the first preset on disk becomes the default,
// and an empty directory falls back to the built-in 7x6 board.
package config
