// Command validate provides a small CLI that validates board preset JSON
// files in the ../configs directory. It checks:
//   - JSON structure and required fields
//   - Board dimensions within the engine limits
//   - Unknown fields that the server would silently ignore
//   - Duplicate display names across presets
//
// It also reports how many four-in-a-row windows fit on each board, warning
// when none do and every game must end in a tie.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Chakipaki/connect-four-oo/game/engine"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Name   string
	Valid  bool
	Errors []string
}

func (r *ValidationResult) fail(format string, args ...any) {
	r.Valid = false
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// validateConfig loads and validates a single preset JSON file.
func validateConfig(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.fail("Failed to read file: %v", err)
		return result
	}

	var config engine.GameConfig
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&config); err != nil {
		result.fail("Invalid JSON: %v", err)
		return result
	}
	result.Name = config.Name

	if config.Name == "" {
		result.fail("name is required")
	}
	if config.Width < 1 || config.Width > engine.MaxBoardLength {
		result.fail("width must be between 1 and %d, got %d", engine.MaxBoardLength, config.Width)
	}
	if config.Height < 1 || config.Height > engine.MaxBoardLength {
		result.fail("height must be between 1 and %d, got %d", engine.MaxBoardLength, config.Height)
	}

	if !result.Valid {
		return result
	}

	windows := engine.CountWindows(config.Width, config.Height)
	total := 0
	for _, n := range windows {
		total += n
	}

	result.Errors = append(result.Errors, fmt.Sprintf("✓ Name: %s", config.Name))
	result.Errors = append(result.Errors, fmt.Sprintf("✓ Board: %d columns x %d rows", config.Width, config.Height))
	result.Errors = append(result.Errors, fmt.Sprintf("✓ Cells: %d", config.Width*config.Height))
	if total == 0 {
		result.Errors = append(result.Errors, "⚠ No four-in-a-row fits, every game ends in a tie")
	} else {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Winning lines: %d", total))
	}

	return result
}

// validateAll validates every preset and flags display names used by more
// than one file.
func validateAll(files []string) []ValidationResult {
	sort.Strings(files)
	results := make([]ValidationResult, 0, len(files))
	seen := make(map[string]string)

	for _, file := range files {
		result := validateConfig(file)
		if result.Valid {
			if other, dup := seen[result.Name]; dup {
				result.fail("Duplicate name %q, already used by %s", result.Name, other)
			} else {
				seen[result.Name] = result.File
			}
		}
		results = append(results, result)
	}
	return results
}

// main scans ../configs for *.json files and validates each one, printing a
// concise report and exiting with non-zero status if any are invalid.
func main() {
	configDir := "../configs"
	if len(os.Args) > 1 {
		configDir = os.Args[1]
	}

	files, err := filepath.Glob(filepath.Join(configDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding config files: %v\n", err)
		os.Exit(1)
	}

	allValid := true
	for _, result := range validateAll(files) {
		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All configurations are valid!")
	} else {
		fmt.Println("❌ Some configurations have errors")
		os.Exit(1)
	}
}
