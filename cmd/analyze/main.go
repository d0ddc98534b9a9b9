// Command analyze prints quick, human-readable facts about the board presets
// in the project's configs directory. It summarizes dimensions, how many moves
// each player gets, and the four-in-a-row windows that fit in each direction.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/Chakipaki/connect-four-oo/game/engine"
)

// directions is the print order for window counts.
var directions = []string{"horizontal", "vertical", "diagonal_down_right", "diagonal_down_left"}

// Analysis holds the derived facts for one preset.
type Analysis struct {
	Name          string
	Width, Height int
	Cells         int
	Player1Moves  int
	Player2Moves  int
	Windows       map[string]int
	TotalWindows  int
	// MinMovesToWin is the fewest total drops before a win, or 0 if no line fits.
	MinMovesToWin int
}

func main() {
	dir := "configs"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding config files: %v\n", err)
		os.Exit(1)
	}
	sort.Strings(files)

	for _, configFile := range files {
		fmt.Printf("\n=== Analyzing %s ===\n", filepath.Base(configFile))
		analyzeConfig(os.Stdout, configFile)
	}
}

func analyzeConfig(w io.Writer, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(w, "Error reading file: %v\n", err)
		return
	}

	var config engine.GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		fmt.Fprintf(w, "Error parsing JSON: %v\n", err)
		return
	}
	if err := engine.ValidateGameConfig(&config); err != nil {
		fmt.Fprintf(w, "Invalid preset: %v\n", err)
		return
	}

	printAnalysis(w, analyze(&config))
}

func analyze(config *engine.GameConfig) Analysis {
	a := Analysis{
		Name:    config.Name,
		Width:   config.Width,
		Height:  config.Height,
		Cells:   config.Width * config.Height,
		Windows: engine.CountWindows(config.Width, config.Height),
	}
	a.Player1Moves = (a.Cells + 1) / 2
	a.Player2Moves = a.Cells / 2
	for _, n := range a.Windows {
		a.TotalWindows += n
	}
	if a.TotalWindows > 0 {
		// Player1 places its fourth piece on the seventh drop.
		a.MinMovesToWin = 2*engine.ToWin - 1
	}
	return a
}

func printAnalysis(w io.Writer, a Analysis) {
	fmt.Fprintf(w, "Name: %s\n", a.Name)
	fmt.Fprintf(w, "Board: %d columns x %d rows (%d cells)\n", a.Width, a.Height, a.Cells)
	fmt.Fprintf(w, "Moves: Player 1 up to %d, Player 2 up to %d\n", a.Player1Moves, a.Player2Moves)

	for _, d := range directions {
		fmt.Fprintf(w, "  %-20s %d\n", d+":", a.Windows[d])
	}

	if a.TotalWindows == 0 {
		fmt.Fprintf(w, "⚠️  WARNING: no four-in-a-row fits, every game ends in a tie\n")
		return
	}
	fmt.Fprintf(w, "✅ %d winning lines, earliest win on drop %d\n", a.TotalWindows, a.MinMovesToWin)
	if a.Windows["vertical"] == 0 {
		fmt.Fprintf(w, "   No vertical wins: the board is only %d rows tall\n", a.Height)
	}
	if a.Windows["horizontal"] == 0 {
		fmt.Fprintf(w, "   No horizontal wins: the board is only %d columns wide\n", a.Width)
	}
}
