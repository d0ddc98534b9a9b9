// Command connect4 plays Connect Four in the terminal without a server.
//
//	connect4 play              # full-screen board, two players share the keyboard
//	connect4 line --width 5    # read column numbers from stdin, print the board after each
//	connect4 presets           # list the board presets in --dir
//	connect4 theme             # save the theme to the user config directory
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/Chakipaki/connect-four-oo/game/config"
	"github.com/Chakipaki/connect-four-oo/game/engine"
	"github.com/Chakipaki/connect-four-oo/ui"
	"github.com/urfave/cli/v3"
)

func boardFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "width",
			Usage:   "number of columns (overrides the preset)",
			Sources: cli.EnvVars("CONNECT4_WIDTH"),
		},
		&cli.IntFlag{
			Name:    "height",
			Usage:   "number of rows (overrides the preset)",
			Sources: cli.EnvVars("CONNECT4_HEIGHT"),
		},
		&cli.StringFlag{
			Name:    "preset",
			Usage:   "board preset from --dir",
			Sources: cli.EnvVars("CONNECT4_PRESET"),
		},
		dirFlag(),
	}
}

func dirFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "dir",
		Usage:   "directory containing board presets",
		Value:   "configs",
		Sources: cli.EnvVars("CONFIG_DIR"),
	}
}

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "connect4",
		Usage: "play Connect Four in the terminal",
		Commands: []*cli.Command{
			{
				Name:   "play",
				Usage:  "play on a full-screen board",
				Flags:  boardFlags(),
				Action: playAction,
			},
			{
				Name:   "line",
				Usage:  "read columns from stdin and print the board after each drop",
				Flags:  boardFlags(),
				Action: lineAction,
			},
			{
				Name:   "presets",
				Usage:  "list board presets",
				Flags:  []cli.Flag{dirFlag()},
				Action: presetsAction,
			},
			{
				Name:   "theme",
				Usage:  "save the current theme to the user config directory and print its path",
				Action: themeAction,
			},
		},
		DefaultCommand: "play",
	}
}

// resolveBoard picks the preset, then applies explicit width and height.
func resolveBoard(cmd *cli.Command) (*engine.GameConfig, error) {
	board := engine.DefaultConfig()

	if name := cmd.String("preset"); name != "" {
		manager, err := config.NewManager(cmd.String("dir"))
		if err != nil {
			return nil, err
		}
		preset, err := manager.LoadConfig(name)
		if err != nil {
			return nil, fmt.Errorf("preset %s: %w", name, err)
		}
		copied := *preset
		board = &copied
	}

	if cmd.IsSet("width") {
		board.Width = cmd.Int("width")
	}
	if cmd.IsSet("height") {
		board.Height = cmd.Int("height")
	}
	if err := engine.ValidateGameConfig(board); err != nil {
		return nil, err
	}
	return board, nil
}

func playAction(ctx context.Context, cmd *cli.Command) error {
	board, err := resolveBoard(cmd)
	if err != nil {
		return err
	}
	theme, err := ui.LoadTheme()
	if err != nil {
		return err
	}
	eng, err := engine.NewEngineFromConfig(board)
	if err != nil {
		return err
	}
	return ui.Run(eng, theme)
}

func lineAction(ctx context.Context, cmd *cli.Command) error {
	board, err := resolveBoard(cmd)
	if err != nil {
		return err
	}
	eng, err := engine.NewEngineFromConfig(board)
	if err != nil {
		return err
	}
	root := cmd.Root()
	return playLines(eng, root.Reader, root.Writer)
}

// playLines drives eng from r, one command per line: a column number, "r" to
// reset, or "q" to stop. Bad input is reported and play continues.
func playLines(eng *engine.GameEngine, r io.Reader, w io.Writer) error {
	fmt.Fprint(w, engine.FormatBoard(eng.Snapshot()))
	fmt.Fprintln(w, eng.Snapshot().Message)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "q", "quit":
			return nil
		case "r", "reset":
			if err := eng.Reset(eng.Width(), eng.Height()); err != nil {
				return err
			}
		default:
			column, err := strconv.Atoi(line)
			if err != nil {
				fmt.Fprintf(w, "error: %q is not a column\n", line)
				continue
			}
			if _, err := eng.DropPiece(column); err != nil {
				var gameErr engine.Error
				if errors.As(err, &gameErr) {
					fmt.Fprintf(w, "error: %s (%s)\n", gameErr, gameErr.Code())
					continue
				}
				return err
			}
		}

		state := eng.Snapshot()
		fmt.Fprint(w, engine.FormatBoard(state))
		fmt.Fprintln(w, state.Message)
	}
	return scanner.Err()
}

func presetsAction(ctx context.Context, cmd *cli.Command) error {
	manager, err := config.NewManager(cmd.String("dir"))
	if err != nil {
		return err
	}
	presets, err := manager.ListConfigs()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.Root().Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSIZE\tDESCRIPTION")
	for _, p := range presets {
		fmt.Fprintf(tw, "%s\t%dx%d\t%s\n", p.ConfigID, p.Width, p.Height, p.Description)
	}
	return tw.Flush()
}

func themeAction(ctx context.Context, cmd *cli.Command) error {
	theme, err := ui.LoadTheme()
	if err != nil {
		return err
	}
	path, err := ui.SaveTheme(theme)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.Root().Writer, path)
	return nil
}
