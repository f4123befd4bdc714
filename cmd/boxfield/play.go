package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dkotenko/boxfield/internal/config"
	"github.com/dkotenko/boxfield/internal/core"
	"github.com/dkotenko/boxfield/internal/games/boxfield"
	"github.com/dkotenko/boxfield/internal/platform/tui"
	"github.com/dkotenko/boxfield/internal/registry"
	"github.com/dkotenko/boxfield/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play boxfield",
	Long: `Start a session in the current terminal.

Controls:
  Arrows/hjkl/wasd - Move the box
  P/Esc            - Pause
  R                - Restart
  Q/Ctrl+C         - Quit (the run is recorded)

Examples:
  boxfield play
  boxfield play --seed 42
  boxfield play --config ./my-boxfield.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Surface misconfiguration before entering the alternate screen
	if flagFPS <= 0 {
		fmt.Fprintf(os.Stderr, "Error: fps must be positive (got %d)\n", flagFPS)
		os.Exit(1)
	}
	gameCfg, err := config.LoadBoxfield(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := gameCfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	boxfield.SetConfigPath(flagConfig)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create("boxfield")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
