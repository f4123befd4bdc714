// boxfield is a terminal game: steer a colored box with the arrow keys
// through a field of static obstacles inside a fixed rectangular world.
//
// Usage:
//
//	boxfield play            - Play in the current terminal
//	boxfield scores          - Show past runs
//	boxfield serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for a reproducible obstacle field
//	--db <path>     - Set database path (default: ~/.boxfield/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/dkotenko/boxfield/internal/games/boxfield"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "boxfield",
	Short: "Boxfield - steer a box through an obstacle field in your terminal",
	Long: `Boxfield is a terminal game: a colored box moves in fixed steps
inside a bounded world scattered with static obstacles. Movement is
clamped at the world edges; the session counts the steps you take.

Available commands:
  play     - Play in the current terminal
  scores   - View past runs
  serve    - Start SSH server for remote play

Examples:
  boxfield play
  boxfield play --config ./my-boxfield.yaml
  boxfield scores --tui
  boxfield serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.boxfield/runs.db", "Path to runs database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
