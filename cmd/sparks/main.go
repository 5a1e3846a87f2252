// sparks is a TUI particle playground for watching and steering
// particle effects in the terminal.
//
// Usage:
//
//	sparks list              - List available scenes
//	sparks play <scene>      - Run a scene
//	sparks menu              - Start menu to pick scenes interactively
//	sparks serve             - Start SSH server for remote sessions
//	sparks stats [scene]     - Show recorded run stats
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.sparks/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import scenes to register them
	_ "github.com/ilyakh/tui-sparks/internal/scenes/fireworks"
	_ "github.com/ilyakh/tui-sparks/internal/scenes/fountain"
	_ "github.com/ilyakh/tui-sparks/internal/scenes/orbit"
	_ "github.com/ilyakh/tui-sparks/internal/scenes/smoke"
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
	Use:   "sparks",
	Short: "TUI Sparks - Particle effects in your terminal",
	Long: `TUI Sparks is a terminal particle playground. It renders fountains,
fireworks, smoke and other effects as colored glyphs, and lets you steer
the emitters while they run.

Available commands:
  list     - Show all available scenes
  play     - Run a specific scene directly
  menu     - Interactive scene picker menu
  serve    - Start SSH server for remote sessions
  stats    - View recorded run stats

Examples:
  sparks list
  sparks play fountain
  sparks menu
  sparks serve --ssh :2222
  sparks stats fireworks`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.sparks/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
}
