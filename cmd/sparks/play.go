package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ilyakh/tui-sparks/internal/core"
	"github.com/ilyakh/tui-sparks/internal/platform/tui"
	"github.com/ilyakh/tui-sparks/internal/scene"
	"github.com/ilyakh/tui-sparks/internal/scenes/fireworks"
	"github.com/ilyakh/tui-sparks/internal/scenes/fountain"
	"github.com/ilyakh/tui-sparks/internal/scenes/orbit"
	"github.com/ilyakh/tui-sparks/internal/scenes/smoke"
	"github.com/ilyakh/tui-sparks/internal/storage"
)

var (
	flagConfig    string
	flagIntensity string
)

var playCmd = &cobra.Command{
	Use:   "play <scene>",
	Short: "Run a scene",
	Long: `Start the specified scene.

Controls:
  Arrows/WASD - Move the emitter
  Space       - Start/stop emission
  Enter       - Trigger a burst (where the scene supports it)
  P           - Pause
  R           - Restart
  Q/Ctrl+C    - Quit

Intensity options (fountain and fireworks):
  calm   - Start at lowest intensity, ramps up over time
  normal - Start at 30% intensity, ramps up over time
  wild   - Start at 70% intensity, ramps up over time
  fixed  - No ramp, stays at the config's initial level

Examples:
  sparks play fountain
  sparks play fireworks --intensity wild
  sparks play smoke --config ./my-smoke.yaml
  sparks play orbit --seed 42`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom scene config YAML")
	playCmd.Flags().StringVar(&flagIntensity, "intensity", "", "Intensity preset: calm, normal, wild, fixed")
}

// applySceneFlags pushes the --config and --intensity flags into the
// matching scene package before the scene is created. Smoke and orbit
// carry no intensity ramp, so only the config path applies there.
func applySceneFlags(sceneID string) {
	switch sceneID {
	case "fountain":
		fountain.SetConfigPath(flagConfig)
		fountain.SetIntensityPreset(flagIntensity)
	case "fireworks":
		fireworks.SetConfigPath(flagConfig)
		fireworks.SetIntensityPreset(flagIntensity)
	case "smoke":
		smoke.SetConfigPath(flagConfig)
	case "orbit":
		orbit.SetConfigPath(flagConfig)
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	sceneID := args[0]

	// Check if scene exists
	if !scene.Exists(sceneID) {
		fmt.Fprintf(os.Stderr, "Error: unknown scene %q\n", sceneID)
		fmt.Fprintln(os.Stderr, "Run 'sparks list' to see available scenes.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path and intensity before creation
	applySceneFlags(sceneID)

	// Create scene instance
	sc, err := scene.Create(sceneID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating scene: %v\n", err)
		os.Exit(1)
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - the scene still works
		store = nil
	}

	// Run the scene
	runErr := tui.Run(sc, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running scene: %v\n", runErr)
		os.Exit(1)
	}
}
