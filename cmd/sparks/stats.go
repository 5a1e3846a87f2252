package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/ilyakh/tui-sparks/internal/scene"
	"github.com/ilyakh/tui-sparks/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats [scene]",
	Short: "Show recorded run stats",
	Long: `Display run statistics. With a scene argument, shows the ten most
recent runs for that scene. Without one, shows a per-scene summary.

Examples:
  sparks stats
  sparks stats fireworks`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		printSummary(store)
		return
	}

	sceneID := args[0]

	// Check if scene exists
	if !scene.Exists(sceneID) {
		fmt.Fprintf(os.Stderr, "Error: unknown scene %q\n", sceneID)
		fmt.Fprintln(os.Stderr, "Run 'sparks list' to see available scenes.")
		os.Exit(1)
	}

	// Get recent runs
	runs, err := store.RecentRuns(sceneID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Recent runs - %s\n", sceneID)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'sparks play %s' to record the first one!\n", sceneID)
		return
	}

	// Print header
	fmt.Printf("  %-17s  %-9s  %-7s  %-8s  %s\n", "Date", "Duration", "Peak", "Emitted", "Done")
	fmt.Printf("  %-17s  %-9s  %-7s  %-8s  %s\n", "----", "--------", "----", "-------", "----")

	// Print runs
	for _, r := range runs {
		done := "no"
		if r.Completed {
			done = "yes"
		}
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-17s  %-9s  %-7d  %-8d  %s\n",
			dateStr, fmt.Sprintf("%.1fs", r.Duration), r.PeakParticles, r.EmittedTotal, done)
	}

	// Show the busiest frame ever recorded
	fmt.Println()
	peak, err := store.PeakParticles(sceneID)
	if err == nil {
		fmt.Printf("Best peak: %d particles\n", peak)
	}
}

// printSummary prints aggregated stats for every scene with recorded runs.
func printSummary(store *storage.Store) {
	all, err := store.GetAllSceneStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	if len(all) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'sparks play <scene>' to record one.")
		return
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Println("Run stats by scene:")
	fmt.Println()
	fmt.Printf("  %-12s  %-6s  %-6s  %-9s  %s\n", "Scene", "Runs", "Peak", "Emitted", "Time")
	fmt.Printf("  %-12s  %-6s  %-6s  %-9s  %s\n", "-----", "----", "----", "-------", "----")

	for _, id := range ids {
		s := all[id]
		fmt.Printf("  %-12s  %-6d  %-6d  %-9d  %.0fs\n",
			s.SceneID, s.RunsCount, s.PeakParticles, s.TotalEmitted, s.TotalSeconds)
	}
}
