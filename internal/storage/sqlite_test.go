package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func testRun(sceneID string, peak int) RunEntry {
	return RunEntry{
		SceneID:       sceneID,
		Duration:      12.5,
		Frames:        750,
		PeakParticles: peak,
		EmittedTotal:  peak * 3,
		Completed:     true,
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for _, peak := range []int{100, 50, 200} {
		if _, err := store.SaveRun(testRun("fountain", peak)); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	// Different scene
	if _, err := store.SaveRun(testRun("fireworks", 500)); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := store.RecentRuns("fountain", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Errorf("Expected 3 runs, got %d", len(runs))
	}
	// Most recent first
	if runs[0].PeakParticles != 200 {
		t.Errorf("Expected most recent run first (peak 200), got %d", runs[0].PeakParticles)
	}

	fw, err := store.RecentRuns("fireworks", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(fw) != 1 {
		t.Errorf("Expected 1 fireworks run, got %d", len(fw))
	}
}

func TestStoreBusiestRuns(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 5; i++ {
		store.SaveRun(testRun("smoke", (i+1)*100))
	}

	runs, err := store.BusiestRuns("smoke", 3)
	if err != nil {
		t.Fatalf("BusiestRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].PeakParticles != 500 || runs[1].PeakParticles != 400 || runs[2].PeakParticles != 300 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStorePeakParticles(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No runs yet
	peak, err := store.PeakParticles("fountain")
	if err != nil {
		t.Fatalf("PeakParticles() failed: %v", err)
	}
	if peak != 0 {
		t.Errorf("Expected peak of 0 for empty scene, got %d", peak)
	}

	store.SaveRun(testRun("fountain", 100))
	store.SaveRun(testRun("fountain", 300))
	store.SaveRun(testRun("fountain", 200))

	peak, err = store.PeakParticles("fountain")
	if err != nil {
		t.Fatalf("PeakParticles() failed: %v", err)
	}
	if peak != 300 {
		t.Errorf("Expected peak of 300, got %d", peak)
	}
}

func TestStoreClearRuns(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun(testRun("fountain", 100))
	store.SaveRun(testRun("fountain", 200))
	store.SaveRun(testRun("orbit", 300))

	if err := store.ClearRuns("fountain"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	fountainRuns, _ := store.RecentRuns("fountain", 10)
	if len(fountainRuns) != 0 {
		t.Errorf("Expected 0 fountain runs after clear, got %d", len(fountainRuns))
	}

	orbitRuns, _ := store.RecentRuns("orbit", 10)
	if len(orbitRuns) != 1 {
		t.Errorf("Orbit runs should not be affected by clearing fountain")
	}
}

func TestStoreSceneStats(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun(testRun("fireworks", 100))
	store.SaveRun(testRun("fireworks", 400))

	stats, err := store.GetSceneStats("fireworks")
	if err != nil {
		t.Fatalf("GetSceneStats() failed: %v", err)
	}
	if stats.RunsCount != 2 {
		t.Errorf("Expected 2 runs, got %d", stats.RunsCount)
	}
	if stats.PeakParticles != 400 {
		t.Errorf("Expected peak 400, got %d", stats.PeakParticles)
	}
	if stats.TotalEmitted != 1500 {
		t.Errorf("Expected total emitted 1500, got %d", stats.TotalEmitted)
	}

	all, err := store.GetAllSceneStats()
	if err != nil {
		t.Fatalf("GetAllSceneStats() failed: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("Expected stats for 1 scene, got %d", len(all))
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
