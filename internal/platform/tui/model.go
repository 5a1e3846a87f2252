package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ilyakh/tui-sparks/internal/core"
	"github.com/ilyakh/tui-sparks/internal/scene"
	"github.com/ilyakh/tui-sparks/internal/storage"
)

// Model is the Bubble Tea model for running a scene locally.
type Model struct {
	scene      scene.Scene
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	sceneState core.SceneState
	keyMapper  *KeyMapper
	quitting   bool

	// Run accounting for the stats store.
	frames   int
	elapsed  float64
	peak     int
	runSaved bool
}

// NewModel creates a new Bubble Tea model for the given scene.
func NewModel(sc scene.Scene, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		scene:      sc,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the model and starts the scene.
func (m Model) Init() tea.Cmd {
	m.scene.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.saveRun()
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Scenes lay out against screen bounds, so restart on resize.
	m.scene.Reset(m.config)
	m.resetRunStats()

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) {
		m.saveRun()
		// Reset seed so every run plays out differently
		m.config.Seed = time.Now().UnixNano()
		m.scene.Reset(m.config)
		m.sceneState = m.scene.State()
		m.resetRunStats()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	// Advance the simulation by one fixed step
	dt := 1.0 / float64(m.config.TickRate)
	result := m.scene.Step(dt, m.inputFrame)
	m.sceneState = result.State

	if !m.sceneState.Paused {
		m.frames++
		m.elapsed += dt
		if m.sceneState.Particles > m.peak {
			m.peak = m.sceneState.Particles
		}
	}

	// Record the run once when the scene finishes
	if m.sceneState.Finished && !m.runSaved {
		m.saveRun()
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// resetRunStats clears per-run accounting after a restart.
func (m *Model) resetRunStats() {
	m.frames = 0
	m.elapsed = 0
	m.peak = 0
	m.runSaved = false
}

// saveRun records the current run in the stats store. Best-effort:
// the playground keeps working without a database.
func (m *Model) saveRun() {
	if m.runSaved || m.frames == 0 || m.store == nil {
		return
	}
	//nolint:errcheck // Best-effort save, scene continues regardless
	m.store.SaveRun(storage.RunEntry{
		SceneID:       m.scene.ID(),
		Duration:      m.elapsed,
		Frames:        m.frames,
		PeakParticles: m.peak,
		EmittedTotal:  m.sceneState.EmittedTotal,
		Completed:     m.sceneState.Finished,
	})
	m.runSaved = true
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.scene.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".sparks", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.scene.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, scene continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.scene.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(sc scene.Scene, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(sc, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Enable mouse (for future use)
	)

	_, err := p.Run()
	return err
}
