package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mgarrido/tui-chase/internal/core"
	"github.com/mgarrido/tui-chase/internal/registry"
	"github.com/mgarrido/tui-chase/internal/storage"
)

// maxTickDelta caps the measured frame interval. A stall (suspend, slow
// terminal) otherwise produces one huge step that teleports everything.
const maxTickDelta = 0.1

// Model is the Bubble Tea model for running a game session.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	difficulty string
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, difficulty string) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		difficulty: difficulty,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input. A quit runs one final step so the
// session reaches its terminal state and the score save fires before the
// program exits.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		result := m.game.Step(m.inputFrame, 0)
		m.gameState = result.State
		m.saveScore()
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. The playfield takes the new
// dimensions, which requires a reset of a running session.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if !m.gameState.GameOver {
		m.game.Reset(m.config)
		m.lastTick = time.Time{}
	}

	return m, nil
}

// handleTick advances the simulation by the real elapsed interval. The
// nominal tick rate only schedules wakeups; the step size is measured, so
// motion stays correct when the terminal can't keep up.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 1.0 / float64(m.config.TickRate)
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
		if dt > maxTickDelta {
			dt = maxTickDelta
		}
		if dt < 0 {
			dt = 0
		}
	}
	m.lastTick = now

	// Restart begins a fresh session with a fresh seed.
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State

	m.saveScore()

	// Clear per-frame events; the pointer position persists.
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScore records the session once it reaches its terminal state. The
// peak is saved rather than the final score: the score-exhaustion ending
// always terminates at zero, which would leave every board empty.
func (m *Model) saveScore() {
	if !m.gameState.GameOver || m.scoreSaved || m.gameState.Peak <= 0 {
		return
	}
	if m.store != nil {
		//nolint:errcheck // Best-effort save, session continues regardless
		m.store.SaveScore(m.game.ID(), m.difficulty, m.gameState.Peak)
	}
	m.scoreSaved = true
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, difficulty string) error {
	model := NewModel(game, store, cfg, difficulty)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Pointer tracking needs motion reports
	)

	_, err := p.Run()
	return err
}
