package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/engine"
	"github.com/vovakirdan/tui-flappy/internal/render"
)

// Model is the Bubble Tea model hosting one flappy session.
type Model struct {
	session    *engine.Session
	screen     *core.Screen
	palette    Palette
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	config     core.RuntimeConfig
	maxDelta   float64
	inputFrame core.InputFrame
	lastTick   time.Time
	shotDir    string
	quitting   bool
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithModelLogger sets the logger shared by the model and its session.
func WithModelLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithPalette overrides the color palette.
func WithPalette(p Palette) ModelOption {
	return func(m *Model) {
		m.palette = p
	}
}

// WithScreenshotDir sets where ctrl+s writes screen dumps.
func WithScreenshotDir(dir string) ModelOption {
	return func(m *Model) {
		m.shotDir = dir
	}
}

// NewModel creates a model with a fresh session for the given config.
func NewModel(cfg config.Config, rt core.RuntimeConfig, opts ...ModelOption) (Model, error) {
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TickRate <= 0 {
		rt.TickRate = 60
	}

	m := Model{
		keys:       DefaultKeyMap(),
		help:       help.New(),
		logger:     log.New(io.Discard),
		config:     rt,
		maxDelta:   cfg.Simulation.MaxFrameDelta,
		inputFrame: core.NewInputFrame(),
		shotDir:    defaultScreenshotDir(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.palette == nil {
		m.palette = NewPalette(nil)
	}

	session, err := engine.NewSession(cfg, engine.WithSeed(rt.Seed), engine.WithLogger(m.logger))
	if err != nil {
		return Model{}, err
	}
	m.session = session
	m.screen = core.NewScreen(rt.ScreenW, playRows(rt.ScreenH))
	m.help.Width = rt.ScreenW
	return m, nil
}

// playRows reserves the bottom line for the help footer.
func playRows(h int) int {
	return core.Max(1, h-1)
}

// Init starts the frame pump.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.inputFrame.Set(MouseEvent(msg, m.session.Phase()))
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey queues events for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	m.inputFrame.Set(m.keys.Event(msg, m.session.Phase()))
	return m, nil
}

// handleResize adapts the screen buffer. The world keeps its own
// coordinates, so the session is not touched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playRows(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the session by the wall-clock time since the last frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now, m.config.TickRate, m.maxDelta)
	m.lastTick = now

	result := m.session.Tick(dt, m.inputFrame)
	m.inputFrame.Clear()

	if result.Quit {
		m.logger.Debug("quit requested", "score", result.Snapshot.Score, "phase", result.Snapshot.Phase)
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// Session exposes the hosted session.
func (m Model) Session() *engine.Session {
	return m.session
}

// saveScreenshot writes the current frame as plain text.
func (m Model) saveScreenshot() (string, error) {
	render.Draw(m.screen, m.session.Snapshot())

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102_150405.000")
	path := filepath.Join(m.shotDir, fmt.Sprintf("flappy_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", err
	}
	return path, nil
}

func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "screenshots"
	}
	return filepath.Join(home, ".flappy", "screenshots")
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	render.Draw(m.screen, m.session.Snapshot())
	return RenderScreen(m.screen, m.palette) + "\n" + m.help.View(m.keys)
}

// Run starts a local Bubble Tea program.
func Run(cfg config.Config, rt core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(cfg, rt, WithModelLogger(logger))
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks flap like the space bar
	)

	_, err = p.Run()
	return err
}
