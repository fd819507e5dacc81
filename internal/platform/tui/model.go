package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

// Settings carries what the platform needs besides the game itself.
type Settings struct {
	Store *storage.Store
	// Player is recorded with saved scores.
	Player string
	// Prepare is applied to every game the platform creates, before
	// Configure and Reset. May be nil.
	Prepare func(registry.Game)
}

// TopRanks is how many places of a score table count as a high score.
const TopRanks = 5

// LocalPlayer returns the name of the user running the process.
func LocalPlayer() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}

// GameModel is the Bubble Tea model for a running game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	settings   Settings
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	quitting   bool
	backToMenu bool
	scoreSaved bool
	rank       int
	saveErr    error
}

// NewGameModel creates a model for a game that has already been configured.
func NewGameModel(game registry.Game, settings Settings, cfg core.RuntimeConfig) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		settings:   settings,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init starts the round and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.notifyResize()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m GameModel) notifyResize() {
	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
		return
	}
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		//nolint:errcheck // Best-effort, the game continues regardless
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.saveScore()
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack && (m.gameState.GameOver || m.gameState.Paused):
		m.saveScore()
		m.backToMenu = true
		return m, nil
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	if m.inputFrame.Has(core.ActionRestart) && (m.gameState.GameOver || m.gameState.Paused) {
		m.saveScore()
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.rank = 0
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver {
		m.saveScore()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveScore stores the round's score once. Rounds that scored nothing are
// not recorded. A score that makes the top of its table is reported to
// games that can show it.
func (m *GameModel) saveScore() {
	if m.scoreSaved || m.gameState.Score <= 0 {
		return
	}
	m.scoreSaved = true
	if m.settings.Store == nil {
		return
	}

	entry := storage.ScoreEntry{
		GameID:  m.game.ID(),
		Variant: registry.ScoreKey(m.game),
		Player:  m.settings.Player,
		Score:   m.gameState.Score,
	}
	rank, err := m.settings.Store.Rank(entry.GameID, entry.Variant, entry.Score)
	if err != nil {
		m.saveErr = err
		return
	}
	if _, m.saveErr = m.settings.Store.SaveEntry(entry); m.saveErr != nil {
		return
	}

	m.rank = rank
	if hs, ok := m.game.(registry.HighScorer); ok && rank <= TopRanks {
		hs.SetHighScore(rank)
	}
}

// saveScreenshot writes the current screen as plain text.
func (m *GameModel) saveScreenshot() error {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	dir := filepath.Join(home, ".match3", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	return os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Rank returns the place the last saved score took in its table, or 0 if
// nothing was saved.
func (m GameModel) Rank() int {
	return m.rank
}

// SaveErr returns the error from the last score save, if any.
func (m GameModel) SaveErr() error {
	return m.saveErr
}

// backOrQuit wraps a GameModel run on its own, where going back to the
// menu ends the program.
type backOrQuit struct {
	GameModel
}

func (m backOrQuit) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.GameModel.Update(msg)
	m.GameModel = next.(GameModel)
	if m.BackToMenu() {
		return m, tea.Quit
	}
	return m, cmd
}

// Run plays a single game until the user quits or backs out.
func Run(game registry.Game, settings Settings, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		backOrQuit{NewGameModel(game, settings, cfg)},
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(backOrQuit); ok && m.SaveErr() != nil {
		return fmt.Errorf("save score: %w", m.SaveErr())
	}
	return nil
}
