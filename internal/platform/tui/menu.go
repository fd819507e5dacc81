package tui

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

// MenuItem represents a selectable game mode in the menu.
type MenuItem struct {
	GameID string
	Title  string
}

// Selection is what the menu hands to the platform when a game starts.
type Selection struct {
	GameID string
	Size   int    // 0 when the game has no size choice
	Preset string // difficulty preset name
}

// Option rows on the second menu page.
const (
	optionSize = iota
	optionPreset
	optionStart
	optionCount
)

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuHelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuFocusStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
)

// MenuModel is the Bubble Tea model for the mode picker and the board
// options page that follows it.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	settings  Settings
	config    core.RuntimeConfig
	keyMapper *KeyMapper

	inOptions    bool
	optionCursor int
	sizes        []int
	sizeIndex    int
	presetIndex  int

	quitting       bool
	selected       *Selection
	openScoreboard bool
}

// NewMenuModel creates a new menu model listing every registered game.
func NewMenuModel(settings Settings, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		items = append(items, MenuItem{GameID: g.ID, Title: g.Title})
	}

	return MenuModel{
		items:       items,
		width:       cfg.ScreenW,
		height:      cfg.ScreenH,
		settings:    settings,
		config:      cfg,
		keyMapper:   NewKeyMapper(),
		presetIndex: slices.Index(config.Presets, config.DifficultyNormal),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	if m.inOptions {
		return m.handleOptionsKey(action)
	}

	switch action {
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		if len(m.items) == 0 {
			return m, nil
		}
		m.sizes = m.sizesFor(m.items[m.cursor].GameID)
		if len(m.sizes) == 0 {
			return m.choose(0)
		}
		if m.sizeIndex >= len(m.sizes) {
			m.sizeIndex = 0
		}
		m.inOptions = true
		m.optionCursor = optionStart
	}

	return m, nil
}

func (m MenuModel) handleOptionsKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionUp:
		m.optionCursor = (m.optionCursor + optionCount - 1) % optionCount
	case MenuActionDown:
		m.optionCursor = (m.optionCursor + 1) % optionCount
	case MenuActionLeft:
		m.cycle(-1)
	case MenuActionRight:
		m.cycle(1)
	case MenuActionSelect:
		if m.optionCursor == optionStart {
			return m.choose(m.sizes[m.sizeIndex])
		}
		m.cycle(1)
	case MenuActionBack:
		m.inOptions = false
	}
	return m, nil
}

// cycle steps the focused option by delta, wrapping around.
func (m *MenuModel) cycle(delta int) {
	switch m.optionCursor {
	case optionSize:
		m.sizeIndex = wrap(m.sizeIndex+delta, len(m.sizes))
	case optionPreset:
		m.presetIndex = wrap(m.presetIndex+delta, len(config.Presets))
	}
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}

func (m MenuModel) choose(size int) (tea.Model, tea.Cmd) {
	m.selected = &Selection{
		GameID: m.items[m.cursor].GameID,
		Size:   size,
		Preset: string(config.Presets[m.presetIndex]),
	}
	return m, tea.Quit
}

// sizesFor asks a fresh instance of the game which board sizes it offers.
func (m MenuModel) sizesFor(gameID string) []int {
	g, err := registry.Create(gameID)
	if err != nil {
		return nil
	}
	if m.settings.Prepare != nil {
		m.settings.Prepare(g)
	}
	if c, ok := g.(registry.Configurable); ok {
		return c.Sizes()
	}
	return nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	if m.inOptions {
		return m.viewOptions()
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("  M A T C H - 3  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a mode", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Title
		if i == m.cursor {
			line = menuFocusStyle.Render("> " + item.Title)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuHelpStyle.Render("Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"), m.width))
	b.WriteString("\n")
	return b.String()
}

func (m MenuModel) viewOptions() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render(m.items[m.cursor].Title), m.width))
	b.WriteString("\n\n")

	size := m.sizes[m.sizeIndex]
	rows := []string{
		fmt.Sprintf("Board size:  < %dx%d >", size, size),
		fmt.Sprintf("Difficulty:  < %s >", config.Presets[m.presetIndex]),
		"Start",
	}
	for i, row := range rows {
		line := "  " + row
		if i == m.optionCursor {
			line = menuFocusStyle.Render("> " + row)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuHelpStyle.Render("Up/Down: Option  |  Left/Right: Change  |  Enter: Start  |  Esc: Back"), m.width))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the selection, or nil if none was made.
func (m MenuModel) Selected() *Selection {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// NewGame creates and configures the game named by sel.
func NewGame(sel Selection, settings Settings) (registry.Game, error) {
	g, err := registry.Create(sel.GameID)
	if err != nil {
		return nil, err
	}
	if settings.Prepare != nil {
		settings.Prepare(g)
	}
	if c, ok := g.(registry.Configurable); ok && sel.Size > 0 {
		if err := c.Configure(sel.Size, sel.Preset); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Selection       *Selection
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(settings Settings, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(settings, cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Selected() != nil:
		result.Selection = m.Selected()
	default:
		result.Quit = true
	}
	return result, nil
}
