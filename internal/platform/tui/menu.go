package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Clark-Sheng-Quan/Frogger-Game/internal/config"
	"github.com/Clark-Sheng-Quan/Frogger-Game/internal/core"
)

// MenuChoice is what the player picked in the main menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceScores
	ChoiceDifficulty
	ChoiceQuit
)

var menuItems = []MenuChoice{ChoicePlay, ChoiceScores, ChoiceDifficulty, ChoiceQuit}

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuHelpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	cursor     int
	difficulty int // index into config.Presets
	width      int
	height     int
	config     core.RuntimeConfig
	keys       *KeyMapper
	choice     MenuChoice
}

// NewMenuModel creates the menu. The difficulty selector starts at preset.
func NewMenuModel(cfg core.RuntimeConfig, preset config.DifficultyPreset) MenuModel {
	m := MenuModel{
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
		keys:   NewKeyMapper(),
	}
	for i, p := range config.Presets {
		if p == preset {
			m.difficulty = i
		}
	}
	return m
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
		m.width, m.height = msg.Width, msg.Height
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.choice = ChoiceQuit
		return m, tea.Quit
	case MenuActionUp:
		m.cursor = (m.cursor + len(menuItems) - 1) % len(menuItems)
	case MenuActionDown:
		m.cursor = (m.cursor + 1) % len(menuItems)
	case MenuActionLeft:
		if menuItems[m.cursor] == ChoiceDifficulty {
			m.difficulty = (m.difficulty + len(config.Presets) - 1) % len(config.Presets)
		}
	case MenuActionRight:
		if menuItems[m.cursor] == ChoiceDifficulty {
			m.difficulty = (m.difficulty + 1) % len(config.Presets)
		}
	case MenuActionScoreboard:
		m.choice = ChoiceScores
		return m, tea.Quit
	case MenuActionSelect:
		switch c := menuItems[m.cursor]; c {
		case ChoiceDifficulty:
			m.difficulty = (m.difficulty + 1) % len(config.Presets)
		default:
			m.choice = c
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m MenuModel) itemLabel(c MenuChoice) string {
	switch c {
	case ChoicePlay:
		return "Play"
	case ChoiceScores:
		return "High Scores"
	case ChoiceDifficulty:
		return fmt.Sprintf("Difficulty: < %s >", m.Difficulty())
	case ChoiceQuit:
		return "Quit"
	}
	return ""
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice != ChoiceNone {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("F R O G G E R"), m.width))
	b.WriteString("\n\n")

	for i, c := range menuItems {
		line := "  " + m.itemLabel(c)
		if i == m.cursor {
			line = menuSelectedStyle.Render("> " + m.itemLabel(c))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuHelpStyle.Render("Up/Down: Navigate  Left/Right: Difficulty  Enter: Select  Tab: Scores  Q: Quit"), m.width))
	b.WriteString("\n")
	return b.String()
}

// Choice returns the item picked so far, ChoiceNone while browsing.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Difficulty returns the selected preset.
func (m MenuModel) Difficulty() config.DifficultyPreset {
	return config.Presets[m.difficulty]
}

// centerText pads text to the middle of width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the outcome of a menu session.
type MenuResult struct {
	Choice     MenuChoice
	Difficulty config.DifficultyPreset
	Config     core.RuntimeConfig
}

// Result returns the menu outcome. Config carries the selected start level
// and the last known terminal size.
func (m MenuModel) Result() MenuResult {
	cfg := m.config
	cfg.StartLevel = config.StartLevelForPreset(m.Difficulty())
	choice := m.choice
	if choice == ChoiceNone {
		choice = ChoiceQuit
	}
	return MenuResult{Choice: choice, Difficulty: m.Difficulty(), Config: cfg}
}

// RunMenu shows the menu and returns the selection.
func RunMenu(cfg core.RuntimeConfig, preset config.DifficultyPreset) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(cfg, preset), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return MenuResult{Choice: ChoiceQuit, Difficulty: preset, Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Choice: ChoiceQuit, Difficulty: preset, Config: cfg}, nil
	}
	return m.Result(), nil
}
