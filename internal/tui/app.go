package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/robby/pickforme/internal/config"
	"github.com/robby/pickforme/internal/store"
)

// AppScreen represents the screens of the application.
type AppScreen int

const (
	ScreenBoard AppScreen = iota
	ScreenFinder
)

// AppModel is the root Bubble Tea model. It owns global keys, the blocking
// notice and screen transitions between the board and the finder.
type AppModel struct {
	// Dependencies
	store  *store.Store
	logger *log.Logger

	// Current state
	currentScreen AppScreen
	board         BoardModel
	finder        FinderModel

	// A non-empty notice blocks all input until dismissed
	notice string
	width  int
	height int
}

// NewAppModel creates the root model over s using the delay and search URL
// from cfg.
func NewAppModel(s *store.Store, cfg config.Config, logger *log.Logger) AppModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return AppModel{
		store:         s,
		logger:        logger,
		currentScreen: ScreenBoard,
		board:         NewBoardModel(s, logger, cfg.Delay, cfg.SearchURL),
	}
}

// Init initializes the app model.
func (m AppModel) Init() tea.Cmd {
	return m.board.Init()
}

// Update handles global messages and delegates the rest to the current screen.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Global quit handler
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.notice != "" {
			switch msg.String() {
			case "enter", "esc", " ":
				m.notice = ""
			}
			return m, nil
		}

	case NoticeMsg:
		m.logger.Info("notice shown", "text", msg.Text)
		m.notice = msg.Text
		return m, nil

	case QuitMsg:
		return m, tea.Quit

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case openFinderMsg:
		m.currentScreen = ScreenFinder
		m.finder = NewFinderModel(m.store.Options())
		return m, m.finder.Init()

	case FinderClosedMsg:
		m.currentScreen = ScreenBoard
		if msg.OptionID != "" {
			m.board.focusOption(msg.OptionID)
		}
		return m, nil
	}

	if m.currentScreen == ScreenFinder {
		return m.updateFinder(msg)
	}
	return m.updateBoard(msg)
}

// updateFinder routes keys to the finder only; timers and ticks still reach
// the board so a pending pick resolves while the finder is open.
func (m AppModel) updateFinder(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := m.finder.Update(msg)
	if fm, ok := model.(FinderModel); ok {
		m.finder = fm
	}
	if _, isKey := msg.(tea.KeyMsg); isKey {
		return m, cmd
	}

	next, boardCmd := m.updateBoard(msg)
	return next, tea.Batch(cmd, boardCmd)
}

func (m AppModel) updateBoard(msg tea.Msg) (AppModel, tea.Cmd) {
	model, cmd := m.board.Update(msg)
	if bm, ok := model.(BoardModel); ok {
		m.board = bm
	}
	return m, cmd
}

// View renders the notice if one is pending, otherwise the current screen.
func (m AppModel) View() string {
	if m.notice != "" {
		width, height := m.width, m.height
		if width == 0 {
			width = 80
		}
		if height == 0 {
			height = 24
		}
		box := NoticeStyle.Render(ErrorStyle.Render(m.notice) + "\n\n" + HelpStyle.Render("press enter to continue"))
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
	}

	if m.currentScreen == ScreenFinder {
		return m.finder.View()
	}
	return m.board.View()
}
