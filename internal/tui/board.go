package tui

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/pkg/browser"
	"github.com/robby/pickforme/internal/domain"
	"github.com/robby/pickforme/internal/store"
)

// Layout constants
const (
	cardWidth      = 16 // Card width including padding, excluding border
	cardOuterWidth = cardWidth + 2
	cardHeight     = 3  // One text line plus top and bottom border
	chromeLines    = 16 // Lines used by everything except the card grid
	resultMaxWidth = 40
)

// Styles for the board view
var (
	cardStyle = lipgloss.NewStyle().
			Width(cardWidth).
			Padding(0, 1).
			Align(lipgloss.Center).
			Foreground(lipgloss.Color("236")).
			Border(lipgloss.RoundedBorder())

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	toastStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("236")).
			Bold(true).
			Padding(1, 4).
			Align(lipgloss.Center).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("255"))

	thinkingStyle = lipgloss.NewStyle().
			Padding(1, 4).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("205"))
)

type focusArea int

const (
	focusInput focusArea = iota
	focusCards
)

// BoardModel is the picker screen: an input, the card grid and the
// thinking/result area.
type BoardModel struct {
	// Dependencies
	store     *store.Store
	logger    *log.Logger
	delay     time.Duration
	searchURL string

	// Side effects, replaced in tests
	writeClipboard func(string) error
	openURL        func(string) error

	// UI components
	keymap  KeyMap
	help    HelpModel
	spinner spinner.Model
	input   textinput.Model

	// View state
	focus    focusArea
	cursor   int // Index of the highlighted card
	width    int
	height   int
	showHelp bool
	toast    string
}

// NewBoardModel creates a board over s. searchURL must contain one %s.
func NewBoardModel(s *store.Store, logger *log.Logger, delay time.Duration, searchURL string) BoardModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	ti := textinput.New()
	ti.Placeholder = "Enter your option..."
	ti.Prompt = "> "
	ti.CharLimit = 0 // options can be any length; cards truncate
	ti.Focus()

	if logger == nil {
		logger = log.New(io.Discard)
	}

	return BoardModel{
		store:          s,
		logger:         logger,
		delay:          delay,
		searchURL:      searchURL,
		writeClipboard: clipboard.WriteAll,
		openURL:        browser.OpenURL,
		keymap:         DefaultKeyMap(),
		help:           NewHelpModel(DefaultKeyMap()),
		spinner:        sp,
		input:          ti,
		focus:          focusInput,
	}
}

// Init starts the spinner and the cursor blink.
func (m BoardModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		textinput.Blink,
		tea.WindowSize(),
	)
}

// Update handles messages
func (m BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(10, msg.Width-6)
		return m, nil

	case pickElapsedMsg:
		m.store.ResolvePick(msg.ticket)
		return m, nil

	case actionFailedMsg:
		m.logger.Warn("action failed", "action", msg.action, "err", msg.err)
		m.toast = fmt.Sprintf("%s failed: %v", msg.action, msg.err)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	if m.focus == focusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKeyPress processes keyboard input
func (m BoardModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The app handles ctrl+c first; this covers the board run on its own
	if key.Matches(msg, m.keymap.ForceQuit) {
		return m, tea.Quit
	}

	m.toast = ""

	// Help overlay
	if m.showHelp {
		if key.Matches(msg, m.keymap.Help, m.keymap.Quit, m.keymap.Cancel) {
			m.showHelp = false
		}
		return m, nil
	}

	if m.focus == focusInput {
		return m.handleInputKey(msg)
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, func() tea.Msg { return QuitMsg{} }
	case key.Matches(msg, m.keymap.Help):
		m.showHelp = true
	case key.Matches(msg, m.keymap.FocusInput):
		m.focus = focusInput
		return m, m.input.Focus()
	case key.Matches(msg, m.keymap.Left):
		m.moveCursor(-1)
	case key.Matches(msg, m.keymap.Right):
		m.moveCursor(1)
	case key.Matches(msg, m.keymap.Up):
		m.moveCursor(-m.cardsPerRow())
	case key.Matches(msg, m.keymap.Down):
		m.moveCursor(m.cardsPerRow())
	case key.Matches(msg, m.keymap.Remove):
		m.removeAtCursor()
	case key.Matches(msg, m.keymap.Pick):
		return m.pick()
	case key.Matches(msg, m.keymap.ClearAll):
		m.store.ClearAll()
		m.cursor = 0
	case key.Matches(msg, m.keymap.Cancel):
		m.store.CancelPick()
	case key.Matches(msg, m.keymap.Copy):
		return m.copySelected()
	case key.Matches(msg, m.keymap.LookUp):
		return m.lookUpSelected()
	case key.Matches(msg, m.keymap.Find):
		if m.store.Len() > 0 {
			return m, func() tea.Msg { return openFinderMsg{} }
		}
	}

	return m, nil
}

// handleInputKey handles keys while the option input has focus
func (m BoardModel) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Submit):
		if _, ok := m.store.Add(m.input.Value()); ok {
			m.input.Reset()
		}
		return m, nil
	case key.Matches(msg, m.keymap.PickInput):
		return m.pick()
	case key.Matches(msg, m.keymap.LeaveInput):
		m.focus = focusCards
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// pick starts a pick and schedules its resolution after the delay
func (m BoardModel) pick() (tea.Model, tea.Cmd) {
	ticket, err := m.store.BeginPick()
	switch {
	case errors.Is(err, store.ErrNoOptions):
		return m, func() tea.Msg {
			return NoticeMsg{Text: "Please add some options first!"}
		}
	case errors.Is(err, store.ErrPickPending):
		m.toast = "Still thinking..."
		return m, nil
	case err != nil:
		m.toast = err.Error()
		return m, nil
	}

	return m, tea.Tick(m.delay, func(time.Time) tea.Msg {
		return pickElapsedMsg{ticket: ticket}
	})
}

func (m BoardModel) copySelected() (tea.Model, tea.Cmd) {
	opt, ok := m.store.Selected()
	if !ok {
		return m, nil
	}
	m.toast = fmt.Sprintf("Copied %q", opt.Text)
	write := m.writeClipboard
	return m, func() tea.Msg {
		if err := write(opt.Text); err != nil {
			return actionFailedMsg{action: "copy", err: err}
		}
		return nil
	}
}

func (m BoardModel) lookUpSelected() (tea.Model, tea.Cmd) {
	opt, ok := m.store.Selected()
	if !ok {
		return m, nil
	}
	target := strings.Replace(m.searchURL, "%s", url.QueryEscape(opt.Text), 1)
	open := m.openURL
	return m, func() tea.Msg {
		if err := open(target); err != nil {
			return actionFailedMsg{action: "look up", err: err}
		}
		return nil
	}
}

// removeAtCursor removes the highlighted card and keeps the cursor in range
func (m *BoardModel) removeAtCursor() {
	opts := m.store.Options()
	if len(opts) == 0 {
		return
	}
	m.store.Remove(opts[m.clampedCursor(len(opts))].ID)
	m.cursor = m.clampedCursor(m.store.Len())
}

// focusOption moves focus to the card grid with the cursor on id
func (m *BoardModel) focusOption(id string) {
	for i, opt := range m.store.Options() {
		if opt.ID == id {
			m.cursor = i
			m.focus = focusCards
			m.input.Blur()
			return
		}
	}
}

// moveCursor moves the card cursor by delta, clamped to the list
func (m *BoardModel) moveCursor(delta int) {
	n := m.store.Len()
	if n == 0 {
		m.cursor = 0
		return
	}
	next := m.clampedCursor(n) + delta
	if next < 0 || next >= n {
		return
	}
	m.cursor = next
}

func (m BoardModel) clampedCursor(n int) int {
	if m.cursor >= n {
		return max(0, n-1)
	}
	return m.cursor
}

// cardsPerRow returns how many cards fit side by side
func (m BoardModel) cardsPerRow() int {
	width := m.width
	if width == 0 {
		width = 80
	}
	return max(1, (width-2)/cardOuterWidth)
}

// visibleRows returns how many card rows fit on screen
func (m BoardModel) visibleRows() int {
	height := m.height
	if height == 0 {
		height = 24
	}
	return max(1, (height-chromeLines)/cardHeight)
}

// View renders the board
func (m BoardModel) View() string {
	width := m.width
	if width == 0 {
		width = 80
	}

	sections := []string{m.renderHeader(width)}

	if m.showHelp {
		sections = append(sections, m.help.View(width))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	sections = append(sections,
		SectionStyle.Render("Add New Option"),
		m.input.View(),
		"",
	)

	if m.store.Len() > 0 {
		sections = append(sections, SectionStyle.Render("Your Options"), m.renderGrid())
	}

	if status := m.renderStatus(); status != "" {
		sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, status))
	}

	if m.toast != "" {
		sections = append(sections, toastStyle.Render(m.toast))
	}
	sections = append(sections, m.renderFooter())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader renders the title on the left and counts on the right
func (m BoardModel) renderHeader(width int) string {
	title := TitleStyle.Render("If You Can't I'll Pick For You 🎯")
	status := dimStyle.Render(fmt.Sprintf("%d options | [?]help", m.store.Len()))

	padding := width - lipgloss.Width(title) - lipgloss.Width(status) - 2
	if padding < 1 {
		padding = 1
	}

	return title + strings.Repeat(" ", padding) + status + "\n" +
		SubtitleStyle.Render("Give Dilemmas I Decide")
}

// renderGrid lays the cards out in rows, scrolled so the cursor is visible
func (m BoardModel) renderGrid() string {
	opts := m.store.Options()
	perRow := m.cardsPerRow()
	rows := (len(opts) + perRow - 1) / perRow
	visible := m.visibleRows()
	cursor := m.clampedCursor(len(opts))

	offset := 0
	if row := cursor / perRow; row >= visible {
		offset = row - visible + 1
	}
	end := min(rows, offset+visible)

	var lines []string
	if offset > 0 {
		lines = append(lines, dimStyle.Render(fmt.Sprintf("↑ %d more rows", offset)))
	}
	for r := offset; r < end; r++ {
		var cards []string
		for i := r * perRow; i < min(len(opts), (r+1)*perRow); i++ {
			cards = append(cards, m.renderCard(opts[i], m.focus == focusCards && i == cursor))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	if end < rows {
		lines = append(lines, dimStyle.Render(fmt.Sprintf("↓ %d more rows", rows-end)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderCard renders one option as a colored card
func (m BoardModel) renderCard(opt domain.Option, highlighted bool) string {
	text := truncate.StringWithTail(opt.Text, uint(cardWidth-2), "…")

	style := cardStyle.Background(colorFor(opt.Color)).BorderForeground(lipgloss.Color("240"))
	if highlighted {
		style = style.Bold(true).BorderForeground(lipgloss.Color("205"))
	}
	return style.Render(text)
}

// renderStatus renders the thinking view, the result or the empty state
func (m BoardModel) renderStatus() string {
	switch m.store.State() {
	case domain.StateSelecting:
		return thinkingStyle.Render(m.spinner.View() + " Thinking...")

	case domain.StateSelected:
		opt, ok := m.store.Selected()
		if !ok {
			return ""
		}
		body := "I Picked! 🎉\n\n" + wordwrap.String(opt.Text, resultMaxWidth)
		return resultStyle.Background(colorFor(opt.Color)).Render(body)
	}

	if m.store.Len() == 0 {
		return lipgloss.JoinVertical(lipgloss.Center,
			"🤔",
			SectionStyle.Render("No options yet!"),
			dimStyle.Render("Add some options above and I'll pick for you."),
		)
	}
	return ""
}

// renderFooter renders key hints for the focused area
func (m BoardModel) renderFooter() string {
	if m.focus == focusInput {
		return HelpStyle.Render("enter:add  tab:cards  ctrl+r:pick  ctrl+c:quit")
	}

	hints := "hjkl:move  /:find  d:remove  p:pick  C:clear  i:add"
	if m.store.State() == domain.StateSelected {
		hints += "  y:copy  o:look up"
	}
	if m.store.State() == domain.StateSelecting {
		hints += "  esc:stop"
	}
	return HelpStyle.Render(hints + "  ?:help  q:quit")
}
