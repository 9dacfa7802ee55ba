package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/robby/pickforme/internal/domain"
)

// optionItem represents an option in the finder list.
type optionItem struct {
	option domain.Option
}

func (i optionItem) FilterValue() string { return i.option.Text }

// optionItemDelegate renders an option as a color swatch and its text.
type optionItemDelegate struct{}

func (d optionItemDelegate) Height() int                             { return 1 }
func (d optionItemDelegate) Spacing() int                            { return 0 }
func (d optionItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d optionItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(optionItem)
	if !ok {
		return
	}

	swatch := lipgloss.NewStyle().Foreground(colorFor(i.option.Color)).Render("■")

	if index == m.Index() {
		fmt.Fprint(w, SelectedItemStyle.Render("> ")+swatch+" "+SelectedItemStyle.Render(i.option.Text))
		return
	}
	fmt.Fprint(w, "  "+swatch+" "+NormalItemStyle.Render(i.option.Text))
}

// FinderModel lets the user fuzzy-find an option and jump to its card.
type FinderModel struct {
	list list.Model
}

// NewFinderModel creates a finder over the given options.
func NewFinderModel(options []domain.Option) FinderModel {
	items := make([]list.Item, len(options))
	for i, opt := range options {
		items[i] = optionItem{option: opt}
	}

	// Start with a reasonable default - will be resized by WindowSizeMsg
	l := list.New(items, optionItemDelegate{}, 80, 20)
	l.Title = "Find Option"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = TitleStyle
	l.Styles.PaginationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	l.Styles.HelpStyle = HelpStyle

	return FinderModel{list: l}
}

// Init initializes the model.
func (m FinderModel) Init() tea.Cmd {
	return tea.WindowSize()
}

// Update handles messages.
func (m FinderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.SettingFilter() {
			break
		}
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(optionItem); ok {
				return m, func() tea.Msg {
					return FinderClosedMsg{OptionID: item.option.ID}
				}
			}
		case "q", "esc":
			// esc first clears an applied filter
			if m.list.FilterState() == list.FilterApplied {
				break
			}
			return m, func() tea.Msg { return FinderClosedMsg{} }
		}

	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width - 2)
		m.list.SetHeight(msg.Height - 2)
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the model.
func (m FinderModel) View() string {
	return m.list.View()
}
