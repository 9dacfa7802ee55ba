package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

var helpOverlayStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("205")).
	Padding(1, 2).
	MarginTop(1)

// helpSection is one titled group of bindings in the overlay.
type helpSection struct {
	title    string
	bindings []key.Binding
}

// HelpModel renders the key reference overlay on top of the bubbles help
// component, one titled section per focus area.
type HelpModel struct {
	help     help.Model
	sections []helpSection
}

// NewHelpModel creates the overlay for keymap.
func NewHelpModel(keymap KeyMap) HelpModel {
	h := help.New()
	h.ShowAll = false

	return HelpModel{
		help: h,
		sections: []helpSection{
			{"Typing an option", []key.Binding{keymap.Submit, keymap.PickInput, keymap.LeaveInput}},
			{"Moving around", []key.Binding{keymap.Left, keymap.Right, keymap.Up, keymap.Down, keymap.Find}},
			{"Cards", []key.Binding{keymap.FocusInput, keymap.Remove, keymap.ClearAll}},
			{"Picking", []key.Binding{keymap.Pick, keymap.Cancel, keymap.Copy, keymap.LookUp}},
		},
	}
}

// View renders the overlay fitted to width.
func (m HelpModel) View(width int) string {
	m.help.Width = width - 8 // padding and border

	lines := make([]string, 0, len(m.sections)*2+1)
	for _, s := range m.sections {
		lines = append(lines,
			SectionStyle.Render(s.title),
			m.help.ShortHelpView(s.bindings),
		)
	}
	lines = append(lines, "", HelpStyle.Render("? or esc to close"))

	return helpOverlayStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
