package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/robby/pickforme/internal/domain"
)

// paletteColors maps each color tag to a pastel background.
var paletteColors = map[domain.ColorTag]lipgloss.Color{
	domain.ColorPink:    lipgloss.Color("#fbcfe8"),
	domain.ColorBlue:    lipgloss.Color("#bfdbfe"),
	domain.ColorGreen:   lipgloss.Color("#bbf7d0"),
	domain.ColorYellow:  lipgloss.Color("#fef08a"),
	domain.ColorPurple:  lipgloss.Color("#e9d5ff"),
	domain.ColorIndigo:  lipgloss.Color("#c7d2fe"),
	domain.ColorTeal:    lipgloss.Color("#99f6e4"),
	domain.ColorOrange:  lipgloss.Color("#fed7aa"),
	domain.ColorCyan:    lipgloss.Color("#a5f3fc"),
	domain.ColorEmerald: lipgloss.Color("#a7f3d0"),
	domain.ColorViolet:  lipgloss.Color("#ddd6fe"),
	domain.ColorRose:    lipgloss.Color("#fecdd3"),
}

// colorFor returns the background for a tag, falling back to light gray.
func colorFor(tag domain.ColorTag) lipgloss.Color {
	if c, ok := paletteColors[tag]; ok {
		return c
	}
	return lipgloss.Color("252")
}

var (
	// TitleStyle is used for the app title.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")) // Pink

	// SubtitleStyle is used for the tagline under the title.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("168"))

	// SectionStyle is used for section labels ("Your Options", ...).
	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252"))

	// ErrorStyle is used for error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true)

	// HelpStyle is used for help text.
	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")) // Dark gray

	// NoticeStyle frames the blocking notice.
	NoticeStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("205")).
			Padding(1, 3).
			Align(lipgloss.Center)

	// SelectedItemStyle is used for the highlighted list item.
	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("205")).
				Bold(true)

	// NormalItemStyle is used for non-selected list items.
	NormalItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")) // Light gray
)
