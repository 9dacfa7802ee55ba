// Package domain defines the core types shared by the store and the TUI.
package domain

// ColorTag names one entry of the fixed card palette.
type ColorTag string

// Palette tags. The TUI maps each tag to a concrete terminal color.
const (
	ColorPink    ColorTag = "pink"
	ColorBlue    ColorTag = "blue"
	ColorGreen   ColorTag = "green"
	ColorYellow  ColorTag = "yellow"
	ColorPurple  ColorTag = "purple"
	ColorIndigo  ColorTag = "indigo"
	ColorTeal    ColorTag = "teal"
	ColorOrange  ColorTag = "orange"
	ColorCyan    ColorTag = "cyan"
	ColorEmerald ColorTag = "emerald"
	ColorViolet  ColorTag = "violet"
	ColorRose    ColorTag = "rose"
)

// Palette is the fixed set of tags a new option's color is drawn from.
var Palette = []ColorTag{
	ColorPink, ColorBlue, ColorGreen, ColorYellow,
	ColorPurple, ColorIndigo, ColorTeal, ColorOrange,
	ColorCyan, ColorEmerald, ColorViolet, ColorRose,
}

// Option is a single user-entered item eligible for a pick.
// Options are immutable once created.
type Option struct {
	ID    string   // Unique within the list
	Text  string   // Trimmed, never empty
	Color ColorTag // Drawn from Palette on creation
}

// State is the selection state of the picker.
type State int

const (
	StateIdle State = iota
	StateSelecting
	StateSelected
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSelecting:
		return "selecting"
	case StateSelected:
		return "selected"
	default:
		return "unknown"
	}
}
