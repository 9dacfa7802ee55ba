// Package tui provides Bubble Tea models for the interactive picker.
package tui

import "github.com/robby/pickforme/internal/store"

// NoticeMsg asks the app to show a blocking notice the user must dismiss.
type NoticeMsg struct {
	Text string
}

// FinderClosedMsg is emitted when the finder closes. OptionID is empty if
// the user backed out without choosing.
type FinderClosedMsg struct {
	OptionID string
}

// QuitMsg is emitted when the user requests to quit.
type QuitMsg struct{}

// pickElapsedMsg fires when the thinking delay for a pick is over.
type pickElapsedMsg struct {
	ticket store.Ticket
}

// openFinderMsg asks the app to show the option finder.
type openFinderMsg struct{}

// actionFailedMsg reports a failed side effect (clipboard, browser).
type actionFailedMsg struct {
	action string
	err    error
}
