// Package store provides the in-memory option list and the pick state machine.
// It is owned by a single event loop and takes no locks: every mutation
// happens on a user event or on the one scheduled pick resolution.
package store

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/robby/pickforme/internal/domain"
)

var (
	// ErrNoOptions indicates a pick was requested on an empty list.
	ErrNoOptions = errors.New("please add some options first")
	// ErrPickPending indicates a pick is already waiting to resolve.
	ErrPickPending = errors.New("already picking")
)

// Rand is the random source used for colors and picks.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// EventKind identifies the mutation reported to an observer.
type EventKind string

const (
	EventAdded        EventKind = "added"
	EventRemoved      EventKind = "removed"
	EventCleared      EventKind = "cleared"
	EventPickStarted  EventKind = "pick-started"
	EventPickResolved EventKind = "pick-resolved"
	EventPickCanceled EventKind = "pick-canceled"
)

// Event describes a mutation after it has been applied.
type Event struct {
	Kind   EventKind
	Option *domain.Option // Affected option, nil for list-wide events
	State  domain.State   // State after the mutation
}

// Ticket identifies one pending pick. A ticket goes stale when the pick it
// belongs to is cleared, canceled or resolved.
type Ticket struct {
	gen uint64
}

// Option configures a Store.
type Option func(*Store)

// WithRand sets the random source. Seed it for deterministic tests.
func WithRand(r Rand) Option {
	return func(s *Store) { s.rand = r }
}

// WithIDFunc replaces the option ID generator.
func WithIDFunc(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

// WithObserver registers a callback invoked after every mutation.
func WithObserver(fn func(Event)) Option {
	return func(s *Store) { s.observer = fn }
}

// Store holds the ordered option list and the selection state.
type Store struct {
	options  []domain.Option
	state    domain.State
	selected *domain.Option

	// gen is bumped whenever a pending pick must be invalidated
	gen uint64

	rand     Rand
	newID    func() string
	observer func(Event)
}

// New creates an empty Store in the Idle state.
// A random source is required; see WithRand.
func New(r Rand, opts ...Option) *Store {
	s := &Store{
		rand:  r,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add appends a new option built from text. Text that is empty after
// trimming is ignored and Add reports false.
func (s *Store) Add(text string) (domain.Option, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.Option{}, false
	}

	opt := domain.Option{
		ID:    s.uniqueID(),
		Text:  text,
		Color: domain.Palette[s.rand.IntN(len(domain.Palette))],
	}
	s.options = append(s.options, opt)
	s.notify(EventAdded, &opt)
	return opt, true
}

// Remove deletes the option with the given ID. Unknown IDs are ignored.
// Removing the selected option returns the state to Idle.
func (s *Store) Remove(id string) bool {
	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}

	removed := s.options[idx]
	s.options = append(s.options[:idx:idx], s.options[idx+1:]...)

	if s.state == domain.StateSelected && s.selected != nil && s.selected.ID == id {
		s.state = domain.StateIdle
		s.selected = nil
	}

	s.notify(EventRemoved, &removed)
	return true
}

// ClearAll empties the list and returns to Idle. A pending pick is
// invalidated and its ticket will no longer resolve.
func (s *Store) ClearAll() {
	s.options = nil
	s.state = domain.StateIdle
	s.selected = nil
	s.gen++
	s.notify(EventCleared, nil)
}

// BeginPick moves to Selecting and returns the ticket the caller must hand
// back to ResolvePick once the thinking delay has elapsed.
// Returns ErrNoOptions for an empty list and ErrPickPending while a pick is
// already in flight; neither changes state.
func (s *Store) BeginPick() (Ticket, error) {
	if len(s.options) == 0 {
		return Ticket{}, ErrNoOptions
	}
	if s.state == domain.StateSelecting {
		return Ticket{}, ErrPickPending
	}

	s.gen++
	s.state = domain.StateSelecting
	s.selected = nil
	s.notify(EventPickStarted, nil)
	return Ticket{gen: s.gen}, nil
}

// ResolvePick draws one option uniformly from the list as it is now and
// moves to Selected. It is a no-op returning false when the ticket is stale
// or the store is no longer Selecting. If the list was emptied option by
// option during the delay, the pick resolves to Idle and reports false.
func (s *Store) ResolvePick(t Ticket) (domain.Option, bool) {
	if t.gen != s.gen || s.state != domain.StateSelecting {
		return domain.Option{}, false
	}
	s.gen++

	if len(s.options) == 0 {
		s.state = domain.StateIdle
		s.notify(EventPickResolved, nil)
		return domain.Option{}, false
	}

	picked := s.options[s.rand.IntN(len(s.options))]
	s.state = domain.StateSelected
	s.selected = &picked
	s.notify(EventPickResolved, &picked)
	return picked, true
}

// CancelPick abandons a pending pick and returns to Idle.
// It reports false if nothing was pending.
func (s *Store) CancelPick() bool {
	if s.state != domain.StateSelecting {
		return false
	}
	s.gen++
	s.state = domain.StateIdle
	s.notify(EventPickCanceled, nil)
	return true
}

// Options returns a copy of the list in insertion order.
func (s *Store) Options() []domain.Option {
	result := make([]domain.Option, len(s.options))
	copy(result, s.options)
	return result
}

// Len returns the number of options.
func (s *Store) Len() int {
	return len(s.options)
}

// State returns the current selection state.
func (s *Store) State() domain.State {
	return s.state
}

// Selected returns the picked option while the state is Selected.
func (s *Store) Selected() (domain.Option, bool) {
	if s.state != domain.StateSelected || s.selected == nil {
		return domain.Option{}, false
	}
	return *s.selected, true
}

func (s *Store) indexOf(id string) int {
	for i, opt := range s.options {
		if opt.ID == id {
			return i
		}
	}
	return -1
}

// maxIDAttempts bounds how often the configured generator is asked for a
// fresh ID before falling back to a UUID.
const maxIDAttempts = 8

// uniqueID returns an ID not already in use.
func (s *Store) uniqueID() string {
	for range maxIDAttempts {
		if id := s.newID(); s.indexOf(id) < 0 {
			return id
		}
	}
	for {
		if id := uuid.NewString(); s.indexOf(id) < 0 {
			return id
		}
	}
}

func (s *Store) notify(kind EventKind, opt *domain.Option) {
	if s.observer == nil {
		return
	}
	s.observer(Event{Kind: kind, Option: opt, State: s.state})
}
