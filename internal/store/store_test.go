package store

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/robby/pickforme/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test fixtures
func newTestRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func counterIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("opt-%d", n)
	}
}

func newTestStore(opts ...Option) *Store {
	opts = append([]Option{WithIDFunc(counterIDs())}, opts...)
	return New(newTestRand(), opts...)
}

// fixedRand always returns the same index
type fixedRand int

func (f fixedRand) IntN(n int) int {
	return int(f) % n
}

func TestNew(t *testing.T) {
	s := newTestStore()
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, domain.StateIdle, s.State())
	_, ok := s.Selected()
	assert.False(t, ok)
}

func TestAdd(t *testing.T) {
	t.Run("whitespace only is ignored", func(t *testing.T) {
		s := newTestStore()
		for _, text := range []string{"", "   ", "\t\n "} {
			_, ok := s.Add(text)
			assert.False(t, ok)
		}
		assert.Equal(t, 0, s.Len())
	})

	t.Run("preserves insertion order with unique ids", func(t *testing.T) {
		s := newTestStore()
		_, ok := s.Add("Pizza")
		require.True(t, ok)
		_, ok = s.Add("Sushi")
		require.True(t, ok)

		opts := s.Options()
		require.Len(t, opts, 2)
		assert.Equal(t, "Pizza", opts[0].Text)
		assert.Equal(t, "Sushi", opts[1].Text)
		assert.NotEqual(t, opts[0].ID, opts[1].ID)
	})

	t.Run("trims text", func(t *testing.T) {
		s := newTestStore()
		opt, ok := s.Add("  Tacos \n")
		require.True(t, ok)
		assert.Equal(t, "Tacos", opt.Text)
	})

	t.Run("color comes from palette", func(t *testing.T) {
		s := newTestStore()
		for i := 0; i < 50; i++ {
			opt, ok := s.Add(fmt.Sprintf("option %d", i))
			require.True(t, ok)
			assert.Contains(t, domain.Palette, opt.Color)
		}
	})

	t.Run("regenerates colliding ids", func(t *testing.T) {
		ids := []string{"same", "same", "other"}
		s := New(newTestRand(), WithIDFunc(func() string {
			id := ids[0]
			ids = ids[1:]
			return id
		}))
		a, _ := s.Add("A")
		b, _ := s.Add("B")
		assert.Equal(t, "same", a.ID)
		assert.Equal(t, "other", b.ID)
	})

	t.Run("falls back to uuid when the generator keeps colliding", func(t *testing.T) {
		s := New(newTestRand(), WithIDFunc(func() string { return "stuck" }))
		a, _ := s.Add("A")
		b, _ := s.Add("B")
		assert.Equal(t, "stuck", a.ID)
		assert.NotEqual(t, "stuck", b.ID)
		assert.Len(t, b.ID, 36)
		assert.Equal(t, 2, s.Len())
	})

	t.Run("default ids are unique", func(t *testing.T) {
		s := New(newTestRand())
		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			opt, _ := s.Add("x")
			assert.False(t, seen[opt.ID])
			seen[opt.ID] = true
		}
	})
}

func TestOptions_ReturnsCopy(t *testing.T) {
	s := newTestStore()
	s.Add("Pizza")

	opts := s.Options()
	opts[0].Text = "mutated"

	assert.Equal(t, "Pizza", s.Options()[0].Text)
}

func TestRemove(t *testing.T) {
	t.Run("existing option", func(t *testing.T) {
		s := newTestStore()
		a, _ := s.Add("A")
		b, _ := s.Add("B")
		c, _ := s.Add("C")

		assert.True(t, s.Remove(b.ID))
		opts := s.Options()
		require.Len(t, opts, 2)
		assert.Equal(t, a.ID, opts[0].ID)
		assert.Equal(t, c.ID, opts[1].ID)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		s := newTestStore()
		s.Add("A")
		assert.False(t, s.Remove("missing"))
		assert.Equal(t, 1, s.Len())
	})

	t.Run("removing the selected option resets to idle", func(t *testing.T) {
		s := New(fixedRand(0), WithIDFunc(counterIDs()))
		a, _ := s.Add("A")
		s.Add("B")

		ticket, err := s.BeginPick()
		require.NoError(t, err)
		picked, ok := s.ResolvePick(ticket)
		require.True(t, ok)
		require.Equal(t, a.ID, picked.ID)

		s.Remove(a.ID)
		assert.Equal(t, domain.StateIdle, s.State())
		_, ok = s.Selected()
		assert.False(t, ok)
	})

	t.Run("removing another option keeps the selection", func(t *testing.T) {
		s := New(fixedRand(0), WithIDFunc(counterIDs()))
		a, _ := s.Add("A")
		b, _ := s.Add("B")

		ticket, _ := s.BeginPick()
		s.ResolvePick(ticket)
		s.Remove(b.ID)

		assert.Equal(t, domain.StateSelected, s.State())
		sel, ok := s.Selected()
		require.True(t, ok)
		assert.Equal(t, a.ID, sel.ID)
	})
}

func TestClearAll(t *testing.T) {
	setups := map[string]func(s *Store){
		"idle": func(s *Store) {},
		"selecting": func(s *Store) {
			s.Add("A")
			_, _ = s.BeginPick()
		},
		"selected": func(s *Store) {
			s.Add("A")
			ticket, _ := s.BeginPick()
			s.ResolvePick(ticket)
		},
	}

	for name, setup := range setups {
		t.Run(name, func(t *testing.T) {
			s := newTestStore()
			setup(s)

			s.ClearAll()
			assert.Equal(t, 0, s.Len())
			assert.Equal(t, domain.StateIdle, s.State())
		})
	}
}

func TestClearAll_InvalidatesPendingPick(t *testing.T) {
	s := newTestStore()
	s.Add("A")
	ticket, err := s.BeginPick()
	require.NoError(t, err)

	s.ClearAll()
	s.Add("B")

	_, ok := s.ResolvePick(ticket)
	assert.False(t, ok)
	assert.Equal(t, domain.StateIdle, s.State())
}

func TestBeginPick(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		var events []Event
		s := newTestStore(WithObserver(func(e Event) { events = append(events, e) }))

		_, err := s.BeginPick()
		assert.ErrorIs(t, err, ErrNoOptions)
		assert.Equal(t, domain.StateIdle, s.State())
		assert.Empty(t, events)
	})

	t.Run("transitions to selecting immediately", func(t *testing.T) {
		s := newTestStore()
		s.Add("A")

		_, err := s.BeginPick()
		require.NoError(t, err)
		assert.Equal(t, domain.StateSelecting, s.State())
	})

	t.Run("rejects a second pick while pending", func(t *testing.T) {
		s := newTestStore()
		s.Add("A")
		first, err := s.BeginPick()
		require.NoError(t, err)

		_, err = s.BeginPick()
		assert.ErrorIs(t, err, ErrPickPending)

		_, ok := s.ResolvePick(first)
		assert.True(t, ok)
	})

	t.Run("re-pick from selected clears the previous result", func(t *testing.T) {
		s := newTestStore()
		s.Add("A")
		ticket, _ := s.BeginPick()
		s.ResolvePick(ticket)
		require.Equal(t, domain.StateSelected, s.State())

		_, err := s.BeginPick()
		require.NoError(t, err)
		assert.Equal(t, domain.StateSelecting, s.State())
		_, ok := s.Selected()
		assert.False(t, ok)
	})
}

func TestResolvePick(t *testing.T) {
	t.Run("samples the list at resolution time", func(t *testing.T) {
		s := New(fixedRand(1), WithIDFunc(counterIDs()))
		s.Add("Early")
		ticket, err := s.BeginPick()
		require.NoError(t, err)

		// Mutations during the delay are visible to the draw
		late, _ := s.Add("Late")

		picked, ok := s.ResolvePick(ticket)
		require.True(t, ok)
		assert.Equal(t, late.ID, picked.ID)
		assert.Equal(t, domain.StateSelected, s.State())
	})

	t.Run("list emptied by removals resolves to idle", func(t *testing.T) {
		s := newTestStore()
		a, _ := s.Add("A")
		ticket, _ := s.BeginPick()
		s.Remove(a.ID)

		_, ok := s.ResolvePick(ticket)
		assert.False(t, ok)
		assert.Equal(t, domain.StateIdle, s.State())
	})

	t.Run("ticket resolves only once", func(t *testing.T) {
		s := newTestStore()
		s.Add("A")
		ticket, _ := s.BeginPick()

		_, ok := s.ResolvePick(ticket)
		require.True(t, ok)
		_, ok = s.ResolvePick(ticket)
		assert.False(t, ok)
	})

	t.Run("stale ticket from an earlier pick", func(t *testing.T) {
		s := newTestStore()
		s.Add("A")
		old, _ := s.BeginPick()
		require.True(t, s.CancelPick())

		current, err := s.BeginPick()
		require.NoError(t, err)

		_, ok := s.ResolvePick(old)
		assert.False(t, ok)
		assert.Equal(t, domain.StateSelecting, s.State())

		_, ok = s.ResolvePick(current)
		assert.True(t, ok)
	})

	t.Run("picked option is a member of the list", func(t *testing.T) {
		s := newTestStore()
		for _, text := range []string{"A", "B", "C", "D"} {
			s.Add(text)
		}
		for i := 0; i < 100; i++ {
			ticket, err := s.BeginPick()
			require.NoError(t, err)
			picked, ok := s.ResolvePick(ticket)
			require.True(t, ok)
			assert.Contains(t, s.Options(), picked)
		}
	})
}

func TestResolvePick_Distribution(t *testing.T) {
	s := newTestStore()
	s.Add("Tacos")
	s.Add("Burgers")

	counts := make(map[string]int)
	const trials = 1000
	for i := 0; i < trials; i++ {
		ticket, err := s.BeginPick()
		require.NoError(t, err)
		picked, ok := s.ResolvePick(ticket)
		require.True(t, ok)
		counts[picked.Text]++
	}

	assert.Len(t, counts, 2)
	assert.Greater(t, counts["Tacos"], trials/4)
	assert.Greater(t, counts["Burgers"], trials/4)
}

func TestCancelPick(t *testing.T) {
	s := newTestStore()
	assert.False(t, s.CancelPick(), "nothing pending")

	s.Add("A")
	ticket, _ := s.BeginPick()
	assert.True(t, s.CancelPick())
	assert.Equal(t, domain.StateIdle, s.State())

	_, ok := s.ResolvePick(ticket)
	assert.False(t, ok)
	assert.Equal(t, 1, s.Len())
}

func TestObserver(t *testing.T) {
	var events []Event
	s := New(fixedRand(0),
		WithIDFunc(counterIDs()),
		WithObserver(func(e Event) { events = append(events, e) }),
	)

	a, _ := s.Add("A")
	s.Add("   ")
	ticket, _ := s.BeginPick()
	s.ResolvePick(ticket)
	s.Remove(a.ID)
	s.Remove("missing")
	s.ClearAll()

	kinds := make([]EventKind, len(events))
	for i, e := range events {
		kinds[i] = e.Kind
	}
	assert.Equal(t, []EventKind{
		EventAdded, EventPickStarted, EventPickResolved, EventRemoved, EventCleared,
	}, kinds)

	require.NotNil(t, events[2].Option)
	assert.Equal(t, a.ID, events[2].Option.ID)
	assert.Equal(t, domain.StateSelected, events[2].State)
	assert.Equal(t, domain.StateIdle, events[3].State)
}
