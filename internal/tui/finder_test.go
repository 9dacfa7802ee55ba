package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinderModel_ListsOptions(t *testing.T) {
	s := newTestStore("Pizza", "Sushi")
	finder := NewFinderModel(s.Options())

	model, _ := finder.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	finder = model.(FinderModel)

	view := finder.View()
	assert.Contains(t, view, "Pizza")
	assert.Contains(t, view, "Sushi")
}

func TestFinderModel_EnterSelectsHighlighted(t *testing.T) {
	s := newTestStore("Pizza", "Sushi")
	finder := NewFinderModel(s.Options())

	model, _ := finder.Update(tea.KeyMsg{Type: tea.KeyDown})
	finder = model.(FinderModel)

	_, cmd := finder.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, FinderClosedMsg{OptionID: "card-2"}, cmd())
}

func TestFinderModel_QuitCloses(t *testing.T) {
	finder := NewFinderModel(newTestStore("Pizza").Options())

	_, cmd := finder.Update(keyRunes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, FinderClosedMsg{}, cmd())
}
