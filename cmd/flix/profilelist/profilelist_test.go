// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package profilelist

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func items() []Item {
	return []Item{
		{ID: 1, Name: "John", Description: "All maturity ratings"},
		{ID: 2, Name: "Sarah", Description: "All maturity ratings"},
		{ID: 3, Name: "Kids", Description: "All maturity ratings"},
	}
}

func TestKeysMoveSelectionWithinBounds(t *testing.T) {
	m := New(items(), nil, "p-")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.Selected)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.Selected)
	assert.NotNil(t, cmd, "selection change animates")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	assert.Equal(t, 2, m.Selected)
	assert.Nil(t, cmd)
}

func TestSetItems_KeepsSelectedID(t *testing.T) {
	m := New(items(), nil, "p-")
	m.Selected = 2

	m.SetItems([]Item{{ID: 3, Name: "Kids"}, {ID: 9, Name: "New"}})
	assert.Equal(t, 0, m.Selected)
	it, ok := m.SelectedItem()
	require.True(t, ok)
	assert.Equal(t, int64(3), it.ID)
}

func TestSetItems_ClampsWhenSelectedRemoved(t *testing.T) {
	m := New(items(), nil, "p-")
	m.Selected = 2

	m.SetItems(items()[:2])
	assert.Equal(t, 1, m.Selected)

	m.SetItems(nil)
	_, ok := m.SelectedItem()
	assert.False(t, ok)
	assert.Empty(t, m.View(40))
}

func TestView_HeightAndEditor(t *testing.T) {
	m := New(items(), nil, "p-")
	view := m.View(60)
	lines := strings.Split(view, "\n")
	require.Len(t, lines, m.Height())
	for _, line := range lines {
		assert.LessOrEqual(t, ansi.StringWidth(line), 60)
	}
	assert.Contains(t, view, "Sarah")

	m.EditingID = 2
	m.Editor = "> Sar_"
	view = m.View(60)
	assert.Contains(t, view, "> Sar_")
	assert.NotContains(t, view, "Sarah")
}

func TestHandleMouse_WithoutZonesIsNoop(t *testing.T) {
	m := New(items(), nil, "p-")
	m, cmd := m.HandleMouse(tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.Selected)
}

func TestBarCharForRow(t *testing.T) {
	assert.Equal(t, barVertical, barCharForRow(0, 0, 2))
	assert.Equal(t, barVertical, barCharForRow(1, 0, 2))
	assert.Equal(t, "", barCharForRow(2, 0, 2))
	assert.Equal(t, barTop, barCharForRow(0, 0.6, 2))
	assert.Equal(t, barBottom, barCharForRow(1, 0, 1.4))
}
