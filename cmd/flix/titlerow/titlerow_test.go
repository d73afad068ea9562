// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package titlerow

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terminal-games/flix/pkg/catalog"
)

func newRow(width int) Model {
	m := New(catalog.Rows()[0], nil)
	m.SetWidth(width)
	return m
}

func TestMoveSelection_ScrollsIntoView(t *testing.T) {
	m := newRow(60)

	m, cmd := m.MoveSelection(1)
	assert.Equal(t, 1, m.Selected)
	assert.Nil(t, cmd, "second card is already visible")
	assert.Equal(t, 0.0, m.animTargetX)

	m, cmd = m.MoveSelection(1)
	assert.Equal(t, 2, m.Selected)
	require.NotNil(t, cmd)
	assert.Equal(t, float64(2*(CardWidth+CardGap)+CardWidth-60), m.animTargetX)

	m, _ = m.MoveSelection(-2)
	assert.Equal(t, 0, m.Selected)
	assert.Equal(t, 0.0, m.animTargetX)
}

func TestMoveSelection_ClampsAtEnds(t *testing.T) {
	m := newRow(60)
	m, cmd := m.MoveSelection(-1)
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.Selected)

	m, _ = m.MoveSelection(100)
	assert.Equal(t, len(m.Titles)-1, m.Selected)
	assert.Equal(t, m.maxScroll(), m.animTargetX)
}

func TestScroll_ClampsToStrip(t *testing.T) {
	m := newRow(60)
	assert.False(t, m.CanScrollLeft())
	assert.True(t, m.CanScrollRight())

	for i := 0; i < 5; i++ {
		m, _ = m.Scroll(1)
	}
	assert.Equal(t, m.maxScroll(), m.animTargetX)
	assert.False(t, m.CanScrollRight())

	for i := 0; i < 5; i++ {
		m, _ = m.Scroll(-1)
	}
	assert.Equal(t, 0.0, m.animTargetX)
}

func TestScroll_NoRoomWhenStripFits(t *testing.T) {
	m := newRow(400)
	m, cmd := m.Scroll(1)
	assert.Nil(t, cmd)
	assert.Equal(t, 0.0, m.animTargetX)
}

func TestTickSettlesOnlyOwnRow(t *testing.T) {
	m := newRow(60)
	m, _ = m.Scroll(1)
	require.True(t, m.animating)

	other, cmd := m.Update(tickMsg{key: "popular"})
	assert.Nil(t, cmd)
	assert.True(t, other.animating)

	m.animStart = m.animStart.Add(-animDuration)
	m, cmd = m.Update(tickMsg{key: m.Key})
	assert.Nil(t, cmd)
	assert.False(t, m.animating)
	assert.Equal(t, m.animTargetX, m.scrollX)
}

func TestView_FillsWidth(t *testing.T) {
	m := newRow(60)
	m.Focused = true
	out := m.View(60)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, Height)
	assert.Contains(t, lines[0], "Trending Now")
	for _, l := range lines[1:] {
		assert.Equal(t, 60, ansi.StringWidth(l))
	}
	assert.Contains(t, out, "Play")
}

func TestView_UnfocusedShowsPosterNames(t *testing.T) {
	m := newRow(200)
	out := m.View(200)
	assert.Contains(t, out, "Stranger Things")
	assert.NotContains(t, out, "Play")
}

func TestSetTitles_ResetsScroll(t *testing.T) {
	m := newRow(60)
	m, _ = m.MoveSelection(5)
	m.SetTitles(catalog.Rows()[0].Titles[:1])
	assert.Equal(t, 0, m.Selected)
	assert.Equal(t, 0.0, m.animTargetX)
	assert.False(t, m.CanScrollRight())
}
