// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRows_Shape(t *testing.T) {
	rows := Rows()
	require.Len(t, rows, 3)

	seen := map[int]bool{}
	for _, row := range rows {
		assert.Len(t, row.Titles, 6, row.Heading)
		for _, title := range row.Titles {
			assert.False(t, seen[title.ID], "duplicate id %d", title.ID)
			seen[title.ID] = true
			assert.NotEmpty(t, title.Art.From)
		}
	}
	assert.Equal(t, "Trending Now", rows[0].Heading)
	assert.Equal(t, "Stranger Things", rows[0].Titles[0].Name)
}

func TestSearch_BlankQueryReturnsEverything(t *testing.T) {
	rows := Rows()
	assert.Equal(t, rows, Search(rows, "   "))
}

func TestSearch_MatchesNameAndDescription(t *testing.T) {
	out := Search(Rows(), "heist")
	require.Len(t, out, 1)
	require.Len(t, out[0].Titles, 1)
	assert.Equal(t, "Money Heist", out[0].Titles[0].Name)

	out = Search(Rows(), "TIME")
	var got []string
	for _, row := range out {
		for _, title := range row.Titles {
			got = append(got, title.Name)
		}
	}
	assert.ElementsMatch(t, []string{"Dark", "The Adam Project"}, got)
}

func TestSearch_FoldsDiacritics(t *testing.T) {
	out := Search(Rows(), "Lupín")
	require.Len(t, out, 1)
	assert.Equal(t, "Lupin", out[0].Titles[0].Name)
}

func TestSearch_NoMatch(t *testing.T) {
	assert.Empty(t, Search(Rows(), "zzzz"))
}

func TestSearch_DoesNotMutateInput(t *testing.T) {
	rows := Rows()
	Search(rows, "ozark")
	assert.Len(t, rows[0].Titles, 6)
}
