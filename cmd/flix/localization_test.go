// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestLocalizerMatchesRegionalTags(t *testing.T) {
	assert.Equal(t, language.German, newLocalizer("de-AT").tag)
	assert.Equal(t, language.English, newLocalizer("en-GB").tag)
	assert.Equal(t, language.English, newLocalizer("fr").tag)
	assert.Equal(t, language.English, newLocalizer("not a tag").tag)
}

func TestSetPreferredReportsChange(t *testing.T) {
	l := newLocalizer("en")
	assert.False(t, l.SetPreferred([]language.Tag{language.AmericanEnglish}))
	assert.True(t, l.SetPreferred([]language.Tag{language.German}))
	assert.Equal(t, "Kontoeinstellungen", l.Text(textAccountSettings))
	assert.True(t, l.SetPreferred(nil))
	assert.Equal(t, "Account Settings", l.Text(textAccountSettings))
}

func TestGermanCoversEveryKey(t *testing.T) {
	for k := range english {
		_, ok := german[k]
		assert.True(t, ok, "missing german text for %q", k)
	}
	for k := range german {
		_, ok := english[k]
		assert.True(t, ok, "german text %q has no english source", k)
	}
}

func TestTextFallsBackToKey(t *testing.T) {
	l := newLocalizer("de")
	assert.Equal(t, "no.such.key", l.Text(textKey("no.such.key")))
	assert.Equal(t, "3 von 5 Profilen", l.Textf(textProfilesCount, 3, 5))
}

func TestRowHeading(t *testing.T) {
	l := newLocalizer("en")
	assert.Equal(t, "Trending Now", l.RowHeading("trending", "x"))
	assert.Equal(t, "Documentaries", l.RowHeading("docs", "Documentaries"))
}
