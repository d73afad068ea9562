// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package bubblewrap

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDarkBackground(t *testing.T) {
	tests := []struct {
		in       string
		dark, ok bool
	}{
		{"15;0", true, true},
		{"0;15", false, true},
		{"15;default;0", true, true},
		{"", false, false},
		{"15;default", false, false},
		{"15;999", false, false},
	}
	for _, tt := range tests {
		dark, ok := darkBackground(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.dark, dark, tt.in)
	}
}

func TestEnvironGetenv(t *testing.T) {
	e := environ{"TERM=xterm-256color", "COLORFGBG=0;15", "EMPTY="}
	assert.Equal(t, "xterm-256color", e.Getenv("TERM"))
	assert.Equal(t, "0;15", e.Getenv("COLORFGBG"))
	assert.Equal(t, "", e.Getenv("EMPTY"))
	assert.Equal(t, "", e.Getenv("MISSING"))
}

func TestMakeRenderer_UsesColorFGBG(t *testing.T) {
	r := MakeRenderer(&bytes.Buffer{}, []string{"COLORFGBG=0;15"})
	assert.False(t, r.HasDarkBackground())

	r = MakeRenderer(&bytes.Buffer{}, []string{"COLORFGBG=15;0"})
	assert.True(t, r.HasDarkBackground())
}
