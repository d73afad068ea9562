// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package bubblewrap

import (
	"io"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// NewProgram starts model on the process terminal. Callers append their own
// options (alt screen, mouse mode) after the defaults.
func NewProgram(model tea.Model, opts ...tea.ProgramOption) *tea.Program {
	return tea.NewProgram(model, append([]tea.ProgramOption{tea.WithInput(os.Stdin), tea.WithOutput(os.Stdout)}, opts...)...)
}

// MakeRenderer builds a lipgloss renderer for out using the given process
// environment. When COLORFGBG names the background, its luminance decides
// dark mode instead of querying the terminal.
func MakeRenderer(out io.Writer, env []string) *lipgloss.Renderer {
	e := environ(env)
	r := lipgloss.NewRenderer(out, termenv.WithEnvironment(e), termenv.WithColorCache(true))
	if dark, ok := darkBackground(e.Getenv("COLORFGBG")); ok {
		r.SetHasDarkBackground(dark)
	}
	return r
}

// darkBackground interprets a COLORFGBG value such as "15;0" (fg;bg) or
// "15;default;0".
func darkBackground(colorfgbg string) (bool, bool) {
	if colorfgbg == "" {
		return false, false
	}
	parts := strings.Split(colorfgbg, ";")
	n, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil || n < 0 || n > 255 {
		return false, false
	}
	c := termenv.ConvertToRGB(termenv.ANSI256Color(n))
	_, _, l := c.Hsl()
	return l < 0.5, true
}

type environ []string

var _ termenv.Environ = environ(nil)

// Environ implements termenv.Environ.
func (e environ) Environ() []string {
	return e
}

// Getenv implements termenv.Environ.
func (e environ) Getenv(k string) string {
	for _, v := range e {
		if strings.HasPrefix(v, k+"=") {
			return v[len(k)+1:]
		}
	}
	return ""
}
