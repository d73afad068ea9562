// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package theme

import "github.com/charmbracelet/lipgloss"

var (
	Brand   = lipgloss.Color("#e50914")
	Primary = lipgloss.AdaptiveColor{Light: "#b20710", Dark: "#e50914"}
	Accent  = lipgloss.AdaptiveColor{Light: "#1a7f37", Dark: "#46d369"}

	OnPrimary = lipgloss.AdaptiveColor{Light: "231", Dark: "231"}

	Text       = lipgloss.AdaptiveColor{Light: "235", Dark: "255"}
	TextMuted  = lipgloss.AdaptiveColor{Light: "238", Dark: "250"}
	TextSubtle = lipgloss.AdaptiveColor{Light: "240", Dark: "244"}
	Line       = lipgloss.AdaptiveColor{Light: "245", Dark: "238"}
	Surface    = lipgloss.AdaptiveColor{Light: "254", Dark: "235"}
	Raised     = lipgloss.AdaptiveColor{Light: "252", Dark: "237"}
	Danger     = lipgloss.AdaptiveColor{Light: "160", Dark: "203"}
)
