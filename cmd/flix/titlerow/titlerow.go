// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package titlerow

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/terminal-games/flix/cmd/flix/theme"
	"github.com/terminal-games/flix/pkg/catalog"
)

const (
	CardWidth  = 24
	CardHeight = 9
	CardGap    = 1

	// Height is the rendered height of a row including its heading.
	Height = CardHeight + 1

	scrollCards  = 2
	animDuration = 300 * time.Millisecond
)

type Labels struct {
	Play string
	Info string
}

type Styles struct {
	Heading        lipgloss.Style
	HeadingFocused lipgloss.Style
	Arrow          lipgloss.Style
	OverlayTitle   lipgloss.Style
	OverlayBody    lipgloss.Style
	Rating         lipgloss.Style
	Year           lipgloss.Style
	PlayButton     lipgloss.Style
	InfoButton     lipgloss.Style
	Overlay        lipgloss.Color
}

func DefaultStyles() Styles {
	return Styles{
		Heading:        lipgloss.NewStyle().Foreground(theme.TextMuted).Bold(true),
		HeadingFocused: lipgloss.NewStyle().Foreground(theme.Text).Bold(true),
		Arrow:          lipgloss.NewStyle().Foreground(theme.Text).Bold(true),
		OverlayTitle:   lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true),
		OverlayBody:    lipgloss.NewStyle().Foreground(lipgloss.Color("#d1d5db")),
		Rating:         lipgloss.NewStyle().Foreground(lipgloss.Color("#46d369")).Bold(true),
		Year:           lipgloss.NewStyle().Foreground(lipgloss.Color("#9ca3af")),
		PlayButton:     lipgloss.NewStyle().Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color("#ffffff")).Bold(true),
		InfoButton:     lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#4b5563")),
		Overlay:        lipgloss.Color("#141414"),
	}
}

// Model is one horizontally scrolling row of title cards.
type Model struct {
	Key      string
	Heading  string
	Titles   []catalog.Title
	Focused  bool
	Selected int
	Hovered  int
	Styles   Styles
	Labels   Labels

	zone        *zone.Manager
	width       int
	scrollX     float64
	animating   bool
	animStartX  float64
	animTargetX float64
	animStart   time.Time
}

func New(row catalog.Row, zoneManager *zone.Manager) Model {
	return Model{
		Key:      row.Key,
		Heading:  row.Heading,
		Titles:   row.Titles,
		Selected: 0,
		Hovered:  -1,
		Styles:   DefaultStyles(),
		Labels:   Labels{Play: "Play", Info: "Info"},
		zone:     zoneManager,
	}
}

type tickMsg struct {
	key string
}

func (m Model) tickCmd() tea.Cmd {
	key := m.Key
	return tea.Tick(16*time.Millisecond, func(time.Time) tea.Msg {
		return tickMsg{key: key}
	})
}

// SetWidth records the viewport width used by scrolling.
func (m *Model) SetWidth(width int) {
	m.width = width
	target := m.clamp(m.animTargetX)
	if m.animating {
		m.animTargetX = target
	} else {
		m.scrollX = m.clamp(m.scrollX)
		m.animTargetX = m.scrollX
	}
}

// SetTitles swaps the row's titles (e.g. after a search) and resets scroll.
func (m *Model) SetTitles(titles []catalog.Title) {
	m.Titles = titles
	m.Hovered = -1
	if m.Selected >= len(titles) {
		m.Selected = 0
	}
	m.scrollX = 0
	m.animTargetX = 0
	m.animating = false
}

func (m Model) SelectedTitle() (catalog.Title, bool) {
	if m.Selected < 0 || m.Selected >= len(m.Titles) {
		return catalog.Title{}, false
	}
	return m.Titles[m.Selected], true
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if msg.key != m.Key || !m.animating {
			return m, nil
		}
		p := m.animProgress()
		if p >= 1.0 {
			m.scrollX = m.animTargetX
			m.animating = false
			return m, nil
		}
		t := easeOutCubic(p)
		m.scrollX = m.animStartX + (m.animTargetX-m.animStartX)*t
		return m, m.tickCmd()
	}
	return m, nil
}

// HandleMouse reports whether the event landed on this row.
func (m Model) HandleMouse(msg tea.MouseMsg) (Model, tea.Cmd, bool) {
	if m.zone == nil {
		return m, nil, false
	}
	switch msg.Action {
	case tea.MouseActionMotion:
		prev := m.Hovered
		m.Hovered = m.cardAt(msg)
		return m, nil, m.Hovered >= 0 || prev >= 0
	case tea.MouseActionRelease:
		if m.zone.Get(m.zoneID("left")).InBounds(msg) {
			next, cmd := m.Scroll(-1)
			return next, cmd, true
		}
		if m.zone.Get(m.zoneID("right")).InBounds(msg) {
			next, cmd := m.Scroll(1)
			return next, cmd, true
		}
		if i := m.cardAt(msg); i >= 0 {
			m.Selected = i
			return m, nil, true
		}
	}
	return m, nil, false
}

func (m Model) cardAt(msg tea.MouseMsg) int {
	for i := range m.Titles {
		if m.zone.Get(m.zoneID(fmt.Sprint(i))).InBounds(msg) {
			return i
		}
	}
	return -1
}

// Scroll pages the row by a couple of cards in dir (-1 left, 1 right).
func (m Model) Scroll(dir int) (Model, tea.Cmd) {
	step := float64(scrollCards * (CardWidth + CardGap))
	return m.scrollTo(m.animTargetX + float64(dir)*step)
}

// MoveSelection moves the keyboard cursor and scrolls it into view.
func (m Model) MoveSelection(delta int) (Model, tea.Cmd) {
	if len(m.Titles) == 0 {
		return m, nil
	}
	next := m.Selected + delta
	if next < 0 {
		next = 0
	}
	if next >= len(m.Titles) {
		next = len(m.Titles) - 1
	}
	if next == m.Selected {
		return m, nil
	}
	m.Selected = next

	left := float64(next * (CardWidth + CardGap))
	right := left + CardWidth
	target := m.animTargetX
	switch {
	case left < target:
		target = left
	case right > target+float64(m.width):
		target = right - float64(m.width)
	}
	return m.scrollTo(target)
}

func (m Model) scrollTo(x float64) (Model, tea.Cmd) {
	x = m.clamp(x)
	if x == m.animTargetX && !m.animating {
		return m, nil
	}
	m.animStartX = m.scrollX
	m.animTargetX = x
	m.animStart = time.Now()
	m.animating = true
	return m, m.tickCmd()
}

func (m Model) stripWidth() int {
	n := len(m.Titles)
	if n == 0 {
		return 0
	}
	return n*CardWidth + (n-1)*CardGap
}

func (m Model) maxScroll() float64 {
	over := m.stripWidth() - m.width
	if over < 0 {
		return 0
	}
	return float64(over)
}

func (m Model) clamp(x float64) float64 {
	return math.Max(0, math.Min(x, m.maxScroll()))
}

func (m Model) CanScrollLeft() bool {
	return m.animTargetX > 0
}

func (m Model) CanScrollRight() bool {
	return m.animTargetX < m.maxScroll()
}

func (m Model) animProgress() float64 {
	if !m.animating {
		return 1.0
	}
	p := float64(time.Since(m.animStart)) / float64(animDuration)
	if p > 1.0 {
		return 1.0
	}
	return p
}

// View renders the heading and the visible slice of the card strip.
func (m Model) View(width int) string {
	heading := m.Styles.Heading.Render(m.Heading)
	if m.Focused {
		heading = m.Styles.HeadingFocused.Render(m.Heading)
	}
	if len(m.Titles) == 0 || width <= 0 {
		return heading
	}

	cards := make([][]string, len(m.Titles))
	for i, title := range m.Titles {
		var card string
		if i == m.Hovered || (m.Focused && i == m.Selected) {
			card = m.renderOverlay(title)
		} else {
			card = renderPoster(title)
		}
		if m.zone != nil {
			card = m.zone.Mark(m.zoneID(fmt.Sprint(i)), card)
		}
		cards[i] = strings.Split(card, "\n")
	}

	gap := strings.Repeat(" ", CardGap)
	offset := int(math.Round(m.scrollX))
	rows := make([]string, CardHeight)
	for y := range rows {
		var line strings.Builder
		for i := range cards {
			if i > 0 {
				line.WriteString(gap)
			}
			line.WriteString(getLineOrEmpty(cards[i], y))
		}
		rows[y] = ansi.Cut(line.String(), offset, offset+width)
	}

	if m.Focused || m.Hovered >= 0 {
		mid := CardHeight / 2
		if m.CanScrollLeft() {
			rows[mid] = m.arrow("left", "‹") + ansi.Cut(rows[mid], 1, width)
		}
		if m.CanScrollRight() && width > 1 {
			rows[mid] = ansi.Truncate(rows[mid], width-1, "") + m.arrow("right", "›")
		}
	}

	return heading + "\n" + strings.Join(rows, "\n")
}

func (m Model) arrow(id, glyph string) string {
	s := m.Styles.Arrow.Background(m.Styles.Overlay).Render(glyph)
	if m.zone != nil {
		s = m.zone.Mark(m.zoneID(id), s)
	}
	return s
}

func (m Model) renderOverlay(title catalog.Title) string {
	bg := m.Styles.Overlay
	fill := lipgloss.NewStyle().Background(bg)
	inner := CardWidth - 2

	name := m.Styles.OverlayTitle.Background(bg).Render(ansi.Truncate(title.Name, inner, "…"))
	desc := wrapLines(title.Description, inner)
	if len(desc) > CardHeight-5 {
		desc = desc[:CardHeight-5]
	}
	meta := m.Styles.Rating.Background(bg).Render(title.Rating) + fill.Render(" ") + m.Styles.Year.Background(bg).Render(title.Year)
	buttons := m.Styles.PlayButton.Render(" ▶ "+m.Labels.Play+" ") + fill.Render(" ") + m.Styles.InfoButton.Render(" ⓘ "+m.Labels.Info+" ")

	lines := make([]string, 0, CardHeight)
	lines = append(lines, "", name)
	for _, d := range desc {
		lines = append(lines, m.Styles.OverlayBody.Background(bg).Render(d))
	}
	for len(lines) < CardHeight-2 {
		lines = append(lines, "")
	}
	lines = append(lines, meta, buttons)

	for i, l := range lines {
		lines[i] = fill.Render(" ") + padTo(l, inner, fill) + fill.Render(" ")
	}
	return strings.Join(lines, "\n")
}

// renderPoster paints a vertical gradient between the title's two art
// colors with the name on the middle line.
func renderPoster(title catalog.Title) string {
	from, err := colorful.Hex(title.Art.From)
	if err != nil {
		from = colorful.Color{}
	}
	to, err := colorful.Hex(title.Art.To)
	if err != nil {
		to = colorful.Color{}
	}

	label := ansi.Truncate(title.Name, CardWidth-2, "…")
	lines := make([]string, CardHeight)
	for y := range lines {
		t := float64(y) / float64(CardHeight-1)
		bg := lipgloss.Color(from.BlendLab(to, t).Clamped().Hex())
		style := lipgloss.NewStyle().Background(bg)
		if y != CardHeight-2 {
			lines[y] = style.Render(strings.Repeat(" ", CardWidth))
			continue
		}
		text := style.Foreground(lipgloss.Color("#ffffff")).Bold(true)
		w := lipgloss.Width(label)
		pad := (CardWidth - w) / 2
		lines[y] = style.Render(strings.Repeat(" ", pad)) + text.Render(label) + style.Render(strings.Repeat(" ", CardWidth-w-pad))
	}
	return strings.Join(lines, "\n")
}

func (m Model) zoneID(part string) string {
	return "row-" + m.Key + "-" + part
}

func easeOutCubic(t float64) float64 {
	return 1 - (1-t)*(1-t)*(1-t)
}

func getLineOrEmpty(lines []string, i int) string {
	if i < len(lines) {
		return lines[i]
	}
	return strings.Repeat(" ", CardWidth)
}

func padTo(line string, width int, fill lipgloss.Style) string {
	w := lipgloss.Width(line)
	if w >= width {
		return ansi.Truncate(line, width, "")
	}
	return line + fill.Render(strings.Repeat(" ", width-w))
}

func wrapLines(text string, width int) []string {
	if text == "" || width <= 0 {
		return nil
	}
	return strings.Split(lipgloss.NewStyle().Width(width).Render(text), "\n")
}
