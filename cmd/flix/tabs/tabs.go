// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package tabs

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/terminal-games/flix/cmd/flix/theme"
)

const (
	HeavyHorizontal = "━"
	HeavyLeft       = "╸"
	HeavyRight      = "╺"
)

// Tab is one settings section. Short replaces Title when the full labels do
// not fit the available width.
type Tab struct {
	ID    string
	Title string
	Short string
}

func (t Tab) label(compact bool) string {
	if compact && t.Short != "" {
		return t.Short
	}
	return t.Title
}

type Styles struct {
	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style
	HoverTab    lipgloss.Style
	ActiveBar   lipgloss.Style
	InactiveBar lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		ActiveTab: lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Padding(0, 2),
		InactiveTab: lipgloss.NewStyle().
			Foreground(theme.TextSubtle).
			Padding(0, 2),
		HoverTab: lipgloss.NewStyle().
			Foreground(theme.Text).
			Padding(0, 2),
		ActiveBar: lipgloss.NewStyle().
			Foreground(theme.Primary),
		InactiveBar: lipgloss.NewStyle().
			Foreground(theme.Line),
	}
}

// span is the underline position in cells, left inclusive and right
// exclusive.
type span struct {
	left, right float64
}

func (s span) lerp(to span, t float64) span {
	return span{
		left:  s.left + (to.left-s.left)*t,
		right: s.right + (to.right-s.right)*t,
	}
}

// Model is the settings tab bar. The underline glides to the active tab and
// the rule below the labels runs to the full width given to SetWidth.
type Model struct {
	Tabs     []Tab
	Active   int
	Hovered  int
	Styles   Styles
	Duration time.Duration

	zone       *zone.Manager
	zonePrefix string
	width      int
	compact    bool
	offsets    []int
	widths     []int
	from       span
	to         span
	animStart  time.Time
	animating  bool
}

func New(tabs []Tab, zoneManager *zone.Manager, zonePrefix string) Model {
	m := Model{
		Tabs:       tabs,
		Hovered:    -1,
		Styles:     DefaultStyles(),
		Duration:   200 * time.Millisecond,
		zone:       zoneManager,
		zonePrefix: zonePrefix,
	}
	m.layout()
	return m
}

// TotalWidth is the width of the labels alone.
func (m Model) TotalWidth() int {
	total := 0
	for _, w := range m.widths {
		total += w
	}
	return total
}

// SetWidth sets the rule width and falls back to short labels when the
// full ones overflow it.
func (m *Model) SetWidth(width int) {
	m.width = width
	full := 0
	for _, tab := range m.Tabs {
		full += lipgloss.Width(m.Styles.ActiveTab.Render(tab.Title))
	}
	compact := width > 0 && full > width
	if compact == m.compact && len(m.widths) == len(m.Tabs) {
		return
	}
	m.compact = compact
	m.layout()
}

func (m *Model) layout() {
	m.offsets = make([]int, len(m.Tabs))
	m.widths = make([]int, len(m.Tabs))
	pos := 0
	for i, tab := range m.Tabs {
		m.offsets[i] = pos
		m.widths[i] = lipgloss.Width(m.Styles.ActiveTab.Render(tab.label(m.compact)))
		pos += m.widths[i]
	}
	if m.Active >= 0 && m.Active < len(m.Tabs) {
		m.from = m.spanOf(m.Active)
		m.to = m.from
	}
	m.animating = false
}

// spanOf underlines the label text, leaving one padding cell on each side.
func (m Model) spanOf(index int) span {
	return span{
		left:  float64(m.offsets[index]) + 1,
		right: float64(m.offsets[index]+m.widths[index]) - 1,
	}
}

func easeOutCubic(t float64) float64 {
	return 1 - (1-t)*(1-t)*(1-t)
}

func (m Model) progress() float64 {
	if !m.animating || m.Duration <= 0 {
		return 1
	}
	p := float64(time.Since(m.animStart)) / float64(m.Duration)
	if p > 1 {
		return 1
	}
	return p
}

func (m Model) underline() span {
	return m.from.lerp(m.to, easeOutCubic(m.progress()))
}

func (m *Model) SetActive(index int) tea.Cmd {
	if index < 0 || index >= len(m.Tabs) || index == m.Active {
		return nil
	}
	m.from = m.underline()
	m.to = m.spanOf(index)
	m.animStart = time.Now()
	m.animating = true
	m.Active = index

	tab := m.Tabs[index]
	return tea.Batch(tickCmd(), func() tea.Msg {
		return TabChangedMsg{Index: index, Tab: tab}
	})
}

func (m *Model) SetActiveByID(id string) tea.Cmd {
	for i, tab := range m.Tabs {
		if tab.ID == id {
			return m.SetActive(i)
		}
	}
	return nil
}

func (m *Model) Next() tea.Cmd {
	if len(m.Tabs) == 0 {
		return nil
	}
	return m.SetActive((m.Active + 1) % len(m.Tabs))
}

func (m *Model) Prev() tea.Cmd {
	if len(m.Tabs) == 0 {
		return nil
	}
	return m.SetActive((m.Active + len(m.Tabs) - 1) % len(m.Tabs))
}

func (m Model) ActiveTab() Tab {
	if m.Active >= 0 && m.Active < len(m.Tabs) {
		return m.Tabs[m.Active]
	}
	return Tab{}
}

type TickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(16*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// TabChangedMsg is sent after the active tab changed, by key or by click.
type TabChangedMsg struct {
	Index int
	Tab   Tab
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) tabAt(msg tea.MouseMsg) int {
	for i, tab := range m.Tabs {
		if m.zone.Get(m.zonePrefix + tab.ID).InBounds(msg) {
			return i
		}
	}
	return -1
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		if m.zone == nil {
			return m, nil
		}
		switch msg.Action {
		case tea.MouseActionMotion:
			m.Hovered = m.tabAt(msg)
		case tea.MouseActionRelease:
			if i := m.tabAt(msg); i >= 0 {
				return m, m.SetActive(i)
			}
		}

	case TickMsg:
		if !m.animating {
			return m, nil
		}
		if m.progress() >= 1 {
			m.from = m.to
			m.animating = false
			return m, nil
		}
		return m, tickCmd()
	}
	return m, nil
}

func (m Model) View() string {
	if len(m.Tabs) == 0 {
		return ""
	}

	var row strings.Builder
	for i, tab := range m.Tabs {
		style := m.Styles.InactiveTab
		switch {
		case i == m.Active:
			style = m.Styles.ActiveTab
		case i == m.Hovered:
			style = m.Styles.HoverTab
		}
		label := style.Render(tab.label(m.compact))
		if m.zone != nil {
			label = m.zone.Mark(m.zonePrefix+tab.ID, label)
		}
		row.WriteString(label)
	}

	ruleWidth := m.TotalWidth()
	if m.width > ruleWidth {
		ruleWidth = m.width
	}
	return row.String() + "\n" + m.renderRule(ruleWidth)
}

func (m Model) renderRule(width int) string {
	if width <= 0 {
		return ""
	}
	u := m.underline()
	l := int(u.left + 0.5)
	r := int(u.right + 0.5)
	if l < 0 {
		l = 0
	}
	if r > width {
		r = width
	}

	// Group runs of the same glyph so each style is rendered once per run.
	var rule strings.Builder
	rule.WriteString(m.Styles.InactiveBar.Render(strings.Repeat(HeavyHorizontal, max(l-1, 0))))
	if l > 0 {
		rule.WriteString(m.Styles.InactiveBar.Render(HeavyLeft))
	}
	rule.WriteString(m.Styles.ActiveBar.Render(strings.Repeat(HeavyHorizontal, max(r-l, 0))))
	if r < width {
		rule.WriteString(m.Styles.InactiveBar.Render(HeavyRight))
		rule.WriteString(m.Styles.InactiveBar.Render(strings.Repeat(HeavyHorizontal, max(width-r-1, 0))))
	}
	return rule.String()
}
