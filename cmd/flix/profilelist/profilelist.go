// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package profilelist

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/terminal-games/flix/cmd/flix/theme"
)

const (
	barVertical = "┃"
	barTop      = "╻"
	barBottom   = "╹"
	itemHeight  = 2
	itemGap     = 1
	avatarWidth = 5
)

type Item struct {
	ID          int64
	Name        string
	Description string
}

type Styles struct {
	Name         lipgloss.Style
	Description  lipgloss.Style
	NameSelected lipgloss.Style
	NameHover    lipgloss.Style
	Action       lipgloss.Style
	ActionHover  lipgloss.Style
	DeleteHover  lipgloss.Style
	Bar          lipgloss.Style
	BarHover     lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Name:         lipgloss.NewStyle().Foreground(theme.Text).Bold(true),
		Description:  lipgloss.NewStyle().Foreground(theme.TextSubtle),
		NameSelected: lipgloss.NewStyle().Foreground(theme.Primary).Bold(true),
		NameHover:    lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Underline(true),
		Action:       lipgloss.NewStyle().Foreground(theme.TextSubtle),
		ActionHover:  lipgloss.NewStyle().Foreground(theme.Text),
		DeleteHover:  lipgloss.NewStyle().Foreground(theme.Danger),
		Bar:          lipgloss.NewStyle().Foreground(theme.Primary),
		BarHover:     lipgloss.NewStyle().Foreground(theme.Line),
	}
}

type Labels struct {
	Edit   string
	Delete string
	Up     string
	Down   string
}

type KeyMap struct {
	Up   key.Binding
	Down key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
	}
}

type Model struct {
	Items    []Item
	Selected int
	Hovered  int
	Styles   Styles
	Keys     KeyMap
	Labels   Labels
	Duration time.Duration

	// EditingID names the item whose name line is replaced by Editor.
	EditingID int64
	Editor    string

	zone         *zone.Manager
	zonePrefix   string
	hoverAction  string
	startTop     float64
	startBottom  float64
	targetTop    float64
	targetBottom float64
	animStart    time.Time
	animating    bool
}

func New(items []Item, zoneManager *zone.Manager, zonePrefix string) Model {
	m := Model{
		Items:      items,
		Selected:   0,
		Hovered:    -1,
		Styles:     DefaultStyles(),
		Keys:       DefaultKeyMap(),
		Labels:     Labels{Edit: "edit", Delete: "delete", Up: "up", Down: "down"},
		Duration:   120 * time.Millisecond,
		zone:       zoneManager,
		zonePrefix: zonePrefix,
	}
	m.syncBarToSelection()
	return m
}

// EditRequestedMsg and DeleteRequestedMsg are emitted by the per-item
// action buttons.
type EditRequestedMsg struct{ ID int64 }

type DeleteRequestedMsg struct{ ID int64 }

// SetItems replaces the items, keeping the selection on the same id when it
// survives and clamping it otherwise.
func (m *Model) SetItems(items []Item) {
	var selectedID int64 = -1
	if cur, ok := m.SelectedItem(); ok {
		selectedID = cur.ID
	}
	m.Items = items
	m.Hovered = -1
	for i, it := range items {
		if it.ID == selectedID {
			m.Selected = i
			m.syncBarToSelection()
			return
		}
	}
	if m.Selected >= len(items) {
		m.Selected = len(items) - 1
	}
	if m.Selected < 0 && len(items) > 0 {
		m.Selected = 0
	}
	m.syncBarToSelection()
}

func (m Model) SelectedItem() (Item, bool) {
	if m.Selected < 0 || m.Selected >= len(m.Items) {
		return Item{}, false
	}
	return m.Items[m.Selected], true
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{m.Keys.Up, m.Keys.Down}
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{m.ShortHelp()}
}

func (m *Model) SetLabels(labels Labels) {
	m.Labels = labels
	m.Keys.Up.SetHelp("↑/k", labels.Up)
	m.Keys.Down.SetHelp("↓/j", labels.Down)
}

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(16*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.Up):
			return m.moveSelection(-1)
		case key.Matches(msg, m.Keys.Down):
			return m.moveSelection(1)
		}

	case tickMsg:
		if m.animating {
			if m.animProgress() >= 1.0 {
				m.startTop = m.targetTop
				m.startBottom = m.targetBottom
				m.animating = false
			} else {
				return m, tickCmd()
			}
		}
		return m, nil
	}

	return m, nil
}

func (m Model) HandleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if m.zone == nil {
		return m, nil
	}
	switch msg.Type {
	case tea.MouseWheelUp:
		return m.moveSelection(-1)
	case tea.MouseWheelDown:
		return m.moveSelection(1)
	}

	switch msg.Action {
	case tea.MouseActionMotion:
		m.Hovered = m.indexAtMouse(msg)
		m.hoverAction = m.actionAtMouse(msg)
		return m, nil
	case tea.MouseActionRelease:
		if action := m.actionAtMouse(msg); action != "" {
			index := m.indexAtMouse(msg)
			if index < 0 {
				return m, nil
			}
			id := m.Items[index].ID
			switch action {
			case "edit":
				return m, func() tea.Msg { return EditRequestedMsg{ID: id} }
			case "delete":
				return m, func() tea.Msg { return DeleteRequestedMsg{ID: id} }
			}
		}
		index := m.indexAtMouse(msg)
		if index >= 0 && index != m.Selected {
			m.Selected = index
			return m, m.startAnim(index)
		}
	}
	return m, nil
}

func (m Model) moveSelection(delta int) (Model, tea.Cmd) {
	if len(m.Items) == 0 {
		return m, nil
	}
	next := m.Selected + delta
	if next < 0 {
		next = 0
	}
	if next >= len(m.Items) {
		next = len(m.Items) - 1
	}
	if next == m.Selected {
		return m, nil
	}
	m.Selected = next
	return m, m.startAnim(next)
}

func (m *Model) syncBarToSelection() {
	if m.Selected < 0 || m.Selected >= len(m.Items) {
		m.animating = false
		return
	}
	top, bottom := itemBarEdges(m.Selected)
	m.startTop, m.startBottom = top, bottom
	m.targetTop, m.targetBottom = top, bottom
	m.animating = false
}

func (m *Model) startAnim(index int) tea.Cmd {
	curTop, curBottom := m.currentBarEdges()
	m.startTop = curTop
	m.startBottom = curBottom
	m.targetTop, m.targetBottom = itemBarEdges(index)
	m.animStart = time.Now()
	m.animating = true
	return tickCmd()
}

func itemBarEdges(index int) (float64, float64) {
	top := float64(index * (itemHeight + itemGap))
	return top, top + itemHeight
}

func (m Model) animProgress() float64 {
	if !m.animating {
		return 1.0
	}
	p := float64(time.Since(m.animStart)) / float64(m.Duration)
	if p > 1.0 {
		return 1.0
	}
	return p
}

func (m Model) currentBarEdges() (float64, float64) {
	t := easeOutCubic(m.animProgress())
	top := m.startTop + (m.targetTop-m.startTop)*t
	bottom := m.startBottom + (m.targetBottom-m.startBottom)*t
	return top, bottom
}

// Height is the number of lines View produces for the current items.
func (m Model) Height() int {
	if len(m.Items) == 0 {
		return 0
	}
	return len(m.Items)*(itemHeight+itemGap) - itemGap
}

func (m Model) View(width int) string {
	if width <= 0 || len(m.Items) == 0 {
		return ""
	}

	actions := m.Styles.Action.Render("✎ "+m.Labels.Edit) + "  " + m.Styles.Action.Render("✕ "+m.Labels.Delete)
	actionsWidth := lipgloss.Width(actions)
	contentWidth := width - 2 - avatarWidth - 1 - actionsWidth - 1
	if contentWidth < 4 {
		contentWidth = 4
	}

	barTop, barBottom := m.currentBarEdges()
	showBar := m.Selected >= 0 && m.Selected < len(m.Items)

	lines := make([]string, 0, m.Height())
	for i, item := range m.Items {
		if i > 0 {
			lines = append(lines, strings.Repeat(" ", width))
		}
		isSelected := i == m.Selected
		isHovered := i == m.Hovered
		avatar := renderAvatar(item)

		for row := 0; row < itemHeight; row++ {
			lineIndex := i*(itemHeight+itemGap) + row
			bar := " "
			if isHovered {
				bar = m.Styles.BarHover.Render(barVertical)
			}
			if showBar {
				if ch := barCharForRow(lineIndex, barTop, barBottom); ch != "" {
					bar = m.Styles.Bar.Render(ch)
				}
			}

			var content, right string
			if row == 0 {
				switch {
				case item.ID == m.EditingID && m.Editor != "":
					content = m.Editor
				case isSelected:
					content = m.Styles.NameSelected.Render(ansi.Truncate(item.Name, contentWidth, "…"))
				case isHovered:
					content = m.Styles.NameHover.Render(ansi.Truncate(item.Name, contentWidth, "…"))
				default:
					content = m.Styles.Name.Render(ansi.Truncate(item.Name, contentWidth, "…"))
				}
				right = m.renderActions(i, isHovered)
			} else {
				content = m.Styles.Description.Render(ansi.Truncate(item.Description, contentWidth, "…"))
			}

			content = lipgloss.NewStyle().Width(contentWidth).MaxWidth(contentWidth).Render(content)
			line := bar + " " + avatar[row] + " " + content + " " + right
			line = lipgloss.NewStyle().Width(width).MaxWidth(width).Render(line)
			if m.zone != nil {
				line = m.zone.Mark(m.rowZoneID(i, row), line)
			}
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderActions(index int, hovered bool) string {
	editStyle, deleteStyle := m.Styles.Action, m.Styles.Action
	if hovered && m.hoverAction == "edit" {
		editStyle = m.Styles.ActionHover
	}
	if hovered && m.hoverAction == "delete" {
		deleteStyle = m.Styles.DeleteHover
	}
	edit := editStyle.Render("✎ " + m.Labels.Edit)
	del := deleteStyle.Render("✕ " + m.Labels.Delete)
	if m.zone != nil {
		edit = m.zone.Mark(m.actionZoneID(index, "edit"), edit)
		del = m.zone.Mark(m.actionZoneID(index, "delete"), del)
	}
	return edit + "  " + del
}

var avatarColors = []string{"#e50914", "#f5c518", "#46d369", "#0071eb", "#b9090b", "#8c52ff"}

// renderAvatar draws a two-line tile tinted per profile with its initial.
func renderAvatar(item Item) [itemHeight]string {
	base, _ := colorful.Hex(avatarColors[int(uint64(item.ID)%uint64(len(avatarColors)))])
	dark := base.BlendLab(colorful.Color{}, 0.35).Clamped()
	initial := " "
	if r := []rune(strings.TrimSpace(item.Name)); len(r) > 0 {
		initial = strings.ToUpper(string(r[0]))
	}
	top := lipgloss.NewStyle().Background(lipgloss.Color(base.Hex())).Foreground(lipgloss.Color("#ffffff")).Bold(true)
	bottom := lipgloss.NewStyle().Background(lipgloss.Color(dark.Hex()))
	return [itemHeight]string{
		top.Render("  " + initial + "  "),
		bottom.Render(strings.Repeat(" ", avatarWidth)),
	}
}

func (m Model) indexAtMouse(msg tea.MouseMsg) int {
	for i := range m.Items {
		for row := 0; row < itemHeight; row++ {
			if m.zone.Get(m.rowZoneID(i, row)).InBounds(msg) {
				return i
			}
		}
	}
	return -1
}

func (m Model) actionAtMouse(msg tea.MouseMsg) string {
	for i := range m.Items {
		for _, action := range []string{"edit", "delete"} {
			if m.zone.Get(m.actionZoneID(i, action)).InBounds(msg) {
				return action
			}
		}
	}
	return ""
}

func (m Model) rowZoneID(index, row int) string {
	return fmt.Sprintf("%s%d-%d", m.zonePrefix, index, row)
}

func (m Model) actionZoneID(index int, action string) string {
	return fmt.Sprintf("%s%d-%s", m.zonePrefix, index, action)
}

func barCharForRow(row int, top, bottom float64) string {
	fRow := float64(row)
	if fRow+1 <= top || fRow >= bottom {
		return ""
	}
	topPartial := fRow < top
	bottomPartial := fRow+1 > bottom
	if topPartial && bottomPartial {
		return barVertical
	}
	if topPartial && top-fRow >= 0.5 {
		return barTop
	}
	if bottomPartial && bottom-fRow <= 0.5 {
		return barBottom
	}
	return barVertical
}

func easeOutCubic(t float64) float64 {
	return 1 - (1-t)*(1-t)*(1-t)
}
