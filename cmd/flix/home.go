// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/terminal-games/flix/cmd/flix/theme"
	"github.com/terminal-games/flix/cmd/flix/titlerow"
	"github.com/terminal-games/flix/pkg/catalog"
	"github.com/terminal-games/flix/pkg/session"
)

const (
	heroHeight    = 9
	heroTextWidth = 60
	menuWidth     = 20
)

type menuItem int

const (
	menuAccount menuItem = iota
	menuHelpCenter
	menuSignOut
)

var menuItems = []menuItem{menuAccount, menuHelpCenter, menuSignOut}

type homeKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Play   key.Binding
	Search key.Binding
	Menu   key.Binding
	Close  key.Binding
	Done   key.Binding
}

func newHomeKeyMap(loc localizer) homeKeyMap {
	return homeKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/↓", loc.Text(textHelpRows)),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", loc.Text(textHelpDown)),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/→", loc.Text(textHelpScroll)),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", loc.Text(textHelpScroll)),
		),
		Play: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", loc.Text(textHelpPlay)),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", loc.Text(textHelpSearch)),
		),
		Menu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", loc.Text(textHelpMenu)),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", loc.Text(textHelpClose)),
		),
		Done: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", loc.Text(textHelpSave)),
		),
	}
}

type homeStyles struct {
	Brand       lipgloss.Style
	Nav         lipgloss.Style
	NavActive   lipgloss.Style
	NavHover    lipgloss.Style
	Icon        lipgloss.Style
	IconHover   lipgloss.Style
	Avatar      lipgloss.Style
	Menu        lipgloss.Style
	MenuHover   lipgloss.Style
	Notice      lipgloss.Style
	HeroTitle   lipgloss.Style
	HeroBody    lipgloss.Style
	PlayButton  lipgloss.Style
	InfoButton  lipgloss.Style
	Empty       lipgloss.Style
	FooterHead  lipgloss.Style
	FooterLink  lipgloss.Style
	FooterHover lipgloss.Style
	Rule        lipgloss.Style
	Copyright   lipgloss.Style
}

func defaultHomeStyles() homeStyles {
	return homeStyles{
		Brand:       lipgloss.NewStyle().Foreground(theme.Brand).Bold(true),
		Nav:         lipgloss.NewStyle().Foreground(theme.TextMuted),
		NavActive:   lipgloss.NewStyle().Foreground(theme.Text).Bold(true),
		NavHover:    lipgloss.NewStyle().Foreground(theme.Text).Underline(true),
		Icon:        lipgloss.NewStyle().Foreground(theme.Text),
		IconHover:   lipgloss.NewStyle().Foreground(theme.TextSubtle),
		Avatar:      lipgloss.NewStyle().Foreground(theme.OnPrimary).Background(theme.Brand).Bold(true),
		Menu:        lipgloss.NewStyle().Foreground(theme.Text).Background(theme.Surface),
		MenuHover:   lipgloss.NewStyle().Foreground(theme.Text).Background(theme.Raised).Bold(true),
		Notice:      lipgloss.NewStyle().Foreground(theme.TextMuted).Italic(true),
		HeroTitle:   lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true),
		HeroBody:    lipgloss.NewStyle().Foreground(lipgloss.Color("#d1d5db")),
		PlayButton:  lipgloss.NewStyle().Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color("#ffffff")).Bold(true),
		InfoButton:  lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#4b5563")).Bold(true),
		Empty:       lipgloss.NewStyle().Foreground(theme.TextSubtle),
		FooterHead:  lipgloss.NewStyle().Foreground(theme.Text).Bold(true),
		FooterLink:  lipgloss.NewStyle().Foreground(theme.TextSubtle),
		FooterHover: lipgloss.NewStyle().Foreground(theme.Text),
		Rule:        lipgloss.NewStyle().Foreground(theme.Line),
		Copyright:   lipgloss.NewStyle().Foreground(theme.TextSubtle),
	}
}

type homeModel struct {
	zone      *zone.Manager
	loc       localizer
	keys      homeKeyMap
	styles    homeStyles
	account   session.Account
	hero      catalog.Billboard
	allRows   []catalog.Row
	rows      []titlerow.Model
	focused   int
	width     int
	search    textinput.Model
	searching bool
	query     string
	menuOpen  bool
	menuIndex int
	bellOpen  bool
	hover     string
	notice    string
}

func newHomeModel(zoneManager *zone.Manager, loc localizer, acct session.Account) homeModel {
	search := textinput.New()
	search.Prompt = "⌕ "
	search.Placeholder = loc.Text(textSearchPlaceholder)
	search.CharLimit = 40
	search.Width = 24

	m := homeModel{
		zone:      zoneManager,
		loc:       loc,
		keys:      newHomeKeyMap(loc),
		styles:    defaultHomeStyles(),
		account:   acct,
		hero:      catalog.Hero(),
		allRows:   catalog.Rows(),
		search:    search,
		menuIndex: -1,
	}
	m.buildRows(m.allRows)
	return m
}

func (m homeModel) Init() tea.Cmd {
	return nil
}

func (m homeModel) Capturing() bool {
	return m.searching
}

func (m homeModel) ShortHelp() []key.Binding {
	switch {
	case m.searching:
		return []key.Binding{m.keys.Done, m.keys.Close}
	case m.menuOpen:
		return []key.Binding{m.keys.Up, m.keys.Play, m.keys.Close}
	}
	return []key.Binding{m.keys.Up, m.keys.Left, m.keys.Play, m.keys.Search, m.keys.Menu}
}

func (m homeModel) FullHelp() [][]key.Binding {
	return [][]key.Binding{m.ShortHelp()}
}

// buildRows replaces the visible rows, keeping the focused row in range.
func (m *homeModel) buildRows(rows []catalog.Row) {
	m.rows = make([]titlerow.Model, len(rows))
	for i, row := range rows {
		r := titlerow.New(row, m.zone)
		r.Heading = m.loc.RowHeading(row.Key, row.Heading)
		r.Labels = m.loc.TitleRowLabels()
		r.SetWidth(m.width)
		m.rows[i] = r
	}
	if m.focused >= len(m.rows) {
		m.focused = len(m.rows) - 1
	}
	if m.focused < 0 {
		m.focused = 0
	}
	m.syncFocus()
}

func (m *homeModel) syncFocus() {
	for i := range m.rows {
		m.rows[i].Focused = i == m.focused
	}
}

func (m *homeModel) SetWidth(width int) {
	m.width = width
	for i := range m.rows {
		m.rows[i].SetWidth(width)
	}
}

func (m *homeModel) applySearch(query string) {
	if query == m.query {
		return
	}
	m.query = query
	m.buildRows(catalog.Search(m.allRows, query))
}

func (m homeModel) Update(msg tea.Msg) (homeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case accountChangedMsg:
		m.account = msg.account
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		if m.menuOpen {
			return m.updateMenu(msg)
		}
		switch {
		case key.Matches(msg, m.keys.Close):
			m.bellOpen = false
			m.notice = ""
			if m.query != "" {
				m.search.SetValue("")
				m.applySearch("")
			}
			return m, nil
		case key.Matches(msg, m.keys.Search):
			m.searching = true
			m.menuOpen = false
			return m, m.search.Focus()
		case key.Matches(msg, m.keys.Menu):
			m.menuOpen = true
			m.menuIndex = 0
			return m, nil
		case key.Matches(msg, m.keys.Up):
			m.moveFocus(-1)
			return m, nil
		case key.Matches(msg, m.keys.Down):
			m.moveFocus(1)
			return m, nil
		case key.Matches(msg, m.keys.Left):
			return m.moveCard(-1)
		case key.Matches(msg, m.keys.Right):
			return m.moveCard(1)
		case key.Matches(msg, m.keys.Play):
			if m.focused < len(m.rows) {
				if title, ok := m.rows[m.focused].SelectedTitle(); ok {
					m.notice = m.loc.Textf(textNowPlaying, title.Name)
				}
			}
			return m, nil
		}
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	var cmds []tea.Cmd
	for i := range m.rows {
		var cmd tea.Cmd
		m.rows[i], cmd = m.rows[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	if m.searching {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m homeModel) updateSearch(msg tea.KeyMsg) (homeModel, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.searching = false
		m.search.Blur()
		return m, nil
	case tea.KeyEsc:
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.applySearch("")
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.applySearch(strings.TrimSpace(m.search.Value()))
	return m, cmd
}

func (m homeModel) updateMenu(msg tea.KeyMsg) (homeModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close), key.Matches(msg, m.keys.Menu):
		m.menuOpen = false
		return m, nil
	case key.Matches(msg, m.keys.Up):
		if m.menuIndex > 0 {
			m.menuIndex--
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		if m.menuIndex < len(menuItems)-1 {
			m.menuIndex++
		}
		return m, nil
	case key.Matches(msg, m.keys.Play):
		if m.menuIndex >= 0 && m.menuIndex < len(menuItems) {
			return m.choose(menuItems[m.menuIndex])
		}
	}
	return m, nil
}

func (m homeModel) choose(item menuItem) (homeModel, tea.Cmd) {
	m.menuOpen = false
	switch item {
	case menuAccount:
		m.notice = ""
		return m, navigate(pageAccount)
	case menuHelpCenter:
		m.notice = m.loc.Textf(textNotAvailable, m.loc.Text(textMenuHelpCenter))
	case menuSignOut:
		m.notice = m.loc.Text(textSignedOut)
	}
	return m, nil
}

func (m *homeModel) moveFocus(delta int) {
	next := m.focused + delta
	if next < 0 || next >= len(m.rows) {
		return
	}
	m.focused = next
	m.syncFocus()
}

func (m homeModel) moveCard(delta int) (homeModel, tea.Cmd) {
	if m.focused >= len(m.rows) {
		return m, nil
	}
	var cmd tea.Cmd
	m.rows[m.focused], cmd = m.rows[m.focused].MoveSelection(delta)
	return m, cmd
}

func (m homeModel) handleMouse(msg tea.MouseMsg) (homeModel, tea.Cmd) {
	if m.zone == nil {
		return m, nil
	}
	switch msg.Type {
	case tea.MouseWheelUp:
		m.moveFocus(-1)
		return m, nil
	case tea.MouseWheelDown:
		m.moveFocus(1)
		return m, nil
	}

	var cmds []tea.Cmd
	for i := range m.rows {
		row, cmd, handled := m.rows[i].HandleMouse(msg)
		m.rows[i] = row
		cmds = append(cmds, cmd)
		if handled && msg.Action == tea.MouseActionRelease {
			m.focused = i
			m.syncFocus()
		}
	}

	switch msg.Action {
	case tea.MouseActionMotion:
		m.hover = m.zoneAt(msg)
		if m.menuOpen {
			for i := range menuItems {
				if m.hover == fmt.Sprintf("home-menu-%d", i) {
					m.menuIndex = i
				}
			}
		}
	case tea.MouseActionRelease:
		id := m.zoneAt(msg)
		switch {
		case id == "home-avatar":
			m.menuOpen = !m.menuOpen
			m.menuIndex = -1
		case id == "home-search":
			m.searching = true
			m.menuOpen = false
			cmds = append(cmds, m.search.Focus())
		case id == "home-bell":
			m.bellOpen = !m.bellOpen
		case id == "home-hero-play":
			m.notice = m.loc.Textf(textNowPlaying, m.hero.Name)
		case id == "home-hero-info":
			m.notice = m.hero.Blurb
		case strings.HasPrefix(id, "home-menu-") && m.menuOpen:
			var i int
			if _, err := fmt.Sscanf(id, "home-menu-%d", &i); err == nil && i < len(menuItems) {
				next, cmd := m.choose(menuItems[i])
				return next, tea.Batch(append(cmds, cmd)...)
			}
		default:
			if m.searching && id != "home-search-input" {
				m.searching = false
				m.search.Blur()
			}
			m.menuOpen = false
		}
	}
	return m, tea.Batch(cmds...)
}

// zoneAt returns the id of the header, menu or hero zone under the pointer.
func (m homeModel) zoneAt(msg tea.MouseMsg) string {
	ids := []string{"home-avatar", "home-search", "home-search-input", "home-bell", "home-hero-play", "home-hero-info"}
	for i := range catalog.NavLinks() {
		ids = append(ids, fmt.Sprintf("home-nav-%d", i))
	}
	if m.menuOpen {
		for i := range menuItems {
			ids = append(ids, fmt.Sprintf("home-menu-%d", i))
		}
	}
	for _, id := range ids {
		if m.zone.Get(id).InBounds(msg) {
			return id
		}
	}
	return ""
}

func (m homeModel) mark(id, s string) string {
	if m.zone == nil {
		return s
	}
	return m.zone.Mark(id, s)
}

func (m homeModel) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	top := []string{m.renderHeader(width), ""}
	if m.menuOpen {
		top = append(top, m.renderMenu(width)...)
	}
	if m.bellOpen {
		top = append(top, lipgloss.PlaceHorizontal(width, lipgloss.Right, m.styles.Notice.Render(m.loc.Text(textNoNotices))))
	}
	if m.notice != "" {
		top = append(top, m.styles.Notice.Render(ansi.Truncate(m.notice, width, "…")))
	}

	body := m.renderBody(width)
	bodyHeight := height - len(top)
	if bodyHeight < 0 {
		bodyHeight = 0
	}
	offset := m.bodyOffset(len(body), bodyHeight)
	end := offset + bodyHeight
	if end > len(body) {
		end = len(body)
	}
	lines := append(top, body[offset:end]...)
	return strings.Join(lines, "\n")
}

// bodyOffset keeps the focused row on screen and reveals the footer once the
// last row is focused.
func (m homeModel) bodyOffset(total, visible int) int {
	maxOffset := total - visible
	if maxOffset <= 0 {
		return 0
	}
	if len(m.rows) == 0 || m.focused == len(m.rows)-1 {
		return maxOffset
	}
	rowEnd := heroHeight + 1 + (m.focused+1)*(titlerow.Height+1)
	offset := rowEnd - visible
	if offset < 0 {
		offset = 0
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	return offset
}

func (m homeModel) renderHeader(width int) string {
	left := m.styles.Brand.Render(m.loc.Text(textBrand))
	var nav []string
	for i, link := range catalog.NavLinks() {
		id := fmt.Sprintf("home-nav-%d", i)
		style := m.styles.Nav
		switch {
		case m.hover == id:
			style = m.styles.NavHover
		case i == 0:
			style = m.styles.NavActive
		}
		nav = append(nav, m.mark(id, style.Render(link)))
	}
	navView := strings.Join(nav, "  ")

	var search string
	if m.searching || m.query != "" {
		search = m.mark("home-search-input", m.search.View())
	} else {
		style := m.styles.Icon
		if m.hover == "home-search" {
			style = m.styles.IconHover
		}
		search = m.mark("home-search", style.Render("⌕"))
	}
	bellStyle := m.styles.Icon
	if m.hover == "home-bell" {
		bellStyle = m.styles.IconHover
	}
	bell := m.mark("home-bell", bellStyle.Render("✉"))
	avatar := m.mark("home-avatar", m.styles.Avatar.Render(" "+initial(m.account.DisplayName)+" ")+m.styles.Icon.Render(" ▾"))
	right := search + "  " + bell + "  " + avatar

	if lipgloss.Width(left)+3+lipgloss.Width(navView)+2+lipgloss.Width(right) <= width {
		left = left + "   " + navView
	}
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m homeModel) renderMenu(width int) []string {
	labels := map[menuItem]string{
		menuAccount:    m.loc.Text(textMenuAccount),
		menuHelpCenter: m.loc.Text(textMenuHelpCenter),
		menuSignOut:    m.loc.Text(textMenuSignOut),
	}
	lines := make([]string, 0, len(menuItems))
	for i, item := range menuItems {
		style := m.styles.Menu
		if i == m.menuIndex {
			style = m.styles.MenuHover
		}
		entry := style.Width(menuWidth).Render(" " + labels[item])
		lines = append(lines, lipgloss.PlaceHorizontal(width, lipgloss.Right, m.mark(fmt.Sprintf("home-menu-%d", i), entry)))
	}
	return lines
}

func (m homeModel) renderBody(width int) []string {
	lines := m.renderHero(width)
	lines = append(lines, "")
	if len(m.rows) == 0 {
		lines = append(lines, m.styles.Empty.Render(m.loc.Textf(textSearchNoMatch, m.query)), "")
	}
	for _, row := range m.rows {
		lines = append(lines, strings.Split(row.View(width), "\n")...)
		lines = append(lines, "")
	}
	return append(lines, m.renderFooter(width)...)
}

func (m homeModel) renderHero(width int) []string {
	from, err := colorful.Hex(m.hero.Art.From)
	if err != nil {
		from = colorful.Color{}
	}
	to, err := colorful.Hex(m.hero.Art.To)
	if err != nil {
		to = colorful.Color{}
	}

	textWidth := heroTextWidth
	if textWidth > width-4 {
		textWidth = width - 4
	}
	blurb := strings.Split(lipgloss.NewStyle().Width(textWidth).Render(m.hero.Blurb), "\n")
	if len(blurb) > 3 {
		blurb = blurb[:3]
		blurb[2] = ansi.Truncate(blurb[2], textWidth-1, "") + "…"
	}

	lines := make([]string, heroHeight)
	for y := range lines {
		t := float64(y) / float64(heroHeight-1)
		bg := lipgloss.Color(from.BlendLab(to, t).Clamped().Hex())
		fill := lipgloss.NewStyle().Background(bg)

		var content string
		switch {
		case y == 1:
			content = m.styles.HeroTitle.Background(bg).Render(strings.ToUpper(m.hero.Name))
		case y >= 3 && y-3 < len(blurb):
			content = m.styles.HeroBody.Background(bg).Render(blurb[y-3])
		case y == heroHeight-2:
			play := m.mark("home-hero-play", m.styles.PlayButton.Render(" ▶ "+m.loc.Text(textPlay)+" "))
			info := m.mark("home-hero-info", m.styles.InfoButton.Render(" ⓘ "+m.loc.Text(textMoreInfo)+" "))
			content = play + fill.Render("  ") + info
		}
		lines[y] = fill.Render("  ") + padLine(content, width-2, fill)
	}
	return lines
}

func (m homeModel) renderFooter(width int) []string {
	sections := catalog.Footer()
	colWidth := width / len(sections)
	cols := make([]string, len(sections))
	for i, section := range sections {
		col := []string{m.styles.FooterHead.Render(section.Heading)}
		for _, link := range section.Links {
			col = append(col, m.styles.FooterLink.Render(ansi.Truncate(link, colWidth-1, "…")))
		}
		cols[i] = lipgloss.NewStyle().Width(colWidth).Render(strings.Join(col, "\n"))
	}
	lines := strings.Split(lipgloss.JoinHorizontal(lipgloss.Top, cols...), "\n")
	lines = append(lines, "",
		m.styles.Rule.Render(strings.Repeat("─", width)),
		m.styles.Copyright.Render(m.loc.Text(textCopyright)),
	)
	return lines
}

func initial(name string) string {
	if r := []rune(strings.TrimSpace(name)); len(r) > 0 {
		return strings.ToUpper(string(r[0]))
	}
	return "?"
}

func padLine(line string, width int, fill lipgloss.Style) string {
	w := lipgloss.Width(line)
	if w >= width {
		return ansi.Truncate(line, width, "")
	}
	return line + fill.Render(strings.Repeat(" ", width-w))
}
