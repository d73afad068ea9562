// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/terminal-games/flix/cmd/flix/tabs"
	"github.com/terminal-games/flix/cmd/flix/theme"
	"github.com/terminal-games/flix/pkg/session"
)

const (
	tabProfiles = "profiles"
	tabAccount  = "account"
	tabBilling  = "billing"
	tabSecurity = "security"
)

type accountKeyMap struct {
	Back   key.Binding
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
}

func newAccountKeyMap(loc localizer) accountKeyMap {
	return accountKeyMap{
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", loc.Text(textHelpBack)),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", loc.Text(textHelpUp)),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", loc.Text(textHelpDown)),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", loc.Text(textHelpToggle)),
		),
	}
}

// accountModel is the settings page: a tab bar over four panes.
type accountModel struct {
	zone      *zone.Manager
	loc       localizer
	keys      accountKeyMap
	account   session.Account
	tabs      tabs.Model
	profiles  profilesPane
	details   detailsPane
	billing   billingPane
	security  securityPane
	backHover bool
}

func newAccountModel(zoneManager *zone.Manager, loc localizer, acct session.Account) accountModel {
	return accountModel{
		zone:     zoneManager,
		loc:      loc,
		keys:     newAccountKeyMap(loc),
		account:  acct,
		tabs:     tabs.New(loc.AccountTabs(), zoneManager, "account-tab-"),
		profiles: newProfilesPane(zoneManager, loc, acct.Profiles),
		details:  newDetailsPane(zoneManager, loc, acct),
		billing:  billingPane{loc: loc, zone: zoneManager},
		security: newSecurityPane(zoneManager, loc),
	}
}

func (m accountModel) Init() tea.Cmd {
	return m.tabs.Init()
}

// Enter resets transient status lines when the page is opened.
func (m *accountModel) Enter() tea.Cmd {
	m.profiles.status = ""
	m.profiles.addHint = false
	m.details.status = ""
	m.billing.notice = ""
	m.security.notice = ""
	return nil
}

func (m *accountModel) SetWidth(width int) {
	m.tabs.SetWidth(width)
}

func (m accountModel) Capturing() bool {
	switch m.tabs.ActiveTab().ID {
	case tabProfiles:
		return m.profiles.Capturing()
	case tabAccount:
		return m.details.Capturing()
	}
	return false
}

func (m accountModel) ShortHelp() []key.Binding {
	var bindings []key.Binding
	switch m.tabs.ActiveTab().ID {
	case tabProfiles:
		bindings = m.profiles.ShortHelp()
	case tabAccount:
		bindings = m.details.ShortHelp()
	case tabBilling:
		bindings = []key.Binding{m.keys.Toggle}
	case tabSecurity:
		bindings = []key.Binding{m.keys.Up, m.keys.Down, m.keys.Toggle}
	}
	if !m.Capturing() {
		bindings = append(bindings, m.keys.Back)
	}
	return bindings
}

func (m accountModel) FullHelp() [][]key.Binding {
	return [][]key.Binding{m.ShortHelp()}
}

// blur commits whatever input the active pane holds.
func (m *accountModel) blur() tea.Cmd {
	return tea.Batch(m.profiles.blur(), m.details.commit())
}

func (m accountModel) Update(msg tea.Msg) (accountModel, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case accountChangedMsg:
		m.account = msg.account
		m.profiles, cmd = m.profiles.Update(msg)
		cmds = append(cmds, cmd)
		m.details, cmd = m.details.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)

	case tabs.TabChangedMsg:
		return m, m.blur()

	case tea.KeyMsg:
		if !m.Capturing() && key.Matches(msg, m.keys.Back) {
			return m, navigate(pageHome)
		}
		return m.updateActive(msg)

	case tea.MouseMsg:
		if m.zone != nil {
			if msg.Action == tea.MouseActionMotion {
				m.backHover = m.zone.Get("account-back").InBounds(msg)
			}
			if msg.Action == tea.MouseActionRelease && m.zone.Get("account-back").InBounds(msg) {
				return m, tea.Sequence(m.blur(), navigate(pageHome))
			}
		}
		m.tabs, cmd = m.tabs.Update(msg)
		cmds = append(cmds, cmd)
		m, cmd = m.updateActive(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)
	}

	m.tabs, cmd = m.tabs.Update(msg)
	cmds = append(cmds, cmd)
	m.profiles, cmd = m.profiles.Update(msg)
	cmds = append(cmds, cmd)
	m.details, cmd = m.details.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m accountModel) updateActive(msg tea.Msg) (accountModel, tea.Cmd) {
	var cmd tea.Cmd
	switch m.tabs.ActiveTab().ID {
	case tabProfiles:
		m.profiles, cmd = m.profiles.Update(msg)
	case tabAccount:
		m.details, cmd = m.details.Update(msg)
	case tabBilling:
		m.billing, cmd = m.billing.Update(msg)
	case tabSecurity:
		m.security, cmd = m.security.Update(msg)
	}
	return m, cmd
}

var (
	accountBack       = lipgloss.NewStyle().Foreground(theme.Text)
	accountBackHover  = lipgloss.NewStyle().Foreground(theme.TextSubtle)
	accountBrand      = lipgloss.NewStyle().Foreground(theme.Brand).Bold(true)
	accountHeading    = lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	accountBarStyle   = lipgloss.NewStyle().Foreground(theme.Line)
	accountPaneHeader = lipgloss.NewStyle().Foreground(theme.Text).Bold(true).MarginBottom(1)
)

func (m accountModel) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	backStyle := accountBack
	if m.backHover {
		backStyle = accountBackHover
	}
	back := backStyle.Render(m.loc.Text(textBack))
	if m.zone != nil {
		back = m.zone.Mark("account-back", back)
	}
	left := back + "  " + accountBrand.Render(m.loc.Text(textBrand))
	right := accountHeading.Render(m.loc.Text(textAccountSettings))
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	header := left + strings.Repeat(" ", gap) + right

	t := m.tabs
	t.SetWidth(width)

	active := t.ActiveTab()
	paneWidth := width - 2
	var pane string
	switch active.ID {
	case tabProfiles:
		pane = m.profiles.View(paneWidth)
	case tabAccount:
		pane = m.details.View(paneWidth)
	case tabBilling:
		pane = m.billing.View(paneWidth, m.account.Plan)
	case tabSecurity:
		pane = m.security.View(paneWidth)
	}

	content := lipgloss.NewStyle().Padding(0, 1).Render(
		accountPaneHeader.Render(active.Title) + "\n" + pane,
	)
	return strings.Join([]string{header, "", t.View(), "", content}, "\n")
}

// billingPane shows fixed plan and payment details.
type billingPane struct {
	loc    localizer
	zone   *zone.Manager
	notice string
}

func (b billingPane) Update(msg tea.Msg) (billingPane, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEnter {
			b.notice = b.loc.Textf(textNotAvailable, b.loc.Text(textUpdatePayment))
		}
	case tea.MouseMsg:
		if b.zone != nil && msg.Action == tea.MouseActionRelease && b.zone.Get("billing-update").InBounds(msg) {
			b.notice = b.loc.Textf(textNotAvailable, b.loc.Text(textUpdatePayment))
		}
	}
	return b, nil
}

func (b billingPane) View(width int, plan string) string {
	boxWidth := clampWidth(width-2, 30, 70)
	inner := boxWidth - 4

	left := paneTitle.Render(b.loc.Textf(textBillingPlan, plan)) + "\n" + paneSubtle.Render(b.loc.Text(textBillingQuality))
	right := lipgloss.NewStyle().Align(lipgloss.Right).Render(
		paneTitle.Render(b.loc.Text(textBillingPrice)) + "\n" + paneSubtle.Render(b.loc.Text(textBillingNext)),
	)
	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	summary := lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", gap), right)

	button := paneButton.Render(" " + b.loc.Text(textUpdatePayment) + " ")
	if b.zone != nil {
		button = b.zone.Mark("billing-update", button)
	}
	body := strings.Join([]string{
		summary,
		accountBarStyle.Render(strings.Repeat("─", inner)),
		paneTitle.Render(b.loc.Text(textPaymentMethod)),
		paneBody.Render("•••• •••• •••• 1234"),
		paneSubtle.Render(b.loc.Text(textCardExpires)),
		"",
		button,
	}, "\n")

	view := paneBoxed.Width(boxWidth).Render(body)
	if b.notice != "" {
		view += "\n\n" + paneSubtle.Render(b.notice)
	}
	return view
}

type securityItem struct {
	label    textKey
	checkbox bool
}

var securityItems = []securityItem{
	{label: textChangePassword},
	{label: textTwoFactor},
	{label: textSignOutAll},
	{label: textNotifyReleases, checkbox: true},
	{label: textNotifySMS, checkbox: true},
	{label: textNotifyMarketing, checkbox: true},
}

// securityPane lists account actions and notification toggles. Toggles are
// view state only.
type securityPane struct {
	loc      localizer
	zone     *zone.Manager
	keys     accountKeyMap
	selected int
	checked  map[textKey]bool
	notice   string
}

func newSecurityPane(zoneManager *zone.Manager, loc localizer) securityPane {
	return securityPane{
		loc:  loc,
		zone: zoneManager,
		keys: newAccountKeyMap(loc),
		checked: map[textKey]bool{
			textNotifyReleases: true,
			textNotifySMS:      true,
		},
	}
}

func (s securityPane) activate(i int) securityPane {
	item := securityItems[i]
	if item.checkbox {
		checked := make(map[textKey]bool, len(s.checked))
		for k, v := range s.checked {
			checked[k] = v
		}
		checked[item.label] = !checked[item.label]
		s.checked = checked
		s.notice = ""
		return s
	}
	s.notice = s.loc.Textf(textNotAvailable, s.loc.Text(item.label))
	return s
}

func (s securityPane) Update(msg tea.Msg) (securityPane, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, s.keys.Up):
			if s.selected > 0 {
				s.selected--
			}
		case key.Matches(msg, s.keys.Down):
			if s.selected < len(securityItems)-1 {
				s.selected++
			}
		case key.Matches(msg, s.keys.Toggle):
			s = s.activate(s.selected)
		}
	case tea.MouseMsg:
		if s.zone == nil {
			return s, nil
		}
		for i := range securityItems {
			if !s.zone.Get(s.itemZone(i)).InBounds(msg) {
				continue
			}
			switch msg.Action {
			case tea.MouseActionMotion:
				s.selected = i
			case tea.MouseActionRelease:
				s.selected = i
				s = s.activate(i)
			}
		}
	}
	return s, nil
}

func (s securityPane) itemZone(i int) string {
	return fmt.Sprintf("security-item-%d", i)
}

func (s securityPane) View(width int) string {
	boxWidth := clampWidth(width-2, 30, 70)
	inner := boxWidth - 4

	var actions, toggles []string
	for i, item := range securityItems {
		label := s.loc.Text(item.label)
		var line string
		if item.checkbox {
			box := "[ ]"
			if s.checked[item.label] {
				box = lipgloss.NewStyle().Foreground(theme.Primary).Render("[✓]")
			}
			line = box + " " + paneBody.Render(label)
		} else {
			line = lipgloss.NewStyle().Width(inner).Background(theme.Surface).Foreground(theme.Text).Render(" " + label)
		}
		if i == s.selected {
			line = lipgloss.NewStyle().Foreground(theme.Primary).Render("›") + line
		} else {
			line = " " + line
		}
		if s.zone != nil {
			line = s.zone.Mark(s.itemZone(i), line)
		}
		if item.checkbox {
			toggles = append(toggles, line)
		} else {
			actions = append(actions, line)
		}
	}

	password := paneBoxed.Width(boxWidth).Render(
		paneTitle.Render(s.loc.Text(textPasswordSection)) + "\n\n" + strings.Join(actions, "\n"),
	)
	notifications := paneBoxed.Width(boxWidth).Render(
		paneTitle.Render(s.loc.Text(textNotifications)) + "\n\n" + strings.Join(toggles, "\n"),
	)
	view := password + "\n" + notifications
	if s.notice != "" {
		view += "\n\n" + paneSubtle.Render(s.notice)
	}
	return view
}
