// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/terminal-games/flix/pkg/bubblewrap"
	"github.com/terminal-games/flix/pkg/config"
	"github.com/terminal-games/flix/pkg/logging"
	"github.com/terminal-games/flix/pkg/session"
)

const (
	minViewportWidth  = 60
	minViewportHeight = 16
)

type page int

const (
	pageHome page = iota
	pageAccount
)

func (p page) String() string {
	if p == pageAccount {
		return "account"
	}
	return "home"
}

// navigateMsg switches the visible page.
type navigateMsg struct {
	to page
}

func navigate(to page) tea.Cmd {
	return func() tea.Msg {
		return navigateMsg{to: to}
	}
}

// commandMsg carries a change request from a view to the root model, which
// owns the session.
type commandMsg struct {
	cmd session.Command
}

func emit(cmd session.Command) tea.Cmd {
	return func() tea.Msg {
		return commandMsg{cmd: cmd}
	}
}

// accountChangedMsg is pushed to every page after a command was applied.
type accountChangedMsg struct {
	account session.Account
	cmd     session.Command
	kind    string
	err     error
}

type model struct {
	w        int
	h        int
	maxWidth int
	zone     *zone.Manager
	page     page
	session  *session.Session
	log      *slog.Logger
	loc      localizer
	keys     keyMap
	help     help.Model
	home     homeModel
	account  accountModel
}

type helpKeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

type helpBindings struct {
	short []key.Binding
}

func (h helpBindings) ShortHelp() []key.Binding {
	return h.short
}

func (h helpBindings) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.short}
}

type keyMap struct {
	Quit    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
}

func newKeyMap(loc localizer) keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", loc.Text(textHelpQuit)),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", loc.Text(textHelpNextTab)),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", loc.Text(textHelpPrevTab)),
		),
	}
}

func newModel(cfg config.Config, sess *session.Session, logger *slog.Logger, zoneManager *zone.Manager) *model {
	loc := newLocalizer(cfg.Lang)
	acct := sess.Account()
	return &model{
		maxWidth: cfg.MaxWidth,
		zone:     zoneManager,
		page:     pageHome,
		session:  sess,
		log:      logger,
		loc:      loc,
		keys:     newKeyMap(loc),
		help:     help.New(),
		home:     newHomeModel(zoneManager, loc, acct),
		account:  newAccountModel(zoneManager, loc, acct),
	}
}

func (m *model) contextualKeyMap() helpKeyMap {
	if m.page == pageAccount {
		return m.account
	}
	return m.home
}

func (m *model) inputCaptured() bool {
	if m.page == pageAccount {
		return m.account.Capturing()
	}
	return m.home.Capturing()
}

func (m *model) globalHelpKeyMap() helpKeyMap {
	if m.inputCaptured() {
		return nil
	}
	if m.page == pageAccount {
		return helpBindings{short: []key.Binding{m.keys.NextTab, m.keys.PrevTab, m.keys.Quit}}
	}
	return helpBindings{short: []key.Binding{m.keys.Quit}}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, config.Usage())
		os.Exit(2)
	}

	logger, closer := logging.New(logging.Options{
		File:       cfg.Log.File,
		Level:      cfg.Log.Level,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	})
	defer closer.Close()

	lipgloss.SetDefaultRenderer(bubblewrap.MakeRenderer(os.Stdout, os.Environ()))

	sess, err := session.New(session.Default(), session.WithLogger(logger))
	if err != nil {
		logger.Error("seed account rejected", logging.Err(err))
		log.Fatal(err)
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseAllMotion())
	}
	logger.Info("starting", slog.String("lang", cfg.Lang), slog.Bool("mouse", cfg.Mouse))

	p := bubblewrap.NewProgram(newModel(cfg, sess, logger, zone.New()), opts...)
	if _, err := p.Run(); err != nil {
		logger.Error("program failed", logging.Err(err))
		log.Fatal(err)
	}
	logger.Info("exited")
}

func (m *model) Init() tea.Cmd {
	return tea.Batch(m.home.Init(), m.account.Init())
}

func (m *model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := message.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			if msg.String() == "q" && m.inputCaptured() {
				break
			}
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextTab):
			if m.page == pageAccount && !m.account.Capturing() {
				return m, m.account.tabs.Next()
			}
		case key.Matches(msg, m.keys.PrevTab):
			if m.page == pageAccount && !m.account.Capturing() {
				return m, m.account.tabs.Prev()
			}
		}

	case tea.WindowSizeMsg:
		m.w = msg.Width
		m.h = msg.Height
		m.home.SetWidth(m.viewportWidth())
		m.account.SetWidth(m.viewportWidth())
		return m, nil

	case commandMsg:
		return m, m.apply(msg.cmd)

	case navigateMsg:
		if msg.to != m.page {
			m.log.Debug("navigate", slog.String("from", m.page.String()), slog.String("to", msg.to.String()))
		}
		m.page = msg.to
		if m.page == pageAccount {
			return m, m.account.Enter()
		}
		return m, nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	switch message.(type) {
	case tea.KeyMsg, tea.MouseMsg:
		if m.page == pageAccount {
			m.account, cmd = m.account.Update(message)
		} else {
			m.home, cmd = m.home.Update(message)
		}
		cmds = append(cmds, cmd)
	default:
		m.home, cmd = m.home.Update(message)
		cmds = append(cmds, cmd)
		m.account, cmd = m.account.Update(message)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// apply runs cmd against the session and tells every page about the result.
func (m *model) apply(cmd session.Command) tea.Cmd {
	if cmd == nil {
		return nil
	}
	res := m.session.Apply(cmd)
	changed := accountChangedMsg{account: res.Account, cmd: cmd, kind: cmd.Kind(), err: res.Err}

	var cmds []tea.Cmd
	var c tea.Cmd
	m.home, c = m.home.Update(changed)
	cmds = append(cmds, c)
	m.account, c = m.account.Update(changed)
	cmds = append(cmds, c)
	return tea.Batch(cmds...)
}

func (m *model) viewportWidth() int {
	width := m.maxWidth
	if width <= 0 || m.w < width {
		width = m.w
	}
	return width
}

func (m *model) View() string {
	viewportWidth := m.viewportWidth()
	if viewportWidth < minViewportWidth || m.h < minViewportHeight {
		return lipgloss.Place(m.w, m.h, lipgloss.Center, lipgloss.Center, m.loc.Text(textWindowTooSmall))
	}

	m.help.Width = viewportWidth
	var helpLines []string
	if keyMap := m.contextualKeyMap(); keyMap != nil {
		helpLines = append(helpLines, lipgloss.NewStyle().Width(viewportWidth).Render(m.help.View(keyMap)))
	}
	if keyMap := m.globalHelpKeyMap(); keyMap != nil {
		helpLines = append(helpLines, lipgloss.NewStyle().Width(viewportWidth).Render(m.help.View(keyMap)))
	}
	helpView := strings.Join(helpLines, "\n")

	contentHeight := m.h - lipgloss.Height(helpView)
	if contentHeight < 0 {
		contentHeight = 0
	}

	var content string
	if m.page == pageAccount {
		content = m.account.View(viewportWidth, contentHeight)
	} else {
		content = m.home.View(viewportWidth, contentHeight)
	}
	content = lipgloss.NewStyle().Width(viewportWidth).Height(contentHeight).MaxHeight(contentHeight).Render(content)

	fullView := lipgloss.JoinVertical(lipgloss.Left, content, helpView)
	return m.zone.Scan(lipgloss.Place(m.w, m.h, lipgloss.Center, lipgloss.Top, fullView))
}
