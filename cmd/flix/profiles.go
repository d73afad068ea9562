// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package main

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/terminal-games/flix/cmd/flix/profilelist"
	"github.com/terminal-games/flix/cmd/flix/theme"
	"github.com/terminal-games/flix/pkg/roster"
	"github.com/terminal-games/flix/pkg/session"
)

type profilesFocus int

const (
	focusList profilesFocus = iota
	focusEdit
	focusAdd
)

type profilesKeyMap struct {
	Edit   key.Binding
	Delete key.Binding
	Add    key.Binding
	Save   key.Binding
	Cancel key.Binding
}

func newProfilesKeyMap(loc localizer) profilesKeyMap {
	return profilesKeyMap{
		Edit: key.NewBinding(
			key.WithKeys("e", "enter"),
			key.WithHelp("e", loc.Text(textHelpEdit)),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", loc.Text(textHelpDelete)),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", loc.Text(textHelpAdd)),
		),
		Save: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", loc.Text(textHelpSave)),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", loc.Text(textHelpCancel)),
		),
	}
}

var (
	paneTitle   = lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	paneSubtle  = lipgloss.NewStyle().Foreground(theme.TextSubtle)
	paneBody    = lipgloss.NewStyle().Foreground(theme.TextMuted)
	paneOK      = lipgloss.NewStyle().Foreground(theme.Accent)
	paneError   = lipgloss.NewStyle().Foreground(theme.Danger)
	paneButton  = lipgloss.NewStyle().Foreground(theme.OnPrimary).Background(theme.Primary).Bold(true)
	paneMuted   = lipgloss.NewStyle().Foreground(theme.TextSubtle).Background(theme.Raised)
	paneBoxed   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(theme.Line).Padding(0, 1)
	paneFocused = paneBoxed.BorderForeground(theme.Primary)
)

// profilesPane lists the roster and turns edits into session commands. It
// never changes the roster itself; it waits for accountChangedMsg.
type profilesPane struct {
	loc     localizer
	zone    *zone.Manager
	keys    profilesKeyMap
	list    profilelist.Model
	roster  roster.Roster
	focus   profilesFocus
	editor  textinput.Model
	adder   textinput.Model
	status  string
	failed  bool
	addHint bool
}

func newProfilesPane(zoneManager *zone.Manager, loc localizer, r roster.Roster) profilesPane {
	editor := textinput.New()
	editor.Prompt = ""
	editor.CharLimit = 32
	editor.Width = 24

	adder := textinput.New()
	adder.Prompt = "+ "
	adder.Placeholder = loc.Text(textProfilePrompt)
	adder.CharLimit = 32
	adder.Width = 32

	list := profilelist.New(nil, zoneManager, "profile-")
	list.SetLabels(loc.ProfileListLabels())

	p := profilesPane{
		loc:    loc,
		zone:   zoneManager,
		keys:   newProfilesKeyMap(loc),
		list:   list,
		editor: editor,
		adder:  adder,
	}
	p.setRoster(r)
	return p
}

func (p *profilesPane) setRoster(r roster.Roster) {
	p.roster = r
	items := make([]profilelist.Item, len(r))
	for i, profile := range r {
		items[i] = profilelist.Item{
			ID:          profile.ID,
			Name:        profile.Name,
			Description: p.loc.Text(textAllMaturity),
		}
	}
	p.list.SetItems(items)
	if p.focus == focusEdit && !r.Contains(p.list.EditingID) {
		p.stopEditing()
	}
	if p.focus == focusAdd && r.Full() {
		p.focus = focusList
		p.adder.Blur()
	}
}

func (p profilesPane) Capturing() bool {
	return p.focus != focusList
}

func (p profilesPane) ShortHelp() []key.Binding {
	if p.focus != focusList {
		return []key.Binding{p.keys.Save, p.keys.Cancel}
	}
	bindings := append(p.list.ShortHelp(), p.keys.Edit, p.keys.Delete)
	if !p.roster.Full() {
		bindings = append(bindings, p.keys.Add)
	}
	return bindings
}

func (p *profilesPane) startEditing(id int64) tea.Cmd {
	profile, ok := p.roster.Find(id)
	if !ok {
		return nil
	}
	commit := p.blur()
	for i, it := range p.list.Items {
		if it.ID == id {
			p.list.Selected = i
		}
	}
	p.focus = focusEdit
	p.list.EditingID = id
	p.editor.SetValue(profile.Name)
	p.editor.CursorEnd()
	return tea.Batch(commit, p.editor.Focus())
}

func (p *profilesPane) stopEditing() {
	p.focus = focusList
	p.list.EditingID = 0
	p.list.Editor = ""
	p.editor.Blur()
}

// blur leaves any input. A pending rename is committed, matching how the
// name field behaves when it loses focus.
func (p *profilesPane) blur() tea.Cmd {
	switch p.focus {
	case focusEdit:
		cmd := emit(session.RenameProfile{ID: p.list.EditingID, Name: p.editor.Value()})
		p.stopEditing()
		return cmd
	case focusAdd:
		p.focus = focusList
		p.adder.Blur()
	}
	return nil
}

// remove deletes a profile. A rename pending on that profile is dropped;
// any other pending rename is committed before the delete is applied.
func (p *profilesPane) remove(id int64) tea.Cmd {
	if p.focus == focusEdit && p.list.EditingID == id {
		p.stopEditing()
		return emit(session.RemoveProfile{ID: id})
	}
	return tea.Sequence(p.blur(), emit(session.RemoveProfile{ID: id}))
}

// pressAdd handles the Add button. A press while the input is unfocused
// and blank only focuses it.
func (p *profilesPane) pressAdd() tea.Cmd {
	if p.focus == focusAdd {
		return p.submitAdd()
	}
	commit := p.blur()
	p.focus = focusAdd
	if strings.TrimSpace(p.adder.Value()) == "" {
		return tea.Batch(commit, p.adder.Focus())
	}
	return tea.Batch(tea.Sequence(commit, p.submitAdd()), p.adder.Focus())
}

func (p *profilesPane) submitAdd() tea.Cmd {
	return emit(session.AddProfile{Name: p.adder.Value()})
}

func (p profilesPane) Update(msg tea.Msg) (profilesPane, tea.Cmd) {
	switch msg := msg.(type) {
	case accountChangedMsg:
		p.setRoster(msg.account.Profiles)
		p.report(msg)
		return p, nil

	case profilelist.EditRequestedMsg:
		return p, p.startEditing(msg.ID)

	case profilelist.DeleteRequestedMsg:
		return p, p.remove(msg.ID)

	case tea.KeyMsg:
		switch p.focus {
		case focusEdit:
			switch {
			case key.Matches(msg, p.keys.Save):
				return p, p.blur()
			case key.Matches(msg, p.keys.Cancel):
				p.stopEditing()
				return p, nil
			}
			var cmd tea.Cmd
			p.editor, cmd = p.editor.Update(msg)
			return p, cmd
		case focusAdd:
			switch {
			case key.Matches(msg, p.keys.Save):
				return p, p.submitAdd()
			case key.Matches(msg, p.keys.Cancel):
				return p, p.blur()
			}
			var cmd tea.Cmd
			p.adder, cmd = p.adder.Update(msg)
			return p, cmd
		}

		switch {
		case key.Matches(msg, p.keys.Edit):
			if it, ok := p.list.SelectedItem(); ok {
				return p, p.startEditing(it.ID)
			}
			return p, nil
		case key.Matches(msg, p.keys.Delete):
			if it, ok := p.list.SelectedItem(); ok {
				return p, emit(session.RemoveProfile{ID: it.ID})
			}
			return p, nil
		case key.Matches(msg, p.keys.Add):
			if p.roster.Full() {
				p.addHint = true
				return p, nil
			}
			p.focus = focusAdd
			return p, p.adder.Focus()
		}
		var cmd tea.Cmd
		p.list, cmd = p.list.Update(msg)
		return p, cmd

	case tea.MouseMsg:
		if p.zone == nil {
			return p, nil
		}
		if msg.Action == tea.MouseActionRelease {
			switch {
			case p.zone.Get("profiles-add-button").InBounds(msg):
				return p, p.pressAdd()
			case p.zone.Get("profiles-add-input").InBounds(msg):
				if p.focus == focusAdd {
					return p, nil
				}
				commit := p.blur()
				p.focus = focusAdd
				return p, tea.Batch(commit, p.adder.Focus())
			case p.focus == focusEdit && p.zone.Get(p.editorZone()).InBounds(msg):
				return p, nil
			}
		}
		var commit tea.Cmd
		if msg.Action == tea.MouseActionRelease && p.focus != focusList {
			commit = p.blur()
		}
		var cmd tea.Cmd
		p.list, cmd = p.list.HandleMouse(msg)
		return p, tea.Batch(commit, cmd)
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	p.list, cmd = p.list.Update(msg)
	cmds = append(cmds, cmd)
	switch p.focus {
	case focusEdit:
		p.editor, cmd = p.editor.Update(msg)
		cmds = append(cmds, cmd)
	case focusAdd:
		p.adder, cmd = p.adder.Update(msg)
		cmds = append(cmds, cmd)
	}
	return p, tea.Batch(cmds...)
}

// report turns the outcome of a profile command into the status line.
func (p *profilesPane) report(msg accountChangedMsg) {
	switch msg.kind {
	case "add_profile", "rename_profile", "remove_profile":
	default:
		return
	}
	p.addHint = false
	p.failed = msg.err != nil
	if msg.err != nil {
		p.status = profileError(p.loc, msg.err)
		return
	}
	switch msg.kind {
	case "add_profile":
		p.adder.SetValue("")
		if n := len(msg.account.Profiles); n > 0 {
			p.status = p.loc.Textf(textProfileAdded, msg.account.Profiles[n-1].Name)
		}
	case "rename_profile":
		// The selection may already have moved on when a rename is committed
		// by focus loss, so name the profile the command targeted.
		if rename, ok := msg.cmd.(session.RenameProfile); ok {
			if profile, ok := msg.account.Profiles.Find(rename.ID); ok {
				p.status = p.loc.Textf(textProfileRenamed, profile.Name)
			}
		}
	case "remove_profile":
		p.status = p.loc.Text(textProfileRemoved)
	}
}

func profileError(loc localizer, err error) string {
	switch {
	case errors.Is(err, roster.ErrEmptyName):
		return loc.Text(textErrEmptyName)
	case errors.Is(err, roster.ErrRosterFull):
		return loc.Textf(textErrRosterFull, roster.MaxProfiles)
	case errors.Is(err, roster.ErrNotFound):
		return loc.Text(textErrNotFound)
	}
	return loc.Text(textErrUnknown)
}

func (p profilesPane) editorZone() string {
	return "profiles-editor"
}

func (p profilesPane) View(width int) string {
	list := p.list
	if p.focus == focusEdit {
		list.Editor = p.mark(p.editorZone(), lipgloss.NewStyle().Foreground(theme.Primary).Render("› ")+p.editor.View())
	}

	var sections []string
	sections = append(sections, paneSubtle.Render(p.loc.Textf(textProfilesCount, len(p.roster), roster.MaxProfiles)), "")
	if len(p.roster) == 0 {
		sections = append(sections, paneSubtle.Render(p.loc.Text(textNoProfiles)))
	} else {
		sections = append(sections, list.View(width))
	}
	sections = append(sections, "")

	if p.roster.Full() {
		sections = append(sections, paneSubtle.Render(p.loc.Textf(textRosterFullHint, roster.MaxProfiles)))
	} else {
		box := paneBoxed
		if p.focus == focusAdd {
			box = paneFocused
		}
		button := paneButton
		if strings.TrimSpace(p.adder.Value()) == "" {
			button = paneMuted
		}
		input := p.mark("profiles-add-input", box.Width(clampWidth(width-16, 20, 44)).Render(p.adder.View()))
		add := p.mark("profiles-add-button", button.Render(" "+p.loc.Text(textAddButton)+" "))
		sections = append(sections,
			paneTitle.Render(p.loc.Text(textAddProfile)),
			lipgloss.JoinHorizontal(lipgloss.Center, input, "  ", add),
		)
	}

	switch {
	case p.addHint:
		sections = append(sections, "", paneError.Render(p.loc.Textf(textErrRosterFull, roster.MaxProfiles)))
	case p.status != "" && p.failed:
		sections = append(sections, "", paneError.Render(p.status))
	case p.status != "":
		sections = append(sections, "", paneOK.Render(p.status))
	}
	return strings.Join(sections, "\n")
}

func (p profilesPane) mark(id, s string) string {
	if p.zone == nil {
		return s
	}
	return p.zone.Mark(id, s)
}

func clampWidth(w, lo, hi int) int {
	if w < lo {
		return lo
	}
	if w > hi {
		return hi
	}
	return w
}
