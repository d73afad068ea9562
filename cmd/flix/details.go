// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/terminal-games/flix/cmd/flix/theme"
	"github.com/terminal-games/flix/pkg/session"
)

const (
	fieldName = iota
	fieldEmail
	fieldCount
)

type detailsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Edit   key.Binding
	Save   key.Binding
	Cancel key.Binding
}

func newDetailsKeyMap(loc localizer) detailsKeyMap {
	return detailsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", loc.Text(textHelpUp)),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", loc.Text(textHelpDown)),
		),
		Edit: key.NewBinding(
			key.WithKeys("enter", "e"),
			key.WithHelp("enter", loc.Text(textHelpEdit)),
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

// detailsPane edits the account name and email. Values are committed with
// enter and validated by the session.
type detailsPane struct {
	loc      localizer
	zone     *zone.Manager
	keys     detailsKeyMap
	account  session.Account
	inputs   [fieldCount]textinput.Model
	selected int
	editing  bool
	status   string
	failed   bool
}

func newDetailsPane(zoneManager *zone.Manager, loc localizer, acct session.Account) detailsPane {
	d := detailsPane{
		loc:     loc,
		zone:    zoneManager,
		keys:    newDetailsKeyMap(loc),
		account: acct,
	}
	for i := range d.inputs {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 64
		in.Width = 40
		d.inputs[i] = in
	}
	return d
}

func (d detailsPane) Capturing() bool {
	return d.editing
}

func (d detailsPane) ShortHelp() []key.Binding {
	if d.editing {
		return []key.Binding{d.keys.Save, d.keys.Cancel}
	}
	return []key.Binding{d.keys.Up, d.keys.Down, d.keys.Edit}
}

func (d detailsPane) value(field int) string {
	if field == fieldEmail {
		return d.account.Email
	}
	return d.account.DisplayName
}

func (d *detailsPane) startEditing(field int) tea.Cmd {
	d.selected = field
	d.editing = true
	d.inputs[field].SetValue(d.value(field))
	d.inputs[field].CursorEnd()
	return d.inputs[field].Focus()
}

// commit ends editing and asks the session to store the typed value.
func (d *detailsPane) commit() tea.Cmd {
	if !d.editing {
		return nil
	}
	d.editing = false
	in := &d.inputs[d.selected]
	in.Blur()
	if in.Value() == d.value(d.selected) {
		return nil
	}
	if d.selected == fieldEmail {
		return emit(session.SetEmail{Email: in.Value()})
	}
	return emit(session.SetDisplayName{Name: in.Value()})
}

func (d *detailsPane) cancel() {
	d.editing = false
	d.inputs[d.selected].Blur()
}

func (d detailsPane) Update(msg tea.Msg) (detailsPane, tea.Cmd) {
	switch msg := msg.(type) {
	case accountChangedMsg:
		d.account = msg.account
		switch msg.kind {
		case "set_display_name", "set_email":
			d.failed = msg.err != nil
			d.status = d.loc.Text(textDetailsSaved)
			if msg.err != nil {
				d.status = detailsError(d.loc, msg.kind, msg.err)
			}
		}
		return d, nil

	case tea.KeyMsg:
		if d.editing {
			switch {
			case key.Matches(msg, d.keys.Save):
				return d, d.commit()
			case key.Matches(msg, d.keys.Cancel):
				d.cancel()
				return d, nil
			}
			var cmd tea.Cmd
			d.inputs[d.selected], cmd = d.inputs[d.selected].Update(msg)
			return d, cmd
		}
		switch {
		case key.Matches(msg, d.keys.Up):
			if d.selected > 0 {
				d.selected--
			}
		case key.Matches(msg, d.keys.Down):
			if d.selected < fieldCount-1 {
				d.selected++
			}
		case key.Matches(msg, d.keys.Edit):
			return d, d.startEditing(d.selected)
		}
		return d, nil

	case tea.MouseMsg:
		if d.zone == nil || msg.Action != tea.MouseActionRelease {
			return d, nil
		}
		for i := 0; i < fieldCount; i++ {
			if d.zone.Get(d.fieldZone(i)).InBounds(msg) {
				if d.editing && i == d.selected {
					return d, nil
				}
				commit := d.commit()
				return d, tea.Batch(commit, d.startEditing(i))
			}
		}
		return d, d.commit()
	}
	if d.editing {
		var cmd tea.Cmd
		d.inputs[d.selected], cmd = d.inputs[d.selected].Update(msg)
		return d, cmd
	}
	return d, nil
}

func detailsError(loc localizer, kind string, err error) string {
	if !errors.Is(err, session.ErrInvalidAccount) {
		return loc.Text(textErrUnknown)
	}
	if kind == "set_email" {
		return loc.Text(textErrEmail)
	}
	return loc.Text(textErrDisplayName)
}

func (d detailsPane) fieldZone(field int) string {
	return fmt.Sprintf("details-field-%d", field)
}

func (d detailsPane) View(width int) string {
	boxWidth := clampWidth(width-4, 20, 60)
	labels := [fieldCount]string{d.loc.Text(textLabelName), d.loc.Text(textLabelEmail)}

	var lines []string
	for i := 0; i < fieldCount; i++ {
		box := paneBoxed
		content := paneBody.Render(d.value(i))
		switch {
		case d.editing && i == d.selected:
			box = paneFocused
			content = d.inputs[i].View()
		case i == d.selected:
			box = paneBoxed.BorderForeground(theme.TextMuted)
			content += paneSubtle.Render("  " + d.loc.Text(textEnterToEdit))
		}
		field := box.Width(boxWidth).Render(content)
		if d.zone != nil {
			field = d.zone.Mark(d.fieldZone(i), field)
		}
		lines = append(lines, paneSubtle.Render(labels[i]), field, "")
	}

	plan := paneBoxed.Width(boxWidth).Render(paneBody.Render(d.loc.Textf(textPlanName, d.account.Plan)))
	lines = append(lines, paneSubtle.Render(d.loc.Text(textLabelPlan)), plan)

	if d.status != "" {
		style := paneOK
		if d.failed {
			style = paneError
		}
		lines = append(lines, "", style.Render(d.status))
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(strings.Join(lines, "\n"))
}
