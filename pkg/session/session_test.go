// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package session

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terminal-games/flix/pkg/logging"
	"github.com/terminal-games/flix/pkg/roster"
)

func newSession(t *testing.T) *Session {
	t.Helper()
	s, err := New(Default())
	require.NoError(t, err)
	return s
}

func names(a Account) []string {
	out := make([]string, 0, len(a.Profiles))
	for _, p := range a.Profiles {
		out = append(out, p.Name)
	}
	return out
}

func TestNew_RejectsBrokenSeed(t *testing.T) {
	acct := Default()
	acct.Profiles = append(acct.Profiles, roster.Profile{ID: 1, Name: "dup"})
	_, err := New(acct)
	assert.Error(t, err)

	acct = Default()
	acct.Email = "nope"
	_, err = New(acct)
	assert.ErrorIs(t, err, ErrInvalidAccount)
}

func TestApply_AddScenario(t *testing.T) {
	s := newSession(t)

	res := s.Apply(AddProfile{Name: "Guest"})
	require.NoError(t, res.Err)
	assert.Equal(t, []string{"John", "Sarah", "Kids", "Guest"}, names(res.Account))
	assert.Equal(t, DefaultAvatar, res.Account.Profiles[3].Avatar)

	require.NoError(t, s.Apply(AddProfile{Name: "Grandma", Avatar: "g.jpg"}).Err)
	require.Len(t, s.Account().Profiles, 5)

	res = s.Apply(AddProfile{Name: "One too many"})
	assert.ErrorIs(t, res.Err, roster.ErrRosterFull)
	assert.Len(t, res.Account.Profiles, 5)
}

func TestApply_RenameScenario(t *testing.T) {
	s := newSession(t)

	res := s.Apply(RenameProfile{ID: 2, Name: "Sarah J."})
	require.NoError(t, res.Err)
	assert.Equal(t, []string{"John", "Sarah J.", "Kids"}, names(res.Account))
	assert.Equal(t, []int64{1, 2, 3}, res.Account.Profiles.IDs())
}

func TestApply_FailureLeavesAccountUnchanged(t *testing.T) {
	s := newSession(t)
	before := s.Account()

	for _, cmd := range []Command{
		AddProfile{Name: "   "},
		RenameProfile{ID: 99, Name: "x"},
		RenameProfile{ID: 1, Name: ""},
		RemoveProfile{ID: 99},
		SetDisplayName{Name: " "},
		SetEmail{Email: "john at example"},
	} {
		res := s.Apply(cmd)
		assert.Error(t, res.Err, cmd.Kind())
		assert.Equal(t, before, res.Account, cmd.Kind())
	}
	assert.Equal(t, before, s.Account())
}

func TestApply_Remove(t *testing.T) {
	s := newSession(t)
	res := s.Apply(RemoveProfile{ID: 1})
	require.NoError(t, res.Err)
	assert.Equal(t, []string{"Sarah", "Kids"}, names(res.Account))

	res = s.Apply(RemoveProfile{ID: 1})
	assert.ErrorIs(t, res.Err, roster.ErrNotFound)
	assert.Equal(t, []string{"Sarah", "Kids"}, names(res.Account))
}

func TestApply_AccountFields(t *testing.T) {
	s := newSession(t)

	res := s.Apply(SetDisplayName{Name: "  Jane Doe "})
	require.NoError(t, res.Err)
	assert.Equal(t, "Jane Doe", res.Account.DisplayName)

	res = s.Apply(SetEmail{Email: "jane@example.com"})
	require.NoError(t, res.Err)
	assert.Equal(t, "jane@example.com", res.Account.Email)

	res = s.Apply(SetEmail{Email: "broken"})
	assert.ErrorIs(t, res.Err, ErrInvalidAccount)
	assert.Contains(t, res.Err.Error(), "email address is not valid")
	assert.Equal(t, "jane@example.com", res.Account.Email)
}

func TestApply_NilCommand(t *testing.T) {
	res := newSession(t).Apply(nil)
	assert.ErrorIs(t, res.Err, ErrUnknownCommand)
}

func TestAccount_ReturnsCopy(t *testing.T) {
	s := newSession(t)
	a := s.Account()
	a.Profiles[0].Name = "Mutated"
	assert.Equal(t, "John", s.Account().Profiles[0].Name)
}

func TestApply_LogsRejections(t *testing.T) {
	var buf bytes.Buffer
	s, err := New(Default(), WithLogger(logging.NewWithWriter(&buf, "info")))
	require.NoError(t, err)

	s.Apply(RemoveProfile{ID: 404})
	assert.Contains(t, buf.String(), "command=remove_profile")
	assert.Contains(t, buf.String(), "outcome=not_found")
	assert.Contains(t, buf.String(), `profile_ids="[1 2 3]"`)
}

func TestApply_LogsRosterAfterChange(t *testing.T) {
	var buf bytes.Buffer
	s, err := New(Default(), WithLogger(logging.NewWithWriter(&buf, "debug")))
	require.NoError(t, err)

	s.Apply(RemoveProfile{ID: 2})
	assert.Contains(t, buf.String(), "command=remove_profile")
	assert.Contains(t, buf.String(), `profile_ids="[1 3]"`)
}
