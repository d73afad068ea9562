// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed() Roster {
	return Roster{
		{ID: 1, Name: "John", Avatar: "john.jpg"},
		{ID: 2, Name: "Sarah", Avatar: "sarah.jpg"},
		{ID: 3, Name: "Kids", Avatar: "kids.jpg"},
	}
}

func fixedClock(ms int64) func() time.Time {
	return func() time.Time { return time.UnixMilli(ms) }
}

func TestAdd_AppendsTrimmedProfile(t *testing.T) {
	m := NewManager(nil)
	r := seed()

	out, err := m.Add(r, "  Guest  ", "guest.jpg")
	require.NoError(t, err)
	require.Len(t, out, 4)

	last := out[3]
	assert.Equal(t, "Guest", last.Name)
	assert.Equal(t, "guest.jpg", last.Avatar)
	assert.False(t, r.Contains(last.ID), "new id must be fresh")
	assert.Equal(t, seed(), out[:3])
	assert.Len(t, r, 3, "input roster must not change")
}

func TestAdd_FillsToCapacityThenRejects(t *testing.T) {
	m := NewManager(nil)
	r := seed()

	var err error
	for _, name := range []string{"Guest", "Grandma"} {
		r, err = m.Add(r, name, "")
		require.NoError(t, err)
	}
	require.Len(t, r, MaxProfiles)
	assert.True(t, r.Full())

	out, err := m.Add(r, "Sixth", "")
	assert.ErrorIs(t, err, ErrRosterFull)
	assert.Equal(t, r, out)
	assert.Len(t, out, MaxProfiles)
}

func TestAdd_RejectsBlankNames(t *testing.T) {
	m := NewManager(nil)
	for _, name := range []string{"", "   ", "\t\n"} {
		out, err := m.Add(seed(), name, "")
		assert.ErrorIs(t, err, ErrEmptyName, "name %q", name)
		assert.Equal(t, seed(), out)
	}
}

func TestAdd_FullRosterRejectsEvenValidName(t *testing.T) {
	m := NewManager(nil)
	full := Roster{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}, {ID: 3, Name: "c"}, {ID: 4, Name: "d"}, {ID: 5, Name: "e"}}
	out, err := m.Add(full, "f", "")
	assert.ErrorIs(t, err, ErrRosterFull)
	assert.Equal(t, full, out)
}

func TestAdd_DoesNotWriteIntoSharedBackingArray(t *testing.T) {
	m := NewManager(nil)
	backing := make(Roster, 3, 5)
	copy(backing, seed())

	a, err := m.Add(backing, "A", "")
	require.NoError(t, err)
	b, err := m.Add(backing, "B", "")
	require.NoError(t, err)

	assert.Equal(t, "A", a[3].Name)
	assert.Equal(t, "B", b[3].Name)
}

func TestAdd_SkipsIDsAlreadyInRoster(t *testing.T) {
	m := NewManager(NewSequence(fixedClock(2)))
	out, err := m.Add(seed(), "Guest", "")
	require.NoError(t, err)
	assert.Equal(t, int64(4), out[3].ID)
	assert.NoError(t, Validate(out))
}

func TestRename_ReplacesOnlyMatchingEntry(t *testing.T) {
	m := NewManager(nil)
	r := seed()

	out, err := m.Rename(r, 2, "Sarah J.")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, out.IDs())
	assert.Equal(t, "John", out[0].Name)
	assert.Equal(t, "Sarah J.", out[1].Name)
	assert.Equal(t, "Kids", out[2].Name)
	assert.Equal(t, "Sarah", r[1].Name, "input roster must not change")
}

func TestRename_Trims(t *testing.T) {
	out, err := NewManager(nil).Rename(seed(), 3, "  Family ")
	require.NoError(t, err)
	assert.Equal(t, "Family", out[2].Name)
}

func TestRename_RejectsBlankName(t *testing.T) {
	out, err := NewManager(nil).Rename(seed(), 1, "  ")
	assert.ErrorIs(t, err, ErrEmptyName)
	assert.Equal(t, seed(), out)
}

func TestRenameAndRemove_UnknownIDIsNoop(t *testing.T) {
	m := NewManager(nil)

	out, err := m.Rename(seed(), 42, "Nobody")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, seed(), out)

	out, err = m.Remove(seed(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, seed(), out)
}

func TestRemove_PreservesOrder(t *testing.T) {
	m := NewManager(nil)
	for _, tc := range []struct {
		id   int64
		want []int64
	}{
		{1, []int64{2, 3}},
		{2, []int64{1, 3}},
		{3, []int64{1, 2}},
	} {
		out, err := m.Remove(seed(), tc.id)
		require.NoError(t, err)
		assert.Equal(t, tc.want, out.IDs())
		assert.False(t, out.Contains(tc.id))
	}
}

func TestRemove_Idempotent(t *testing.T) {
	m := NewManager(nil)
	once, err := m.Remove(seed(), 2)
	require.NoError(t, err)

	twice, err := m.Remove(once, 2)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, once, twice)
}

func TestRemove_LastProfileLeavesEmptyRoster(t *testing.T) {
	out, err := NewManager(nil).Remove(Roster{{ID: 7, Name: "Solo"}}, 7)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.NoError(t, Validate(out))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(seed()))
	assert.NoError(t, Validate(nil))

	dup := Roster{{ID: 1, Name: "a"}, {ID: 1, Name: "b"}}
	assert.Error(t, Validate(dup))

	blank := Roster{{ID: 1, Name: " "}}
	assert.ErrorIs(t, Validate(blank), ErrEmptyName)

	tooMany := Roster{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}, {ID: 3, Name: "c"}, {ID: 4, Name: "d"}, {ID: 5, Name: "e"}, {ID: 6, Name: "f"}}
	assert.ErrorIs(t, Validate(tooMany), ErrRosterFull)
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, "ok", Outcome(nil))
	assert.Equal(t, "roster_full", Outcome(ErrRosterFull))
	assert.Equal(t, "empty_name", Outcome(ErrEmptyName))
	assert.Equal(t, "not_found", Outcome(ErrNotFound))
}

func TestSequence_StrictlyIncreasesWhenClockStalls(t *testing.T) {
	s := NewSequence(fixedClock(1000))
	a, b, c := s.Next(), s.Next(), s.Next()
	assert.Equal(t, int64(1000), a)
	assert.Equal(t, int64(1001), b)
	assert.Equal(t, int64(1002), c)
}

func TestSequence_ClockStepsBackwards(t *testing.T) {
	ms := int64(5000)
	s := NewSequence(func() time.Time { return time.UnixMilli(ms) })
	first := s.Next()
	ms = 10
	assert.Greater(t, s.Next(), first)
}
