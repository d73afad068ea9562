// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package roster manages the ordered list of viewer profiles that belongs to
// one account. Every operation is a pure transition: it takes a roster value
// and returns a new one, leaving the input untouched.
package roster

import (
	"errors"
	"fmt"
	"strings"
)

// MaxProfiles is the most profiles a single account may hold.
const MaxProfiles = 5

var (
	ErrRosterFull = errors.New("roster is full")
	ErrEmptyName  = errors.New("profile name is empty")
	ErrNotFound   = errors.New("profile not found")
)

// Profile is one viewer identity within an account.
type Profile struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// Roster is an ordered sequence of profiles.
type Roster []Profile

func (r Roster) Full() bool {
	return len(r) >= MaxProfiles
}

func (r Roster) Find(id int64) (Profile, bool) {
	for _, p := range r {
		if p.ID == id {
			return p, true
		}
	}
	return Profile{}, false
}

func (r Roster) Contains(id int64) bool {
	_, ok := r.Find(id)
	return ok
}

func (r Roster) IDs() []int64 {
	ids := make([]int64, 0, len(r))
	for _, p := range r {
		ids = append(ids, p.ID)
	}
	return ids
}

// Clone returns a copy that shares no backing array with r.
func (r Roster) Clone() Roster {
	if r == nil {
		return nil
	}
	out := make(Roster, len(r))
	copy(out, r)
	return out
}

// Validate reports the first invariant r violates, if any.
func Validate(r Roster) error {
	if len(r) > MaxProfiles {
		return fmt.Errorf("%w: %d profiles exceeds %d", ErrRosterFull, len(r), MaxProfiles)
	}
	seen := make(map[int64]struct{}, len(r))
	for _, p := range r {
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("duplicate profile id %d", p.ID)
		}
		seen[p.ID] = struct{}{}
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("profile %d: %w", p.ID, ErrEmptyName)
		}
	}
	return nil
}

// Outcome names the result of an operation for logs and status lines.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrRosterFull):
		return "roster_full"
	case errors.Is(err, ErrEmptyName):
		return "empty_name"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	default:
		return "error"
	}
}

// Manager applies roster transitions, drawing new ids from its Sequence.
type Manager struct {
	ids *Sequence
}

func NewManager(ids *Sequence) *Manager {
	if ids == nil {
		ids = NewSequence(nil)
	}
	return &Manager{ids: ids}
}

// Add appends a profile named by the trimmed name. On error r is returned
// unchanged.
func (m *Manager) Add(r Roster, name, avatar string) (Roster, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return r, ErrEmptyName
	}
	if r.Full() {
		return r, ErrRosterFull
	}

	id := m.ids.Next()
	for r.Contains(id) {
		id = m.ids.Next()
	}

	out := make(Roster, len(r), len(r)+1)
	copy(out, r)
	return append(out, Profile{ID: id, Name: name, Avatar: avatar}), nil
}

// Rename replaces the name of the profile with the given id. Names are
// trimmed and must be non-empty, the same rule Add applies.
func (m *Manager) Rename(r Roster, id int64, name string) (Roster, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return r, ErrEmptyName
	}
	if !r.Contains(id) {
		return r, ErrNotFound
	}

	out := r.Clone()
	for i := range out {
		if out[i].ID == id {
			out[i].Name = name
		}
	}
	return out, nil
}

// Remove drops the profile with the given id, keeping the others in order.
func (m *Manager) Remove(r Roster, id int64) (Roster, error) {
	if !r.Contains(id) {
		return r, ErrNotFound
	}

	out := make(Roster, 0, len(r)-1)
	for _, p := range r {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out, nil
}
