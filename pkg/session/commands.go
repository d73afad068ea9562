// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package session

import "strings"

// Command is a change a view asks the session to make.
type Command interface {
	Kind() string
	apply(s *Session, a Account) (Account, error)
}

type AddProfile struct {
	Name   string
	Avatar string
}

func (AddProfile) Kind() string { return "add_profile" }

func (c AddProfile) apply(s *Session, a Account) (Account, error) {
	avatar := c.Avatar
	if avatar == "" {
		avatar = DefaultAvatar
	}
	profiles, err := s.profiles.Add(a.Profiles, c.Name, avatar)
	if err != nil {
		return a, err
	}
	a.Profiles = profiles
	return a, nil
}

type RenameProfile struct {
	ID   int64
	Name string
}

func (RenameProfile) Kind() string { return "rename_profile" }

func (c RenameProfile) apply(s *Session, a Account) (Account, error) {
	profiles, err := s.profiles.Rename(a.Profiles, c.ID, c.Name)
	if err != nil {
		return a, err
	}
	a.Profiles = profiles
	return a, nil
}

type RemoveProfile struct {
	ID int64
}

func (RemoveProfile) Kind() string { return "remove_profile" }

func (c RemoveProfile) apply(s *Session, a Account) (Account, error) {
	profiles, err := s.profiles.Remove(a.Profiles, c.ID)
	if err != nil {
		return a, err
	}
	a.Profiles = profiles
	return a, nil
}

type SetDisplayName struct {
	Name string
}

func (SetDisplayName) Kind() string { return "set_display_name" }

func (c SetDisplayName) apply(s *Session, a Account) (Account, error) {
	next := a
	next.DisplayName = strings.TrimSpace(c.Name)
	if err := s.checkAccount(next); err != nil {
		return a, err
	}
	return next, nil
}

type SetEmail struct {
	Email string
}

func (SetEmail) Kind() string { return "set_email" }

func (c SetEmail) apply(s *Session, a Account) (Account, error) {
	next := a
	next.Email = strings.TrimSpace(c.Email)
	if err := s.checkAccount(next); err != nil {
		return a, err
	}
	return next, nil
}
