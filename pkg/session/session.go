// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package session owns the one Account value of a running session. Views
// never change the account themselves; they hand a Command to Apply and
// re-render from the Account in the Result.
package session

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator"

	"github.com/terminal-games/flix/pkg/logging"
	"github.com/terminal-games/flix/pkg/roster"
)

const DefaultAvatar = "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop"

var (
	ErrInvalidAccount = errors.New("invalid account")
	ErrUnknownCommand = errors.New("unknown command")
)

type Account struct {
	DisplayName string        `json:"name" validate:"required"`
	Email       string        `json:"email" validate:"required,email"`
	Avatar      string        `json:"profile_image"`
	Plan        string        `json:"plan"`
	Profiles    roster.Roster `json:"profiles"`
}

func (a Account) clone() Account {
	a.Profiles = a.Profiles.Clone()
	return a
}

// Default is the account every session starts from.
func Default() Account {
	return Account{
		DisplayName: "John Doe",
		Email:       "john.doe@email.com",
		Avatar:      DefaultAvatar,
		Plan:        "Premium",
		Profiles: roster.Roster{
			{ID: 1, Name: "John", Avatar: DefaultAvatar},
			{ID: 2, Name: "Sarah", Avatar: "https://images.pexels.com/photos/415829/pexels-photo-415829.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop"},
			{ID: 3, Name: "Kids", Avatar: "https://images.pexels.com/photos/1620760/pexels-photo-1620760.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop"},
		},
	}
}

type Session struct {
	account  Account
	profiles *roster.Manager
	validate *validator.Validate
	log      *slog.Logger
}

type Option func(*Session)

func WithLogger(log *slog.Logger) Option {
	return func(s *Session) {
		s.log = log
	}
}

func WithSequence(ids *roster.Sequence) Option {
	return func(s *Session) {
		s.profiles = roster.NewManager(ids)
	}
}

// New starts a session from acct after checking it against the roster and
// account invariants.
func New(acct Account, opts ...Option) (*Session, error) {
	s := &Session{
		profiles: roster.NewManager(nil),
		validate: validator.New(),
		log:      logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := roster.Validate(acct.Profiles); err != nil {
		return nil, fmt.Errorf("seed roster: %w", err)
	}
	if err := s.checkAccount(acct); err != nil {
		return nil, err
	}
	s.account = acct.clone()
	return s, nil
}

// Account returns a copy of the current account.
func (s *Session) Account() Account {
	return s.account.clone()
}

type Result struct {
	Account Account
	Err     error
}

// Apply runs cmd against the current account. When cmd fails the account is
// left as it was and Result.Err says why.
func (s *Session) Apply(cmd Command) Result {
	if cmd == nil {
		return Result{Account: s.Account(), Err: ErrUnknownCommand}
	}
	next, err := cmd.apply(s, s.account)
	if err == nil {
		s.account = next
	}
	attrs := []any{
		slog.String("command", cmd.Kind()),
		slog.String("outcome", outcome(err)),
		slog.Int("profiles", len(s.account.Profiles)),
		slog.Any("profile_ids", s.account.Profiles.IDs()),
	}
	if err != nil {
		s.log.Info("command rejected", append(attrs, logging.Err(err))...)
	} else {
		s.log.Debug("command applied", attrs...)
	}
	return Result{Account: s.Account(), Err: err}
}

func (s *Session) checkAccount(a Account) error {
	a.DisplayName = strings.TrimSpace(a.DisplayName)
	a.Email = strings.TrimSpace(a.Email)
	if err := s.validate.Struct(a); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidAccount, describe(err))
	}
	return nil
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			parts = append(parts, strings.ToLower(fe.Field())+" is required")
		case "email":
			parts = append(parts, "email address is not valid")
		default:
			parts = append(parts, strings.ToLower(fe.Field())+" failed "+fe.Tag())
		}
	}
	return strings.Join(parts, ", ")
}

func outcome(err error) string {
	switch {
	case errors.Is(err, ErrInvalidAccount):
		return "invalid_account"
	case errors.Is(err, ErrUnknownCommand):
		return "unknown_command"
	}
	return roster.Outcome(err)
}
