// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package fixtures loads the user accounts created before tenants are seeded.
package fixtures

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/canonical/tenant-seed/internal/types"
)

//go:embed users.yaml
var defaultUsers []byte

type User struct {
	Email     string `yaml:"email" validate:"required,email"`
	Username  string `yaml:"username" validate:"required,min=3,max=32"`
	Firstname string `yaml:"firstname" validate:"required"`
	Surname   string `yaml:"surname" validate:"required"`
	Admin     bool   `yaml:"admin"`
}

// Name is the display name stored on the user record.
func (u User) Name() string {
	return u.Firstname + " " + u.Surname
}

// ToUser converts the fixture to a user record holding the given global roles.
func (u User) ToUser(roles ...*types.Role) *types.User {
	return &types.User{
		Email:     u.Email,
		Username:  u.Username,
		Name:      u.Name(),
		Firstname: u.Firstname,
		Surname:   u.Surname,
		Roles:     roles,
	}
}

type Set struct {
	Users []User `yaml:"users" validate:"required,min=1,dive"`
}

// Regular returns the non-administrator users in file order.
func (s *Set) Regular() []User {
	users := make([]User, 0, len(s.Users))
	for _, u := range s.Users {
		if !u.Admin {
			users = append(users, u)
		}
	}
	return users
}

// Admins returns the administrator users in file order.
func (s *Set) Admins() []User {
	var users []User
	for _, u := range s.Users {
		if u.Admin {
			users = append(users, u)
		}
	}
	return users
}

func (s *Set) validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(s); err != nil {
		return fmt.Errorf("invalid fixtures: %w", err)
	}

	emails := make(map[string]struct{}, len(s.Users))
	usernames := make(map[string]struct{}, len(s.Users))

	for _, u := range s.Users {
		if _, ok := emails[u.Email]; ok {
			return fmt.Errorf("invalid fixtures: duplicate email %s", u.Email)
		}
		emails[u.Email] = struct{}{}

		if _, ok := usernames[u.Username]; ok {
			return fmt.Errorf("invalid fixtures: duplicate username %s", u.Username)
		}
		usernames[u.Username] = struct{}{}
	}

	return nil
}

// Load decodes and validates a fixture set.
func Load(r io.Reader) (*Set, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	s := new(Set)
	if err := dec.Decode(s); err != nil {
		return nil, fmt.Errorf("failed to decode fixtures: %w", err)
	}

	if err := s.validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// LoadFile reads a fixture set from path.
func LoadFile(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fixtures: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Default returns the embedded fixture set.
func Default() (*Set, error) {
	return Load(bytes.NewReader(defaultUsers))
}
