// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package seed

import (
	"fmt"

	"github.com/canonical/tenant-seed/internal/types"
)

// UserDirectory is the ordered list of persisted users that plans refer to by position.
type UserDirectory struct {
	users []*types.User
}

func NewUserDirectory(users ...*types.User) *UserDirectory {
	return &UserDirectory{users: append([]*types.User(nil), users...)}
}

func (d *UserDirectory) Len() int {
	return len(d.users)
}

// At returns the user at position, or a PreconditionError when it is out of range.
func (d *UserDirectory) At(position int) (*types.User, error) {
	if position < 0 || position >= len(d.users) {
		return nil, &PreconditionError{
			Reason: fmt.Sprintf("user directory has %d entries, position %d requested", len(d.users), position),
		}
	}
	return d.users[position], nil
}
