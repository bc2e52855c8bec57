// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTenantName = errors.New("tenant name must not be empty")
	ErrDuplicateMember   = errors.New("user listed more than once in tenant members")
)

// Step identifies which stage of tenant assembly failed.
type Step int

const (
	StepCreateTenant Step = iota + 1
	StepCreateTenantMembership
	StepCreateWorkspace
	StepCreateWorkspaceMembership
)

func (s Step) String() string {
	switch s {
	case StepCreateTenant:
		return "create tenant"
	case StepCreateTenantMembership:
		return "create tenant membership"
	case StepCreateWorkspace:
		return "create workspace"
	case StepCreateWorkspaceMembership:
		return "create workspace membership"
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// PersistenceError is returned when the storage layer rejects a create call.
// Name is the tenant or workspace name the record belongs to.
type PersistenceError struct {
	Step Step
	Kind string
	Name string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to %s for %q: %v", e.Step, e.Name, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
