// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// MembershipStatus is the lifecycle state of a tenant membership.
type MembershipStatus int16

const (
	StatusPendingInvitation MembershipStatus = iota
	StatusPendingAcceptance
	StatusActive
	StatusInactive
)

func (s MembershipStatus) String() string {
	switch s {
	case StatusPendingInvitation:
		return "pending_invitation"
	case StatusPendingAcceptance:
		return "pending_acceptance"
	case StatusActive:
		return "active"
	case StatusInactive:
		return "inactive"
	}
	return "unknown"
}

// JoinMethod records how a user became a member of a tenant.
type JoinMethod int16

const (
	JoinedCreator JoinMethod = iota
	JoinedByInvitation
	JoinedByLink
	JoinedByPublicURL
)

func (j JoinMethod) String() string {
	switch j {
	case JoinedCreator:
		return "creator"
	case JoinedByInvitation:
		return "invitation"
	case JoinedByLink:
		return "link"
	case JoinedByPublicURL:
		return "public_url"
	}
	return "unknown"
}

type Role struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

type Permission struct {
	ID   string `db:"id"`
	Name string `db:"name"`
}

type User struct {
	ID        string    `db:"id"`
	Email     string    `db:"email"`
	Username  string    `db:"username"`
	Name      string    `db:"name"`
	Firstname string    `db:"firstname"`
	Surname   string    `db:"surname"`
	CreatedAt time.Time `db:"created_at"`

	// Roles are global roles, unrelated to any tenant membership.
	Roles []*Role `db:"-"`
}

type Tenant struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

type TenantMembership struct {
	ID        string           `db:"id"`
	TenantID  string           `db:"tenant_id"`
	UserID    string           `db:"user_id"`
	RoleID    string           `db:"role_id"`
	Status    MembershipStatus `db:"status"`
	Joined    JoinMethod       `db:"joined"`
	CreatedAt time.Time        `db:"created_at"`
}

type Workspace struct {
	ID                   string    `db:"id"`
	TenantID             string    `db:"tenant_id"`
	Name                 string    `db:"name"`
	Type                 int       `db:"type"`
	BusinessMainActivity string    `db:"business_main_activity"`
	RegistrationNumber   string    `db:"registration_number"`
	CreatedAt            time.Time `db:"created_at"`
}

type WorkspaceMembership struct {
	ID          string    `db:"id"`
	WorkspaceID string    `db:"workspace_id"`
	UserID      string    `db:"user_id"`
	CreatedAt   time.Time `db:"created_at"`
}

// Summary holds row counts per seeded table.
type Summary struct {
	Roles                int64
	Permissions          int64
	Users                int64
	Tenants              int64
	TenantMemberships    int64
	Workspaces           int64
	WorkspaceMemberships int64
}
