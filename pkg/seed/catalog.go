// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package seed

import (
	"context"
	"fmt"

	"github.com/canonical/tenant-seed/internal/types"
)

const (
	AdminRole  = "admin"
	TenantRole = "tenant"

	TenantOwnerRole  = "tenantOwner"
	TenantAdminRole  = "tenantAdmin"
	TenantMemberRole = "tenantMember"
	TenantGuestRole  = "tenantGuest"
)

// GlobalRoles are held by users outside of any tenant.
var GlobalRoles = []string{AdminRole, TenantRole}

// TenantRoles are bound to users through tenant memberships.
// tenantGuest is created but not used by the default plan.
var TenantRoles = []string{TenantOwnerRole, TenantAdminRole, TenantMemberRole, TenantGuestRole}

// RoleCatalog is a read-only set of persisted roles indexed by name.
type RoleCatalog struct {
	names []string
	roles map[string]types.Role
}

func NewRoleCatalog(roles ...*types.Role) (*RoleCatalog, error) {
	c := &RoleCatalog{
		names: make([]string, 0, len(roles)),
		roles: make(map[string]types.Role, len(roles)),
	}

	for _, r := range roles {
		if r == nil || r.Name == "" || r.ID == "" {
			return nil, fmt.Errorf("role catalog entries need a name and an ID")
		}
		if _, ok := c.roles[r.Name]; ok {
			return nil, fmt.Errorf("role %s listed more than once", r.Name)
		}

		c.names = append(c.names, r.Name)
		c.roles[r.Name] = *r
	}

	return c, nil
}

// CreateRoleCatalog persists the named roles in order and returns them as a catalog.
func CreateRoleCatalog(ctx context.Context, creator RoleCreatorInterface, names ...string) (*RoleCatalog, error) {
	roles := make([]*types.Role, 0, len(names))

	for _, name := range names {
		r, err := creator.CreateRole(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to create role %s: %w", name, err)
		}
		roles = append(roles, r)
	}

	return NewRoleCatalog(roles...)
}

// Get returns a copy of the named role.
func (c *RoleCatalog) Get(name string) (*types.Role, bool) {
	r, ok := c.roles[name]
	if !ok {
		return nil, false
	}
	return &r, true
}

func (c *RoleCatalog) Has(name string) bool {
	_, ok := c.roles[name]
	return ok
}

// Names returns role names in creation order.
func (c *RoleCatalog) Names() []string {
	return append([]string(nil), c.names...)
}

func (c *RoleCatalog) Len() int {
	return len(c.names)
}
