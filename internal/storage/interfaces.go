// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/canonical/tenant-seed/internal/types"
)

type StorageInterface interface {
	CreateRole(ctx context.Context, name string) (*types.Role, error)
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	CreateTenantMembership(ctx context.Context, m *types.TenantMembership) (*types.TenantMembership, error)
	CreateWorkspace(ctx context.Context, w *types.Workspace) (*types.Workspace, error)
	CreateWorkspaceMembership(ctx context.Context, m *types.WorkspaceMembership) (*types.WorkspaceMembership, error)
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
	ListMembersByTenantID(ctx context.Context, tenantID string) ([]*types.TenantMembership, error)
	ListWorkspacesByTenantID(ctx context.Context, tenantID string) ([]*types.Workspace, error)
	Summary(ctx context.Context) (*types.Summary, error)
}
