// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"

	"github.com/canonical/tenant-seed/internal/types"
)

type ServiceInterface interface {
	AssembleTenant(ctx context.Context, name string, workspaceNames []string, members []Member) (*Assembly, error)
}

type StorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	CreateTenantMembership(ctx context.Context, membership *types.TenantMembership) (*types.TenantMembership, error)
	CreateWorkspace(ctx context.Context, w *types.Workspace) (*types.Workspace, error)
	CreateWorkspaceMembership(ctx context.Context, membership *types.WorkspaceMembership) (*types.WorkspaceMembership, error)
}
