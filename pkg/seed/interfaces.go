// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package seed

import (
	"context"

	"github.com/canonical/tenant-seed/internal/types"
	"github.com/canonical/tenant-seed/pkg/tenant"
)

type OrchestratorInterface interface {
	Run(ctx context.Context, directory *UserDirectory) error
}

type RoleCreatorInterface interface {
	CreateRole(ctx context.Context, name string) (*types.Role, error)
}

type StorageInterface interface {
	RoleCreatorInterface
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	Summary(ctx context.Context) (*types.Summary, error)
}

type AssemblerInterface interface {
	AssembleTenant(ctx context.Context, name string, workspaceNames []string, members []tenant.Member) (*tenant.Assembly, error)
}

type AuthorizerInterface interface {
	AssignTenantOwner(ctx context.Context, tenantID, userID string) error
	AssignTenantMember(ctx context.Context, tenantID, userID string) error
	AssignWorkspaceMembers(ctx context.Context, tenantID string, workspaceIDs, userIDs []string) error
}

type TransactorInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}
