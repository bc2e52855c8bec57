// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/canonical/tenant-seed/internal/openfga"
)

type AuthorizerInterface interface {
	AssignTenantOwner(context.Context, string, string) error
	AssignTenantMember(context.Context, string, string) error
	// AssignWorkspaceMembers links workspaces to their tenant and grants membership on each.
	AssignWorkspaceMembers(context.Context, string, []string, []string) error
}

type AuthzClientInterface interface {
	WriteTuple(ctx context.Context, user, relation, object string) error
	WriteTuples(context.Context, ...openfga.Tuple) error
}
