// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/canonical/tenant-seed/internal/logging"
	"github.com/canonical/tenant-seed/internal/monitoring"
	"github.com/canonical/tenant-seed/internal/openfga"
	"github.com/canonical/tenant-seed/internal/tracing"
)

var _ AuthorizerInterface = (*Authorizer)(nil)

type Authorizer struct {
	client AuthzClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *Authorizer) AssignTenantOwner(ctx context.Context, tenantId, userId string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.AssignTenantOwner")
	defer span.End()

	return a.client.WriteTuple(ctx, UserTuple(userId), OWNER_RELATION, TenantTuple(tenantId))
}

func (a *Authorizer) AssignTenantMember(ctx context.Context, tenantId, userId string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.AssignTenantMember")
	defer span.End()

	return a.client.WriteTuple(ctx, UserTuple(userId), MEMBER_RELATION, TenantTuple(tenantId))
}

func (a *Authorizer) AssignWorkspaceMembers(ctx context.Context, tenantId string, workspaceIds, userIds []string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.AssignWorkspaceMembers")
	defer span.End()

	tuples := make([]openfga.Tuple, 0, len(workspaceIds)*(len(userIds)+1))
	for _, w := range workspaceIds {
		tuples = append(tuples, *openfga.NewTuple(TenantTuple(tenantId), TENANT_RELATION, WorkspaceTuple(w)))
		for _, u := range userIds {
			tuples = append(tuples, *openfga.NewTuple(UserTuple(u), MEMBER_RELATION, WorkspaceTuple(w)))
		}
	}

	if err := a.client.WriteTuples(ctx, tuples...); err != nil {
		a.logger.Errorf("error when writing workspace tuples for tenant %s: %s", tenantId, err)
		return err
	}

	return nil
}

func NewAuthorizer(client AuthzClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	authorizer := new(Authorizer)

	authorizer.client = client

	authorizer.tracer = tracer
	authorizer.monitor = monitor
	authorizer.logger = logger

	return authorizer
}
