// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/canonical/tenant-seed/internal/db"
	"github.com/canonical/tenant-seed/internal/logging"
	"github.com/canonical/tenant-seed/internal/monitoring"
	"github.com/canonical/tenant-seed/internal/tracing"
	"github.com/canonical/tenant-seed/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

// Member binds a user to the tenant-scoped role it holds in one tenant.
type Member struct {
	User *types.User
	Role *types.Role
}

// Assembly is the record graph persisted for one tenant. Slices follow the
// order of the inputs; WorkspaceMemberships is laid out workspace by workspace.
type Assembly struct {
	Tenant               *types.Tenant
	Memberships          []*types.TenantMembership
	Workspaces           []*types.Workspace
	WorkspaceMemberships []*types.WorkspaceMembership
}

type Service struct {
	storage     StorageInterface
	concurrency int
	// inTx reports a transaction scope, whose statements share a connection
	inTx func(context.Context) bool

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	concurrency int,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	if concurrency < 1 {
		concurrency = 1
	}

	return &Service{
		storage:     storage,
		concurrency: concurrency,
		inTx:        db.InTx,
		tracer:      tracer,
		monitor:     monitor,
		logger:      logger,
	}
}

// AssembleTenant creates a tenant, one membership per member, the named
// workspaces and every (workspace, member) workspace membership.
// All seeded memberships are recorded as active creators; there is no
// invitation flow at seeding time.
// The tenant is created first; memberships and workspaces are then issued
// concurrently and all of them are awaited. Inside a transaction scope they
// run one at a time instead. Rows written before a failure are left in place.
func (s *Service) AssembleTenant(ctx context.Context, name string, workspaceNames []string, members []Member) (*Assembly, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.AssembleTenant")
	defer span.End()

	if name == "" {
		return nil, ErrInvalidTenantName
	}

	if err := validateMembers(members); err != nil {
		return nil, err
	}

	t, err := s.storage.CreateTenant(ctx, &types.Tenant{Name: name})
	if err != nil {
		return nil, &PersistenceError{Step: StepCreateTenant, Kind: "tenant", Name: name, Err: err}
	}

	a := &Assembly{
		Tenant:               t,
		Memberships:          make([]*types.TenantMembership, len(members)),
		Workspaces:           make([]*types.Workspace, len(workspaceNames)),
		WorkspaceMemberships: make([]*types.WorkspaceMembership, len(workspaceNames)*len(members)),
	}

	limit := s.concurrency
	if s.inTx(ctx) {
		limit = 1
	}

	// each goroutine writes only its own slice indexes
	g := new(errgroup.Group)
	g.SetLimit(limit)

	for i, m := range members {
		g.Go(func() error {
			membership, err := s.storage.CreateTenantMembership(ctx, &types.TenantMembership{
				TenantID: t.ID,
				UserID:   m.User.ID,
				RoleID:   m.Role.ID,
				Status:   types.StatusActive,
				Joined:   types.JoinedCreator,
			})
			if err != nil {
				return &PersistenceError{Step: StepCreateTenantMembership, Kind: "tenant_membership", Name: name, Err: err}
			}

			a.Memberships[i] = membership
			return nil
		})
	}

	for i, workspaceName := range workspaceNames {
		g.Go(func() error {
			return s.assembleWorkspace(ctx, a, i, workspaceName, members)
		})
	}

	if err := g.Wait(); err != nil {
		s.logger.Debugf("failed to assemble tenant %s: %v", name, err)
		return nil, err
	}

	s.logger.Debugf(
		"assembled tenant %s: %d members, %d workspaces, %d workspace memberships",
		name, len(a.Memberships), len(a.Workspaces), len(a.WorkspaceMemberships),
	)

	return a, nil
}

func (s *Service) assembleWorkspace(ctx context.Context, a *Assembly, idx int, name string, members []Member) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.assembleWorkspace")
	defer span.End()

	w, err := s.storage.CreateWorkspace(ctx, &types.Workspace{
		TenantID:             a.Tenant.ID,
		Name:                 name,
		Type:                 0,
		BusinessMainActivity: "",
		RegistrationNumber:   "",
	})
	if err != nil {
		return &PersistenceError{Step: StepCreateWorkspace, Kind: "workspace", Name: name, Err: err}
	}

	a.Workspaces[idx] = w

	for j, m := range members {
		wm, err := s.storage.CreateWorkspaceMembership(ctx, &types.WorkspaceMembership{
			WorkspaceID: w.ID,
			UserID:      m.User.ID,
		})
		if err != nil {
			return &PersistenceError{Step: StepCreateWorkspaceMembership, Kind: "workspace_membership", Name: name, Err: err}
		}

		a.WorkspaceMemberships[idx*len(members)+j] = wm
	}

	return nil
}

func validateMembers(members []Member) error {
	seen := make(map[string]struct{}, len(members))

	for i, m := range members {
		if m.User == nil || m.Role == nil {
			return fmt.Errorf("member %d is missing a user or role", i)
		}

		if _, ok := seen[m.User.ID]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateMember, m.User.ID)
		}
		seen[m.User.ID] = struct{}{}
	}

	return nil
}
