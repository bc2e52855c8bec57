// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package seed

import (
	"context"
	"fmt"

	"github.com/canonical/tenant-seed/internal/logging"
	"github.com/canonical/tenant-seed/internal/monitoring"
	"github.com/canonical/tenant-seed/internal/tracing"
	"github.com/canonical/tenant-seed/pkg/tenant"
)

var _ OrchestratorInterface = (*Orchestrator)(nil)

// Orchestrator creates the tenant-scoped roles and builds every tenant of a Plan.
type Orchestrator struct {
	roles      RoleCreatorInterface
	assembler  AssemblerInterface
	authz      AuthorizerInterface
	transactor TransactorInterface

	plan          *Plan
	transactional bool
	steps         *stepTimer

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewOrchestrator(
	roles RoleCreatorInterface,
	assembler AssemblerInterface,
	authz AuthorizerInterface,
	transactor TransactorInterface,
	plan *Plan,
	transactional bool,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Orchestrator {
	o := new(Orchestrator)

	o.roles = roles
	o.assembler = assembler
	o.authz = authz
	o.transactor = transactor

	o.plan = plan
	o.transactional = transactional
	o.steps = &stepTimer{monitor: monitor, logger: logger}

	o.tracer = tracer
	o.monitor = monitor
	o.logger = logger

	return o
}

// Run validates the plan against the directory, creates the tenant roles and
// builds the planned tenants in order.
func (o *Orchestrator) Run(ctx context.Context, directory *UserDirectory) error {
	ctx, span := o.tracer.Start(ctx, "seed.Orchestrator.Run")
	defer span.End()

	if err := o.plan.Validate(directory, TenantRoles); err != nil {
		return err
	}

	var catalog *RoleCatalog
	err := o.steps.run("tenant roles", "tenant roles", func() error {
		var err error
		catalog, err = CreateRoleCatalog(ctx, o.roles, TenantRoles...)
		return err
	})
	if err != nil {
		return err
	}

	_, err = o.Build(ctx, directory, catalog)
	return err
}

// Build assembles every planned tenant from an existing catalog and grants the
// matching authorization relations.
func (o *Orchestrator) Build(ctx context.Context, directory *UserDirectory, catalog *RoleCatalog) ([]*tenant.Assembly, error) {
	ctx, span := o.tracer.Start(ctx, "seed.Orchestrator.Build")
	defer span.End()

	if err := o.plan.Validate(directory, catalog.Names()); err != nil {
		return nil, err
	}

	assemblies := make([]*tenant.Assembly, 0, len(o.plan.Tenants))

	for _, tp := range o.plan.Tenants {
		members, err := o.members(tp, directory, catalog)
		if err != nil {
			return nil, err
		}

		var a *tenant.Assembly
		err = o.steps.run("tenant", "tenant "+tp.Name, func() error {
			var err error
			if a, err = o.assemble(ctx, tp, members); err != nil {
				return fmt.Errorf("failed to seed tenant %s: %w", tp.Name, err)
			}

			if err := o.grant(ctx, a, members); err != nil {
				return fmt.Errorf("failed to authorize tenant %s: %w", tp.Name, err)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}

		o.logger.Infof("seeded tenant %s with %d members and %d workspaces", tp.Name, len(members), len(a.Workspaces))
		assemblies = append(assemblies, a)
	}

	return assemblies, nil
}

func (o *Orchestrator) members(tp TenantPlan, directory *UserDirectory, catalog *RoleCatalog) ([]tenant.Member, error) {
	members := make([]tenant.Member, 0, len(tp.Members))

	for _, mp := range tp.Members {
		user, err := directory.At(mp.Position)
		if err != nil {
			return nil, err
		}

		role, ok := catalog.Get(mp.Role)
		if !ok {
			return nil, &PreconditionError{Tenant: tp.Name, Reason: fmt.Sprintf("role %s is not in the catalog", mp.Role)}
		}

		members = append(members, tenant.Member{User: user, Role: role})
	}

	return members, nil
}

func (o *Orchestrator) assemble(ctx context.Context, tp TenantPlan, members []tenant.Member) (*tenant.Assembly, error) {
	if !o.transactional {
		return o.assembler.AssembleTenant(ctx, tp.Name, tp.Workspaces, members)
	}

	var a *tenant.Assembly

	err := o.transactor.WithTx(ctx, func(ctx context.Context) error {
		var err error
		a, err = o.assembler.AssembleTenant(ctx, tp.Name, tp.Workspaces, members)
		return err
	})
	if err != nil {
		return nil, err
	}

	return a, nil
}

// grant gives the tenant owner the owner relation and every other member,
// admins included, the member relation.
func (o *Orchestrator) grant(ctx context.Context, a *tenant.Assembly, members []tenant.Member) error {
	userIDs := make([]string, 0, len(members))

	for _, m := range members {
		assign := o.authz.AssignTenantMember
		if m.Role.Name == TenantOwnerRole {
			assign = o.authz.AssignTenantOwner
		}

		if err := assign(ctx, a.Tenant.ID, m.User.ID); err != nil {
			return err
		}
		userIDs = append(userIDs, m.User.ID)
	}

	if len(a.Workspaces) == 0 {
		return nil
	}

	workspaceIDs := make([]string, 0, len(a.Workspaces))
	for _, w := range a.Workspaces {
		workspaceIDs = append(workspaceIDs, w.ID)
	}

	return o.authz.AssignWorkspaceMembers(ctx, a.Tenant.ID, workspaceIDs, userIDs)
}
