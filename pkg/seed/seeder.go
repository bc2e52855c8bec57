// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package seed

import (
	"context"
	"fmt"

	"github.com/canonical/tenant-seed/internal/fixtures"
	"github.com/canonical/tenant-seed/internal/logging"
	"github.com/canonical/tenant-seed/internal/monitoring"
	"github.com/canonical/tenant-seed/internal/tracing"
	"github.com/canonical/tenant-seed/internal/types"
)

// Seeder runs the whole pipeline: global roles, fixture users, tenants and
// the final row count.
type Seeder struct {
	storage      StorageInterface
	orchestrator OrchestratorInterface
	steps        *stepTimer

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewSeeder(
	storage StorageInterface,
	orchestrator OrchestratorInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Seeder {
	s := new(Seeder)

	s.storage = storage
	s.orchestrator = orchestrator
	s.steps = &stepTimer{monitor: monitor, logger: logger}

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}

func (s *Seeder) Seed(ctx context.Context, set *fixtures.Set) (*types.Summary, error) {
	ctx, span := s.tracer.Start(ctx, "seed.Seeder.Seed")
	defer span.End()

	var (
		globals   *RoleCatalog
		directory *UserDirectory
		summary   *types.Summary
	)

	err := s.steps.run("seed", "seed", func() error {
		err := s.steps.run("global roles", "global roles", func() error {
			var err error
			globals, err = CreateRoleCatalog(ctx, s.storage, GlobalRoles...)
			return err
		})
		if err != nil {
			return err
		}

		err = s.steps.run("users", "users", func() error {
			var err error
			directory, err = s.createUsers(ctx, set, globals)
			return err
		})
		if err != nil {
			return err
		}

		return s.steps.run("tenants", "tenants", func() error {
			return s.orchestrator.Run(ctx, directory)
		})
	})
	if err != nil {
		return nil, err
	}

	summary, err = s.storage.Summary(ctx)
	if err != nil {
		return nil, err
	}

	return summary, nil
}

// createUsers persists the fixture users. Administrators hold the admin role;
// everyone else holds the tenant role and joins the directory in file order.
func (s *Seeder) createUsers(ctx context.Context, set *fixtures.Set, globals *RoleCatalog) (*UserDirectory, error) {
	adminRole, ok := globals.Get(AdminRole)
	if !ok {
		return nil, &PreconditionError{Reason: "admin role missing"}
	}
	tenantRole, ok := globals.Get(TenantRole)
	if !ok {
		return nil, &PreconditionError{Reason: "tenant role missing"}
	}

	regular := set.Regular()
	users := make([]*types.User, 0, len(regular))

	for _, u := range regular {
		created, err := s.storage.CreateUser(ctx, u.ToUser(tenantRole))
		if err != nil {
			return nil, fmt.Errorf("failed to create user %s: %w", u.Username, err)
		}
		users = append(users, created)
	}

	for _, u := range set.Admins() {
		if _, err := s.storage.CreateUser(ctx, u.ToUser(adminRole)); err != nil {
			return nil, fmt.Errorf("failed to create user %s: %w", u.Username, err)
		}
		s.logger.Infof("created user %s with the admin role", u.Username)
	}

	return NewUserDirectory(users...), nil
}
