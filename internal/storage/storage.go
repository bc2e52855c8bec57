// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/tenant-seed/internal/db"
	"github.com/canonical/tenant-seed/internal/logging"
	"github.com/canonical/tenant-seed/internal/monitoring"
	"github.com/canonical/tenant-seed/internal/tracing"
	"github.com/canonical/tenant-seed/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func newID(entity string) (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate %s ID: %w", entity, err)
	}
	return id.String(), nil
}

func (s *Storage) created(kind string) {
	if err := s.monitor.IncCreatedRecords(map[string]string{"kind": kind}); err != nil {
		s.logger.Debugf("failed to record created %s: %v", kind, err)
	}
}

// CreateRole inserts a role together with a permission of the same name.
func (s *Storage) CreateRole(ctx context.Context, name string) (*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateRole")
	defer span.End()

	var role types.Role

	err := s.db.WithTx(ctx, func(ctx context.Context) error {
		roleID, err := newID("role")
		if err != nil {
			return err
		}

		err = s.db.Statement(ctx).
			Insert("roles").
			Columns("id", "name").
			Values(roleID, name).
			Suffix("RETURNING id, name, created_at").
			QueryRowContext(ctx).
			Scan(&role.ID, &role.Name, &role.CreatedAt)
		if err != nil {
			return wrapInsertError(err, "role")
		}

		permissionID, err := newID("permission")
		if err != nil {
			return err
		}

		var permission types.Permission
		err = s.db.Statement(ctx).
			Insert("permissions").
			Columns("id", "name").
			Values(permissionID, name).
			Suffix("RETURNING id, name").
			QueryRowContext(ctx).
			Scan(&permission.ID, &permission.Name)
		if err != nil {
			return wrapInsertError(err, "permission")
		}

		_, err = s.db.Statement(ctx).
			Insert("roles_permissions").
			Columns("role_id", "permission_id").
			Values(role.ID, permission.ID).
			ExecContext(ctx)
		if err != nil {
			return wrapInsertError(err, "role permission")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.created("role")
	return &role, nil
}

// CreateUser inserts a user and links it to its global roles.
func (s *Storage) CreateUser(ctx context.Context, u *types.User) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateUser")
	defer span.End()

	var user types.User

	err := s.db.WithTx(ctx, func(ctx context.Context) error {
		id, err := newID("user")
		if err != nil {
			return err
		}

		err = s.db.Statement(ctx).
			Insert("users").
			Columns("id", "email", "username", "name", "firstname", "surname").
			Values(id, u.Email, u.Username, u.Name, u.Firstname, u.Surname).
			Suffix("RETURNING id, email, username, name, firstname, surname, created_at").
			QueryRowContext(ctx).
			Scan(&user.ID, &user.Email, &user.Username, &user.Name, &user.Firstname, &user.Surname, &user.CreatedAt)
		if err != nil {
			return wrapInsertError(err, "user")
		}

		if len(u.Roles) == 0 {
			return nil
		}

		query := s.db.Statement(ctx).
			Insert("users_roles").
			Columns("user_id", "role_id")
		for _, r := range u.Roles {
			query = query.Values(user.ID, r.ID)
		}

		if _, err := query.ExecContext(ctx); err != nil {
			return wrapInsertError(err, "user role")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	user.Roles = u.Roles
	s.created("user")
	return &user, nil
}

func (s *Storage) CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTenant")
	defer span.End()

	id, err := newID("tenant")
	if err != nil {
		return nil, err
	}

	var newTenant types.Tenant
	err = s.db.Statement(ctx).
		Insert("tenants").
		Columns("id", "name").
		Values(id, t.Name).
		Suffix("RETURNING id, name, created_at").
		QueryRowContext(ctx).
		Scan(&newTenant.ID, &newTenant.Name, &newTenant.CreatedAt)

	if err != nil {
		return nil, wrapInsertError(err, "tenant")
	}

	s.created("tenant")
	return &newTenant, nil
}

func (s *Storage) CreateTenantMembership(ctx context.Context, m *types.TenantMembership) (*types.TenantMembership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTenantMembership")
	defer span.End()

	id, err := newID("tenant membership")
	if err != nil {
		return nil, err
	}

	created := *m
	err = s.db.Statement(ctx).
		Insert("tenant_memberships").
		Columns("id", "tenant_id", "user_id", "role_id", "status", "joined").
		Values(id, m.TenantID, m.UserID, m.RoleID, m.Status, m.Joined).
		Suffix("RETURNING id, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.CreatedAt)

	if err != nil {
		return nil, wrapInsertError(err, "tenant membership")
	}

	s.created("tenant_membership")
	return &created, nil
}

func (s *Storage) CreateWorkspace(ctx context.Context, w *types.Workspace) (*types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateWorkspace")
	defer span.End()

	id, err := newID("workspace")
	if err != nil {
		return nil, err
	}

	created := *w
	err = s.db.Statement(ctx).
		Insert("workspaces").
		Columns("id", "tenant_id", "name", "type", "business_main_activity", "registration_number").
		Values(id, w.TenantID, w.Name, w.Type, w.BusinessMainActivity, w.RegistrationNumber).
		Suffix("RETURNING id, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.CreatedAt)

	if err != nil {
		return nil, wrapInsertError(err, "workspace")
	}

	s.created("workspace")
	return &created, nil
}

func (s *Storage) CreateWorkspaceMembership(ctx context.Context, m *types.WorkspaceMembership) (*types.WorkspaceMembership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateWorkspaceMembership")
	defer span.End()

	id, err := newID("workspace membership")
	if err != nil {
		return nil, err
	}

	created := *m
	err = s.db.Statement(ctx).
		Insert("workspace_memberships").
		Columns("id", "workspace_id", "user_id").
		Values(id, m.WorkspaceID, m.UserID).
		Suffix("RETURNING id, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.CreatedAt)

	if err != nil {
		return nil, wrapInsertError(err, "workspace membership")
	}

	s.created("workspace_membership")
	return &created, nil
}

func (s *Storage) ListTenants(ctx context.Context) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTenants")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "name", "created_at").
		From("tenants").
		OrderBy("name").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	defer rows.Close()

	var tenants []*types.Tenant
	for rows.Next() {
		var t types.Tenant
		if err := rows.Scan(&t.ID, &t.Name, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tenant: %w", err)
		}
		tenants = append(tenants, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tenant rows: %w", err)
	}

	return tenants, nil
}

func (s *Storage) ListMembersByTenantID(ctx context.Context, tenantID string) ([]*types.TenantMembership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMembersByTenantID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "tenant_id", "user_id", "role_id", "status", "joined", "created_at").
		From("tenant_memberships").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("created_at", "id").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []*types.TenantMembership
	for rows.Next() {
		var m types.TenantMembership
		if err := rows.Scan(&m.ID, &m.TenantID, &m.UserID, &m.RoleID, &m.Status, &m.Joined, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return members, nil
}

func (s *Storage) ListWorkspacesByTenantID(ctx context.Context, tenantID string) ([]*types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListWorkspacesByTenantID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "tenant_id", "name", "type", "business_main_activity", "registration_number", "created_at").
		From("workspaces").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("name").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}
	defer rows.Close()

	var workspaces []*types.Workspace
	for rows.Next() {
		var w types.Workspace
		if err := rows.Scan(&w.ID, &w.TenantID, &w.Name, &w.Type, &w.BusinessMainActivity, &w.RegistrationNumber, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan workspace: %w", err)
		}
		workspaces = append(workspaces, &w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return workspaces, nil
}

// Summary counts the rows of every seeded table.
func (s *Storage) Summary(ctx context.Context) (*types.Summary, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Summary")
	defer span.End()

	summary := new(types.Summary)
	counters := []struct {
		table string
		dest  *int64
	}{
		{"roles", &summary.Roles},
		{"permissions", &summary.Permissions},
		{"users", &summary.Users},
		{"tenants", &summary.Tenants},
		{"tenant_memberships", &summary.TenantMemberships},
		{"workspaces", &summary.Workspaces},
		{"workspace_memberships", &summary.WorkspaceMemberships},
	}

	for _, c := range counters {
		err := s.db.Statement(ctx).
			Select("count(*)").
			From(c.table).
			QueryRowContext(ctx).
			Scan(c.dest)
		if err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", c.table, err)
		}
	}

	return summary, nil
}
