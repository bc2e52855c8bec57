// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package seed

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/tenant-seed/internal/logging"
	"github.com/canonical/tenant-seed/internal/monitoring"
	"github.com/canonical/tenant-seed/internal/storage"
	"github.com/canonical/tenant-seed/internal/tracing"
	"github.com/canonical/tenant-seed/internal/types"
	"github.com/canonical/tenant-seed/pkg/tenant"
)

// assembled is one AssembleTenant call as seen by the mock.
type assembled struct {
	Name       string
	Workspaces []string
	Members    []string
}

func expectRoles(m *MockRoleCreatorInterface) {
	for i, name := range TenantRoles {
		m.EXPECT().CreateRole(gomock.Any(), name).Return(&types.Role{ID: fmt.Sprintf("role-%d", i), Name: name}, nil)
	}
}

func fakeAssembly(name string, workspaces []string, members []tenant.Member) *tenant.Assembly {
	a := &tenant.Assembly{Tenant: &types.Tenant{ID: "id-" + name, Name: name}}
	for _, w := range workspaces {
		a.Workspaces = append(a.Workspaces, &types.Workspace{ID: "id-" + w, TenantID: a.Tenant.ID, Name: w})
	}
	for range members {
		a.Memberships = append(a.Memberships, &types.TenantMembership{TenantID: a.Tenant.ID})
	}
	return a
}

func newTestOrchestrator(ctrl *gomock.Controller, plan *Plan, transactional bool, calls *[]assembled) (*Orchestrator, *MockRoleCreatorInterface, *MockAssemblerInterface, *MockAuthorizerInterface, *MockTransactorInterface) {
	roles := NewMockRoleCreatorInterface(ctrl)
	assembler := NewMockAssemblerInterface(ctrl)
	authz := NewMockAuthorizerInterface(ctrl)
	tx := NewMockTransactorInterface(ctrl)

	assembler.EXPECT().AssembleTenant(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes().DoAndReturn(
		func(_ context.Context, name string, workspaces []string, members []tenant.Member) (*tenant.Assembly, error) {
			call := assembled{Name: name, Workspaces: workspaces}
			for _, m := range members {
				call.Members = append(call.Members, m.User.ID+":"+m.Role.Name)
			}
			*calls = append(*calls, call)
			return fakeAssembly(name, workspaces, members), nil
		},
	)

	o := NewOrchestrator(roles, assembler, authz, tx, plan, transactional, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("tenant-seed"), logging.NewNoopLogger())
	return o, roles, assembler, authz, tx
}

func TestOrchestrator_Run_DefaultPlan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var calls []assembled
	o, roles, _, authz, _ := newTestOrchestrator(ctrl, DefaultPlan(), false, &calls)

	expectRoles(roles)

	type grant struct{ tenant, user, relation string }
	var grants []grant
	authz.EXPECT().AssignTenantOwner(gomock.Any(), gomock.Any(), gomock.Any()).Times(2).DoAndReturn(
		func(_ context.Context, tenantID, userID string) error {
			grants = append(grants, grant{tenantID, userID, "owner"})
			return nil
		},
	)
	authz.EXPECT().AssignTenantMember(gomock.Any(), gomock.Any(), gomock.Any()).Times(3).DoAndReturn(
		func(_ context.Context, tenantID, userID string) error {
			grants = append(grants, grant{tenantID, userID, "member"})
			return nil
		},
	)
	authz.EXPECT().AssignWorkspaceMembers(gomock.Any(), "id-Tenant 1", []string{"id-T1.Workspace 1", "id-T1.Workspace 2"}, []string{"b", "a", "c"}).Return(nil)
	authz.EXPECT().AssignWorkspaceMembers(gomock.Any(), "id-Tenant 2", []string{"id-T2.Workspace 1", "id-T2.Workspace 2"}, []string{"a", "c"}).Return(nil)

	if err := o.Run(context.Background(), testDirectory(4)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []assembled{
		{
			Name:       "Tenant 1",
			Workspaces: []string{"T1.Workspace 1", "T1.Workspace 2"},
			Members:    []string{"b:tenantOwner", "a:tenantAdmin", "c:tenantMember"},
		},
		{
			Name:       "Tenant 2",
			Workspaces: []string{"T2.Workspace 1", "T2.Workspace 2"},
			Members:    []string{"a:tenantOwner", "c:tenantMember"},
		},
	}

	if !reflect.DeepEqual(calls, expected) {
		t.Errorf("expected %+v, got %+v", expected, calls)
	}

	expectedGrants := []grant{
		{"id-Tenant 1", "b", "owner"},
		{"id-Tenant 1", "a", "member"},
		{"id-Tenant 1", "c", "member"},
		{"id-Tenant 2", "a", "owner"},
		{"id-Tenant 2", "c", "member"},
	}
	if !reflect.DeepEqual(grants, expectedGrants) {
		t.Errorf("expected grants %+v, got %+v", expectedGrants, grants)
	}
}

func TestOrchestrator_Run_Deterministic(t *testing.T) {
	var runs [2][]assembled

	for i := range runs {
		ctrl := gomock.NewController(t)

		o, roles, _, authz, _ := newTestOrchestrator(ctrl, DefaultPlan(), false, &runs[i])
		expectRoles(roles)
		authz.EXPECT().AssignTenantOwner(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes().Return(nil)
		authz.EXPECT().AssignTenantMember(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes().Return(nil)
		authz.EXPECT().AssignWorkspaceMembers(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes().Return(nil)

		if err := o.Run(context.Background(), testDirectory(10)); err != nil {
			t.Fatalf("run %d: unexpected error: %v", i, err)
		}

		ctrl.Finish()
	}

	if !reflect.DeepEqual(runs[0], runs[1]) {
		t.Errorf("runs differ: %+v vs %+v", runs[0], runs[1])
	}
}

func TestOrchestrator_Run_Transactional(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var calls []assembled
	o, roles, _, authz, tx := newTestOrchestrator(ctrl, DefaultPlan(), true, &calls)

	expectRoles(roles)
	tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
	authz.EXPECT().AssignTenantOwner(gomock.Any(), gomock.Any(), gomock.Any()).Times(2).Return(nil)
	authz.EXPECT().AssignTenantMember(gomock.Any(), gomock.Any(), gomock.Any()).Times(3).Return(nil)
	authz.EXPECT().AssignWorkspaceMembers(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(2).Return(nil)

	if err := o.Run(context.Background(), testDirectory(3)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(calls) != 2 {
		t.Errorf("expected 2 tenants, got %d", len(calls))
	}
}

func TestOrchestrator_Run_DirectoryTooSmall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var calls []assembled
	// no role, authorization or transaction expectations: nothing may be written
	o, _, _, _, _ := newTestOrchestrator(ctrl, DefaultPlan(), true, &calls)

	err := o.Run(context.Background(), testDirectory(2))

	var pErr *PreconditionError
	if !errors.As(err, &pErr) {
		t.Fatalf("expected PreconditionError, got %v", err)
	}
	if pErr.Tenant != "Tenant 1" {
		t.Errorf("expected Tenant 1 to fail, got %s", pErr.Tenant)
	}
	if len(calls) != 0 {
		t.Errorf("expected no tenant to be assembled, got %d", len(calls))
	}
}

func TestOrchestrator_Run_Failures(t *testing.T) {
	persistErr := &tenant.PersistenceError{
		Step: tenant.StepCreateWorkspace,
		Kind: "workspace",
		Name: "T1.Workspace 2",
		Err:  fmt.Errorf("workspace (workspaces_pkey): %w", storage.ErrDuplicateKey),
	}
	authzErr := errors.New("openfga unavailable")

	testCases := []struct {
		name        string
		setupMocks  func(*MockRoleCreatorInterface, *MockAssemblerInterface, *MockAuthorizerInterface)
		expectedErr error
	}{
		{
			name: "role already exists",
			setupMocks: func(r *MockRoleCreatorInterface, _ *MockAssemblerInterface, _ *MockAuthorizerInterface) {
				r.EXPECT().CreateRole(gomock.Any(), TenantOwnerRole).Return(nil, storage.ErrDuplicateKey)
			},
			expectedErr: storage.ErrDuplicateKey,
		},
		{
			name: "assembler fails on first tenant",
			setupMocks: func(r *MockRoleCreatorInterface, a *MockAssemblerInterface, _ *MockAuthorizerInterface) {
				expectRoles(r)
				a.EXPECT().AssembleTenant(gomock.Any(), "Tenant 1", gomock.Any(), gomock.Any()).Return(nil, persistErr)
			},
			expectedErr: storage.ErrDuplicateKey,
		},
		{
			name: "authorization fails",
			setupMocks: func(r *MockRoleCreatorInterface, a *MockAssemblerInterface, z *MockAuthorizerInterface) {
				expectRoles(r)
				a.EXPECT().AssembleTenant(gomock.Any(), "Tenant 1", gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, name string, workspaces []string, members []tenant.Member) (*tenant.Assembly, error) {
						return fakeAssembly(name, workspaces, members), nil
					},
				)
				z.EXPECT().AssignTenantOwner(gomock.Any(), "id-Tenant 1", "b").Return(authzErr)
			},
			expectedErr: authzErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			roles := NewMockRoleCreatorInterface(ctrl)
			assembler := NewMockAssemblerInterface(ctrl)
			authz := NewMockAuthorizerInterface(ctrl)
			tx := NewMockTransactorInterface(ctrl)
			tc.setupMocks(roles, assembler, authz)

			o := NewOrchestrator(roles, assembler, authz, tx, DefaultPlan(), false, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("tenant-seed"), logging.NewNoopLogger())

			err := o.Run(context.Background(), testDirectory(3))
			if !errors.Is(err, tc.expectedErr) {
				t.Errorf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestOrchestrator_Build_EmptyTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var calls []assembled
	plan := &Plan{Tenants: []TenantPlan{{Name: "EmptyCo"}}}
	o, _, _, _, _ := newTestOrchestrator(ctrl, plan, false, &calls)

	catalog, err := NewRoleCatalog()
	if err != nil {
		t.Fatal(err)
	}

	assemblies, err := o.Build(context.Background(), NewUserDirectory(), catalog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(assemblies) != 1 || assemblies[0].Tenant.Name != "EmptyCo" {
		t.Errorf("unexpected assemblies %+v", assemblies)
	}
}

func TestOrchestrator_Run_TimesEachTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	roles := NewMockRoleCreatorInterface(ctrl)
	assembler := NewMockAssemblerInterface(ctrl)
	authz := NewMockAuthorizerInterface(ctrl)
	tx := NewMockTransactorInterface(ctrl)

	expectRoles(roles)
	assembler.EXPECT().AssembleTenant(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(2).DoAndReturn(
		func(_ context.Context, name string, workspaces []string, members []tenant.Member) (*tenant.Assembly, error) {
			return fakeAssembly(name, workspaces, members), nil
		},
	)
	authz.EXPECT().AssignTenantOwner(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes().Return(nil)
	authz.EXPECT().AssignTenantMember(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes().Return(nil)
	authz.EXPECT().AssignWorkspaceMembers(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes().Return(nil)

	monitor := newRecordingMonitor()
	o := NewOrchestrator(roles, assembler, authz, tx, DefaultPlan(), false, tracing.NewNoopTracer(), monitor, logging.NewNoopLogger())

	if err := o.Run(context.Background(), testDirectory(3)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []string{"tenant roles", "tenant", "tenant"}
	if got := monitor.recorded(); !reflect.DeepEqual(got, expected) {
		t.Errorf("expected step durations %v, got %v", expected, got)
	}
}
