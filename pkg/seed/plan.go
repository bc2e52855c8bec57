// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package seed

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Plan declares which users hold which tenant roles in which tenants.
type Plan struct {
	Tenants []TenantPlan `yaml:"tenants"`
}

type TenantPlan struct {
	Name       string       `yaml:"name"`
	Workspaces []string     `yaml:"workspaces"`
	Members    []MemberPlan `yaml:"members"`
}

// MemberPlan refers to a user by its position in the UserDirectory.
type MemberPlan struct {
	Position int    `yaml:"position"`
	Role     string `yaml:"role"`
}

// DefaultPlan builds two tenants out of the first three users: position 1
// owns Tenant 1, position 0 administers it and owns Tenant 2, position 2 is a
// member of both.
func DefaultPlan() *Plan {
	return &Plan{
		Tenants: []TenantPlan{
			{
				Name:       "Tenant 1",
				Workspaces: []string{"T1.Workspace 1", "T1.Workspace 2"},
				Members: []MemberPlan{
					{Position: 1, Role: TenantOwnerRole},
					{Position: 0, Role: TenantAdminRole},
					{Position: 2, Role: TenantMemberRole},
				},
			},
			{
				Name:       "Tenant 2",
				Workspaces: []string{"T2.Workspace 1", "T2.Workspace 2"},
				Members: []MemberPlan{
					{Position: 0, Role: TenantOwnerRole},
					{Position: 2, Role: TenantMemberRole},
				},
			},
		},
	}
}

func LoadPlan(r io.Reader) (*Plan, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	p := new(Plan)
	if err := dec.Decode(p); err != nil {
		return nil, fmt.Errorf("failed to decode plan: %w", err)
	}

	return p, nil
}

func LoadPlanFile(path string) (*Plan, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open plan: %w", err)
	}
	defer f.Close()

	return LoadPlan(f)
}

// Validate checks every tenant against the directory size and the available
// role names.
func (p *Plan) Validate(directory *UserDirectory, roles []string) error {
	available := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		available[r] = struct{}{}
	}

	names := make(map[string]struct{}, len(p.Tenants))

	for _, t := range p.Tenants {
		if t.Name == "" {
			return &PreconditionError{Reason: "tenant without a name"}
		}
		if _, ok := names[t.Name]; ok {
			return &PreconditionError{Tenant: t.Name, Reason: "tenant planned more than once"}
		}
		names[t.Name] = struct{}{}

		positions := make(map[int]struct{}, len(t.Members))
		for _, m := range t.Members {
			if _, err := directory.At(m.Position); err != nil {
				return &PreconditionError{
					Tenant: t.Name,
					Reason: fmt.Sprintf("member position %d is outside a directory of %d users", m.Position, directory.Len()),
				}
			}
			if _, ok := positions[m.Position]; ok {
				return &PreconditionError{Tenant: t.Name, Reason: fmt.Sprintf("position %d listed more than once", m.Position)}
			}
			positions[m.Position] = struct{}{}

			if _, ok := available[m.Role]; !ok {
				return &PreconditionError{Tenant: t.Name, Reason: fmt.Sprintf("role %s is not in the catalog", m.Role)}
			}
		}

		workspaces := make(map[string]struct{}, len(t.Workspaces))
		for _, w := range t.Workspaces {
			if w == "" {
				return &PreconditionError{Tenant: t.Name, Reason: "workspace without a name"}
			}
			if _, ok := workspaces[w]; ok {
				return &PreconditionError{Tenant: t.Name, Reason: fmt.Sprintf("workspace %s listed more than once", w)}
			}
			workspaces[w] = struct{}{}
		}
	}

	return nil
}
