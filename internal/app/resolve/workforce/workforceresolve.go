// internal/app/resolve/workforce/workforceresolve.go
package workforceresolve

// Validates department, team, position and member records, builds the three
// slug indices, and cross-links every member's role assignments. The member
// index feeds the cycles resolver.

import (
	"fmt"

	mediaresolve "github.com/communitybuild/orgfolio/internal/app/resolve/media"
	"github.com/communitybuild/orgfolio/internal/app/system/dataerr"
	"github.com/communitybuild/orgfolio/internal/app/system/htmlsanitize"
	"github.com/communitybuild/orgfolio/internal/domain/docs"
	"github.com/communitybuild/orgfolio/internal/domain/models"
)

// Resolve validates the workforce document and returns the hydrated module.
func Resolve(doc docs.WorkforceDoc, media *mediaresolve.Index) (*models.WorkforceModule, error) {
	mod := &models.WorkforceModule{
		MemberBySlug:     make(map[string]models.WorkforceMember, len(doc.Members)),
		DepartmentBySlug: make(map[string]models.Department, len(doc.Departments)),
		TeamBySlug:       make(map[string]models.Team, len(doc.Teams)),
		PositionBySlug:   make(map[string]models.Position, len(doc.Positions)),
	}

	for i, d := range doc.Departments {
		if err := requireSlugName(fmt.Sprintf("workforce.departments[%d]", i), d.Slug, d.Name); err != nil {
			return nil, err
		}
		if _, exists := mod.DepartmentBySlug[d.Slug]; exists {
			return nil, dataerr.Duplicate("department", d.Slug)
		}
		mod.DepartmentBySlug[d.Slug] = models.Department{Slug: d.Slug, Name: d.Name, Description: d.Description}
	}

	for i, tm := range doc.Teams {
		if err := requireSlugName(fmt.Sprintf("workforce.teams[%d]", i), tm.Slug, tm.Name); err != nil {
			return nil, err
		}
		if _, exists := mod.TeamBySlug[tm.Slug]; exists {
			return nil, dataerr.Duplicate("team", tm.Slug)
		}
		mod.TeamBySlug[tm.Slug] = models.Team{Slug: tm.Slug, Name: tm.Name, Description: tm.Description}
	}

	for i, p := range doc.Positions {
		if err := requireSlugName(fmt.Sprintf("workforce.positions[%d]", i), p.Slug, p.Name); err != nil {
			return nil, err
		}
		if _, exists := mod.PositionBySlug[p.Slug]; exists {
			return nil, dataerr.Duplicate("position", p.Slug)
		}
		mod.PositionBySlug[p.Slug] = models.Position{Slug: p.Slug, Name: p.Name, Description: p.Description}
	}

	for i, m := range doc.Members {
		member, err := resolveMember(i, m, mod, media)
		if err != nil {
			return nil, err
		}
		if _, exists := mod.MemberBySlug[member.Slug]; exists {
			return nil, dataerr.Duplicate("workforce member", member.Slug)
		}
		mod.MemberBySlug[member.Slug] = member
		mod.Members = append(mod.Members, member)
	}

	return mod, nil
}

func requireSlugName(prefix, slug, name string) error {
	if slug == "" {
		return dataerr.Missing(prefix + ".slug")
	}
	if name == "" {
		return dataerr.Missing(prefix + ".name")
	}
	return nil
}

func resolveMember(i int, m docs.MemberDoc, mod *models.WorkforceModule, media *mediaresolve.Index) (models.WorkforceMember, error) {
	path := func(field string) string { return fmt.Sprintf("workforce.members[%d].%s", i, field) }

	if m.Slug == "" {
		return models.WorkforceMember{}, dataerr.Missing(path("slug"))
	}
	if m.Name == "" {
		return models.WorkforceMember{}, dataerr.Missing(path("name"))
	}
	if len(m.Roles) == 0 {
		return models.WorkforceMember{}, dataerr.Shape(path("roles"), "at least one role assignment is required")
	}

	refBy := fmt.Sprintf("workforce member %q", m.Slug)

	photo, err := media.Optional(m.PhotoID, refBy)
	if err != nil {
		return models.WorkforceMember{}, err
	}

	roles := make([]models.RoleAssignment, 0, len(m.Roles))
	for j, r := range m.Roles {
		role, err := resolveRole(i, j, r, m.Slug, mod)
		if err != nil {
			return models.WorkforceMember{}, err
		}
		roles = append(roles, role)
	}

	var credentials []models.Credential
	for j, c := range m.Credentials {
		if c.Title == "" {
			return models.WorkforceMember{}, dataerr.Missing(fmt.Sprintf("workforce.members[%d].credentials[%d].title", i, j))
		}
		certMedia, err := media.Many(c.MediaIDs, refBy)
		if err != nil {
			return models.WorkforceMember{}, err
		}
		credentials = append(credentials, models.Credential{
			Title:  c.Title,
			Issuer: c.Issuer,
			Year:   c.Year,
			Media:  certMedia,
		})
	}

	return models.WorkforceMember{
		Slug:        m.Slug,
		Name:        m.Name,
		Bio:         htmlsanitize.Sanitize(m.Bio),
		Photo:       photo,
		Roles:       roles,
		Credentials: credentials,
	}, nil
}

// resolveRole links a role assignment: the position is required (fatal when
// missing or dangling); department and team are optional, but a reference
// that is present must resolve.
func resolveRole(i, j int, r docs.RoleDoc, memberSlug string, mod *models.WorkforceModule) (models.RoleAssignment, error) {
	if r.PositionSlug == "" {
		return models.RoleAssignment{}, dataerr.Missing(fmt.Sprintf("workforce.members[%d].roles[%d].position_slug", i, j))
	}

	refBy := fmt.Sprintf("workforce member %q", memberSlug)

	position, ok := mod.PositionBySlug[r.PositionSlug]
	if !ok {
		return models.RoleAssignment{}, dataerr.Reference("position", r.PositionSlug, refBy)
	}

	role := models.RoleAssignment{Title: r.Title, Position: position}

	if r.DepartmentSlug != "" {
		dept, ok := mod.DepartmentBySlug[r.DepartmentSlug]
		if !ok {
			return models.RoleAssignment{}, dataerr.Reference("department", r.DepartmentSlug, refBy)
		}
		role.Department = &dept
	}
	if r.TeamSlug != "" {
		team, ok := mod.TeamBySlug[r.TeamSlug]
		if !ok {
			return models.RoleAssignment{}, dataerr.Reference("team", r.TeamSlug, refBy)
		}
		role.Team = &team
	}

	return role, nil
}
