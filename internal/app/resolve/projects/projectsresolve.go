// internal/app/resolve/projects/projectsresolve.go
package projectsresolve

// Validates project records and scopes needs to them. Need references are
// strict and resolve against the needs module's slug index; a project with
// an empty need list is valid.

import (
	"fmt"
	"time"

	"github.com/communitybuild/orgfolio/internal/app/system/dataerr"
	"github.com/communitybuild/orgfolio/internal/app/system/htmlsanitize"
	"github.com/communitybuild/orgfolio/internal/domain/docs"
	"github.com/communitybuild/orgfolio/internal/domain/models"
)

const dateLayout = "2006-01-02"

// Resolve validates the projects document. needs is the module produced by
// the needs resolver; when the needs document is absent the orchestrator
// passes nil, so any need reference fails.
func Resolve(doc docs.ProjectsDoc, needs *models.NeedsModule) (*models.ProjectsModule, error) {
	mod := &models.ProjectsModule{}
	seen := make(map[string]bool, len(doc.Projects))

	for i, p := range doc.Projects {
		project, err := resolveProject(i, p, needs)
		if err != nil {
			return nil, err
		}
		if seen[project.Slug] {
			return nil, dataerr.Duplicate("project", project.Slug)
		}
		seen[project.Slug] = true
		mod.Projects = append(mod.Projects, project)
	}

	return mod, nil
}

func resolveProject(i int, p docs.ProjectDoc, needs *models.NeedsModule) (models.Project, error) {
	path := func(field string) string { return fmt.Sprintf("projects[%d].%s", i, field) }

	if p.Slug == "" {
		return models.Project{}, dataerr.Missing(path("slug"))
	}
	if p.Title == "" {
		return models.Project{}, dataerr.Missing(path("title"))
	}
	if err := optionalDate(path("starts"), p.Starts); err != nil {
		return models.Project{}, err
	}
	if err := optionalDate(path("ends"), p.Ends); err != nil {
		return models.Project{}, err
	}

	project := models.Project{
		Slug:        p.Slug,
		Title:       p.Title,
		Status:      p.Status,
		Priority:    p.Priority,
		Starts:      p.Starts,
		Ends:        p.Ends,
		Description: htmlsanitize.Sanitize(p.Description),
	}

	refBy := fmt.Sprintf("project %q", p.Slug)
	for _, slug := range p.NeedSlugs {
		var need models.Need
		ok := false
		if needs != nil {
			need, ok = needs.BySlug[slug]
		}
		if !ok {
			return models.Project{}, dataerr.Reference("need", slug, refBy)
		}
		project.Needs = append(project.Needs, need)
	}

	return project, nil
}

func optionalDate(path, value string) error {
	if value == "" {
		return nil
	}
	if _, err := time.Parse(dateLayout, value); err != nil {
		return dataerr.Shapef(path, "%q is not a valid date (want YYYY-MM-DD)", value)
	}
	return nil
}
