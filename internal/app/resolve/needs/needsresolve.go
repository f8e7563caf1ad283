// internal/app/resolve/needs/needsresolve.go
package needsresolve

// Validates the organization's asks and hydrates item references against the
// shared catalog. Unlike program requirements, a need's item reference is
// strict: a dangling id aborts the build, because a published ask for an
// unknown item is misleading to anyone trying to fulfill it.

import (
	"fmt"

	"github.com/communitybuild/orgfolio/internal/app/itemreg"
	"github.com/communitybuild/orgfolio/internal/app/system/dataerr"
	"github.com/communitybuild/orgfolio/internal/app/system/htmlsanitize"
	"github.com/communitybuild/orgfolio/internal/domain/docs"
	"github.com/communitybuild/orgfolio/internal/domain/models"
)

// Resolve validates the needs document and returns the hydrated module with
// its slug index.
func Resolve(doc docs.NeedsDoc, items itemreg.Registry) (*models.NeedsModule, error) {
	mod := &models.NeedsModule{
		BySlug: make(map[string]models.Need, len(doc.Needs)),
	}

	for i, n := range doc.Needs {
		need, err := resolveNeed(i, n, items)
		if err != nil {
			return nil, err
		}
		if _, exists := mod.BySlug[need.Slug]; exists {
			return nil, dataerr.Duplicate("need", need.Slug)
		}
		mod.BySlug[need.Slug] = need
		mod.Needs = append(mod.Needs, need)
	}

	return mod, nil
}

func resolveNeed(i int, n docs.NeedDoc, items itemreg.Registry) (models.Need, error) {
	path := func(field string) string { return fmt.Sprintf("needs[%d].%s", i, field) }

	if n.Slug == "" {
		return models.Need{}, dataerr.Missing(path("slug"))
	}
	if n.Title == "" {
		return models.Need{}, dataerr.Missing(path("title"))
	}
	if n.Kind == "" {
		return models.Need{}, dataerr.Missing(path("kind"))
	}
	kind := models.NeedKind(n.Kind)
	if !validKind(kind) {
		return models.Need{}, dataerr.Shapef(path("kind"), "unknown need kind %q", n.Kind)
	}
	if n.Quantity < 0 {
		return models.Need{}, dataerr.Shape(path("quantity"), "must not be negative")
	}
	if kind == models.NeedMaterial && n.ItemID == "" {
		return models.Need{}, dataerr.Shape(path("item_id"), "a material need must name a catalog item")
	}

	need := models.Need{
		Slug:        n.Slug,
		Title:       n.Title,
		Kind:        kind,
		Quantity:    n.Quantity,
		Priority:    n.Priority,
		Status:      n.Status,
		Urgency:     n.Urgency,
		ProjectSlug: n.ProjectSlug,
		Description: htmlsanitize.Sanitize(n.Description),
	}

	if n.ItemID != "" {
		item, ok := items.FindItemByID(n.ItemID)
		if !ok {
			// Name both slug and title so an operator scanning logs can
			// find the offending ask without opening the document.
			return models.Need{}, dataerr.Reference("item", n.ItemID, fmt.Sprintf("need %q (%s)", n.Slug, n.Title))
		}
		need.Item = &item
	}

	return need, nil
}

func validKind(k models.NeedKind) bool {
	for _, known := range models.NeedKinds {
		if k == known {
			return true
		}
	}
	return false
}
