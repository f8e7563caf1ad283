// internal/app/resolve/media/mediaresolve.go
package mediaresolve

// First stage of the pipeline: validates the tenant's flat media catalog and
// builds the id index every later stage resolves photo/gallery references
// against.

import (
	"fmt"

	"github.com/communitybuild/orgfolio/internal/app/system/dataerr"
	"github.com/communitybuild/orgfolio/internal/domain/docs"
	"github.com/communitybuild/orgfolio/internal/domain/models"
)

// Index is the id-to-Media registry built once per tenant. Construction fails
// on the first invalid or duplicate record; lookups never mutate it.
type Index struct {
	byID    map[string]models.Media
	ordered []models.Media
}

// Build validates the media records and constructs the index. A duplicate
// identifier is fatal, never a silent overwrite.
func Build(records []docs.MediaDoc) (*Index, error) {
	idx := &Index{byID: make(map[string]models.Media, len(records))}
	for i, rec := range records {
		m, err := validate(i, rec)
		if err != nil {
			return nil, err
		}
		if _, exists := idx.byID[m.ID]; exists {
			return nil, dataerr.Duplicate("media", m.ID)
		}
		idx.byID[m.ID] = m
		idx.ordered = append(idx.ordered, m)
	}
	return idx, nil
}

func validate(i int, rec docs.MediaDoc) (models.Media, error) {
	path := func(field string) string { return fmt.Sprintf("media[%d].%s", i, field) }

	if rec.ID == "" {
		return models.Media{}, dataerr.Missing(path("id"))
	}
	if rec.Type == "" {
		return models.Media{}, dataerr.Missing(path("type"))
	}
	mt := models.MediaType(rec.Type)
	if !validType(mt) {
		return models.Media{}, dataerr.Shapef(path("type"), "unknown media type %q", rec.Type)
	}
	if rec.Src == "" {
		return models.Media{}, dataerr.Missing(path("src"))
	}
	if (rec.Width != 0 || rec.Height != 0) && !mt.Visual() {
		return models.Media{}, dataerr.Shapef(path("width"), "dimensions are only valid for visual media, not %q", rec.Type)
	}
	if rec.Width < 0 || rec.Height < 0 {
		return models.Media{}, dataerr.Shape(path("width"), "dimensions must not be negative")
	}
	if rec.DurationSeconds != 0 && !mt.TimeBased() {
		return models.Media{}, dataerr.Shapef(path("duration_seconds"), "duration is only valid for time-based media, not %q", rec.Type)
	}
	if rec.DurationSeconds < 0 {
		return models.Media{}, dataerr.Shape(path("duration_seconds"), "duration must not be negative")
	}

	return models.Media{
		ID:              rec.ID,
		Type:            mt,
		Src:             rec.Src,
		Alt:             rec.Alt,
		Caption:         rec.Caption,
		Width:           rec.Width,
		Height:          rec.Height,
		DurationSeconds: rec.DurationSeconds,
	}, nil
}

func validType(t models.MediaType) bool {
	for _, known := range models.MediaTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Required resolves id or fails with a reference error naming both the id
// and the referencing entity.
func (idx *Index) Required(id, referencedBy string) (models.Media, error) {
	m, ok := idx.byID[id]
	if !ok {
		return models.Media{}, dataerr.Reference("media", id, referencedBy)
	}
	return m, nil
}

// Optional resolves id when present. An empty id means "no media" and
// returns nil; a present-but-unresolvable id is still fatal.
func (idx *Index) Optional(id, referencedBy string) (*models.Media, error) {
	if id == "" {
		return nil, nil
	}
	m, err := idx.Required(id, referencedBy)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Many maps Required over ids, preserving order.
func (idx *Index) Many(ids []string, referencedBy string) ([]models.Media, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	out := make([]models.Media, 0, len(ids))
	for _, id := range ids {
		m, err := idx.Required(id, referencedBy)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

// All returns the records in document order.
func (idx *Index) All() []models.Media { return idx.ordered }

// Len returns the number of indexed records.
func (idx *Index) Len() int { return len(idx.ordered) }
