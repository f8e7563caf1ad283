// internal/app/resolve/service/serviceresolve.go
package serviceresolve

// Validates the organization's service listings. Media references resolve
// against the shared index like everywhere else; when the tenant has no
// media document at all, listings keep their text and simply go out without
// galleries.

import (
	"fmt"

	"go.uber.org/zap"

	mediaresolve "github.com/communitybuild/orgfolio/internal/app/resolve/media"
	"github.com/communitybuild/orgfolio/internal/app/system/dataerr"
	"github.com/communitybuild/orgfolio/internal/app/system/htmlsanitize"
	"github.com/communitybuild/orgfolio/internal/domain/docs"
	"github.com/communitybuild/orgfolio/internal/domain/models"
)

// Resolve validates the services document. media may be nil when the tenant
// has no media document; service galleries are then omitted with a warning
// instead of failing the build. A nil logger is replaced with a no-op
// logger.
func Resolve(doc docs.ServicesDoc, media *mediaresolve.Index, log *zap.Logger) (*models.ServiceModule, error) {
	if log == nil {
		log = zap.NewNop()
	}

	mod := &models.ServiceModule{}
	seen := make(map[string]bool, len(doc.Services))

	for i, s := range doc.Services {
		path := func(field string) string { return fmt.Sprintf("services[%d].%s", i, field) }

		if s.Slug == "" {
			return nil, dataerr.Missing(path("slug"))
		}
		if s.Title == "" {
			return nil, dataerr.Missing(path("title"))
		}
		if s.Price < 0 {
			return nil, dataerr.Shape(path("price"), "must not be negative")
		}
		if seen[s.Slug] {
			return nil, dataerr.Duplicate("service", s.Slug)
		}
		seen[s.Slug] = true

		service := models.Service{
			Slug:        s.Slug,
			Title:       s.Title,
			Description: htmlsanitize.Sanitize(s.Description),
			Price:       s.Price,
		}

		if len(s.MediaIDs) > 0 {
			if media == nil {
				log.Warn("service media omitted, tenant has no media document",
					zap.String("service", s.Slug))
			} else {
				gallery, err := media.Many(s.MediaIDs, fmt.Sprintf("service %q", s.Slug))
				if err != nil {
					return nil, err
				}
				service.Media = gallery
			}
		}

		mod.Services = append(mod.Services, service)
	}

	return mod, nil
}
