// internal/app/resolve/profile/profileresolve.go
package profileresolve

// Validates the root organization profile and resolves its optional logo.
// Depends only on the media index; runs second in the pipeline.

import (
	"fmt"
	"regexp"

	mediaresolve "github.com/communitybuild/orgfolio/internal/app/resolve/media"
	"github.com/communitybuild/orgfolio/internal/app/system/dataerr"
	"github.com/communitybuild/orgfolio/internal/app/system/htmlsanitize"
	"github.com/communitybuild/orgfolio/internal/domain/docs"
	"github.com/communitybuild/orgfolio/internal/domain/models"
)

// usernamePattern matches the globally unique organization username:
// lowercase alphanumeric with interior hyphens, as used in derived domains.
var usernamePattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)

// Resolve validates the organization document and returns the root entity.
// The media index is always non-nil; when the tenant has no media document
// the orchestrator passes an empty index, so a dangling logo reference still
// fails loudly.
func Resolve(doc docs.OrganizationDoc, media *mediaresolve.Index) (models.Organization, error) {
	if doc.Username == "" {
		return models.Organization{}, dataerr.Missing("org.username")
	}
	if !usernamePattern.MatchString(doc.Username) {
		return models.Organization{}, dataerr.Shapef("org.username", "%q is not a valid username", doc.Username)
	}
	if doc.Name == "" {
		return models.Organization{}, dataerr.Missing("org.name")
	}
	if len(doc.Locations) == 0 {
		return models.Organization{}, dataerr.Shape("org.locations", "at least one location is required")
	}

	locations := make([]models.Location, 0, len(doc.Locations))
	for i, loc := range doc.Locations {
		resolved, err := validateLocation(i, loc)
		if err != nil {
			return models.Organization{}, err
		}
		locations = append(locations, resolved)
	}

	logo, err := media.Optional(doc.LogoID, fmt.Sprintf("organization %q", doc.Username))
	if err != nil {
		return models.Organization{}, err
	}

	org := models.Organization{
		Username:  doc.Username,
		Name:      doc.Name,
		Tagline:   doc.Tagline,
		Locations: locations,
		Social:    doc.Social,
		Logo:      logo,
		Notes:     htmlsanitize.Sanitize(doc.Notes),
		TechStack: doc.TechStack,
	}
	if doc.Verification != nil {
		org.Verification = models.Verification{
			Verified: doc.Verification.Verified,
			Method:   doc.Verification.Method,
			Date:     doc.Verification.Date,
		}
	}
	return org, nil
}

func validateLocation(i int, loc docs.LocationDoc) (models.Location, error) {
	path := func(field string) string { return fmt.Sprintf("org.locations[%d].%s", i, field) }

	if loc.Label == "" {
		return models.Location{}, dataerr.Missing(path("label"))
	}
	if loc.City == "" {
		return models.Location{}, dataerr.Missing(path("city"))
	}
	if loc.Country == "" {
		return models.Location{}, dataerr.Missing(path("country"))
	}
	if loc.Lat < -90 || loc.Lat > 90 {
		return models.Location{}, dataerr.Shapef(path("lat"), "latitude %v out of range", loc.Lat)
	}
	if loc.Lng < -180 || loc.Lng > 180 {
		return models.Location{}, dataerr.Shapef(path("lng"), "longitude %v out of range", loc.Lng)
	}

	return models.Location{
		Label:      loc.Label,
		Street:     loc.Street,
		City:       loc.City,
		Region:     loc.Region,
		PostalCode: loc.PostalCode,
		Country:    loc.Country,
		Phone:      loc.Phone,
		Email:      loc.Email,
		Lat:        loc.Lat,
		Lng:        loc.Lng,
	}, nil
}
