// internal/app/resolve/website/websiteresolve.go
package websiteresolve

// Resolves the tenant's public site configuration. Explicit domain and url
// pass through untouched; gaps are derived deterministically from the
// organization's username and the deployment's base domain, so the same
// documents always produce the same site addresses.

import (
	"strings"

	"github.com/communitybuild/orgfolio/internal/app/system/dataerr"
	"github.com/communitybuild/orgfolio/internal/app/system/htmlsanitize"
	"github.com/communitybuild/orgfolio/internal/domain/docs"
	"github.com/communitybuild/orgfolio/internal/domain/models"
)

// Resolve validates the website document against the already-resolved
// organization. baseDomain is the deployment's serving domain, e.g.
// "orgfolio.org" in production or "localhost:3000" in development.
func Resolve(doc docs.WebsiteDoc, org models.Organization, baseDomain string) (*models.WebsiteModule, error) {
	if baseDomain == "" && doc.Domain == "" {
		return nil, dataerr.Missing("website.domain")
	}

	mod := &models.WebsiteModule{
		Domain:       doc.Domain,
		URL:          doc.URL,
		Theme:        doc.Theme,
		Announcement: htmlsanitize.Sanitize(doc.Announcement),
	}

	if mod.Domain == "" {
		mod.Domain = org.Username + "." + baseDomain
	}
	if mod.URL == "" {
		mod.URL = scheme(mod.Domain) + "://" + mod.Domain
	}

	if doc.SEO != nil {
		seo := &models.SEO{Title: doc.SEO.Title, Description: doc.SEO.Description}
		if seo.Title == "" {
			seo.Title = org.Name
		}
		mod.SEO = seo
	}

	return mod, nil
}

// scheme picks http for local development hosts, https otherwise.
func scheme(domain string) string {
	if strings.Contains(domain, "localhost") || strings.Contains(domain, ":") {
		return "http"
	}
	return "https"
}
