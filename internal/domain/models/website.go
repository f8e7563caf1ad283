// internal/domain/models/website.go
package models

// WebsiteModule is the resolved website configuration. Domain and URL are
// always populated, either from the document or derived from the
// organization's username and the deployment environment.
type WebsiteModule struct {
	Domain       string `json:"domain"`
	URL          string `json:"url"`
	Theme        string `json:"theme,omitempty"`
	Announcement string `json:"announcement,omitempty"`
	SEO          *SEO   `json:"seo,omitempty"`
}

type SEO struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}
