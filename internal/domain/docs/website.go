// internal/domain/docs/website.go
package docs

// WebsiteDoc configures the tenant's public site. Domain and URL may be
// omitted; the website resolver derives them from the organization's
// username and the deployment environment.
type WebsiteDoc struct {
	Domain       string  `yaml:"domain" json:"domain"`
	URL          string  `yaml:"url" json:"url"`
	Theme        string  `yaml:"theme" json:"theme"`
	Announcement string  `yaml:"announcement" json:"announcement"`
	SEO          *SEODoc `yaml:"seo" json:"seo"`
}

type SEODoc struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
}
