// internal/domain/models/orginstance.go
package models

import "time"

// OrgInstance is the fully resolved aggregate for one organization. Each
// module pointer is either fully hydrated or nil, meaning "not configured
// for this organization" rather than an error. Consumers read fields only
// and branch on absence; they never re-resolve identifiers.
type OrgInstance struct {
	BuildID string    `json:"build_id,omitempty"`
	BuiltAt time.Time `json:"built_at,omitzero"`

	Org       Organization     `json:"org"`
	Website   *WebsiteModule   `json:"website_module"`
	Academic  *AcademicModule  `json:"academic_module"`
	Workforce *WorkforceModule `json:"workforce_module"`
	Needs     *NeedsModule     `json:"needs_module"`
	Projects  *ProjectsModule  `json:"projects_module"`
	Catalog   *CatalogModule   `json:"catalog_module"`
	Service   *ServiceModule   `json:"service_module"`
}
