// internal/domain/docs/docs.go
package docs

// Package docs holds the raw, structurally-unchecked document shapes that
// tenant content is authored in. Fields are permissive (zero values mean
// "absent"); all requiredness and semantic validation belongs to the
// resolvers, never to the decoder.
//
// Terminology: Identifiers
//   - id: media, cycle and item identifiers, unique within their registry
//   - slug: human-readable identifiers for members, positions, needs, etc.

// Bundle is the full set of documents loaded for one tenant. Every document
// except Org is optional; a nil document means the module is not configured
// for this organization.
type Bundle struct {
	Org       *OrganizationDoc
	Media     []MediaDoc
	Workforce *WorkforceDoc
	Cycles    *CyclesDoc
	Academic  *AcademicDoc
	Needs     *NeedsDoc
	Projects  *ProjectsDoc
	Website   *WebsiteDoc
	Catalog   *CatalogDoc
	Services  *ServicesDoc
}
