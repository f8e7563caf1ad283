// internal/domain/models/needs.go
package models

// NeedKind classifies what is being asked for.
type NeedKind string

const (
	NeedMaterial  NeedKind = "material"
	NeedService   NeedKind = "service"
	NeedHuman     NeedKind = "human"
	NeedFinancial NeedKind = "financial"
	NeedJob       NeedKind = "job"
)

// NeedKinds is the canonical list of accepted need kinds.
var NeedKinds = []NeedKind{NeedMaterial, NeedService, NeedHuman, NeedFinancial, NeedJob}

// Need is one discrete ask. Item is set for material needs.
type Need struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Kind        NeedKind `json:"kind"`
	Item        *Item    `json:"item,omitempty"`
	Quantity    int      `json:"quantity,omitempty"`
	Priority    string   `json:"priority,omitempty"`
	Status      string   `json:"status,omitempty"`
	Urgency     string   `json:"urgency,omitempty"`
	ProjectSlug string   `json:"project_slug,omitempty"`
	Description string   `json:"description,omitempty"`
}

// NeedsModule exposes the ordered need list plus the slug index consumed by
// the projects resolver.
type NeedsModule struct {
	Needs []Need `json:"needs"`

	BySlug map[string]Need `json:"-"`
}
