// internal/domain/docs/needs.go
package docs

// NeedsDoc lists what the organization is asking for.
type NeedsDoc struct {
	Needs []NeedDoc `yaml:"needs" json:"needs"`
}

type NeedDoc struct {
	Slug        string `yaml:"slug" json:"slug"`
	Title       string `yaml:"title" json:"title"`
	Kind        string `yaml:"kind" json:"kind"`
	ItemID      string `yaml:"item_id" json:"item_id"`
	Quantity    int    `yaml:"quantity" json:"quantity"`
	Priority    string `yaml:"priority" json:"priority"`
	Status      string `yaml:"status" json:"status"`
	Urgency     string `yaml:"urgency" json:"urgency"`
	ProjectSlug string `yaml:"project_slug" json:"project_slug"`
	Description string `yaml:"description" json:"description"`
}
