// internal/domain/docs/services.go
package docs

// ServicesDoc lists services the organization provides.
type ServicesDoc struct {
	Services []ServiceDoc `yaml:"services" json:"services"`
}

type ServiceDoc struct {
	Slug        string   `yaml:"slug" json:"slug"`
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	MediaIDs    []string `yaml:"media_ids" json:"media_ids"`
	Price       float64  `yaml:"price" json:"price"`
}
