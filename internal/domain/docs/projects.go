// internal/domain/docs/projects.go
package docs

// ProjectsDoc lists the organization's coordinated initiatives.
type ProjectsDoc struct {
	Projects []ProjectDoc `yaml:"projects" json:"projects"`
}

type ProjectDoc struct {
	Slug        string   `yaml:"slug" json:"slug"`
	Title       string   `yaml:"title" json:"title"`
	Status      string   `yaml:"status" json:"status"`
	Priority    string   `yaml:"priority" json:"priority"`
	Starts      string   `yaml:"starts" json:"starts"`
	Ends        string   `yaml:"ends" json:"ends"`
	NeedSlugs   []string `yaml:"need_slugs" json:"need_slugs"`
	Description string   `yaml:"description" json:"description"`
}
