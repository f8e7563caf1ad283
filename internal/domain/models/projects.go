// internal/domain/models/projects.go
package models

// Project is a coordinated initiative, hydrated with the needs it scopes.
// A project with no needs is valid; it can exist before any needs are
// scoped to it.
type Project struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Status      string `json:"status,omitempty"`
	Priority    string `json:"priority,omitempty"`
	Starts      string `json:"starts,omitempty"`
	Ends        string `json:"ends,omitempty"`
	Needs       []Need `json:"needs,omitempty"`
	Description string `json:"description,omitempty"`
}

type ProjectsModule struct {
	Projects []Project `json:"projects"`
}
