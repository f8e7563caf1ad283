// internal/domain/docs/workforce.go
package docs

// WorkforceDoc holds staff, position, department and team records.
type WorkforceDoc struct {
	Departments []DepartmentDoc `yaml:"departments" json:"departments"`
	Teams       []TeamDoc       `yaml:"teams" json:"teams"`
	Positions   []PositionDoc   `yaml:"positions" json:"positions"`
	Members     []MemberDoc     `yaml:"members" json:"members"`
}

type DepartmentDoc struct {
	Slug        string `yaml:"slug" json:"slug"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
}

type TeamDoc struct {
	Slug        string `yaml:"slug" json:"slug"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
}

type PositionDoc struct {
	Slug        string `yaml:"slug" json:"slug"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
}

// MemberDoc is one staff member. Roles reference positions (required) and
// departments/teams (optional) by slug; photos and credential certificates
// reference media by id.
type MemberDoc struct {
	Slug        string          `yaml:"slug" json:"slug"`
	Name        string          `yaml:"name" json:"name"`
	Bio         string          `yaml:"bio" json:"bio"`
	PhotoID     string          `yaml:"photo_id" json:"photo_id"`
	Roles       []RoleDoc       `yaml:"roles" json:"roles"`
	Credentials []CredentialDoc `yaml:"credentials" json:"credentials"`
}

type RoleDoc struct {
	Title          string `yaml:"title" json:"title"`
	PositionSlug   string `yaml:"position_slug" json:"position_slug"`
	DepartmentSlug string `yaml:"department_slug" json:"department_slug"`
	TeamSlug       string `yaml:"team_slug" json:"team_slug"`
}

type CredentialDoc struct {
	Title    string   `yaml:"title" json:"title"`
	Issuer   string   `yaml:"issuer" json:"issuer"`
	Year     int      `yaml:"year" json:"year"`
	MediaIDs []string `yaml:"media_ids" json:"media_ids"`
}
