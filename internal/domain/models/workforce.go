// internal/domain/models/workforce.go
package models

type Department struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type Team struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type Position struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// RoleAssignment links a member to a position (always resolved) and
// optionally to a department and/or team.
type RoleAssignment struct {
	Title      string      `json:"title,omitempty"`
	Position   Position    `json:"position"`
	Department *Department `json:"department,omitempty"`
	Team       *Team       `json:"team,omitempty"`
}

// Credential is one qualification of a member, optionally backed by
// certificate media.
type Credential struct {
	Title  string  `json:"title"`
	Issuer string  `json:"issuer,omitempty"`
	Year   int     `json:"year,omitempty"`
	Media  []Media `json:"media,omitempty"`
}

// WorkforceMember is one resolved staff member.
type WorkforceMember struct {
	Slug        string           `json:"slug"`
	Name        string           `json:"name"`
	Bio         string           `json:"bio,omitempty"` // sanitized HTML
	Photo       *Media           `json:"photo,omitempty"`
	Roles       []RoleAssignment `json:"roles"`
	Credentials []Credential     `json:"credentials,omitempty"`
}

// WorkforceModule exposes the member list plus the slug indices consumed by
// the cycles resolver. Indices are lookup-only and never serialized.
type WorkforceModule struct {
	Members []WorkforceMember `json:"members"`

	MemberBySlug     map[string]WorkforceMember `json:"-"`
	DepartmentBySlug map[string]Department      `json:"-"`
	TeamBySlug       map[string]Team            `json:"-"`
	PositionBySlug   map[string]Position        `json:"-"`
}
