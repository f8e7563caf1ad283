// internal/domain/models/organization.go
package models

// Organization is the root of the resolved aggregate.
type Organization struct {
	Username     string            `json:"username"`
	Name         string            `json:"name"`
	Tagline      string            `json:"tagline,omitempty"`
	Locations    []Location        `json:"locations"`
	Verification Verification      `json:"verification"`
	Social       map[string]string `json:"social,omitempty"`
	Logo         *Media            `json:"logo,omitempty"`
	Notes        string            `json:"notes,omitempty"` // sanitized HTML, internal CRM notes
	TechStack    []string          `json:"tech_stack,omitempty"`
}

// Location is one physical location with its contact details.
type Location struct {
	Label      string  `json:"label"`
	Street     string  `json:"street,omitempty"`
	City       string  `json:"city"`
	Region     string  `json:"region,omitempty"`
	PostalCode string  `json:"postal_code,omitempty"`
	Country    string  `json:"country"`
	Phone      string  `json:"phone,omitempty"`
	Email      string  `json:"email,omitempty"`
	Lat        float64 `json:"lat,omitempty"`
	Lng        float64 `json:"lng,omitempty"`
}

// Verification records whether and how the organization was verified.
type Verification struct {
	Verified bool   `json:"verified"`
	Method   string `json:"method,omitempty"`
	Date     string `json:"date,omitempty"`
}
