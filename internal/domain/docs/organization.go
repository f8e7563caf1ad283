// internal/domain/docs/organization.go
package docs

// OrganizationDoc is the root organization profile document.
type OrganizationDoc struct {
	Username     string            `yaml:"username" json:"username"`
	Name         string            `yaml:"name" json:"name"`
	Tagline      string            `yaml:"tagline" json:"tagline"`
	Locations    []LocationDoc     `yaml:"locations" json:"locations"`
	Verification *VerificationDoc  `yaml:"verification" json:"verification"`
	Social       map[string]string `yaml:"social" json:"social"`
	LogoID       string            `yaml:"logo_id" json:"logo_id"`
	Notes        string            `yaml:"notes" json:"notes"`
	TechStack    []string          `yaml:"tech_stack" json:"tech_stack"`
}

// LocationDoc is one physical location of the organization.
type LocationDoc struct {
	Label      string  `yaml:"label" json:"label"`
	Street     string  `yaml:"street" json:"street"`
	City       string  `yaml:"city" json:"city"`
	Region     string  `yaml:"region" json:"region"`
	PostalCode string  `yaml:"postal_code" json:"postal_code"`
	Country    string  `yaml:"country" json:"country"`
	Phone      string  `yaml:"phone" json:"phone"`
	Email      string  `yaml:"email" json:"email"`
	Lat        float64 `yaml:"lat" json:"lat"`
	Lng        float64 `yaml:"lng" json:"lng"`
}

// VerificationDoc records whether and how the organization was verified.
type VerificationDoc struct {
	Verified bool   `yaml:"verified" json:"verified"`
	Method   string `yaml:"method" json:"method"`
	Date     string `yaml:"date" json:"date"`
}
