// internal/domain/models/service.go
package models

// Service is one offered service with its resolved gallery.
type Service struct {
	Slug        string  `json:"slug"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"` // sanitized HTML
	Media       []Media `json:"media,omitempty"`
	Price       float64 `json:"price,omitempty"`
}

type ServiceModule struct {
	Services []Service `json:"services"`
}
