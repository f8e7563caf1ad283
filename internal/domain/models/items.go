// internal/domain/models/items.go
package models

// Item is one entry of the static item catalog. The catalog is consulted,
// never built, by the resolution pipeline.
type Item struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Unit     string `json:"unit,omitempty"`
}
