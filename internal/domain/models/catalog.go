// internal/domain/models/catalog.go
package models

// Offer is one catalog entry, hydrated with its item.
type Offer struct {
	Slug      string  `json:"slug"`
	Title     string  `json:"title"`
	Item      Item    `json:"item"`
	Price     float64 `json:"price,omitempty"`
	Unit      string  `json:"unit,omitempty"`
	Available bool    `json:"available"`
}

type CatalogModule struct {
	Offers []Offer `json:"offers"`
}
