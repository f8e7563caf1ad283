// internal/domain/docs/catalog.go
package docs

// CatalogDoc lists items/produce the organization offers.
type CatalogDoc struct {
	Offers []OfferDoc `yaml:"offers" json:"offers"`
}

type OfferDoc struct {
	Slug      string  `yaml:"slug" json:"slug"`
	Title     string  `yaml:"title" json:"title"`
	ItemID    string  `yaml:"item_id" json:"item_id"`
	Price     float64 `yaml:"price" json:"price"`
	Unit      string  `yaml:"unit" json:"unit"`
	Available bool    `yaml:"available" json:"available"`
}
