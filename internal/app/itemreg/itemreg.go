// internal/app/itemreg/itemreg.go
package itemreg

// The item registry is the one piece of shared reference data the pipeline
// consults. It is injected into the resolvers that need it (never a
// singleton), read-only, and side-effect free.

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/communitybuild/orgfolio/internal/app/system/dataerr"
	"github.com/communitybuild/orgfolio/internal/domain/models"
)

// Registry resolves catalog items by identifier.
type Registry interface {
	FindItemByID(id string) (models.Item, bool)
}

// MapRegistry is a map-backed Registry for tests and embedded catalogs.
type MapRegistry map[string]models.Item

func (m MapRegistry) FindItemByID(id string) (models.Item, bool) {
	item, ok := m[id]
	return item, ok
}

// Catalog is the production Registry, loaded once from a YAML catalog file.
type Catalog struct {
	items []models.Item
	byID  map[string]models.Item
}

// catalogFile is the raw on-disk shape.
type catalogFile struct {
	Items []itemRecord `yaml:"items"`
}

type itemRecord struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
	Unit     string `yaml:"unit"`
}

// Load reads and parses the item catalog at path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading item catalog: %w", err)
	}
	cat, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("item catalog %s: %w", path, err)
	}
	return cat, nil
}

// Parse builds a Catalog from raw YAML. Duplicate item ids are fatal, same
// as in every other registry.
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, dataerr.Shapef("items", "not valid YAML: %v", err)
	}

	cat := &Catalog{byID: make(map[string]models.Item, len(file.Items))}
	for i, rec := range file.Items {
		if rec.ID == "" {
			return nil, dataerr.Missing(fmt.Sprintf("items[%d].id", i))
		}
		if rec.Name == "" {
			return nil, dataerr.Missing(fmt.Sprintf("items[%d].name", i))
		}
		if _, exists := cat.byID[rec.ID]; exists {
			return nil, dataerr.Duplicate("item", rec.ID)
		}
		item := models.Item{ID: rec.ID, Name: rec.Name, Category: rec.Category, Unit: rec.Unit}
		cat.byID[rec.ID] = item
		cat.items = append(cat.items, item)
	}
	return cat, nil
}

func (c *Catalog) FindItemByID(id string) (models.Item, bool) {
	item, ok := c.byID[id]
	return item, ok
}

// Len returns the number of cataloged items.
func (c *Catalog) Len() int { return len(c.items) }
