// internal/app/resolve/catalog/catalogresolve.go
package catalogresolve

// Validates the organization's offer list. Every offer names a catalog item
// and the reference is strict: a listing for an unknown item never reaches
// the public surface.

import (
	"fmt"

	"github.com/communitybuild/orgfolio/internal/app/itemreg"
	"github.com/communitybuild/orgfolio/internal/app/system/dataerr"
	"github.com/communitybuild/orgfolio/internal/domain/docs"
	"github.com/communitybuild/orgfolio/internal/domain/models"
)

// Resolve validates the catalog document and hydrates item references.
func Resolve(doc docs.CatalogDoc, items itemreg.Registry) (*models.CatalogModule, error) {
	mod := &models.CatalogModule{}
	seen := make(map[string]bool, len(doc.Offers))

	for i, o := range doc.Offers {
		offer, err := resolveOffer(i, o, items)
		if err != nil {
			return nil, err
		}
		if seen[offer.Slug] {
			return nil, dataerr.Duplicate("offer", offer.Slug)
		}
		seen[offer.Slug] = true
		mod.Offers = append(mod.Offers, offer)
	}

	return mod, nil
}

func resolveOffer(i int, o docs.OfferDoc, items itemreg.Registry) (models.Offer, error) {
	path := func(field string) string { return fmt.Sprintf("catalog.offers[%d].%s", i, field) }

	if o.Slug == "" {
		return models.Offer{}, dataerr.Missing(path("slug"))
	}
	if o.ItemID == "" {
		return models.Offer{}, dataerr.Missing(path("item_id"))
	}
	if o.Price < 0 {
		return models.Offer{}, dataerr.Shape(path("price"), "must not be negative")
	}

	item, ok := items.FindItemByID(o.ItemID)
	if !ok {
		return models.Offer{}, dataerr.Reference("item", o.ItemID, fmt.Sprintf("offer %q", o.Slug))
	}

	offer := models.Offer{
		Slug:      o.Slug,
		Title:     o.Title,
		Item:      item,
		Price:     o.Price,
		Unit:      o.Unit,
		Available: o.Available,
	}
	if offer.Title == "" {
		offer.Title = item.Name
	}

	return offer, nil
}
