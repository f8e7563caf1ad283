// internal/app/bootstrap/deps.go
package bootstrap

import (
	"github.com/communitybuild/orgfolio/internal/app/content"
	"github.com/communitybuild/orgfolio/internal/app/itemreg"
)

// ContentDeps holds the app's resolved backends. Orgfolio has no database;
// its "backend" is the item catalog plus the tenant library resolved from
// disk at boot. Both are read-only after startup.
type ContentDeps struct {
	Items   *itemreg.Catalog
	Library *content.Library
}
