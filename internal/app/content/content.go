// internal/app/content/content.go
package content

// Loads tenant document directories from disk and resolves each one into an
// OrgInstance at boot. The library is read-only after Load returns, so
// handlers can share it without locking.
//
// Layout: one subdirectory per tenant under the content root. org.yaml is
// required; the other documents are optional and a missing file simply
// leaves that module unconfigured.

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/communitybuild/orgfolio/internal/app/itemreg"
	orginstance "github.com/communitybuild/orgfolio/internal/app/resolve/instance"
	"github.com/communitybuild/orgfolio/internal/app/system/dataerr"
	"github.com/communitybuild/orgfolio/internal/domain/docs"
	"github.com/communitybuild/orgfolio/internal/domain/models"
)

// Options configures a library load.
type Options struct {
	// BaseDomain is forwarded to the website resolver for derived domains.
	BaseDomain string

	// StrictBoot makes any tenant failure fatal to the whole load. When
	// false a failing tenant is logged and skipped.
	StrictBoot bool

	Log *zap.Logger
}

// Library holds every successfully resolved tenant, keyed by username.
type Library struct {
	byUsername map[string]*models.OrgInstance
	usernames  []string
}

// Load walks the content root, resolves each tenant directory and returns
// the library. With StrictBoot the first failing tenant aborts the load;
// otherwise failures are logged and the tenant is left out.
func Load(root string, items itemreg.Registry, opts Options) (*Library, error) {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("reading content root %s: %w", root, err)
	}

	lib := &Library{byUsername: make(map[string]*models.OrgInstance)}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		tenant := entry.Name()

		inst, err := loadTenant(filepath.Join(root, tenant), items, opts)
		if err != nil {
			if opts.StrictBoot {
				return nil, fmt.Errorf("tenant %s: %w", tenant, err)
			}
			log.Error("skipping tenant, documents failed to resolve",
				zap.String("tenant", tenant),
				zap.Error(err))
			continue
		}

		username := inst.Org.Username
		if _, exists := lib.byUsername[username]; exists {
			return nil, dataerr.Duplicate("organization", username)
		}
		lib.byUsername[username] = inst
		lib.usernames = append(lib.usernames, username)

		log.Info("resolved tenant",
			zap.String("tenant", tenant),
			zap.String("username", username),
			zap.String("build_id", inst.BuildID))
	}

	sort.Strings(lib.usernames)
	return lib, nil
}

func loadTenant(dir string, items itemreg.Registry, opts Options) (*models.OrgInstance, error) {
	bundle, err := readBundle(dir)
	if err != nil {
		return nil, err
	}
	return orginstance.Build(bundle, items, orginstance.Options{
		BaseDomain: opts.BaseDomain,
		Log:        opts.Log,
	})
}

// readBundle decodes the tenant's documents. org.yaml must exist; every
// other file is optional.
func readBundle(dir string) (docs.Bundle, error) {
	var bundle docs.Bundle

	var org docs.OrganizationDoc
	found, err := decodeFile(dir, "org.yaml", &org)
	if err != nil {
		return docs.Bundle{}, err
	}
	if !found {
		return docs.Bundle{}, dataerr.Shape("org.yaml", "required document is missing")
	}
	bundle.Org = &org

	if _, err = decodeFile(dir, "media.yaml", &bundle.Media); err != nil {
		return docs.Bundle{}, err
	}

	bundle.Workforce, err = decodeOptional[docs.WorkforceDoc](dir, "workforce.yaml")
	if err != nil {
		return docs.Bundle{}, err
	}
	bundle.Cycles, err = decodeOptional[docs.CyclesDoc](dir, "cycles.yaml")
	if err != nil {
		return docs.Bundle{}, err
	}
	bundle.Academic, err = decodeOptional[docs.AcademicDoc](dir, "academic.yaml")
	if err != nil {
		return docs.Bundle{}, err
	}
	bundle.Needs, err = decodeOptional[docs.NeedsDoc](dir, "needs.yaml")
	if err != nil {
		return docs.Bundle{}, err
	}
	bundle.Projects, err = decodeOptional[docs.ProjectsDoc](dir, "projects.yaml")
	if err != nil {
		return docs.Bundle{}, err
	}
	bundle.Website, err = decodeOptional[docs.WebsiteDoc](dir, "website.yaml")
	if err != nil {
		return docs.Bundle{}, err
	}
	bundle.Catalog, err = decodeOptional[docs.CatalogDoc](dir, "catalog.yaml")
	if err != nil {
		return docs.Bundle{}, err
	}
	bundle.Services, err = decodeOptional[docs.ServicesDoc](dir, "services.yaml")
	if err != nil {
		return docs.Bundle{}, err
	}

	return bundle, nil
}

func decodeOptional[T any](dir, name string) (*T, error) {
	var doc T
	found, err := decodeFile(dir, name, &doc)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &doc, nil
}

func decodeFile(dir, name string, out any) (bool, error) {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return false, dataerr.Shapef(name, "invalid yaml: %v", err)
	}
	return true, nil
}

// Get returns the resolved instance for username.
func (l *Library) Get(username string) (*models.OrgInstance, bool) {
	inst, ok := l.byUsername[username]
	return inst, ok
}

// All returns every instance ordered by username.
func (l *Library) All() []*models.OrgInstance {
	out := make([]*models.OrgInstance, 0, len(l.usernames))
	for _, u := range l.usernames {
		out = append(out, l.byUsername[u])
	}
	return out
}

// Len returns the number of loaded tenants.
func (l *Library) Len() int { return len(l.byUsername) }
