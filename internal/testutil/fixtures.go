// internal/testutil/fixtures.go
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/communitybuild/orgfolio/internal/app/content"
	"github.com/communitybuild/orgfolio/internal/app/itemreg"
	"github.com/communitybuild/orgfolio/internal/domain/models"
)

// OrgYAML returns a minimal valid org.yaml body for the given identity.
func OrgYAML(username, name string) string {
	return fmt.Sprintf(`username: %s
name: %s
locations:
  - label: HQ
    city: Nakuru
    country: KE
`, username, name)
}

// WriteTenant writes one tenant directory with the given document files
// under root.
func WriteTenant(t *testing.T, root, tenant string, files map[string]string) {
	t.Helper()
	dir := filepath.Join(root, tenant)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("creating tenant dir: %v", err)
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
}

// Items returns a small item registry for handler tests.
func Items() itemreg.Registry {
	return itemreg.MapRegistry{
		"cement-bag": models.Item{ID: "cement-bag", Name: "Cement Bag"},
	}
}

// Library writes the given tenants into a temp directory and loads them into
// a content library with strict boot, failing the test on any error.
func Library(t *testing.T, tenants map[string]map[string]string) *content.Library {
	t.Helper()
	root := t.TempDir()
	for tenant, files := range tenants {
		WriteTenant(t, root, tenant, files)
	}
	lib, err := content.Load(root, Items(), content.Options{
		BaseDomain: "orgfolio.org",
		StrictBoot: true,
	})
	if err != nil {
		t.Fatalf("loading test library: %v", err)
	}
	return lib
}
