// internal/app/resolve/instance/orginstance.go
package orginstance

// The orchestrator. Runs the per-module resolvers in their fixed order and
// assembles the OrgInstance aggregate. An absent document leaves its module
// nil; a failure in any resolver aborts the whole build with that resolver's
// error untouched.
//
// Stage order matters: a module may only reference modules resolved before
// it, so each stage receives exactly the indices its predecessors produced.
// When a predecessor is absent the stage gets an empty or nil index and its
// references fail as ordinary reference errors.

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/communitybuild/orgfolio/internal/app/itemreg"
	academicresolve "github.com/communitybuild/orgfolio/internal/app/resolve/academic"
	catalogresolve "github.com/communitybuild/orgfolio/internal/app/resolve/catalog"
	cyclesresolve "github.com/communitybuild/orgfolio/internal/app/resolve/cycles"
	mediaresolve "github.com/communitybuild/orgfolio/internal/app/resolve/media"
	needsresolve "github.com/communitybuild/orgfolio/internal/app/resolve/needs"
	profileresolve "github.com/communitybuild/orgfolio/internal/app/resolve/profile"
	projectsresolve "github.com/communitybuild/orgfolio/internal/app/resolve/projects"
	serviceresolve "github.com/communitybuild/orgfolio/internal/app/resolve/service"
	websiteresolve "github.com/communitybuild/orgfolio/internal/app/resolve/website"
	workforceresolve "github.com/communitybuild/orgfolio/internal/app/resolve/workforce"
	"github.com/communitybuild/orgfolio/internal/app/system/dataerr"
	"github.com/communitybuild/orgfolio/internal/domain/docs"
	"github.com/communitybuild/orgfolio/internal/domain/models"
)

// Options carries the deployment-level inputs a build needs beyond the
// tenant's own documents.
type Options struct {
	// BaseDomain is the serving domain used to derive website addresses,
	// e.g. "orgfolio.org" or "localhost:3000".
	BaseDomain string

	// Log receives the lenient-path warnings. Nil means no-op.
	Log *zap.Logger
}

// Build resolves one tenant's document bundle into an OrgInstance. The
// returned instance is complete and internally consistent, or the error
// from the first failing stage is returned and no instance exists.
func Build(bundle docs.Bundle, items itemreg.Registry, opts Options) (*models.OrgInstance, error) {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	if bundle.Org == nil {
		return nil, dataerr.Missing("org")
	}

	// The media index is always non-nil so dangling references fail even
	// when the tenant has no media document.
	media, err := mediaresolve.Build(bundle.Media)
	if err != nil {
		return nil, err
	}

	org, err := profileresolve.Resolve(*bundle.Org, media)
	if err != nil {
		return nil, err
	}

	inst := &models.OrgInstance{
		BuildID: uuid.NewString(),
		BuiltAt: time.Now().UTC(),
		Org:     org,
	}

	var members map[string]models.WorkforceMember
	if bundle.Workforce != nil {
		workforce, err := workforceresolve.Resolve(*bundle.Workforce, media)
		if err != nil {
			return nil, err
		}
		inst.Workforce = workforce
		members = workforce.MemberBySlug
	}

	var cycles *cyclesresolve.Result
	if bundle.Cycles != nil {
		if cycles, err = cyclesresolve.Resolve(*bundle.Cycles, members); err != nil {
			return nil, err
		}
	}

	if bundle.Academic != nil {
		academic, err := academicresolve.Resolve(*bundle.Academic, media, cycles, items, log)
		if err != nil {
			return nil, err
		}
		inst.Academic = academic
	}

	if bundle.Needs != nil {
		needs, err := needsresolve.Resolve(*bundle.Needs, items)
		if err != nil {
			return nil, err
		}
		inst.Needs = needs
	}

	if bundle.Projects != nil {
		projects, err := projectsresolve.Resolve(*bundle.Projects, inst.Needs)
		if err != nil {
			return nil, err
		}
		inst.Projects = projects
	}

	if bundle.Website != nil {
		website, err := websiteresolve.Resolve(*bundle.Website, org, opts.BaseDomain)
		if err != nil {
			return nil, err
		}
		inst.Website = website
	}

	if bundle.Catalog != nil {
		catalog, err := catalogresolve.Resolve(*bundle.Catalog, items)
		if err != nil {
			return nil, err
		}
		inst.Catalog = catalog
	}

	if bundle.Services != nil {
		// A tenant with no media document gets its service galleries
		// omitted rather than a failed build; an empty media document is
		// still strict.
		svcMedia := media
		if bundle.Media == nil {
			svcMedia = nil
		}
		service, err := serviceresolve.Resolve(*bundle.Services, svcMedia, log)
		if err != nil {
			return nil, err
		}
		inst.Service = service
	}

	return inst, nil
}
