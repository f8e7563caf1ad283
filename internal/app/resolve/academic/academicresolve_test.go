package academicresolve_test

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/communitybuild/orgfolio/internal/app/itemreg"
	academicresolve "github.com/communitybuild/orgfolio/internal/app/resolve/academic"
	cyclesresolve "github.com/communitybuild/orgfolio/internal/app/resolve/cycles"
	mediaresolve "github.com/communitybuild/orgfolio/internal/app/resolve/media"
	"github.com/communitybuild/orgfolio/internal/app/system/dataerr"
	"github.com/communitybuild/orgfolio/internal/domain/docs"
	"github.com/communitybuild/orgfolio/internal/domain/models"
)

func buildMedia(t *testing.T, records ...docs.MediaDoc) *mediaresolve.Index {
	t.Helper()
	idx, err := mediaresolve.Build(records)
	if err != nil {
		t.Fatalf("building media index: %v", err)
	}
	return idx
}

func buildCycles(t *testing.T) *cyclesresolve.Result {
	t.Helper()
	doc := docs.CyclesDoc{
		OrgCycles: []docs.OrgCycleDoc{
			{ID: "spring-intake", Label: "Spring Intake", Start: "2026-01-12", End: "2026-04-03"},
		},
		ProgramCycles: []docs.ProgramCycleDoc{
			{ID: "welding-spring", AcademicCycleID: "spring-intake", Capacity: 24, Enrolled: 18},
			{ID: "carpentry-spring", AcademicCycleID: "spring-intake", Capacity: 16, Enrolled: 9},
		},
	}
	res, err := cyclesresolve.Resolve(doc, nil)
	if err != nil {
		t.Fatalf("building cycles: %v", err)
	}
	return res
}

func sampleItems() itemreg.Registry {
	return itemreg.MapRegistry{
		"work-boots":    models.Item{ID: "work-boots", Name: "Work Boots"},
		"welding-mask":  models.Item{ID: "welding-mask", Name: "Welding Mask"},
		"chisel-set":    models.Item{ID: "chisel-set", Name: "Chisel Set"},
		"overalls-pair": models.Item{ID: "overalls-pair", Name: "Overalls"},
	}
}

func groupedDoc() docs.AcademicDoc {
	return docs.AcademicDoc{
		Groups: []docs.ProgramGroupDoc{
			{ID: "trades", Name: "Trades"},
		},
		Programs: []docs.ProgramDoc{
			{
				Slug:     "welding",
				Title:    "Welding",
				GroupID:  "trades",
				CycleIDs: []string{"welding-spring"},
				Requirements: []docs.RequirementDoc{
					{ItemID: "welding-mask"},
					{ItemID: "work-boots", Quantity: 2, Note: "steel toe"},
				},
			},
			{
				Slug:    "carpentry",
				Title:   "Carpentry",
				GroupID: "trades",
			},
		},
	}
}

func flatDoc() docs.AcademicDoc {
	return docs.AcademicDoc{
		Programs: []docs.ProgramDoc{
			{
				Slug:  "welding",
				Title: "Welding",
				Group: &docs.ProgramGroupDoc{ID: "trades", Name: "Trades"},
			},
		},
	}
}

func TestResolve_BothShapesNormalizeIdentically(t *testing.T) {
	grouped, err := academicresolve.Resolve(groupedDoc(), buildMedia(t), buildCycles(t), sampleItems(), nil)
	if err != nil {
		t.Fatalf("grouped shape failed: %v", err)
	}
	flat, err := academicresolve.Resolve(flatDoc(), buildMedia(t), buildCycles(t), sampleItems(), nil)
	if err != nil {
		t.Fatalf("flat shape failed: %v", err)
	}

	g := grouped.Programs[0].Group
	f := flat.Programs[0].Group
	if g == nil || f == nil {
		t.Fatalf("expected resolved groups, got %+v and %+v", g, f)
	}
	if *g != *f {
		t.Errorf("shapes diverged: grouped %+v, flat %+v", *g, *f)
	}
}

func TestResolve_RequirementsHydrate(t *testing.T) {
	mod, err := academicresolve.Resolve(groupedDoc(), buildMedia(t), buildCycles(t), sampleItems(), nil)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	reqs := mod.Programs[0].Requirements
	if len(reqs) != 2 {
		t.Fatalf("Requirements: got %d, want 2", len(reqs))
	}
	if reqs[0].Item.Name != "Welding Mask" {
		t.Errorf("Item: got %q, want %q", reqs[0].Item.Name, "Welding Mask")
	}
	if reqs[0].Quantity != 1 {
		t.Errorf("default Quantity: got %d, want 1", reqs[0].Quantity)
	}
	if reqs[1].Quantity != 2 || reqs[1].Note != "steel toe" {
		t.Errorf("unexpected second line: %+v", reqs[1])
	}
}

func TestResolve_UnknownGroupDegradesWithWarning(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	log := zap.New(core)

	doc := groupedDoc()
	doc.Programs[1].GroupID = "ghost-group"

	mod, err := academicresolve.Resolve(doc, buildMedia(t), buildCycles(t), sampleItems(), log)
	if err != nil {
		t.Fatalf("expected lenient degrade, got %v", err)
	}
	if mod.Programs[1].Group != nil {
		t.Errorf("expected nil group, got %+v", mod.Programs[1].Group)
	}
	if mod.Programs[0].Group == nil {
		t.Error("sibling program lost its group")
	}

	entries := logs.FilterMessageSnippet("unknown group").All()
	if len(entries) != 1 {
		t.Fatalf("warnings: got %d, want 1", len(entries))
	}
	ctx := entries[0].ContextMap()
	if ctx["group_id"] != "ghost-group" || ctx["program"] != "carpentry" {
		t.Errorf("unexpected warning context: %v", ctx)
	}
}

func TestResolve_UnknownItemDropsLineKeepsSiblings(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	log := zap.New(core)

	doc := groupedDoc()
	doc.Programs[0].Requirements = []docs.RequirementDoc{
		{ItemID: "welding-mask"},
		{ItemID: "vanished-item"},
		{ItemID: "work-boots"},
	}

	mod, err := academicresolve.Resolve(doc, buildMedia(t), buildCycles(t), sampleItems(), log)
	if err != nil {
		t.Fatalf("expected lenient drop, got %v", err)
	}

	reqs := mod.Programs[0].Requirements
	if len(reqs) != 2 {
		t.Fatalf("Requirements: got %d, want 2 survivors", len(reqs))
	}
	if reqs[0].Item.ID != "welding-mask" || reqs[1].Item.ID != "work-boots" {
		t.Errorf("unexpected survivors: %+v", reqs)
	}

	entries := logs.FilterMessageSnippet("unknown item").All()
	if len(entries) != 1 {
		t.Fatalf("warnings: got %d, want 1", len(entries))
	}
	if entries[0].ContextMap()["item_id"] != "vanished-item" {
		t.Errorf("unexpected warning context: %v", entries[0].ContextMap())
	}
}

func TestResolve_MissingItemIDStillFatal(t *testing.T) {
	// Leniency covers dangling references only; a requirement line without
	// an item id is malformed.
	doc := groupedDoc()
	doc.Programs[0].Requirements = []docs.RequirementDoc{{Quantity: 1}}
	_, err := academicresolve.Resolve(doc, buildMedia(t), buildCycles(t), sampleItems(), nil)
	var se *dataerr.ShapeError
	if !errors.As(err, &se) {
		t.Fatalf("expected ShapeError, got %v", err)
	}
}

func TestResolve_DanglingCycleFatal(t *testing.T) {
	doc := groupedDoc()
	doc.Programs[0].CycleIDs = []string{"welding-spring", "welding-winter"}
	_, err := academicresolve.Resolve(doc, buildMedia(t), buildCycles(t), sampleItems(), nil)
	var re *dataerr.ReferenceError
	if !errors.As(err, &re) {
		t.Fatalf("expected ReferenceError, got %v", err)
	}
	if re.ID != "welding-winter" {
		t.Errorf("ID: got %q, want %q", re.ID, "welding-winter")
	}
}

func TestResolve_NilCyclesMakesAnyCycleRefFatal(t *testing.T) {
	_, err := academicresolve.Resolve(groupedDoc(), buildMedia(t), nil, sampleItems(), nil)
	var re *dataerr.ReferenceError
	if !errors.As(err, &re) {
		t.Fatalf("expected ReferenceError, got %v", err)
	}
	if re.Registry != "program cycle" {
		t.Errorf("Registry: got %q, want %q", re.Registry, "program cycle")
	}
}

func TestResolve_GroupIDWithoutGroupsFatal(t *testing.T) {
	doc := flatDoc()
	doc.Programs[0].Group = nil
	doc.Programs[0].GroupID = "trades"
	_, err := academicresolve.Resolve(doc, buildMedia(t), buildCycles(t), sampleItems(), nil)
	var se *dataerr.ShapeError
	if !errors.As(err, &se) {
		t.Fatalf("expected ShapeError, got %v", err)
	}
}

func TestResolve_GroupIDAndInlineGroupConflict(t *testing.T) {
	doc := groupedDoc()
	doc.Programs[0].Group = &docs.ProgramGroupDoc{ID: "other", Name: "Other"}
	_, err := academicresolve.Resolve(doc, buildMedia(t), buildCycles(t), sampleItems(), nil)
	var se *dataerr.ShapeError
	if !errors.As(err, &se) {
		t.Fatalf("expected ShapeError, got %v", err)
	}
}

func TestResolve_DuplicateProgramSlug(t *testing.T) {
	doc := groupedDoc()
	doc.Programs[1].Slug = "welding"
	_, err := academicresolve.Resolve(doc, buildMedia(t), buildCycles(t), sampleItems(), nil)
	var de *dataerr.DuplicateError
	if !errors.As(err, &de) {
		t.Fatalf("expected DuplicateError, got %v", err)
	}
	if de.ID != "welding" {
		t.Errorf("ID: got %q, want %q", de.ID, "welding")
	}
}

func TestResolve_StudentCountTotals(t *testing.T) {
	doc := groupedDoc()
	doc.Programs[1].CycleIDs = []string{"carpentry-spring", "welding-spring"}

	mod, err := academicresolve.Resolve(doc, buildMedia(t), buildCycles(t), sampleItems(), nil)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	// welding-spring is referenced by both programs but counts once.
	if mod.TotalCapacity != 40 {
		t.Errorf("TotalCapacity: got %d, want 40", mod.TotalCapacity)
	}
	if mod.TotalEnrolled != 27 {
		t.Errorf("TotalEnrolled: got %d, want 27", mod.TotalEnrolled)
	}
}

func TestResolve_CoverAndGallery(t *testing.T) {
	media := buildMedia(t,
		docs.MediaDoc{ID: "weld-cover", Type: "image", Src: "/img/weld.jpg"},
		docs.MediaDoc{ID: "weld-1", Type: "image", Src: "/img/weld1.jpg"},
	)
	doc := groupedDoc()
	doc.Programs[0].CoverID = "weld-cover"
	doc.Programs[0].GalleryIDs = []string{"weld-1"}

	mod, err := academicresolve.Resolve(doc, media, buildCycles(t), sampleItems(), nil)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	welding := mod.Programs[0]
	if welding.Cover == nil || welding.Cover.ID != "weld-cover" {
		t.Errorf("expected resolved cover, got %+v", welding.Cover)
	}
	if len(welding.Gallery) != 1 || welding.Gallery[0].ID != "weld-1" {
		t.Errorf("expected resolved gallery, got %+v", welding.Gallery)
	}
}

func TestResolve_DescriptionSanitized(t *testing.T) {
	doc := flatDoc()
	doc.Programs[0].Description = `<p>Hands-on.</p><script>alert("x")</script>`
	mod, err := academicresolve.Resolve(doc, buildMedia(t), buildCycles(t), sampleItems(), nil)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got, want := mod.Programs[0].Description, "<p>Hands-on.</p>"; got != want {
		t.Errorf("Description: got %q, want %q", got, want)
	}
}
