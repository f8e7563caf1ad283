package workforceresolve_test

import (
	"errors"
	"strings"
	"testing"

	mediaresolve "github.com/communitybuild/orgfolio/internal/app/resolve/media"
	workforceresolve "github.com/communitybuild/orgfolio/internal/app/resolve/workforce"
	"github.com/communitybuild/orgfolio/internal/app/system/dataerr"
	"github.com/communitybuild/orgfolio/internal/domain/docs"
)

func buildMedia(t *testing.T, records ...docs.MediaDoc) *mediaresolve.Index {
	t.Helper()
	idx, err := mediaresolve.Build(records)
	if err != nil {
		t.Fatalf("building media index: %v", err)
	}
	return idx
}

func sampleDoc() docs.WorkforceDoc {
	return docs.WorkforceDoc{
		Departments: []docs.DepartmentDoc{{Slug: "academics", Name: "Academics"}},
		Teams:       []docs.TeamDoc{{Slug: "welding", Name: "Welding Team"}},
		Positions:   []docs.PositionDoc{{Slug: "teacher", Name: "Teacher"}, {Slug: "director", Name: "Director"}},
		Members: []docs.MemberDoc{
			{
				Slug: "jane-doe",
				Name: "Jane Doe",
				Roles: []docs.RoleDoc{
					{PositionSlug: "teacher", DepartmentSlug: "academics", TeamSlug: "welding"},
				},
			},
			{
				Slug:  "sam-okoro",
				Name:  "Sam Okoro",
				Roles: []docs.RoleDoc{{PositionSlug: "director"}},
			},
		},
	}
}

func TestResolve_FullCrossLinking(t *testing.T) {
	mod, err := workforceresolve.Resolve(sampleDoc(), buildMedia(t))
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if len(mod.Members) != 2 {
		t.Fatalf("Members: got %d, want 2", len(mod.Members))
	}

	jane, ok := mod.MemberBySlug["jane-doe"]
	if !ok {
		t.Fatal("expected jane-doe in member index")
	}
	role := jane.Roles[0]
	if role.Position.Name != "Teacher" {
		t.Errorf("Position: got %q, want %q", role.Position.Name, "Teacher")
	}
	if role.Department == nil || role.Department.Slug != "academics" {
		t.Errorf("expected resolved department, got %+v", role.Department)
	}
	if role.Team == nil || role.Team.Slug != "welding" {
		t.Errorf("expected resolved team, got %+v", role.Team)
	}

	sam := mod.MemberBySlug["sam-okoro"]
	if sam.Roles[0].Department != nil || sam.Roles[0].Team != nil {
		t.Error("expected absent department/team to stay nil")
	}

	if _, ok := mod.PositionBySlug["director"]; !ok {
		t.Error("expected director in position index")
	}
	if _, ok := mod.DepartmentBySlug["academics"]; !ok {
		t.Error("expected academics in department index")
	}
	if _, ok := mod.TeamBySlug["welding"]; !ok {
		t.Error("expected welding in team index")
	}
}

func TestResolve_MissingPositionFatal(t *testing.T) {
	doc := sampleDoc()
	doc.Members[0].Roles[0].PositionSlug = "janitor"
	_, err := workforceresolve.Resolve(doc, buildMedia(t))
	var re *dataerr.ReferenceError
	if !errors.As(err, &re) {
		t.Fatalf("expected ReferenceError, got %v", err)
	}
	if re.Registry != "position" || re.ID != "janitor" {
		t.Errorf("got %s/%s, want position/janitor", re.Registry, re.ID)
	}
	if !strings.Contains(err.Error(), "jane-doe") {
		t.Errorf("expected referencing member in message, got %q", err.Error())
	}
}

func TestResolve_DanglingDepartmentFatal(t *testing.T) {
	doc := sampleDoc()
	doc.Members[0].Roles[0].DepartmentSlug = "ghost-dept"
	_, err := workforceresolve.Resolve(doc, buildMedia(t))
	var re *dataerr.ReferenceError
	if !errors.As(err, &re) {
		t.Fatalf("expected ReferenceError, got %v", err)
	}
	if re.Registry != "department" {
		t.Errorf("Registry: got %q, want %q", re.Registry, "department")
	}
}

func TestResolve_DuplicateSlugs(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*docs.WorkforceDoc)
		wantID string
	}{
		{"duplicate position", func(d *docs.WorkforceDoc) {
			d.Positions = append(d.Positions, docs.PositionDoc{Slug: "teacher", Name: "Teacher Again"})
		}, "teacher"},
		{"duplicate member", func(d *docs.WorkforceDoc) {
			d.Members = append(d.Members, docs.MemberDoc{
				Slug: "jane-doe", Name: "Other Jane",
				Roles: []docs.RoleDoc{{PositionSlug: "teacher"}},
			})
		}, "jane-doe"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			doc := sampleDoc()
			c.mutate(&doc)
			_, err := workforceresolve.Resolve(doc, buildMedia(t))
			var de *dataerr.DuplicateError
			if !errors.As(err, &de) {
				t.Fatalf("expected DuplicateError, got %v", err)
			}
			if de.ID != c.wantID {
				t.Errorf("ID: got %q, want %q", de.ID, c.wantID)
			}
		})
	}
}

func TestResolve_PhotoAndCredentialMedia(t *testing.T) {
	media := buildMedia(t,
		docs.MediaDoc{ID: "jane-photo", Type: "image", Src: "/img/jane.jpg"},
		docs.MediaDoc{ID: "cert-1", Type: "image", Src: "/img/cert1.jpg"},
		docs.MediaDoc{ID: "cert-2", Type: "image", Src: "/img/cert2.jpg"},
	)
	doc := sampleDoc()
	doc.Members[0].PhotoID = "jane-photo"
	doc.Members[0].Credentials = []docs.CredentialDoc{
		{Title: "Certified Welder", Issuer: "Trade Board", Year: 2021, MediaIDs: []string{"cert-1", "cert-2"}},
	}

	mod, err := workforceresolve.Resolve(doc, media)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	jane := mod.MemberBySlug["jane-doe"]
	if jane.Photo == nil || jane.Photo.ID != "jane-photo" {
		t.Errorf("expected resolved photo, got %+v", jane.Photo)
	}
	if len(jane.Credentials) != 1 || len(jane.Credentials[0].Media) != 2 {
		t.Fatalf("unexpected credentials: %+v", jane.Credentials)
	}
	if jane.Credentials[0].Media[0].ID != "cert-1" {
		t.Errorf("expected cert media order preserved, got %+v", jane.Credentials[0].Media)
	}
}

func TestResolve_DanglingCredentialMediaFatal(t *testing.T) {
	doc := sampleDoc()
	doc.Members[0].Credentials = []docs.CredentialDoc{
		{Title: "Certified Welder", MediaIDs: []string{"missing-cert"}},
	}
	_, err := workforceresolve.Resolve(doc, buildMedia(t))
	var re *dataerr.ReferenceError
	if !errors.As(err, &re) {
		t.Fatalf("expected ReferenceError, got %v", err)
	}
	if re.ID != "missing-cert" {
		t.Errorf("ID: got %q, want %q", re.ID, "missing-cert")
	}
}

func TestResolve_MemberNeedsRole(t *testing.T) {
	doc := sampleDoc()
	doc.Members[0].Roles = nil
	_, err := workforceresolve.Resolve(doc, buildMedia(t))
	var se *dataerr.ShapeError
	if !errors.As(err, &se) {
		t.Fatalf("expected ShapeError, got %v", err)
	}
	if se.Path != "workforce.members[0].roles" {
		t.Errorf("Path: got %q, want %q", se.Path, "workforce.members[0].roles")
	}
}
