// internal/app/resolve/academic/academicresolve.go
package academicresolve

// Validates program records and normalizes the two authoring shapes (flat
// programs with inline groups, or a group index plus programs referencing
// groups by id) into one canonical Program entity.
//
// This resolver owns the pipeline's only two lenient references:
//   - program to group: an unresolvable group_id degrades the program's
//     category context (warn, group stays nil) instead of aborting
//   - requirement to item: an unresolvable item_id drops that single
//     requirement line (warn) and keeps the rest of the list intact
//
// Everything else here is as strict as the rest of the pipeline.

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/communitybuild/orgfolio/internal/app/itemreg"
	cyclesresolve "github.com/communitybuild/orgfolio/internal/app/resolve/cycles"
	mediaresolve "github.com/communitybuild/orgfolio/internal/app/resolve/media"
	"github.com/communitybuild/orgfolio/internal/app/system/dataerr"
	"github.com/communitybuild/orgfolio/internal/app/system/htmlsanitize"
	"github.com/communitybuild/orgfolio/internal/domain/docs"
	"github.com/communitybuild/orgfolio/internal/domain/models"
)

// Resolve validates the academic document and returns the hydrated module.
// cycles may be nil when the tenant has no cycles document; any cycle
// reference then fails, upholding the fixed stage order. A nil logger is
// replaced with a no-op logger.
func Resolve(doc docs.AcademicDoc, media *mediaresolve.Index, cycles *cyclesresolve.Result, items itemreg.Registry, log *zap.Logger) (*models.AcademicModule, error) {
	if log == nil {
		log = zap.NewNop()
	}

	grouped := len(doc.Groups) > 0
	groupByID := make(map[string]models.ProgramGroup, len(doc.Groups))
	for i, g := range doc.Groups {
		group, err := validateGroup(fmt.Sprintf("academic.groups[%d]", i), g)
		if err != nil {
			return nil, err
		}
		if _, exists := groupByID[group.ID]; exists {
			return nil, dataerr.Duplicate("program group", group.ID)
		}
		groupByID[group.ID] = group
	}

	mod := &models.AcademicModule{}
	seenSlugs := make(map[string]bool, len(doc.Programs))
	countedCycles := make(map[string]bool)

	for i, p := range doc.Programs {
		program, err := resolveProgram(i, p, grouped, groupByID, media, cycles, items, log)
		if err != nil {
			return nil, err
		}
		if seenSlugs[program.Slug] {
			return nil, dataerr.Duplicate("program", program.Slug)
		}
		seenSlugs[program.Slug] = true
		mod.Programs = append(mod.Programs, program)

		// A cycle shared by two programs counts once toward the totals.
		for _, pc := range program.Cycles {
			if countedCycles[pc.ID] {
				continue
			}
			countedCycles[pc.ID] = true
			mod.TotalCapacity += pc.Capacity
			mod.TotalEnrolled += pc.Enrolled
		}
	}

	return mod, nil
}

func validateGroup(prefix string, g docs.ProgramGroupDoc) (models.ProgramGroup, error) {
	if g.ID == "" {
		return models.ProgramGroup{}, dataerr.Missing(prefix + ".id")
	}
	if g.Name == "" {
		return models.ProgramGroup{}, dataerr.Missing(prefix + ".name")
	}
	return models.ProgramGroup{ID: g.ID, Name: g.Name, Description: g.Description}, nil
}

func resolveProgram(i int, p docs.ProgramDoc, grouped bool, groupByID map[string]models.ProgramGroup, media *mediaresolve.Index, cycles *cyclesresolve.Result, items itemreg.Registry, log *zap.Logger) (models.Program, error) {
	path := func(field string) string { return fmt.Sprintf("academic.programs[%d].%s", i, field) }

	if p.Slug == "" {
		return models.Program{}, dataerr.Missing(path("slug"))
	}
	if p.Title == "" {
		return models.Program{}, dataerr.Missing(path("title"))
	}
	if p.GroupID != "" && p.Group != nil {
		return models.Program{}, dataerr.Shape(path("group"), "a program cannot both reference and embed a group")
	}

	refBy := fmt.Sprintf("program %q", p.Slug)

	program := models.Program{
		Slug:        p.Slug,
		Title:       p.Title,
		Description: htmlsanitize.Sanitize(p.Description),
	}

	group, err := resolveGroup(i, p, grouped, groupByID, log)
	if err != nil {
		return models.Program{}, err
	}
	program.Group = group

	if program.Cover, err = media.Optional(p.CoverID, refBy); err != nil {
		return models.Program{}, err
	}
	if program.Gallery, err = media.Many(p.GalleryIDs, refBy); err != nil {
		return models.Program{}, err
	}

	// Cycle references are all-or-fail when the list is present.
	for _, cycleID := range p.CycleIDs {
		var pc models.ProgramCycle
		ok := false
		if cycles != nil {
			pc, ok = cycles.ProgramByID[cycleID]
		}
		if !ok {
			return models.Program{}, dataerr.Reference("program cycle", cycleID, refBy)
		}
		program.Cycles = append(program.Cycles, pc)
	}

	for j, c := range p.Courses {
		if c.Title == "" {
			return models.Program{}, dataerr.Missing(fmt.Sprintf("academic.programs[%d].courses[%d].title", i, j))
		}
		if c.Hours < 0 {
			return models.Program{}, dataerr.Shape(fmt.Sprintf("academic.programs[%d].courses[%d].hours", i, j), "must not be negative")
		}
		program.Courses = append(program.Courses, models.Course{Code: c.Code, Title: c.Title, Hours: c.Hours})
	}

	if p.Admission != nil {
		if p.Admission.Policy == "" {
			return models.Program{}, dataerr.Missing(path("admission.policy"))
		}
		program.Admission = &models.Admission{Policy: p.Admission.Policy, Steps: p.Admission.Steps}
	}

	requirements, err := resolveRequirements(i, p, items, log)
	if err != nil {
		return models.Program{}, err
	}
	program.Requirements = requirements

	for j, tst := range p.Testimonials {
		if tst.Author == "" {
			return models.Program{}, dataerr.Missing(fmt.Sprintf("academic.programs[%d].testimonials[%d].author", i, j))
		}
		if tst.Quote == "" {
			return models.Program{}, dataerr.Missing(fmt.Sprintf("academic.programs[%d].testimonials[%d].quote", i, j))
		}
		program.Testimonials = append(program.Testimonials, models.Testimonial{
			Author: tst.Author,
			Quote:  htmlsanitize.Sanitize(tst.Quote),
			Year:   tst.Year,
		})
	}

	return program, nil
}

// resolveGroup normalizes both authoring shapes. In the grouped shape a
// dangling group_id is the lenient path: the program keeps parsing without
// category context.
func resolveGroup(i int, p docs.ProgramDoc, grouped bool, groupByID map[string]models.ProgramGroup, log *zap.Logger) (*models.ProgramGroup, error) {
	if p.GroupID != "" {
		if !grouped {
			return nil, dataerr.Shapef(fmt.Sprintf("academic.programs[%d].group_id", i), "group_id %q used but no groups are defined", p.GroupID)
		}
		group, ok := groupByID[p.GroupID]
		if !ok {
			log.Warn("program references unknown group, category context dropped",
				zap.String("program", p.Slug),
				zap.String("group_id", p.GroupID))
			return nil, nil
		}
		return &group, nil
	}

	if p.Group != nil {
		group, err := validateGroup(fmt.Sprintf("academic.programs[%d].group", i), *p.Group)
		if err != nil {
			return nil, err
		}
		return &group, nil
	}

	return nil, nil
}

// resolveRequirements hydrates the requirement list. A dangling item_id is
// the second lenient path: the single line is dropped with a warning and
// the remaining lines survive.
func resolveRequirements(i int, p docs.ProgramDoc, items itemreg.Registry, log *zap.Logger) ([]models.Requirement, error) {
	var out []models.Requirement
	for j, r := range p.Requirements {
		if r.ItemID == "" {
			return nil, dataerr.Missing(fmt.Sprintf("academic.programs[%d].requirements[%d].item_id", i, j))
		}
		if r.Quantity < 0 {
			return nil, dataerr.Shape(fmt.Sprintf("academic.programs[%d].requirements[%d].quantity", i, j), "must not be negative")
		}

		item, ok := items.FindItemByID(r.ItemID)
		if !ok {
			log.Warn("requirement references unknown item, line dropped",
				zap.String("program", p.Slug),
				zap.String("item_id", r.ItemID))
			continue
		}

		quantity := r.Quantity
		if quantity == 0 {
			quantity = 1
		}
		out = append(out, models.Requirement{Item: item, Quantity: quantity, Note: r.Note})
	}
	return out, nil
}
