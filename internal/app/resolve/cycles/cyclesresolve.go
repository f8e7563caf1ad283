// internal/app/resolve/cycles/cyclesresolve.go
package cyclesresolve

// Validates global cycles, the organization's local cycles and program
// cycles, in that order. Org cycles may reference a global cycle; program
// cycles must reference an org cycle and may reference teaching staff from
// the workforce member index.

import (
	"fmt"
	"time"

	"github.com/communitybuild/orgfolio/internal/app/system/dataerr"
	"github.com/communitybuild/orgfolio/internal/domain/docs"
	"github.com/communitybuild/orgfolio/internal/domain/models"
)

// Result exposes the three id-to-entity indices consumed by the academic
// resolver, plus the program cycles in document order.
type Result struct {
	GlobalByID    map[string]models.AcademicCycle
	OrgByID       map[string]models.OrgAcademicCycle
	ProgramByID   map[string]models.ProgramCycle
	ProgramCycles []models.ProgramCycle
}

const dateLayout = "2006-01-02"

// Resolve validates the cycles document. The members index comes from the
// workforce resolver; when the workforce module is absent the orchestrator
// passes nil, so any teacher reference fails as a normal reference error
// (a module may only reference modules that parsed before it).
func Resolve(doc docs.CyclesDoc, members map[string]models.WorkforceMember) (*Result, error) {
	res := &Result{
		GlobalByID:  make(map[string]models.AcademicCycle, len(doc.GlobalCycles)),
		OrgByID:     make(map[string]models.OrgAcademicCycle, len(doc.OrgCycles)),
		ProgramByID: make(map[string]models.ProgramCycle, len(doc.ProgramCycles)),
	}

	for i, g := range doc.GlobalCycles {
		cycle, err := validateGlobal(i, g)
		if err != nil {
			return nil, err
		}
		if _, exists := res.GlobalByID[cycle.ID]; exists {
			return nil, dataerr.Duplicate("global academic cycle", cycle.ID)
		}
		res.GlobalByID[cycle.ID] = cycle
	}

	for i, o := range doc.OrgCycles {
		cycle, err := resolveOrgCycle(i, o, res.GlobalByID)
		if err != nil {
			return nil, err
		}
		if _, exists := res.OrgByID[cycle.ID]; exists {
			return nil, dataerr.Duplicate("org academic cycle", cycle.ID)
		}
		res.OrgByID[cycle.ID] = cycle
	}

	for i, p := range doc.ProgramCycles {
		cycle, err := resolveProgramCycle(i, p, res.OrgByID, members)
		if err != nil {
			return nil, err
		}
		if _, exists := res.ProgramByID[cycle.ID]; exists {
			return nil, dataerr.Duplicate("program cycle", cycle.ID)
		}
		res.ProgramByID[cycle.ID] = cycle
		res.ProgramCycles = append(res.ProgramCycles, cycle)
	}

	return res, nil
}

func validateGlobal(i int, g docs.GlobalCycleDoc) (models.AcademicCycle, error) {
	path := func(field string) string { return fmt.Sprintf("cycles.global_cycles[%d].%s", i, field) }

	if g.ID == "" {
		return models.AcademicCycle{}, dataerr.Missing(path("id"))
	}
	if g.Label == "" {
		return models.AcademicCycle{}, dataerr.Missing(path("label"))
	}
	if err := requireDate(path("start"), g.Start); err != nil {
		return models.AcademicCycle{}, err
	}
	if err := requireDate(path("end"), g.End); err != nil {
		return models.AcademicCycle{}, err
	}
	return models.AcademicCycle{ID: g.ID, Label: g.Label, Start: g.Start, End: g.End}, nil
}

// resolveOrgCycle resolves the optional global reference. A cycle backed by
// a global entry inherits label and dates it does not override; a fully
// custom cycle must carry its own.
func resolveOrgCycle(i int, o docs.OrgCycleDoc, globals map[string]models.AcademicCycle) (models.OrgAcademicCycle, error) {
	path := func(field string) string { return fmt.Sprintf("cycles.org_cycles[%d].%s", i, field) }

	if o.ID == "" {
		return models.OrgAcademicCycle{}, dataerr.Missing(path("id"))
	}

	cycle := models.OrgAcademicCycle{ID: o.ID, Label: o.Label, Start: o.Start, End: o.End}

	if o.GlobalCycleID != "" {
		global, ok := globals[o.GlobalCycleID]
		if !ok {
			return models.OrgAcademicCycle{}, dataerr.Reference("global academic cycle", o.GlobalCycleID, fmt.Sprintf("org cycle %q", o.ID))
		}
		cycle.Global = &global
		if cycle.Label == "" {
			cycle.Label = global.Label
		}
		if cycle.Start == "" {
			cycle.Start = global.Start
		}
		if cycle.End == "" {
			cycle.End = global.End
		}
	}

	if cycle.Label == "" {
		return models.OrgAcademicCycle{}, dataerr.Missing(path("label"))
	}
	if err := requireDate(path("start"), cycle.Start); err != nil {
		return models.OrgAcademicCycle{}, err
	}
	if err := requireDate(path("end"), cycle.End); err != nil {
		return models.OrgAcademicCycle{}, err
	}

	return cycle, nil
}

func resolveProgramCycle(i int, p docs.ProgramCycleDoc, orgCycles map[string]models.OrgAcademicCycle, members map[string]models.WorkforceMember) (models.ProgramCycle, error) {
	path := func(field string) string { return fmt.Sprintf("cycles.program_cycles[%d].%s", i, field) }

	if p.ID == "" {
		return models.ProgramCycle{}, dataerr.Missing(path("id"))
	}
	refBy := fmt.Sprintf("program cycle %q", p.ID)

	if p.AcademicCycleID == "" {
		return models.ProgramCycle{}, dataerr.Missing(path("academic_cycle_id"))
	}
	academic, ok := orgCycles[p.AcademicCycleID]
	if !ok {
		return models.ProgramCycle{}, dataerr.Reference("org academic cycle", p.AcademicCycleID, refBy)
	}

	if p.Capacity < 0 {
		return models.ProgramCycle{}, dataerr.Shape(path("capacity"), "must not be negative")
	}
	if p.Enrolled < 0 {
		return models.ProgramCycle{}, dataerr.Shape(path("enrolled"), "must not be negative")
	}

	cycle := models.ProgramCycle{
		ID:            p.ID,
		AcademicCycle: academic,
		Capacity:      p.Capacity,
		Enrolled:      p.Enrolled,
	}

	if p.Registration != nil {
		if err := requireDate(path("registration.opens"), p.Registration.Opens); err != nil {
			return models.ProgramCycle{}, err
		}
		if err := requireDate(path("registration.closes"), p.Registration.Closes); err != nil {
			return models.ProgramCycle{}, err
		}
		cycle.Registration = &models.RegistrationWindow{Opens: p.Registration.Opens, Closes: p.Registration.Closes}
	}

	if p.Pricing != nil {
		pricing, err := validatePricing(path("pricing"), p.Pricing)
		if err != nil {
			return models.ProgramCycle{}, err
		}
		cycle.Pricing = pricing
	}

	for _, slug := range p.TeacherSlugs {
		member, ok := members[slug]
		if !ok {
			return models.ProgramCycle{}, dataerr.Reference("workforce member", slug, refBy)
		}
		cycle.Teachers = append(cycle.Teachers, member)
	}

	return cycle, nil
}

func validatePricing(prefix string, p *docs.PricingDoc) (*models.Pricing, error) {
	if p.Currency == "" {
		return nil, dataerr.Missing(prefix + ".currency")
	}
	if len(p.Items) == 0 {
		return nil, dataerr.Shape(prefix+".items", "at least one price line is required")
	}

	pricing := &models.Pricing{Currency: p.Currency, Installments: p.Installments}
	for j, line := range p.Items {
		if line.Label == "" {
			return nil, dataerr.Missing(fmt.Sprintf("%s.items[%d].label", prefix, j))
		}
		if line.Amount < 0 {
			return nil, dataerr.Shape(fmt.Sprintf("%s.items[%d].amount", prefix, j), "must not be negative")
		}
		pricing.Items = append(pricing.Items, models.PriceLine{Label: line.Label, Amount: line.Amount})
		pricing.Total += line.Amount
	}
	for j, d := range p.Discounts {
		if d.Percent < 0 || d.Percent > 100 {
			return nil, dataerr.Shapef(fmt.Sprintf("%s.discounts[%d].percent", prefix, j), "%v is not a valid percentage", d.Percent)
		}
		pricing.Discounts = append(pricing.Discounts, models.Discount{Label: d.Label, Percent: d.Percent})
	}
	if p.Installments < 0 {
		return nil, dataerr.Shape(prefix+".installments", "must not be negative")
	}
	return pricing, nil
}

func requireDate(path, value string) error {
	if value == "" {
		return dataerr.Missing(path)
	}
	if _, err := time.Parse(dateLayout, value); err != nil {
		return dataerr.Shapef(path, "%q is not a valid date (want YYYY-MM-DD)", value)
	}
	return nil
}
