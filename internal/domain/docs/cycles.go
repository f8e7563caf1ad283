// internal/domain/docs/cycles.go
package docs

// CyclesDoc holds the three cycle record kinds: shared calendar reference
// data (global), the organization's local cycles, and concrete program
// offerings tied to an org cycle.
type CyclesDoc struct {
	GlobalCycles  []GlobalCycleDoc  `yaml:"global_cycles" json:"global_cycles"`
	OrgCycles     []OrgCycleDoc     `yaml:"org_cycles" json:"org_cycles"`
	ProgramCycles []ProgramCycleDoc `yaml:"program_cycles" json:"program_cycles"`
}

type GlobalCycleDoc struct {
	ID    string `yaml:"id" json:"id"`
	Label string `yaml:"label" json:"label"`
	Start string `yaml:"start" json:"start"`
	End   string `yaml:"end" json:"end"`
}

// OrgCycleDoc is an organization's local naming/override of a global cycle.
// GlobalCycleID is optional; a fully custom label/date pair is valid.
type OrgCycleDoc struct {
	ID            string `yaml:"id" json:"id"`
	GlobalCycleID string `yaml:"global_cycle_id" json:"global_cycle_id"`
	Label         string `yaml:"label" json:"label"`
	Start         string `yaml:"start" json:"start"`
	End           string `yaml:"end" json:"end"`
}

// ProgramCycleDoc is one concrete offering period of a program, with
// capacity/enrollment counters, a registration window, a pricing package
// and the teaching staff (workforce member slugs).
type ProgramCycleDoc struct {
	ID              string           `yaml:"id" json:"id"`
	AcademicCycleID string           `yaml:"academic_cycle_id" json:"academic_cycle_id"`
	Capacity        int              `yaml:"capacity" json:"capacity"`
	Enrolled        int              `yaml:"enrolled" json:"enrolled"`
	Registration    *RegistrationDoc `yaml:"registration" json:"registration"`
	Pricing         *PricingDoc      `yaml:"pricing" json:"pricing"`
	TeacherSlugs    []string         `yaml:"teacher_slugs" json:"teacher_slugs"`
}

type RegistrationDoc struct {
	Opens  string `yaml:"opens" json:"opens"`
	Closes string `yaml:"closes" json:"closes"`
}

type PricingDoc struct {
	Currency     string         `yaml:"currency" json:"currency"`
	Items        []PriceLineDoc `yaml:"items" json:"items"`
	Discounts    []DiscountDoc  `yaml:"discounts" json:"discounts"`
	Installments int            `yaml:"installments" json:"installments"`
}

type PriceLineDoc struct {
	Label  string  `yaml:"label" json:"label"`
	Amount float64 `yaml:"amount" json:"amount"`
}

type DiscountDoc struct {
	Label   string  `yaml:"label" json:"label"`
	Percent float64 `yaml:"percent" json:"percent"`
}
