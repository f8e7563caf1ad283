// internal/domain/models/cycles.go
package models

// AcademicCycle is shared calendar reference data (global registry).
type AcademicCycle struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// OrgAcademicCycle is the organization's local cycle. Global is set when the
// cycle overrides a global calendar entry; a fully custom cycle carries its
// own label/date pair and a nil Global.
type OrgAcademicCycle struct {
	ID     string         `json:"id"`
	Label  string         `json:"label"`
	Start  string         `json:"start"`
	End    string         `json:"end"`
	Global *AcademicCycle `json:"global,omitempty"`
}

// RegistrationWindow bounds when enrollment is open.
type RegistrationWindow struct {
	Opens  string `json:"opens"`
	Closes string `json:"closes"`
}

type PriceLine struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

type Discount struct {
	Label   string  `json:"label"`
	Percent float64 `json:"percent"`
}

// Pricing is a program cycle's pricing package. Total is the sum of line
// items before discounts.
type Pricing struct {
	Currency     string      `json:"currency"`
	Items        []PriceLine `json:"items"`
	Discounts    []Discount  `json:"discounts,omitempty"`
	Installments int         `json:"installments,omitempty"`
	Total        float64     `json:"total"`
}

// ProgramCycle is one concrete offering period with capacity counters,
// pricing and teaching staff.
type ProgramCycle struct {
	ID            string              `json:"id"`
	AcademicCycle OrgAcademicCycle    `json:"academic_cycle"`
	Capacity      int                 `json:"capacity"`
	Enrolled      int                 `json:"enrolled"`
	Registration  *RegistrationWindow `json:"registration,omitempty"`
	Pricing       *Pricing            `json:"pricing,omitempty"`
	Teachers      []WorkforceMember   `json:"teachers,omitempty"`
}
