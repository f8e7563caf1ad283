// internal/domain/models/academic.go
package models

// ProgramGroup is a program's category. Programs authored in the grouped
// shape reference groups by id; flat-shape programs embed them inline. By
// the time a Program exists, the distinction is gone.
type ProgramGroup struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type Course struct {
	Code  string `json:"code"`
	Title string `json:"title"`
	Hours int    `json:"hours,omitempty"`
}

type Admission struct {
	Policy string   `json:"policy"`
	Steps  []string `json:"steps,omitempty"`
}

// Requirement is one hydrated requirement line. Lines whose item id did not
// resolve are dropped during resolution (the documented lenient path), so a
// Requirement always carries a real Item.
type Requirement struct {
	Item     Item   `json:"item"`
	Quantity int    `json:"quantity"`
	Note     string `json:"note,omitempty"`
}

type Testimonial struct {
	Author string `json:"author"`
	Quote  string `json:"quote"` // sanitized HTML
	Year   int    `json:"year,omitempty"`
}

// Program is one hydrated course offering.
type Program struct {
	Slug         string         `json:"slug"`
	Title        string         `json:"title"`
	Description  string         `json:"description,omitempty"` // sanitized HTML
	Group        *ProgramGroup  `json:"group,omitempty"`
	Cover        *Media         `json:"cover,omitempty"`
	Gallery      []Media        `json:"gallery,omitempty"`
	Cycles       []ProgramCycle `json:"cycles,omitempty"`
	Courses      []Course       `json:"courses,omitempty"`
	Admission    *Admission     `json:"admission,omitempty"`
	Requirements []Requirement  `json:"requirements,omitempty"`
	Testimonials []Testimonial  `json:"testimonials,omitempty"`
}

// AcademicModule is the resolved academic slice plus aggregate student-count
// metadata across all program cycles.
type AcademicModule struct {
	Programs      []Program `json:"programs"`
	TotalCapacity int       `json:"total_capacity"`
	TotalEnrolled int       `json:"total_enrolled"`
}
