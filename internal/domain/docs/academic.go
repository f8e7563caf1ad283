// internal/domain/docs/academic.go
package docs

// AcademicDoc supports two authoring shapes that normalize to one:
//
//   - flat: Programs only, each embedding its category group inline
//   - grouped: Groups plus Programs that reference a group by GroupID
//
// The academic resolver owns the normalization; nothing downstream ever
// sees which shape a program was authored in.
type AcademicDoc struct {
	Groups   []ProgramGroupDoc `yaml:"groups" json:"groups"`
	Programs []ProgramDoc      `yaml:"programs" json:"programs"`
}

type ProgramGroupDoc struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
}

type ProgramDoc struct {
	Slug         string           `yaml:"slug" json:"slug"`
	Title        string           `yaml:"title" json:"title"`
	Description  string           `yaml:"description" json:"description"`
	GroupID      string           `yaml:"group_id" json:"group_id"`
	Group        *ProgramGroupDoc `yaml:"group" json:"group"`
	CoverID      string           `yaml:"cover_id" json:"cover_id"`
	GalleryIDs   []string         `yaml:"gallery_ids" json:"gallery_ids"`
	CycleIDs     []string         `yaml:"cycle_ids" json:"cycle_ids"`
	Courses      []CourseDoc      `yaml:"courses" json:"courses"`
	Admission    *AdmissionDoc    `yaml:"admission" json:"admission"`
	Requirements []RequirementDoc `yaml:"requirements" json:"requirements"`
	Testimonials []TestimonialDoc `yaml:"testimonials" json:"testimonials"`
}

type CourseDoc struct {
	Code  string `yaml:"code" json:"code"`
	Title string `yaml:"title" json:"title"`
	Hours int    `yaml:"hours" json:"hours"`
}

type AdmissionDoc struct {
	Policy string   `yaml:"policy" json:"policy"`
	Steps  []string `yaml:"steps" json:"steps"`
}

// RequirementDoc is one line of a program's requirement list, referencing a
// catalog item by id.
type RequirementDoc struct {
	ItemID   string `yaml:"item_id" json:"item_id"`
	Quantity int    `yaml:"quantity" json:"quantity"`
	Note     string `yaml:"note" json:"note"`
}

type TestimonialDoc struct {
	Author string `yaml:"author" json:"author"`
	Quote  string `yaml:"quote" json:"quote"`
	Year   int    `yaml:"year" json:"year"`
}
