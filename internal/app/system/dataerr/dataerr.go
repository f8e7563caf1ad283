// internal/app/system/dataerr/dataerr.go
package dataerr

// Terminology: Pipeline Error Kinds
//   - ShapeError: a document failed structural validation (missing/invalid field)
//   - ReferenceError: a foreign-key style identifier did not resolve in its registry
//   - DuplicateError: two records in one registry share an identifier
//
// All three are build-time data-integrity failures. There is no retry path;
// callers abort the pipeline for the tenant and report the error as-is.

import "fmt"

// ShapeError reports a document that does not match its expected structure.
// Path is the field path within the source document (e.g. "needs[2].slug").
type ShapeError struct {
	Path   string
	Reason string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("invalid document: %s: %s", e.Path, e.Reason)
}

// Shape builds a ShapeError for the given field path.
func Shape(path, reason string) error {
	return &ShapeError{Path: path, Reason: reason}
}

// Shapef builds a ShapeError with a formatted reason.
func Shapef(path, format string, args ...any) error {
	return &ShapeError{Path: path, Reason: fmt.Sprintf(format, args...)}
}

// Missing is the common "required field is absent" shape error.
func Missing(path string) error {
	return &ShapeError{Path: path, Reason: "required field is missing"}
}

// ReferenceError reports an identifier that did not resolve in its target
// registry. ReferencedBy identifies the entity that carried the reference so
// the offending document can be located without a debugger.
type ReferenceError struct {
	Registry     string
	ID           string
	ReferencedBy string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("unresolved %s reference %q (referenced by %s)", e.Registry, e.ID, e.ReferencedBy)
}

// Reference builds a ReferenceError.
func Reference(registry, id, referencedBy string) error {
	return &ReferenceError{Registry: registry, ID: id, ReferencedBy: referencedBy}
}

// DuplicateError reports two records in the same registry sharing an
// identifier. Raised at index-construction time, before any reference
// resolution runs, so a duplicate always wins over a dangling reference.
type DuplicateError struct {
	Registry string
	ID       string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate %s id %q", e.Registry, e.ID)
}

// Duplicate builds a DuplicateError.
func Duplicate(registry, id string) error {
	return &DuplicateError{Registry: registry, ID: id}
}
