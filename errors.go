package uritemplate

import "fmt"

// TemplateError is the error type returned when a template cannot be
// constructed from the parts supplied
//
// Part returns the rejected part
type TemplateError interface {
	error
	Part() interface{}
}

func newTemplateError(part interface{}) TemplateError {
	return &templateError{
		part: part,
	}
}

type templateError struct {
	part interface{}
}

func (e *templateError) Error() string {
	return fmt.Sprintf("unknown template part type %T", e.part)
}

func (e *templateError) Part() interface{} {
	return e.part
}

// UnresolvedExpansionError is the error returned by UriTemplate.URI (and
// UriTemplate.NewRequest) when the template still contains unresolved
// expansions
//
// Template returns the current string rendering of the template - so the
// caller can see exactly which expansions remain
type UnresolvedExpansionError interface {
	error
	Template() string
}

func newUnresolvedExpansionError(rendered string) UnresolvedExpansionError {
	return &unresolvedExpansionError{
		rendered: rendered,
	}
}

type unresolvedExpansionError struct {
	rendered string
}

func (e *unresolvedExpansionError) Error() string {
	return fmt.Sprintf("template contains unresolved expansions: %s", e.rendered)
}

func (e *unresolvedExpansionError) Template() string {
	return e.rendered
}

// internal-consistency failure - reachable only if a new part variant is
// added without being handled everywhere
func unsupportedPart(p interface{}) string {
	return fmt.Sprintf("unsupported template part type %T", p)
}
