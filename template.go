package uritemplate

import "strings"

// Scheme is the scheme part of a template (e.g. Scheme("https")) - passed to
// NewTemplate
type Scheme string

// UriTemplate represents a URI template (RFC 6570 levels 1-2, plus path
// segment, form query and fragment expansion) as an ordered tree of typed
// parts rather than a raw string
//
// Templates are immutable - the With and Expand methods always return a new
// template and never mutate the receiver, so a template may safely be shared
// between goroutines
type UriTemplate struct {
	scheme      string
	authority   *Authority
	path        []PathPart
	query       []QueryPart
	hasQuery    bool
	fragment    []FragmentPart
	hasFragment bool
}

// NewTemplate creates a new URI template from the parts provided
//
// The parts can be any Scheme, *Authority, PathPart, QueryPart or
// FragmentPart - in any order (path, query and fragment parts keep their
// relative order within their own section)
//
// Returns a TemplateError if any part is not one of the accepted types
func NewTemplate(parts ...interface{}) (*UriTemplate, error) {
	result := &UriTemplate{
		path: make([]PathPart, 0, len(parts)),
	}
	for _, intf := range parts {
		switch part := intf.(type) {
		case Scheme:
			result.scheme = string(part)
		case *Authority:
			result.authority = part
		case PathPart:
			result.path = append(result.path, part)
		case QueryPart:
			result.query = append(result.query, part)
			result.hasQuery = true
		case FragmentPart:
			result.fragment = append(result.fragment, part)
			result.hasFragment = true
		default:
			return nil, newTemplateError(intf)
		}
	}
	return result, nil
}

// MustCreateTemplate is the same as NewTemplate, except that it panics on
// error
func MustCreateTemplate(parts ...interface{}) *UriTemplate {
	if t, err := NewTemplate(parts...); err != nil {
		panic(err)
	} else {
		return t
	}
}

// WithScheme returns a new template with the scheme set
func (t *UriTemplate) WithScheme(scheme string) *UriTemplate {
	result := t.clone()
	result.scheme = scheme
	return result
}

// WithAuthority returns a new template with the authority set
func (t *UriTemplate) WithAuthority(authority *Authority) *UriTemplate {
	result := t.clone()
	result.authority = authority
	return result
}

// WithPath returns a new template with the path parts appended
func (t *UriTemplate) WithPath(parts ...PathPart) *UriTemplate {
	result := t.clone()
	result.path = append(result.path, parts...)
	return result
}

// WithQuery returns a new template with the query set to the parts provided
//
// Calling with no parts sets an explicitly empty query - which renders as a
// bare ?
func (t *UriTemplate) WithQuery(parts ...QueryPart) *UriTemplate {
	result := t.clone()
	result.query = make([]QueryPart, len(parts))
	copy(result.query, parts)
	result.hasQuery = true
	return result
}

// WithFragment returns a new template with the fragment set to the parts
// provided
//
// Calling with no parts sets an explicitly empty fragment - which renders as
// a bare #
func (t *UriTemplate) WithFragment(parts ...FragmentPart) *UriTemplate {
	result := t.clone()
	result.fragment = make([]FragmentPart, len(parts))
	copy(result.fragment, parts)
	result.hasFragment = true
	return result
}

// ExpandPath returns a new template with any path expansion matching the
// name resolved to the values supplied - one path part per value
//
// Expanding a name that does not occur in the path is a no-op
//
// Returns an error only if a value cannot be converted to its string form
func (t *UriTemplate) ExpandPath(name string, values ...interface{}) (*UriTemplate, error) {
	strs, err := encodeValues(values)
	if err != nil {
		return nil, err
	}
	result := t.clone()
	result.path = expandPathParts(result.path, name, strs)
	return result, nil
}

// ExpandQuery returns a new template with any query expansion matching the
// name resolved to the values supplied
//
// With no values the matching expansion resolves to a bare flag param, with
// one value to a single name=value param and with multiple values to
// repeated name=value pairs
//
// Expanding a name that does not occur in the query is a no-op
//
// Returns an error only if a value cannot be converted to its string form
func (t *UriTemplate) ExpandQuery(name string, values ...interface{}) (*UriTemplate, error) {
	strs, err := encodeValues(values)
	if err != nil {
		return nil, err
	}
	result := t.clone()
	result.query = expandQueryParts(result.query, name, strs)
	return result, nil
}

// ExpandFragment returns a new template with any fragment expansion matching
// the name resolved to the value supplied
//
// Expanding a name that does not occur in the fragment is a no-op
//
// Returns an error only if the value cannot be converted to its string form
func (t *UriTemplate) ExpandFragment(name string, value interface{}) (*UriTemplate, error) {
	str, err := encodeValue(value)
	if err != nil {
		return nil, err
	}
	result := t.clone()
	result.fragment = expandFragmentParts(result.fragment, name, []string{str})
	return result, nil
}

// Expand returns a new template with any path, query or fragment expansion
// matching the name resolved to the values supplied
//
// Expanding a name that does not occur anywhere is a no-op
//
// Returns an error only if a value cannot be converted to its string form
func (t *UriTemplate) Expand(name string, values ...interface{}) (*UriTemplate, error) {
	strs, err := encodeValues(values)
	if err != nil {
		return nil, err
	}
	result := t.clone()
	result.path = expandPathParts(result.path, name, strs)
	result.query = expandQueryParts(result.query, name, strs)
	result.fragment = expandFragmentParts(result.fragment, name, strs)
	return result, nil
}

// Resolved returns whether the template has no remaining expansions (and is
// therefore eligible for conversion to a URI)
func (t *UriTemplate) Resolved() bool {
	return pathPartsResolved(t.path) && queryPartsResolved(t.query) && fragmentPartsResolved(t.fragment)
}

// Vars returns the names of all remaining expansion vars, in template order
// (path, then query, then fragment)
func (t *UriTemplate) Vars() []string {
	result := make([]string, 0)
	result = pathPartVars(t.path, result)
	result = queryPartVars(t.query, result)
	result = fragmentPartVars(t.fragment, result)
	return result
}

// String returns the template in its string form - always defined, any
// remaining expansions render in their {name} / {+name} / {/name} / {?name} /
// {&name} / {#name} expression form
func (t *UriTemplate) String() string {
	var b strings.Builder
	if t.scheme != "" && t.authority != nil {
		b.WriteString(t.scheme)
		b.WriteString("://")
		b.WriteString(t.authority.String())
	} else if t.scheme != "" {
		b.WriteString(t.scheme)
		b.WriteString(":")
	} else if t.authority != nil {
		b.WriteString(t.authority.String())
	}
	renderPathParts(t.path, &b)
	if t.hasQuery {
		renderQueryParts(t.query, &b)
	}
	if t.hasFragment {
		renderFragmentParts(t.fragment, &b)
	}
	return b.String()
}

func (t *UriTemplate) clone() *UriTemplate {
	result := &UriTemplate{
		scheme:      t.scheme,
		authority:   t.authority,
		path:        make([]PathPart, len(t.path)),
		hasQuery:    t.hasQuery,
		hasFragment: t.hasFragment,
	}
	copy(result.path, t.path)
	if t.query != nil {
		result.query = make([]QueryPart, len(t.query))
		copy(result.query, t.query)
	}
	if t.fragment != nil {
		result.fragment = make([]FragmentPart, len(t.fragment))
		copy(result.fragment, t.fragment)
	}
	return result
}
