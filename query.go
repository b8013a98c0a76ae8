package uritemplate

import "strings"

// QueryPart is the interface for a single part of a template query
//
// A QueryPart is either a literal param or one of the expansion parts - use
// QueryParam, QueryVar, QueryReserved, FormVar or FormContinuation to create
// them
type QueryPart interface {
	queryPart()
}

type queryParam struct {
	name   string
	values []string
}

type queryVarExpansion struct {
	name  string
	names []string
}

type queryReservedExpansion struct {
	name  string
	names []string
}

type formExpansion struct {
	names []string
}

type formContinuationExpansion struct {
	names []string
}

func (p queryParam) queryPart()                {}
func (p queryVarExpansion) queryPart()         {}
func (p queryReservedExpansion) queryPart()    {}
func (p formExpansion) queryPart()             {}
func (p formContinuationExpansion) queryPart() {}

// QueryParam creates a literal query param
//
// With no values it renders as a bare name, with one value as name=value and
// with multiple values as repeated name=value pairs
//
// Panics if the name contains non-unreserved characters
func QueryParam(name string, values ...string) QueryPart {
	checkName(name)
	vs := make([]string, len(values))
	copy(vs, values)
	return queryParam{
		name:   name,
		values: vs,
	}
}

// QueryVar creates a param expansion with a literal param name - rendered as
// name={a,b}
//
// Panics if no var names are supplied or any name contains non-unreserved
// characters
func QueryVar(name string, names ...string) QueryPart {
	checkName(name)
	return queryVarExpansion{
		name:  name,
		names: checkNames(names),
	}
}

// QueryReserved creates a reserved param expansion with a literal param
// name - rendered as name={+a,b}
//
// Panics if no var names are supplied or any name contains non-unreserved
// characters
func QueryReserved(name string, names ...string) QueryPart {
	checkName(name)
	return queryReservedExpansion{
		name:  name,
		names: checkNames(names),
	}
}

// FormVar creates a form style expansion of bare var names - each var
// becomes its own name=value pair when expanded
//
// Rendered (combined with any other form expansions) as {?a,b}
//
// Panics if no names are supplied or any name contains non-unreserved
// characters
func FormVar(names ...string) QueryPart {
	return formExpansion{
		names: checkNames(names),
	}
}

// FormContinuation is the same as FormVar except that it renders with the &
// separator regardless of preceding query content - {&a,b}
//
// Panics if no names are supplied or any name contains non-unreserved
// characters
func FormContinuation(names ...string) QueryPart {
	return formContinuationExpansion{
		names: checkNames(names),
	}
}

// expandQueryParts replaces any query expansion matching the name with a
// literal param carrying the values
//
// A matching form expansion resolves into a param named after the matched
// var (not any prefix) - where the name is one of several, the remaining
// names are carried in a residual expansion after the param, with a reserved
// param residual degrading to a plain param expansion
func expandQueryParts(parts []QueryPart, name string, values []string) []QueryPart {
	result := make([]QueryPart, 0, len(parts))
	for _, p := range parts {
		switch pt := p.(type) {
		case queryParam:
			result = append(result, pt)
		case queryVarExpansion:
			if containsName(pt.names, name) {
				result = append(result, queryParam{name: pt.name, values: values})
				if rest := removeName(pt.names, name); len(rest) > 0 {
					result = append(result, queryVarExpansion{name: pt.name, names: rest})
				}
			} else {
				result = append(result, pt)
			}
		case queryReservedExpansion:
			if containsName(pt.names, name) {
				result = append(result, queryParam{name: pt.name, values: values})
				if rest := removeName(pt.names, name); len(rest) > 0 {
					result = append(result, queryVarExpansion{name: pt.name, names: rest})
				}
			} else {
				result = append(result, pt)
			}
		case formExpansion:
			if containsName(pt.names, name) {
				result = append(result, queryParam{name: name, values: values})
				if rest := removeName(pt.names, name); len(rest) > 0 {
					result = append(result, formExpansion{names: rest})
				}
			} else {
				result = append(result, pt)
			}
		case formContinuationExpansion:
			if containsName(pt.names, name) {
				result = append(result, queryParam{name: name, values: values})
				if rest := removeName(pt.names, name); len(rest) > 0 {
					result = append(result, formContinuationExpansion{names: rest})
				}
			} else {
				result = append(result, pt)
			}
		default:
			panic(unsupportedPart(p))
		}
	}
	return result
}

// renderQueryParts writes the query in its template form
//
// Literal params and prefixed param expansions render first, in order, ? and
// then & separated - all bare form expansion names then combine into a
// single {?a,b} (or {&a,b}) expression. An explicitly empty query renders as
// a bare ?
func renderQueryParts(parts []QueryPart, b *strings.Builder) {
	emitted := false
	sep := func() string {
		if emitted {
			return "&"
		}
		emitted = true
		return "?"
	}
	formNames := make([]string, 0)
	continuing := false
	for _, p := range parts {
		switch pt := p.(type) {
		case queryParam:
			if len(pt.values) == 0 {
				b.WriteString(sep())
				b.WriteString(pt.name)
			} else {
				for _, v := range pt.values {
					b.WriteString(sep())
					b.WriteString(pt.name)
					b.WriteString("=")
					b.WriteString(v)
				}
			}
		case queryVarExpansion:
			b.WriteString(sep())
			b.WriteString(pt.name)
			b.WriteString("={")
			b.WriteString(strings.Join(pt.names, ","))
			b.WriteString("}")
		case queryReservedExpansion:
			b.WriteString(sep())
			b.WriteString(pt.name)
			b.WriteString("={+")
			b.WriteString(strings.Join(pt.names, ","))
			b.WriteString("}")
		case formExpansion:
			formNames = append(formNames, pt.names...)
		case formContinuationExpansion:
			if len(formNames) == 0 {
				continuing = true
			}
			formNames = append(formNames, pt.names...)
		default:
			panic(unsupportedPart(p))
		}
	}
	if len(formNames) > 0 {
		if emitted || continuing {
			b.WriteString("{&")
		} else {
			b.WriteString("{?")
		}
		b.WriteString(strings.Join(formNames, ","))
		b.WriteString("}")
	} else if !emitted {
		b.WriteString("?")
	}
}

func queryPartsResolved(parts []QueryPart) bool {
	for _, p := range parts {
		if _, ok := p.(queryParam); !ok {
			return false
		}
	}
	return true
}

func queryPartVars(parts []QueryPart, vars []string) []string {
	for _, p := range parts {
		switch pt := p.(type) {
		case queryParam:
		case queryVarExpansion:
			vars = append(vars, pt.names...)
		case queryReservedExpansion:
			vars = append(vars, pt.names...)
		case formExpansion:
			vars = append(vars, pt.names...)
		case formContinuationExpansion:
			vars = append(vars, pt.names...)
		default:
			panic(unsupportedPart(p))
		}
	}
	return vars
}
