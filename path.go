package uritemplate

import "strings"

// PathPart is the interface for a single part of a template path
//
// A PathPart is either a fixed (literal) path part or one of the expansion
// parts - use PathLiteral, PathVar, PathReserved or PathSegmentVar to create
// them
type PathPart interface {
	pathPart()
}

type pathLiteral struct {
	value string
}

type pathVarExpansion struct {
	names []string
}

type pathReservedExpansion struct {
	names []string
}

type pathSegmentExpansion struct {
	names []string
}

func (p pathLiteral) pathPart()           {}
func (p pathVarExpansion) pathPart()      {}
func (p pathReservedExpansion) pathPart() {}
func (p pathSegmentExpansion) pathPart()  {}

// PathLiteral creates a fixed path part - rendered as /value
func PathLiteral(value string) PathPart {
	return pathLiteral{
		value: value,
	}
}

// PathVar creates a simple path var expansion - rendered as {a,b}
//
// Panics if no names are supplied or any name contains non-unreserved
// characters
func PathVar(names ...string) PathPart {
	return pathVarExpansion{
		names: checkNames(names),
	}
}

// PathReserved creates a reserved path expansion - rendered as {+a,b}
//
// Panics if no names are supplied or any name contains non-unreserved
// characters
func PathReserved(names ...string) PathPart {
	return pathReservedExpansion{
		names: checkNames(names),
	}
}

// PathSegmentVar creates a path segment expansion - rendered as {/a,b}
//
// Panics if no names are supplied or any name contains non-unreserved
// characters
func PathSegmentVar(names ...string) PathPart {
	return pathSegmentExpansion{
		names: checkNames(names),
	}
}

// expandPathParts replaces any path expansion matching the name with fixed
// parts carrying the values - one fixed part per value
//
// Where the name is one of several in an expansion, the remaining names are
// carried in a residual expansion after the fixed parts - a reserved
// expansion residual degrades to a plain var expansion
func expandPathParts(parts []PathPart, name string, values []string) []PathPart {
	result := make([]PathPart, 0, len(parts))
	for _, p := range parts {
		switch pt := p.(type) {
		case pathLiteral:
			result = append(result, pt)
		case pathVarExpansion:
			if containsName(pt.names, name) {
				result = appendPathValues(result, values)
				if rest := removeName(pt.names, name); len(rest) > 0 {
					result = append(result, pathVarExpansion{names: rest})
				}
			} else {
				result = append(result, pt)
			}
		case pathReservedExpansion:
			if containsName(pt.names, name) {
				result = appendPathValues(result, values)
				if rest := removeName(pt.names, name); len(rest) > 0 {
					result = append(result, pathVarExpansion{names: rest})
				}
			} else {
				result = append(result, pt)
			}
		case pathSegmentExpansion:
			if containsName(pt.names, name) {
				result = appendPathValues(result, values)
				if rest := removeName(pt.names, name); len(rest) > 0 {
					result = append(result, pathSegmentExpansion{names: rest})
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

func appendPathValues(parts []PathPart, values []string) []PathPart {
	for _, v := range values {
		parts = append(parts, pathLiteral{value: v})
	}
	return parts
}

// renderPathParts writes the path in its template form - an empty path
// renders as a bare /
func renderPathParts(parts []PathPart, b *strings.Builder) {
	if len(parts) == 0 {
		b.WriteString("/")
		return
	}
	for _, p := range parts {
		switch pt := p.(type) {
		case pathLiteral:
			b.WriteString("/")
			b.WriteString(pt.value)
		case pathVarExpansion:
			b.WriteString("{")
			b.WriteString(strings.Join(pt.names, ","))
			b.WriteString("}")
		case pathReservedExpansion:
			b.WriteString("{+")
			b.WriteString(strings.Join(pt.names, ","))
			b.WriteString("}")
		case pathSegmentExpansion:
			b.WriteString("{/")
			b.WriteString(strings.Join(pt.names, ","))
			b.WriteString("}")
		default:
			panic(unsupportedPart(p))
		}
	}
}

func pathPartsResolved(parts []PathPart) bool {
	for _, p := range parts {
		if _, ok := p.(pathLiteral); !ok {
			return false
		}
	}
	return true
}

func pathPartVars(parts []PathPart, vars []string) []string {
	for _, p := range parts {
		switch pt := p.(type) {
		case pathLiteral:
		case pathVarExpansion:
			vars = append(vars, pt.names...)
		case pathReservedExpansion:
			vars = append(vars, pt.names...)
		case pathSegmentExpansion:
			vars = append(vars, pt.names...)
		default:
			panic(unsupportedPart(p))
		}
	}
	return vars
}
