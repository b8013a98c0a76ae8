package uritemplate

import "strings"

// FragmentPart is the interface for a single part of a template fragment
//
// Use FragmentLiteral, FragmentVar or FragmentVars to create them
type FragmentPart interface {
	fragmentPart()
}

type fragmentLiteral struct {
	value string
}

type simpleFragmentExpansion struct {
	name string
}

type multiFragmentExpansion struct {
	names []string
}

func (p fragmentLiteral) fragmentPart()         {}
func (p simpleFragmentExpansion) fragmentPart() {}
func (p multiFragmentExpansion) fragmentPart()  {}

// FragmentLiteral creates a fixed fragment part
func FragmentLiteral(value string) FragmentPart {
	return fragmentLiteral{
		value: value,
	}
}

// FragmentVar creates a fragment expansion over a single var name
//
// Panics if the name contains non-unreserved characters
func FragmentVar(name string) FragmentPart {
	checkName(name)
	return simpleFragmentExpansion{
		name: name,
	}
}

// FragmentVars creates a fragment expansion over one or more var names
//
// Panics if no names are supplied or any name contains non-unreserved
// characters
func FragmentVars(names ...string) FragmentPart {
	return multiFragmentExpansion{
		names: checkNames(names),
	}
}

// expandFragmentParts replaces any fragment expansion matching the name with
// fixed parts carrying the values - one fixed part per value
func expandFragmentParts(parts []FragmentPart, name string, values []string) []FragmentPart {
	result := make([]FragmentPart, 0, len(parts))
	for _, p := range parts {
		switch pt := p.(type) {
		case fragmentLiteral:
			result = append(result, pt)
		case simpleFragmentExpansion:
			if pt.name == name {
				result = appendFragmentValues(result, values)
			} else {
				result = append(result, pt)
			}
		case multiFragmentExpansion:
			if containsName(pt.names, name) {
				result = appendFragmentValues(result, values)
				if rest := removeName(pt.names, name); len(rest) > 0 {
					result = append(result, multiFragmentExpansion{names: rest})
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

func appendFragmentValues(parts []FragmentPart, values []string) []FragmentPart {
	for _, v := range values {
		parts = append(parts, fragmentLiteral{value: v})
	}
	return parts
}

// renderFragmentParts writes the fragment in its template form - literals
// comma join prefixed with #, expansion names comma join into a single {#a,b}
// expression and an explicitly empty fragment renders as a bare #
func renderFragmentParts(parts []FragmentPart, b *strings.Builder) {
	literals := make([]string, 0, len(parts))
	names := make([]string, 0)
	for _, p := range parts {
		switch pt := p.(type) {
		case fragmentLiteral:
			literals = append(literals, pt.value)
		case simpleFragmentExpansion:
			names = append(names, pt.name)
		case multiFragmentExpansion:
			names = append(names, pt.names...)
		default:
			panic(unsupportedPart(p))
		}
	}
	if len(literals) == 0 && len(names) == 0 {
		b.WriteString("#")
		return
	}
	if len(literals) > 0 {
		b.WriteString("#")
		b.WriteString(strings.Join(literals, ","))
	}
	if len(names) > 0 {
		b.WriteString("{#")
		b.WriteString(strings.Join(names, ","))
		b.WriteString("}")
	}
}

func fragmentPartsResolved(parts []FragmentPart) bool {
	for _, p := range parts {
		if _, ok := p.(fragmentLiteral); !ok {
			return false
		}
	}
	return true
}

func fragmentPartVars(parts []FragmentPart, vars []string) []string {
	for _, p := range parts {
		switch pt := p.(type) {
		case fragmentLiteral:
		case simpleFragmentExpansion:
			vars = append(vars, pt.name)
		case multiFragmentExpansion:
			vars = append(vars, pt.names...)
		default:
			panic(unsupportedPart(p))
		}
	}
	return vars
}
