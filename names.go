package uritemplate

import "fmt"

// variable and param names are restricted to unreserved characters
// (RFC 3986 section 2.3)
func isUnreservedChar(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') ||
		(ch >= '0' && ch <= '9') ||
		ch == '-' || ch == '.' || ch == '_' || ch == '~'
}

func checkName(name string) {
	if name == "" {
		panic("var name cannot be empty")
	}
	for i := 0; i < len(name); i++ {
		if !isUnreservedChar(name[i]) {
			panic(fmt.Sprintf("invalid character %q in var name %q", name[i], name))
		}
	}
}

func checkNames(names []string) []string {
	if len(names) == 0 {
		panic("expansion must have at least one var name")
	}
	result := make([]string, len(names))
	for i, name := range names {
		checkName(name)
		result[i] = name
	}
	return result
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

func removeName(names []string, name string) []string {
	result := make([]string, 0, len(names))
	for _, n := range names {
		if n != name {
			result = append(result, n)
		}
	}
	return result
}
