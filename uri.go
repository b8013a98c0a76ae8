package uritemplate

import (
	"io"
	"net/http"
	"net/url"
	"strings"
)

// URI converts a fully resolved template into a URI
//
// Returns an UnresolvedExpansionError (carrying the template's current
// string rendering) if any expansion remains unresolved
func (t *UriTemplate) URI() (*url.URL, error) {
	if !t.Resolved() {
		return nil, newUnresolvedExpansionError(t.String())
	}
	result := &url.URL{
		Scheme: t.scheme,
	}
	if t.authority != nil {
		if t.authority.userInfo != "" {
			result.User = url.User(t.authority.userInfo)
		}
		result.Host = t.authority.hostPort()
	}
	var pb strings.Builder
	if len(t.path) == 0 {
		pb.WriteString("/")
	}
	for _, p := range t.path {
		if pt, ok := p.(pathLiteral); ok {
			pb.WriteString("/")
			pb.WriteString(pt.value)
		} else {
			panic(unsupportedPart(p))
		}
	}
	result.Path = pb.String()
	if t.hasQuery {
		qp := &queryParams{
			pairs: make([]queryPair, 0, len(t.query)),
		}
		for _, p := range t.query {
			if pt, ok := p.(queryParam); ok {
				if len(pt.values) == 0 {
					qp.Add(pt.name, nil)
				} else {
					for _, v := range pt.values {
						qp.Add(pt.name, v)
					}
				}
			} else {
				panic(unsupportedPart(p))
			}
		}
		encoded, err := qp.Encode()
		if err != nil {
			return nil, err
		}
		result.RawQuery = encoded
		if encoded == "" {
			result.ForceQuery = true
		}
	}
	if t.hasFragment {
		literals := make([]string, 0, len(t.fragment))
		for _, p := range t.fragment {
			if pt, ok := p.(fragmentLiteral); ok {
				literals = append(literals, pt.value)
			} else {
				panic(unsupportedPart(p))
			}
		}
		result.Fragment = strings.Join(literals, ",")
	}
	return result, nil
}

// NewRequest generates a http.Request from a fully resolved template
//
// Returns an UnresolvedExpansionError if any expansion remains unresolved
func (t *UriTemplate) NewRequest(method string, body io.Reader) (*http.Request, error) {
	u, err := t.URI()
	if err != nil {
		return nil, err
	}
	return http.NewRequest(method, u.String(), body)
}
