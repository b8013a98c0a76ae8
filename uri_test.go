package uritemplate

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURIFromResolvedTemplate(t *testing.T) {
	tmpl := MustCreateTemplate(
		Scheme("https"),
		NewAuthority("example.com").WithUserInfo("bob").WithPort(8080),
		PathLiteral("users"),
		PathVar("id"),
		FormVar("lang"),
		FragmentVar("section"),
	)
	tmpl, err := tmpl.Expand("id", 123)
	require.NoError(t, err)
	tmpl, err = tmpl.Expand("lang", "en")
	require.NoError(t, err)
	tmpl, err = tmpl.Expand("section", "intro")
	require.NoError(t, err)

	u, err := tmpl.URI()
	require.NoError(t, err)
	assert.Equal(t, "https", u.Scheme)
	assert.Equal(t, "bob", u.User.Username())
	assert.Equal(t, "example.com:8080", u.Host)
	assert.Equal(t, "/users/123", u.Path)
	assert.Equal(t, "lang=en", u.RawQuery)
	assert.Equal(t, "intro", u.Fragment)
	assert.Equal(t, "https://bob@example.com:8080/users/123?lang=en#intro", u.String())
}

func TestURIRoundTripMatchesDirectConstruction(t *testing.T) {
	tmpl := MustCreateTemplate(
		Scheme("https"),
		NewAuthority("example.com"),
		PathLiteral("a"),
		PathLiteral("b"),
		QueryParam("q", "x"),
		FragmentLiteral("frag"),
	)
	u, err := tmpl.URI()
	require.NoError(t, err)

	direct := &url.URL{
		Scheme:   "https",
		Host:     "example.com",
		Path:     "/a/b",
		RawQuery: "q=x",
		Fragment: "frag",
	}
	assert.Equal(t, direct.String(), u.String())
}

func TestURIFailsWhileUnresolved(t *testing.T) {
	tmpl := MustCreateTemplate(PathLiteral("users"), PathVar("id"))
	u, err := tmpl.URI()
	require.Error(t, err)
	assert.Nil(t, u)

	uerr, ok := err.(UnresolvedExpansionError)
	require.True(t, ok)
	assert.Equal(t, "/users{id}", uerr.Template())
	assert.Contains(t, err.Error(), "/users{id}")
}

func TestURIUnresolvedQueryFails(t *testing.T) {
	tmpl := MustCreateTemplate(FormVar("q"))
	_, err := tmpl.URI()
	require.Error(t, err)
}

func TestURIUnresolvedFragmentFails(t *testing.T) {
	tmpl := MustCreateTemplate(FragmentVar("s"))
	_, err := tmpl.URI()
	require.Error(t, err)
}

func TestURIExplicitEmptyQuery(t *testing.T) {
	tmpl := MustCreateTemplate(NewAuthority("example.com")).WithScheme("https").WithQuery()
	u, err := tmpl.URI()
	require.NoError(t, err)
	assert.True(t, u.ForceQuery)
	assert.Equal(t, "https://example.com/?", u.String())
}

func TestURIBareFlagParam(t *testing.T) {
	tmpl := MustCreateTemplate(QueryParam("verbose"))
	u, err := tmpl.URI()
	require.NoError(t, err)
	assert.Equal(t, "verbose", u.RawQuery)
}

func TestURIRepeatedParamValues(t *testing.T) {
	tmpl := MustCreateTemplate(QueryParam("tag", "a", "b"))
	u, err := tmpl.URI()
	require.NoError(t, err)
	assert.Equal(t, "tag=a&tag=b", u.RawQuery)
}

func TestURIQueryValueEscaping(t *testing.T) {
	tmpl := MustCreateTemplate(QueryParam("q", "a b&c"))
	u, err := tmpl.URI()
	require.NoError(t, err)
	assert.Equal(t, "q=a+b%26c", u.RawQuery)
}

func TestURIFragmentLiteralsCommaJoin(t *testing.T) {
	tmpl := MustCreateTemplate(FragmentLiteral("a"), FragmentLiteral("b"))
	u, err := tmpl.URI()
	require.NoError(t, err)
	assert.Equal(t, "a,b", u.Fragment)
}

func TestURIEmptyTemplate(t *testing.T) {
	tmpl := MustCreateTemplate()
	u, err := tmpl.URI()
	require.NoError(t, err)
	assert.Equal(t, "/", u.String())
}

func TestNewRequest(t *testing.T) {
	tmpl := MustCreateTemplate(
		Scheme("http"),
		NewAuthority("localhost").WithPort(3009),
		PathLiteral("users"),
		PathVar("id"),
	)
	tmpl, err := tmpl.Expand("id", "abc")
	require.NoError(t, err)

	req, err := tmpl.NewRequest(http.MethodGet, nil)
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "http://localhost:3009/users/abc", req.URL.String())
}

func TestNewRequestFailsWhileUnresolved(t *testing.T) {
	tmpl := MustCreateTemplate(PathVar("id"))
	_, err := tmpl.NewRequest(http.MethodGet, nil)
	require.Error(t, err)
}
