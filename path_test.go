package uritemplate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathConstructorContractViolations(t *testing.T) {
	assert.Panics(t, func() {
		PathVar()
	})
	assert.Panics(t, func() {
		PathVar("")
	})
	assert.Panics(t, func() {
		PathVar("a/b")
	})
	assert.Panics(t, func() {
		PathReserved("a?b")
	})
	assert.Panics(t, func() {
		PathSegmentVar("a{b")
	})
	assert.NotPanics(t, func() {
		PathVar("Az09-._~")
	})
}

func TestPathRendering(t *testing.T) {
	tmpl := MustCreateTemplate(
		PathLiteral("users"),
		PathVar("a", "b"),
		PathReserved("c"),
		PathSegmentVar("d", "e"),
	)
	assert.Equal(t, "/users{a,b}{+c}{/d,e}", tmpl.String())
}

func TestExpandPathSingleName(t *testing.T) {
	tmpl := MustCreateTemplate(PathLiteral("users"), PathVar("id"))
	expanded, err := tmpl.ExpandPath("id", 123)
	require.NoError(t, err)
	assert.Equal(t, "/users/123", expanded.String())
}

func TestExpandPathMultiValue(t *testing.T) {
	tmpl := MustCreateTemplate(PathSegmentVar("list"))
	expanded, err := tmpl.ExpandPath("list", "a", "b")
	require.NoError(t, err)
	assert.Equal(t, "/a/b", expanded.String())
}

func TestExpandPathReservedDegrades(t *testing.T) {
	tmpl := MustCreateTemplate(PathReserved("a", "b"))
	expanded, err := tmpl.ExpandPath("a", "1")
	require.NoError(t, err)
	// residual over b is a plain expansion, not reserved
	assert.Equal(t, "/1{b}", expanded.String())
}

func TestExpandPathSegmentKeepsKind(t *testing.T) {
	tmpl := MustCreateTemplate(PathSegmentVar("a", "b"))
	expanded, err := tmpl.ExpandPath("a", "1")
	require.NoError(t, err)
	assert.Equal(t, "/1{/b}", expanded.String())
}

func TestExpandPathSimpleMultiNameResidual(t *testing.T) {
	tmpl := MustCreateTemplate(PathVar("a", "b"))
	expanded, err := tmpl.ExpandPath("b", "2")
	require.NoError(t, err)
	assert.Equal(t, "/2{a}", expanded.String())
}

func TestExpandPathPreservesPosition(t *testing.T) {
	tmpl := MustCreateTemplate(
		PathLiteral("a"),
		PathVar("id"),
		PathLiteral("z"),
	)
	expanded, err := tmpl.ExpandPath("id", "m")
	require.NoError(t, err)
	assert.Equal(t, "/a/m/z", expanded.String())
}

func TestExpandPathZeroValues(t *testing.T) {
	tmpl := MustCreateTemplate(PathLiteral("users"), PathVar("id"))
	expanded, err := tmpl.ExpandPath("id")
	require.NoError(t, err)
	assert.Equal(t, "/users", expanded.String())
}

func TestExpandPathLeavesQueryAndFragment(t *testing.T) {
	tmpl := MustCreateTemplate(PathVar("id"), FormVar("id"), FragmentVar("id"))
	expanded, err := tmpl.ExpandPath("id", "42")
	require.NoError(t, err)
	assert.Equal(t, "/42{?id}{#id}", expanded.String())
}
