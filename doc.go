// Package uritemplate - Go package for building URIs from structured RFC 6570 templates
/*
Build a template from typed parts...
	template := uritemplate.MustCreateTemplate(
		uritemplate.Scheme("https"),
		uritemplate.NewAuthority("example.com"),
		uritemplate.PathLiteral("users"),
		uritemplate.PathVar("id"),
		uritemplate.FormVar("lang"))
	println(template.String()) // "https://example.com/users{id}{?lang}"

Expand vars (each expansion returns a new template)...
	template, _ = template.Expand("id", 123)
	println(template.String()) // "https://example.com/users/123{?lang}"

Render at any point - or convert to a URI once fully resolved...
	template, _ = template.ExpandQuery("lang", "en")
	u, err := template.URI()
	if err == nil {
		println(u.String()) // "https://example.com/users/123?lang=en"
	}

Templates with unresolved expansions always render as a string but refuse to
convert to a URI - the returned UnresolvedExpansionError carries the current
rendering so the caller can see what remains.
*/
package uritemplate
