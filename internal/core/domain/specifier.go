package domain

import "strings"

// Specifier identifies a web package as a consumer imports it: an optionally
// scoped package name plus an optional sub-path into the package.
type Specifier struct {
	// Name is the package name, including the scope when present
	// (e.g. "preact" or "@scope/pkg").
	Name string

	// SubPath is everything after the package name, without a leading slash
	// (e.g. "hooks" for "preact/hooks"). Empty for bare package imports.
	SubPath string
}

// ParseSpecifier splits a raw import string into its package name and
// sub-path. A leading "@scope/name" pair counts as the package name; any
// further segments form the sub-path.
func ParseSpecifier(raw string) Specifier {
	parts := strings.Split(raw, "/")

	nameSegments := 1
	if strings.HasPrefix(raw, "@") && len(parts) > 1 {
		nameSegments = 2
	}
	if len(parts) <= nameSegments {
		return Specifier{Name: raw}
	}

	return Specifier{
		Name:    strings.Join(parts[:nameSegments], "/"),
		SubPath: strings.Join(parts[nameSegments:], "/"),
	}
}

// String reassembles the specifier into its raw import form.
func (s Specifier) String() string {
	if s.SubPath == "" {
		return s.Name
	}
	return s.Name + "/" + s.SubPath
}

// LookupPath builds the CDN lookup path for the specifier at the given
// semver range: "/{name}@{semver}[/{subPath}]". Sub-path segments are
// preserved verbatim after the versioned package name.
func (s Specifier) LookupPath(semverRange string) string {
	path := "/" + s.Name + "@" + semverRange
	if s.SubPath != "" {
		path += "/" + s.SubPath
	}
	return path
}
