// Copyright 2026 The Daturl Authors
// SPDX-License-Identifier: Apache-2.0

package daturl

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// DefaultScheme is assumed when the input carries no scheme of its own.
const DefaultScheme = "dat://"

// urlExpr decomposes a dat URL. The hostname runs to the first '/' or
// '+', a version runs from a '+' after the hostname to the next '/',
// and the path is everything left, so a '+' after the first '/' stays
// in the path. When a scheme-looking prefix is not followed by a
// hostname character the scheme group is dropped and the hostname
// re-matches from the start ("dat://+v1" has hostname "dat:").
var urlExpr = regexp.MustCompile(`(?i)^(?P<scheme>\w+://)?(?P<hostname>[^/+]+)(\+(?P<version>[^/]+))?(?P<path>.*)$`)

var (
	schemeIdx   = urlExpr.SubexpIndex("scheme")
	hostnameIdx = urlExpr.SubexpIndex("hostname")
	versionIdx  = urlExpr.SubexpIndex("version")
	pathIdx     = urlExpr.SubexpIndex("path")
)

// DatURL is a parsed dat URL (e.g. "dat://example.com+v1.0.0/file").
//
// A dat URL is a regular URL whose authority may be followed by a
// version token, separated by '+'. The version names a snapshot of a
// dat archive: a semantic version, a hex checkout, or a label like
// "latest". The token is opaque to this package.
//
// The four parts keep the input's exact spelling. The hostname is
// whatever stood before the first '/' or '+' (a DNS name, an IPv4 or
// bracketed IPv6 address, or a 64-digit hex public key); the version
// is present only when a '+' followed the hostname; the path is the
// remainder, query and fragment included. The version-free form is
// additionally parsed by net/url and available through URL.
//
// DatURL is an immutable value type. The zero value is not valid; use
// IsZero to check.
type DatURL struct {
	scheme  string
	host    string
	version string // "" means no version
	path    string // "" means no path
	url     *url.URL
}

// Parse splits raw into scheme, hostname, version, and path, then
// validates the version-free form (scheme + hostname + path) with
// net/url. The scheme defaults to "dat://" when raw has none. Version
// and path are optional. An input with no hostname fails with
// ErrMissingHost; one whose version-free form net/url rejects fails
// with ErrInvalidURL.
//
// The parts of the returned DatURL are substrings of raw, so retaining
// the value keeps all of raw reachable. Clone detaches.
func Parse(raw string) (DatURL, error) {
	match := urlExpr.FindStringSubmatch(raw)
	if match == nil {
		// The first character decides which failure this is: the
		// hostname segment anchors on anything except '/' and '+',
		// so either no hostname is present at all, or the input has
		// a newline in its path, which the pattern does not span.
		if raw == "" || raw[0] == '/' || raw[0] == '+' {
			return DatURL{}, fmt.Errorf("%w: %q", ErrMissingHost, raw)
		}
		return DatURL{}, fmt.Errorf("%w: %q", ErrPatternMismatch, raw)
	}
	host := match[hostnameIdx]
	if host == "" {
		return DatURL{}, fmt.Errorf("%w: %q", ErrMissingHost, raw)
	}
	scheme := match[schemeIdx]
	if scheme == "" {
		scheme = DefaultScheme
	}
	version := match[versionIdx]
	path := match[pathIdx]

	canonical, err := url.Parse(scheme + host + path)
	if err != nil {
		return DatURL{}, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	return DatURL{
		scheme:  scheme,
		host:    host,
		version: version,
		path:    path,
		url:     canonical,
	}, nil
}

// MustParse is like Parse but panics on error. Use in tests and static
// initialization where the input is known-valid.
func MustParse(raw string) DatURL {
	u, err := Parse(raw)
	if err != nil {
		panic(fmt.Sprintf("daturl.MustParse(%q): %v", raw, err))
	}
	return u
}

// Scheme returns the scheme including its "://" suffix. Inputs without
// a scheme of their own report DefaultScheme.
func (u DatURL) Scheme() string { return u.scheme }

// Host returns the hostname exactly as written: a DNS name, an IPv4
// address, a bracketed IPv6 address, or a hex public key.
func (u DatURL) Host() string { return u.host }

// Version returns the version token (the text between '+' and the
// next '/') and whether the URL carried one.
func (u DatURL) Version() (string, bool) { return u.version, u.version != "" }

// Path returns the path including its leading '/' and whether the URL
// carried one. "dat://host" has no path; "dat://host/" has path "/".
func (u DatURL) Path() (string, bool) { return u.path, u.path != "" }

// URL returns the version-free form (scheme + hostname + path) as
// parsed by net/url, or nil for the zero value. The result is a copy;
// callers may modify it.
func (u DatURL) URL() *url.URL {
	if u.url == nil {
		return nil
	}
	canonical := *u.url
	return &canonical
}

// String reconstructs the dat URL: scheme, hostname, "+version" when
// present, then the path. For an input that carried an explicit scheme
// this is the input byte for byte. The zero value yields "".
func (u DatURL) String() string {
	if u.version == "" {
		return u.scheme + u.host + u.path
	}
	return u.scheme + u.host + "+" + u.version + u.path
}

// Clone returns a copy whose parts are fresh allocations instead of
// substrings of the original Parse input. Use it when the parsed value
// outlives a large input buffer.
func (u DatURL) Clone() DatURL {
	u.scheme = strings.Clone(u.scheme)
	u.host = strings.Clone(u.host)
	u.version = strings.Clone(u.version)
	u.path = strings.Clone(u.path)
	// u.url is backed by the version-free string Parse built, not by
	// the Parse input, so it carries over as is.
	return u
}

// Equal reports whether u and v have the same scheme, hostname,
// version, and path. A value and its Clone are equal.
func (u DatURL) Equal(v DatURL) bool {
	return u.scheme == v.scheme &&
		u.host == v.host &&
		u.version == v.version &&
		u.path == v.path
}

// IsZero reports whether the DatURL is the zero value (uninitialized).
func (u DatURL) IsZero() bool { return u.host == "" }

// MarshalText implements encoding.TextMarshaler for JSON and other
// text-based serialization formats. The form is String().
func (u DatURL) MarshalText() ([]byte, error) {
	if u.IsZero() {
		return nil, nil
	}
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for JSON and other
// text-based serialization formats by re-parsing the text. An empty
// input produces the zero value. The result never aliases data.
func (u *DatURL) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*u = DatURL{}
		return nil
	}
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
