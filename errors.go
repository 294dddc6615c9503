// Copyright 2026 The Daturl Authors
// SPDX-License-Identifier: Apache-2.0

package daturl

import "errors"

// Parse failures. Each error returned by Parse matches exactly one of
// these sentinels under errors.Is. ErrInvalidURL additionally wraps
// the *url.Error that rejected the version-free form, reachable with
// errors.As.
var (
	// ErrMissingHost reports an input with no hostname: an empty
	// string, or one that begins with '/' or '+' so there is nothing
	// before the first delimiter.
	ErrMissingHost = errors.New("daturl: missing hostname")

	// ErrInvalidURL reports an input whose version-free form
	// (scheme + hostname + path) was rejected by net/url.
	ErrInvalidURL = errors.New("daturl: malformed url")

	// ErrPatternMismatch reports an input the decomposition pattern
	// could not match. The hostname and version segments span any
	// byte except their delimiters, but the path segment does not
	// span newlines, so this occurs only for inputs with a newline
	// after the first '/'.
	ErrPatternMismatch = errors.New("daturl: unparseable url")
)
