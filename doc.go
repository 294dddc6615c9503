// Copyright 2026 The Daturl Authors
// SPDX-License-Identifier: Apache-2.0

// Package daturl parses dat URLs: URLs of the dat peer-to-peer protocol
// family that may carry a version token between the host and the path,
// delimited by '+'.
//
//	dat://584faa05...a21+0.0.0.1/path/to+file.txt
//	\____/\____________/ \_____/ \______________/
//	scheme     host      version       path
//
// Standard URL parsers either reject the '+' delimiter or fold the
// version into the host or path. Parse splits the URL into its four
// parts, validates the version-free remainder with net/url, and keeps
// the original spelling of every part:
//
//	u, err := daturl.Parse("dat://example.com+v1.0.0/path/to+file.txt")
//	u.Host()    // "example.com"
//	u.Version() // "v1.0.0", true
//	u.Path()    // "/path/to+file.txt", true
//
// The version token is opaque text: semantic versions, hex checkouts,
// and names like "latest" all pass through unmodified. A '+' after the
// first '/' belongs to the path, never to a version. An input without
// a scheme is given the "dat://" default.
//
// # Views and owned copies
//
// The strings inside a parsed DatURL are substrings of the input, so a
// retained DatURL keeps the whole input string reachable. When the
// input is a slice of something large, detach with Clone:
//
//	u = daturl.MustParse(line).Clone()
//
// # Serialization
//
// A DatURL marshals as its String() form and unmarshals by re-parsing.
// encoding.TextMarshaler covers JSON and other text formats; dedicated
// adapters cover CBOR (github.com/fxamacker/cbor/v2) and YAML
// (gopkg.in/yaml.v3), which do not consult TextMarshaler on their own.
// The zero value serializes as the empty string and back.
package daturl
