// Copyright 2026 The Daturl Authors
// SPDX-License-Identifier: Apache-2.0

package daturl

import "gopkg.in/yaml.v3"

// MarshalYAML implements yaml.Marshaler. A DatURL encodes as a scalar
// holding its String() form. yaml.v3 does not consult
// encoding.TextMarshaler, so this adapter exists alongside MarshalText.
func (u DatURL) MarshalYAML() (any, error) {
	return u.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler by decoding a scalar and
// re-parsing it. An empty scalar produces the zero value.
func (u *DatURL) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	if s == "" {
		*u = DatURL{}
		return nil
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
