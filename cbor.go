// Copyright 2026 The Daturl Authors
// SPDX-License-Identifier: Apache-2.0

package daturl

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// MarshalCBOR implements cbor.Marshaler. A DatURL encodes as a CBOR
// text string holding its String() form, so the bytes are identical
// under every encoding mode, deterministic modes included. The zero
// value encodes as the empty text string.
//
// Without this, cbor.Marshal would see a struct of unexported fields
// and emit an empty map.
func (u DatURL) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(u.String())
}

// UnmarshalCBOR implements cbor.Unmarshaler by decoding a CBOR text
// string and re-parsing it. An empty string produces the zero value.
func (u *DatURL) UnmarshalCBOR(data []byte) error {
	var s string
	if err := cbor.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("daturl: decoding CBOR text string: %w", err)
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
