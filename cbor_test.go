// Copyright 2026 The Daturl Authors
// SPDX-License-Identifier: Apache-2.0

package daturl_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/dat-foundation/daturl"
	"github.com/fxamacker/cbor/v2"
)

func TestCBORRoundTrip(t *testing.T) {
	u := daturl.MustParse("dat://" + testHash + "+0.0.0.1/path/to+file.txt")

	data, err := cbor.Marshal(u)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	// A DatURL encodes as the text string of its String() form, not as
	// a map of its fields.
	wantData, err := cbor.Marshal(u.String())
	if err != nil {
		t.Fatalf("Marshal of display string: %v", err)
	}
	if !bytes.Equal(data, wantData) {
		t.Fatalf("Marshal = % x, want % x", data, wantData)
	}

	var parsed daturl.DatURL
	if err := cbor.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !parsed.Equal(u) {
		t.Errorf("round-trip = %v, want %v", parsed, u)
	}
}

// Text strings have one encoding in every CBOR mode, so a DatURL must
// produce identical bytes under deterministic and default encoders.
func TestCBORDeterministicEncoding(t *testing.T) {
	encMode, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		t.Fatalf("EncMode: %v", err)
	}

	u := daturl.MustParse("dat://example.com+v1.0.0/data")
	deterministic, err := encMode.Marshal(u)
	if err != nil {
		t.Fatalf("deterministic Marshal: %v", err)
	}
	standard, err := cbor.Marshal(u)
	if err != nil {
		t.Fatalf("standard Marshal: %v", err)
	}
	if !bytes.Equal(deterministic, standard) {
		t.Errorf("deterministic encoding = % x, standard = % x", deterministic, standard)
	}
}

func TestCBORInStructField(t *testing.T) {
	type pin struct {
		Archive daturl.DatURL `cbor:"archive"`
		Size    int64         `cbor:"size"`
	}

	original := pin{
		Archive: daturl.MustParse("dat://example.com+v1.0.0/data"),
		Size:    42,
	}
	data, err := cbor.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var parsed pin
	if err := cbor.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !parsed.Archive.Equal(original.Archive) {
		t.Errorf("Archive = %v, want %v", parsed.Archive, original.Archive)
	}
	if parsed.Size != original.Size {
		t.Errorf("Size = %d, want %d", parsed.Size, original.Size)
	}
}

func TestCBORZeroValue(t *testing.T) {
	var u daturl.DatURL
	data, err := cbor.Marshal(u)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	// 0x60 is the zero-length CBOR text string.
	if !bytes.Equal(data, []byte{0x60}) {
		t.Fatalf("Marshal = % x, want 60", data)
	}

	var parsed daturl.DatURL
	if err := cbor.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !parsed.IsZero() {
		t.Errorf("round-trip of zero value = %v, want zero", parsed)
	}
}

func TestCBORUnmarshalInvalid(t *testing.T) {
	var u daturl.DatURL

	// 0x01 is the CBOR unsigned integer 1, not a text string.
	if err := cbor.Unmarshal([]byte{0x01}, &u); err == nil {
		t.Error("Unmarshal of integer succeeded, want error")
	}

	data, err := cbor.Marshal("+v1/")
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if err := cbor.Unmarshal(data, &u); !errors.Is(err, daturl.ErrMissingHost) {
		t.Errorf("Unmarshal error = %v, want ErrMissingHost", err)
	}
}
