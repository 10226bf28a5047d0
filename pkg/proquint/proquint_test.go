// Copyright 2026 The Vela Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package proquint

import (
	"bytes"
	"testing"
)

func TestEncodeKnownVectors(t *testing.T) {
	// Vectors from the proquint proposal, IP addresses as 4-byte strings.
	for _, tt := range []struct {
		in   []byte
		want string
	}{
		{[]byte{127, 0, 0, 1}, "lusab-babad"},
		{[]byte{63, 84, 220, 193}, "gutih-tugad"},
		{[]byte{173, 194, 71, 71}, "pinot-jezoh"},
	} {
		if got := Encode(tt.in); got != tt.want {
			t.Errorf("Encode(%v) = %q; want %q", tt.in, got, tt.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, in := range [][]byte{
		{0, 0},
		{0xff, 0xff},
		{1, 2, 3, 4, 5, 6, 7, 8},
		bytes.Repeat([]byte{0xab}, 20),
	} {
		out, err := Decode(Encode(in))
		if err != nil {
			t.Fatalf("Decode(Encode(%v)): %v", in, err)
		}
		if !bytes.Equal(out, in) {
			t.Errorf("round trip of %v yielded %v", in, out)
		}
	}
}

func TestDecodeRejectsMalformed(t *testing.T) {
	for _, s := range []string{
		"",
		"lusab-",
		"lusa",
		"lusab-babadx",
		"eusab-babad",
		"lbsab-babad",
		"lusab_babad",
	} {
		if _, err := Decode(s); err == nil {
			t.Errorf("Decode(%q) succeeded; want error", s)
		}
	}
}
