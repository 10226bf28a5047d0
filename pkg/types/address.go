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

package types

import (
	"crypto/ed25519"
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/velachain/vela/pkg/proquint"
)

// AddressLen is the raw address length in bytes.
const AddressLen = 20

// addressHRP prefixes the text form of every address.
const addressHRP = "vl"

// An Address identifies an account on chain: 20 bytes derived from the
// account's public key, or assigned at genesis for internal accounts. The
// canonical text form is the human-readable prefix followed by the proquint
// encoding of the bytes plus a one-word checksum.
type Address [AddressLen]byte

// AddressFromPublicKey derives the established address of an ed25519 key.
func AddressFromPublicKey(pk ed25519.PublicKey) Address {
	var a Address
	sum := sha256.Sum256(pk)
	copy(a[:], sum[:AddressLen])
	return a
}

func (a Address) checksum() [2]byte {
	sum := sha256.Sum256(a[:])
	return [2]byte{sum[0], sum[1]}
}

// String renders the canonical text form of the address.
func (a Address) String() string {
	ck := a.checksum()
	return addressHRP + proquint.Encode(append(a[:], ck[:]...))
}

// ParseAddress parses the canonical text form, verifying prefix, length and
// checksum.
func ParseAddress(s string) (Address, error) {
	var a Address
	if !strings.HasPrefix(s, addressHRP) {
		return a, fmt.Errorf("address must start with %q", addressHRP)
	}
	raw, err := proquint.Decode(s[len(addressHRP):])
	if err != nil {
		return a, fmt.Errorf("undecodable address: %v", err)
	}
	if len(raw) != AddressLen+2 {
		return a, fmt.Errorf("address has %d bytes; want %d", len(raw)-2, AddressLen)
	}
	copy(a[:], raw[:AddressLen])
	ck := a.checksum()
	if raw[AddressLen] != ck[0] || raw[AddressLen+1] != ck[1] {
		return a, fmt.Errorf("address checksum mismatch")
	}
	return a, nil
}
