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
	"math"
	"strings"
	"testing"
)

func TestAddressRoundTrip(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(nil)
	if err != nil {
		t.Fatal(err)
	}
	a := AddressFromPublicKey(pub)
	s := a.String()
	if !strings.HasPrefix(s, "vl") {
		t.Fatalf("address %q lacks prefix", s)
	}
	back, err := ParseAddress(s)
	if err != nil {
		t.Fatalf("ParseAddress(%q): %v", s, err)
	}
	if back != a {
		t.Fatalf("round trip changed address: %v != %v", back, a)
	}
}

func TestParseAddressRejectsCorruption(t *testing.T) {
	pub, _, _ := ed25519.GenerateKey(nil)
	s := AddressFromPublicKey(pub).String()

	// Flip one word to break the checksum while keeping the text decodable.
	corrupt := s[:len(s)-5] + "babab"
	if corrupt == s {
		corrupt = s[:len(s)-5] + "dadad"
	}
	for _, bad := range []string{"", "vl", "xx" + s[2:], s[:len(s)-1], corrupt} {
		if _, err := ParseAddress(bad); err == nil {
			t.Errorf("ParseAddress(%q) succeeded; want error", bad)
		}
	}
}

func TestParseAmount(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want Amount
	}{
		{"0", 0},
		{"10", 10_000_000},
		{"3.141592", 3_141_592},
		{"0.5", 500_000},
		{"1.000001", 1_000_001},
	} {
		got, err := ParseAmount(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseAmount(%q) = %d, %v; want %d", tt.in, got, err, tt.want)
		}
	}
	for _, bad := range []string{"", ".", "1.", ".5", "-1", "1.0000001", "1e6", "ten"} {
		if _, err := ParseAmount(bad); err == nil {
			t.Errorf("ParseAmount(%q) succeeded; want error", bad)
		}
	}
}

func TestParseAmountOverflow(t *testing.T) {
	// The largest representable amount is math.MaxUint64 micro units.
	got, err := ParseAmount("18446744073709.551615")
	if err != nil || got != math.MaxUint64 {
		t.Fatalf("ParseAmount(max) = %d, %v; want %d", got, err, uint64(math.MaxUint64))
	}
	for _, bad := range []string{
		"18446744073709.551616",
		"18446744073710",
		"18446744073709551615",
		"99999999999999999999",
	} {
		if got, err := ParseAmount(bad); err == nil {
			t.Errorf("ParseAmount(%q) = %d; want overflow error", bad, got)
		}
	}
}

func TestAmountString(t *testing.T) {
	for _, tt := range []struct {
		in   Amount
		want string
	}{
		{0, "0"},
		{10_000_000, "10"},
		{500_000, "0.5"},
		{3_141_592, "3.141592"},
	} {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("%d.String() = %q; want %q", uint64(tt.in), got, tt.want)
		}
	}
}

func TestParseChainIDPrefix(t *testing.T) {
	if _, err := ParseChainIDPrefix("vela-mainnet"); err != nil {
		t.Errorf("valid prefix rejected: %v", err)
	}
	for _, bad := range []string{"", strings.Repeat("a", 20), "has.dot", "has space"} {
		if _, err := ParseChainIDPrefix(bad); err == nil {
			t.Errorf("ParseChainIDPrefix(%q) succeeded; want error", bad)
		}
	}
}

func TestChainIDFromGenesis(t *testing.T) {
	id := ChainIDFromGenesis("vela-test", []byte("genesis"))
	if len(id) != ChainIDMaxLen {
		t.Fatalf("chain id %q has length %d; want %d", id, len(id), ChainIDMaxLen)
	}
	if !strings.HasPrefix(string(id), "vela-test.") {
		t.Fatalf("chain id %q lacks prefix", id)
	}
	if id2 := ChainIDFromGenesis("vela-test", []byte("other")); id2 == id {
		t.Fatal("distinct genesis bytes yielded one chain id")
	}
}

func TestStorageKeys(t *testing.T) {
	pub, _, _ := ed25519.GenerateKey(nil)
	token := AddressFromPublicKey(pub)
	pub2, _, _ := ed25519.GenerateKey(nil)
	owner := AddressFromPublicKey(pub2)

	k := BalanceKey(token, owner)
	want := "#" + token.String() + "/balance/#" + owner.String()
	if k.String() != want {
		t.Fatalf("balance key = %q; want %q", k, want)
	}
	back, err := ParseKey(k.String())
	if err != nil || back.String() != k.String() {
		t.Fatalf("ParseKey round trip: %q, %v", back, err)
	}
	for _, bad := range []string{"", "a//b", "/a"} {
		if _, err := ParseKey(bad); err == nil {
			t.Errorf("ParseKey(%q) succeeded; want error", bad)
		}
	}
}

func TestParseProposalVote(t *testing.T) {
	for _, ok := range []string{"yay", "nay"} {
		if _, err := ParseProposalVote(ok); err != nil {
			t.Errorf("ParseProposalVote(%q): %v", ok, err)
		}
	}
	for _, bad := range []string{"", "yes", "YAY", "abstain"} {
		if _, err := ParseProposalVote(bad); err == nil {
			t.Errorf("ParseProposalVote(%q) succeeded; want error", bad)
		}
	}
}

func TestParseNodeAddress(t *testing.T) {
	n, err := ParseNodeAddress("127.0.0.1:26657")
	if err != nil || n.Scheme != "tcp" || n.HostPort() != "127.0.0.1:26657" {
		t.Fatalf("ParseNodeAddress = %+v, %v", n, err)
	}
	n, err = ParseNodeAddress("grpc://node.example.com:443")
	if err != nil || n.Scheme != "grpc" || n.Host != "node.example.com" {
		t.Fatalf("ParseNodeAddress = %+v, %v", n, err)
	}
	for _, bad := range []string{"", "nohost", "://a:1", "host:"} {
		if _, err := ParseNodeAddress(bad); err == nil {
			t.Errorf("ParseNodeAddress(%q) succeeded; want error", bad)
		}
	}
}

func TestParseDecimal(t *testing.T) {
	d, err := ParseDecimal("0.05")
	if err != nil || d != 50_000 {
		t.Fatalf("ParseDecimal(0.05) = %d, %v", d, err)
	}
	if !d.InUnitInterval() {
		t.Fatal("0.05 reported outside [0, 1]")
	}
	d, _ = ParseDecimal("1.5")
	if d.InUnitInterval() {
		t.Fatal("1.5 reported inside [0, 1]")
	}
	for _, bad := range []string{"18446744073709551615", "18446744073709.551616"} {
		if d, err := ParseDecimal(bad); err == nil {
			t.Errorf("ParseDecimal(%q) = %d; want overflow error", bad, d)
		}
	}
}
