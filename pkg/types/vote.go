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

import "fmt"

// A ProposalVote is a governance ballot.
type ProposalVote string

const (
	VoteYay ProposalVote = "yay"
	VoteNay ProposalVote = "nay"
)

// ParseProposalVote accepts exactly "yay" or "nay".
func ParseProposalVote(s string) (ProposalVote, error) {
	switch ProposalVote(s) {
	case VoteYay, VoteNay:
		return ProposalVote(s), nil
	}
	return "", fmt.Errorf("vote must be %q or %q", VoteYay, VoteNay)
}

func (v ProposalVote) String() string { return string(v) }

// A SchemeType names a signature scheme for key generation.
type SchemeType string

const (
	SchemeEd25519   SchemeType = "ed25519"
	SchemeSecp256k1 SchemeType = "secp256k1"
)

// ParseSchemeType accepts the named signature schemes. Acceptance here does
// not imply the wallet can generate keys under the scheme.
func ParseSchemeType(s string) (SchemeType, error) {
	switch SchemeType(s) {
	case SchemeEd25519, SchemeSecp256k1:
		return SchemeType(s), nil
	}
	return "", fmt.Errorf("scheme must be %q or %q", SchemeEd25519, SchemeSecp256k1)
}

func (s SchemeType) String() string { return string(s) }
