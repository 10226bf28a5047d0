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
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

const (
	// ChainIDMaxLen bounds the full chain identifier.
	ChainIDMaxLen = 30
	// ChainIDPrefixMaxLen bounds the operator-chosen prefix; the remainder of
	// the identifier is a derived genesis digest.
	ChainIDPrefixMaxLen = 19
)

// DefaultChainID is the chain joined when none is configured.
const DefaultChainID = ChainID("vela-dev.0000000000")

// A ChainID names one chain: an operator-chosen prefix, a dot, and a digest
// of the chain's genesis configuration.
type ChainID string

// A ChainIDPrefix is the operator-chosen leading part of a chain identifier.
type ChainIDPrefix string

func chainIDCharset(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '.', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}

// ParseChainID validates a full chain identifier.
func ParseChainID(s string) (ChainID, error) {
	if s == "" || len(s) > ChainIDMaxLen {
		return "", fmt.Errorf("chain id must be 1 to %d characters", ChainIDMaxLen)
	}
	if !chainIDCharset(s) {
		return "", fmt.Errorf("chain id %q contains invalid characters", s)
	}
	return ChainID(s), nil
}

// ParseChainIDPrefix validates an operator-chosen chain id prefix.
func ParseChainIDPrefix(s string) (ChainIDPrefix, error) {
	if s == "" || len(s) > ChainIDPrefixMaxLen {
		return "", fmt.Errorf("chain id prefix must be 1 to %d characters", ChainIDPrefixMaxLen)
	}
	if strings.Contains(s, ".") || !chainIDCharset(s) {
		return "", fmt.Errorf("chain id prefix %q contains invalid characters", s)
	}
	return ChainIDPrefix(s), nil
}

// ChainIDFromGenesis derives the full chain identifier from a prefix and the
// genesis configuration bytes.
func ChainIDFromGenesis(prefix ChainIDPrefix, genesis []byte) ChainID {
	sum := sha256.Sum256(genesis)
	digest := hex.EncodeToString(sum[:])
	n := ChainIDMaxLen - len(prefix) - 1
	return ChainID(fmt.Sprintf("%s.%s", prefix, digest[:n]))
}

func (c ChainID) String() string       { return string(c) }
func (c ChainIDPrefix) String() string { return string(c) }
