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
	"fmt"
	"strings"
)

// A Key addresses one value in chain storage: slash-separated segments, the
// first conventionally an address segment naming the owning account.
type Key struct {
	segments []string
}

// addrSegmentPrefix marks a segment that encodes an account address.
const addrSegmentPrefix = "#"

// ParseKey parses a slash-separated storage key.
func ParseKey(s string) (Key, error) {
	if s == "" {
		return Key{}, fmt.Errorf("empty storage key")
	}
	segments := strings.Split(s, "/")
	for _, seg := range segments {
		if seg == "" {
			return Key{}, fmt.Errorf("storage key %q has an empty segment", s)
		}
	}
	return Key{segments: segments}, nil
}

// KeyFromAddress starts a key owned by the given account.
func KeyFromAddress(a Address) Key {
	return Key{segments: []string{addrSegmentPrefix + a.String()}}
}

// Push appends a literal segment, returning the extended key.
func (k Key) Push(segment string) Key {
	segments := make([]string, 0, len(k.segments)+1)
	segments = append(segments, k.segments...)
	segments = append(segments, segment)
	return Key{segments: segments}
}

// PushAddress appends an address segment, returning the extended key.
func (k Key) PushAddress(a Address) Key {
	return k.Push(addrSegmentPrefix + a.String())
}

func (k Key) String() string { return strings.Join(k.segments, "/") }

// BalanceKey is the storage key holding owner's balance of token.
func BalanceKey(token, owner Address) Key {
	return KeyFromAddress(token).Push("balance").PushAddress(owner)
}
