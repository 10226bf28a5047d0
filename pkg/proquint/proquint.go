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

// Package proquint encodes byte strings as pronounceable quintuplets,
// per https://arxiv.org/html/0901.4016. Each 16-bit group becomes a
// five-letter consonant-vowel-consonant-vowel-consonant word; words are
// joined with dashes.
package proquint

import (
	"errors"
	"strings"
)

var (
	consonants = [16]byte{'b', 'd', 'f', 'g', 'h', 'j', 'k', 'l', 'm', 'n', 'p', 'r', 's', 't', 'v', 'z'}
	vowels     = [4]byte{'a', 'i', 'o', 'u'}
)

// ErrMalformed is returned when decoding text that is not a dash-joined
// sequence of proquint words.
var ErrMalformed = errors.New("proquint: malformed text")

// Encode renders b as dash-joined proquint words. The byte string must have
// even length, two bytes per word.
func Encode(b []byte) string {
	if len(b)%2 != 0 {
		panic("proquint: odd-length input")
	}
	var sb strings.Builder
	for i := 0; i < len(b); i += 2 {
		if i > 0 {
			sb.WriteByte('-')
		}
		x := uint16(b[i])<<8 | uint16(b[i+1])
		sb.WriteByte(consonants[x>>12&0xf])
		sb.WriteByte(vowels[x>>10&0x3])
		sb.WriteByte(consonants[x>>6&0xf])
		sb.WriteByte(vowels[x>>4&0x3])
		sb.WriteByte(consonants[x&0xf])
	}
	return sb.String()
}

// Decode parses dash-joined proquint words back into the byte string they
// encode.
func Decode(s string) ([]byte, error) {
	if s == "" {
		return nil, ErrMalformed
	}
	words := strings.Split(s, "-")
	out := make([]byte, 0, 2*len(words))
	for _, w := range words {
		if len(w) != 5 {
			return nil, ErrMalformed
		}
		var x uint16
		for i := 0; i < 5; i++ {
			var v uint16
			var ok bool
			if i%2 == 0 {
				v, ok = consonantIndex(w[i])
				x = x<<4 | v
			} else {
				v, ok = vowelIndex(w[i])
				x = x<<2 | v
			}
			if !ok {
				return nil, ErrMalformed
			}
		}
		out = append(out, byte(x>>8), byte(x))
	}
	return out, nil
}

func consonantIndex(c byte) (uint16, bool) {
	for i, cand := range consonants {
		if cand == c {
			return uint16(i), true
		}
	}
	return 0, false
}

func vowelIndex(c byte) (uint16, bool) {
	for i, cand := range vowels {
		if cand == c {
			return uint16(i), true
		}
	}
	return 0, false
}
