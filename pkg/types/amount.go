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
	"math"
	"strconv"
	"strings"
)

// AmountScale is the number of fractional decimal digits an Amount carries.
const AmountScale = 6

const amountUnit = 1_000_000

// An Amount is a token amount in micro units: one whole token is 10^6 micro
// units. Text forms use whole tokens with up to six fractional digits.
type Amount uint64

// WholeTokens returns the amount worth n whole tokens.
func WholeTokens(n uint64) Amount { return Amount(n * amountUnit) }

// ParseAmount parses a decimal token amount, e.g. "10" or "3.141592".
func ParseAmount(s string) (Amount, error) {
	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" {
		return 0, fmt.Errorf("empty amount")
	}
	w, err := strconv.ParseUint(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed amount %q", s)
	}
	var f uint64
	if hasFrac {
		if frac == "" || len(frac) > AmountScale {
			return 0, fmt.Errorf("amount %q has more than %d decimal places", s, AmountScale)
		}
		f, err = strconv.ParseUint(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("malformed amount %q", s)
		}
		for i := len(frac); i < AmountScale; i++ {
			f *= 10
		}
	}
	if w > (math.MaxUint64-f)/amountUnit {
		return 0, fmt.Errorf("amount %q does not fit in micro units", s)
	}
	return Amount(w*amountUnit + f), nil
}

// String renders the amount in whole tokens, trimming trailing fractional
// zeros.
func (a Amount) String() string {
	w, f := uint64(a)/amountUnit, uint64(a)%amountUnit
	if f == 0 {
		return strconv.FormatUint(w, 10)
	}
	frac := strings.TrimRight(fmt.Sprintf("%06d", f), "0")
	return fmt.Sprintf("%d.%s", w, frac)
}

// A GasLimit caps the gas a transaction may consume, in micro units.
type GasLimit Amount

// ParseGasLimit parses a decimal gas limit.
func ParseGasLimit(s string) (GasLimit, error) {
	a, err := ParseAmount(s)
	return GasLimit(a), err
}

func (g GasLimit) String() string { return Amount(g).String() }
