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

// A Decimal is a non-negative fixed-point fraction with six decimal places,
// used for rates such as validator commission.
type Decimal uint64

const decimalUnit = 1_000_000

// ParseDecimal parses a decimal fraction with up to six decimal places.
func ParseDecimal(s string) (Decimal, error) {
	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" {
		return 0, fmt.Errorf("empty decimal")
	}
	w, err := strconv.ParseUint(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed decimal %q", s)
	}
	var f uint64
	if hasFrac {
		if frac == "" || len(frac) > 6 {
			return 0, fmt.Errorf("decimal %q has more than 6 decimal places", s)
		}
		f, err = strconv.ParseUint(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("malformed decimal %q", s)
		}
		for i := len(frac); i < 6; i++ {
			f *= 10
		}
	}
	if w > (math.MaxUint64-f)/decimalUnit {
		return 0, fmt.Errorf("decimal %q is too large", s)
	}
	return Decimal(w*decimalUnit + f), nil
}

// InUnitInterval reports whether the decimal lies in [0, 1].
func (d Decimal) InUnitInterval() bool { return d <= decimalUnit }

func (d Decimal) String() string {
	w, f := uint64(d)/decimalUnit, uint64(d)%decimalUnit
	if f == 0 {
		return strconv.FormatUint(w, 10)
	}
	frac := strings.TrimRight(fmt.Sprintf("%06d", f), "0")
	return fmt.Sprintf("%d.%s", w, frac)
}

// An Epoch counts consensus epochs from genesis.
type Epoch uint64

// ParseEpoch parses a decimal epoch number.
func ParseEpoch(s string) (Epoch, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed epoch %q", s)
	}
	return Epoch(n), nil
}

func (e Epoch) String() string { return strconv.FormatUint(uint64(e), 10) }
