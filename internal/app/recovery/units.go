//
// Copyright 2025 Frontier3 Tech
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

package recovery

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatUnits renders base units as a display amount. Whole amounts keep one
// fractional digit ("1.0"); zero renders as "0".
func FormatUnits(amount *big.Int, decimals int32) string {
	if amount == nil || amount.Sign() == 0 {
		return "0"
	}
	s := decimal.NewFromBigInt(amount, -decimals).String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// ParseUnits converts a display amount into base units. Amounts with more
// fractional digits than decimals are rejected rather than rounded.
func ParseUnits(value string, decimals int32) (*big.Int, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return nil, Wrap(ErrInvalidInput, err, "failed to parse amount")
	}
	if d.IsNegative() {
		return nil, Errorf(ErrInvalidInput, "negative amount %s", value)
	}
	base := d.Shift(decimals)
	if !base.Equal(base.Truncate(0)) {
		return nil, Errorf(ErrInvalidInput, "amount %s has more than %d decimals", value, decimals)
	}
	return base.BigInt(), nil
}
