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
	"strings"

	"github.com/btcsuite/btcutil/bech32"
)

// Address is a bech32 account or contract address that decoded successfully
// under the prefix of the network it was parsed for.
type Address string

func (a Address) String() string {
	return string(a)
}

func (a Address) Empty() bool {
	return a == ""
}

// ParseAddress validates raw as a bech32 address with the given human-readable
// prefix. Mixed case input is rejected by the decoder; the result is lowercase.
func ParseAddress(prefix, raw string) (Address, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", Errorf(ErrInvalidInput, "empty address")
	}
	hrp, data, err := bech32.Decode(raw)
	if err != nil {
		return "", Wrap(ErrInvalidInput, err, "failed to decode bech32 address")
	}
	if hrp != prefix {
		return "", Errorf(ErrInvalidInput, "address prefix is %q, expected %q", hrp, prefix)
	}
	if len(data) == 0 {
		return "", Errorf(ErrInvalidInput, "address has no payload")
	}
	return Address(strings.ToLower(raw)), nil
}

func IsValidAddress(prefix, raw string) bool {
	_, err := ParseAddress(prefix, raw)
	return err == nil
}

// EncodeAddress builds an address from raw bytes, e.g. a public key hash.
func EncodeAddress(prefix string, payload []byte) (Address, error) {
	conv, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", Wrap(ErrInvalidInput, err, "failed to convert address bits")
	}
	encoded, err := bech32.Encode(prefix, conv)
	if err != nil {
		return "", Wrap(ErrInvalidInput, err, "failed to encode bech32 address")
	}
	return Address(encoded), nil
}
