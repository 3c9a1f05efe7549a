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
	"bytes"
	"encoding/json"
	"math/big"
	"time"

	"github.com/pkg/errors"
)

// Uint128 decodes CosmWasm Uint64 and Uint128 values. Contracts encode them as
// decimal strings; bare JSON numbers are accepted as well.
type Uint128 struct {
	v *big.Int
}

func NewUint128(v *big.Int) Uint128 {
	return Uint128{v: new(big.Int).Set(v)}
}

func (u *Uint128) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return errors.New("null integer")
	}
	data = bytes.Trim(data, `"`)
	v, ok := new(big.Int).SetString(string(data), 10)
	if !ok {
		return errors.Errorf("malformed integer %q", data)
	}
	if v.Sign() < 0 {
		return errors.Errorf("negative integer %q", data)
	}
	u.v = v
	return nil
}

func (u Uint128) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.Int().String())
}

// Int returns a copy of the value; the zero Uint128 is 0.
func (u Uint128) Int() *big.Int {
	if u.v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(u.v)
}

// ReleaseAt is the release condition of a claim. Exactly one field is set.
type ReleaseAt struct {
	Timestamp *time.Time
	Height    *uint64
}

func (r ReleaseAt) String() string {
	switch {
	case r.Timestamp != nil:
		return r.Timestamp.UTC().Format(time.RFC3339)
	case r.Height != nil:
		return "block " + new(big.Int).SetUint64(*r.Height).String()
	default:
		return "unknown"
	}
}

func (r *ReleaseAt) UnmarshalJSON(data []byte) error {
	var raw struct {
		Timestamp *Uint128 `json:"timestamp"`
		Height    *Uint128 `json:"height"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "failed to decode release condition")
	}
	switch {
	case raw.Timestamp != nil && raw.Height == nil:
		nanos := raw.Timestamp.Int()
		if !nanos.IsInt64() {
			return errors.Errorf("timestamp %s out of range", nanos)
		}
		ts := time.Unix(0, nanos.Int64()).UTC()
		*r = ReleaseAt{Timestamp: &ts}
	case raw.Height != nil && raw.Timestamp == nil:
		height := raw.Height.Int()
		if !height.IsUint64() {
			return errors.Errorf("height %s out of range", height)
		}
		h := height.Uint64()
		*r = ReleaseAt{Height: &h}
	default:
		return errors.Errorf("release condition must be either timestamp or height: %s", data)
	}
	return nil
}

// Claim is a withdrawal request recorded by a membership contract. A claim
// read from chain is never mutated.
type Claim struct {
	ID        uint64
	User      Address
	Amount    *big.Int
	ReleaseAt ReleaseAt
}

func (c *Claim) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID        Uint128   `json:"id"`
		User      Address   `json:"user"`
		Amount    Uint128   `json:"amount"`
		ReleaseAt ReleaseAt `json:"release_at"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "failed to decode claim")
	}
	id := raw.ID.Int()
	if !id.IsUint64() {
		return errors.Errorf("claim id %s out of range", id)
	}
	*c = Claim{
		ID:        id.Uint64(),
		User:      raw.User,
		Amount:    raw.Amount.Int(),
		ReleaseAt: raw.ReleaseAt,
	}
	return nil
}

// StakeSnapshot is one consistent read of a user's position in a token
// membership contract. Claim lists keep the order the contract returned.
type StakeSnapshot struct {
	Total     *big.Int
	Pending   []Claim
	Claimable []Claim
}

func EmptySnapshot() StakeSnapshot {
	return StakeSnapshot{
		Total:     new(big.Int),
		Pending:   []Claim{},
		Claimable: []Claim{},
	}
}

// PendingAmount sums the pending claims. It is recomputed on every call.
func (s StakeSnapshot) PendingAmount() *big.Int {
	return sumClaims(s.Pending)
}

// ClaimableAmount sums the releasable claims. It is recomputed on every call.
func (s StakeSnapshot) ClaimableAmount() *big.Int {
	return sumClaims(s.Claimable)
}

func (s StakeSnapshot) TotalAmount() *big.Int {
	if s.Total == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(s.Total)
}

func sumClaims(claims []Claim) *big.Int {
	sum := new(big.Int)
	for _, c := range claims {
		if c.Amount != nil {
			sum.Add(sum, c.Amount)
		}
	}
	return sum
}
