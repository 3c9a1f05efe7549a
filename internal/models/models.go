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

package models

import (
	"math/big"
	"time"

	"github.com/pkg/errors"
)

// Submission is the stored form of one unstake or claim transaction.
type Submission struct {
	tableName struct{} `sql:"submissions"` //nolint: unused,structcheck

	ID        string    `sql:"id,pk"`
	Kind      string    `sql:"kind,notnull"`
	Contract  string    `sql:"contract,notnull"`
	Sender    string    `sql:"sender,notnull"`
	Amount    string    `sql:"amount"`
	TxHash    string    `sql:"tx_hash"`
	Status    string    `sql:"status,notnull"`
	Error     string    `sql:"error"`
	CreatedAt time.Time `sql:"created_at,notnull"`
	UpdatedAt time.Time `sql:"updated_at,notnull"`
}

// AmountInt returns the amount in base units, or nil for claims.
func (s *Submission) AmountInt() (*big.Int, error) {
	if s.Amount == "" {
		return nil, nil
	}
	amount, ok := new(big.Int).SetString(s.Amount, 10)
	if !ok {
		return nil, errors.Errorf("invalid amount %q", s.Amount)
	}
	return amount, nil
}

// SetAmount stores amount as a decimal string. Nil clears it.
func (s *Submission) SetAmount(amount *big.Int) {
	if amount == nil {
		s.Amount = ""
		return
	}
	s.Amount = amount.String()
}
