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

package api

import (
	"time"
)

type ResponseMembership struct {
	Kind    string `json:"kind"`
	Address string `json:"address"`
}

// Balance carries an amount in base units and its display form.
type Balance struct {
	Amount  string `json:"amount"`
	Display string `json:"display"`
}

type ResponseClaim struct {
	ID        uint64     `json:"id"`
	Amount    Balance    `json:"amount"`
	ReleaseAt string     `json:"release_at"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
	Height    *uint64    `json:"height,omitempty"`
}

type ResponseStake struct {
	Contract         string          `json:"contract"`
	User             string          `json:"user"`
	Staked           Balance         `json:"staked"`
	Pending          Balance         `json:"pending"`
	Claimable        Balance         `json:"claimable"`
	PendingClaims    []ResponseClaim `json:"pending_claims"`
	ReleasableClaims []ResponseClaim `json:"releasable_claims"`
}

type RequestUnstake struct {
	Subject string `json:"subject"`
	// Display units, e.g. "1.5"
	Amount string `json:"amount"`
}

type RequestClaim struct {
	Subject string `json:"subject"`
}

type ResponseTx struct {
	TxHash string `json:"tx_hash"`
}

type ResponseSubmission struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Contract  string    `json:"contract"`
	Sender    string    `json:"sender"`
	Amount    *Balance  `json:"amount,omitempty"`
	TxHash    string    `json:"tx_hash"`
	Status    string    `json:"status"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
