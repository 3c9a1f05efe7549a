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
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	TokenMembershipContract = "crates.io:token-staking-membership"
	NFTMembershipContract   = "crates.io:nft-staking-membership"

	// SupportedDAOVersion is the only Enterprise release the recovery flow was
	// checked against. Other versions are used anyway, with a warning.
	SupportedDAOVersion = "1.2.1"

	// ConfirmationTimeout bounds the wait for a broadcast transaction to be included.
	ConfirmationTimeout = 30 * time.Second
)

type Endpoints struct {
	REST []string
	RPC  []string
	WS   []string
}

// Network describes the active chain. It is built once from configuration and
// never mutated afterwards.
type Network struct {
	Name          string
	ChainID       string
	Bech32Prefix  string
	Denom         string
	Decimals      int32
	GasPrice      decimal.Decimal
	GasAdjustment float64
	Endpoints     Endpoints
}

func (n *Network) RESTEndpoint() (string, error) {
	if n == nil || len(n.Endpoints.REST) == 0 {
		return "", ErrNetworkUnavailable
	}
	return n.Endpoints.REST[0], nil
}

func (n *Network) WSEndpoint() (string, error) {
	if n == nil || len(n.Endpoints.WS) == 0 {
		return "", ErrNetworkUnavailable
	}
	return n.Endpoints.WS[0], nil
}

type MembershipKind int

const (
	KindUnknown MembershipKind = iota
	KindToken
	KindNFT
)

func (k MembershipKind) String() string {
	switch k {
	case KindToken:
		return "token"
	case KindNFT:
		return "nft"
	default:
		return "unknown"
	}
}

// ClassifyMembership maps a cw2 contract name to a membership kind. Only exact
// matches are recognized.
func ClassifyMembership(contractName string) MembershipKind {
	switch contractName {
	case TokenMembershipContract:
		return KindToken
	case NFTMembershipContract:
		return KindNFT
	default:
		return KindUnknown
	}
}

// MembershipDescriptor is the outcome of contract discovery. The Unknown kind
// always carries an empty address.
type MembershipDescriptor struct {
	Kind    MembershipKind
	Address Address
}

func UnknownMembership() MembershipDescriptor {
	return MembershipDescriptor{Kind: KindUnknown}
}

func (d MembershipDescriptor) Known() bool {
	return d.Kind != KindUnknown
}

type ContractMetadata struct {
	Name    string
	Version string
}

type SubmissionKind string

const (
	SubmissionUnstake SubmissionKind = "unstake"
	SubmissionClaim   SubmissionKind = "claim"
	SubmissionStake   SubmissionKind = "stake"
)

type SubmissionStatus string

const (
	StatusSubmitted SubmissionStatus = "submitted"
	StatusConfirmed SubmissionStatus = "confirmed"
	StatusFailed    SubmissionStatus = "failed"
	StatusTimeout   SubmissionStatus = "timeout"
)

// Submission is a journal entry for one unstake or claim attempt that reached
// the broadcast stage.
type Submission struct {
	ID        uuid.UUID
	Kind      SubmissionKind
	Contract  Address
	Sender    Address
	Amount    *big.Int
	TxHash    string
	Status    SubmissionStatus
	Error     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
