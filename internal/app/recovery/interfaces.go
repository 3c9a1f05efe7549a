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
	"context"
	"math/big"
	"time"
)

//go:generate minimock -i github.com/frontier3tech/detfl/internal/app/recovery.Querier -o ../../testutils/ -s _mock.go -g

// Querier is the read side of the chain transport.
type Querier interface {
	// SmartQuery sends msg to contract and decodes the response into out.
	SmartQuery(ctx context.Context, network *Network, contract Address, msg interface{}, out interface{}) error
	// ContractMetadata returns the cw2 contract info. A contract without cw2
	// info yields empty metadata and no error.
	ContractMetadata(ctx context.Context, network *Network, contract Address) (ContractMetadata, error)
}

type Signer interface {
	// PubKey returns the compressed secp256k1 public key.
	PubKey() []byte
	Sign(ctx context.Context, signDoc []byte) ([]byte, error)
}

type Wallet interface {
	Address() (Address, bool)
	Signer() (Signer, bool)
}

type Coin struct {
	Denom  string
	Amount *big.Int
}

// UnsignedTx is a single-message transaction awaiting gas estimation and a
// signature. EstimateGas fills GasLimit and Fee.
type UnsignedTx struct {
	Msg           ExecuteMsg
	ChainID       string
	AccountNumber uint64
	Sequence      uint64
	PubKey        []byte
	GasLimit      uint64
	Fee           []Coin
	Memo          string
}

type SignedTx struct {
	TxBytes []byte
	// Hash is the uppercase hex SHA-256 of TxBytes.
	Hash string
}

//go:generate minimock -i github.com/frontier3tech/detfl/internal/app/recovery.TxBuilder -o ../../testutils/ -s _mock.go -g

type TxBuilder interface {
	Build(ctx context.Context, network *Network, signer Signer, msg ExecuteMsg) (*UnsignedTx, error)
	EstimateGas(ctx context.Context, network *Network, tx *UnsignedTx) error
	Sign(ctx context.Context, network *Network, signer Signer, tx *UnsignedTx) (*SignedTx, error)
}

//go:generate minimock -i github.com/frontier3tech/detfl/internal/app/recovery.Broadcaster -o ../../testutils/ -s _mock.go -g

type Broadcaster interface {
	Broadcast(ctx context.Context, network *Network, tx *SignedTx) (string, error)
}

//go:generate minimock -i github.com/frontier3tech/detfl/internal/app/recovery.Confirmer -o ../../testutils/ -s _mock.go -g

// Confirmer waits until a transaction is included in a block. It returns an
// ErrConfirmationTimeout error when timeout passes first and an ErrSubmission
// error when the transaction was included but failed.
type Confirmer interface {
	AwaitTx(ctx context.Context, network *Network, hash string, timeout time.Duration) error
}

type Notifier interface {
	Success(msg string)
	Warn(msg string)
	Error(err error)
}

//go:generate minimock -i github.com/frontier3tech/detfl/internal/app/recovery.Journal -o ../../testutils/ -s _mock.go -g

type Journal interface {
	Save(ctx context.Context, s *Submission) error
	List(ctx context.Context, limit int) ([]Submission, error)
}
