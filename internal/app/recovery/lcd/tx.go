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

package lcd

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"math"
	"math/big"
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/frontier3tech/detfl/internal/app/recovery"
)

// TxBuilder builds, simulates and signs single-message SIGN_MODE_DIRECT
// transactions against the LCD.
type TxBuilder struct {
	client *Client
	log    logrus.FieldLogger
}

func NewTxBuilder(client *Client, log logrus.FieldLogger) *TxBuilder {
	return &TxBuilder{client: client, log: log}
}

type accountResponse struct {
	Account struct {
		Type          string `json:"@type"`
		Address       string `json:"address"`
		AccountNumber string `json:"account_number"`
		Sequence      string `json:"sequence"`
	} `json:"account"`
}

type simulateRequest struct {
	TxBytes []byte `json:"tx_bytes"`
}

type simulateResponse struct {
	GasInfo struct {
		GasUsed string `json:"gas_used"`
	} `json:"gas_info"`
}

func (b *TxBuilder) Build(ctx context.Context, network *recovery.Network, signer recovery.Signer, msg recovery.ExecuteMsg) (*recovery.UnsignedTx, error) {
	if network == nil {
		return nil, recovery.ErrNetworkUnavailable
	}
	var acc accountResponse
	path := "/cosmos/auth/v1beta1/accounts/" + url.PathEscape(msg.Sender.String())
	if err := b.client.get(ctx, network, path, &acc); err != nil {
		return nil, errors.Wrapf(err, "failed to query account %s", msg.Sender)
	}
	number, err := parseUint(acc.Account.AccountNumber)
	if err != nil {
		return nil, errors.Wrap(err, "malformed account number")
	}
	sequence, err := parseUint(acc.Account.Sequence)
	if err != nil {
		return nil, errors.Wrap(err, "malformed account sequence")
	}
	return &recovery.UnsignedTx{
		Msg:           msg,
		ChainID:       network.ChainID,
		AccountNumber: number,
		Sequence:      sequence,
		PubKey:        signer.PubKey(),
	}, nil
}

// EstimateGas simulates tx with an empty signature and sets the gas limit to
// the used gas times the network adjustment. The fee follows from the gas price.
func (b *TxBuilder) EstimateGas(ctx context.Context, network *recovery.Network, tx *recovery.UnsignedTx) error {
	if network == nil {
		return recovery.ErrNetworkUnavailable
	}
	body := encodeBody(tx)
	authInfo := encodeAuthInfo(tx)
	raw := encodeTxRaw(body, authInfo, nil)

	var resp simulateResponse
	if err := b.client.post(ctx, network, "/cosmos/tx/v1beta1/simulate", simulateRequest{TxBytes: raw}, &resp); err != nil {
		return errors.Wrap(err, "failed to simulate transaction")
	}
	used, err := parseUint(resp.GasInfo.GasUsed)
	if err != nil {
		return errors.Wrap(err, "malformed gas used")
	}

	adjustment := network.GasAdjustment
	if adjustment <= 0 {
		adjustment = 1
	}
	tx.GasLimit = uint64(math.Ceil(float64(used) * adjustment))
	fee := decimal.NewFromBigInt(new(big.Int).SetUint64(tx.GasLimit), 0).Mul(network.GasPrice).Ceil()
	tx.Fee = []recovery.Coin{{Denom: network.Denom, Amount: fee.BigInt()}}

	b.log.WithFields(logrus.Fields{
		"gas_used":  used,
		"gas_limit": tx.GasLimit,
		"fee":       fee.String() + network.Denom,
	}).Debug("gas estimated")
	return nil
}

func (b *TxBuilder) Sign(ctx context.Context, network *recovery.Network, signer recovery.Signer, tx *recovery.UnsignedTx) (*recovery.SignedTx, error) {
	if tx.GasLimit == 0 {
		return nil, errors.New("gas is not estimated")
	}
	body := encodeBody(tx)
	authInfo := encodeAuthInfo(tx)
	doc := encodeSignDoc(body, authInfo, tx.ChainID, tx.AccountNumber)

	sig, err := signer.Sign(ctx, doc)
	if err != nil {
		return nil, errors.Wrap(err, "signer refused")
	}
	raw := encodeTxRaw(body, authInfo, sig)
	return &recovery.SignedTx{TxBytes: raw, Hash: TxHash(raw)}, nil
}

// TxHash is the uppercase hex SHA-256 of the raw transaction, as indexed by
// Tendermint.
func TxHash(raw []byte) string {
	sum := sha256.Sum256(raw)
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

func encodeBody(tx *recovery.UnsignedTx) []byte {
	exec := newMessage().
		str(1, tx.Msg.Sender.String()).
		str(2, tx.Msg.Contract.String()).
		bytes(3, tx.Msg.Msg)
	return newMessage().
		msg(1, anyMessage(typeMsgExecuteContract, exec.encode())).
		str(2, tx.Memo).
		encode()
}

func encodeAuthInfo(tx *recovery.UnsignedTx) []byte {
	pubKey := anyMessage(typeSecp256k1PubKey, newMessage().bytes(1, tx.PubKey).encode())
	modeInfo := newMessage().msg(1, newMessage().varint(1, signModeDirect))
	signerInfo := newMessage().
		msg(1, pubKey).
		msg(2, modeInfo).
		varint(3, tx.Sequence)

	fee := newMessage()
	for _, coin := range tx.Fee {
		fee.msg(1, newMessage().str(1, coin.Denom).str(2, coin.Amount.String()))
	}
	fee.varint(2, tx.GasLimit)

	return newMessage().
		msg(1, signerInfo).
		msg(2, fee).
		encode()
}

func encodeSignDoc(body, authInfo []byte, chainID string, accountNumber uint64) []byte {
	return newMessage().
		bytes(1, body).
		bytes(2, authInfo).
		str(3, chainID).
		varint(4, accountNumber).
		encode()
}

// encodeTxRaw writes a TxRaw with a single signature. A nil signature is
// written as an empty element, which is what simulation expects.
func encodeTxRaw(body, authInfo, sig []byte) []byte {
	return newMessage().
		bytes(1, body).
		bytes(2, authInfo).
		repeated(3, sig).
		encode()
}

func parseUint(s string) (uint64, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "parse %q", s)
	}
	return v, nil
}

func encodeBase64(raw []byte) string {
	return base64.StdEncoding.EncodeToString(raw)
}
