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

package signer

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/pkg/errors"
	"golang.org/x/crypto/ripemd160"

	"github.com/frontier3tech/detfl/internal/app/recovery"
)

// Key is a local secp256k1 signing key, the way Cosmos SDK accounts sign.
type Key struct {
	priv *btcec.PrivateKey
	pub  []byte
}

// FromHex parses a hex encoded 32 byte private key.
func FromHex(raw string) (*Key, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(raw), "0x"))
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode private key")
	}
	if len(b) != btcec.PrivKeyBytesLen {
		return nil, errors.Errorf("private key must be %d bytes, got %d", btcec.PrivKeyBytesLen, len(b))
	}
	priv, pub := btcec.PrivKeyFromBytes(b)
	return &Key{priv: priv, pub: pub.SerializeCompressed()}, nil
}

func (k *Key) PubKey() []byte {
	out := make([]byte, len(k.pub))
	copy(out, k.pub)
	return out
}

// Sign returns the 64 byte R||S signature of sha256(signDoc) with a low S.
func (k *Key) Sign(ctx context.Context, signDoc []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	hash := sha256.Sum256(signDoc)
	sig := ecdsa.SignCompact(k.priv, hash[:], true)
	// drop the recovery header
	return sig[1:], nil
}

// Address derives the account address: bech32(prefix, ripemd160(sha256(pubkey))).
func (k *Key) Address(prefix string) (recovery.Address, error) {
	sha := sha256.Sum256(k.pub)
	h := ripemd160.New()
	_, _ = h.Write(sha[:])
	return recovery.EncodeAddress(prefix, h.Sum(nil))
}

// Wallet builds a signing wallet for the key on the given network.
func Wallet(network *recovery.Network, key *Key) (*recovery.KeyWallet, error) {
	if network == nil {
		return nil, recovery.ErrNetworkUnavailable
	}
	addr, err := key.Address(network.Bech32Prefix)
	if err != nil {
		return nil, err
	}
	return recovery.NewKeyWallet(addr, key), nil
}
