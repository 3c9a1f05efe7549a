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
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frontier3tech/detfl/internal/app/recovery"
	"github.com/frontier3tech/detfl/internal/testutils"
)

const keyOne = "0000000000000000000000000000000000000000000000000000000000000001"

func TestFromHex(t *testing.T) {
	key, err := FromHex("0x" + keyOne)
	require.NoError(t, err)
	assert.Equal(t, "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798", hex.EncodeToString(key.PubKey()))

	_, err = FromHex("zz")
	assert.Error(t, err)
	_, err = FromHex("0102")
	assert.Error(t, err)
}

func TestKey_Address(t *testing.T) {
	key, err := FromHex(keyOne)
	require.NoError(t, err)

	addr, err := key.Address("terra")
	require.NoError(t, err)
	assert.Equal(t, recovery.Address("terra1w508d6qejxtdg4y5r3zarvary0c5xw7kued6dc"), addr)

	wallet, err := Wallet(testutils.Terra2(), key)
	require.NoError(t, err)
	got, ok := wallet.Address()
	assert.True(t, ok)
	assert.Equal(t, addr, got)
	_, ok = wallet.Signer()
	assert.True(t, ok)

	_, err = Wallet(nil, key)
	assert.Equal(t, recovery.ErrNetworkUnavailable, err)
}

func TestKey_Sign(t *testing.T) {
	key, err := FromHex(keyOne)
	require.NoError(t, err)
	doc := []byte("sign doc")

	sig, err := key.Sign(context.Background(), doc)
	require.NoError(t, err)
	require.Len(t, sig, 64)

	var r, s btcec.ModNScalar
	require.False(t, r.SetByteSlice(sig[:32]))
	require.False(t, s.SetByteSlice(sig[32:]))
	assert.False(t, s.IsOverHalfOrder())

	pub, err := btcec.ParsePubKey(key.PubKey())
	require.NoError(t, err)
	hash := sha256.Sum256(doc)
	assert.True(t, ecdsa.NewSignature(&r, &s).Verify(hash[:], pub))

	again, err := key.Sign(context.Background(), doc)
	require.NoError(t, err)
	assert.Equal(t, sig, again)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = key.Sign(ctx, doc)
	assert.Error(t, err)
}
