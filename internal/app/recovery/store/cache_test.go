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


package store

import (
	"context"
	"math/big"
	"testing"

	"github.com/gojuno/minimock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frontier3tech/detfl/internal/app/recovery"
	"github.com/frontier3tech/detfl/internal/testutils"
)

func TestCachedQuerier_ContractMetadata(t *testing.T) {
	ctx := context.Background()
	mc := minimock.NewController(t)
	network := testutils.Terra2()
	expected := recovery.ContractMetadata{Name: recovery.TokenMembershipContract, Version: "1.2.1"}

	var (
		backend *testutils.QuerierMock
		cache   *CachedQuerier
	)
	setup := func() {
		backend = testutils.NewQuerierMock(mc)
		c, err := NewCachedQuerier(backend, 10)
		if err != nil {
			panic(err)
		}
		cache = c
	}
	defer mc.Finish()

	t.Run("not found in backend", func(t *testing.T) {
		setup()
		failure := errors.New("contract not found")
		backend.ContractMetadataMock.Return(recovery.ContractMetadata{}, failure)

		_, err := cache.ContractMetadata(ctx, network, testutils.TokenMembership)
		assert.Equal(t, failure, err)
		_, err = cache.ContractMetadata(ctx, network, testutils.TokenMembership)
		assert.Equal(t, failure, err)
		assert.Equal(t, 2, len(backend.ContractMetadataMock.Calls()), "should not cache failures")
	})

	t.Run("found in backend", func(t *testing.T) {
		setup()
		backend.ContractMetadataMock.Inspect(func(ctx context.Context, _ *recovery.Network, contract recovery.Address) {
			require.Equal(t, testutils.TokenMembership, contract)
		}).Return(expected, nil)

		meta, err := cache.ContractMetadata(ctx, network, testutils.TokenMembership)
		require.NoError(t, err)
		assert.Equal(t, expected, meta)

		meta, err = cache.ContractMetadata(ctx, network, testutils.TokenMembership)
		require.NoError(t, err)
		assert.Equal(t, expected, meta)
		assert.Equal(t, 1, len(backend.ContractMetadataMock.Calls()), "should not call backend on second read")
	})

	t.Run("keyed by chain", func(t *testing.T) {
		setup()
		backend.ContractMetadataMock.Return(expected, nil)
		other := testutils.Terra2()
		other.ChainID = "pisco-1"

		_, err := cache.ContractMetadata(ctx, network, testutils.TokenMembership)
		require.NoError(t, err)
		_, err = cache.ContractMetadata(ctx, other, testutils.TokenMembership)
		require.NoError(t, err)
		assert.Equal(t, 2, len(backend.ContractMetadataMock.Calls()))
	})

	t.Run("no network", func(t *testing.T) {
		setup()
		backend.ContractMetadataMock.Return(recovery.ContractMetadata{}, recovery.ErrNetworkUnavailable)

		for i := 0; i < 2; i++ {
			_, err := cache.ContractMetadata(ctx, nil, testutils.TokenMembership)
			assert.Equal(t, recovery.ErrNetworkUnavailable, err)
		}
		assert.Equal(t, 2, len(backend.ContractMetadataMock.Calls()))
	})
}

func TestCachedQuerier_SmartQueryIsNotCached(t *testing.T) {
	mc := minimock.NewController(t)
	defer mc.Finish()
	backend := testutils.NewQuerierMock(mc)
	backend.SmartQueryMock.Set(func(_ context.Context, _ *recovery.Network, contract recovery.Address, msg interface{}, out interface{}) error {
		assert.Equal(t, testutils.TokenMembership, contract)
		out.(*recovery.UserWeight).Weight = recovery.NewUint128(big.NewInt(1000000))
		return nil
	})
	cache, err := NewCachedQuerier(backend, 10)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		var weight recovery.UserWeight
		require.NoError(t, cache.SmartQuery(context.Background(), testutils.Terra2(), testutils.TokenMembership, recovery.UserWeightQuery(testutils.Alice), &weight))
		assert.Equal(t, "1000000", weight.Weight.Int().String())
	}
	assert.Equal(t, uint64(3), backend.SmartQueryAfterCounter())
}

func TestNewCachedQuerier_InvalidSize(t *testing.T) {
	mc := minimock.NewController(t)
	defer mc.Finish()

	_, err := NewCachedQuerier(testutils.NewQuerierMock(mc), 0)
	assert.Error(t, err)
}
