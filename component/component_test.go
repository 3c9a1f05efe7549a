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

package component

import (
	"context"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frontier3tech/detfl/configuration"
	"github.com/frontier3tech/detfl/internal/app/recovery"
	"github.com/frontier3tech/detfl/internal/app/recovery/resolving"
	"github.com/frontier3tech/detfl/internal/app/recovery/staking"
	"github.com/frontier3tech/detfl/internal/testutils"
	"github.com/frontier3tech/detfl/observability"
)

var supported = recovery.Version{Major: 1, Minor: 2, Patch: 1}

const testKey = "0000000000000000000000000000000000000000000000000000000000000001"

func TestMakeSession(t *testing.T) {
	log, _ := logtest.NewNullLogger()

	t.Run("key", func(t *testing.T) {
		cfg := configuration.Default()
		cfg.Wallet.Key = testKey
		cfg.Wallet.Address = testutils.Bob.String()

		session, err := makeSession(cfg, log)
		require.NoError(t, err)
		addr, signer, ok := session.Account()
		require.True(t, ok)
		assert.NotNil(t, signer)
		assert.True(t, strings.HasPrefix(addr.String(), "terra1"))
		assert.NotEqual(t, testutils.Bob, addr)
		assert.Equal(t, "phoenix-1", session.Network.ChainID)
	})

	t.Run("address", func(t *testing.T) {
		cfg := configuration.Default()
		cfg.Wallet.Address = testutils.Alice.String()

		session, err := makeSession(cfg, log)
		require.NoError(t, err)
		addr, _, ok := session.Account()
		assert.False(t, ok)
		assert.Equal(t, testutils.Alice, addr)
	})

	t.Run("none", func(t *testing.T) {
		session, err := makeSession(configuration.Default(), log)
		require.NoError(t, err)
		assert.Nil(t, session.Wallet)
	})

	t.Run("bad key", func(t *testing.T) {
		cfg := configuration.Default()
		cfg.Wallet.Key = "zz"
		_, err := makeSession(cfg, log)
		require.Error(t, err)
	})

	t.Run("bad address", func(t *testing.T) {
		cfg := configuration.Default()
		cfg.Wallet.Address = "terra1bad"
		_, err := makeSession(cfg, log)
		require.Error(t, err)
		assert.True(t, errors.Is(err, recovery.ErrInvalidInput))
	})
}

func TestMakeJournal_Disabled(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	journal, err := makeJournal(configuration.Default().DB, log, nil)
	require.NoError(t, err)
	assert.Nil(t, journal)
}

func TestPrepare(t *testing.T) {
	cfg := configuration.Default()
	cfg.Wallet.Address = testutils.Alice.String()
	obs := observability.Make("error", "text")

	m, err := Prepare(cfg, obs, nil)
	require.NoError(t, err)
	defer m.Stop()

	assert.Nil(t, m.Journal())
	assert.NotNil(t, m.Resolver())
	assert.NotNil(t, m.Reader())
	assert.NotNil(t, m.Actions())
	addr, _ := m.Session().Wallet.Address()
	assert.Equal(t, testutils.Alice, addr)
}

func TestRouter(t *testing.T) {
	obs := observability.Make("error", "text")
	out := makeOutcomes(obs)
	out.succeeded.Reads.Inc()
	r := NewRouter(":0", obs)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())

	rec = httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "detfl_reads_succeeded_total 1")
}

func TestMetered(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	obs := observability.Make("error", "text")
	out := makeOutcomes(obs)
	chain := testutils.NewChain()
	chain.MountDAO(testutils.LionTreasury, testutils.TokenMembership, recovery.TokenMembershipContract, supported)
	chain.MountStake(testutils.TokenMembership, testutils.Alice, "1000000", nil, nil)
	network := testutils.Terra2()
	ctx := context.Background()

	resolver := &MeteredResolver{next: resolving.NewResolver(chain, recovery.NopNotifier(), log, nil), outcomes: out}
	_, err := resolver.Resolve(ctx, network, testutils.LionTreasury.String())
	require.NoError(t, err)
	_, err = resolver.Resolve(ctx, network, testutils.PixelionsTreasury.String())
	require.Error(t, err)
	resolver.Wait()
	assert.Equal(t, float64(1), testutil.ToFloat64(out.succeeded.Resolutions))
	assert.Equal(t, float64(1), testutil.ToFloat64(out.failed.Resolutions))

	reader := &MeteredReader{next: staking.NewReader(chain, log), outcomes: out}
	_, err = reader.Read(ctx, network, testutils.TokenMembership, testutils.Alice)
	require.NoError(t, err)
	_, err = reader.Read(ctx, network, testutils.TokenMembership, testutils.Bob)
	require.Error(t, err)
	assert.Equal(t, float64(1), testutil.ToFloat64(out.succeeded.Reads))
	assert.Equal(t, float64(1), testutil.ToFloat64(out.failed.Reads))

	common := observability.MakeCommonMetrics(obs)
	actions := &MeteredActions{
		next: staking.NewActions(
			testutils.NewFakeTxBuilder(),
			testutils.NewFakeBroadcaster(),
			testutils.NewFakeConfirmer(),
			nil,
			log,
		),
		outcomes: out,
		elapsed:  common.ConfirmationTime,
	}
	session := recovery.NewSession(network, recovery.NewKeyWallet(testutils.Alice, testutils.SignerStub{}))
	hash, err := actions.Unstake(ctx, session, testutils.TokenMembership, testutils.Alice, big.NewInt(10))
	require.NoError(t, err)
	assert.Equal(t, "ABCDEF", hash)
	_, err = actions.Claim(ctx, session, testutils.TokenMembership, testutils.Bob)
	require.Error(t, err)
	hash, err = actions.Stake(ctx, session, staking.DevToken, staking.DevMembership, nil)
	require.NoError(t, err)
	assert.Equal(t, "ABCDEF", hash)

	assert.Equal(t, float64(1), testutil.ToFloat64(out.succeeded.Unstakes))
	assert.Equal(t, float64(0), testutil.ToFloat64(out.failed.Unstakes))
	assert.Equal(t, float64(1), testutil.ToFloat64(out.failed.Claims))
	assert.True(t, testutil.ToFloat64(common.ConfirmationTime) >= 0)
}
