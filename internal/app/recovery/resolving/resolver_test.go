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

package resolving

import (
	"context"
	"sync"
	"testing"

	"github.com/gojuno/minimock"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frontier3tech/detfl/internal/app/recovery"
	"github.com/frontier3tech/detfl/internal/testutils"
)

var supported = recovery.Version{Major: 1, Minor: 2, Patch: 1}

type fixture struct {
	chain    *testutils.Chain
	notifier *testutils.NotifierMock
	gauge    prometheus.Gauge
	logs     *logtest.Hook
	resolver *Resolver
}

func newFixture() *fixture {
	log, hook := logtest.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	f := &fixture{
		chain:    testutils.NewChain(),
		notifier: &testutils.NotifierMock{},
		gauge:    prometheus.NewGauge(prometheus.GaugeOpts{Name: "detfl_dao_version_unsupported"}),
		logs:     hook,
	}
	f.resolver = NewResolver(f.chain, f.notifier, log, f.gauge)
	return f
}

func TestResolve_Classification(t *testing.T) {
	cases := []struct {
		name       string
		membership recovery.Address
		contract   string
		expected   recovery.MembershipDescriptor
	}{
		{
			name:       "token",
			membership: testutils.TokenMembership,
			contract:   "crates.io:token-staking-membership",
			expected:   recovery.MembershipDescriptor{Kind: recovery.KindToken, Address: testutils.TokenMembership},
		},
		{
			name:       "nft",
			membership: testutils.NFTMembership,
			contract:   "crates.io:nft-staking-membership",
			expected:   recovery.MembershipDescriptor{Kind: recovery.KindNFT, Address: testutils.NFTMembership},
		},
		{
			name:       "other",
			membership: testutils.OtherMembership,
			contract:   "crates.io:multisig-membership",
			expected:   recovery.UnknownMembership(),
		},
		{
			name:       "no contract info",
			membership: testutils.OtherMembership,
			expected:   recovery.UnknownMembership(),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()
			f.chain.MountDAO(testutils.LionTreasury, tc.membership, tc.contract, supported)

			desc, err := f.resolver.Resolve(context.Background(), testutils.Terra2(), testutils.LionTreasury.String())
			f.resolver.Wait()
			require.NoError(t, err)
			assert.Equal(t, tc.expected, desc)
			assert.Empty(t, f.notifier.Warnings())
		})
	}
}

func newMockedResolver(mc *minimock.Controller) (*Resolver, *testutils.QuerierMock, *testutils.NotifierMock) {
	log, _ := logtest.NewNullLogger()
	querier := testutils.NewQuerierMock(mc)
	notifier := &testutils.NotifierMock{}
	return NewResolver(querier, notifier, log, nil), querier, notifier
}

// The querier mock has no expectations: any query fails the test.
func TestResolve_InvalidInputIssuesNoQuery(t *testing.T) {
	mc := minimock.NewController(t)
	defer mc.Finish()
	resolver, querier, _ := newMockedResolver(mc)

	for _, raw := range []string{
		"",
		"terra",
		"terra1",
		"hello world",
		"terra17c6ts8grcfrgquhj3haclg44le8s7qkx6l2yx33acguxhpf000xqhnl3jf",
		"TERRA17c6ts8grcfrgquhj3haclg44le8s7qkx6l2yx33acguxhpf000xqhnl3je",
		"cosmos1peacc03m072wmq2n3ftg5eqgc6x4wdwmzjqnf3",
	} {
		desc, err := resolver.Resolve(context.Background(), testutils.Terra2(), raw)
		require.NoError(t, err, raw)
		assert.Equal(t, recovery.UnknownMembership(), desc, raw)
	}
	assert.Equal(t, uint64(0), querier.SmartQueryBeforeCounter())
}

func TestResolve_NoNetwork(t *testing.T) {
	mc := minimock.NewController(t)
	defer mc.Finish()
	resolver, _, _ := newMockedResolver(mc)

	desc, err := resolver.Resolve(context.Background(), nil, testutils.LionTreasury.String())
	assert.Equal(t, recovery.ErrNetworkUnavailable, err)
	assert.Equal(t, recovery.UnknownMembership(), desc)
}

func TestResolve_QueryChain(t *testing.T) {
	mc := minimock.NewController(t)
	defer mc.Finish()
	resolver, querier, notifier := newMockedResolver(mc)

	var (
		mu      sync.Mutex
		visited []recovery.Address
	)
	querier.SmartQueryMock.Set(func(_ context.Context, network *recovery.Network, contract recovery.Address, _ interface{}, out interface{}) error {
		assert.Equal(t, "phoenix-1", network.ChainID)
		mu.Lock()
		visited = append(visited, contract)
		mu.Unlock()
		switch out := out.(type) {
		case *recovery.TreasuryConfig:
			assert.Equal(t, testutils.LionTreasury, contract)
			out.Admin = testutils.AdminContract
		case *recovery.GovConfig:
			assert.Equal(t, testutils.AdminContract, contract)
			out.DAOMembershipContract = testutils.TokenMembership
		case *recovery.AdminConfig:
			assert.Equal(t, testutils.AdminContract, contract)
			out.EnterpriseContract = testutils.EnterpriseContract
		case *recovery.DAOInfo:
			assert.Equal(t, testutils.EnterpriseContract, contract)
			out.DAOVersion = supported
		default:
			t.Errorf("unexpected query into %T", out)
		}
		return nil
	})
	querier.ContractMetadataMock.Inspect(func(_ context.Context, _ *recovery.Network, contract recovery.Address) {
		assert.Equal(t, testutils.TokenMembership, contract)
	}).Return(recovery.ContractMetadata{Name: recovery.TokenMembershipContract, Version: "1.2.1"}, nil)

	desc, err := resolver.Resolve(context.Background(), testutils.Terra2(), testutils.LionTreasury.String())
	resolver.Wait()
	require.NoError(t, err)
	assert.Equal(t, recovery.MembershipDescriptor{Kind: recovery.KindToken, Address: testutils.TokenMembership}, desc)
	assert.Empty(t, notifier.Warnings())

	require.Len(t, visited, 4)
	assert.Equal(t, []recovery.Address{testutils.LionTreasury, testutils.AdminContract}, visited[:2])
	assert.ElementsMatch(t, []recovery.Address{testutils.AdminContract, testutils.EnterpriseContract}, visited[2:])
	assert.Equal(t, 1, len(querier.ContractMetadataMock.Calls()))
}

func TestResolve_Failures(t *testing.T) {
	networkErr := errors.New("connection reset by peer")

	t.Run("treasury config", func(t *testing.T) {
		f := newFixture()
		f.chain.MountDAO(testutils.LionTreasury, testutils.TokenMembership, recovery.TokenMembershipContract, supported)
		f.chain.FailSmart(testutils.LionTreasury, recovery.ConfigQuery(), networkErr)

		desc, err := f.resolver.Resolve(context.Background(), testutils.Terra2(), testutils.LionTreasury.String())
		f.resolver.Wait()
		require.Error(t, err)
		assert.True(t, errors.Is(err, recovery.ErrResolution))
		assert.True(t, errors.Is(err, networkErr))
		assert.Equal(t, recovery.UnknownMembership(), desc)
		assert.Equal(t, 0, f.chain.CountQueries(testutils.AdminContract))
	})

	t.Run("treasury without admin", func(t *testing.T) {
		f := newFixture()
		f.chain.OnSmart(testutils.LionTreasury, recovery.ConfigQuery(), map[string]string{"owner": "x"})

		desc, err := f.resolver.Resolve(context.Background(), testutils.Terra2(), testutils.LionTreasury.String())
		assert.True(t, errors.Is(err, recovery.ErrResolution))
		assert.Equal(t, recovery.UnknownMembership(), desc)
	})

	t.Run("gov config", func(t *testing.T) {
		f := newFixture()
		f.chain.MountDAO(testutils.LionTreasury, testutils.TokenMembership, recovery.TokenMembershipContract, supported)
		f.chain.FailSmart(testutils.AdminContract, recovery.GovConfigQuery(), networkErr)

		desc, err := f.resolver.Resolve(context.Background(), testutils.Terra2(), testutils.LionTreasury.String())
		f.resolver.Wait()
		assert.True(t, errors.Is(err, recovery.ErrResolution))
		assert.Equal(t, recovery.UnknownMembership(), desc)
	})

	t.Run("contract info", func(t *testing.T) {
		f := newFixture()
		f.chain.MountDAO(testutils.LionTreasury, testutils.TokenMembership, recovery.TokenMembershipContract, supported)
		f.chain.FailMetadata(testutils.TokenMembership, networkErr)

		desc, err := f.resolver.Resolve(context.Background(), testutils.Terra2(), testutils.LionTreasury.String())
		f.resolver.Wait()
		assert.True(t, errors.Is(err, recovery.ErrResolution))
		assert.Equal(t, recovery.UnknownMembership(), desc)
	})
}

func TestResolve_VersionCheck(t *testing.T) {
	t.Run("supported", func(t *testing.T) {
		f := newFixture()
		f.gauge.Set(1)
		f.chain.MountDAO(testutils.LionTreasury, testutils.TokenMembership, recovery.TokenMembershipContract, supported)

		_, err := f.resolver.Resolve(context.Background(), testutils.Terra2(), testutils.LionTreasury.String())
		f.resolver.Wait()
		require.NoError(t, err)
		assert.Empty(t, f.notifier.Warnings())
		assert.Equal(t, float64(0), testutil.ToFloat64(f.gauge))

		var found bool
		for _, e := range f.logs.AllEntries() {
			if e.Level == logrus.InfoLevel && e.Message == "DAO "+testutils.EnterpriseContract.String()+" is on version 1.2.1" {
				found = true
			}
		}
		assert.True(t, found)
	})

	t.Run("mismatch only warns", func(t *testing.T) {
		f := newFixture()
		f.chain.MountDAO(testutils.LionTreasury, testutils.TokenMembership, recovery.TokenMembershipContract,
			recovery.Version{Major: 1, Minor: 0, Patch: 3})

		desc, err := f.resolver.Resolve(context.Background(), testutils.Terra2(), testutils.LionTreasury.String())
		f.resolver.Wait()
		require.NoError(t, err)
		assert.Equal(t, recovery.KindToken, desc.Kind)
		assert.Equal(t, []string{"This DAO is not on version 1.2.1. This tool might not work as expected."}, f.notifier.Warnings())
		assert.Equal(t, float64(1), testutil.ToFloat64(f.gauge))
	})

	t.Run("query failure only warns", func(t *testing.T) {
		f := newFixture()
		f.chain.MountDAO(testutils.LionTreasury, testutils.TokenMembership, recovery.TokenMembershipContract, supported)
		f.chain.FailSmart(testutils.EnterpriseContract, recovery.DAOInfoQuery(), errors.New("timeout"))

		desc, err := f.resolver.Resolve(context.Background(), testutils.Terra2(), testutils.LionTreasury.String())
		f.resolver.Wait()
		require.NoError(t, err)
		assert.Equal(t, recovery.KindToken, desc.Kind)
		assert.Len(t, f.notifier.Warnings(), 1)
		assert.Empty(t, f.notifier.Errors())
	})

	t.Run("detached from caller", func(t *testing.T) {
		f := newFixture()
		f.chain.MountDAO(testutils.LionTreasury, testutils.TokenMembership, recovery.TokenMembershipContract, supported)
		ctx, cancel := context.WithCancel(context.Background())
		f.chain.Hook = func(_ context.Context, q testutils.Query) {
			// cancel the caller once discovery is over
			if q.Contract == testutils.AdminContract && q.Msg == `{"gov_config":{}}` {
				cancel()
			}
		}
		f.chain.Hook = wrapHookCheckingCtx(t, f.chain.Hook)

		_, err := f.resolver.Resolve(ctx, testutils.Terra2(), testutils.LionTreasury.String())
		f.resolver.Wait()
		require.NoError(t, err)
		assert.Equal(t, 1, f.chain.CountQueries(testutils.EnterpriseContract))
	})
}

// wrapHookCheckingCtx asserts that version check queries never see a cancelled context.
func wrapHookCheckingCtx(t *testing.T, next func(context.Context, testutils.Query)) func(context.Context, testutils.Query) {
	return func(ctx context.Context, q testutils.Query) {
		next(ctx, q)
		if q.Contract == testutils.EnterpriseContract {
			assert.NoError(t, ctx.Err())
		}
	}
}
