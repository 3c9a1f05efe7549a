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


package staking

import (
	"context"
	"encoding/json"
	"math/big"
	"testing"
	"time"

	"github.com/gojuno/minimock"
	"github.com/pkg/errors"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frontier3tech/detfl/internal/app/recovery"
	"github.com/frontier3tech/detfl/internal/testutils"
)

type actionsFixture struct {
	builder     *testutils.TxBuilderMock
	broadcaster *testutils.BroadcasterMock
	confirmer   *testutils.ConfirmerMock
	journal     *testutils.MemoryJournal
	actions     *Actions
	session     *recovery.Session

	builds []recovery.ExecuteMsg
}

func newActionsFixture(mc *minimock.Controller) *actionsFixture {
	f := &actionsFixture{
		builder:     testutils.NewTxBuilderMock(mc),
		broadcaster: testutils.NewBroadcasterMock(mc),
		confirmer:   testutils.NewConfirmerMock(mc),
		journal:     &testutils.MemoryJournal{},
	}
	f.useJournal(f.journal)
	f.session = recovery.NewSession(testutils.Terra2(), recovery.NewKeyWallet(testutils.Alice, testutils.SignerStub{}))
	return f
}

func (f *actionsFixture) useJournal(journal recovery.Journal) {
	log, _ := logtest.NewNullLogger()
	f.actions = NewActions(f.builder, f.broadcaster, f.confirmer, journal, log)
}

// until expects every pipeline stage up to and including stage, which fails
// with failure. An empty stage expects the whole pipeline to succeed.
func (f *actionsFixture) until(stage string, failure error) {
	f.builder.BuildMock.Set(func(_ context.Context, network *recovery.Network, _ recovery.Signer, msg recovery.ExecuteMsg) (*recovery.UnsignedTx, error) {
		f.builds = append(f.builds, msg)
		if stage == "build" {
			return nil, failure
		}
		return &recovery.UnsignedTx{Msg: msg, ChainID: network.ChainID}, nil
	})
	if stage == "build" {
		return
	}
	if stage == "estimate" {
		f.builder.EstimateGasMock.Return(failure)
		return
	}
	f.builder.EstimateGasMock.Return(nil)
	if stage == "sign" {
		f.builder.SignMock.Return(nil, failure)
		return
	}
	f.builder.SignMock.Return(&recovery.SignedTx{TxBytes: []byte("tx"), Hash: "ABCDEF"}, nil)
	if stage == "broadcast" {
		f.broadcaster.BroadcastMock.Return("", failure)
		return
	}
	f.broadcaster.BroadcastMock.Return("ABCDEF", nil)
	f.confirmer.AwaitTxMock.Return(failure)
}

func (f *actionsFixture) submissions(t *testing.T) []recovery.Submission {
	list, err := f.journal.List(context.Background(), 10)
	require.NoError(t, err)
	return list
}

func TestActions_Unstake(t *testing.T) {
	mc := minimock.NewController(t)
	defer mc.Finish()
	f := newActionsFixture(mc)
	f.until("", nil)

	var timeout time.Duration
	f.confirmer.AwaitTxMock.Inspect(func(_ context.Context, _ *recovery.Network, hash string, d time.Duration) {
		assert.Equal(t, "ABCDEF", hash)
		timeout = d
	})

	hash, err := f.actions.Unstake(context.Background(), f.session, testutils.TokenMembership, testutils.Alice, big.NewInt(1500000))
	require.NoError(t, err)
	assert.Equal(t, "ABCDEF", hash)
	assert.Equal(t, 30*time.Second, timeout)
	assert.Equal(t, uint64(1), f.session.Refresh.Value())

	require.Len(t, f.builds, 1)
	assert.Equal(t, testutils.Alice, f.builds[0].Sender)
	assert.Equal(t, testutils.TokenMembership, f.builds[0].Contract)
	assert.Equal(t, `{"unstake":{"amount":"1500000"}}`, string(f.builds[0].Msg))

	list := f.submissions(t)
	require.Len(t, list, 1)
	assert.Equal(t, recovery.StatusConfirmed, list[0].Status)
	assert.Equal(t, recovery.SubmissionUnstake, list[0].Kind)
	assert.Equal(t, "1500000", list[0].Amount.String())
	assert.Equal(t, "ABCDEF", list[0].TxHash)
}

func TestActions_Claim(t *testing.T) {
	mc := minimock.NewController(t)
	defer mc.Finish()
	f := newActionsFixture(mc)
	f.until("", nil)

	_, err := f.actions.Claim(context.Background(), f.session, testutils.TokenMembership, testutils.Alice)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), f.session.Refresh.Value())

	require.Len(t, f.builds, 1)
	assert.Equal(t, `{"claim":{}}`, string(f.builds[0].Msg))
	assert.Equal(t, 1, len(f.broadcaster.BroadcastMock.Calls()))
}

func TestActions_Stake(t *testing.T) {
	mc := minimock.NewController(t)
	defer mc.Finish()
	f := newActionsFixture(mc)
	f.until("", nil)

	hash, err := f.actions.Stake(context.Background(), f.session, DevToken, DevMembership, nil)
	require.NoError(t, err)
	assert.Equal(t, "ABCDEF", hash)
	assert.Equal(t, uint64(1), f.session.Refresh.Value())

	require.Len(t, f.builds, 1)
	assert.Equal(t, testutils.Alice, f.builds[0].Sender)
	assert.Equal(t, DevToken, f.builds[0].Contract)
	var msg struct {
		Send recovery.SendMsg `json:"send"`
	}
	require.NoError(t, json.Unmarshal(f.builds[0].Msg, &msg))
	assert.Equal(t, DevMembership, msg.Send.Contract)
	assert.Equal(t, "1000000", msg.Send.Amount)
	assert.JSONEq(t, `{"stake":{"user":"`+testutils.Alice.String()+`"}}`, string(msg.Send.Msg))

	list := f.submissions(t)
	require.Len(t, list, 1)
	assert.Equal(t, recovery.SubmissionStake, list[0].Kind)
	assert.Equal(t, DevToken, list[0].Contract)
	assert.Equal(t, recovery.StatusConfirmed, list[0].Status)
}

func TestActions_StakeRejected(t *testing.T) {
	cases := map[string]struct {
		session *recovery.Session
		token   recovery.Address
		amount  *big.Int
		kind    error
	}{
		"watch only": {
			session: recovery.NewSession(testutils.Terra2(), recovery.NewWatchOnly(testutils.Alice)),
			token:   DevToken,
			kind:    recovery.ErrAuthorization,
		},
		"no wallet": {
			session: recovery.NewSession(testutils.Terra2(), nil),
			token:   DevToken,
			kind:    recovery.ErrAuthorization,
		},
		"zero amount": {
			token:  DevToken,
			amount: big.NewInt(0),
			kind:   recovery.ErrInvalidInput,
		},
		"no token": {
			kind: recovery.ErrInvalidInput,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			mc := minimock.NewController(t)
			defer mc.Finish()
			f := newActionsFixture(mc)
			session := tc.session
			if session == nil {
				session = f.session
			}

			_, err := f.actions.Stake(context.Background(), session, tc.token, DevMembership, tc.amount)
			assert.True(t, errors.Is(err, tc.kind))
			assert.Equal(t, uint64(0), session.Refresh.Value())
		})
	}
}

// No expectation is set on the builder or the broadcaster: any call fails the test.
func TestActions_Authorization(t *testing.T) {
	cases := map[string]*recovery.Session{
		"other wallet": recovery.NewSession(testutils.Terra2(), recovery.NewKeyWallet(testutils.Bob, testutils.SignerStub{})),
		"watch only":   recovery.NewSession(testutils.Terra2(), recovery.NewWatchOnly(testutils.Alice)),
		"no wallet":    recovery.NewSession(testutils.Terra2(), nil),
	}
	for name, session := range cases {
		t.Run(name, func(t *testing.T) {
			mc := minimock.NewController(t)
			defer mc.Finish()
			f := newActionsFixture(mc)

			_, err := f.actions.Unstake(context.Background(), session, testutils.TokenMembership, testutils.Alice, big.NewInt(1))
			assert.True(t, errors.Is(err, recovery.ErrAuthorization))
			_, err = f.actions.Claim(context.Background(), session, testutils.TokenMembership, testutils.Alice)
			assert.True(t, errors.Is(err, recovery.ErrAuthorization))

			assert.Equal(t, uint64(0), f.builder.BuildBeforeCounter())
			assert.Equal(t, uint64(0), f.broadcaster.BroadcastBeforeCounter())
			assert.Equal(t, uint64(0), session.Refresh.Value())
		})
	}
}

func TestActions_InvalidAmount(t *testing.T) {
	mc := minimock.NewController(t)
	defer mc.Finish()
	f := newActionsFixture(mc)

	for _, amount := range []*big.Int{nil, big.NewInt(0), big.NewInt(-5)} {
		_, err := f.actions.Unstake(context.Background(), f.session, testutils.TokenMembership, testutils.Alice, amount)
		assert.True(t, errors.Is(err, recovery.ErrInvalidInput))
	}
	assert.Empty(t, f.builder.BuildMock.Calls())
}

func TestActions_SubmissionFailures(t *testing.T) {
	failure := errors.New("out of gas")

	for _, stage := range []string{"build", "estimate", "sign", "broadcast"} {
		t.Run(stage, func(t *testing.T) {
			mc := minimock.NewController(t)
			defer mc.Finish()
			f := newActionsFixture(mc)
			f.until(stage, failure)

			_, err := f.actions.Unstake(context.Background(), f.session, testutils.TokenMembership, testutils.Alice, big.NewInt(1))
			require.Error(t, err)
			assert.True(t, errors.Is(err, recovery.ErrSubmission))
			assert.True(t, errors.Is(err, failure))
			assert.Equal(t, uint64(0), f.session.Refresh.Value())
			assert.Empty(t, f.submissions(t))
		})
	}
}

func TestActions_ConfirmationOutcome(t *testing.T) {
	t.Run("timeout", func(t *testing.T) {
		mc := minimock.NewController(t)
		defer mc.Finish()
		f := newActionsFixture(mc)
		f.until("", recovery.Errorf(recovery.ErrConfirmationTimeout, "tx ABCDEF not seen"))

		hash, err := f.actions.Claim(context.Background(), f.session, testutils.TokenMembership, testutils.Alice)
		assert.Equal(t, "ABCDEF", hash)
		assert.True(t, errors.Is(err, recovery.ErrConfirmationTimeout))
		assert.False(t, errors.Is(err, recovery.ErrSubmission))
		assert.Equal(t, uint64(0), f.session.Refresh.Value())

		list := f.submissions(t)
		require.Len(t, list, 1)
		assert.Equal(t, recovery.StatusTimeout, list[0].Status)
	})

	t.Run("rejected", func(t *testing.T) {
		mc := minimock.NewController(t)
		defer mc.Finish()
		f := newActionsFixture(mc)
		f.until("", recovery.Errorf(recovery.ErrSubmission, "tx failed with code 5"))

		_, err := f.actions.Claim(context.Background(), f.session, testutils.TokenMembership, testutils.Alice)
		assert.True(t, errors.Is(err, recovery.ErrSubmission))
		assert.False(t, errors.Is(err, recovery.ErrConfirmationTimeout))
		assert.Equal(t, uint64(0), f.session.Refresh.Value())

		list := f.submissions(t)
		require.Len(t, list, 1)
		assert.Equal(t, recovery.StatusFailed, list[0].Status)
		assert.Contains(t, list[0].Error, "code 5")
	})
}

func TestActions_Journal(t *testing.T) {
	t.Run("submitted then settled", func(t *testing.T) {
		mc := minimock.NewController(t)
		defer mc.Finish()
		f := newActionsFixture(mc)
		f.until("", nil)
		journal := testutils.NewJournalMock(mc)
		f.useJournal(journal)

		var statuses []recovery.SubmissionStatus
		journal.SaveMock.Inspect(func(_ context.Context, s *recovery.Submission) {
			assert.Equal(t, "ABCDEF", s.TxHash)
			statuses = append(statuses, s.Status)
		}).Return(nil)

		_, err := f.actions.Claim(context.Background(), f.session, testutils.TokenMembership, testutils.Alice)
		require.NoError(t, err)
		assert.Equal(t, []recovery.SubmissionStatus{recovery.StatusSubmitted, recovery.StatusConfirmed}, statuses)
	})

	t.Run("failure does not fail the action", func(t *testing.T) {
		mc := minimock.NewController(t)
		defer mc.Finish()
		f := newActionsFixture(mc)
		f.until("", nil)
		journal := testutils.NewJournalMock(mc)
		f.useJournal(journal)
		journal.SaveMock.Return(errors.New("db down"))

		_, err := f.actions.Claim(context.Background(), f.session, testutils.TokenMembership, testutils.Alice)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), f.session.Refresh.Value())
		assert.Equal(t, 2, len(journal.SaveMock.Calls()))
	})
}

func TestActions_RefreshTriggersReread(t *testing.T) {
	mc := minimock.NewController(t)
	defer mc.Finish()
	chain := testutils.NewChain()
	mountAliceStake(chain)
	reader := newReader(chain)
	f := newActionsFixture(mc)
	f.until("", nil)

	reads := 0
	f.session.Refresh.Subscribe(func() {
		_, err := reader.Read(context.Background(), f.session.Network, testutils.TokenMembership, testutils.Alice)
		assert.NoError(t, err)
		reads++
	})

	before := f.session.Refresh.Value()
	_, err := f.actions.Unstake(context.Background(), f.session, testutils.TokenMembership, testutils.Alice, big.NewInt(100000))
	require.NoError(t, err)

	assert.Equal(t, before+1, f.session.Refresh.Value())
	assert.Equal(t, 1, reads)
	assert.Equal(t, 3, chain.CountQueries(testutils.TokenMembership))
}
