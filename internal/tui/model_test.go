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

package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frontier3tech/detfl/internal/app/recovery"
	"github.com/frontier3tech/detfl/internal/app/recovery/flow"
	"github.com/frontier3tech/detfl/internal/app/recovery/resolving"
	"github.com/frontier3tech/detfl/internal/app/recovery/staking"
	"github.com/frontier3tech/detfl/internal/testutils"
)

var supported = recovery.Version{Major: 1, Minor: 2, Patch: 1}

type fixture struct {
	chain    *testutils.Chain
	builder  *testutils.FakeTxBuilder
	resolver *resolving.Resolver
	flow     *flow.Flow
	model    *Model
}

func newFixture(t *testing.T, wallet recovery.Wallet) *fixture {
	log, _ := logtest.NewNullLogger()
	f := &fixture{
		chain:   testutils.NewChain(),
		builder: testutils.NewFakeTxBuilder(),
	}
	notifier := NewNotifier()
	session := recovery.NewSession(testutils.Terra2(), wallet)
	f.resolver = resolving.NewResolver(f.chain, notifier, log, nil)
	f.flow = flow.New(context.Background(), session, f.resolver, staking.NewReader(f.chain, log), notifier)
	actions := staking.NewActions(f.builder, testutils.NewFakeBroadcaster(), testutils.NewFakeConfirmer(), nil, log)
	f.model = New(context.Background(), f.flow, actions, notifier)
	t.Cleanup(func() {
		f.model.Close()
		f.flow.Close()
		f.flow.Wait()
		f.resolver.Wait()
	})
	return f
}

func (f *fixture) send(msg tea.Msg) tea.Cmd {
	_, cmd := f.model.Update(msg)
	f.flow.Wait()
	f.resolver.Wait()
	return cmd
}

func (f *fixture) mountToken() {
	f.chain.MountDAO(testutils.LionTreasury, testutils.TokenMembership, recovery.TokenMembershipContract, supported)
	f.chain.MountStake(testutils.TokenMembership, testutils.Alice, "1000000",
		[]map[string]interface{}{testutils.ClaimJSON(1, testutils.Alice, "250000", "1600000000000000000")},
		[]map[string]interface{}{testutils.ClaimJSON(2, testutils.Alice, "1500000", "1600000000000000000")},
	)
}

func keyPress(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_TokenPreset(t *testing.T) {
	f := newFixture(t, recovery.NewWatchOnly(testutils.Alice))
	f.mountToken()

	f.send(keyPress(tea.KeyF1))

	assert.Equal(t, testutils.LionTreasury.String(), f.model.treasury.Value())
	assert.Equal(t, recovery.KindToken, f.flow.Descriptor().Kind)

	view := f.model.View()
	assert.Contains(t, view, "Recover Assets from Enterprise")
	assert.Contains(t, view, "Token Recovery")
	assert.Contains(t, view, testutils.TokenMembership.String())
	assert.Contains(t, view, "Staked     1.0")
	assert.Contains(t, view, "Pending    0.25")
	assert.Contains(t, view, "Claimable  1.5")
	assert.Contains(t, view, "releases 2020-09-13T12:26:40Z")
	assert.NotContains(t, view, invalidAddressHint)
}

func TestModel_InvalidTreasury(t *testing.T) {
	f := newFixture(t, nil)

	f.send(runes("terra1bad"))

	assert.Equal(t, "terra1bad", f.flow.Treasury.Get())
	assert.Contains(t, f.model.View(), invalidAddressHint)
	assert.Empty(t, f.chain.Queries())
	assert.Equal(t, "Enter the address to inspect", f.model.subject.Placeholder)
}

func TestModel_NFTGuidance(t *testing.T) {
	f := newFixture(t, nil)
	f.chain.MountDAO(testutils.PixelionsTreasury, testutils.NFTMembership, recovery.NFTMembershipContract, supported)

	f.send(keyPress(tea.KeyF2))

	view := f.model.View()
	assert.Contains(t, view, "NFT Recovery")
	assert.Contains(t, view, "https://www.boostdao.io/ignite/permissionless-terra")
	assert.NotContains(t, view, "Token Recovery")
}

func TestModel_InspectAddress(t *testing.T) {
	f := newFixture(t, recovery.NewWatchOnly(testutils.Alice))
	f.mountToken()
	f.chain.MountStake(testutils.TokenMembership, testutils.Bob, "5", nil, nil)
	f.send(keyPress(tea.KeyF1))

	f.send(keyPress(tea.KeyTab))
	f.send(runes("terra1pylfndm04uey47uq6vs5lm7qm6cd6nf7qtyej"))
	assert.Equal(t, testutils.Alice, f.flow.Subject.Get())

	f.send(runes("r"))
	assert.Equal(t, testutils.Bob, f.flow.Subject.Get())
	assert.Equal(t, "5", f.flow.Stake.Value().Total.String())
}

func TestModel_Unstake(t *testing.T) {
	signer := testutils.SignerStub{}
	f := newFixture(t, recovery.NewKeyWallet(testutils.Alice, signer))
	f.mountToken()
	f.send(keyPress(tea.KeyF1))

	f.send(keyPress(tea.KeyF6))
	require.True(t, f.model.prompting)
	assert.Contains(t, f.model.View(), "Amount to unstake")

	f.send(runes("0.5"))
	cmd := f.send(keyPress(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.Equal(t, recovery.SubmissionUnstake, f.model.busy)

	done := cmd()
	require.IsType(t, actionDoneMsg{}, done)
	f.send(done)

	assert.Empty(t, f.model.busy)
	require.NotNil(t, f.model.toast)
	assert.Equal(t, toastSuccess, f.model.toast.level)
	assert.Equal(t, unstakeSucceeded+" (ABCDEF)", f.model.toast.text)
	assert.Len(t, f.builder.Builds(), 1)
	assert.Contains(t, f.model.View(), unstakeSucceeded)
}

func TestModel_UnstakeInvalidAmount(t *testing.T) {
	f := newFixture(t, recovery.NewKeyWallet(testutils.Alice, testutils.SignerStub{}))
	f.mountToken()
	f.send(keyPress(tea.KeyF1))

	f.send(keyPress(tea.KeyF6))
	f.send(runes("0.0000001"))
	cmd := f.send(keyPress(tea.KeyEnter))

	assert.Nil(t, cmd)
	assert.True(t, f.model.prompting)
	require.NotNil(t, f.model.toast)
	assert.Equal(t, toastError, f.model.toast.level)
	assert.Empty(t, f.builder.Builds())

	f.send(keyPress(tea.KeyEsc))
	assert.False(t, f.model.prompting)
}

func TestModel_ClaimWatchOnly(t *testing.T) {
	f := newFixture(t, recovery.NewWatchOnly(testutils.Alice))
	f.mountToken()
	f.send(keyPress(tea.KeyF1))

	cmd := f.send(keyPress(tea.KeyF7))
	require.NotNil(t, cmd)
	f.send(cmd())

	require.NotNil(t, f.model.toast)
	assert.Equal(t, toastError, f.model.toast.level)
	assert.Contains(t, f.model.toast.text, recovery.ErrAuthorization.Error())
	assert.Empty(t, f.builder.Builds())
}

func TestModel_ActionsNeedTokenMembership(t *testing.T) {
	f := newFixture(t, recovery.NewKeyWallet(testutils.Alice, testutils.SignerStub{}))

	assert.Nil(t, f.send(keyPress(tea.KeyF7)))
	f.send(keyPress(tea.KeyF6))
	assert.False(t, f.model.prompting)
}

func TestModel_NotifierToast(t *testing.T) {
	f := newFixture(t, nil)
	f.model.notifier.Warn("unsupported dao version 1.0.0")

	msg := f.model.notifier.wait()()
	cmd := f.send(msg)

	assert.NotNil(t, cmd)
	require.NotNil(t, f.model.toast)
	assert.Equal(t, toastWarn, f.model.toast.level)
	assert.Contains(t, f.model.View(), "unsupported dao version 1.0.0")
}
