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

package testutils

import (
	"context"
	"sync"
	"time"

	"github.com/frontier3tech/detfl/internal/app/recovery"
)

type FakeTxBuilder struct {
	BuildFunc       func(ctx context.Context, network *recovery.Network, signer recovery.Signer, msg recovery.ExecuteMsg) (*recovery.UnsignedTx, error)
	EstimateGasFunc func(ctx context.Context, network *recovery.Network, tx *recovery.UnsignedTx) error
	SignFunc        func(ctx context.Context, network *recovery.Network, signer recovery.Signer, tx *recovery.UnsignedTx) (*recovery.SignedTx, error)

	mu     sync.Mutex
	builds []recovery.ExecuteMsg
}

// NewTxBuilderMock returns a builder whose every stage succeeds.
func NewFakeTxBuilder() *FakeTxBuilder {
	return &FakeTxBuilder{
		BuildFunc: func(_ context.Context, network *recovery.Network, _ recovery.Signer, msg recovery.ExecuteMsg) (*recovery.UnsignedTx, error) {
			return &recovery.UnsignedTx{Msg: msg, ChainID: network.ChainID}, nil
		},
		EstimateGasFunc: func(context.Context, *recovery.Network, *recovery.UnsignedTx) error {
			return nil
		},
		SignFunc: func(context.Context, *recovery.Network, recovery.Signer, *recovery.UnsignedTx) (*recovery.SignedTx, error) {
			return &recovery.SignedTx{TxBytes: []byte("tx"), Hash: "ABCDEF"}, nil
		},
	}
}

func (m *FakeTxBuilder) Build(ctx context.Context, network *recovery.Network, signer recovery.Signer, msg recovery.ExecuteMsg) (*recovery.UnsignedTx, error) {
	m.mu.Lock()
	m.builds = append(m.builds, msg)
	m.mu.Unlock()
	return m.BuildFunc(ctx, network, signer, msg)
}

func (m *FakeTxBuilder) EstimateGas(ctx context.Context, network *recovery.Network, tx *recovery.UnsignedTx) error {
	return m.EstimateGasFunc(ctx, network, tx)
}

func (m *FakeTxBuilder) Sign(ctx context.Context, network *recovery.Network, signer recovery.Signer, tx *recovery.UnsignedTx) (*recovery.SignedTx, error) {
	return m.SignFunc(ctx, network, signer, tx)
}

func (m *FakeTxBuilder) Builds() []recovery.ExecuteMsg {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]recovery.ExecuteMsg, len(m.builds))
	copy(out, m.builds)
	return out
}

type FakeBroadcaster struct {
	BroadcastFunc func(ctx context.Context, network *recovery.Network, tx *recovery.SignedTx) (string, error)

	mu    sync.Mutex
	count int
}

func NewFakeBroadcaster() *FakeBroadcaster {
	return &FakeBroadcaster{
		BroadcastFunc: func(_ context.Context, _ *recovery.Network, tx *recovery.SignedTx) (string, error) {
			return tx.Hash, nil
		},
	}
}

func (m *FakeBroadcaster) Broadcast(ctx context.Context, network *recovery.Network, tx *recovery.SignedTx) (string, error) {
	m.mu.Lock()
	m.count++
	m.mu.Unlock()
	return m.BroadcastFunc(ctx, network, tx)
}

func (m *FakeBroadcaster) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.count
}

type FakeConfirmer struct {
	AwaitTxFunc func(ctx context.Context, network *recovery.Network, hash string, timeout time.Duration) error
}

func NewFakeConfirmer() *FakeConfirmer {
	return &FakeConfirmer{
		AwaitTxFunc: func(context.Context, *recovery.Network, string, time.Duration) error {
			return nil
		},
	}
}

func (m *FakeConfirmer) AwaitTx(ctx context.Context, network *recovery.Network, hash string, timeout time.Duration) error {
	return m.AwaitTxFunc(ctx, network, hash, timeout)
}

// NotifierMock records every notification.
type NotifierMock struct {
	mu        sync.Mutex
	successes []string
	warnings  []string
	errs      []error
}

func (m *NotifierMock) Success(msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.successes = append(m.successes, msg)
}

func (m *NotifierMock) Warn(msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warnings = append(m.warnings, msg)
}

func (m *NotifierMock) Error(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errs = append(m.errs, err)
}

func (m *NotifierMock) Successes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.successes...)
}

func (m *NotifierMock) Warnings() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.warnings...)
}

func (m *NotifierMock) Errors() []error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]error(nil), m.errs...)
}

// MemoryJournal keeps submissions in memory, keyed by ID.
type MemoryJournal struct {
	mu      sync.Mutex
	order   []recovery.Submission
	SaveErr error
}

func (m *MemoryJournal) Save(_ context.Context, s *recovery.Submission) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.order {
		if m.order[i].ID == s.ID {
			m.order[i] = *s
			return nil
		}
	}
	m.order = append(m.order, *s)
	return nil
}

func (m *MemoryJournal) List(_ context.Context, limit int) ([]recovery.Submission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]recovery.Submission, 0, len(m.order))
	for i := len(m.order) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.order[i])
	}
	return out, nil
}

type SignerStub struct{}

func (SignerStub) PubKey() []byte {
	return append([]byte{0x02}, make([]byte, 32)...)
}

func (SignerStub) Sign(context.Context, []byte) ([]byte, error) {
	return make([]byte, 64), nil
}
