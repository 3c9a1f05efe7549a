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

package flow

import (
	"context"
	"strings"

	"github.com/frontier3tech/detfl/internal/app/recovery"
	"github.com/frontier3tech/detfl/internal/pkg/async"
)

type Preset struct {
	Name     string
	Treasury recovery.Address
}

// Presets are the DAOs offered as shortcuts.
var Presets = []Preset{
	{Name: "Lion DAO", Treasury: "terra17c6ts8grcfrgquhj3haclg44le8s7qkx6l2yx33acguxhpf000xqhnl3je"},
	{Name: "pixeLions DAO", Treasury: "terra1exj6fxvrg6xuukgx4l90ujg3vh6420540mdr6scrj62u2shk33sqnp0stl"},
}

type Resolver interface {
	Resolve(ctx context.Context, network *recovery.Network, treasury string) (recovery.MembershipDescriptor, error)
}

type StakeReader interface {
	Read(ctx context.Context, network *recovery.Network, membership, subject recovery.Address) (recovery.StakeSnapshot, error)
}

// Flow owns the reactive state of one recovery page. Treasury drives
// Membership; the committed descriptor, Subject and the session refresh
// counter drive Stake.
type Flow struct {
	Treasury   *async.Var[string]
	Subject    *async.Var[recovery.Address]
	Membership *async.Resource[recovery.MembershipDescriptor]
	Stake      *async.Resource[recovery.StakeSnapshot]

	session    *recovery.Session
	notifier   recovery.Notifier
	descriptor *async.Var[recovery.MembershipDescriptor]
	detach     []func()
}

func New(ctx context.Context, session *recovery.Session, resolver Resolver, reader StakeReader, notifier recovery.Notifier) *Flow {
	if notifier == nil {
		notifier = recovery.NopNotifier()
	}
	var subject recovery.Address
	if session.Wallet != nil {
		subject, _ = session.Wallet.Address()
	}

	f := &Flow{
		Treasury:   async.NewVar(""),
		Subject:    async.NewVar(subject),
		session:    session,
		notifier:   notifier,
		descriptor: async.NewVar(recovery.UnknownMembership()),
	}

	f.Membership = async.New(ctx, recovery.UnknownMembership(), func(ctx context.Context) (recovery.MembershipDescriptor, error) {
		treasury := f.Treasury.Get()
		if !f.validTreasury(treasury) {
			return recovery.UnknownMembership(), nil
		}
		return resolver.Resolve(ctx, session.Network, treasury)
	}, false)

	f.Stake = async.New(ctx, recovery.EmptySnapshot(), func(ctx context.Context) (recovery.StakeSnapshot, error) {
		desc := f.descriptor.Get()
		if desc.Kind != recovery.KindToken {
			return recovery.EmptySnapshot(), nil
		}
		return reader.Read(ctx, session.Network, desc.Address, f.Subject.Get())
	}, true)

	f.detach = append(f.detach,
		f.Membership.Subscribe(func(s async.Snapshot[recovery.MembershipDescriptor]) {
			if s.State == async.Pending {
				return
			}
			f.report(s.Err)
			f.descriptor.Set(s.Result)
		}),
		f.Stake.Subscribe(func(s async.Snapshot[recovery.StakeSnapshot]) {
			if s.State == async.Pending {
				return
			}
			f.report(s.Err)
		}),
	)

	f.Membership.DependOn(f.Treasury)
	f.Stake.DependOn(f.descriptor, f.Subject, session.Refresh)
	return f
}

// SetTreasury updates the treasury input and reports whether it is a valid
// address. Invalid input is kept, so it can be shown, but never resolved.
func (f *Flow) SetTreasury(raw string) bool {
	raw = strings.TrimSpace(raw)
	f.Treasury.Set(raw)
	return f.validTreasury(raw)
}

func (f *Flow) ValidTreasury() bool {
	return f.validTreasury(f.Treasury.Get())
}

// Descriptor returns the last committed membership descriptor.
func (f *Flow) Descriptor() recovery.MembershipDescriptor {
	return f.descriptor.Get()
}

func (f *Flow) Session() *recovery.Session {
	return f.session
}

// Refresh re-reads the stake without any chain write.
func (f *Flow) Refresh() {
	f.Stake.Notify()
}

// Wait blocks until the resolution and the stake read it triggered are done.
func (f *Flow) Wait() {
	f.Membership.Wait()
	f.Stake.Wait()
}

// Close tears the flow down. Completions arriving afterwards are dropped.
func (f *Flow) Close() {
	f.Membership.Close()
	f.Stake.Close()
	for _, detach := range f.detach {
		detach()
	}
}

func (f *Flow) validTreasury(raw string) bool {
	if f.session.Network == nil {
		return raw != ""
	}
	return recovery.IsValidAddress(f.session.Network.Bech32Prefix, raw)
}

func (f *Flow) report(err error) {
	if err != nil {
		f.notifier.Error(err)
	}
}
