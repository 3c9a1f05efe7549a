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

package recovery

import (
	"github.com/frontier3tech/detfl/internal/pkg/async"
)

// Session carries the process-wide state of one recovery run: the active
// network, the connected wallet and the refresh signal shared by readers and
// actions.
type Session struct {
	Network *Network
	Wallet  Wallet
	Refresh *async.Counter
}

func NewSession(network *Network, wallet Wallet) *Session {
	return &Session{
		Network: network,
		Wallet:  wallet,
		Refresh: async.NewCounter(),
	}
}

// Account returns the connected address and signer. ok is false unless both exist.
func (s *Session) Account() (Address, Signer, bool) {
	if s == nil || s.Wallet == nil {
		return "", nil, false
	}
	addr, ok := s.Wallet.Address()
	if !ok {
		return "", nil, false
	}
	signer, ok := s.Wallet.Signer()
	if !ok {
		return addr, nil, false
	}
	return addr, signer, true
}

// WatchOnly is a wallet with an address and no signing capability. It lets a
// user inspect a position without being able to act on it.
type WatchOnly struct {
	address Address
}

func NewWatchOnly(address Address) WatchOnly {
	return WatchOnly{address: address}
}

func (w WatchOnly) Address() (Address, bool) {
	return w.address, !w.address.Empty()
}

func (w WatchOnly) Signer() (Signer, bool) {
	return nil, false
}

type KeyWallet struct {
	address Address
	signer  Signer
}

func NewKeyWallet(address Address, signer Signer) *KeyWallet {
	return &KeyWallet{address: address, signer: signer}
}

func (w *KeyWallet) Address() (Address, bool) {
	return w.address, !w.address.Empty()
}

func (w *KeyWallet) Signer() (Signer, bool) {
	return w.signer, w.signer != nil
}
