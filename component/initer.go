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
	"github.com/go-pg/pg"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/frontier3tech/detfl/configuration"
	"github.com/frontier3tech/detfl/internal/app/recovery"
	"github.com/frontier3tech/detfl/internal/app/recovery/postgres"
	"github.com/frontier3tech/detfl/internal/app/recovery/signer"
	"github.com/frontier3tech/detfl/internal/pkg/cycle"
)

// makeSession builds the network and the wallet. A configured key wins over
// a configured address; with neither the session has no wallet.
func makeSession(cfg *configuration.Configuration, log logrus.FieldLogger) (*recovery.Session, error) {
	network := cfg.Network.Build()
	var wallet recovery.Wallet
	switch {
	case cfg.Wallet.Key != "":
		key, err := signer.FromHex(cfg.Wallet.Key)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load wallet key")
		}
		kw, err := signer.Wallet(network, key)
		if err != nil {
			return nil, errors.Wrap(err, "failed to derive wallet address")
		}
		addr, _ := kw.Address()
		log.WithField("address", addr).Info("signing wallet connected")
		wallet = kw
	case cfg.Wallet.Address != "":
		addr, err := recovery.ParseAddress(network.Bech32Prefix, cfg.Wallet.Address)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load wallet address")
		}
		log.WithField("address", addr).Info("watch-only wallet connected")
		wallet = recovery.NewWatchOnly(addr)
	default:
		log.Info("no wallet configured, actions are disabled")
	}
	return recovery.NewSession(network, wallet), nil
}

// makeJournal waits for the journal database and checks that the
// submissions table exists. A nil db yields a nil journal.
func makeJournal(cfg configuration.DB, log logrus.FieldLogger, db *pg.DB) (recovery.Journal, error) {
	if db == nil {
		return nil, nil
	}
	err := cycle.UntilConnectionError(func() error {
		_, err := db.Exec("SELECT 1 FROM submissions LIMIT 1")
		return err
	}, cfg.AttemptInterval, cfg.Attempts, log)
	if err != nil {
		return nil, errors.Wrap(err, "journal db is not ready, run migrate first")
	}
	return postgres.NewJournal(log.WithField("component", "journal"), db), nil
}
