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
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/frontier3tech/detfl/configuration"
	"github.com/frontier3tech/detfl/connectivity"
	"github.com/frontier3tech/detfl/internal/app/recovery"
	"github.com/frontier3tech/detfl/internal/app/recovery/lcd"
	"github.com/frontier3tech/detfl/internal/app/recovery/resolving"
	"github.com/frontier3tech/detfl/internal/app/recovery/staking"
	"github.com/frontier3tech/detfl/internal/app/recovery/store"
	"github.com/frontier3tech/detfl/observability"
)

// Manager wires one recovery pipeline: session, chain clients, journal and
// the metrics router. Every front end builds exactly one.
type Manager struct {
	cfg *configuration.Configuration
	obs *observability.Observability
	log logrus.FieldLogger

	session  *recovery.Session
	resolver *MeteredResolver
	reader   *MeteredReader
	actions  *MeteredActions
	journal  recovery.Journal

	router *Router
	stop   func()
}

// Prepare builds the pipeline. notifier receives version warnings of the
// resolver; nil falls back to the log.
func Prepare(cfg *configuration.Configuration, obs *observability.Observability, notifier recovery.Notifier) (*Manager, error) {
	log := obs.Log()
	if notifier == nil {
		notifier = recovery.NewLogNotifier(log)
	}

	conn, err := connectivity.Make(cfg, obs)
	if err != nil {
		return nil, err
	}

	session, err := makeSession(cfg, log)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	journal, err := makeJournal(cfg.DB, log, conn.PG())
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	var querier recovery.Querier = conn.LCD()
	if cfg.Query.CacheSize > 0 {
		cached, err := store.NewCachedQuerier(querier, cfg.Query.CacheSize)
		if err != nil {
			_ = conn.Close()
			return nil, errors.Wrap(err, "failed to init metadata cache")
		}
		querier = cached
	}

	common := observability.MakeCommonMetrics(obs)
	out := makeOutcomes(obs)
	router := NewRouter(cfg.API.Router, obs)

	m := &Manager{
		cfg:     cfg,
		obs:     obs,
		log:     log,
		session: session,
		journal: journal,
		router:  router,
		stop:    makeStopper(obs, conn, router),
	}
	m.resolver = &MeteredResolver{
		next:     resolving.NewResolver(querier, notifier, log.WithField("component", "resolver"), common.DAOVersionUnsupported),
		outcomes: out,
	}
	m.reader = &MeteredReader{
		next:     staking.NewReader(querier, log.WithField("component", "reader")),
		outcomes: out,
	}
	m.actions = &MeteredActions{
		next: staking.NewActions(
			lcd.NewTxBuilder(conn.LCD(), log.WithField("component", "tx")),
			lcd.NewBroadcaster(conn.LCD(), log.WithField("component", "broadcast")),
			conn.Confirmer(),
			journal,
			log.WithField("component", "actions"),
		),
		outcomes: out,
		elapsed:  common.ConfirmationTime,
	}
	return m, nil
}

// Start serves the health check and metrics router.
func (m *Manager) Start() {
	m.router.Start()
}

func (m *Manager) Stop() {
	m.resolver.Wait()
	m.stop()
}

func (m *Manager) Log() logrus.FieldLogger {
	return m.log
}

func (m *Manager) Session() *recovery.Session {
	return m.session
}

func (m *Manager) Resolver() *MeteredResolver {
	return m.resolver
}

func (m *Manager) Reader() *MeteredReader {
	return m.reader
}

func (m *Manager) Actions() *MeteredActions {
	return m.actions
}

// Journal is nil when the journal is disabled.
func (m *Manager) Journal() recovery.Journal {
	return m.journal
}
