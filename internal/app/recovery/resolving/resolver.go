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
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/frontier3tech/detfl/internal/app/recovery"
)

const defaultVersionCheckTimeout = 30 * time.Second

// Resolver walks from a treasury contract to the membership contract of an
// Enterprise DAO: treasury config -> admin, admin gov_config -> membership,
// membership cw2 info -> kind.
type Resolver struct {
	querier     recovery.Querier
	notifier    recovery.Notifier
	log         logrus.FieldLogger
	unsupported prometheus.Gauge

	versionTimeout time.Duration
	checks         sync.WaitGroup
}

// NewResolver creates a resolver. unsupported may be nil.
func NewResolver(querier recovery.Querier, notifier recovery.Notifier, log logrus.FieldLogger, unsupported prometheus.Gauge) *Resolver {
	if notifier == nil {
		notifier = recovery.NopNotifier()
	}
	return &Resolver{
		querier:        querier,
		notifier:       notifier,
		log:            log,
		unsupported:    unsupported,
		versionTimeout: defaultVersionCheckTimeout,
	}
}

// Resolve classifies the membership contract behind treasury. Empty or
// malformed input yields the Unknown descriptor without issuing any query.
// Failures of the discovery chain are ErrResolution errors and always come with
// the Unknown descriptor. The DAO version check runs in the background and
// never affects the result.
func (r *Resolver) Resolve(ctx context.Context, network *recovery.Network, treasury string) (recovery.MembershipDescriptor, error) {
	unknown := recovery.UnknownMembership()
	if network == nil {
		return unknown, recovery.ErrNetworkUnavailable
	}
	if treasury == "" {
		return unknown, nil
	}
	treasuryAddr, err := recovery.ParseAddress(network.Bech32Prefix, treasury)
	if err != nil {
		return unknown, nil
	}
	log := r.log.WithField("treasury", treasuryAddr)

	admin, err := r.adminContract(ctx, network, treasuryAddr)
	if err != nil {
		return unknown, err
	}
	membership, err := r.membershipContract(ctx, network, admin)
	if err != nil {
		return unknown, err
	}
	r.checkVersion(network, admin)

	meta, err := r.querier.ContractMetadata(ctx, network, membership)
	if err != nil {
		return unknown, recovery.Wrap(recovery.ErrResolution, err, "failed to query membership contract info")
	}
	if meta.Name == "" {
		log.WithField("membership", membership).Info("membership contract has no contract info")
		return unknown, nil
	}
	kind := recovery.ClassifyMembership(meta.Name)
	log.WithFields(logrus.Fields{
		"membership": membership,
		"contract":   meta.Name,
		"kind":       kind,
	}).Info("membership contract resolved")
	if kind == recovery.KindUnknown {
		return unknown, nil
	}
	return recovery.MembershipDescriptor{Kind: kind, Address: membership}, nil
}

// Wait blocks until all background version checks are done.
func (r *Resolver) Wait() {
	r.checks.Wait()
}

func (r *Resolver) adminContract(ctx context.Context, network *recovery.Network, treasury recovery.Address) (recovery.Address, error) {
	var cfg recovery.TreasuryConfig
	err := r.querier.SmartQuery(ctx, network, treasury, recovery.ConfigQuery(), &cfg)
	if err != nil {
		return "", recovery.Wrap(recovery.ErrResolution, err, "failed to query treasury config")
	}
	admin, err := recovery.ParseAddress(network.Bech32Prefix, cfg.Admin.String())
	if err != nil {
		return "", recovery.Wrap(recovery.ErrResolution, err, "treasury config has no admin contract")
	}
	return admin, nil
}

func (r *Resolver) membershipContract(ctx context.Context, network *recovery.Network, admin recovery.Address) (recovery.Address, error) {
	var cfg recovery.GovConfig
	err := r.querier.SmartQuery(ctx, network, admin, recovery.GovConfigQuery(), &cfg)
	if err != nil {
		return "", recovery.Wrap(recovery.ErrResolution, err, "failed to query governance config")
	}
	membership, err := recovery.ParseAddress(network.Bech32Prefix, cfg.DAOMembershipContract.String())
	if err != nil {
		return "", recovery.Wrap(recovery.ErrResolution, err, "governance config has no membership contract")
	}
	return membership, nil
}
