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
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/frontier3tech/detfl/internal/app/recovery"
	"github.com/frontier3tech/detfl/internal/app/recovery/resolving"
	"github.com/frontier3tech/detfl/internal/app/recovery/staking"
	"github.com/frontier3tech/detfl/observability"
)

type outcomes struct {
	succeeded *observability.RecoveryMetrics
	failed    *observability.RecoveryMetrics
}

func makeOutcomes(obs *observability.Observability) outcomes {
	return outcomes{
		succeeded: observability.MakeRecoveryMetrics(obs, "succeeded"),
		failed:    observability.MakeRecoveryMetrics(obs, "failed"),
	}
}

func count(err error, succeeded, failed prometheus.Counter) {
	if err != nil {
		failed.Inc()
		return
	}
	succeeded.Inc()
}

type MeteredResolver struct {
	next *resolving.Resolver
	outcomes
}

func (r *MeteredResolver) Resolve(ctx context.Context, network *recovery.Network, treasury string) (recovery.MembershipDescriptor, error) {
	desc, err := r.next.Resolve(ctx, network, treasury)
	count(err, r.succeeded.Resolutions, r.failed.Resolutions)
	return desc, err
}

// Wait blocks until background version checks are done.
func (r *MeteredResolver) Wait() {
	r.next.Wait()
}

type MeteredReader struct {
	next *staking.Reader
	outcomes
}

func (r *MeteredReader) Read(ctx context.Context, network *recovery.Network, membership, subject recovery.Address) (recovery.StakeSnapshot, error) {
	snap, err := r.next.Read(ctx, network, membership, subject)
	count(err, r.succeeded.Reads, r.failed.Reads)
	return snap, err
}

// MeteredActions counts submissions and exposes how long the last
// successful one took from build to inclusion.
type MeteredActions struct {
	next *staking.Actions
	outcomes
	elapsed prometheus.Gauge
}

func (a *MeteredActions) Unstake(ctx context.Context, session *recovery.Session, membership, displayed recovery.Address, amount *big.Int) (string, error) {
	start := time.Now()
	hash, err := a.next.Unstake(ctx, session, membership, displayed, amount)
	count(err, a.succeeded.Unstakes, a.failed.Unstakes)
	a.observe(start, err)
	return hash, err
}

func (a *MeteredActions) Claim(ctx context.Context, session *recovery.Session, membership, displayed recovery.Address) (string, error) {
	start := time.Now()
	hash, err := a.next.Claim(ctx, session, membership, displayed)
	count(err, a.succeeded.Claims, a.failed.Claims)
	a.observe(start, err)
	return hash, err
}

func (a *MeteredActions) Stake(ctx context.Context, session *recovery.Session, token, membership recovery.Address, amount *big.Int) (string, error) {
	start := time.Now()
	hash, err := a.next.Stake(ctx, session, token, membership, amount)
	a.observe(start, err)
	return hash, err
}

func (a *MeteredActions) observe(start time.Time, err error) {
	if err == nil {
		a.elapsed.Set(time.Since(start).Seconds())
	}
}
