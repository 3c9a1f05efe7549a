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

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/frontier3tech/detfl/internal/app/recovery"
)

type Reader struct {
	querier recovery.Querier
	log     logrus.FieldLogger
}

func NewReader(querier recovery.Querier, log logrus.FieldLogger) *Reader {
	return &Reader{querier: querier, log: log}
}

// Read queries the stake of subject in a token membership contract. Without a
// membership contract or a subject the empty snapshot is returned and nothing
// is queried. The weight, claims and releasable claims queries run
// concurrently; the read fails as a whole when any of them fails.
func (r *Reader) Read(ctx context.Context, network *recovery.Network, membership, subject recovery.Address) (recovery.StakeSnapshot, error) {
	if membership.Empty() || subject.Empty() {
		return recovery.EmptySnapshot(), nil
	}
	if network == nil {
		return recovery.StakeSnapshot{}, recovery.ErrNetworkUnavailable
	}

	var (
		weight     recovery.UserWeight
		pending    recovery.ClaimsResponse
		releasable recovery.ClaimsResponse
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := r.querier.SmartQuery(gctx, network, membership, recovery.UserWeightQuery(subject), &weight)
		return recovery.Wrap(recovery.ErrRead, err, "failed to query user weight")
	})
	g.Go(func() error {
		err := r.querier.SmartQuery(gctx, network, membership, recovery.ClaimsQuery(subject), &pending)
		return recovery.Wrap(recovery.ErrRead, err, "failed to query claims")
	})
	g.Go(func() error {
		err := r.querier.SmartQuery(gctx, network, membership, recovery.ReleasableClaimsQuery(subject), &releasable)
		return recovery.Wrap(recovery.ErrRead, err, "failed to query releasable claims")
	})
	if err := g.Wait(); err != nil {
		return recovery.StakeSnapshot{}, err
	}

	snap := recovery.StakeSnapshot{
		Total:     weight.Weight.Int(),
		Pending:   nonNil(pending.Claims),
		Claimable: nonNil(releasable.Claims),
	}
	r.log.WithFields(logrus.Fields{
		"membership": membership,
		"subject":    subject,
		"total":      snap.Total,
		"pending":    len(snap.Pending),
		"claimable":  len(snap.Claimable),
	}).Debug("stake read")
	return snap, nil
}

func nonNil(claims []recovery.Claim) []recovery.Claim {
	if claims == nil {
		return []recovery.Claim{}
	}
	return claims
}
