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
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/frontier3tech/detfl/internal/app/recovery"
)

// Actions submits unstake and claim transactions to a token membership
// contract and bumps the session refresh counter once a transaction is included.
// Stake is a development helper that stakes cw20 tokens for the wallet itself.
type Actions struct {
	builder     recovery.TxBuilder
	broadcaster recovery.Broadcaster
	confirmer   recovery.Confirmer
	journal     recovery.Journal
	log         logrus.FieldLogger

	timeout time.Duration
	now     func() time.Time
}

// NewActions creates the action set. journal may be nil.
func NewActions(
	builder recovery.TxBuilder,
	broadcaster recovery.Broadcaster,
	confirmer recovery.Confirmer,
	journal recovery.Journal,
	log logrus.FieldLogger,
) *Actions {
	return &Actions{
		builder:     builder,
		broadcaster: broadcaster,
		confirmer:   confirmer,
		journal:     journal,
		log:         log,
		timeout:     recovery.ConfirmationTimeout,
		now:         time.Now,
	}
}

// Unstake requests amount base units back from membership. displayed is the
// address whose stake the caller shows; it must be the connected wallet.
func (a *Actions) Unstake(ctx context.Context, session *recovery.Session, membership, displayed recovery.Address, amount *big.Int) (string, error) {
	sender, signer, err := authorize(session, displayed)
	if err != nil {
		return "", err
	}
	if amount == nil || amount.Sign() <= 0 {
		return "", recovery.Errorf(recovery.ErrInvalidInput, "unstake amount must be positive")
	}
	return a.submit(ctx, session, signer, submission{
		kind:       recovery.SubmissionUnstake,
		sender:     sender,
		membership: membership,
		amount:     amount,
		payload:    recovery.UnstakePayload(amount),
	})
}

// Claim releases every releasable claim of displayed.
func (a *Actions) Claim(ctx context.Context, session *recovery.Session, membership, displayed recovery.Address) (string, error) {
	sender, signer, err := authorize(session, displayed)
	if err != nil {
		return "", err
	}
	return a.submit(ctx, session, signer, submission{
		kind:       recovery.SubmissionClaim,
		sender:     sender,
		membership: membership,
		payload:    recovery.ClaimPayload(),
	})
}

// Lion DAO development defaults for Stake.
const (
	DevToken      recovery.Address = "terra1lxx40s29qvkrcj8fsa3yzyehy7w50umdvvnls2r830rys6lu2zns63eelv"
	DevMembership recovery.Address = "terra1fv92cnlenl8am5vpcamsxpr6l7y9ytpvlhery9ncy95jjxh8pmlsass2rq"
)

// DevStakeAmount is the stake Stake sends when amount is nil: 1 token at 6 decimals.
var DevStakeAmount = big.NewInt(1000000)

// Stake sends amount of token to membership with a stake hook for the
// connected wallet. A nil amount stakes DevStakeAmount.
func (a *Actions) Stake(ctx context.Context, session *recovery.Session, token, membership recovery.Address, amount *big.Int) (string, error) {
	sender, signer, ok := session.Account()
	if !ok {
		return "", recovery.Errorf(recovery.ErrAuthorization, "no wallet with signing capability connected")
	}
	if amount == nil {
		amount = DevStakeAmount
	}
	if amount.Sign() <= 0 {
		return "", recovery.Errorf(recovery.ErrInvalidInput, "stake amount must be positive")
	}
	if token.Empty() {
		return "", recovery.Errorf(recovery.ErrInvalidInput, "no token contract")
	}
	payload, err := recovery.StakePayload(membership, sender, amount)
	if err != nil {
		return "", recovery.Wrap(recovery.ErrSubmission, err, "failed to build stake hook")
	}
	return a.submit(ctx, session, signer, submission{
		kind:       recovery.SubmissionStake,
		sender:     sender,
		membership: membership,
		target:     token,
		amount:     amount,
		payload:    payload,
	})
}

func authorize(session *recovery.Session, displayed recovery.Address) (recovery.Address, recovery.Signer, error) {
	sender, signer, ok := session.Account()
	if !ok {
		return "", nil, recovery.Errorf(recovery.ErrAuthorization, "no wallet with signing capability connected")
	}
	if sender != displayed {
		return "", nil, recovery.Errorf(recovery.ErrAuthorization, "wallet %s cannot act for %s", sender, displayed)
	}
	return sender, signer, nil
}

type submission struct {
	kind       recovery.SubmissionKind
	sender     recovery.Address
	membership recovery.Address
	target     recovery.Address
	amount     *big.Int
	payload    recovery.ExecutePayload
}

// contract is the message recipient: target when set, else membership.
func (s submission) contract() recovery.Address {
	if !s.target.Empty() {
		return s.target
	}
	return s.membership
}

func (a *Actions) submit(ctx context.Context, session *recovery.Session, signer recovery.Signer, s submission) (string, error) {
	network := session.Network
	if network == nil {
		return "", recovery.ErrNetworkUnavailable
	}
	if s.membership.Empty() {
		return "", recovery.Errorf(recovery.ErrInvalidInput, "no membership contract")
	}
	log := a.log.WithFields(logrus.Fields{
		"action":     s.kind,
		"membership": s.membership,
		"sender":     s.sender,
	})

	msg, err := recovery.NewExecuteMsg(s.sender, s.contract(), s.payload)
	if err != nil {
		return "", recovery.Wrap(recovery.ErrSubmission, err, "failed to build message")
	}
	tx, err := a.builder.Build(ctx, network, signer, msg)
	if err != nil {
		return "", recovery.Wrap(recovery.ErrSubmission, err, "failed to build transaction")
	}
	if err := a.builder.EstimateGas(ctx, network, tx); err != nil {
		return "", recovery.Wrap(recovery.ErrSubmission, err, "failed to estimate gas")
	}
	signed, err := a.builder.Sign(ctx, network, signer, tx)
	if err != nil {
		return "", recovery.Wrap(recovery.ErrSubmission, err, "failed to sign transaction")
	}
	hash, err := a.broadcaster.Broadcast(ctx, network, signed)
	if err != nil {
		return "", recovery.Wrap(recovery.ErrSubmission, err, "failed to broadcast transaction")
	}
	log = log.WithField("tx_hash", hash)
	log.Info("transaction broadcast")

	entry := a.submitted(ctx, log, s, hash)
	err = a.confirmer.AwaitTx(ctx, network, hash, a.timeout)
	if err != nil && !errors.Is(err, recovery.ErrConfirmationTimeout) {
		err = recovery.Wrap(recovery.ErrSubmission, err, "transaction failed")
	}
	a.settled(ctx, log, entry, err)
	if err != nil {
		log.WithError(err).Error("transaction not confirmed")
		return hash, err
	}

	log.Info("transaction confirmed")
	session.Refresh.Bump()
	return hash, nil
}

// submitted journals a broadcast transaction. Journal failures are logged and
// never fail the action.
func (a *Actions) submitted(ctx context.Context, log logrus.FieldLogger, s submission, hash string) *recovery.Submission {
	if a.journal == nil {
		return nil
	}
	now := a.now().UTC()
	entry := &recovery.Submission{
		ID:        uuid.New(),
		Kind:      s.kind,
		Contract:  s.contract(),
		Sender:    s.sender,
		Amount:    s.amount,
		TxHash:    hash,
		Status:    recovery.StatusSubmitted,
		CreatedAt: now,
		UpdatedAt: now,
	}
	a.save(ctx, log, entry)
	return entry
}

func (a *Actions) settled(ctx context.Context, log logrus.FieldLogger, entry *recovery.Submission, outcome error) {
	if entry == nil {
		return
	}
	switch {
	case outcome == nil:
		entry.Status = recovery.StatusConfirmed
	case errors.Is(outcome, recovery.ErrConfirmationTimeout):
		entry.Status = recovery.StatusTimeout
		entry.Error = outcome.Error()
	default:
		entry.Status = recovery.StatusFailed
		entry.Error = outcome.Error()
	}
	entry.UpdatedAt = a.now().UTC()
	a.save(ctx, log, entry)
}

func (a *Actions) save(ctx context.Context, log logrus.FieldLogger, entry *recovery.Submission) {
	if err := a.journal.Save(ctx, entry); err != nil {
		log.WithError(err).Warn("failed to journal submission")
	}
}
