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

package api

import (
	"context"
	"math/big"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/frontier3tech/detfl/internal/app/recovery"
)

const (
	defaultLimit = 50
	maxLimit     = 1000
)

type Resolver interface {
	Resolve(ctx context.Context, network *recovery.Network, treasury string) (recovery.MembershipDescriptor, error)
}

type StakeReader interface {
	Read(ctx context.Context, network *recovery.Network, membership, subject recovery.Address) (recovery.StakeSnapshot, error)
}

type Actions interface {
	Unstake(ctx context.Context, session *recovery.Session, membership, displayed recovery.Address, amount *big.Int) (string, error)
	Claim(ctx context.Context, session *recovery.Session, membership, displayed recovery.Address) (string, error)
}

// RecoveryServer serves the recovery pipeline over HTTP. The session wallet is
// the only account that can submit transactions.
type RecoveryServer struct {
	log      logrus.FieldLogger
	session  *recovery.Session
	resolver Resolver
	reader   StakeReader
	actions  Actions
	journal  recovery.Journal
}

// NewRecoveryServer creates the server. A nil journal disables the submissions route.
func NewRecoveryServer(
	log logrus.FieldLogger,
	session *recovery.Session,
	resolver Resolver,
	reader StakeReader,
	actions Actions,
	journal recovery.Journal,
) *RecoveryServer {
	return &RecoveryServer{
		log:      log,
		session:  session,
		resolver: resolver,
		reader:   reader,
		actions:  actions,
		journal:  journal,
	}
}

func (s *RecoveryServer) GetMembership(ctx echo.Context, address string) error {
	network := s.session.Network
	treasury, err := s.parse(address)
	if err != nil {
		return s.fail(ctx, err)
	}
	descriptor, err := s.resolver.Resolve(ctx.Request().Context(), network, treasury.String())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, MembershipToAPI(descriptor))
}

func (s *RecoveryServer) GetStake(ctx echo.Context, contract string, user string) error {
	network := s.session.Network
	membership, err := s.parse(contract)
	if err != nil {
		return s.fail(ctx, err)
	}
	subject, err := s.parse(user)
	if err != nil {
		return s.fail(ctx, err)
	}
	snapshot, err := s.reader.Read(ctx.Request().Context(), network, membership, subject)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, StakeToAPI(membership, subject, snapshot, network.Decimals))
}

func (s *RecoveryServer) Unstake(ctx echo.Context, contract string) error {
	membership, err := s.parse(contract)
	if err != nil {
		return s.fail(ctx, err)
	}
	req := RequestUnstake{}
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, NewSingleMessageError("invalid request body"))
	}
	subject, err := s.parse(req.Subject)
	if err != nil {
		return s.fail(ctx, err)
	}
	amount, err := recovery.ParseUnits(req.Amount, s.session.Network.Decimals)
	if err != nil {
		return s.fail(ctx, err)
	}

	hash, err := s.actions.Unstake(ctx.Request().Context(), s.session, membership, subject, amount)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, ResponseTx{TxHash: hash})
}

func (s *RecoveryServer) Claim(ctx echo.Context, contract string) error {
	membership, err := s.parse(contract)
	if err != nil {
		return s.fail(ctx, err)
	}
	req := RequestClaim{}
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, NewSingleMessageError("invalid request body"))
	}
	subject, err := s.parse(req.Subject)
	if err != nil {
		return s.fail(ctx, err)
	}

	hash, err := s.actions.Claim(ctx.Request().Context(), s.session, membership, subject)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, ResponseTx{TxHash: hash})
}

func (s *RecoveryServer) GetSubmissions(ctx echo.Context, params GetSubmissionsParams) error {
	if s.journal == nil {
		return ctx.JSON(http.StatusNotFound, NewSingleMessageError("submission journal is disabled"))
	}
	if s.session.Network == nil {
		return s.fail(ctx, recovery.ErrNetworkUnavailable)
	}
	if params.Limit <= 0 || params.Limit > maxLimit {
		return ctx.JSON(http.StatusBadRequest, NewSingleMessageError("`limit` should be in range [1, 1000]"))
	}
	list, err := s.journal.List(ctx.Request().Context(), params.Limit)
	if err != nil {
		s.log.Error(err)
		return ctx.JSON(http.StatusInternalServerError, struct{}{})
	}
	res := make([]ResponseSubmission, 0, len(list))
	for _, sub := range list {
		res = append(res, SubmissionToAPI(sub, s.session.Network.Decimals))
	}
	return ctx.JSON(http.StatusOK, res)
}

func (s *RecoveryServer) parse(raw string) (recovery.Address, error) {
	if s.session.Network == nil {
		return "", recovery.ErrNetworkUnavailable
	}
	return recovery.ParseAddress(s.session.Network.Bech32Prefix, raw)
}

func (s *RecoveryServer) fail(ctx echo.Context, err error) error {
	code := statusOf(err)
	if code >= http.StatusInternalServerError {
		s.log.WithField("path", ctx.Path()).Error(err)
	}
	return ctx.JSON(code, NewErrorMessage(err))
}
