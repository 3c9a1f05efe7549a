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
	"encoding/json"
	"sync"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/frontier3tech/detfl/internal/app/recovery"
)

// Terra2 returns a network with the phoenix-1 parameters and no endpoints.
func Terra2() *recovery.Network {
	return &recovery.Network{
		Name:          "terra2",
		ChainID:       "phoenix-1",
		Bech32Prefix:  "terra",
		Denom:         "uluna",
		Decimals:      6,
		GasPrice:      decimal.RequireFromString("0.015"),
		GasAdjustment: 1.4,
	}
}

type Query struct {
	Contract recovery.Address
	Msg      string
}

// Chain is an in-memory recovery.Querier. Responses are registered per contract
// and per encoded query message; unregistered queries fail.
type Chain struct {
	mu       sync.Mutex
	smart    map[Query]json.RawMessage
	failures map[Query]error
	metadata map[recovery.Address]recovery.ContractMetadata
	metaErrs map[recovery.Address]error
	queries  []Query

	// Hook, when set, runs before every smart query is answered.
	Hook func(ctx context.Context, q Query)
}

func NewChain() *Chain {
	return &Chain{
		smart:    make(map[Query]json.RawMessage),
		failures: make(map[Query]error),
		metadata: make(map[recovery.Address]recovery.ContractMetadata),
		metaErrs: make(map[recovery.Address]error),
	}
}

func (c *Chain) OnSmart(contract recovery.Address, msg interface{}, response interface{}) {
	raw, err := json.Marshal(response)
	if err != nil {
		panic(err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	q := query(contract, msg)
	c.smart[q] = raw
	delete(c.failures, q)
}

func (c *Chain) FailSmart(contract recovery.Address, msg interface{}, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failures[query(contract, msg)] = err
}

func (c *Chain) SetMetadata(contract recovery.Address, name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.metadata[contract] = recovery.ContractMetadata{Name: name, Version: "1.2.1"}
	delete(c.metaErrs, contract)
}

func (c *Chain) FailMetadata(contract recovery.Address, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.metaErrs[contract] = err
}

// Queries returns every smart query issued so far, in order.
func (c *Chain) Queries() []Query {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Query, len(c.queries))
	copy(out, c.queries)
	return out
}

func (c *Chain) CountQueries(contract recovery.Address) int {
	n := 0
	for _, q := range c.Queries() {
		if q.Contract == contract {
			n++
		}
	}
	return n
}

func (c *Chain) SmartQuery(ctx context.Context, network *recovery.Network, contract recovery.Address, msg interface{}, out interface{}) error {
	q := query(contract, msg)
	c.mu.Lock()
	c.queries = append(c.queries, q)
	hook := c.Hook
	c.mu.Unlock()

	if hook != nil {
		hook(ctx, q)
	}

	c.mu.Lock()
	raw, ok := c.smart[q]
	failure := c.failures[q]
	c.mu.Unlock()

	if failure != nil {
		return failure
	}
	if !ok {
		return errors.Errorf("contract %s: no response for %s", contract, q.Msg)
	}
	return json.Unmarshal(raw, out)
}

func (c *Chain) ContractMetadata(ctx context.Context, network *recovery.Network, contract recovery.Address) (recovery.ContractMetadata, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.metaErrs[contract]; err != nil {
		return recovery.ContractMetadata{}, err
	}
	return c.metadata[contract], nil
}

func query(contract recovery.Address, msg interface{}) Query {
	raw, err := json.Marshal(msg)
	if err != nil {
		panic(err)
	}
	return Query{Contract: contract, Msg: string(raw)}
}

// Addresses used by the fixture DAO. All of them carry valid checksums.
const (
	LionTreasury       recovery.Address = "terra17c6ts8grcfrgquhj3haclg44le8s7qkx6l2yx33acguxhpf000xqhnl3je"
	PixelionsTreasury  recovery.Address = "terra1exj6fxvrg6xuukgx4l90ujg3vh6420540mdr6scrj62u2shk33sqnp0stl"
	AdminContract      recovery.Address = "terra1335hded4gyzpt00fpz75mms4m7ck02wgw07yhw9grahj4dzg4yvqnpdqfy"
	PixelionsAdmin     recovery.Address = "terra1hw5x58shnhrfktl5hyfsdggqfguv36u29qy50tv93naartmsh06q8dvuwr"
	EnterpriseContract recovery.Address = "terra1nwt6chnk0efe8ngwa5y63egmdumht6ar3aujtyl2q9hgh20fj6cq4rcnpl"
	TokenMembership    recovery.Address = "terra17eljps7tpt7tqr8ee6cxkuv0sgu0kanvu4slr7d0ufllaradwe4qyhmclv"
	NFTMembership      recovery.Address = "terra1tau6qxazkzj3d2tfwjlmy93f0fk3tpwyd858v66gevu6nkr38e6q6nvru3"
	OtherMembership    recovery.Address = "terra1szw0y5jk3feynw65jceumtzs95fcv5kkv03jf4knfymqtq2ea6ysmnyjc5"
	Alice              recovery.Address = "terra1peacc03m072wmq2n3ftg5eqgc6x4wdwmyk6nt3"
	Bob                recovery.Address = "terra1pylfndm04uey47uq6vs5lm7qm6cd6nf7qtyejr"
)

// MountDAO registers the discovery chain treasury -> AdminContract ->
// membership, the version check through EnterpriseContract and the cw2 name of
// membership. An empty contractName leaves the membership without cw2 info.
func (c *Chain) MountDAO(treasury, membership recovery.Address, contractName string, version recovery.Version) {
	c.MountDAOWithAdmin(treasury, AdminContract, membership, contractName, version)
}

func (c *Chain) MountDAOWithAdmin(treasury, admin, membership recovery.Address, contractName string, version recovery.Version) {
	c.OnSmart(treasury, recovery.ConfigQuery(), map[string]interface{}{
		"admin":               admin,
		"enterprise_contract": EnterpriseContract,
	})
	c.OnSmart(admin, recovery.GovConfigQuery(), map[string]interface{}{
		"gov_config":              map[string]interface{}{"vote_duration": 604800},
		"dao_membership_contract": membership,
	})
	c.OnSmart(admin, recovery.ConfigQuery(), map[string]interface{}{
		"enterprise_contract": EnterpriseContract,
	})
	c.OnSmart(EnterpriseContract, recovery.DAOInfoQuery(), map[string]interface{}{
		"dao_version": version,
	})
	if contractName != "" {
		c.SetMetadata(membership, contractName)
	}
}

// MountStake registers the three stake queries of user on membership.
func (c *Chain) MountStake(membership, user recovery.Address, weight string, pending, releasable []map[string]interface{}) {
	if pending == nil {
		pending = []map[string]interface{}{}
	}
	if releasable == nil {
		releasable = []map[string]interface{}{}
	}
	c.OnSmart(membership, recovery.UserWeightQuery(user), map[string]interface{}{
		"user":   user,
		"weight": weight,
	})
	c.OnSmart(membership, recovery.ClaimsQuery(user), map[string]interface{}{"claims": pending})
	c.OnSmart(membership, recovery.ReleasableClaimsQuery(user), map[string]interface{}{"claims": releasable})
}

// ClaimJSON builds a claim in the contract encoding with a timestamp release.
func ClaimJSON(id int, user recovery.Address, amount string, releaseNanos string) map[string]interface{} {
	return map[string]interface{}{
		"id":         id,
		"user":       user,
		"amount":     amount,
		"release_at": map[string]interface{}{"timestamp": releaseNanos},
	}
}
