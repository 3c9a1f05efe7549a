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
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/pkg/errors"
)

type empty struct{}

type UserQuery struct {
	User Address `json:"user"`
}

// QueryMsg is the union of smart queries sent to Enterprise contracts. Exactly
// one field is set; the encoding reproduces the contract schema key for key.
type QueryMsg struct {
	Config           *empty     `json:"config,omitempty"`
	GovConfig        *empty     `json:"gov_config,omitempty"`
	DAOInfo          *empty     `json:"dao_info,omitempty"`
	UserWeight       *UserQuery `json:"user_weight,omitempty"`
	Claims           *UserQuery `json:"claims,omitempty"`
	ReleasableClaims *UserQuery `json:"releasable_claims,omitempty"`
}

func ConfigQuery() QueryMsg {
	return QueryMsg{Config: &empty{}}
}

func GovConfigQuery() QueryMsg {
	return QueryMsg{GovConfig: &empty{}}
}

func DAOInfoQuery() QueryMsg {
	return QueryMsg{DAOInfo: &empty{}}
}

func UserWeightQuery(user Address) QueryMsg {
	return QueryMsg{UserWeight: &UserQuery{User: user}}
}

func ClaimsQuery(user Address) QueryMsg {
	return QueryMsg{Claims: &UserQuery{User: user}}
}

func ReleasableClaimsQuery(user Address) QueryMsg {
	return QueryMsg{ReleasableClaims: &UserQuery{User: user}}
}

type UnstakeMsg struct {
	Amount string `json:"amount"`
}

// SendMsg is a cw20 send. Msg is the JSON hook delivered to Contract, carried
// base64 encoded.
type SendMsg struct {
	Contract Address `json:"contract"`
	Amount   string  `json:"amount"`
	Msg      []byte  `json:"msg"`
}

// StakeHook is the receive hook a token membership contract accepts from its
// cw20 token.
type StakeHook struct {
	Stake *UserQuery `json:"stake"`
}

// ExecutePayload is the union of execute messages sent to a membership
// contract or, for Send, to its cw20 token.
type ExecutePayload struct {
	Unstake *UnstakeMsg `json:"unstake,omitempty"`
	Claim   *empty      `json:"claim,omitempty"`
	Send    *SendMsg    `json:"send,omitempty"`
}

func UnstakePayload(amount *big.Int) ExecutePayload {
	return ExecutePayload{Unstake: &UnstakeMsg{Amount: amount.String()}}
}

func ClaimPayload() ExecutePayload {
	return ExecutePayload{Claim: &empty{}}
}

// StakePayload sends amount of the cw20 token to membership and stakes it for user.
func StakePayload(membership, user Address, amount *big.Int) (ExecutePayload, error) {
	hook, err := json.Marshal(StakeHook{Stake: &UserQuery{User: user}})
	if err != nil {
		return ExecutePayload{}, errors.Wrap(err, "failed to encode stake hook")
	}
	return ExecutePayload{Send: &SendMsg{Contract: membership, Amount: amount.String(), Msg: hook}}, nil
}

// ExecuteMsg is a MsgExecuteContract without funds.
type ExecuteMsg struct {
	Sender   Address
	Contract Address
	Msg      json.RawMessage
}

func NewExecuteMsg(sender, contract Address, payload ExecutePayload) (ExecuteMsg, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return ExecuteMsg{}, errors.Wrap(err, "failed to encode execute message")
	}
	return ExecuteMsg{Sender: sender, Contract: contract, Msg: raw}, nil
}

// treasury {"config":{}}
type TreasuryConfig struct {
	Admin Address `json:"admin"`
}

// governance controller {"config":{}}
type AdminConfig struct {
	EnterpriseContract Address `json:"enterprise_contract"`
}

// governance controller {"gov_config":{}}
type GovConfig struct {
	DAOMembershipContract Address `json:"dao_membership_contract"`
}

type Version struct {
	Major uint64 `json:"major"`
	Minor uint64 `json:"minor"`
	Patch uint64 `json:"patch"`
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// enterprise {"dao_info":{}}
type DAOInfo struct {
	DAOVersion Version `json:"dao_version"`
}

type UserWeight struct {
	User   Address `json:"user"`
	Weight Uint128 `json:"weight"`
}

type ClaimsResponse struct {
	Claims []Claim `json:"claims"`
}
