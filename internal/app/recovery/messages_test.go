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
	"encoding/base64"
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryMsg_Encoding(t *testing.T) {
	user := Address("terra1peacc03m072wmq2n3ftg5eqgc6x4wdwmyk6nt3")
	for expected, msg := range map[string]interface{}{
		`{"config":{}}`:     ConfigQuery(),
		`{"gov_config":{}}`: GovConfigQuery(),
		`{"dao_info":{}}`:   DAOInfoQuery(),
		`{"user_weight":{"user":"terra1peacc03m072wmq2n3ftg5eqgc6x4wdwmyk6nt3"}}`:       UserWeightQuery(user),
		`{"claims":{"user":"terra1peacc03m072wmq2n3ftg5eqgc6x4wdwmyk6nt3"}}`:            ClaimsQuery(user),
		`{"releasable_claims":{"user":"terra1peacc03m072wmq2n3ftg5eqgc6x4wdwmyk6nt3"}}`: ReleasableClaimsQuery(user),
		`{"unstake":{"amount":"1500000"}}`: UnstakePayload(big.NewInt(1500000)),
		`{"claim":{}}`:                     ClaimPayload(),
	} {
		out, err := json.Marshal(msg)
		require.NoError(t, err)
		assert.Equal(t, expected, string(out))
	}
}

func TestNewExecuteMsg(t *testing.T) {
	msg, err := NewExecuteMsg("terra1sender", "terra1contract", ClaimPayload())
	require.NoError(t, err)
	assert.Equal(t, Address("terra1sender"), msg.Sender)
	assert.Equal(t, Address("terra1contract"), msg.Contract)
	assert.JSONEq(t, `{"claim":{}}`, string(msg.Msg))
}

func TestStakePayload(t *testing.T) {
	payload, err := StakePayload("terra1membership", "terra1user", big.NewInt(1000000))
	require.NoError(t, err)

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	var decoded struct {
		Send struct {
			Contract string `json:"contract"`
			Amount   string `json:"amount"`
			Msg      string `json:"msg"`
		} `json:"send"`
	}
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "terra1membership", decoded.Send.Contract)
	assert.Equal(t, "1000000", decoded.Send.Amount)

	hook, err := base64.StdEncoding.DecodeString(decoded.Send.Msg)
	require.NoError(t, err)
	assert.JSONEq(t, `{"stake":{"user":"terra1user"}}`, string(hook))
}

func TestDAOInfo_Version(t *testing.T) {
	var info DAOInfo
	require.NoError(t, json.Unmarshal([]byte(`{"dao_version":{"major":1,"minor":2,"patch":1}}`), &info))
	assert.Equal(t, SupportedDAOVersion, info.DAOVersion.String())
}

func TestClassifyMembership(t *testing.T) {
	assert.Equal(t, KindToken, ClassifyMembership("crates.io:token-staking-membership"))
	assert.Equal(t, KindNFT, ClassifyMembership("crates.io:nft-staking-membership"))
	assert.Equal(t, KindUnknown, ClassifyMembership("crates.io:multisig-membership"))
	assert.Equal(t, KindUnknown, ClassifyMembership(""))
	assert.Equal(t, KindUnknown, ClassifyMembership("crates.io:token-staking-membership "))
	assert.Equal(t, "token", KindToken.String())
	assert.False(t, UnknownMembership().Known())
}
