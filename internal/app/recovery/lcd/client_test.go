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

package lcd

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frontier3tech/detfl/internal/app/recovery"
	"github.com/frontier3tech/detfl/internal/testutils"
)

func newServer(t *testing.T, handler http.HandlerFunc) (*Client, *recovery.Network) {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	log, _ := logtest.NewNullLogger()
	network := testutils.Terra2()
	network.Endpoints.REST = []string{srv.URL + "/"}
	return NewClient(5*time.Second, log), network
}

func TestClient_SmartQuery(t *testing.T) {
	client, network := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/cosmwasm/wasm/v1/contract/"+testutils.LionTreasury.String()+"/smart/eyJjb25maWciOnt9fQ==", r.URL.Path)
		_, _ = w.Write([]byte(`{"data":{"admin":"` + testutils.AdminContract.String() + `","asset_whitelist":null}}`))
	})

	var cfg recovery.TreasuryConfig
	err := client.SmartQuery(context.Background(), network, testutils.LionTreasury, recovery.ConfigQuery(), &cfg)
	require.NoError(t, err)
	assert.Equal(t, testutils.AdminContract, cfg.Admin)
}

func TestClient_SmartQueryError(t *testing.T) {
	client, network := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"code":2,"message":"rpc error: code = Unknown desc = Error parsing into type","details":[]}`))
	})

	var cfg recovery.TreasuryConfig
	err := client.SmartQuery(context.Background(), network, testutils.LionTreasury, recovery.ConfigQuery(), &cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
	assert.Contains(t, err.Error(), "Error parsing into type")
}

func TestClient_NoNetwork(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	client := NewClient(time.Second, log)

	var cfg recovery.TreasuryConfig
	err := client.SmartQuery(context.Background(), nil, testutils.LionTreasury, recovery.ConfigQuery(), &cfg)
	assert.Equal(t, recovery.ErrNetworkUnavailable, errorsCause(err))
}

func TestClient_ContractMetadata(t *testing.T) {
	client, network := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/cosmwasm/wasm/v1/contract/" + testutils.TokenMembership.String() + "/raw/Y29udHJhY3RfaW5mbw==":
			_, _ = w.Write([]byte(`{"data":"eyJjb250cmFjdCI6ImNyYXRlcy5pbzp0b2tlbi1zdGFraW5nLW1lbWJlcnNoaXAiLCJ2ZXJzaW9uIjoiMS4yLjEifQ=="}`))
		default:
			_, _ = w.Write([]byte(`{"data":null}`))
		}
	})

	meta, err := client.ContractMetadata(context.Background(), network, testutils.TokenMembership)
	require.NoError(t, err)
	assert.Equal(t, recovery.ContractMetadata{Name: recovery.TokenMembershipContract, Version: "1.2.1"}, meta)

	meta, err = client.ContractMetadata(context.Background(), network, testutils.OtherMembership)
	require.NoError(t, err)
	assert.Equal(t, recovery.ContractMetadata{}, meta)
}

func TestBroadcaster_Broadcast(t *testing.T) {
	var received broadcastRequest
	code := 0
	client, network := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cosmos/tx/v1beta1/txs", r.URL.Path)
		body, _ := ioutil.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &received))
		if code != 0 {
			_, _ = w.Write([]byte(`{"tx_response":{"txhash":"AA","code":5,"raw_log":"insufficient funds"}}`))
			return
		}
		_, _ = w.Write([]byte(`{"tx_response":{"txhash":"C0FFEE","code":0,"raw_log":"[]"}}`))
	})
	log, _ := logtest.NewNullLogger()
	broadcaster := NewBroadcaster(client, log)

	hash, err := broadcaster.Broadcast(context.Background(), network, &recovery.SignedTx{TxBytes: []byte{1, 2, 3}, Hash: "X"})
	require.NoError(t, err)
	assert.Equal(t, "C0FFEE", hash)
	assert.Equal(t, "BROADCAST_MODE_SYNC", received.Mode)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte{1, 2, 3}), received.TxBytes)

	code = 5
	_, err = broadcaster.Broadcast(context.Background(), network, &recovery.SignedTx{TxBytes: []byte{1}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient funds")
}
