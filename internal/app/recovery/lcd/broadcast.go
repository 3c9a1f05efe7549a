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

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/frontier3tech/detfl/internal/app/recovery"
)

const broadcastModeSync = "BROADCAST_MODE_SYNC"

type Broadcaster struct {
	client *Client
	log    logrus.FieldLogger
}

func NewBroadcaster(client *Client, log logrus.FieldLogger) *Broadcaster {
	return &Broadcaster{client: client, log: log}
}

type broadcastRequest struct {
	TxBytes string `json:"tx_bytes"`
	Mode    string `json:"mode"`
}

type broadcastResponse struct {
	TxResponse struct {
		TxHash string `json:"txhash"`
		Code   uint32 `json:"code"`
		RawLog string `json:"raw_log"`
	} `json:"tx_response"`
}

// Broadcast submits tx in sync mode: it returns once the transaction passed
// CheckTx, before it is included in a block.
func (b *Broadcaster) Broadcast(ctx context.Context, network *recovery.Network, tx *recovery.SignedTx) (string, error) {
	req := broadcastRequest{TxBytes: encodeBase64(tx.TxBytes), Mode: broadcastModeSync}
	var resp broadcastResponse
	if err := b.client.post(ctx, network, "/cosmos/tx/v1beta1/txs", req, &resp); err != nil {
		return "", errors.Wrap(err, "failed to broadcast")
	}
	if resp.TxResponse.Code != 0 {
		return "", errors.Errorf("check tx failed with code %d: %s", resp.TxResponse.Code, resp.TxResponse.RawLog)
	}
	hash := resp.TxResponse.TxHash
	if hash == "" {
		hash = tx.Hash
	}
	b.log.WithField("tx_hash", hash).Debug("broadcast accepted")
	return hash, nil
}
