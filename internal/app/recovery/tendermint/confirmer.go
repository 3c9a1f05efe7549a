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

package tendermint

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/frontier3tech/detfl/internal/app/recovery"
)

const subscriptionID = 1

// Confirmer waits for transactions through the Tendermint RPC websocket event
// subscription.
type Confirmer struct {
	dialer *websocket.Dialer
	log    logrus.FieldLogger
}

func NewConfirmer(log logrus.FieldLogger) *Confirmer {
	return &Confirmer{
		dialer: &websocket.Dialer{HandshakeTimeout: 10 * time.Second},
		log:    log,
	}
}

type request struct {
	JSONRPC string      `json:"jsonrpc"`
	Method  string      `json:"method"`
	ID      int         `json:"id"`
	Params  interface{} `json:"params"`
}

type subscribeParams struct {
	Query string `json:"query"`
}

type response struct {
	ID     json.RawMessage `json:"id"`
	Result *struct {
		Data *struct {
			Type  string `json:"type"`
			Value struct {
				TxResult txResult `json:"TxResult"`
			} `json:"value"`
		} `json:"data"`
	} `json:"result"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Data    string `json:"data"`
	} `json:"error"`
}

type txResult struct {
	Height string `json:"height"`
	Result struct {
		Code uint32 `json:"code"`
		Log  string `json:"log"`
	} `json:"result"`
}

// TxQuery is the event query matching the inclusion of one transaction.
func TxQuery(hash string) string {
	return fmt.Sprintf("tm.event='Tx' AND tx.hash='%s'", hash)
}

func (c *Confirmer) AwaitTx(ctx context.Context, network *recovery.Network, hash string, timeout time.Duration) error {
	endpoint, err := network.WSEndpoint()
	if err != nil {
		return err
	}
	log := c.log.WithField("tx_hash", hash)

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	conn, _, err := c.dialer.DialContext(ctx, endpoint, nil)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return recovery.Errorf(recovery.ErrConfirmationTimeout, "tx %s: no connection within %s", hash, timeout)
		}
		return errors.Wrapf(err, "failed to connect to %s", endpoint)
	}
	defer conn.Close()

	// unblock the reader when the caller gives up
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.SetReadDeadline(time.Now())
		case <-stop:
		}
	}()

	err = conn.WriteJSON(request{
		JSONRPC: "2.0",
		Method:  "subscribe",
		ID:      subscriptionID,
		Params:  subscribeParams{Query: TxQuery(hash)},
	})
	if err != nil {
		return errors.Wrap(err, "failed to subscribe")
	}
	log.Debug("awaiting transaction")

	for {
		var resp response
		if err := conn.ReadJSON(&resp); err != nil {
			if ctx.Err() == context.DeadlineExceeded {
				return recovery.Errorf(recovery.ErrConfirmationTimeout, "tx %s not included within %s", hash, timeout)
			}
			if ctx.Err() != nil {
				return errors.Wrap(ctx.Err(), "confirmation aborted")
			}
			return errors.Wrap(err, "subscription failed")
		}
		if resp.Error != nil {
			return errors.Errorf("subscription error %d: %s %s", resp.Error.Code, resp.Error.Message, resp.Error.Data)
		}
		if resp.Result == nil || resp.Result.Data == nil {
			// subscription acknowledgement
			continue
		}
		res := resp.Result.Data.Value.TxResult
		log = log.WithField("height", res.Height)
		if res.Result.Code != 0 {
			log.WithField("code", res.Result.Code).Warn("transaction failed")
			return recovery.Errorf(recovery.ErrSubmission, "tx %s failed with code %d: %s", hash, res.Result.Code, res.Result.Log)
		}
		log.Debug("transaction included")
		return nil
	}
}
