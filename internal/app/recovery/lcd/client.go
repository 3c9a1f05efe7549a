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
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/frontier3tech/detfl/internal/app/recovery"
)

const contractInfoKey = "contract_info"

// Client talks to the Cosmos SDK REST gateway (LCD) of the active network.
type Client struct {
	http *http.Client
	log  logrus.FieldLogger
}

func NewClient(timeout time.Duration, log logrus.FieldLogger) *Client {
	return &Client{
		http: &http.Client{Timeout: timeout},
		log:  log,
	}
}

type smartResponse struct {
	Data json.RawMessage `json:"data"`
}

type rawResponse struct {
	Data []byte `json:"data"`
}

type cw2Info struct {
	Contract string `json:"contract"`
	Version  string `json:"version"`
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (c *Client) SmartQuery(ctx context.Context, network *recovery.Network, contract recovery.Address, msg interface{}, out interface{}) error {
	raw, err := json.Marshal(msg)
	if err != nil {
		return errors.Wrap(err, "failed to encode query")
	}
	path := fmt.Sprintf("/cosmwasm/wasm/v1/contract/%s/smart/%s",
		url.PathEscape(contract.String()),
		url.PathEscape(base64.StdEncoding.EncodeToString(raw)),
	)

	var resp smartResponse
	if err := c.get(ctx, network, path, &resp); err != nil {
		return errors.Wrapf(err, "smart query %s on %s", raw, contract)
	}
	if err := json.Unmarshal(resp.Data, out); err != nil {
		return errors.Wrapf(err, "failed to decode response of %s on %s", raw, contract)
	}
	return nil
}

// ContractMetadata reads the cw2 contract_info item from contract storage.
func (c *Client) ContractMetadata(ctx context.Context, network *recovery.Network, contract recovery.Address) (recovery.ContractMetadata, error) {
	path := fmt.Sprintf("/cosmwasm/wasm/v1/contract/%s/raw/%s",
		url.PathEscape(contract.String()),
		url.PathEscape(base64.StdEncoding.EncodeToString([]byte(contractInfoKey))),
	)

	var resp rawResponse
	if err := c.get(ctx, network, path, &resp); err != nil {
		return recovery.ContractMetadata{}, errors.Wrapf(err, "failed to query contract info of %s", contract)
	}
	if len(resp.Data) == 0 {
		return recovery.ContractMetadata{}, nil
	}
	var info cw2Info
	if err := json.Unmarshal(resp.Data, &info); err != nil {
		return recovery.ContractMetadata{}, errors.Wrapf(err, "failed to decode contract info of %s", contract)
	}
	return recovery.ContractMetadata{Name: info.Contract, Version: info.Version}, nil
}

func (c *Client) get(ctx context.Context, network *recovery.Network, path string, out interface{}) error {
	return c.do(ctx, network, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, network *recovery.Network, path string, body interface{}, out interface{}) error {
	return c.do(ctx, network, http.MethodPost, path, body, out)
}

func (c *Client) do(ctx context.Context, network *recovery.Network, method, path string, body interface{}, out interface{}) error {
	base, err := network.RESTEndpoint()
	if err != nil {
		return err
	}
	endpoint := strings.TrimRight(base, "/") + path

	var payload []byte
	if body != nil {
		payload, err = json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "failed to encode request")
		}
	}
	req, err := http.NewRequest(method, endpoint, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}
	req = req.WithContext(ctx)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.WithFields(logrus.Fields{"method": method, "url": endpoint}).Debug("lcd request")
	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read response")
	}
	if resp.StatusCode != http.StatusOK {
		var e errorResponse
		if json.Unmarshal(data, &e) == nil && e.Message != "" {
			return errors.Errorf("status %d: %s", resp.StatusCode, e.Message)
		}
		return errors.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrap(err, "failed to decode response")
	}
	return nil
}
