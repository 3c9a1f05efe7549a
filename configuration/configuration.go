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

package configuration

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/frontier3tech/detfl/internal/app/recovery"
	"github.com/frontier3tech/detfl/internal/pkg/cycle"
)

// Configuration is shared by the recovery terminal, the API and the inspect tool.
type Configuration struct {
	Log     Log
	Network Network
	Query   Query
	Wallet  Wallet
	Journal Journal
	DB      DB
	API     API
}

type Log struct {
	Level  string
	Format string
}

type Network struct {
	Name          string
	ChainID       string
	Bech32Prefix  string
	Denom         string
	Decimals      int32
	GasPrice      decimal.Decimal
	GasAdjustment float64
	REST          []string
	RPC           []string
	WS            []string
}

type Query struct {
	// Per request timeout of the LCD client
	Timeout time.Duration
	// Size of the contract metadata cache, 0 disables it
	CacheSize int
}

type Wallet struct {
	// Hex encoded secp256k1 key. When empty, Address is used read only.
	Key     string
	Address string
}

type Journal struct {
	Enabled bool
}

type DB struct {
	URL      string
	PoolSize int
	Attempts cycle.Limit
	// Interval between connection attempts
	AttemptInterval time.Duration
}

type API struct {
	Listen string
	// Health check and metrics
	Router string
}

func Default() *Configuration {
	return &Configuration{
		Log: Log{
			Level:  "info",
			Format: "text",
		},
		Network: Network{
			Name:          "terra2",
			ChainID:       "phoenix-1",
			Bech32Prefix:  "terra",
			Denom:         "uluna",
			Decimals:      6,
			GasPrice:      decimal.RequireFromString("0.015"),
			GasAdjustment: 1.4,
			REST:          []string{"https://terra-lcd.publicnode.com"},
			RPC:           []string{"https://terra-rpc.publicnode.com:443"},
			WS:            []string{"wss://terra-rpc.publicnode.com:443/websocket"},
		},
		Query: Query{
			Timeout:   15 * time.Second,
			CacheSize: 256,
		},
		Journal: Journal{
			Enabled: false,
		},
		DB: DB{
			URL:             "postgres://postgres@localhost/postgres?sslmode=disable",
			PoolSize:        10,
			Attempts:        5,
			AttemptInterval: 3 * time.Second,
		},
		API: API{
			Listen: ":8080",
			Router: ":8888",
		},
	}
}

// Build turns the network section into the immutable chain description used
// by the recovery packages.
func (n Network) Build() *recovery.Network {
	return &recovery.Network{
		Name:          n.Name,
		ChainID:       n.ChainID,
		Bech32Prefix:  n.Bech32Prefix,
		Denom:         n.Denom,
		Decimals:      n.Decimals,
		GasPrice:      n.GasPrice,
		GasAdjustment: n.GasAdjustment,
		Endpoints: recovery.Endpoints{
			REST: append([]string(nil), n.REST...),
			RPC:  append([]string(nil), n.RPC...),
			WS:   append([]string(nil), n.WS...),
		},
	}
}
