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

package connectivity

import (
	"github.com/go-pg/pg"
	"github.com/pkg/errors"

	"github.com/frontier3tech/detfl/configuration"
	"github.com/frontier3tech/detfl/internal/app/recovery/lcd"
	"github.com/frontier3tech/detfl/internal/app/recovery/tendermint"
	"github.com/frontier3tech/detfl/internal/dbconn"
	"github.com/frontier3tech/detfl/observability"
)

// Make opens the chain clients and, when the journal is enabled, the
// postgres pool. pg.Connect is lazy, nothing is dialed here.
func Make(cfg *configuration.Configuration, obs *observability.Observability) (*Connectivity, error) {
	log := obs.Log()
	c := &Connectivity{
		lcd:       lcd.NewClient(cfg.Query.Timeout, log.WithField("component", "lcd")),
		confirmer: tendermint.NewConfirmer(log.WithField("component", "tendermint")),
	}
	if cfg.Journal.Enabled {
		db, err := dbconn.Connect(cfg.DB)
		if err != nil {
			return nil, errors.Wrap(err, "failed to connect to journal db")
		}
		c.pg = db
	}
	return c, nil
}

type Connectivity struct {
	pg        *pg.DB
	lcd       *lcd.Client
	confirmer *tendermint.Confirmer
}

// PG is nil when the journal is disabled.
func (c *Connectivity) PG() *pg.DB {
	return c.pg
}

func (c *Connectivity) LCD() *lcd.Client {
	return c.lcd
}

func (c *Connectivity) Confirmer() *tendermint.Confirmer {
	return c.confirmer
}

func (c *Connectivity) Close() error {
	if c.pg == nil {
		return nil
	}
	return c.pg.Close()
}
