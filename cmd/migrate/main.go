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

package main

import (
	"flag"

	"github.com/go-pg/migrations"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/frontier3tech/detfl/configuration"
	"github.com/frontier3tech/detfl/internal/dbconn"
	"github.com/frontier3tech/detfl/internal/pkg/cycle"
	"github.com/frontier3tech/detfl/observability"
)

var configPath = flag.String("config", "", "path to migrate.yaml")
var migrationDir = flag.String("dir", "scripts/migrations", "directory with migrations")
var doInit = flag.Bool("init", false, "perform db init (for empty db)")

func main() {
	flag.Parse()
	cfg := configuration.LoadMigrate(logrus.StandardLogger(), *configPath)
	obs := observability.Make(cfg.Log.Level, cfg.Log.Format)
	log := obs.Log()

	db, err := dbconn.Connect(cfg.DB)
	if err != nil {
		log.Fatal(err.Error())
	}
	defer db.Close()

	migrationCollection := migrations.NewCollection()
	if *doInit {
		err := cycle.UntilConnectionError(func() error {
			_, _, err := migrationCollection.Run(db, "init")
			return err
		}, cfg.DB.AttemptInterval, cfg.DB.Attempts, log)
		if err != nil {
			log.Fatal(errors.Wrap(err, "Could not init migrations"))
		}
	}

	err = migrationCollection.DiscoverSQLMigrations(*migrationDir)
	if err != nil {
		log.Fatal(errors.Wrap(err, "Failed to read migrations"))
	}

	err = cycle.UntilConnectionError(func() error {
		_, _, err := migrationCollection.Run(db, "up")
		return err
	}, cfg.DB.AttemptInterval, cfg.DB.Attempts, log)
	if err != nil {
		log.Fatal(errors.Wrap(err, "Could not migrate"))
	}
	log.Info("migrated successfully!")
}
