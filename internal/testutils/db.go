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
	"fmt"
	"log"
	"testing"

	"github.com/go-pg/migrations"
	"github.com/go-pg/pg"
	"github.com/ory/dockertest/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

var pgOptions = &pg.Options{
	Addr:            "localhost",
	Database:        "detfl_test_db",
	User:            "postgres",
	Password:        "secret",
	ApplicationName: "detfl",
}

// SetupDB starts a disposable postgres container and applies the migrations
// from migrationsDir. It returns an error when docker is not reachable so
// that callers can skip instead of failing.
func SetupDB(migrationsDir string) (*pg.DB, pg.Options, func(), error) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, pg.Options{}, nil, errors.Wrap(err, "could not connect to docker")
	}
	if _, err := pool.Client.Info(); err != nil {
		return nil, pg.Options{}, nil, errors.Wrap(err, "docker is not reachable")
	}

	resource, err := pool.Run(
		"postgres", "11",
		[]string{
			"POSTGRES_DB=" + pgOptions.Database,
			"POSTGRES_PASSWORD=" + pgOptions.Password,
		},
	)
	if err != nil {
		return nil, pg.Options{}, nil, errors.Wrap(err, "could not start resource")
	}

	poolCleaner := func() {
		log.Printf("removing container")
		err := pool.Purge(resource)
		if err != nil {
			log.Printf("failed to purge docker pool: %s", err)
		}
	}

	options := *pgOptions
	options.Addr = fmt.Sprintf("%s:%s", options.Addr, resource.GetPort("5432/tcp"))

	var db *pg.DB
	err = pool.Retry(func() error {
		db = pg.Connect(&options)
		_, err := db.Exec("select 1")
		return err
	})
	if err != nil {
		poolCleaner()
		return nil, pg.Options{}, nil, errors.Wrap(err, "could not start postgres")
	}

	cleaner := func() {
		log.Printf("shutting down db")
		if err := db.Close(); err != nil {
			log.Printf("failed to close db: %s", err)
		}
		poolCleaner()
	}

	if err := Migrate(db, migrationsDir); err != nil {
		cleaner()
		return nil, pg.Options{}, nil, err
	}
	return db, options, cleaner, nil
}

// Migrate initialises the migrations table and applies every migration found in dir.
func Migrate(db migrations.DB, dir string) error {
	collection := migrations.NewCollection()

	if _, _, err := collection.Run(db, "init"); err != nil {
		return errors.Wrap(err, "could not init migrations")
	}
	if err := collection.DiscoverSQLMigrations(dir); err != nil {
		return errors.Wrap(err, "failed to read migrations")
	}
	if _, _, err := collection.Run(db, "up"); err != nil {
		return errors.Wrap(err, "could not migrate")
	}
	return nil
}

func TruncateTables(t *testing.T, db *pg.DB, models []interface{}) {
	for _, m := range models {
		_, err := db.Model(m).Exec("TRUNCATE TABLE ?TableName CASCADE")
		require.NoError(t, err)
	}
}
