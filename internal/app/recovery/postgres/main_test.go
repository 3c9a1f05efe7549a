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

package postgres

import (
	"log"
	"os"
	"testing"

	"github.com/go-pg/pg"

	"github.com/frontier3tech/detfl/internal/testutils"
)

var db *pg.DB

func TestMain(m *testing.M) {
	var (
		cleaner func()
		err     error
	)
	db, _, cleaner, err = testutils.SetupDB("../../../../scripts/migrations")
	if err != nil {
		log.Printf("database tests are skipped: %s", err)
	}
	retCode := m.Run()
	if cleaner != nil {
		cleaner()
	}
	os.Exit(retCode)
}

func requireDB(t *testing.T) *pg.DB {
	t.Helper()
	if db == nil {
		t.Skip("docker is not available")
	}
	return db
}
