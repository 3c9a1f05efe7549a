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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/frontier3tech/detfl/configuration"
	"github.com/frontier3tech/detfl/observability"
)

func TestConnectivity_PG(t *testing.T) {
	obs := observability.Make("error", "text")

	t.Run("journal_disabled", func(t *testing.T) {
		cfg := configuration.Default()
		conn, err := Make(cfg, obs)
		require.NoError(t, err)
		require.Nil(t, conn.PG())
		require.NotNil(t, conn.LCD())
		require.NotNil(t, conn.Confirmer())
		require.NoError(t, conn.Close())
	})

	t.Run("journal_enabled", func(t *testing.T) {
		cfg := configuration.Default()
		cfg.Journal.Enabled = true
		conn, err := Make(cfg, obs)
		require.NoError(t, err)
		require.NotNil(t, conn.PG())
		require.NoError(t, conn.Close())
	})

	t.Run("bad_url", func(t *testing.T) {
		cfg := configuration.Default()
		cfg.Journal.Enabled = true
		cfg.DB.URL = "postgres://user:pass@%zz/db"
		_, err := Make(cfg, obs)
		require.Error(t, err)
	})
}
