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
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/go-pg/pg/orm"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frontier3tech/detfl/internal/app/recovery"
	"github.com/frontier3tech/detfl/internal/models"
	"github.com/frontier3tech/detfl/internal/testutils"
)

func submission(kind recovery.SubmissionKind, amount *big.Int, created time.Time) *recovery.Submission {
	return &recovery.Submission{
		ID:        uuid.New(),
		Kind:      kind,
		Contract:  testutils.TokenMembership,
		Sender:    testutils.Alice,
		Amount:    amount,
		TxHash:    "ABCDEF",
		Status:    recovery.StatusSubmitted,
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func failingDB() *DBMock {
	db := &DBMock{}
	db.model = func(model ...interface{}) *orm.Query {
		return orm.NewQuery(db, model...)
	}
	db.query = func(model, query interface{}, params ...interface{}) (orm.Result, error) {
		return nil, errors.New("something wrong")
	}
	return db
}

func TestJournal_Save(t *testing.T) {
	log, _ := test.NewNullLogger()
	ctx := context.Background()

	t.Run("nil", func(t *testing.T) {
		journal := NewJournal(log, nil)
		require.NoError(t, journal.Save(ctx, nil))
	})

	t.Run("db error", func(t *testing.T) {
		journal := NewJournal(log, failingDB())
		err := journal.Save(ctx, submission(recovery.SubmissionClaim, nil, time.Now()))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to save submission")
	})
}

func TestJournal_ListError(t *testing.T) {
	log, _ := test.NewNullLogger()
	journal := NewJournal(log, failingDB())

	_, err := journal.List(context.Background(), 10)
	require.Error(t, err)
}

func TestSubmissionSchema(t *testing.T) {
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	s := submission(recovery.SubmissionUnstake, big.NewInt(2500000), created)

	row := submissionSchema(s)
	assert.Equal(t, s.ID.String(), row.ID)
	assert.Equal(t, "unstake", row.Kind)
	assert.Equal(t, "2500000", row.Amount)
	assert.Equal(t, string(testutils.Alice), row.Sender)

	back, err := submissionModel(row)
	require.NoError(t, err)
	assert.Equal(t, s.ID, back.ID)
	assert.Equal(t, s.Kind, back.Kind)
	assert.Equal(t, s.Contract, back.Contract)
	assert.Equal(t, 0, s.Amount.Cmp(back.Amount))
	assert.Equal(t, s.CreatedAt, back.CreatedAt)

	claim := submissionSchema(submission(recovery.SubmissionClaim, nil, created))
	assert.Empty(t, claim.Amount)
	back, err = submissionModel(claim)
	require.NoError(t, err)
	assert.Nil(t, back.Amount)

	_, err = submissionModel(&models.Submission{ID: "not-a-uuid"})
	require.Error(t, err)
}

func TestJournal_Postgres(t *testing.T) {
	db := requireDB(t)
	testutils.TruncateTables(t, db, []interface{}{&models.Submission{}})

	log, _ := test.NewNullLogger()
	journal := NewJournal(log, db)
	ctx := context.Background()

	start := time.Now().UTC().Truncate(time.Millisecond)
	older := submission(recovery.SubmissionUnstake, big.NewInt(1000000), start)
	newer := submission(recovery.SubmissionClaim, nil, start.Add(time.Minute))

	require.NoError(t, journal.Save(ctx, older))
	require.NoError(t, journal.Save(ctx, newer))

	older.Status = recovery.StatusConfirmed
	older.UpdatedAt = start.Add(2 * time.Minute)
	require.NoError(t, journal.Save(ctx, older))

	list, err := journal.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)
	assert.Nil(t, list[0].Amount)
	assert.Equal(t, older.ID, list[1].ID)
	assert.Equal(t, recovery.StatusConfirmed, list[1].Status)
	assert.Equal(t, "1000000", list[1].Amount.String())

	list, err = journal.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, newer.ID, list[0].ID)
}
