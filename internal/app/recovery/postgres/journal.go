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

	"github.com/go-pg/pg/orm"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/frontier3tech/detfl/internal/app/recovery"
	"github.com/frontier3tech/detfl/internal/models"
)

// Journal keeps submitted transactions in the submissions table.
type Journal struct {
	log logrus.FieldLogger
	db  orm.DB
}

func NewJournal(log logrus.FieldLogger, db orm.DB) *Journal {
	return &Journal{
		log: log,
		db:  db,
	}
}

// Save inserts s or, when a row with the same id exists, moves it to the new status.
func (j *Journal) Save(_ context.Context, s *recovery.Submission) error {
	if s == nil {
		j.log.Warn("trying to save nil submission")
		return nil
	}
	row := submissionSchema(s)
	res, err := j.db.Model(row).
		OnConflict("(id) DO UPDATE").
		Set("status = EXCLUDED.status").
		Set("tx_hash = EXCLUDED.tx_hash").
		Set("error = EXCLUDED.error").
		Set("updated_at = EXCLUDED.updated_at").
		Insert()
	if err != nil {
		return errors.Wrapf(err, "failed to save submission %s", row.ID)
	}
	if res != nil && res.RowsAffected() == 0 {
		j.log.WithField("submission", row.ID).Error("submission was not saved")
	}
	return nil
}

// List returns at most limit submissions, newest first.
func (j *Journal) List(_ context.Context, limit int) ([]recovery.Submission, error) {
	var rows []models.Submission
	query := j.db.Model(&rows).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Select(); err != nil {
		return nil, errors.Wrap(err, "failed request to db")
	}

	out := make([]recovery.Submission, 0, len(rows))
	for i := range rows {
		s, err := submissionModel(&rows[i])
		if err != nil {
			j.log.WithField("submission", rows[i].ID).Errorf("skipping malformed row: %v", err)
			continue
		}
		out = append(out, *s)
	}
	return out, nil
}

func submissionSchema(s *recovery.Submission) *models.Submission {
	row := &models.Submission{
		ID:        s.ID.String(),
		Kind:      string(s.Kind),
		Contract:  s.Contract.String(),
		Sender:    s.Sender.String(),
		TxHash:    s.TxHash,
		Status:    string(s.Status),
		Error:     s.Error,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
	row.SetAmount(s.Amount)
	return row
}

func submissionModel(row *models.Submission) (*recovery.Submission, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid id")
	}
	amount, err := row.AmountInt()
	if err != nil {
		return nil, err
	}
	return &recovery.Submission{
		ID:        id,
		Kind:      recovery.SubmissionKind(row.Kind),
		Contract:  recovery.Address(row.Contract),
		Sender:    recovery.Address(row.Sender),
		Amount:    amount,
		TxHash:    row.TxHash,
		Status:    recovery.SubmissionStatus(row.Status),
		Error:     row.Error,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}
