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
)

// DBMock fails or records every query issued through an orm.Query.
type DBMock struct {
	orm.DB
	model func(model ...interface{}) *orm.Query
	query func(model, query interface{}, params ...interface{}) (orm.Result, error)
}

func (m *DBMock) Model(model ...interface{}) *orm.Query {
	return m.model(model...)
}

func (m *DBMock) Query(model, query interface{}, params ...interface{}) (orm.Result, error) {
	return m.query(model, query, params...)
}

func (m *DBMock) QueryOne(model, query interface{}, params ...interface{}) (orm.Result, error) {
	return m.query(model, query, params...)
}

func (m *DBMock) QueryContext(_ context.Context, model, query interface{}, params ...interface{}) (orm.Result, error) {
	return m.query(model, query, params...)
}

func (m *DBMock) QueryOneContext(_ context.Context, model, query interface{}, params ...interface{}) (orm.Result, error) {
	return m.query(model, query, params...)
}

func (m *DBMock) Exec(query interface{}, params ...interface{}) (orm.Result, error) {
	return m.query(nil, query, params...)
}

func (m *DBMock) ExecContext(_ context.Context, query interface{}, params ...interface{}) (orm.Result, error) {
	return m.query(nil, query, params...)
}
