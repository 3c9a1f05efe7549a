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

package recovery

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	cause := errors.New("connection refused")

	err := Wrap(ErrRead, cause, "failed to query claims")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRead))
	assert.True(t, errors.Is(err, cause))
	assert.False(t, errors.Is(err, ErrResolution))
	assert.Equal(t, "failed to read stake: failed to query claims: connection refused", err.Error())
	assert.Equal(t, cause, errors.Cause(err))

	assert.NoError(t, Wrap(ErrRead, nil, "nothing"))
}

func TestWrap_SameKindIsAnnotated(t *testing.T) {
	inner := Errorf(ErrSubmission, "tx failed with code %d", 5)
	err := Wrap(ErrSubmission, inner, "failed to confirm")
	assert.True(t, errors.Is(err, ErrSubmission))
	assert.Equal(t, "failed to confirm: failed to submit transaction: tx failed with code 5", err.Error())
}

func TestKind(t *testing.T) {
	assert.Equal(t, ErrAuthorization, Kind(Errorf(ErrAuthorization, "wallet differs")))
	assert.Equal(t, ErrConfirmationTimeout, Kind(errors.Wrap(ErrConfirmationTimeout, "await")))
	assert.Nil(t, Kind(errors.New("plain")))
	assert.Nil(t, Kind(nil))
}
