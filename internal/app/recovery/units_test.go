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
	"math/big"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatUnits(t *testing.T) {
	assert.Equal(t, "1.0", FormatUnits(big.NewInt(1000000), 6))
	assert.Equal(t, "1.5", FormatUnits(big.NewInt(1500000), 6))
	assert.Equal(t, "0.000001", FormatUnits(big.NewInt(1), 6))
	assert.Equal(t, "0", FormatUnits(big.NewInt(0), 6))
	assert.Equal(t, "0", FormatUnits(nil, 6))

	huge, ok := new(big.Int).SetString("123456789012345678901234567", 10)
	require.True(t, ok)
	assert.Equal(t, "123456789012345678901.234567", FormatUnits(huge, 6))
}

func TestParseUnits(t *testing.T) {
	v, err := ParseUnits("1.5", 6)
	require.NoError(t, err)
	assert.Equal(t, "1500000", v.String())

	v, err = ParseUnits(" 2 ", 6)
	require.NoError(t, err)
	assert.Equal(t, "2000000", v.String())

	for _, raw := range []string{"", "abc", "-1", "0.0000001"} {
		_, err := ParseUnits(raw, 6)
		require.Error(t, err, raw)
		assert.True(t, errors.Is(err, ErrInvalidInput), raw)
	}
}
