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
	"github.com/pkg/errors"
)

var (
	ErrNetworkUnavailable  = errors.New("network not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrResolution          = errors.New("failed to resolve membership contract")
	ErrVersionMismatch     = errors.New("unsupported dao version")
	ErrRead                = errors.New("failed to read stake")
	ErrAuthorization       = errors.New("connected wallet does not match displayed address")
	ErrSubmission          = errors.New("failed to submit transaction")
	ErrConfirmationTimeout = errors.New("transaction confirmation timed out")
)

var kinds = []error{
	ErrNetworkUnavailable,
	ErrInvalidInput,
	ErrResolution,
	ErrVersionMismatch,
	ErrRead,
	ErrAuthorization,
	ErrSubmission,
	ErrConfirmationTimeout,
}

// kindError attaches one of the sentinel kinds to a cause while keeping the
// cause chain intact for errors.Cause and errors.Unwrap.
type kindError struct {
	kind  error
	cause error
}

func (e *kindError) Error() string {
	return e.kind.Error() + ": " + e.cause.Error()
}

func (e *kindError) Unwrap() error {
	return e.cause
}

func (e *kindError) Cause() error {
	return e.cause
}

func (e *kindError) Is(target error) bool {
	return target == e.kind
}

// Wrap classifies err as kind. A nil err stays nil. An err that is already of
// kind is only annotated.
func Wrap(kind, err error, message string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, kind) {
		return errors.Wrap(err, message)
	}
	return &kindError{kind: kind, cause: errors.Wrap(err, message)}
}

// Errorf creates a new error of kind.
func Errorf(kind error, format string, args ...interface{}) error {
	return &kindError{kind: kind, cause: errors.Errorf(format, args...)}
}

// Kind returns the sentinel kind of err or nil when err is unclassified.
func Kind(err error) error {
	for _, k := range kinds {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}
