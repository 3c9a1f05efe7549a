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

package api

import (
	"net/http"

	"github.com/frontier3tech/detfl/internal/app/recovery"
)

type ErrorMessage struct {
	Error []string `json:"error"`
}

func NewSingleMessageError(err string) ErrorMessage {
	return ErrorMessage{Error: []string{err}}
}

// NewErrorMessage lists the error followed by its kind when the two differ.
func NewErrorMessage(err error) ErrorMessage {
	msg := ErrorMessage{Error: []string{err.Error()}}
	if kind := recovery.Kind(err); kind != nil && kind.Error() != err.Error() {
		msg.Error = append(msg.Error, kind.Error())
	}
	return msg
}

// statusOf maps the error kind to the response code.
func statusOf(err error) int {
	switch recovery.Kind(err) {
	case recovery.ErrInvalidInput:
		return http.StatusBadRequest
	case recovery.ErrAuthorization:
		return http.StatusForbidden
	case recovery.ErrResolution, recovery.ErrRead, recovery.ErrSubmission, recovery.ErrVersionMismatch:
		return http.StatusBadGateway
	case recovery.ErrConfirmationTimeout:
		return http.StatusGatewayTimeout
	case recovery.ErrNetworkUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
