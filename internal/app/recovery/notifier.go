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
	"github.com/sirupsen/logrus"
)

// LogNotifier reports notifications to the log. It is used where no terminal
// is attached, e.g. by the API server.
type LogNotifier struct {
	log logrus.FieldLogger
}

func NewLogNotifier(log logrus.FieldLogger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Success(msg string) {
	n.log.Info(msg)
}

func (n *LogNotifier) Warn(msg string) {
	n.log.Warn(msg)
}

func (n *LogNotifier) Error(err error) {
	n.log.WithError(err).Error("recovery failed")
}

type nopNotifier struct{}

func (nopNotifier) Success(string) {}
func (nopNotifier) Warn(string)    {}
func (nopNotifier) Error(error)    {}

// NopNotifier discards every notification.
func NopNotifier() Notifier {
	return nopNotifier{}
}
