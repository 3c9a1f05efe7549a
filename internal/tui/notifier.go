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

package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

type toastLevel int

const (
	toastSuccess toastLevel = iota
	toastWarn
	toastError
)

type toastMsg struct {
	level toastLevel
	text  string
}

// Notifier turns recovery notifications into toast messages for the program.
// It may be called from any goroutine. Toasts beyond the buffer are dropped.
type Notifier struct {
	toasts chan toastMsg
}

func NewNotifier() *Notifier {
	return &Notifier{toasts: make(chan toastMsg, 16)}
}

func (n *Notifier) Success(msg string) {
	n.push(toastMsg{level: toastSuccess, text: msg})
}

func (n *Notifier) Warn(msg string) {
	n.push(toastMsg{level: toastWarn, text: msg})
}

func (n *Notifier) Error(err error) {
	n.push(toastMsg{level: toastError, text: err.Error()})
}

func (n *Notifier) push(t toastMsg) {
	select {
	case n.toasts <- t:
	default:
	}
}

func (n *Notifier) wait() tea.Cmd {
	return func() tea.Msg {
		return <-n.toasts
	}
}
