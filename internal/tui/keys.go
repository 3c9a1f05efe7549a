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
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Lion      key.Binding
	Pixelions key.Binding
	Next      key.Binding
	Refresh   key.Binding
	Unstake   key.Binding
	Claim     key.Binding
	Confirm   key.Binding
	Cancel    key.Binding
	Quit      key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Lion:      key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "Lion DAO")),
		Pixelions: key.NewBinding(key.WithKeys("f2"), key.WithHelp("f2", "pixeLions DAO")),
		Next:      key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "switch field")),
		Refresh:   key.NewBinding(key.WithKeys("f5"), key.WithHelp("f5", "refresh")),
		Unstake:   key.NewBinding(key.WithKeys("f6"), key.WithHelp("f6", "unstake")),
		Claim:     key.NewBinding(key.WithKeys("f7"), key.WithHelp("f7", "claim")),
		Confirm:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Lion, k.Pixelions, k.Next, k.Refresh, k.Unstake, k.Claim, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Lion, k.Pixelions, k.Next},
		{k.Refresh, k.Unstake, k.Claim},
		{k.Confirm, k.Cancel, k.Quit},
	}
}
