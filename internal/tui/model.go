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

// Package tui is the terminal rendition of the recovery page.
package tui

import (
	"context"
	"math/big"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/frontier3tech/detfl/internal/app/recovery"
	"github.com/frontier3tech/detfl/internal/app/recovery/flow"
	"github.com/frontier3tech/detfl/internal/pkg/async"
)

const (
	invalidAddressHint = "Please enter a valid Terra address"
	unstakeSucceeded   = "Unstaking successful"
	claimSucceeded     = "Claim successful"
)

type Actions interface {
	Unstake(ctx context.Context, session *recovery.Session, membership, displayed recovery.Address, amount *big.Int) (string, error)
	Claim(ctx context.Context, session *recovery.Session, membership, displayed recovery.Address) (string, error)
}

type field int

const (
	fieldTreasury field = iota
	fieldSubject
	fieldAmount
)

type changedMsg struct{}

type actionDoneMsg struct {
	kind recovery.SubmissionKind
	hash string
	err  error
}

// Model renders one recovery flow. It reads the flow state on every View and
// is woken up by the flow resources through a change channel.
type Model struct {
	ctx      context.Context
	flow     *flow.Flow
	actions  Actions
	notifier *Notifier
	changes  chan struct{}
	detach   []func()

	keys     keyMap
	help     help.Model
	spinner  spinner.Model
	treasury textinput.Model
	subject  textinput.Model
	amount   textinput.Model
	focus    field

	prompting bool
	busy      recovery.SubmissionKind
	toast     *toastMsg
	width     int
}

func New(ctx context.Context, f *flow.Flow, actions Actions, notifier *Notifier) *Model {
	m := &Model{
		ctx:      ctx,
		flow:     f,
		actions:  actions,
		notifier: notifier,
		changes:  make(chan struct{}, 1),
		keys:     defaultKeys(),
		help:     help.New(),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
	}

	m.treasury = textinput.New()
	m.treasury.Placeholder = "Enter treasury address"
	m.treasury.CharLimit = 128
	m.treasury.Focus()

	m.subject = textinput.New()
	m.subject.CharLimit = 128
	if wallet := f.Session().Wallet; wallet != nil {
		if addr, ok := wallet.Address(); ok {
			m.subject.Placeholder = addr.String()
		}
	}
	if m.subject.Placeholder == "" {
		m.subject.Placeholder = "Enter the address to inspect"
	}

	m.amount = textinput.New()
	m.amount.Placeholder = "0.0"
	m.amount.CharLimit = 40

	m.detach = append(m.detach,
		f.Membership.Subscribe(func(async.Snapshot[recovery.MembershipDescriptor]) { m.changed() }),
		f.Stake.Subscribe(func(async.Snapshot[recovery.StakeSnapshot]) { m.changed() }),
	)
	return m
}

func (m *Model) changed() {
	select {
	case m.changes <- struct{}{}:
	default:
	}
}

func (m *Model) waitForChange() tea.Cmd {
	return func() tea.Msg {
		<-m.changes
		return changedMsg{}
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.waitForChange(), m.notifier.wait())
}

// Close detaches the model from the flow.
func (m *Model) Close() {
	for _, detach := range m.detach {
		detach()
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case changedMsg:
		return m, m.waitForChange()

	case toastMsg:
		m.toast = &msg
		return m, m.notifier.wait()

	case actionDoneMsg:
		return m, m.finish(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, m.updateInput(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit

	case key.Matches(msg, m.keys.Lion):
		return m.preset(flow.Presets[0])

	case key.Matches(msg, m.keys.Pixelions):
		return m.preset(flow.Presets[1])

	case key.Matches(msg, m.keys.Refresh):
		m.flow.Refresh()
		return nil

	case key.Matches(msg, m.keys.Unstake):
		if !m.canAct() {
			return nil
		}
		m.prompting = true
		m.amount.SetValue("")
		return m.setFocus(fieldAmount)

	case key.Matches(msg, m.keys.Claim):
		if !m.canAct() {
			return nil
		}
		return m.claim()

	case m.prompting && key.Matches(msg, m.keys.Cancel):
		m.prompting = false
		return m.setFocus(fieldTreasury)

	case m.prompting && key.Matches(msg, m.keys.Confirm):
		return m.unstake()

	case !m.prompting && key.Matches(msg, m.keys.Next):
		if m.focus == fieldTreasury {
			return m.setFocus(fieldSubject)
		}
		return m.setFocus(fieldTreasury)
	}
	return m.updateInput(msg)
}

func (m *Model) preset(p flow.Preset) tea.Cmd {
	m.prompting = false
	m.treasury.SetValue(p.Treasury.String())
	m.flow.SetTreasury(p.Treasury.String())
	return m.setFocus(fieldTreasury)
}

func (m *Model) setFocus(f field) tea.Cmd {
	m.focus = f
	m.treasury.Blur()
	m.subject.Blur()
	m.amount.Blur()
	switch f {
	case fieldSubject:
		return m.subject.Focus()
	case fieldAmount:
		return m.amount.Focus()
	default:
		return m.treasury.Focus()
	}
}

func (m *Model) updateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case fieldTreasury:
		m.treasury, cmd = m.treasury.Update(msg)
		m.flow.SetTreasury(m.treasury.Value())
	case fieldSubject:
		m.subject, cmd = m.subject.Update(msg)
		m.syncSubject()
	case fieldAmount:
		m.amount, cmd = m.amount.Update(msg)
	}
	return cmd
}

// syncSubject applies the inspected address. An empty input falls back to
// the connected wallet; an invalid one keeps the previous subject.
func (m *Model) syncSubject() {
	raw := m.subject.Value()
	session := m.flow.Session()
	if raw == "" {
		var wallet recovery.Address
		if session.Wallet != nil {
			wallet, _ = session.Wallet.Address()
		}
		m.flow.Subject.Set(wallet)
		return
	}
	if session.Network == nil {
		return
	}
	if addr, err := recovery.ParseAddress(session.Network.Bech32Prefix, raw); err == nil {
		m.flow.Subject.Set(addr)
	}
}

func (m *Model) canAct() bool {
	return m.busy == "" && m.flow.Descriptor().Kind == recovery.KindToken
}

func (m *Model) unstake() tea.Cmd {
	session := m.flow.Session()
	decimals := int32(0)
	if session.Network != nil {
		decimals = session.Network.Decimals
	}
	amount, err := recovery.ParseUnits(m.amount.Value(), decimals)
	if err != nil {
		m.toast = &toastMsg{level: toastError, text: err.Error()}
		return nil
	}
	m.prompting = false
	m.busy = recovery.SubmissionUnstake
	m.setFocus(fieldTreasury)

	ctx := m.ctx
	actions := m.actions
	membership := m.flow.Descriptor().Address
	subject := m.flow.Subject.Get()
	return func() tea.Msg {
		hash, err := actions.Unstake(ctx, session, membership, subject, amount)
		return actionDoneMsg{kind: recovery.SubmissionUnstake, hash: hash, err: err}
	}
}

func (m *Model) claim() tea.Cmd {
	m.busy = recovery.SubmissionClaim

	ctx := m.ctx
	actions := m.actions
	session := m.flow.Session()
	membership := m.flow.Descriptor().Address
	subject := m.flow.Subject.Get()
	return func() tea.Msg {
		hash, err := actions.Claim(ctx, session, membership, subject)
		return actionDoneMsg{kind: recovery.SubmissionClaim, hash: hash, err: err}
	}
}

func (m *Model) finish(msg actionDoneMsg) tea.Cmd {
	m.busy = ""
	if msg.err != nil {
		m.toast = &toastMsg{level: toastError, text: msg.err.Error()}
		return nil
	}
	text := claimSucceeded
	if msg.kind == recovery.SubmissionUnstake {
		text = unstakeSucceeded
	}
	m.toast = &toastMsg{level: toastSuccess, text: text + " (" + msg.hash + ")"}
	return nil
}
