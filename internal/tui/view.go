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
	"fmt"
	"math/big"
	"strings"

	"github.com/frontier3tech/detfl/internal/app/recovery"
	"github.com/frontier3tech/detfl/internal/app/recovery/flow"
	"github.com/frontier3tech/detfl/internal/pkg/async"
)

const nftGuidance = `Unstaking NFTs from Enterprise has already been implemented by another project.
A short guide is available at https://x.com/rebel_defi/status/1881598145207181766

TL;DR: head over to https://www.boostdao.io/ignite/permissionless-terra and start
listing an NFT for sale. This gives you the option to unstake the NFT from
Enterprise before listing it.`

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Recover Assets from Enterprise"))
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render("Token & NFT recovery from Enterprise staking contracts."))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Treasury Address"))
	b.WriteString("\n")
	b.WriteString(m.treasury.View())
	b.WriteString("\n")
	if m.treasury.Value() != "" && !m.flow.ValidTreasury() {
		b.WriteString(hintStyle.Render(invalidAddressHint))
		b.WriteString("\n")
	}
	b.WriteString(subtleStyle.Render(fmt.Sprintf("F1 %s · F2 %s", flow.Presets[0].Name, flow.Presets[1].Name)))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Inspected Address"))
	b.WriteString("\n")
	b.WriteString(m.subject.View())
	b.WriteString("\n")
	if m.subject.Value() != "" && !m.validSubject() {
		b.WriteString(hintStyle.Render(invalidAddressHint))
		b.WriteString("\n")
	}

	if section := m.membershipView(); section != "" {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(section))
		b.WriteString("\n")
	}

	if m.prompting {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Amount to unstake"))
		b.WriteString(subtleStyle.Render(" (max " + m.format(m.flow.Stake.Value().TotalAmount()) + ")"))
		b.WriteString("\n")
		b.WriteString(m.amount.View())
		b.WriteString("\n")
	}

	if m.busy != "" {
		b.WriteString("\n")
		b.WriteString(m.spinner.View() + " Submitting " + string(m.busy) + "...")
		b.WriteString("\n")
	}

	if m.toast != nil {
		b.WriteString("\n")
		b.WriteString(renderToast(*m.toast))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) membershipView() string {
	if m.flow.Membership.State() == async.Pending {
		return m.spinner.View() + " Resolving membership contract..."
	}
	desc := m.flow.Descriptor()
	switch desc.Kind {
	case recovery.KindNFT:
		return labelStyle.Render("NFT Recovery") + "\n\n" + nftGuidance
	case recovery.KindToken:
		return m.tokenView(desc)
	default:
		return ""
	}
}

func (m *Model) tokenView(desc recovery.MembershipDescriptor) string {
	var b strings.Builder
	b.WriteString(labelStyle.Render("Token Recovery"))
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render("Membership contract " + desc.Address.String()))
	b.WriteString("\n\n")

	snap := m.flow.Stake.Peek()
	switch snap.State {
	case async.Pending:
		b.WriteString(m.spinner.View() + " Reading stake...\n")
	case async.Stale:
		b.WriteString(warnStyle.Render("Showing the last known stake, the latest read failed."))
		b.WriteString("\n")
	}

	stake := snap.Result
	fmt.Fprintf(&b, "Staked     %s\n", m.format(stake.TotalAmount()))
	fmt.Fprintf(&b, "Pending    %s\n", m.format(stake.PendingAmount()))
	fmt.Fprintf(&b, "Claimable  %s\n", m.format(stake.ClaimableAmount()))

	if len(stake.Pending) > 0 {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Pending claims"))
		b.WriteString("\n")
		m.writeClaims(&b, stake.Pending)
	}
	if len(stake.Claimable) > 0 {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Releasable claims"))
		b.WriteString("\n")
		m.writeClaims(&b, stake.Claimable)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) writeClaims(b *strings.Builder, claims []recovery.Claim) {
	for _, c := range claims {
		fmt.Fprintf(b, "  #%d  %s  releases %s\n", c.ID, m.format(c.Amount), c.ReleaseAt)
	}
}

func (m *Model) format(amount *big.Int) string {
	network := m.flow.Session().Network
	if network == nil {
		return recovery.FormatUnits(amount, 0)
	}
	return recovery.FormatUnits(amount, network.Decimals)
}

func (m *Model) validSubject() bool {
	network := m.flow.Session().Network
	if network == nil {
		return false
	}
	return recovery.IsValidAddress(network.Bech32Prefix, m.subject.Value())
}

func renderToast(t toastMsg) string {
	switch t.level {
	case toastSuccess:
		return successStyle.Render("✔ " + t.text)
	case toastWarn:
		return warnStyle.Render("! " + t.text)
	default:
		return errorStyle.Render("✘ " + t.text)
	}
}
