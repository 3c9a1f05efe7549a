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

package main

import (
	"context"
	"fmt"
	"io"
	"math/big"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/frontier3tech/detfl/component"
	"github.com/frontier3tech/detfl/configuration"
	"github.com/frontier3tech/detfl/internal/app/recovery"
	"github.com/frontier3tech/detfl/internal/app/recovery/staking"
	"github.com/frontier3tech/detfl/observability"
)

var _configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:           "inspect",
		Short:         "Inspect Enterprise staking state from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&_configPath, "config", "c", "", "path to detfl.yaml")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "resolve <treasury>",
		Short: "Resolve the membership contract of a DAO treasury",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withManager(func(m *component.Manager) error {
				desc, err := m.Resolver().Resolve(context.Background(), m.Session().Network, args[0])
				if err != nil {
					return err
				}
				printMembership(cmd.OutOrStdout(), desc)
				return nil
			})
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "stake <membership> <user>",
		Short: "Read the stake and claims of user in a token membership contract",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withManager(func(m *component.Manager) error {
				network := m.Session().Network
				membership, err := recovery.ParseAddress(network.Bech32Prefix, args[0])
				if err != nil {
					return err
				}
				user, err := recovery.ParseAddress(network.Bech32Prefix, args[1])
				if err != nil {
					return err
				}
				snap, err := m.Reader().Read(context.Background(), network, membership, user)
				if err != nil {
					return err
				}
				printStake(cmd.OutOrStdout(), snap, network.Decimals)
				return nil
			})
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "dev-stake [token] [membership] [amount]",
		Short: "Stake cw20 tokens for the configured key, 1 ROAR in the Lion DAO by default",
		Args:  cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withManager(func(m *component.Manager) error {
				network := m.Session().Network
				token, membership := staking.DevToken, staking.DevMembership
				var err error
				if len(args) > 0 {
					if token, err = recovery.ParseAddress(network.Bech32Prefix, args[0]); err != nil {
						return err
					}
				}
				if len(args) > 1 {
					if membership, err = recovery.ParseAddress(network.Bech32Prefix, args[1]); err != nil {
						return err
					}
				}
				var amount *big.Int
				if len(args) > 2 {
					if amount, err = recovery.ParseUnits(args[2], network.Decimals); err != nil {
						return err
					}
				}
				hash, err := m.Actions().Stake(context.Background(), m.Session(), token, membership, amount)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "staked, tx %s\n", hash)
				return nil
			})
		},
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func withManager(fn func(m *component.Manager) error) error {
	cfg := configuration.Load(logrus.StandardLogger(), _configPath)
	cfg.Journal.Enabled = false
	obs := observability.Make(cfg.Log.Level, cfg.Log.Format)
	obs.Log().SetOutput(os.Stderr)

	m, err := component.Prepare(cfg, obs, nil)
	if err != nil {
		return err
	}
	defer m.Stop()
	return fn(m)
}

func printMembership(w io.Writer, desc recovery.MembershipDescriptor) {
	fmt.Fprintf(w, "kind:    %s\n", desc.Kind)
	if desc.Known() {
		fmt.Fprintf(w, "address: %s\n", desc.Address)
	}
}

func printStake(w io.Writer, snap recovery.StakeSnapshot, decimals int32) {
	fmt.Fprintf(w, "staked:    %s\n", recovery.FormatUnits(snap.TotalAmount(), decimals))
	fmt.Fprintf(w, "pending:   %s\n", recovery.FormatUnits(snap.PendingAmount(), decimals))
	fmt.Fprintf(w, "claimable: %s\n", recovery.FormatUnits(snap.ClaimableAmount(), decimals))
	for _, c := range snap.Pending {
		fmt.Fprintf(w, "  pending   #%d %s releases %s\n", c.ID, recovery.FormatUnits(c.Amount, decimals), c.ReleaseAt)
	}
	for _, c := range snap.Claimable {
		fmt.Fprintf(w, "  claimable #%d %s releases %s\n", c.ID, recovery.FormatUnits(c.Amount, decimals), c.ReleaseAt)
	}
}
