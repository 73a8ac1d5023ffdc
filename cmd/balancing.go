// Copyright 2024
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package cmd

import (
	"context"

	"github.com/penny-vault/pvgrid/data"
	"github.com/penny-vault/pvgrid/entsoe"
	"github.com/spf13/cobra"
)

var balancingCountries []string

var balancingCmd = &cobra.Command{
	Use:   "balancing",
	Short: "Imbalance prices and volumes per control area",
}

var balancingPricesCmd = &cobra.Command{
	Use:   "prices",
	Short: "Imbalance settlement prices",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runQuery(cmd, entsoe.BalancingImbalancePrices, func(ctx context.Context, client *entsoe.Client, window data.Window) (data.Rows, error) {
			return client.Balancing.ImbalancePrices(ctx, window, data.FromSlice(balancingCountries))
		})
	},
}

var balancingVolumesCmd = &cobra.Command{
	Use:   "volumes",
	Short: "Total imbalance volumes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runQuery(cmd, entsoe.BalancingImbalanceVolumes, func(ctx context.Context, client *entsoe.Client, window data.Window) (data.Rows, error) {
			return client.Balancing.ImbalanceVolumes(ctx, window, data.FromSlice(balancingCountries))
		})
	},
}

func init() {
	rootCmd.AddCommand(balancingCmd)
	balancingCmd.AddCommand(balancingPricesCmd, balancingVolumesCmd)

	addQueryFlags(balancingCmd)
	addCountryFlag(balancingCmd, &balancingCountries)
}
