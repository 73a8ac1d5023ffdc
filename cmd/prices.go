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
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var priceCountries []string

var pricesCmd = &cobra.Command{
	Use:   "prices",
	Short: "Market prices",
}

var pricesDayAheadCmd = &cobra.Command{
	Use:   "day-ahead",
	Short: "Day-ahead market prices",
	Long: `Day-ahead clearing prices for one or more bidding zones. Repeat -c (or
separate zones with commas) to query several zones; each row is then labelled
with the zone it belongs to.`,
	Example: "  pvgrid prices day-ahead -c FR -c ES -s 2024-06-01 -e 2024-06-08 -o prices.parquet",
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runQuery(cmd, entsoe.PricesDayAhead, func(ctx context.Context, client *entsoe.Client, window data.Window) (data.Rows, error) {
			return client.Prices.DayAhead(ctx, window, data.FromSlice(priceCountries))
		})
	},
}

func init() {
	rootCmd.AddCommand(pricesCmd)
	pricesCmd.AddCommand(pricesDayAheadCmd)

	addQueryFlags(pricesCmd)
	addCountryFlag(pricesCmd, &priceCountries)
}

// addCountryFlag registers the required, repeatable --country flag
func addCountryFlag(cmd *cobra.Command, target *[]string) {
	cmd.PersistentFlags().StringSliceVarP(target, "country", "c", nil, "area key, EIC code or name; repeat for several (required)")
	if err := cmd.MarkPersistentFlagRequired("country"); err != nil {
		log.Panic().Err(err).Msg("MarkPersistentFlagRequired for country failed")
	}
}
