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

var loadCountries []string

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Total system load per bidding zone",
}

var loadActualCmd = &cobra.Command{
	Use:     "actual",
	Short:   "Actual total load",
	Example: "  pvgrid load actual -c FR -s 2024-06-01 -e 2024-06-02",
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runQuery(cmd, entsoe.LoadActual, func(ctx context.Context, client *entsoe.Client, window data.Window) (data.Rows, error) {
			return client.Load.Actual(ctx, window, data.FromSlice(loadCountries))
		})
	},
}

var loadForecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Day-ahead total load forecast",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runQuery(cmd, entsoe.LoadForecast, func(ctx context.Context, client *entsoe.Client, window data.Window) (data.Rows, error) {
			return client.Load.Forecast(ctx, window, data.FromSlice(loadCountries))
		})
	},
}

var loadWeekAheadCmd = &cobra.Command{
	Use:   "week-ahead",
	Short: "Week-ahead total load forecast",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runQuery(cmd, entsoe.LoadWeekAheadForecast, func(ctx context.Context, client *entsoe.Client, window data.Window) (data.Rows, error) {
			return client.Load.WeekAheadForecast(ctx, window, data.FromSlice(loadCountries))
		})
	},
}

func init() {
	rootCmd.AddCommand(loadCmd)
	loadCmd.AddCommand(loadActualCmd, loadForecastCmd, loadWeekAheadCmd)

	addQueryFlags(loadCmd)
	addCountryFlag(loadCmd, &loadCountries)
}
