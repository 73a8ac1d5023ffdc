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

var (
	generationCountries []string
	generationPsrTypes  []string
)

var generationCmd = &cobra.Command{
	Use:   "generation",
	Short: "Generation output, forecasts and installed capacity",
	Long: `Generation data per production type. Filter by fuel with -p using a PSR
code (B16), a short name (solar) or a display name ("Wind Onshore"); run
'pvgrid codes psr' for the full list. Rows are labelled with the resource
they describe.`,
}

var generationActualCmd = &cobra.Command{
	Use:     "actual",
	Short:   "Actual generation per production type",
	Example: "  pvgrid generation actual -c FR -p solar -s 2024-06-01 -e 2024-06-02",
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runGeneration(cmd, entsoe.GenerationActual, (*entsoe.GenerationService).Actual)
	},
}

var generationForecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Day-ahead wind and solar forecast",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runGeneration(cmd, entsoe.GenerationForecast, (*entsoe.GenerationService).Forecast)
	},
}

var generationForecastTotalCmd = &cobra.Command{
	Use:   "forecast-total",
	Short: "Day-ahead forecast of total generation",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runQuery(cmd, entsoe.GenerationForecastTotal, func(ctx context.Context, client *entsoe.Client, window data.Window) (data.Rows, error) {
			return client.Generation.ForecastTotal(ctx, window, data.FromSlice(generationCountries))
		})
	},
}

var generationCapacityCmd = &cobra.Command{
	Use:   "capacity",
	Short: "Installed generation capacity per production type",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runGeneration(cmd, entsoe.GenerationInstalledCapacity, (*entsoe.GenerationService).InstalledCapacity)
	},
}

var generationPerPlantCmd = &cobra.Command{
	Use:   "per-plant",
	Short: "Actual generation per production unit",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runGeneration(cmd, entsoe.GenerationPerPlant, (*entsoe.GenerationService).PerPlant)
	},
}

type generationOperation func(svc *entsoe.GenerationService, ctx context.Context, window data.Window, countries, psrTypes data.Selection[string]) (data.Rows, error)

func runGeneration(cmd *cobra.Command, dataset entsoe.Dataset, operation generationOperation) {
	runQuery(cmd, dataset, func(ctx context.Context, client *entsoe.Client, window data.Window) (data.Rows, error) {
		return operation(client.Generation, ctx, window, data.FromSlice(generationCountries), data.FromSlice(generationPsrTypes))
	})
}

func init() {
	rootCmd.AddCommand(generationCmd)
	generationCmd.AddCommand(
		generationActualCmd,
		generationForecastCmd,
		generationForecastTotalCmd,
		generationCapacityCmd,
		generationPerPlantCmd,
	)

	addQueryFlags(generationCmd)
	addCountryFlag(generationCmd, &generationCountries)

	for _, sub := range []*cobra.Command{generationActualCmd, generationForecastCmd, generationCapacityCmd, generationPerPlantCmd} {
		sub.Flags().StringSliceVarP(&generationPsrTypes, "psr-type", "p", nil, "production type code or name; repeat for several (default all)")
	}
}
