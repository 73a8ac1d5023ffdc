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

var (
	transmissionFrom []string
	transmissionTo   []string
)

var transmissionCmd = &cobra.Command{
	Use:   "transmission",
	Short: "Cross-border flows, exchanges and transfer capacity",
	Long: `Transmission data for the border between an exporting (--from) and an
importing (--to) area. Both flags may be repeated; every combination is
queried and rows are labelled "From → To".`,
}

var transmissionFlowsCmd = &cobra.Command{
	Use:     "flows",
	Short:   "Physical cross-border flows",
	Example: "  pvgrid transmission flows --from FR --to ES --to DE_LU -s 2024-06-01 -e 2024-06-02",
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runTransmission(cmd, entsoe.TransmissionCrossborderFlows, (*entsoe.TransmissionService).CrossborderFlows)
	},
}

var transmissionExchangesCmd = &cobra.Command{
	Use:   "exchanges",
	Short: "Scheduled commercial exchanges",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runTransmission(cmd, entsoe.TransmissionScheduledExchanges, (*entsoe.TransmissionService).ScheduledExchanges)
	},
}

var transmissionCapacityCmd = &cobra.Command{
	Use:   "capacity",
	Short: "Day-ahead net transfer capacity",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runTransmission(cmd, entsoe.TransmissionNetTransferCapacity, (*entsoe.TransmissionService).NetTransferCapacity)
	},
}

type transmissionOperation func(svc *entsoe.TransmissionService, ctx context.Context, window data.Window, from, to data.Selection[string]) (data.Rows, error)

func runTransmission(cmd *cobra.Command, dataset entsoe.Dataset, operation transmissionOperation) {
	runQuery(cmd, dataset, func(ctx context.Context, client *entsoe.Client, window data.Window) (data.Rows, error) {
		return operation(client.Transmission, ctx, window, data.FromSlice(transmissionFrom), data.FromSlice(transmissionTo))
	})
}

func init() {
	rootCmd.AddCommand(transmissionCmd)
	transmissionCmd.AddCommand(transmissionFlowsCmd, transmissionExchangesCmd, transmissionCapacityCmd)

	addQueryFlags(transmissionCmd)

	flags := transmissionCmd.PersistentFlags()
	flags.StringSliceVar(&transmissionFrom, "from", nil, "exporting area; repeat for several (required)")
	flags.StringSliceVar(&transmissionTo, "to", nil, "importing area; repeat for several (required)")
	for _, name := range []string{"from", "to"} {
		if err := transmissionCmd.MarkPersistentFlagRequired(name); err != nil {
			log.Panic().Err(err).Str("Flag", name).Msg("MarkPersistentFlagRequired failed")
		}
	}
}
