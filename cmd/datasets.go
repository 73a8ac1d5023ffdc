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
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/penny-vault/pvgrid/entsoe"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// datasetsCmd represents the datasets command
var datasetsCmd = &cobra.Command{
	Use:   "datasets [name]",
	Short: "List all datasets available or get details about a specific dataset",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name := ""
		if len(args) > 0 {
			name = args[0]
		}

		doc, err := datasetsMarkdown(name)
		if err != nil {
			log.Fatal().Err(err).Msg("could not describe dataset")
		}

		renderMarkdown(cmd, doc)
	},
}

// datasetsMarkdown lists every dataset grouped by service, or details one dataset when name is set
func datasetsMarkdown(name string) (string, error) {
	var builder strings.Builder

	if name != "" {
		dataset, err := entsoe.LookupDataset(name)
		if err != nil {
			return "", err
		}

		fmt.Fprintf(&builder, "# %s\n%s\n\n", dataset.Name, dataset.Description)
		fmt.Fprintf(&builder, "- Command: `pvgrid %s`\n", datasetCommand(dataset))
		fmt.Fprintf(&builder, "- Document type: `%s`\n", dataset.DocumentType)
		if dataset.ProcessType != "" {
			fmt.Fprintf(&builder, "- Process type: `%s`\n", dataset.ProcessType)
		}
		fmt.Fprintf(&builder, "- Area parameters: %s\n", strings.Join(dataset.AreaParams, ", "))
		for _, param := range slices.Sorted(maps.Keys(dataset.Fixed)) {
			fmt.Fprintf(&builder, "- %s: `%s`\n", param, dataset.Fixed[param])
		}
		if dataset.PsrFilter {
			builder.WriteString("- Accepts a production type filter (`--psr-type`)\n")
		}
		return builder.String(), nil
	}

	builder.WriteString("# Available Datasets\n")
	service := ""
	for _, dataset := range entsoe.Datasets() {
		if dataset.Service() != service {
			service = dataset.Service()
			fmt.Fprintf(&builder, "\n## %s\n", capitalize(service))
		}
		fmt.Fprintf(&builder, "- **%s** (`pvgrid %s`): %s\n", dataset.Name, datasetCommand(dataset), dataset.Description)
	}

	return builder.String(), nil
}

// datasetCommand maps a dataset to the sub-command that queries it
func datasetCommand(dataset entsoe.Dataset) string {
	if command, ok := datasetCommands[dataset.Name]; ok {
		return command
	}
	return strings.ReplaceAll(dataset.Name, ".", " ")
}

var datasetCommands = map[string]string{
	entsoe.LoadWeekAheadForecast.Name:           "load week-ahead",
	entsoe.PricesDayAhead.Name:                  "prices day-ahead",
	entsoe.GenerationForecastTotal.Name:         "generation forecast-total",
	entsoe.GenerationInstalledCapacity.Name:     "generation capacity",
	entsoe.GenerationPerPlant.Name:              "generation per-plant",
	entsoe.TransmissionCrossborderFlows.Name:    "transmission flows",
	entsoe.TransmissionScheduledExchanges.Name:  "transmission exchanges",
	entsoe.TransmissionNetTransferCapacity.Name: "transmission capacity",
	entsoe.BalancingImbalancePrices.Name:        "balancing prices",
	entsoe.BalancingImbalanceVolumes.Name:       "balancing volumes",
}

func init() {
	rootCmd.AddCommand(datasetsCmd)
}
