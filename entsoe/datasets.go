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
package entsoe

import (
	"fmt"
	"maps"
	"strings"

	"github.com/penny-vault/pvgrid/data"
)

// Dataset describes one query the client can run: which provider document it requests and
// how the area identifiers are placed in the request.
type Dataset struct {
	Name         string
	Description  string
	DocumentType string
	ProcessType  string

	// AreaParams are the query parameters that receive an area EIC. Transmission datasets
	// list the importing side first.
	AreaParams []string

	// Fixed holds further parameters sent unchanged with every request
	Fixed map[string]string

	// PsrFilter is set when the dataset accepts an optional psrType filter
	PsrFilter bool
}

var (
	LoadActual = Dataset{
		Name:         "load.actual",
		Description:  "Actual total load per bidding zone.",
		DocumentType: "A65",
		ProcessType:  "A16",
		AreaParams:   []string{"outBiddingZone_Domain"},
	}
	LoadForecast = Dataset{
		Name:         "load.forecast",
		Description:  "Day-ahead total load forecast per bidding zone.",
		DocumentType: "A65",
		ProcessType:  "A01",
		AreaParams:   []string{"outBiddingZone_Domain"},
	}
	LoadWeekAheadForecast = Dataset{
		Name:         "load.week_ahead",
		Description:  "Week-ahead total load forecast (daily minimum and maximum).",
		DocumentType: "A65",
		ProcessType:  "A31",
		AreaParams:   []string{"outBiddingZone_Domain"},
	}
	PricesDayAhead = Dataset{
		Name:         "prices.day_ahead",
		Description:  "Day-ahead market clearing prices.",
		DocumentType: "A44",
		AreaParams:   []string{"in_Domain", "out_Domain"},
	}
	GenerationActual = Dataset{
		Name:         "generation.actual",
		Description:  "Actual generation aggregated per production type.",
		DocumentType: "A75",
		ProcessType:  "A16",
		AreaParams:   []string{"in_Domain"},
		PsrFilter:    true,
	}
	GenerationForecast = Dataset{
		Name:         "generation.forecast",
		Description:  "Day-ahead wind and solar generation forecast.",
		DocumentType: "A69",
		ProcessType:  "A01",
		AreaParams:   []string{"in_Domain"},
		PsrFilter:    true,
	}
	GenerationForecastTotal = Dataset{
		Name:         "generation.forecast_total",
		Description:  "Day-ahead aggregated generation forecast for all production types.",
		DocumentType: "A71",
		ProcessType:  "A01",
		AreaParams:   []string{"in_Domain"},
	}
	GenerationInstalledCapacity = Dataset{
		Name:         "generation.installed_capacity",
		Description:  "Installed generation capacity per production type, year ahead.",
		DocumentType: "A68",
		ProcessType:  "A33",
		AreaParams:   []string{"in_Domain"},
		PsrFilter:    true,
	}
	GenerationPerPlant = Dataset{
		Name:         "generation.per_plant",
		Description:  "Actual generation per production unit.",
		DocumentType: "A73",
		ProcessType:  "A16",
		AreaParams:   []string{"in_Domain"},
		PsrFilter:    true,
	}
	TransmissionCrossborderFlows = Dataset{
		Name:         "transmission.crossborder_flows",
		Description:  "Physical flows between two areas.",
		DocumentType: "A11",
		AreaParams:   []string{"in_Domain", "out_Domain"},
	}
	TransmissionScheduledExchanges = Dataset{
		Name:         "transmission.scheduled_exchanges",
		Description:  "Scheduled commercial exchanges between two areas.",
		DocumentType: "A09",
		AreaParams:   []string{"in_Domain", "out_Domain"},
	}
	TransmissionNetTransferCapacity = Dataset{
		Name:         "transmission.net_transfer_capacity",
		Description:  "Day-ahead forecasted net transfer capacity between two areas.",
		DocumentType: "A61",
		AreaParams:   []string{"in_Domain", "out_Domain"},
		Fixed:        map[string]string{"contract_MarketAgreement.Type": "A01"},
	}
	BalancingImbalancePrices = Dataset{
		Name:         "balancing.imbalance_prices",
		Description:  "Imbalance settlement prices per control area.",
		DocumentType: "A85",
		AreaParams:   []string{"controlArea_Domain"},
	}
	BalancingImbalanceVolumes = Dataset{
		Name:         "balancing.imbalance_volumes",
		Description:  "Total imbalance volumes per control area.",
		DocumentType: "A86",
		AreaParams:   []string{"controlArea_Domain"},
	}
)

// Datasets lists every dataset in catalog order
func Datasets() []Dataset {
	return []Dataset{
		LoadActual,
		LoadForecast,
		LoadWeekAheadForecast,
		PricesDayAhead,
		GenerationActual,
		GenerationForecast,
		GenerationForecastTotal,
		GenerationInstalledCapacity,
		GenerationPerPlant,
		TransmissionCrossborderFlows,
		TransmissionScheduledExchanges,
		TransmissionNetTransferCapacity,
		BalancingImbalancePrices,
		BalancingImbalanceVolumes,
	}
}

// LookupDataset finds a dataset by name
func LookupDataset(name string) (Dataset, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, dataset := range Datasets() {
		if dataset.Name == key {
			return dataset, nil
		}
	}
	return Dataset{}, fmt.Errorf("%w: unknown dataset %q", data.ErrInvalidParameter, name)
}

// Service is the part of the name before the dot, e.g. "generation"
func (dataset Dataset) Service() string {
	service, _, _ := strings.Cut(dataset.Name, ".")
	return service
}

// params builds the request parameters. Each area parameter takes the EIC at the same
// position in eics; a single EIC fills every area parameter.
func (dataset Dataset) params(eics ...string) map[string]string {
	params := make(map[string]string, len(dataset.AreaParams)+len(dataset.Fixed)+2)
	params["documentType"] = dataset.DocumentType
	if dataset.ProcessType != "" {
		params["processType"] = dataset.ProcessType
	}

	for idx, param := range dataset.AreaParams {
		if len(eics) == 1 {
			params[param] = eics[0]
		} else {
			params[param] = eics[idx]
		}
	}

	maps.Copy(params, dataset.Fixed)
	return params
}
