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
	"context"

	"github.com/penny-vault/pvgrid/data"
	"github.com/penny-vault/pvgrid/registry"
)

// GenerationService queries generation output, forecasts and capacity. Every operation fans
// out over countries × PSR types and labels each row with the display name of its resource.
type GenerationService struct {
	client *Client
}

// Actual returns realised generation per production type. psrTypes may be left unset to
// receive every type.
func (svc *GenerationService) Actual(ctx context.Context, window data.Window, countries, psrTypes data.Selection[string]) (data.Rows, error) {
	return svc.query(ctx, GenerationActual, window, countries, psrTypes)
}

// Forecast returns the day-ahead wind and solar forecast
func (svc *GenerationService) Forecast(ctx context.Context, window data.Window, countries, psrTypes data.Selection[string]) (data.Rows, error) {
	return svc.query(ctx, GenerationForecast, window, countries, psrTypes)
}

// ForecastTotal returns the day-ahead forecast of total generation
func (svc *GenerationService) ForecastTotal(ctx context.Context, window data.Window, countries data.Selection[string]) (data.Rows, error) {
	return svc.query(ctx, GenerationForecastTotal, window, countries, data.Selection[string]{})
}

// InstalledCapacity returns installed capacity per production type
func (svc *GenerationService) InstalledCapacity(ctx context.Context, window data.Window, countries, psrTypes data.Selection[string]) (data.Rows, error) {
	return svc.query(ctx, GenerationInstalledCapacity, window, countries, psrTypes)
}

// PerPlant returns realised generation per production unit
func (svc *GenerationService) PerPlant(ctx context.Context, window data.Window, countries, psrTypes data.Selection[string]) (data.Rows, error) {
	return svc.query(ctx, GenerationPerPlant, window, countries, psrTypes)
}

func (svc *GenerationService) query(ctx context.Context, dataset Dataset, window data.Window, countries, psrTypes data.Selection[string]) (data.Rows, error) {
	client := svc.client
	if err := window.Validate(); err != nil {
		return nil, err
	}

	areas, err := client.resolveAreas(countries, "country")
	if err != nil {
		return nil, err
	}

	// an unset filter is one request for all types
	psrCodes := []string{""}
	if psrTypes.IsSet() {
		psrCodes = make([]string, 0, len(psrTypes.Values()))
		for _, identifier := range psrTypes.Values() {
			code, err := client.codes.PsrTypes.Resolve(identifier)
			if err != nil {
				return nil, err
			}
			psrCodes = append(psrCodes, code)
		}
	}

	reqs := make([]request, 0, len(areas)*len(psrCodes))
	for _, area := range areas {
		for _, psr := range psrCodes {
			req := request{
				name:   area.Key,
				params: dataset.params(area.EIC),
				post:   resourceLabeler(client.codes.PsrTypes, psr),
			}

			if psr != "" {
				req.name += "/" + psr
				req.params["psrType"] = psr
			}

			if countries.IsMany() {
				req.labels = map[string]string{data.LabelCountry: area.Name}
			}

			reqs = append(reqs, req)
		}
	}

	return client.run(ctx, dataset, window, reqs)
}

// resourceLabeler names the resource of each row after the PSR type in the document, then
// the requested PSR type. Rows with neither are left alone.
func resourceLabeler(psrTypes *registry.Registry, requested string) func(data.Rows) {
	return func(rows data.Rows) {
		for idx := range rows {
			code := rows[idx].Meta[data.MetaPsrType]
			if code == "" {
				code = requested
			}
			if code == "" {
				continue
			}
			rows[idx].SetLabel(data.LabelResource, psrTypes.NameOr(code, code))
		}
	}
}
