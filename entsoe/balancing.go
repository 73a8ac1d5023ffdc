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
)

// BalancingService queries imbalance settlement data per control area
type BalancingService struct {
	client *Client
}

func (svc *BalancingService) ImbalancePrices(ctx context.Context, window data.Window, countries data.Selection[string]) (data.Rows, error) {
	return svc.client.areaQuery(ctx, BalancingImbalancePrices, window, countries)
}

func (svc *BalancingService) ImbalanceVolumes(ctx context.Context, window data.Window, countries data.Selection[string]) (data.Rows, error) {
	return svc.client.areaQuery(ctx, BalancingImbalanceVolumes, window, countries)
}
