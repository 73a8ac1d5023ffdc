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
	"fmt"

	"github.com/penny-vault/pvgrid/data"
)

// TransmissionService queries exchanges across a border. The exporting side is "from" and
// the importing side is "to".
type TransmissionService struct {
	client *Client
}

// CrossborderFlows returns physical flows from → to
func (svc *TransmissionService) CrossborderFlows(ctx context.Context, window data.Window, from, to data.Selection[string]) (data.Rows, error) {
	return svc.query(ctx, TransmissionCrossborderFlows, window, from, to)
}

// ScheduledExchanges returns commercial schedules from → to
func (svc *TransmissionService) ScheduledExchanges(ctx context.Context, window data.Window, from, to data.Selection[string]) (data.Rows, error) {
	return svc.query(ctx, TransmissionScheduledExchanges, window, from, to)
}

// NetTransferCapacity returns the day-ahead net transfer capacity from → to
func (svc *TransmissionService) NetTransferCapacity(ctx context.Context, window data.Window, from, to data.Selection[string]) (data.Rows, error) {
	return svc.query(ctx, TransmissionNetTransferCapacity, window, from, to)
}

// query fans out over every from × to pair. Pairs naming the same area on both sides are
// dropped when either side is a list.
func (svc *TransmissionService) query(ctx context.Context, dataset Dataset, window data.Window, from, to data.Selection[string]) (data.Rows, error) {
	client := svc.client
	if err := window.Validate(); err != nil {
		return nil, err
	}

	fromAreas, err := client.resolveAreas(from, "exporting area")
	if err != nil {
		return nil, err
	}

	toAreas, err := client.resolveAreas(to, "importing area")
	if err != nil {
		return nil, err
	}

	labelled := from.IsMany() || to.IsMany()
	reqs := make([]request, 0, len(fromAreas)*len(toAreas))
	for _, fromArea := range fromAreas {
		for _, toArea := range toAreas {
			if fromArea.EIC == toArea.EIC {
				if labelled {
					continue
				}
				return nil, fmt.Errorf("%w: %s cannot exchange with itself", data.ErrInvalidParameter, fromArea.Key)
			}

			req := request{
				name:   fromArea.Key + "->" + toArea.Key,
				params: dataset.params(toArea.EIC, fromArea.EIC),
			}
			if labelled {
				req.labels = map[string]string{data.LabelBorder: fmt.Sprintf("%s → %s", fromArea.Name, toArea.Name)}
			}
			reqs = append(reqs, req)
		}
	}

	if len(reqs) == 0 {
		return nil, fmt.Errorf("%w: no border left after removing pairs of an area with itself", data.ErrInvalidParameter)
	}

	return client.run(ctx, dataset, window, reqs)
}
