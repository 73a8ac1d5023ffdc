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
	"sync"

	"github.com/penny-vault/pvgrid/data"
	"github.com/penny-vault/pvgrid/registry"
	"github.com/penny-vault/pvgrid/timeseries"
	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc/iter"
)

// request is one provider call of a fan-out
type request struct {
	name   string
	params map[string]string
	labels map[string]string
	post   func(data.Rows)
}

type result struct {
	rows data.Rows
	err  error
}

// run executes reqs, at most client.concurrency at a time, and merges their rows in
// request order before sorting by timestamp. The first failure cancels the remaining
// requests and is returned on its own.
func (client *Client) run(ctx context.Context, dataset Dataset, window data.Window, reqs []request) (data.Rows, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("Dataset", dataset.Name).Int("NumRequests", len(reqs)).Stringer("Window", window).Msg("running query")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		once    sync.Once
		failure error
	)

	fail := func(err error) {
		once.Do(func() {
			failure = err
			cancel()
		})
	}

	mapper := iter.Mapper[request, result]{MaxGoroutines: client.concurrency}
	results := mapper.Map(reqs, func(req *request) result {
		if err := ctx.Err(); err != nil {
			fail(err)
			return result{err: err}
		}

		rows, err := client.fetch(ctx, window, req)
		if err != nil {
			if len(reqs) > 1 {
				err = fmt.Errorf("%s: %w", req.name, err)
			}
			fail(err)
		}
		return result{rows: rows, err: err}
	})

	if failure != nil {
		logger.Debug().Err(failure).Str("Dataset", dataset.Name).Msg("query failed")
		return nil, failure
	}

	size := 0
	for _, res := range results {
		size += len(res.rows)
	}

	rows := make(data.Rows, 0, size)
	for _, res := range results {
		rows = append(rows, res.rows...)
	}
	rows.SortByTime()

	logger.Debug().Str("Dataset", dataset.Name).Int("NumRows", len(rows)).Msg("query complete")
	return rows, nil
}

func (client *Client) fetch(ctx context.Context, window data.Window, req *request) (data.Rows, error) {
	docs, err := client.fetcher.Fetch(ctx, req.params, window.Start, window.End)
	if err != nil {
		return nil, err
	}

	rows, err := timeseries.ParseMany(docs)
	if err != nil {
		return nil, err
	}

	for key, value := range req.labels {
		rows.Label(key, value)
	}

	if req.post != nil {
		req.post(rows)
	}

	return rows, nil
}

// resolveAreas turns every identifier of sel into an area; nothing is fetched until all of
// them resolve
func (client *Client) resolveAreas(sel data.Selection[string], role string) ([]registry.AreaEntry, error) {
	if !sel.IsSet() {
		return nil, fmt.Errorf("%w: at least one %s is required", data.ErrInvalidParameter, role)
	}

	areas := make([]registry.AreaEntry, 0, len(sel.Values()))
	for _, identifier := range sel.Values() {
		area, err := client.codes.Areas.Lookup(identifier)
		if err != nil {
			return nil, err
		}
		areas = append(areas, area)
	}

	return areas, nil
}

// areaQuery fans out over a single area axis. A list of areas labels each row with the
// country it came from.
func (client *Client) areaQuery(ctx context.Context, dataset Dataset, window data.Window, countries data.Selection[string]) (data.Rows, error) {
	if err := window.Validate(); err != nil {
		return nil, err
	}

	areas, err := client.resolveAreas(countries, "country")
	if err != nil {
		return nil, err
	}

	reqs := make([]request, len(areas))
	for idx, area := range areas {
		reqs[idx] = request{
			name:   area.Key,
			params: dataset.params(area.EIC),
		}
		if countries.IsMany() {
			reqs[idx].labels = map[string]string{data.LabelCountry: area.Name}
		}
	}

	return client.run(ctx, dataset, window, reqs)
}
