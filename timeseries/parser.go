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
package timeseries

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/penny-vault/pvgrid/data"
)

// Period start layouts in the order they are tried
var startLayouts = []string{
	"2006-01-02T15:04Z07:00",
	time.RFC3339,
}

// Parse flattens one provider XML document into rows. Every Point of every Period of every
// TimeSeries becomes one row stamped start + resolution × (position − 1) in UTC. Rows come
// back ordered by timestamp.
func Parse(doc []byte) (data.Rows, error) {
	var parsed document
	if err := xml.NewDecoder(bytes.NewReader(doc)).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: %w", data.ErrMalformedDocument, err)
	}

	if len(parsed.TimeSeries) == 0 {
		if parsed.Reason != nil {
			return nil, &data.NoDataError{Reason: strings.TrimSpace(parsed.Reason.Text)}
		}
		return nil, &data.NoDataError{}
	}

	rows := make(data.Rows, 0)
	for _, ts := range parsed.TimeSeries {
		meta := ts.meta()
		for _, per := range ts.Periods {
			periodRows, err := per.rows(meta)
			if err != nil {
				return nil, err
			}
			rows = append(rows, periodRows...)
		}
	}

	if len(rows) == 0 {
		return nil, &data.NoDataError{}
	}

	rows.SortByTime()
	return rows, nil
}

// ParseMany parses each document in turn and merges the results in input order before
// re-sorting by timestamp. The first failing document aborts the merge.
func ParseMany(docs [][]byte) (data.Rows, error) {
	if len(docs) == 0 {
		return nil, &data.NoDataError{}
	}

	rows := make(data.Rows, 0)
	for idx, doc := range docs {
		docRows, err := Parse(doc)
		if err != nil {
			if len(docs) > 1 {
				return nil, fmt.Errorf("document %d of %d: %w", idx+1, len(docs), err)
			}
			return nil, err
		}
		rows = append(rows, docRows...)
	}

	rows.SortByTime()
	return rows, nil
}

// rows expands a period; a period without a start or resolution yields nothing
func (per period) rows(meta map[string]string) (data.Rows, error) {
	if per.TimeInterval == nil {
		return nil, nil
	}

	startText := strings.TrimSpace(per.TimeInterval.Start)
	resolutionText := strings.TrimSpace(per.Resolution)
	if startText == "" || resolutionText == "" {
		return nil, nil
	}

	start, err := parseStart(startText)
	if err != nil {
		return nil, err
	}

	resolution, err := ParseResolution(resolutionText)
	if err != nil {
		return nil, err
	}

	rows := make(data.Rows, 0, len(per.Points))
	for _, pt := range per.Points {
		positionText := strings.TrimSpace(pt.Position)
		if positionText == "" {
			continue
		}

		position, err := strconv.Atoi(positionText)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid position %q", data.ErrMalformedDocument, positionText)
		}

		row := data.Row{
			Timestamp: start.Add(resolution * time.Duration(position-1)).UTC(),
			Meta:      make(map[string]string, len(meta)),
		}

		if text := pt.value(); text != "" {
			value, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid value %q at position %d", data.ErrMalformedDocument, text, position)
			}
			row.Value = &value
		}

		for k, v := range meta {
			row.Meta[k] = v
		}

		rows = append(rows, row)
	}

	return rows, nil
}

func parseStart(text string) (time.Time, error) {
	for _, layout := range startLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: invalid period start %q", data.ErrMalformedDocument, text)
}
