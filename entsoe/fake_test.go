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
package entsoe_test

import (
	"context"
	"fmt"
	"maps"
	"strings"
	"sync"
	"time"
)

// fakeFetcher serves canned documents and records every parameter set it receives
type fakeFetcher struct {
	mu      sync.Mutex
	calls   []map[string]string
	respond func(params map[string]string) ([][]byte, error)
}

func (fake *fakeFetcher) Fetch(ctx context.Context, params map[string]string, start, end time.Time) ([][]byte, error) {
	fake.mu.Lock()
	fake.calls = append(fake.calls, maps.Clone(params))
	fake.mu.Unlock()

	return fake.respond(params)
}

func (fake *fakeFetcher) Calls() []map[string]string {
	fake.mu.Lock()
	defer fake.mu.Unlock()
	return fake.calls
}

// seriesDoc builds a document with one time series of len(values) points
func seriesDoc(start time.Time, resolution, psrType string, values ...float64) []byte {
	var points strings.Builder
	for idx, value := range values {
		fmt.Fprintf(&points, "<Point><position>%d</position><quantity>%g</quantity></Point>", idx+1, value)
	}

	psr := ""
	if psrType != "" {
		psr = fmt.Sprintf("<MktPSRType><psrType>%s</psrType></MktPSRType>", psrType)
	}

	return []byte(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<GL_MarketDocument xmlns="urn:iec62325.351:tc57wg16:451-6:generationloaddocument:3:0">
	<TimeSeries>
		<quantity_Measure_Unit.name>MAW</quantity_Measure_Unit.name>
		%s
		<Period>
			<timeInterval><start>%s</start></timeInterval>
			<resolution>%s</resolution>
			%s
		</Period>
	</TimeSeries>
</GL_MarketDocument>`, psr, start.UTC().Format("2006-01-02T15:04Z"), resolution, points.String()))
}

func constant(n int, value float64) []float64 {
	values := make([]float64, n)
	for idx := range values {
		values[idx] = value
	}
	return values
}
