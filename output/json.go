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
package output

import (
	"io"
	"time"

	"github.com/goccy/go-json"
	"github.com/penny-vault/pvgrid/data"
)

// WriteJSON writes rows as an indented array of objects. A missing value is null.
func WriteJSON(w io.Writer, rows data.Rows) error {
	records := make([]map[string]any, len(rows))
	for idx, row := range rows {
		record := make(map[string]any, len(row.Meta)+2)
		for k, v := range row.Meta {
			record[k] = v
		}
		record[data.ColumnTimestamp] = row.Timestamp.UTC().Format(time.RFC3339)
		record[data.ColumnValue] = row.Value
		records[idx] = record
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(records)
}
