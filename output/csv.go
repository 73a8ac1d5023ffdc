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
	"encoding/csv"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/penny-vault/pvgrid/data"
)

// WriteCSV writes a header line followed by one record per row. Columns a row does not
// carry are left empty.
func WriteCSV(w io.Writer, rows data.Rows) error {
	writer := gocsv.NewSafeCSVWriter(csv.NewWriter(w))
	columns := rows.Columns()

	if err := writer.Write(columns); err != nil {
		return err
	}

	record := make([]string, len(columns))
	for _, row := range rows {
		for idx, column := range columns {
			record[idx] = row.Get(column)
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
