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
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/penny-vault/pvgrid/data"
	"github.com/rs/zerolog/log"
)

type Format string

const (
	Table   Format = "table"
	CSV     Format = "csv"
	JSON    Format = "json"
	Parquet Format = "parquet"
)

// MaxTableRows caps how many rows the table format prints
const MaxTableRows = 50

// Formats lists every supported format
func Formats() []Format {
	return []Format{Table, CSV, JSON, Parquet}
}

// ParseFormat validates a format name
func ParseFormat(name string) (Format, error) {
	format := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats() {
		if format == known {
			return format, nil
		}
	}
	return "", fmt.Errorf("%w: unknown output format %q (expected table, csv, json or parquet)", data.ErrInvalidParameter, name)
}

// FormatFromPath guesses the format from a file extension
func FormatFromPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return CSV, true
	case ".json":
		return JSON, true
	case ".parquet", ".pq":
		return Parquet, true
	case ".txt":
		return Table, true
	default:
		return "", false
	}
}

// Write renders rows in format to w
func Write(w io.Writer, rows data.Rows, format Format) error {
	switch format {
	case Table:
		return WriteTable(w, rows, MaxTableRows)
	case CSV:
		return WriteCSV(w, rows)
	case JSON:
		return WriteJSON(w, rows)
	case Parquet:
		return fmt.Errorf("%w: parquet output needs a file, pass --output", data.ErrInvalidParameter)
	default:
		return fmt.Errorf("%w: unknown output format %q", data.ErrInvalidParameter, format)
	}
}

// WriteFile renders rows in format to the file at path, replacing it
func WriteFile(path string, rows data.Rows, format Format) error {
	if format == Parquet {
		return WriteParquet(path, rows)
	}

	fh, err := os.Create(path)
	if err != nil {
		log.Error().Err(err).Str("FileName", path).Msg("cannot create output file")
		return err
	}

	if err := Write(fh, rows, format); err != nil {
		fh.Close()
		return err
	}

	return fh.Close()
}
