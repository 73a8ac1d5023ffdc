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
package data

import (
	"slices"
	"sort"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

// Metadata keys copied from a TimeSeries block onto every row it produces.
const (
	MetaPsrType       = "psr_type"
	MetaUnitEIC       = "unit_eic"
	MetaUnitName      = "unit_name"
	MetaInDomain      = "in_domain"
	MetaOutDomain     = "out_domain"
	MetaCurrency      = "currency"
	MetaPriceUnit     = "price_unit"
	MetaQuantityUnit  = "quantity_unit"
	MetaBusinessType  = "business_type"
	MetaFlowDirection = "flow_direction"
)

// Provenance labels added by multi-identifier queries.
const (
	LabelCountry  = "country"
	LabelResource = "resource"
	LabelBorder   = "border"
)

const (
	ColumnTimestamp = "timestamp"
	ColumnValue     = "value"
)

var columnOrder = []string{
	ColumnTimestamp,
	ColumnValue,
	LabelCountry,
	LabelBorder,
	LabelResource,
	MetaPsrType,
	MetaUnitEIC,
	MetaUnitName,
	MetaInDomain,
	MetaOutDomain,
	MetaBusinessType,
	MetaFlowDirection,
	MetaCurrency,
	MetaPriceUnit,
	MetaQuantityUnit,
}

// Row is a single observation. Timestamp is always UTC and Value is nil when the source
// point carried no numeric payload. Meta holds whatever document metadata and provenance
// labels apply to the row; its key set varies by document type.
type Row struct {
	Timestamp time.Time
	Value     *float64
	Meta      map[string]string
}

// Float returns a pointer to v, for building rows by hand
func Float(v float64) *float64 {
	return &v
}

// Get returns the string form of the named column, or an empty string if the row does not
// carry it.
func (row Row) Get(column string) string {
	switch column {
	case ColumnTimestamp:
		return row.Timestamp.Format(time.RFC3339)
	case ColumnValue:
		if row.Value == nil {
			return ""
		}
		return strconv.FormatFloat(*row.Value, 'f', -1, 64)
	default:
		return row.Meta[column]
	}
}

// SetLabel adds a metadata entry, allocating the map when needed
func (row *Row) SetLabel(key, value string) {
	if row.Meta == nil {
		row.Meta = make(map[string]string, 1)
	}
	row.Meta[key] = value
}

func (row Row) MarshalZerologObject(e *zerolog.Event) {
	e.Time("Timestamp", row.Timestamp)
	if row.Value != nil {
		e.Float64("Value", *row.Value)
	}
	for k, v := range row.Meta {
		e.Str(k, v)
	}
}

type Rows []Row

// SortByTime orders rows by timestamp. Rows sharing a timestamp keep their relative order.
func (rows Rows) SortByTime() {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Timestamp.Before(rows[j].Timestamp)
	})
}

// Label sets key=value on every row
func (rows Rows) Label(key, value string) {
	for idx := range rows {
		rows[idx].SetLabel(key, value)
	}
}

// Columns lists the columns present in rows: timestamp and value first, then the known
// metadata keys in a fixed order, then any remaining keys alphabetically.
func (rows Rows) Columns() []string {
	present := make(map[string]bool)
	for _, row := range rows {
		for k := range row.Meta {
			present[k] = true
		}
	}

	columns := []string{ColumnTimestamp, ColumnValue}
	for _, col := range columnOrder[2:] {
		if present[col] {
			columns = append(columns, col)
			delete(present, col)
		}
	}

	extra := make([]string, 0, len(present))
	for k := range present {
		extra = append(extra, k)
	}
	slices.Sort(extra)

	return append(columns, extra...)
}
