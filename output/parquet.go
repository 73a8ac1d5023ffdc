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
	"github.com/goccy/go-json"
	"github.com/penny-vault/pvgrid/data"
	"github.com/rs/zerolog/log"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"
)

// Record is the parquet schema. Metadata the schema has no column for is kept as a JSON
// object in Extra.
type Record struct {
	Timestamp     int64    `parquet:"name=timestamp, type=INT64, convertedtype=TIMESTAMP_MILLIS"`
	Value         *float64 `parquet:"name=value, type=DOUBLE, repetitiontype=OPTIONAL"`
	Country       *string  `parquet:"name=country, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY, repetitiontype=OPTIONAL"`
	Border        *string  `parquet:"name=border, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY, repetitiontype=OPTIONAL"`
	Resource      *string  `parquet:"name=resource, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY, repetitiontype=OPTIONAL"`
	PsrType       *string  `parquet:"name=psr_type, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY, repetitiontype=OPTIONAL"`
	UnitEIC       *string  `parquet:"name=unit_eic, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY, repetitiontype=OPTIONAL"`
	UnitName      *string  `parquet:"name=unit_name, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY, repetitiontype=OPTIONAL"`
	InDomain      *string  `parquet:"name=in_domain, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY, repetitiontype=OPTIONAL"`
	OutDomain     *string  `parquet:"name=out_domain, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY, repetitiontype=OPTIONAL"`
	BusinessType  *string  `parquet:"name=business_type, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY, repetitiontype=OPTIONAL"`
	FlowDirection *string  `parquet:"name=flow_direction, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY, repetitiontype=OPTIONAL"`
	Currency      *string  `parquet:"name=currency, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY, repetitiontype=OPTIONAL"`
	PriceUnit     *string  `parquet:"name=price_unit, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY, repetitiontype=OPTIONAL"`
	QuantityUnit  *string  `parquet:"name=quantity_unit, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY, repetitiontype=OPTIONAL"`
	Extra         *string  `parquet:"name=extra, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`
}

// NewRecord maps a row onto the parquet schema
func NewRecord(row data.Row) *Record {
	meta := make(map[string]string, len(row.Meta))
	for k, v := range row.Meta {
		meta[k] = v
	}

	take := func(key string) *string {
		value, ok := meta[key]
		if !ok {
			return nil
		}
		delete(meta, key)
		return &value
	}

	record := &Record{
		Timestamp:     row.Timestamp.UnixMilli(),
		Value:         row.Value,
		Country:       take(data.LabelCountry),
		Border:        take(data.LabelBorder),
		Resource:      take(data.LabelResource),
		PsrType:       take(data.MetaPsrType),
		UnitEIC:       take(data.MetaUnitEIC),
		UnitName:      take(data.MetaUnitName),
		InDomain:      take(data.MetaInDomain),
		OutDomain:     take(data.MetaOutDomain),
		BusinessType:  take(data.MetaBusinessType),
		FlowDirection: take(data.MetaFlowDirection),
		Currency:      take(data.MetaCurrency),
		PriceUnit:     take(data.MetaPriceUnit),
		QuantityUnit:  take(data.MetaQuantityUnit),
	}

	if len(meta) > 0 {
		if extra, err := json.Marshal(meta); err == nil {
			text := string(extra)
			record.Extra = &text
		}
	}

	return record
}

// WriteParquet saves rows to a ZSTD compressed parquet file
func WriteParquet(fn string, rows data.Rows) error {
	fh, err := local.NewLocalFileWriter(fn)
	if err != nil {
		log.Error().Err(err).Str("FileName", fn).Msg("cannot create local file")
		return err
	}
	defer fh.Close()

	pw, err := writer.NewParquetWriter(fh, new(Record), 4)
	if err != nil {
		log.Error().Err(err).Msg("parquet writer could not be created")
		return err
	}

	pw.RowGroupSize = 128 * 1024 * 1024 // 128M
	pw.PageSize = 8 * 1024              // 8k
	pw.CompressionType = parquet.CompressionCodec_ZSTD

	for _, row := range rows {
		if err = pw.Write(NewRecord(row)); err != nil {
			log.Error().Err(err).Time("Timestamp", row.Timestamp).Msg("parquet write failed for row")
			return err
		}
	}

	if err = pw.WriteStop(); err != nil {
		log.Error().Err(err).Msg("parquet write failed")
		return err
	}

	log.Debug().Int("NumRecords", len(rows)).Str("FileName", fn).Msg("parquet write finished")
	return nil
}
