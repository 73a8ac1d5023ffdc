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
	"strings"

	"github.com/penny-vault/pvgrid/data"
)

// The provider versions its XML namespaces per document type, so every tag below names a
// local element only and matches in any namespace.

type document struct {
	TimeSeries []timeSeries `xml:"TimeSeries"`
	Reason     *reason      `xml:"Reason"`
}

type reason struct {
	Code string `xml:"code"`
	Text string `xml:"text"`
}

type timeSeries struct {
	BusinessType  string      `xml:"businessType"`
	InDomain      string      `xml:"in_Domain.mRID"`
	OutDomain     string      `xml:"out_Domain.mRID"`
	Currency      string      `xml:"currency_Unit.name"`
	PriceUnit     string      `xml:"price_Measure_Unit.name"`
	QuantityUnit  string      `xml:"quantity_Measure_Unit.name"`
	FlowDirection string      `xml:"flowDirection.direction"`
	MktPSRType    *mktPSRType `xml:"MktPSRType"`
	Periods       []period    `xml:"Period"`
}

type mktPSRType struct {
	PsrType   string                `xml:"psrType"`
	Resources *powerSystemResources `xml:"PowerSystemResources"`
}

type powerSystemResources struct {
	MRID string `xml:"mRID"`
	Name string `xml:"name"`
}

type period struct {
	TimeInterval *timeInterval `xml:"timeInterval"`
	Resolution   string        `xml:"resolution"`
	Points       []point       `xml:"Point"`
}

type timeInterval struct {
	Start string `xml:"start"`
	End   string `xml:"end"`
}

type point struct {
	Position       string `xml:"position"`
	Quantity       string `xml:"quantity"`
	PriceAmount    string `xml:"price.amount"`
	ImbalancePrice string `xml:"imbalance_Price.amount"`
}

// value returns the first populated value field, in the order quantity, price.amount,
// imbalance_Price.amount
func (pt point) value() string {
	for _, text := range []string{pt.Quantity, pt.PriceAmount, pt.ImbalancePrice} {
		if text = strings.TrimSpace(text); text != "" {
			return text
		}
	}
	return ""
}

// meta collects the optional series metadata; empty elements count as absent
func (ts timeSeries) meta() map[string]string {
	meta := make(map[string]string)
	set := func(key, value string) {
		if value = strings.TrimSpace(value); value != "" {
			meta[key] = value
		}
	}

	if ts.MktPSRType != nil {
		set(data.MetaPsrType, ts.MktPSRType.PsrType)
		if ts.MktPSRType.Resources != nil {
			set(data.MetaUnitEIC, ts.MktPSRType.Resources.MRID)
			set(data.MetaUnitName, ts.MktPSRType.Resources.Name)
		}
	}

	set(data.MetaInDomain, ts.InDomain)
	set(data.MetaOutDomain, ts.OutDomain)
	set(data.MetaCurrency, ts.Currency)
	set(data.MetaPriceUnit, ts.PriceUnit)
	set(data.MetaQuantityUnit, ts.QuantityUnit)
	set(data.MetaBusinessType, ts.BusinessType)
	set(data.MetaFlowDirection, ts.FlowDirection)

	return meta
}
