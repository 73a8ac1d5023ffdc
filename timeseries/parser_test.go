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
package timeseries_test

import (
	"errors"
	"fmt"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/penny-vault/pvgrid/data"
	"github.com/penny-vault/pvgrid/timeseries"
)

const glNamespace = "urn:iec62325.351:tc57wg16:451-6:generationloaddocument:3:0"

func glDocument(series ...string) []byte {
	return []byte(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<GL_MarketDocument xmlns="%s">
	<mRID>a1b2c3</mRID>
	<type>A75</type>
	%s
</GL_MarketDocument>`, glNamespace, strings.Join(series, "\n")))
}

func generationSeries(psrType, start, resolution string, quantities ...string) string {
	var points strings.Builder
	for idx, quantity := range quantities {
		fmt.Fprintf(&points, "<Point><position>%d</position><quantity>%s</quantity></Point>", idx+1, quantity)
	}

	return fmt.Sprintf(`<TimeSeries>
		<mRID>1</mRID>
		<businessType>A01</businessType>
		<inBiddingZone_Domain.mRID codingScheme="A01">10YFR-RTE------C</inBiddingZone_Domain.mRID>
		<quantity_Measure_Unit.name>MAW</quantity_Measure_Unit.name>
		<MktPSRType><psrType>%s</psrType></MktPSRType>
		<Period>
			<timeInterval><start>%s</start><end>2024-06-02T22:00Z</end></timeInterval>
			<resolution>%s</resolution>
			%s
		</Period>
	</TimeSeries>`, psrType, start, resolution, points.String())
}

var _ = Describe("Parse", func() {
	It("places points at start + resolution × (position − 1)", func() {
		doc := glDocument(generationSeries("B16", "2024-06-01T22:00Z", "PT15M", "0", "10", "20", "30"))

		rows, err := timeseries.Parse(doc)
		Expect(err).NotTo(HaveOccurred())
		Expect(rows).To(HaveLen(4))

		start := time.Date(2024, 6, 1, 22, 0, 0, 0, time.UTC)
		for idx, row := range rows {
			Expect(row.Timestamp).To(Equal(start.Add(time.Duration(idx) * 15 * time.Minute)))
			Expect(row.Timestamp.Location()).To(Equal(time.UTC))
			Expect(*row.Value).To(Equal(float64(idx * 10)))
		}
	})

	It("honours gaps in positions", func() {
		doc := glDocument(`<TimeSeries><Period>
			<timeInterval><start>2024-01-01T00:00Z</start><end>2024-01-01T05:00Z</end></timeInterval>
			<resolution>PT60M</resolution>
			<Point><position>1</position><quantity>1</quantity></Point>
			<Point><position>5</position><quantity>5</quantity></Point>
		</Period></TimeSeries>`)

		rows, err := timeseries.Parse(doc)
		Expect(err).NotTo(HaveOccurred())
		Expect(rows).To(HaveLen(2))
		Expect(rows[1].Timestamp).To(Equal(time.Date(2024, 1, 1, 4, 0, 0, 0, time.UTC)))
	})

	It("converts offset starts to UTC", func() {
		doc := glDocument(generationSeries("B16", "2024-06-02T00:00:00+02:00", "PT60M", "1"))

		rows, err := timeseries.Parse(doc)
		Expect(err).NotTo(HaveOccurred())
		Expect(rows[0].Timestamp).To(Equal(time.Date(2024, 6, 1, 22, 0, 0, 0, time.UTC)))
	})

	It("copies series metadata onto every row", func() {
		doc := glDocument(generationSeries("B16", "2024-06-01T22:00Z", "PT60M", "1", "2"))

		rows, err := timeseries.Parse(doc)
		Expect(err).NotTo(HaveOccurred())
		for _, row := range rows {
			Expect(row.Meta).To(HaveKeyWithValue(data.MetaPsrType, "B16"))
			Expect(row.Meta).To(HaveKeyWithValue(data.MetaQuantityUnit, "MAW"))
			Expect(row.Meta).To(HaveKeyWithValue(data.MetaBusinessType, "A01"))
			Expect(row.Meta).NotTo(HaveKey(data.MetaCurrency))
		}
	})

	It("reads per-unit identifiers", func() {
		doc := glDocument(`<TimeSeries>
			<MktPSRType>
				<psrType>B14</psrType>
				<PowerSystemResources><mRID>17W100P100P0345B</mRID><name>GRAVELINES 1</name></PowerSystemResources>
			</MktPSRType>
			<Period>
				<timeInterval><start>2024-01-01T00:00Z</start><end>2024-01-01T01:00Z</end></timeInterval>
				<resolution>PT60M</resolution>
				<Point><position>1</position><quantity>910</quantity></Point>
			</Period>
		</TimeSeries>`)

		rows, err := timeseries.Parse(doc)
		Expect(err).NotTo(HaveOccurred())
		Expect(rows[0].Meta).To(Equal(map[string]string{
			data.MetaPsrType:  "B14",
			data.MetaUnitEIC:  "17W100P100P0345B",
			data.MetaUnitName: "GRAVELINES 1",
		}))
	})

	It("reads transmission domains", func() {
		doc := []byte(`<Publication_MarketDocument xmlns="urn:iec62325.351:tc57wg16:451-3:publicationdocument:7:0">
			<TimeSeries>
				<in_Domain.mRID codingScheme="A01">10YES-REE------0</in_Domain.mRID>
				<out_Domain.mRID codingScheme="A01">10YFR-RTE------C</out_Domain.mRID>
				<quantity_Measure_Unit.name>MAW</quantity_Measure_Unit.name>
				<Period>
					<timeInterval><start>2024-01-01T00:00Z</start><end>2024-01-01T01:00Z</end></timeInterval>
					<resolution>PT60M</resolution>
					<Point><position>1</position><quantity>1500</quantity></Point>
				</Period>
			</TimeSeries>
		</Publication_MarketDocument>`)

		rows, err := timeseries.Parse(doc)
		Expect(err).NotTo(HaveOccurred())
		Expect(rows[0].Meta).To(HaveKeyWithValue(data.MetaInDomain, "10YES-REE------0"))
		Expect(rows[0].Meta).To(HaveKeyWithValue(data.MetaOutDomain, "10YFR-RTE------C"))
	})

	Context("point values", func() {
		It("falls back from quantity to price.amount to imbalance_Price.amount", func() {
			doc := []byte(`<Balancing_MarketDocument xmlns="urn:iec62325.351:tc57wg16:451-6:balancingdocument:4:4">
				<TimeSeries>
					<currency_Unit.name>EUR</currency_Unit.name>
					<price_Measure_Unit.name>MWH</price_Measure_Unit.name>
					<Period>
						<timeInterval><start>2024-01-01T00:00Z</start><end>2024-01-01T01:00Z</end></timeInterval>
						<resolution>PT15M</resolution>
						<Point><position>1</position><quantity>1.5</quantity><price.amount>99</price.amount></Point>
						<Point><position>2</position><price.amount>42.25</price.amount></Point>
						<Point><position>3</position><imbalance_Price.amount>-12.5</imbalance_Price.amount><imbalance_Price.category>A04</imbalance_Price.category></Point>
						<Point><position>4</position></Point>
					</Period>
				</TimeSeries>
			</Balancing_MarketDocument>`)

			rows, err := timeseries.Parse(doc)
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(4))
			Expect(*rows[0].Value).To(Equal(1.5))
			Expect(*rows[1].Value).To(Equal(42.25))
			Expect(*rows[2].Value).To(Equal(-12.5))
			Expect(rows[3].Value).To(BeNil())
			Expect(rows[3].Meta).To(HaveKeyWithValue(data.MetaCurrency, "EUR"))
			Expect(rows[3].Meta).To(HaveKeyWithValue(data.MetaPriceUnit, "MWH"))
		})

		It("treats empty value elements as absent", func() {
			doc := glDocument(`<TimeSeries><Period>
				<timeInterval><start>2024-01-01T00:00Z</start><end>2024-01-01T01:00Z</end></timeInterval>
				<resolution>PT60M</resolution>
				<Point><position>1</position><quantity></quantity><price.amount>7</price.amount></Point>
			</Period></TimeSeries>`)

			rows, err := timeseries.Parse(doc)
			Expect(err).NotTo(HaveOccurred())
			Expect(*rows[0].Value).To(Equal(7.0))
		})
	})

	Context("skipped elements", func() {
		It("skips points without a position", func() {
			doc := glDocument(`<TimeSeries><Period>
				<timeInterval><start>2024-01-01T00:00Z</start><end>2024-01-01T01:00Z</end></timeInterval>
				<resolution>PT60M</resolution>
				<Point><quantity>1</quantity></Point>
				<Point><position>1</position><quantity>2</quantity></Point>
			</Period></TimeSeries>`)

			rows, err := timeseries.Parse(doc)
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(1))
			Expect(*rows[0].Value).To(Equal(2.0))
		})

		It("skips periods without a start or resolution", func() {
			doc := glDocument(`<TimeSeries>
				<Period>
					<resolution>PT60M</resolution>
					<Point><position>1</position><quantity>1</quantity></Point>
				</Period>
				<Period>
					<timeInterval><start>2024-01-01T00:00Z</start></timeInterval>
					<Point><position>1</position><quantity>2</quantity></Point>
				</Period>
				<Period>
					<timeInterval><start>2024-01-01T00:00Z</start></timeInterval>
					<resolution>PT60M</resolution>
					<Point><position>1</position><quantity>3</quantity></Point>
				</Period>
			</TimeSeries>`)

			rows, err := timeseries.Parse(doc)
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(1))
			Expect(*rows[0].Value).To(Equal(3.0))
		})
	})

	Context("multiple series", func() {
		It("merges series and orders rows by timestamp", func() {
			doc := glDocument(
				generationSeries("B16", "2024-06-01T22:00Z", "PT60M", "1", "2", "3"),
				generationSeries("B19", "2024-06-01T22:00Z", "PT60M", "4", "5", "6"),
			)

			rows, err := timeseries.Parse(doc)
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(6))

			for idx := 1; idx < len(rows); idx++ {
				Expect(rows[idx].Timestamp.Before(rows[idx-1].Timestamp)).To(BeFalse())
			}

			// rows sharing a timestamp keep document order
			Expect(rows[0].Meta[data.MetaPsrType]).To(Equal("B16"))
			Expect(rows[1].Meta[data.MetaPsrType]).To(Equal("B19"))
			Expect(*rows[1].Value).To(Equal(4.0))
		})

		It("expands every period of a series", func() {
			doc := glDocument(`<TimeSeries>
				<Period>
					<timeInterval><start>2024-01-02T00:00Z</start></timeInterval>
					<resolution>P1D</resolution>
					<Point><position>1</position><quantity>2</quantity></Point>
				</Period>
				<Period>
					<timeInterval><start>2024-01-01T00:00Z</start></timeInterval>
					<resolution>P1D</resolution>
					<Point><position>1</position><quantity>1</quantity></Point>
				</Period>
			</TimeSeries>`)

			rows, err := timeseries.Parse(doc)
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(2))
			Expect(*rows[0].Value).To(Equal(1.0))
			Expect(*rows[1].Value).To(Equal(2.0))
		})
	})

	Context("no data", func() {
		It("reports the provider's reason", func() {
			doc := []byte(`<?xml version="1.0" encoding="UTF-8"?>
<Acknowledgement_MarketDocument xmlns="urn:iec62325.351:tc57wg16:451-1:acknowledgementdocument:7:0">
	<mRID>x</mRID>
	<Reason>
		<code>999</code>
		<text>No matching data found for Data item ACTUAL_GENERATION_PER_PRODUCTION_TYPE [16.1.B&amp;C]</text>
	</Reason>
</Acknowledgement_MarketDocument>`)

			_, err := timeseries.Parse(doc)
			Expect(errors.Is(err, data.ErrNoData)).To(BeTrue())

			var noData *data.NoDataError
			Expect(errors.As(err, &noData)).To(BeTrue())
			Expect(noData.Reason).To(HavePrefix("No matching data found"))
			Expect(err.Error()).To(ContainSubstring("[16.1.B&C]"))
		})

		It("uses the default message when the reason has no text", func() {
			doc := []byte(`<Acknowledgement_MarketDocument><Reason><code>999</code></Reason></Acknowledgement_MarketDocument>`)

			_, err := timeseries.Parse(doc)
			Expect(err).To(MatchError(data.ErrNoData))
			Expect(err.Error()).To(Equal(data.DefaultNoDataMessage))
		})

		It("uses the default message when there is no reason", func() {
			_, err := timeseries.Parse(glDocument())
			Expect(err).To(MatchError(data.ErrNoData))
			Expect(err.Error()).To(Equal(data.DefaultNoDataMessage))
		})

		It("reports no data when no point produces a row", func() {
			doc := glDocument(`<TimeSeries><Period><resolution>PT60M</resolution></Period></TimeSeries>`)

			_, err := timeseries.Parse(doc)
			Expect(err).To(MatchError(data.ErrNoData))
		})
	})

	Context("malformed documents", func() {
		DescribeTable("fail with ErrMalformedDocument",
			func(doc []byte) {
				_, err := timeseries.Parse(doc)
				Expect(err).To(MatchError(data.ErrMalformedDocument))
				Expect(errors.Is(err, data.ErrNoData)).To(BeFalse())
			},
			Entry("not XML", []byte("this is not xml")),
			Entry("truncated XML", []byte("<GL_MarketDocument><TimeSeries>")),
			Entry("bad resolution", glDocument(generationSeries("B16", "2024-01-01T00:00Z", "P1M", "1"))),
			Entry("bad start", glDocument(generationSeries("B16", "yesterday", "PT60M", "1"))),
			Entry("non-numeric value", glDocument(generationSeries("B16", "2024-01-01T00:00Z", "PT60M", "lots"))),
			Entry("non-numeric position", glDocument(`<TimeSeries><Period>
				<timeInterval><start>2024-01-01T00:00Z</start></timeInterval>
				<resolution>PT60M</resolution>
				<Point><position>first</position><quantity>1</quantity></Point>
			</Period></TimeSeries>`)),
		)
	})
})

var _ = Describe("ParseMany", func() {
	It("matches Parse for a single document", func() {
		doc := glDocument(
			generationSeries("B16", "2024-06-01T22:00Z", "PT15M", "3", "2", "1"),
			generationSeries("B19", "2024-06-01T22:30Z", "PT15M", "9"),
		)

		single, err := timeseries.Parse(doc)
		Expect(err).NotTo(HaveOccurred())

		many, err := timeseries.ParseMany([][]byte{doc})
		Expect(err).NotTo(HaveOccurred())
		Expect(many).To(Equal(single))
	})

	It("concatenates documents and re-sorts", func() {
		later := glDocument(generationSeries("B16", "2025-01-01T00:00Z", "PT60M", "2"))
		earlier := glDocument(generationSeries("B16", "2024-01-01T00:00Z", "PT60M", "1"))

		rows, err := timeseries.ParseMany([][]byte{later, earlier})
		Expect(err).NotTo(HaveOccurred())
		Expect(rows).To(HaveLen(2))
		Expect(*rows[0].Value).To(Equal(1.0))
		Expect(*rows[1].Value).To(Equal(2.0))
	})

	It("aborts on the first failing document", func() {
		good := glDocument(generationSeries("B16", "2024-01-01T00:00Z", "PT60M", "1"))

		_, err := timeseries.ParseMany([][]byte{good, glDocument()})
		Expect(err).To(MatchError(data.ErrNoData))
		Expect(err.Error()).To(ContainSubstring("document 2 of 2"))
	})
})
