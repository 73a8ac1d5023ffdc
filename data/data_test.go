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
package data_test

import (
	"errors"
	"fmt"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/penny-vault/pvgrid/data"
)

var _ = Describe("Rows", func() {
	It("sorts by time keeping ties in order", func() {
		t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		rows := data.Rows{
			{Timestamp: t0.Add(time.Hour), Meta: map[string]string{"n": "a"}},
			{Timestamp: t0, Meta: map[string]string{"n": "b"}},
			{Timestamp: t0.Add(time.Hour), Meta: map[string]string{"n": "c"}},
			{Timestamp: t0, Meta: map[string]string{"n": "d"}},
		}

		rows.SortByTime()

		order := make([]string, len(rows))
		for idx, row := range rows {
			order[idx] = row.Meta["n"]
		}
		Expect(order).To(Equal([]string{"b", "d", "a", "c"}))
	})

	It("lists columns in canonical order with unknown keys last", func() {
		rows := data.Rows{
			{Meta: map[string]string{"zeta": "1", data.MetaCurrency: "EUR"}},
			{Meta: map[string]string{data.LabelCountry: "France", "alpha": "2", data.MetaPsrType: "B16"}},
		}

		Expect(rows.Columns()).To(Equal([]string{
			data.ColumnTimestamp, data.ColumnValue,
			data.LabelCountry, data.MetaPsrType, data.MetaCurrency,
			"alpha", "zeta",
		}))
	})

	It("labels every row, including rows without metadata", func() {
		rows := data.Rows{{}, {Meta: map[string]string{data.MetaPsrType: "B16"}}}
		rows.Label(data.LabelCountry, "France")

		for _, row := range rows {
			Expect(row.Meta).To(HaveKeyWithValue(data.LabelCountry, "France"))
		}
		Expect(rows[1].Meta).To(HaveKeyWithValue(data.MetaPsrType, "B16"))
	})

	It("formats columns as strings", func() {
		row := data.Row{
			Timestamp: time.Date(2024, 6, 1, 22, 15, 0, 0, time.UTC),
			Value:     data.Float(12.5),
			Meta:      map[string]string{data.MetaPsrType: "B16"},
		}

		Expect(row.Get(data.ColumnTimestamp)).To(Equal("2024-06-01T22:15:00Z"))
		Expect(row.Get(data.ColumnValue)).To(Equal("12.5"))
		Expect(row.Get(data.MetaPsrType)).To(Equal("B16"))
		Expect(row.Get(data.MetaCurrency)).To(BeEmpty())
		Expect(data.Row{}.Get(data.ColumnValue)).To(BeEmpty())
	})
})

var _ = Describe("Selection", func() {
	It("treats a single value as a list of one that is not many", func() {
		sel := data.One("FR")
		Expect(sel.Values()).To(Equal([]string{"FR"}))
		Expect(sel.IsMany()).To(BeFalse())
		Expect(sel.IsSet()).To(BeTrue())
	})

	It("keeps a list of one as many", func() {
		sel := data.Many("FR")
		Expect(sel.Values()).To(Equal([]string{"FR"}))
		Expect(sel.IsMany()).To(BeTrue())
	})

	It("does not share the caller's slice", func() {
		values := []string{"FR", "ES"}
		sel := data.Many(values...)
		values[0] = "DE"
		Expect(sel.Values()).To(Equal([]string{"FR", "ES"}))
	})

	DescribeTable("collapses flag values",
		func(values []string, isSet, isMany bool) {
			sel := data.FromSlice(values)
			Expect(sel.IsSet()).To(Equal(isSet))
			Expect(sel.IsMany()).To(Equal(isMany))
		},
		Entry("none", []string{}, false, false),
		Entry("one", []string{"FR"}, true, false),
		Entry("two", []string{"FR", "ES"}, true, true),
	)
})

var _ = Describe("Window", func() {
	brussels, _ := time.LoadLocation("Europe/Brussels")

	It("interprets dates in the default zone", func() {
		window, err := data.ParseWindow("2024-06-02", "2024-06-03", brussels)
		Expect(err).NotTo(HaveOccurred())
		Expect(window.Start.UTC()).To(Equal(time.Date(2024, 6, 1, 22, 0, 0, 0, time.UTC)))
		Expect(window.End.UTC()).To(Equal(time.Date(2024, 6, 2, 22, 0, 0, 0, time.UTC)))
	})

	It("keeps explicit offsets", func() {
		start, err := data.ParseTime("2024-06-02T00:00:00Z", brussels)
		Expect(err).NotTo(HaveOccurred())
		Expect(start.UTC()).To(Equal(time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)))

		start, err = data.ParseTime("2024-06-02T00:00+02:00", nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(start.UTC()).To(Equal(time.Date(2024, 6, 1, 22, 0, 0, 0, time.UTC)))
	})

	DescribeTable("local layouts",
		func(value string, expected time.Time) {
			Expect(data.ParseTime(value, time.UTC)).To(BeTemporally("==", expected))
		},
		Entry("date", "2024-06-02", time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)),
		Entry("date and minutes", "2024-06-02 13:45", time.Date(2024, 6, 2, 13, 45, 0, 0, time.UTC)),
		Entry("T separator", "2024-06-02T13:45", time.Date(2024, 6, 2, 13, 45, 0, 0, time.UTC)),
		Entry("seconds", "2024-06-02 13:45:30", time.Date(2024, 6, 2, 13, 45, 30, 0, time.UTC)),
	)

	It("needs a zone for naive strings", func() {
		_, err := data.ParseTime("2024-06-02", nil)
		Expect(err).To(MatchError(data.ErrInvalidParameter))
	})

	It("rejects garbage", func() {
		_, err := data.ParseTime("next tuesday", brussels)
		Expect(err).To(MatchError(data.ErrInvalidParameter))
	})

	It("rejects unset instants", func() {
		_, err := data.NewWindow(time.Time{}, time.Now())
		Expect(err).To(MatchError(data.ErrInvalidParameter))
		Expect(err.Error()).To(ContainSubstring("timezone-aware"))

		_, err = data.NewWindow(time.Now(), time.Time{})
		Expect(err).To(MatchError(data.ErrInvalidParameter))
	})

	It("rejects empty and reversed windows", func() {
		now := time.Now()
		_, err := data.NewWindow(now, now)
		Expect(err).To(MatchError(data.ErrInvalidParameter))
		Expect(err.Error()).To(ContainSubstring("start must be before end"))

		_, err = data.NewWindow(now, now.Add(-time.Hour))
		Expect(err).To(MatchError(data.ErrInvalidParameter))
	})
})

var _ = Describe("Errors", func() {
	It("classifies unauthorized and malformed documents as transport errors", func() {
		Expect(errors.Is(data.ErrUnauthorized, data.ErrTransport)).To(BeTrue())
		Expect(errors.Is(data.ErrMalformedDocument, data.ErrTransport)).To(BeTrue())
	})

	It("matches NoDataError against ErrNoData through wrapping", func() {
		err := fmt.Errorf("country FR: %w", &data.NoDataError{Reason: "nothing here"})
		Expect(errors.Is(err, data.ErrNoData)).To(BeTrue())
		Expect(err.Error()).To(Equal("country FR: nothing here"))
	})

	It("carries status and body in StatusError", func() {
		var err error = &data.StatusError{StatusCode: 503, Body: "maintenance"}
		Expect(errors.Is(err, data.ErrTransport)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring("503"))
		Expect(err.Error()).To(ContainSubstring("maintenance"))
	})
})
