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
package transport_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/penny-vault/pvgrid/transport"
)

var _ = Describe("SplitRange", func() {
	start := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)

	It("keeps a short range whole", func() {
		end := start.Add(48 * time.Hour)
		chunks := transport.SplitRange(start, end, transport.MaxSpan)
		Expect(chunks).To(HaveLen(1))
		Expect(chunks[0].Start).To(Equal(start))
		Expect(chunks[0].End).To(Equal(end))
	})

	It("splits a long range into contiguous chunks", func() {
		end := start.AddDate(2, 3, 0)
		chunks := transport.SplitRange(start, end, transport.MaxSpan)
		Expect(chunks).To(HaveLen(3))

		Expect(chunks[0].Start).To(Equal(start))
		for idx, chunk := range chunks {
			Expect(chunk.End.Sub(chunk.Start)).To(BeNumerically("<=", transport.MaxSpan))
			if idx > 0 {
				Expect(chunk.Start).To(Equal(chunks[idx-1].End))
			}
		}
		Expect(chunks[len(chunks)-1].End).To(Equal(end))
	})

	It("produces exact multiples without an empty tail", func() {
		end := start.Add(2 * transport.MaxSpan)
		Expect(transport.SplitRange(start, end, transport.MaxSpan)).To(HaveLen(2))
	})

	It("returns nothing for an empty range", func() {
		Expect(transport.SplitRange(start, start, transport.MaxSpan)).To(BeEmpty())
		Expect(transport.SplitRange(start, start.Add(-time.Hour), transport.MaxSpan)).To(BeEmpty())
	})
})
