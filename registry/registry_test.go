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
package registry_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/penny-vault/pvgrid/data"
	"github.com/penny-vault/pvgrid/registry"
)

var _ = Describe("Registry", func() {
	var codes *registry.Codes

	BeforeEach(func() {
		codes = registry.Load()
	})

	It("returns the same value on every load", func() {
		Expect(registry.Load()).To(BeIdenticalTo(codes))
	})

	Context("resolving PSR types", func() {
		DescribeTable("accepts code, slug and name",
			func(identifier, expected string) {
				code, err := codes.PsrTypes.Resolve(identifier)
				Expect(err).NotTo(HaveOccurred())
				Expect(code).To(Equal(expected))
			},
			Entry("exact code", "B16", "B16"),
			Entry("slug", "solar", "B16"),
			Entry("upper-case slug", "SOLAR", "B16"),
			Entry("slug with spaces", "wind onshore", "B19"),
			Entry("slug with hyphens", "wind-offshore", "B18"),
			Entry("display name", "Fossil Hard coal", "B05"),
			Entry("display name in another case", "fossil brown coal/lignite", "B02"),
			Entry("padded slug", "  nuclear ", "B14"),
		)

		It("round-trips every entry through code, slug and name", func() {
			for _, reg := range []*registry.Registry{
				codes.PsrTypes, codes.ProcessTypes, codes.DocumentTypes,
				codes.BusinessTypes, codes.ContractTypes,
			} {
				for _, entry := range reg.Entries() {
					for _, identifier := range []string{entry.Code, entry.Slug, entry.Name} {
						code, err := reg.Resolve(identifier)
						Expect(err).NotTo(HaveOccurred(), "%s %q", reg.Kind(), identifier)
						Expect(code).To(Equal(entry.Code), "%s %q", reg.Kind(), identifier)
					}
				}
			}
		})

		It("rejects unknown identifiers and lists the alternatives", func() {
			_, err := codes.PsrTypes.Resolve("unobtainium")
			Expect(errors.Is(err, data.ErrInvalidParameter)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("B16 (solar)"))
			Expect(err.Error()).To(ContainSubstring("B19 (wind_onshore)"))
		})

		It("treats codes as case-sensitive", func() {
			_, err := codes.PsrTypes.Resolve("b16")
			Expect(err).To(MatchError(data.ErrInvalidParameter))
		})
	})

	Context("display names", func() {
		It("returns the name of a known code", func() {
			Expect(codes.PsrTypes.NameOf("B16")).To(Equal("Solar"))
		})

		It("fails for an unknown code", func() {
			_, err := codes.PsrTypes.NameOf("Z99")
			Expect(err).To(MatchError(data.ErrInvalidParameter))
		})

		It("falls back when asked to", func() {
			Expect(codes.PsrTypes.NameOr("Z99", "Z99")).To(Equal("Z99"))
			Expect(codes.ProcessTypes.NameOr("A16", "")).To(Equal("Realised"))
		})
	})

	Context("entries", func() {
		It("lists entries ordered by code", func() {
			entries := codes.PsrTypes.Entries()
			Expect(entries).NotTo(BeEmpty())
			for idx := 1; idx < len(entries); idx++ {
				Expect(entries[idx-1].Code < entries[idx].Code).To(BeTrue())
			}
		})

		It("derives slugs for entries declared without one", func() {
			entry, ok := codes.DocumentTypes.Entry("A25")
			Expect(ok).To(BeTrue())
			Expect(entry.Slug).To(Equal("allocation_result_document"))
		})

		It("returns a copy", func() {
			entries := codes.ContractTypes.Entries()
			entries[0].Name = "changed"
			Expect(codes.ContractTypes.NameOf(entries[0].Code)).NotTo(Equal("changed"))
		})
	})

	Context("building registries", func() {
		It("panics on duplicate codes", func() {
			Expect(func() {
				registry.New("test", []registry.CodeEntry{
					{Code: "X1", Name: "One"},
					{Code: "X1", Name: "Two"},
				})
			}).To(Panic())
		})

		It("panics on duplicate slugs", func() {
			Expect(func() {
				registry.New("test", []registry.CodeEntry{
					{Code: "X1", Name: "One", Slug: "same"},
					{Code: "X2", Name: "Two", Slug: "same"},
				})
			}).To(Panic())
		})
	})

	Context("families", func() {
		It("finds every family by name", func() {
			for _, name := range registry.Families() {
				reg, err := codes.Family(name)
				Expect(err).NotTo(HaveOccurred())
				Expect(reg.Len()).To(BeNumerically(">", 0))
			}
		})

		It("rejects unknown families", func() {
			_, err := codes.Family("colours")
			Expect(err).To(MatchError(data.ErrInvalidParameter))
		})
	})
})
