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
package registry

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gosimple/slug"
	"github.com/penny-vault/pvgrid/data"
	"golang.org/x/text/cases"
)

// CodeEntry is one provider code with its human-facing aliases
type CodeEntry struct {
	Code        string
	Name        string
	Slug        string
	Description string
}

// Registry translates between provider codes, slugs and display names for one code family.
// It is immutable once built and safe for concurrent use.
type Registry struct {
	kind    string
	entries map[string]CodeEntry
	bySlug  map[string]string
	byName  map[string]string
	sorted  []CodeEntry
}

var slugReplacer = strings.NewReplacer(" ", "_", "-", "_")

// New builds a registry and its reverse indexes. Entries without a slug get one derived
// from their name. Duplicate codes, slugs or names are a programming error and panic.
func New(kind string, entries []CodeEntry) *Registry {
	reg := &Registry{
		kind:    kind,
		entries: make(map[string]CodeEntry, len(entries)),
		bySlug:  make(map[string]string, len(entries)),
		byName:  make(map[string]string, len(entries)),
		sorted:  make([]CodeEntry, 0, len(entries)),
	}

	for _, entry := range entries {
		if entry.Slug == "" {
			entry.Slug = deriveSlug(entry.Name)
		}

		if _, ok := reg.entries[entry.Code]; ok {
			panic(fmt.Sprintf("registry %s: duplicate code %q", kind, entry.Code))
		}

		slugKey := normalizeSlug(entry.Slug)
		if other, ok := reg.bySlug[slugKey]; ok {
			panic(fmt.Sprintf("registry %s: slug %q used by %s and %s", kind, entry.Slug, other, entry.Code))
		}

		nameKey := foldName(entry.Name)
		if other, ok := reg.byName[nameKey]; ok {
			panic(fmt.Sprintf("registry %s: name %q used by %s and %s", kind, entry.Name, other, entry.Code))
		}

		reg.entries[entry.Code] = entry
		reg.bySlug[slugKey] = entry.Code
		reg.byName[nameKey] = entry.Code
		reg.sorted = append(reg.sorted, entry)
	}

	slices.SortFunc(reg.sorted, func(a, b CodeEntry) int {
		return strings.Compare(a.Code, b.Code)
	})

	return reg
}

// Kind is the human readable family name, e.g. "PSR type"
func (reg *Registry) Kind() string {
	return reg.kind
}

func (reg *Registry) Len() int {
	return len(reg.sorted)
}

// Entries returns all entries ordered by code
func (reg *Registry) Entries() []CodeEntry {
	return slices.Clone(reg.sorted)
}

// Entry returns the entry for an exact code
func (reg *Registry) Entry(code string) (CodeEntry, bool) {
	entry, ok := reg.entries[code]
	return entry, ok
}

// Resolve turns a code, slug or display name into the canonical provider code. The code is
// matched exactly, then the slug (case-insensitive, spaces and hyphens read as underscores),
// then the name (case-insensitive). The first match wins.
func (reg *Registry) Resolve(identifier string) (string, error) {
	if _, ok := reg.entries[identifier]; ok {
		return identifier, nil
	}

	if code, ok := reg.bySlug[normalizeSlug(identifier)]; ok {
		return code, nil
	}

	if code, ok := reg.byName[foldName(identifier)]; ok {
		return code, nil
	}

	return "", fmt.Errorf("%w: unknown %s %q; available: %s", data.ErrInvalidParameter, reg.kind, identifier, reg.available())
}

// NameOf returns the display name of an exact code
func (reg *Registry) NameOf(code string) (string, error) {
	entry, ok := reg.entries[code]
	if !ok {
		return "", fmt.Errorf("%w: unknown %s code %q; available: %s", data.ErrInvalidParameter, reg.kind, code, reg.available())
	}
	return entry.Name, nil
}

// NameOr returns the display name of code, or fallback when the code is unknown
func (reg *Registry) NameOr(code, fallback string) string {
	if entry, ok := reg.entries[code]; ok {
		return entry.Name
	}
	return fallback
}

func (reg *Registry) available() string {
	parts := make([]string, len(reg.sorted))
	for idx, entry := range reg.sorted {
		parts[idx] = fmt.Sprintf("%s (%s)", entry.Code, entry.Slug)
	}
	return strings.Join(parts, ", ")
}

func deriveSlug(name string) string {
	return strings.ReplaceAll(slug.Make(name), "-", "_")
}

func normalizeSlug(identifier string) string {
	return slugReplacer.Replace(strings.ToLower(strings.TrimSpace(identifier)))
}

// foldName applies Unicode case folding; a Caser keeps state so one is made per call.
func foldName(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}
