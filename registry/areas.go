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
	"time"

	"github.com/penny-vault/pvgrid/data"
)

// AreaEntry is a bidding zone, control area or country known to the provider
type AreaEntry struct {
	Key      string // ISO-style key, e.g. DE_LU
	EIC      string // 16 character energy identification code
	Name     string
	Timezone string // IANA zone name
}

// Location loads the area's local time zone
func (area AreaEntry) Location() (*time.Location, error) {
	return time.LoadLocation(area.Timezone)
}

// AreaRegistry resolves area identifiers in any of their forms to EIC codes
type AreaRegistry struct {
	entries  map[string]AreaEntry
	byKey    map[string]string
	eicToKey map[string]string
	byName   map[string]string
	sorted   []AreaEntry
}

// NewAreas builds an area registry; duplicate keys, EICs or names panic.
func NewAreas(entries []AreaEntry) *AreaRegistry {
	reg := &AreaRegistry{
		entries:  make(map[string]AreaEntry, len(entries)),
		byKey:    make(map[string]string, len(entries)),
		eicToKey: make(map[string]string, len(entries)),
		byName:   make(map[string]string, len(entries)),
		sorted:   make([]AreaEntry, 0, len(entries)),
	}

	for _, area := range entries {
		if _, ok := reg.entries[area.EIC]; ok {
			panic(fmt.Sprintf("area registry: duplicate EIC %q", area.EIC))
		}
		if _, ok := reg.byKey[area.Key]; ok {
			panic(fmt.Sprintf("area registry: duplicate key %q", area.Key))
		}

		nameKey := areaName(area.Name)
		if other, ok := reg.byName[nameKey]; ok {
			panic(fmt.Sprintf("area registry: name %q used by %s and %s", area.Name, reg.eicToKey[other], area.Key))
		}

		reg.entries[area.EIC] = area
		reg.byKey[area.Key] = area.EIC
		reg.eicToKey[area.EIC] = area.Key
		reg.byName[nameKey] = area.EIC
		reg.sorted = append(reg.sorted, area)
	}

	slices.SortFunc(reg.sorted, func(a, b AreaEntry) int {
		return strings.Compare(a.Key, b.Key)
	})

	return reg
}

func (reg *AreaRegistry) Len() int {
	return len(reg.sorted)
}

// Entries returns all areas ordered by key
func (reg *AreaRegistry) Entries() []AreaEntry {
	return slices.Clone(reg.sorted)
}

// Lookup finds an area by EIC (exact), key (case-insensitive, whitespace read as
// underscore) or display name (case-insensitive, underscore read as whitespace).
func (reg *AreaRegistry) Lookup(identifier string) (AreaEntry, error) {
	if area, ok := reg.entries[identifier]; ok {
		return area, nil
	}

	if eic, ok := reg.byKey[areaKey(identifier)]; ok {
		return reg.entries[eic], nil
	}

	if eic, ok := reg.byName[areaName(identifier)]; ok {
		return reg.entries[eic], nil
	}

	keys := make([]string, len(reg.sorted))
	for idx, area := range reg.sorted {
		keys[idx] = area.Key
	}

	return AreaEntry{}, fmt.Errorf("%w: unknown area %q; available: %s", data.ErrInvalidParameter, identifier, strings.Join(keys, ", "))
}

// Resolve returns the EIC code for any area identifier
func (reg *AreaRegistry) Resolve(identifier string) (string, error) {
	area, err := reg.Lookup(identifier)
	if err != nil {
		return "", err
	}
	return area.EIC, nil
}

// NameOf returns the display name for any area identifier
func (reg *AreaRegistry) NameOf(identifier string) (string, error) {
	area, err := reg.Lookup(identifier)
	if err != nil {
		return "", err
	}
	return area.Name, nil
}

// NameOr returns the display name for identifier, or fallback when it is unknown
func (reg *AreaRegistry) NameOr(identifier, fallback string) string {
	area, err := reg.Lookup(identifier)
	if err != nil {
		return fallback
	}
	return area.Name
}

// KeyOf maps an EIC code back to its area key
func (reg *AreaRegistry) KeyOf(eic string) (string, bool) {
	key, ok := reg.eicToKey[eic]
	return key, ok
}

func areaKey(identifier string) string {
	key := strings.Join(strings.Fields(strings.ToUpper(identifier)), "_")
	return strings.ReplaceAll(key, "-", "_")
}

func areaName(identifier string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(foldName(identifier), "_", " ")), " ")
}
