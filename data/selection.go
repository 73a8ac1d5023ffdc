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

import "slices"

// Selection is an identifier argument that is either a single value or an explicit list.
// A list always labels its results with the identifier that produced them, a single value
// never does. The zero Selection means the argument was not supplied.
type Selection[T any] struct {
	values []T
	many   bool
}

// One selects a single value
func One[T any](value T) Selection[T] {
	return Selection[T]{values: []T{value}}
}

// Many selects a list of values, even a list of one
func Many[T any](values ...T) Selection[T] {
	return Selection[T]{values: slices.Clone(values), many: true}
}

// FromSlice collapses a list of length one into a single value. Command line flags that
// may be repeated use this: `-c FR` is One("FR"), `-c FR -c ES` is Many("FR", "ES").
func FromSlice[T any](values []T) Selection[T] {
	switch len(values) {
	case 0:
		return Selection[T]{}
	case 1:
		return One(values[0])
	default:
		return Many(values...)
	}
}

// Values returns the selected values; a single value is a list of one.
func (s Selection[T]) Values() []T {
	return s.values
}

func (s Selection[T]) IsMany() bool {
	return s.many
}

func (s Selection[T]) IsSet() bool {
	return len(s.values) > 0
}
