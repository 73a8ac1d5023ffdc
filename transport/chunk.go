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
package transport

import (
	"time"

	"github.com/penny-vault/pvgrid/data"
)

// SplitRange cuts [start, end) into consecutive windows no longer than span. The windows
// cover the range exactly without overlap. An empty or reversed range yields nothing.
func SplitRange(start, end time.Time, span time.Duration) []data.Window {
	if !start.Before(end) || span <= 0 {
		return nil
	}

	chunks := make([]data.Window, 0, int(end.Sub(start)/span)+1)
	for cursor := start; cursor.Before(end); {
		next := cursor.Add(span)
		if next.After(end) {
			next = end
		}
		chunks = append(chunks, data.Window{Start: cursor, End: next})
		cursor = next
	}

	return chunks
}
