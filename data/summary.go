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

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RunSummary describes one completed query
type RunSummary struct {
	QueryID   uuid.UUID
	Dataset   string
	Window    Window
	StartTime time.Time
	EndTime   time.Time
	NumRows   int
}

func (summary RunSummary) Duration() time.Duration {
	return summary.EndTime.Sub(summary.StartTime)
}

func (summary RunSummary) MarshalZerologObject(e *zerolog.Event) {
	e.Str("Dataset", summary.Dataset)
	e.Time("PeriodStart", summary.Window.Start)
	e.Time("PeriodEnd", summary.Window.End)
	e.Int("NumRows", summary.NumRows)
}
