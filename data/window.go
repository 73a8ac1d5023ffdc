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
	"fmt"
	"time"
)

// Layouts that carry their own zone offset
var zonedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
}

// Layouts interpreted in the caller's default zone
var localLayouts = []string{
	time.DateOnly,
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	time.DateTime,
	"2006-01-02T15:04:05",
}

// Window is a half-open [Start, End) query interval
type Window struct {
	Start time.Time
	End   time.Time
}

// NewWindow validates start and end. Both must be set and start must come before end.
func NewWindow(start, end time.Time) (Window, error) {
	window := Window{Start: start, End: end}
	if err := window.Validate(); err != nil {
		return Window{}, err
	}
	return window, nil
}

func (window Window) Validate() error {
	if window.Start.IsZero() {
		return fmt.Errorf("%w: start timestamp must be set and timezone-aware", ErrInvalidParameter)
	}
	if window.End.IsZero() {
		return fmt.Errorf("%w: end timestamp must be set and timezone-aware", ErrInvalidParameter)
	}
	if !window.Start.Before(window.End) {
		return fmt.Errorf("%w: start must be before end", ErrInvalidParameter)
	}
	return nil
}

func (window Window) String() string {
	return fmt.Sprintf("[%s, %s)", window.Start.Format(time.RFC3339), window.End.Format(time.RFC3339))
}

// ParseTime reads a date-like string. Strings carrying a zone offset keep it; plain dates
// and date-times are interpreted in loc.
func ParseTime(value string, loc *time.Location) (time.Time, error) {
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	if loc == nil {
		return time.Time{}, fmt.Errorf("%w: %q has no zone and no default zone is configured", ErrInvalidParameter, value)
	}

	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: cannot parse time %q (expected YYYY-MM-DD, YYYY-MM-DD HH:MM or RFC 3339)", ErrInvalidParameter, value)
}

// ParseWindow parses start and end with ParseTime and validates the result
func ParseWindow(start, end string, loc *time.Location) (Window, error) {
	startTime, err := ParseTime(start, loc)
	if err != nil {
		return Window{}, err
	}

	endTime, err := ParseTime(end, loc)
	if err != nil {
		return Window{}, err
	}

	return NewWindow(startTime, endTime)
}
