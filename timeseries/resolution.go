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
package timeseries

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/penny-vault/pvgrid/data"
)

const year = 365 * 24 * time.Hour

var resolutionPattern = regexp.MustCompile(`^P(?:T(\d+)([MH])|(\d+)([DY]))$`)

// ParseResolution converts an ISO 8601 period of the forms PT<n>M, PT<n>H, P<n>D and P<n>Y
// to a duration. A year is always 365 days.
func ParseResolution(resolution string) (time.Duration, error) {
	match := resolutionPattern.FindStringSubmatch(strings.TrimSpace(resolution))
	if match == nil {
		return 0, fmt.Errorf("%w: cannot parse resolution %q", data.ErrMalformedDocument, resolution)
	}

	digits, unit := match[1], match[2]
	if digits == "" {
		digits, unit = match[3], match[4]
	}

	count, err := strconv.Atoi(digits)
	if err != nil || count <= 0 {
		return 0, fmt.Errorf("%w: cannot parse resolution %q", data.ErrMalformedDocument, resolution)
	}

	n := time.Duration(count)
	switch unit {
	case "M":
		return n * time.Minute, nil
	case "H":
		return n * time.Hour, nil
	case "D":
		return n * 24 * time.Hour, nil
	default:
		return n * year, nil
	}
}
