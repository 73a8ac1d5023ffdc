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
	"errors"
	"fmt"
)

// DefaultNoDataMessage is reported when the provider returns an empty document without a reason.
const DefaultNoDataMessage = "No data available for the requested parameters."

var (
	ErrInvalidParameter  = errors.New("invalid parameter")
	ErrNoData            = errors.New("no data")
	ErrRateLimited       = errors.New("rate limit exceeded, retries exhausted")
	ErrTransport         = errors.New("transport error")
	ErrUnauthorized      = fmt.Errorf("%w: unauthorized, check your ENTSO-E API key", ErrTransport)
	ErrMalformedDocument = fmt.Errorf("%w: malformed document", ErrTransport)
)

// NoDataError is returned when a well-formed response carries no time series. Reason holds
// the provider's explanation when one was sent.
type NoDataError struct {
	Reason string
}

func (e *NoDataError) Error() string {
	if e.Reason == "" {
		return DefaultNoDataMessage
	}
	return e.Reason
}

func (e *NoDataError) Is(target error) bool {
	return target == ErrNoData
}

// StatusError records a non-200, non-429 HTTP response
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API returned HTTP %d: %s", e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error {
	return ErrTransport
}
