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
package entsoe

import (
	"context"
	"time"

	"github.com/penny-vault/pvgrid/data"
	"github.com/penny-vault/pvgrid/registry"
)

// DefaultTimezone is used for date strings that carry no zone of their own
const DefaultTimezone = "Europe/Brussels"

// Fetcher retrieves the raw provider documents for one parameter set over [start, end).
// transport.Client satisfies it.
type Fetcher interface {
	Fetch(ctx context.Context, params map[string]string, start, end time.Time) ([][]byte, error)
}

// Client answers dataset queries by resolving identifiers, fetching documents and parsing
// them into rows. Operations are grouped by domain into services.
type Client struct {
	fetcher     Fetcher
	codes       *registry.Codes
	location    *time.Location
	concurrency int

	Load         *LoadService
	Prices       *PricesService
	Generation   *GenerationService
	Transmission *TransmissionService
	Balancing    *BalancingService
}

type Option func(*Client)

// WithCodes replaces the compiled-in registries
func WithCodes(codes *registry.Codes) Option {
	return func(client *Client) {
		client.codes = codes
	}
}

// WithLocation sets the zone used to interpret date strings in ParseWindow
func WithLocation(loc *time.Location) Option {
	return func(client *Client) {
		client.location = loc
	}
}

// WithConcurrency sets how many sub-requests of a fan-out may run at once
func WithConcurrency(n int) Option {
	return func(client *Client) {
		if n > 0 {
			client.concurrency = n
		}
	}
}

func New(fetcher Fetcher, opts ...Option) *Client {
	client := &Client{
		fetcher:     fetcher,
		concurrency: 1,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.codes == nil {
		client.codes = registry.Load()
	}

	if client.location == nil {
		loc, err := time.LoadLocation(DefaultTimezone)
		if err != nil {
			loc = time.UTC
		}
		client.location = loc
	}

	client.Load = &LoadService{client: client}
	client.Prices = &PricesService{client: client}
	client.Generation = &GenerationService{client: client}
	client.Transmission = &TransmissionService{client: client}
	client.Balancing = &BalancingService{client: client}

	return client
}

func (client *Client) Codes() *registry.Codes {
	return client.codes
}

func (client *Client) Location() *time.Location {
	return client.location
}

// ParseWindow reads start and end strings; those without a zone are read in the client's
// location
func (client *Client) ParseWindow(start, end string) (data.Window, error) {
	return data.ParseWindow(start, end, client.location)
}
