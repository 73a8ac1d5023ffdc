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
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/go-resty/resty/v2"
	"github.com/penny-vault/pvgrid/data"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL           = "https://web-api.tp.entsoe.eu/api"
	DefaultMaxRetries        = 3
	DefaultBaseDelay         = time.Second
	DefaultMaxDelay          = 30 * time.Second
	DefaultRequestsPerMinute = 400
	DefaultTimeout           = 60 * time.Second

	// MaxSpan is the longest window the provider serves in one request
	MaxSpan = 365 * 24 * time.Hour

	periodLayout = "200601021504"
	maxErrorBody = 500
)

// Config controls how the client talks to the provider. Zero fields take the defaults above.
type Config struct {
	APIKey            string
	BaseURL           string
	MaxRetries        int
	BaseDelay         time.Duration
	MaxDelay          time.Duration
	RequestsPerMinute int
	Timeout           time.Duration
	UserAgent         string
}

// Client issues authenticated GET requests against the provider API. It is safe for
// concurrent use; every request draws from one shared rate limiter.
type Client struct {
	cfg     Config
	http    *resty.Client
	limiter *rate.Limiter
}

// New validates cfg and builds a client
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: an API key is required", data.ErrInvalidParameter)
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	} else if cfg.MaxRetries == 0 {
		cfg.MaxRetries = DefaultMaxRetries
	}
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = DefaultBaseDelay
	}
	if cfg.MaxDelay <= 0 {
		cfg.MaxDelay = DefaultMaxDelay
	}
	if cfg.RequestsPerMinute <= 0 {
		cfg.RequestsPerMinute = DefaultRequestsPerMinute
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/xml, application/zip")
	if cfg.UserAgent != "" {
		client.SetHeader("User-Agent", cfg.UserAgent)
	}

	return &Client{
		cfg:     cfg,
		http:    client,
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)), 1),
	}, nil
}

// Config returns the effective configuration with defaults applied
func (client *Client) Config() Config {
	return client.cfg
}

// Fetch retrieves every document for params over [start, end). Windows longer than MaxSpan
// are split into consecutive chunks fetched one after another. ZIP responses are unpacked
// and the documents of all chunks are returned in chunk order.
func (client *Client) Fetch(ctx context.Context, params map[string]string, start, end time.Time) ([][]byte, error) {
	window, err := data.NewWindow(start, end)
	if err != nil {
		return nil, err
	}

	chunks := SplitRange(window.Start, window.End, MaxSpan)
	docs := make([][]byte, 0, len(chunks))
	for _, chunk := range chunks {
		body, err := client.get(ctx, params, chunk)
		if err != nil {
			return nil, err
		}

		if isZip(body) {
			members, err := unzip(body)
			if err != nil {
				return nil, err
			}
			docs = append(docs, members...)
			continue
		}

		docs = append(docs, body)
	}

	return docs, nil
}

// get performs one chunk request, retrying with exponential backoff while the provider
// answers 429
func (client *Client) get(ctx context.Context, params map[string]string, window data.Window) ([]byte, error) {
	logger := zerolog.Ctx(ctx)

	query := make(map[string]string, len(params)+3)
	for k, v := range params {
		query[k] = v
	}
	query["securityToken"] = client.cfg.APIKey
	query["periodStart"] = window.Start.UTC().Format(periodLayout)
	query["periodEnd"] = window.End.UTC().Format(periodLayout)

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = client.cfg.BaseDelay
	policy.Multiplier = 2
	policy.RandomizationFactor = 0
	policy.MaxInterval = client.cfg.MaxDelay

	attempt := 0
	operation := func() ([]byte, error) {
		attempt++
		if err := client.limiter.Wait(ctx); err != nil {
			return nil, backoff.Permanent(err)
		}

		logger.Debug().
			Str("DocumentType", params["documentType"]).
			Str("PeriodStart", query["periodStart"]).
			Str("PeriodEnd", query["periodEnd"]).
			Int("Attempt", attempt).
			Msg("requesting document")

		resp, err := client.http.R().
			SetContext(ctx).
			SetQueryParams(query).
			Get(client.cfg.BaseURL)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, backoff.Permanent(ctxErr)
			}
			return nil, backoff.Permanent(fmt.Errorf("%w: %w", data.ErrTransport, err))
		}

		switch resp.StatusCode() {
		case http.StatusOK:
			return resp.Body(), nil
		case http.StatusTooManyRequests:
			return nil, fmt.Errorf("%w: HTTP 429 after %d attempts", data.ErrRateLimited, attempt)
		case http.StatusUnauthorized:
			return nil, backoff.Permanent(data.ErrUnauthorized)
		default:
			body := resp.Body()
			if len(body) > maxErrorBody {
				body = body[:maxErrorBody]
			}
			logger.Error().Int("StatusCode", resp.StatusCode()).Str("Body", string(body)).Msg("provider returned invalid status code")
			return nil, backoff.Permanent(&data.StatusError{StatusCode: resp.StatusCode(), Body: string(body)})
		}
	}

	body, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(policy),
		backoff.WithMaxTries(uint(client.cfg.MaxRetries+1)),
		backoff.WithNotify(func(err error, delay time.Duration) {
			logger.Warn().Err(err).Int("Attempt", attempt).Dur("Delay", delay).Msg("rate limited, backing off")
		}),
	)
	if err != nil {
		if errors.Is(err, data.ErrRateLimited) {
			logger.Error().Int("MaxRetries", client.cfg.MaxRetries).Msg("rate limit retries exhausted")
		}
		return nil, err
	}

	return body, nil
}
