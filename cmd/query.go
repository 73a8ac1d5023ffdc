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
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/hako/durafmt"
	"github.com/penny-vault/pvgrid/data"
	"github.com/penny-vault/pvgrid/entsoe"
	"github.com/penny-vault/pvgrid/output"
	"github.com/penny-vault/pvgrid/pkginfo"
	"github.com/penny-vault/pvgrid/transport"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// queryOptions holds the flags shared by every data command
type queryOptions struct {
	start   string
	end     string
	format  string
	outFile string
}

var queryOpts queryOptions

// queryFunc runs one dataset query with the resolved client and window
type queryFunc func(ctx context.Context, client *entsoe.Client, window data.Window) (data.Rows, error)

// addQueryFlags registers the window and output flags on a command group
func addQueryFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVarP(&queryOpts.start, "start", "s", "", "period start: YYYY-MM-DD, YYYY-MM-DD HH:MM or RFC 3339 (required)")
	flags.StringVarP(&queryOpts.end, "end", "e", "", "period end, exclusive (required)")
	flags.StringVarP(&queryOpts.format, "format", "f", "", "output format: table, csv, json or parquet (default table, or guessed from --output)")
	flags.StringVarP(&queryOpts.outFile, "output", "o", "", "write results to this file instead of stdout")

	if err := cmd.MarkPersistentFlagRequired("start"); err != nil {
		log.Panic().Err(err).Msg("MarkPersistentFlagRequired for start failed")
	}
	if err := cmd.MarkPersistentFlagRequired("end"); err != nil {
		log.Panic().Err(err).Msg("MarkPersistentFlagRequired for end failed")
	}
}

// newClient builds an orchestrator on top of the HTTP transport from the viper settings
func newClient() (*entsoe.Client, error) {
	fetcher, err := transport.New(transport.Config{
		APIKey:            viper.GetString("entsoe.api_key"),
		BaseURL:           viper.GetString("entsoe.base_url"),
		MaxRetries:        viper.GetInt("entsoe.max_retries"),
		RequestsPerMinute: viper.GetInt("entsoe.requests_per_minute"),
		UserAgent:         pkginfo.UserAgent(),
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set it with 'pvgrid config init', --api-key or ENTSOE_API_KEY)", err)
	}

	tzName := viper.GetString("entsoe.timezone")
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown timezone %q: %w", data.ErrInvalidParameter, tzName, err)
	}

	return entsoe.New(fetcher,
		entsoe.WithLocation(loc),
		entsoe.WithConcurrency(viper.GetInt("entsoe.concurrency")),
	), nil
}

// outputFormat picks the explicit --format, else the one implied by --output, else table
func (opts queryOptions) outputFormat() (output.Format, error) {
	if opts.format != "" {
		return output.ParseFormat(opts.format)
	}
	if opts.outFile != "" {
		if format, ok := output.FormatFromPath(opts.outFile); ok {
			return format, nil
		}
	}
	return output.Table, nil
}

// runQuery executes query for dataset and renders the result. A query that finds no data
// is reported and exits cleanly; every other failure is fatal.
func runQuery(cmd *cobra.Command, dataset entsoe.Dataset, query queryFunc) {
	summary := data.RunSummary{
		QueryID: uuid.New(),
		Dataset: dataset.Name,
	}

	logger := log.With().Str("QueryID", summary.QueryID.String()).Logger()
	ctx := logger.WithContext(cmd.Context())

	format, err := queryOpts.outputFormat()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid output format")
	}

	client, err := newClient()
	if err != nil {
		logger.Fatal().Err(err).Msg("could not create client")
	}

	summary.Window, err = client.ParseWindow(queryOpts.start, queryOpts.end)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid period")
	}

	summary.StartTime = time.Now()
	rows, err := query(ctx, client, summary.Window)
	summary.EndTime = time.Now()

	if errors.Is(err, data.ErrNoData) {
		logger.Warn().Err(err).Str("Dataset", dataset.Name).Msg("provider returned no data")
		fmt.Fprintln(os.Stderr, "No data returned.")
		return
	}

	if err != nil {
		logger.Fatal().Err(err).Str("Dataset", dataset.Name).Msg("query failed")
	}

	summary.NumRows = len(rows)
	logger.Info().EmbedObject(summary).Str("RunTime", durafmt.Parse(summary.Duration()).LimitFirstN(2).String()).Msg("successfully fetched results")

	if queryOpts.outFile != "" {
		err = output.WriteFile(queryOpts.outFile, rows, format)
	} else {
		err = output.Write(cmd.OutOrStdout(), rows, format)
	}

	if err != nil {
		logger.Fatal().Err(err).Str("Format", string(format)).Msg("could not write results")
	}

	if queryOpts.outFile != "" {
		logger.Info().Str("FileName", queryOpts.outFile).Int("NumRows", len(rows)).Msg("results saved")
	}
}
