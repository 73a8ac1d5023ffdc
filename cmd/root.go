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
	"os"
	"strings"

	"github.com/penny-vault/pvgrid/entsoe"
	"github.com/penny-vault/pvgrid/transport"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile  string
	logLevel string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pvgrid",
	Short: "pvgrid downloads European electricity market data from the ENTSO-E Transparency Platform",
	Long: `pvgrid is a command line utility for querying the ENTSO-E Transparency
Platform: load, generation, prices, cross-border transmission and balancing
data for every European bidding zone.

Areas and fuel types may be given the way people write them:

	* ISO style keys (FR, DE_LU, no-1)
	* display names (France, "Czech Republic")
	* provider codes (10YFR-RTE------C, B16)
	* short names for fuel types (solar, wind_onshore)

Results are printed as a table or written as CSV, JSON or parquet. An API
key is required; request one from the Transparency Platform and save it with
'pvgrid config init' or export it as ENTSOE_API_KEY.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := zerolog.ParseLevel(logLevel)
		if err != nil {
			log.Fatal().Err(err).Str("LogLevel", logLevel).Msg("invalid log level")
		}
		zerolog.SetGlobalLevel(level)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.pvgrid.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().String("api-key", "", "ENTSO-E API key")
	if err := viper.BindPFlag("entsoe.api_key", rootCmd.PersistentFlags().Lookup("api-key")); err != nil {
		log.Panic().Err(err).Msg("BindPFlag for api-key failed")
	}

	viper.SetDefault("entsoe.base_url", transport.DefaultBaseURL)
	viper.SetDefault("entsoe.timezone", entsoe.DefaultTimezone)
	viper.SetDefault("entsoe.max_retries", transport.DefaultMaxRetries)
	viper.SetDefault("entsoe.requests_per_minute", transport.DefaultRequestsPerMinute)
	viper.SetDefault("entsoe.concurrency", 1)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".pvgrid" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("toml")
		viper.SetConfigName(".pvgrid")
	}

	// entsoe.api_key is read from ENTSOE_API_KEY
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Debug().Str("ConfigFN", viper.ConfigFileUsed()).Msg("Using config file")
	}
}
