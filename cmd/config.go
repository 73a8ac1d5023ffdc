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
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
	"github.com/penny-vault/pvgrid/data"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// fileConfig is the layout of the pvgrid config file
type fileConfig struct {
	Entsoe entsoeConfig `toml:"entsoe"`
}

type entsoeConfig struct {
	APIKey            string `toml:"api_key"`
	Timezone          string `toml:"timezone"`
	Concurrency       int    `toml:"concurrency"`
	RequestsPerMinute int    `toml:"requests_per_minute"`
}

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Create or inspect the pvgrid configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Gather API settings and save them to the config file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		settings := currentConfig()
		rpm := strconv.Itoa(settings.RequestsPerMinute)

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("ENTSO-E security token (request one from transparency@entsoe.eu):").
					Password(true).
					Value(&settings.APIKey).
					Validate(func(key string) error {
						if strings.TrimSpace(key) == "" {
							return fmt.Errorf("%w: an API key is required", data.ErrInvalidParameter)
						}
						return nil
					}),
			),
			huh.NewGroup(
				huh.NewInput().
					Title("Time zone used to read dates without an offset:").
					Value(&settings.Timezone).
					Validate(func(name string) error {
						_, err := time.LoadLocation(name)
						return err
					}),
				huh.NewSelect[int]().
					Title("How many requests may run at the same time?").
					Options(huh.NewOptions(1, 2, 4, 8)...).
					Value(&settings.Concurrency),
				huh.NewInput().
					Title("Requests per minute allowed by your API key:").
					Value(&rpm).
					Validate(func(value string) error {
						_, err := parseRequestsPerMinute(value)
						return err
					}),
			),
		)

		if err := form.Run(); err != nil {
			log.Fatal().Err(err).Msg("error gathering API settings")
		}

		settings.APIKey = strings.TrimSpace(settings.APIKey)
		settings.RequestsPerMinute, _ = parseRequestsPerMinute(rpm)

		configFN, err := configPath()
		if err != nil {
			log.Fatal().Err(err).Msg("could not determine config file location")
		}

		log.Info().Str("ConfigFile", configFN).Msg("saving API settings to config file")
		if err := saveConfig(configFN, settings); err != nil {
			log.Fatal().Err(err).Str("FileName", configFN).Msg("could not save configuration to file")
		}

		log.Info().Msg("pvgrid is ready to query the transparency platform")
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the effective configuration",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		source := viper.ConfigFileUsed()
		if source == "" {
			source = "(none)"
		}

		fmt.Fprintln(cmd.OutOrStdout(), configSummary(currentConfig(), source, viper.GetString("entsoe.base_url")))
	},
}

// currentConfig reads the effective settings from viper
func currentConfig() entsoeConfig {
	return entsoeConfig{
		APIKey:            viper.GetString("entsoe.api_key"),
		Timezone:          viper.GetString("entsoe.timezone"),
		Concurrency:       viper.GetInt("entsoe.concurrency"),
		RequestsPerMinute: viper.GetInt("entsoe.requests_per_minute"),
	}
}

func parseRequestsPerMinute(value string) (int, error) {
	rpm, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || rpm <= 0 {
		return 0, fmt.Errorf("%w: requests per minute must be a positive whole number", data.ErrInvalidParameter)
	}
	return rpm, nil
}

// configPath is the --config file when given, else ~/.pvgrid.toml
func configPath() (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".pvgrid.toml"), nil
}

// saveConfig writes settings as TOML; the file holds a secret so it is readable by the owner only
func saveConfig(fn string, settings entsoeConfig) error {
	configData, err := toml.Marshal(fileConfig{Entsoe: settings})
	if err != nil {
		return fmt.Errorf("could not marshal configuration data: %w", err)
	}

	return os.WriteFile(fn, configData, 0600)
}

// maskKey hides all but the first and last four characters of an API key
func maskKey(key string) string {
	switch {
	case key == "":
		return "(not set)"
	case len(key) <= 8:
		return strings.Repeat("*", len(key))
	default:
		return key[:4] + strings.Repeat("*", len(key)-8) + key[len(key)-4:]
	}
}

// configSummary renders the settings in a bordered box
func configSummary(settings entsoeConfig, source, baseURL string) string {
	var sb strings.Builder
	keyword := func(s string) string {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Render(s)
	}

	fmt.Fprintf(&sb,
		"%s\n\nConfig file: %s\nAPI key: %s\nEndpoint: %s\nTime zone: %s\nConcurrency: %s\nRequests per minute: %s",
		lipgloss.NewStyle().Bold(true).Render("PVGRID CONFIGURATION"),
		keyword(source),
		keyword(maskKey(settings.APIKey)),
		keyword(baseURL),
		keyword(settings.Timezone),
		keyword(strconv.Itoa(settings.Concurrency)),
		keyword(strconv.Itoa(settings.RequestsPerMinute)),
	)

	return lipgloss.NewStyle().
		Width(60).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Padding(1, 2).
		Render(sb.String())
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd, configShowCmd)
}
