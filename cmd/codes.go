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
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/penny-vault/pvgrid/registry"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// codesCmd represents the codes command
var codesCmd = &cobra.Command{
	Use:   "codes [areas|psr|process|document|business|contract]",
	Short: "List the area and code tables used to build queries",
	Long: `Without an argument codes lists every area the client knows. Pass a
code family to list its codes, slugs and names instead. Any of the three
forms can be used wherever a command accepts an area or production type.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		family := "areas"
		if len(args) > 0 {
			family = args[0]
		}

		doc, err := codesMarkdown(registry.Load(), family)
		if err != nil {
			log.Fatal().Err(err).Msg("could not list codes")
		}

		renderMarkdown(cmd, doc)
	},
}

// codesMarkdown builds the markdown listing for one code family
func codesMarkdown(codes *registry.Codes, family string) (string, error) {
	var builder strings.Builder

	if strings.EqualFold(strings.TrimSpace(family), "areas") {
		builder.WriteString("# Areas\n\n")
		builder.WriteString("| Key | EIC | Name | Time zone |\n|---|---|---|---|\n")
		for _, area := range codes.Areas.Entries() {
			fmt.Fprintf(&builder, "| %s | `%s` | %s | %s |\n", area.Key, area.EIC, area.Name, area.Timezone)
		}
		return builder.String(), nil
	}

	reg, err := codes.Family(family)
	if err != nil {
		return "", err
	}

	fmt.Fprintf(&builder, "# %ss\n\n", capitalize(reg.Kind()))
	builder.WriteString("| Code | Slug | Name |\n|---|---|---|\n")
	for _, entry := range reg.Entries() {
		fmt.Fprintf(&builder, "| %s | %s | %s |\n", entry.Code, entry.Slug, entry.Name)
	}

	return builder.String(), nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// renderMarkdown prints doc through glamour
func renderMarkdown(cmd *cobra.Command, doc string) {
	r, _ := glamour.NewTermRenderer(
		// detect background color and pick either the default dark or light theme
		glamour.WithAutoStyle(),
		// wrap output at specific width (default is 80)
		glamour.WithWordWrap(80),
	)

	out, err := r.Render(doc)
	if err != nil {
		log.Fatal().Err(err).Msg("could not render document")
	}

	fmt.Fprint(cmd.OutOrStdout(), out)
}

func init() {
	rootCmd.AddCommand(codesCmd)
}
