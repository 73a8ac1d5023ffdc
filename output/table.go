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
package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/penny-vault/pvgrid/data"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	captionStyle = lipgloss.NewStyle().Faint(true)
)

// WriteTable prints at most limit rows as a bordered table. When rows are cut a caption
// says how many were shown.
func WriteTable(w io.Writer, rows data.Rows, limit int) error {
	columns := rows.Columns()

	shown := rows
	if limit > 0 && len(rows) > limit {
		shown = rows[:limit]
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("63"))).
		Headers(columns...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, row := range shown {
		cells := make([]string, len(columns))
		for idx, column := range columns {
			cells[idx] = row.Get(column)
		}
		tbl.Row(cells...)
	}

	if _, err := fmt.Fprintln(w, tbl.Render()); err != nil {
		return err
	}

	if len(shown) < len(rows) {
		if _, err := fmt.Fprintln(w, captionStyle.Render(fmt.Sprintf("Showing %d of %d rows", len(shown), len(rows)))); err != nil {
			return err
		}
	}

	return nil
}
