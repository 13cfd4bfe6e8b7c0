package main

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// column describes one rendered table column. Numeric columns are
// right-aligned so counts and times line up; headers stay left-aligned.
type column struct {
	title   string
	numeric bool
}

func col(title string) column        { return column{title: title} }
func numericCol(title string) column { return column{title: title, numeric: true} }

// renderTable renders rows under the given columns. Empty cells render as a
// dash so sparse fields (a showing without a film, a page without a screen
// header) stay visible in the grid.
func renderTable(columns []column, rows [][]string) string {
	if len(columns) == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(columns))
	configs := make([]table.ColumnConfig, 0, len(columns))
	for i, c := range columns {
		header[i] = c.title
		align := text.AlignLeft
		if c.numeric {
			align = text.AlignRight
		}
		configs = append(configs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.AppendHeader(header)
	tw.SetColumnConfigs(configs)

	for _, row := range rows {
		r := make(table.Row, len(columns))
		for i := range columns {
			cell := ""
			if i < len(row) {
				cell = strings.TrimSpace(row[i])
			}
			if cell == "" {
				cell = "-"
			}
			r[i] = cell
		}
		tw.AppendRow(r)
	}

	return tw.Render()
}
