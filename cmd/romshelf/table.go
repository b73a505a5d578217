package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"romshelf/internal/pipeline"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := range columns {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := range columns {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := range columns {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

func renderReportTable(report *pipeline.Report) string {
	rows := make([][]string, 0, len(report.Platforms))
	for _, plat := range report.Platforms {
		status := fmt.Sprintf("%d roms", plat.Resolved)
		if plat.Skipped {
			status = "skipped: " + plat.SkipReason
		}
		rows = append(rows, []string{
			plat.FolderCode,
			plat.CatalogueName,
			status,
			fmt.Sprintf("%d", plat.TextsWritten),
			fmt.Sprintf("%d", plat.BoxImages),
			fmt.Sprintf("%d", plat.PreviewImages),
		})
	}
	return renderTable(
		[]string{"Code", "Catalogue", "Status", "Texts", "Box", "Preview"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight},
	)
}
