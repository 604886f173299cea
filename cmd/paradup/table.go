package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"paradup/internal/dupdetect"
	"paradup/internal/report"
	"paradup/internal/textutil"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

const paragraphPreviewWidth = 60

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
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

// writeDuplicateTable renders one row per duplicated paragraph, previewing
// long paragraphs on a single line. Empty results fall back to the text
// messages so the empty-root and no-duplicate cases stay distinguishable.
func writeDuplicateTable(w io.Writer, result dupdetect.Result) error {
	if result.Duplicates.Len() == 0 {
		return report.WriteText(w, result)
	}
	keys := result.Duplicates.Keys()
	rows := make([][]string, 0, len(keys))
	for i, key := range keys {
		files := result.Duplicates[key]
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			textutil.Preview(key, paragraphPreviewWidth),
			strconv.Itoa(len(files)),
			strings.Join(files, "\n"),
		})
	}
	out := renderTable(
		[]string{"#", "Paragraph", "Files", "Found In"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignRight, alignLeft},
	)
	_, err := fmt.Fprintln(w, out)
	return err
}
