package console

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// Table wraps tablewriter with the borderless style every listing uses.
type Table struct {
	writer *tablewriter.Table
}

func NewTable(w io.Writer, headers []string) *Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(headers)
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetColumnSeparator("  ")
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)

	colors := make([]tablewriter.Colors, len(headers))
	for i := range colors {
		colors[i] = tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor}
	}
	table.SetHeaderColor(colors...)

	return &Table{writer: table}
}

func (t *Table) AddRow(row []string) {
	t.writer.Append(row)
}

func (t *Table) Render() {
	t.writer.Render()
}
