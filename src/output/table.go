package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/eriklarko/booleval/src/boolexpr"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

type Format int

const (
	FormatBox Format = iota
	FormatCSV
)

var formatNames = map[Format]string{
	FormatBox: "box",
	FormatCSV: "csv",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("format(%d)", int(f))
}

func ParseFormat(name string) (Format, error) {
	for format, formatName := range formatNames {
		if strings.EqualFold(name, formatName) {
			return format, nil
		}
	}
	return FormatBox, fmt.Errorf("unknown table format '%s'", name)
}

// Header is the identifiers in order followed by the result column.
func Header(order []rune) []string {
	header := lo.Map(order, func(identifier rune, _ int) string {
		return string(identifier)
	})
	return append(header, "Result")
}

// Record formats a row the way it is printed, one cell per identifier and a
// last cell with the result.
func Record(row boolexpr.TruthRow) []string {
	record := lo.Map(row.Assignment, func(iv boolexpr.IdentifierValue, _ int) string {
		return formatBool(iv.Value)
	})
	return append(record, formatBool(row.Result))
}

// WriteTable writes a header and every row to w. The CSV format streams the
// rows, the box format buffers them to size its columns.
func WriteTable(w io.Writer, order []rune, rows iter.Seq[boolexpr.TruthRow], format Format) error {
	switch format {
	case FormatBox:
		return writeBox(w, order, rows)
	case FormatCSV:
		return writeCSV(w, order, rows)
	}
	return fmt.Errorf("unknown table format %s", format)
}

func writeBox(w io.Writer, order []rune, rows iter.Seq[boolexpr.TruthRow]) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader(Header(order))
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_CENTER)

	for row := range rows {
		table.Append(Record(row))
	}

	table.Render()
	return nil
}

func writeCSV(w io.Writer, order []rune, rows iter.Seq[boolexpr.TruthRow]) error {
	writer := csv.NewWriter(w)

	header := Header(order)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header %v: %w", header, err)
	}

	for row := range rows {
		record := Record(row)
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %v: %w", record, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush table: %w", err)
	}
	return nil
}

func formatBool(value bool) string {
	return strconv.FormatBool(value)
}
