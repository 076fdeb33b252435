package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fivetwenty-io/scryfall/internal/constants"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// tableView is the tabular rendering of a command result.
type tableView struct {
	header []string
	rows   [][]string
	empty  string
	footer string
}

// writeResult prints data in the configured output format.
func writeResult(out io.Writer, data interface{}, view tableView) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	switch format {
	case constants.FormatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

		return encoder.Encode(data)
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(constants.JSONIndentSize)

		defer func() { _ = encoder.Close() }()

		return encoder.Encode(data)
	default:
		return writeTable(out, view)
	}
}

func writeTable(out io.Writer, view tableView) error {
	if len(view.rows) == 0 {
		if view.empty != "" {
			_, _ = fmt.Fprintln(out, view.empty)
		}

		return nil
	}

	limit := cellLimit(out, len(view.header))

	table := tablewriter.NewWriter(out)
	table.Header(toAny(view.header)...)

	for _, row := range view.rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = truncate(orNotAvailable(cell), limit)
		}

		_ = table.Append(toAny(cells)...)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	if view.footer != "" {
		_, _ = fmt.Fprintln(out, view.footer)
	}

	return nil
}

// cellLimit derives a per-cell width from the terminal, falling back to a fixed bound.
func cellLimit(out io.Writer, columns int) int {
	file, ok := out.(*os.File)
	if !ok || columns == 0 || !term.IsTerminal(int(file.Fd())) {
		return constants.StringTruncationLength
	}

	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return constants.StringTruncationLength
	}

	return max(width/columns, len(constants.NotAvailable)+3)
}

func truncate(value string, limit int) string {
	value = strings.ReplaceAll(value, "\n", " ")

	runes := []rune(value)
	if limit <= 3 || len(runes) <= limit {
		return value
	}

	return string(runes[:limit-3]) + "..."
}

func orNotAvailable(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}

	return out
}
