// Package format converts the generated pipe-table project output into an
// ordered point list for display.
package format

import (
	"fmt"
	"strings"
)

const titleHeader = "Project Title"

// TableToPoints parses a pipe-delimited table (header row, separator row,
// data rows) into numbered project blocks. Input that does not look like a
// table comes back byte-for-byte unchanged. Rows whose cell count does not
// match the header are skipped silently and do not consume an ordinal.
func TableToPoints(table string) string {
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(table), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	if len(lines) < 3 {
		return table
	}

	headers := splitRow(lines[0])

	var out []string
	ordinal := 0
	for _, row := range lines[2:] {
		cells := splitRow(row)
		if len(cells) != len(headers) {
			continue
		}
		ordinal++

		title := ""
		for i, h := range headers {
			if h == titleHeader {
				title = cells[i]
			}
		}
		out = append(out, fmt.Sprintf("**Project %d: %s**", ordinal, title))
		for i, h := range headers {
			if h == titleHeader {
				continue
			}
			out = append(out, fmt.Sprintf("- **%s:** %s", h, cells[i]))
		}
		out = append(out, "")
	}
	return strings.Join(out, "\n")
}

// splitRow splits a pipe row and drops the empty edge cells produced by the
// leading and trailing delimiters.
func splitRow(line string) []string {
	parts := strings.Split(line, "|")
	if len(parts) < 2 {
		return nil
	}
	parts = parts[1 : len(parts)-1]
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
