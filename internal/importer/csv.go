package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Row is one parsed line of a guest import file
type Row struct {
	Name      string
	Phone     string
	Group     string
	Tags      []string
	InvitedBy []string
}

// expected header columns, in any order; name is the only required one
var knownColumns = map[string]bool{
	"name": true, "phone": true, "group": true, "tags": true, "invited_by": true,
}

// ParseCSV reads a guest import file. The first record is a header naming
// the columns; tags and invited_by cells hold semicolon-separated lists.
// Rows without a name are skipped and reported, not fatal.
func ParseCSV(r io.Reader) (rows []Row, skipped int, err error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, col := range header {
		name := strings.ToLower(strings.TrimSpace(col))
		if knownColumns[name] {
			index[name] = i
		}
	}
	if _, ok := index["name"]; !ok {
		return nil, 0, fmt.Errorf("header is missing the name column")
	}

	cell := func(record []string, col string) string {
		i, ok := index[col]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("failed to read record: %w", err)
		}

		row := Row{
			Name:      cell(record, "name"),
			Phone:     cell(record, "phone"),
			Group:     cell(record, "group"),
			Tags:      splitList(cell(record, "tags")),
			InvitedBy: splitList(cell(record, "invited_by")),
		}
		if row.Name == "" {
			skipped++
			continue
		}

		rows = append(rows, row)
	}

	return rows, skipped, nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}
