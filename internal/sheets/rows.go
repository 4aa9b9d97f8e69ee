// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sheets

import (
	"strconv"
	"strings"
)

// headerScanLimit bounds how many leading rows are searched for a header.
const headerScanLimit = 6

// RowsToObjects converts [header, dataRows...] into header-keyed records.
//
// The header is the first of the leading rows holding at least two non-blank
// cells and either a cell named "id" or at least three non-blank cells; tabs
// sometimes carry blank padding rows above the real header. A tab whose
// header's first two cells are blank is treated as a meta table and gets a
// synthesized "key","value" header. Data rows that are blank after trimming
// are dropped; missing cells default to "".
func RowsToObjects(rows [][]string) []map[string]string {
	if len(rows) == 0 {
		return nil
	}

	headerIndex := 0
	limit := len(rows)
	if limit > headerScanLimit {
		limit = headerScanLimit
	}
	for i := 0; i < limit; i++ {
		trimmed := make([]string, len(rows[i]))
		nonEmpty := 0
		hasID := false
		for j, cell := range rows[i] {
			trimmed[j] = strings.TrimSpace(cell)
			if trimmed[j] != "" {
				nonEmpty++
			}
			if strings.EqualFold(trimmed[j], "id") {
				hasID = true
			}
		}
		if nonEmpty >= 2 && (hasID || nonEmpty >= 3) {
			headerIndex = i
			break
		}
	}

	headerRaw := rows[headerIndex]
	data := rows[headerIndex+1:]

	header := make([]string, len(headerRaw))
	for i, h := range headerRaw {
		header[i] = strings.TrimSpace(h)
	}

	// Blank leading labels mean a key/value meta tab; keep any extra labels.
	if len(header) < 2 || header[0] == "" || header[1] == "" {
		rest := []string{}
		if len(header) > 2 {
			rest = header[2:]
		}
		header = append([]string{"key", "value"}, rest...)
	}

	out := make([]map[string]string, 0, len(data))
	for _, row := range data {
		blank := true
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				blank = false
				break
			}
		}
		if blank {
			continue
		}

		record := make(map[string]string, len(header))
		for i, label := range header {
			if i < len(row) {
				record[label] = row[i]
			} else {
				record[label] = ""
			}
		}
		out = append(out, record)
	}
	return out
}

// ToNumber parses s as a number, returning fallback when it does not parse.
// Callers rely on blank and junk values coercing to the fallback (usually 0)
// so unsorted rows cluster at the start of ascending sorts.
func ToNumber(s string, fallback float64) float64 {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return fallback
	}
	n, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return fallback
	}
	return n
}

// IsApproved reports whether status marks a row visible to readers.
func IsApproved(status string) bool {
	return strings.EqualFold(strings.TrimSpace(status), "approved")
}

// NormalizeKey folds a header label to a canonical field key: lowercased,
// whitespace collapsed to underscores, everything else non-alphanumeric
// stripped. "Last Name" and "last_name" both land on "last_name".
func NormalizeKey(key string) string {
	lower := strings.ToLower(strings.TrimSpace(key))
	fields := strings.Fields(lower)
	joined := strings.Join(fields, "_")

	var b strings.Builder
	for _, r := range joined {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// GetField returns the first non-blank value among the aliased keys,
// trimmed. Lookup is by normalized key, so it tolerates the header variants
// the members tab has accumulated over the years.
func GetField(record map[string]string, keys ...string) string {
	normalized := make(map[string]string, len(record))
	for k, v := range record {
		normalized[NormalizeKey(k)] = v
	}
	for _, key := range keys {
		if v, ok := normalized[NormalizeKey(key)]; ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
