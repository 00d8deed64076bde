package matcher

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// ParseTable converts rows from a Gherkin table (first row headers)
// into column names plus row maps with parsed cell values.
func ParseTable(tableRows [][]string) ([]string, []map[string]any) {
	if len(tableRows) == 0 {
		return nil, nil
	}

	headers := tableRows[0]
	rows := make([]map[string]any, 0, len(tableRows)-1)

	for _, row := range tableRows[1:] {
		rowMap := make(map[string]any, len(headers))
		for i, header := range headers {
			if i < len(row) {
				rowMap[header] = ParseValue(row[i])
			}
		}
		rows = append(rows, rowMap)
	}

	return headers, rows
}

// ParseValue parses one TCK table cell into a Go value.
//
// Handles null/NULL, NaN, booleans, ints and floats (including
// scientific notation), quoted strings and nested list literals.
// Anything else (nodes, relationships, paths, maps) stays a string,
// which is how the engine renders those values.
func ParseValue(value string) any {
	value = strings.TrimSpace(value)

	if strings.EqualFold(value, "null") {
		return nil
	}

	if value == "NaN" {
		return math.NaN()
	}

	if strings.EqualFold(value, "true") {
		return true
	}
	if strings.EqualFold(value, "false") {
		return false
	}

	if strings.ContainsAny(value, ".eE") {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	} else if i, err := strconv.ParseInt(value, 10, 64); err == nil {
		return i
	}

	if len(value) >= 2 {
		if (strings.HasPrefix(value, "'") && strings.HasSuffix(value, "'")) ||
			(strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`)) {
			return value[1 : len(value)-1]
		}
	}

	if strings.HasPrefix(value, "[") && strings.HasSuffix(value, "]") {
		return parseList(value)
	}

	return value
}

// parseList parses a list literal like [1, 2] or ['a', [2, 3]],
// splitting on commas only at nesting depth zero and outside quotes.
func parseList(value string) []any {
	inner := strings.TrimSpace(value[1 : len(value)-1])
	if inner == "" {
		return []any{}
	}

	var elements []string
	var current strings.Builder
	depth := 0
	inString := false
	var stringChar rune

	for _, ch := range inner {
		switch {
		case inString:
			current.WriteRune(ch)
			if ch == stringChar {
				inString = false
			}
		case ch == '\'' || ch == '"':
			inString = true
			stringChar = ch
			current.WriteRune(ch)
		case ch == '[':
			depth++
			current.WriteRune(ch)
		case ch == ']':
			depth--
			current.WriteRune(ch)
		case ch == ',' && depth == 0:
			elements = append(elements, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}
	if last := strings.TrimSpace(current.String()); last != "" {
		elements = append(elements, last)
	}

	parsed := make([]any, 0, len(elements))
	for _, e := range elements {
		parsed = append(parsed, ParseValue(e))
	}
	return parsed
}

// normalizeValue canonicalizes a value for comparison: whole floats
// collapse to ints (so 2.0 matches 2), NaN becomes the "NaN" marker,
// lists normalize recursively. Negative zero stays a float.
func normalizeValue(val any) any {
	switch v := val.(type) {
	case nil:
		return nil
	case float64:
		if math.IsNaN(v) {
			return "NaN"
		}
		if v == math.Trunc(v) && !math.IsInf(v, 0) && !(v == 0 && math.Signbit(v)) {
			return int64(v)
		}
		return v
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = normalizeValue(e)
		}
		return out
	default:
		return v
	}
}

// formatValue renders a normalized value in canonical string form.
// Both sides of a comparison go through this, so only internal
// consistency matters.
func formatValue(val any) string {
	switch v := val.(type) {
	case nil:
		return "null"
	case bool:
		return strconv.FormatBool(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case string:
		return v
	case []any:
		parts := make([]string, len(v))
		for i, e := range v {
			parts[i] = formatValue(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return fmt.Sprint(v)
	}
}

// normalizeRow converts every cell to canonical string form.
func normalizeRow(row map[string]any) map[string]string {
	out := make(map[string]string, len(row))
	for k, v := range row {
		out[k] = formatValue(normalizeValue(v))
	}
	return out
}

func sortedCopy(ss []string) []string {
	out := append([]string(nil), ss...)
	sort.Strings(out)
	return out
}
