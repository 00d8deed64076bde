// Package matcher compares query results against expected results
// from TCK feature files, with support for ordered and unordered
// comparison and for side-effect counts.
package matcher

import (
	"fmt"
	"sort"
	"strings"
)

// CompareResults compares actual query results with expected results.
// Column order never matters; row order matters only when ordered is
// true. Returns a match flag and, on mismatch, a human-readable
// explanation.
func CompareResults(
	actualColumns []string,
	actualRows []map[string]any,
	expectedColumns []string,
	expectedRows []map[string]any,
	ordered bool,
) (bool, string) {
	if !equalStrings(sortedCopy(actualColumns), sortedCopy(expectedColumns)) {
		return false, fmt.Sprintf("Column mismatch: expected %v, got %v", expectedColumns, actualColumns)
	}

	if len(actualRows) == 0 && len(expectedRows) == 0 {
		return true, ""
	}
	if len(actualRows) == 0 {
		return false, fmt.Sprintf("Expected %d rows, got 0", len(expectedRows))
	}
	if len(expectedRows) == 0 {
		return false, fmt.Sprintf("Expected 0 rows, got %d", len(actualRows))
	}
	if len(actualRows) != len(expectedRows) {
		return false, fmt.Sprintf("Expected %d rows, got %d", len(expectedRows), len(actualRows))
	}

	actual := canonicalRows(actualRows, expectedColumns)
	expected := canonicalRows(expectedRows, expectedColumns)

	if !ordered {
		sort.Strings(actual)
		sort.Strings(expected)
	}

	for i := range expected {
		if actual[i] != expected[i] {
			return false, fmt.Sprintf(
				"Results don't match:\nExpected:\n%s\nActual:\n%s",
				renderRows(expectedRows, expectedColumns),
				renderRows(actualRows, expectedColumns),
			)
		}
	}

	return true, ""
}

// CompareSideEffects compares actual side-effect counts with the
// expected counts from the scenario's side-effect table.
func CompareSideEffects(actual, expected map[string]int) (bool, string) {
	if equalCounts(actual, expected) {
		return true, ""
	}
	return false, fmt.Sprintf("Side effects mismatch: expected %s, got %s",
		renderCounts(expected), renderCounts(actual))
}

// canonicalRows folds each row into one comparable string, cells in
// expected column order.
func canonicalRows(rows []map[string]any, columns []string) []string {
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		norm := normalizeRow(row)
		cells := make([]string, 0, len(columns))
		for _, col := range columns {
			cells = append(cells, norm[col])
		}
		out = append(out, strings.Join(cells, "\x1f"))
	}
	return out
}

// renderRows formats rows as a pipe table for mismatch messages.
func renderRows(rows []map[string]any, columns []string) string {
	var b strings.Builder
	b.WriteString("| " + strings.Join(columns, " | ") + " |")
	for _, row := range rows {
		norm := normalizeRow(row)
		cells := make([]string, 0, len(columns))
		for _, col := range columns {
			cells = append(cells, norm[col])
		}
		b.WriteString("\n| " + strings.Join(cells, " | ") + " |")
	}
	return b.String()
}

// renderCounts formats a side-effect map with sorted keys so mismatch
// messages are deterministic.
func renderCounts(counts map[string]int) string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %d", k, counts[k]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalCounts(a, b map[string]int) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}
