package report

import (
	"html/template"
	"strings"
)

// CustomFuncMap returns the custom template functions available in
// report templates.
func CustomFuncMap() template.FuncMap {
	return template.FuncMap{
		"add": func(a, b int) int {
			return a + b
		},
		"toLower":   strings.ToLower,
		"toUpper":   strings.ToUpper,
		"trimSpace": strings.TrimSpace,
		"join":      strings.Join,
		"statusClass": func(status string) string {
			switch status {
			case "passed", "failed", "skipped", "undefined":
				return status
			default:
				return "other"
			}
		},
		"pct": func(part, total int) int {
			if total == 0 {
				return 0
			}
			return part * 100 / total
		},
	}
}
