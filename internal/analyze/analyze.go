// Package analyze classifies scenario failures from normalized result
// documents and aggregates them into a breakdown grouped by error
// category.
package analyze

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/cypherkit/tckrun/internal/domain"
)

// Example is one failing scenario kept as an illustration for its
// category.
type Example struct {
	Scenario string
	Location string
	Query    string
}

// Detail is a recurring detail string within a category.
type Detail struct {
	Text  string
	Count int
}

// Category is one error bucket with its tallies.
type Category struct {
	Name     string
	Count    int
	Details  []Detail
	Examples []Example
}

// Group is a high-level rollup of categories sharing a prefix.
type Group struct {
	Name  string
	Count int
}

// FeatureFailures counts failing scenarios per feature.
type FeatureFailures struct {
	Name  string
	Count int
}

// Breakdown is the full analysis result.
type Breakdown struct {
	Total       int
	Failed      int
	Categories  []Category
	Groups      []Group
	TopFeatures []FeatureFailures
}

const maxExamplesPerCategory = 3

// Analyze walks the documents and buckets every failed scenario by
// the classification of its first error line.
func Analyze(docs []domain.Document) Breakdown {
	counts := map[string]int{}
	details := map[string]map[string]int{}
	examples := map[string][]Example{}
	featureFails := map[string]int{}

	var total, failed int
	for _, doc := range docs {
		for _, f := range doc.Features {
			featureName, _ := f.Name()
			for _, e := range f.Elements() {
				if !domain.IsScenario(e) {
					continue
				}
				total++
				status := domain.ScenarioStatus(e)
				if status != "failed" && status != "error" {
					continue
				}
				failed++
				featureFails[featureName]++

				cat, detail := classifyScenario(e)
				counts[cat]++
				if detail != "" {
					if details[cat] == nil {
						details[cat] = map[string]int{}
					}
					details[cat][detail]++
				}
				if len(examples[cat]) < maxExamplesPerCategory {
					name, _ := e.Name()
					loc, _ := e.Location()
					examples[cat] = append(examples[cat], Example{
						Scenario: name,
						Location: loc,
						Query:    scenarioQuery(e),
					})
				}
			}
		}
	}

	b := Breakdown{Total: total, Failed: failed}

	for cat, count := range counts {
		b.Categories = append(b.Categories, Category{
			Name:     cat,
			Count:    count,
			Details:  topDetails(details[cat], 5),
			Examples: examples[cat],
		})
	}
	sort.Slice(b.Categories, func(i, j int) bool {
		if b.Categories[i].Count != b.Categories[j].Count {
			return b.Categories[i].Count > b.Categories[j].Count
		}
		return b.Categories[i].Name < b.Categories[j].Name
	})

	groups := map[string]int{}
	for cat, count := range counts {
		name := cat
		if idx := strings.Index(cat, ":"); idx >= 0 {
			name = cat[:idx]
		}
		groups[name] += count
	}
	for name, count := range groups {
		b.Groups = append(b.Groups, Group{Name: name, Count: count})
	}
	sort.Slice(b.Groups, func(i, j int) bool {
		if b.Groups[i].Count != b.Groups[j].Count {
			return b.Groups[i].Count > b.Groups[j].Count
		}
		return b.Groups[i].Name < b.Groups[j].Name
	})

	for name, count := range featureFails {
		b.TopFeatures = append(b.TopFeatures, FeatureFailures{Name: name, Count: count})
	}
	sort.Slice(b.TopFeatures, func(i, j int) bool {
		if b.TopFeatures[i].Count != b.TopFeatures[j].Count {
			return b.TopFeatures[i].Count > b.TopFeatures[j].Count
		}
		return b.TopFeatures[i].Name < b.TopFeatures[j].Name
	})
	if len(b.TopFeatures) > 15 {
		b.TopFeatures = b.TopFeatures[:15]
	}

	return b
}

// classifyScenario classifies a failed scenario by the first line of
// the first failed step's error message.
func classifyScenario(e domain.Element) (string, string) {
	for _, step := range e.Steps() {
		r, ok := step.Result()
		if !ok {
			continue
		}
		if status, _ := r.Status(); status != "failed" {
			continue
		}
		msg, ok := r.ErrorMessage()
		if !ok {
			continue
		}
		if line := firstLine(msg); line != "" {
			return Classify(line)
		}
	}
	return "Unknown (no error captured)", ""
}

// scenarioQuery pulls the doc-string of the "executing query" step.
func scenarioQuery(e domain.Element) string {
	for _, step := range e.Steps() {
		name, _ := step.Name()
		if !strings.Contains(name, "executing query") {
			continue
		}
		if ds, ok := step.DocString(); ok {
			if q, ok := ds.Value(); ok {
				return q
			}
		}
	}
	return ""
}

// firstLine returns the first non-empty line of an error message in
// either its string or list-of-lines form.
func firstLine(msg any) string {
	switch v := msg.(type) {
	case string:
		for _, line := range strings.Split(v, "\n") {
			if strings.TrimSpace(line) != "" {
				return line
			}
		}
	case []any:
		for _, entry := range v {
			if s, ok := entry.(string); ok && strings.TrimSpace(s) != "" {
				return s
			}
		}
	}
	return ""
}

func topDetails(m map[string]int, n int) []Detail {
	out := make([]Detail, 0, len(m))
	for text, count := range m {
		out = append(out, Detail{Text: text, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Text < out[j].Text
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// Render writes the breakdown as a plain-text report.
func (b Breakdown) Render(w io.Writer) {
	fmt.Fprintf(w, "Scenarios: %d total, %d failed\n\n", b.Total, b.Failed)

	fmt.Fprintln(w, "Error breakdown (by first error per scenario)")
	for _, cat := range b.Categories {
		fmt.Fprintf(w, "  %5d  %s\n", cat.Count, cat.Name)
		for _, d := range cat.Details {
			fmt.Fprintf(w, "         %4dx  %s\n", d.Count, d.Text)
		}
	}

	fmt.Fprintln(w, "\nHigh-level groups")
	for _, g := range b.Groups {
		pct := 0.0
		if b.Failed > 0 {
			pct = float64(g.Count) / float64(b.Failed) * 100
		}
		fmt.Fprintf(w, "  %5d  (%5.1f%%)  %s\n", g.Count, pct, g.Name)
	}

	if len(b.TopFeatures) > 0 {
		fmt.Fprintln(w, "\nTop failing features")
		for _, f := range b.TopFeatures {
			fmt.Fprintf(w, "  %5d  %s\n", f.Count, f.Name)
		}
	}

	fmt.Fprintln(w, "\nExample queries (per top category)")
	for i, cat := range b.Categories {
		if i >= 10 {
			break
		}
		if len(cat.Examples) == 0 {
			continue
		}
		fmt.Fprintf(w, "  %s:\n", cat.Name)
		for j, ex := range cat.Examples {
			if j >= 2 {
				break
			}
			query := strings.ReplaceAll(ex.Query, "\n", " ")
			if query == "" {
				query = "(no query captured)"
			}
			fmt.Fprintf(w, "    %s\n    %s\n", ex.Location, trunc(query, 80))
		}
	}
}
