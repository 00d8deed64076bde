// Package diff compares two result files and reports regressions and
// fixes between a baseline run and the current run.
package diff

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/cypherkit/tckrun/internal/domain"
	"github.com/cypherkit/tckrun/internal/scanner"
)

// GoldenName is the conventional filename of a pinned baseline run.
const GoldenName = "golden.json"

// Change is one scenario whose status moved between runs.
type Change struct {
	Scenario string // "feature name :: scenario name"
	Status   string // the new (regression) or old (fix) status
}

// Report is the comparison of two runs.
type Report struct {
	BaselineFile   string
	CurrentFile    string
	Regressions    []Change
	Fixes          []Change
	BaselinePassed int
	CurrentPassed  int
}

// LoadStatuses reads a result file into {feature :: scenario → status}.
// Only scenario elements count; backgrounds are ignored.
func LoadStatuses(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewError("diff", path, "failed to read result file", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var root []any
	if err := dec.Decode(&root); err != nil {
		return nil, domain.NewError("diff", path, "result file is not valid JSON", err)
	}
	if err := dec.Decode(new(any)); err != io.EOF {
		return nil, domain.NewError("diff", path, "result file has trailing data after the JSON document", nil)
	}

	statuses := map[string]string{}
	for _, entry := range root {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		f := domain.FeatureFrom(m)
		featureName, _ := f.Name()
		for _, e := range f.Elements() {
			if t, ok := e.Type(); !ok || t != "scenario" {
				continue
			}
			name, _ := e.Name()
			statuses[featureName+" :: "+name] = domain.ScenarioStatus(e)
		}
	}
	return statuses, nil
}

// Compare builds a report from two status maps. Scenarios present in
// only one run count as "missing" on the other side.
func Compare(baseline, current map[string]string) Report {
	var r Report

	keys := map[string]bool{}
	for k := range baseline {
		keys[k] = true
	}
	for k := range current {
		keys[k] = true
	}
	sorted := make([]string, 0, len(keys))
	for k := range keys {
		sorted = append(sorted, k)
	}
	sort.Strings(sorted)

	for _, key := range sorted {
		old, ok := baseline[key]
		if !ok {
			old = "missing"
		}
		now, ok := current[key]
		if !ok {
			now = "missing"
		}
		if old == now {
			continue
		}
		if old == "passed" && now != "passed" {
			r.Regressions = append(r.Regressions, Change{Scenario: key, Status: now})
		} else if now == "passed" && old != "passed" {
			r.Fixes = append(r.Fixes, Change{Scenario: key, Status: old})
		}
	}

	for _, s := range baseline {
		if s == "passed" {
			r.BaselinePassed++
		}
	}
	for _, s := range current {
		if s == "passed" {
			r.CurrentPassed++
		}
	}
	return r
}

// AutoPick selects baseline and current files from a results
// directory: golden.json against the newest other file when a golden
// baseline exists, otherwise the two newest files by name.
func AutoPick(resultsDir string) (string, string, error) {
	files, err := scanner.NewScanner(false).Scan(resultsDir, ".json")
	if err != nil {
		return "", "", err
	}

	golden := ""
	var others []string
	for _, f := range files {
		if filepath.Base(f) == GoldenName {
			golden = f
		} else {
			others = append(others, f)
		}
	}

	if golden != "" && len(others) > 0 {
		return golden, others[len(others)-1], nil
	}
	if len(others) >= 2 {
		return others[len(others)-2], others[len(others)-1], nil
	}
	return "", "", domain.NewError("diff", resultsDir,
		"need a golden.json or at least 2 result files to compare", nil)
}

// Render writes the report as plain text.
func (r Report) Render(w io.Writer) {
	fmt.Fprintf(w, "Baseline: %s\n", filepath.Base(r.BaselineFile))
	fmt.Fprintf(w, "Current:  %s\n\n", filepath.Base(r.CurrentFile))

	if len(r.Regressions) > 0 {
		fmt.Fprintf(w, "REGRESSIONS (%d tests that used to pass but now fail):\n", len(r.Regressions))
		for _, c := range r.Regressions {
			fmt.Fprintf(w, "  %s  [%s]\n", c.Scenario, c.Status)
		}
	} else {
		fmt.Fprintln(w, "No regressions - nothing that previously passed is now failing.")
	}

	if len(r.Fixes) > 0 {
		fmt.Fprintf(w, "\nFIXES (%d tests that now pass):\n", len(r.Fixes))
		for _, c := range r.Fixes {
			fmt.Fprintf(w, "  %s  [was %s]\n", c.Scenario, c.Status)
		}
	}

	fmt.Fprintf(w, "\nTotal passed: %d -> %d (%+d)\n",
		r.BaselinePassed, r.CurrentPassed, r.CurrentPassed-r.BaselinePassed)
}
