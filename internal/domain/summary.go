package domain

// Summary counts scenario outcomes across a set of result documents.
type Summary struct {
	Passed    int
	Failed    int
	Skipped   int
	Undefined int
	Other     int
	Total     int
}

// ScenarioStatus returns the element's recorded status, deriving one
// from its step results when the runner did not record any.
func ScenarioStatus(e Element) string {
	if s, ok := e.Status(); ok && s != "" {
		return s
	}

	steps := e.Steps()
	if len(steps) == 0 {
		return "skipped"
	}

	status := "passed"
	seen := false
	for _, step := range steps {
		r, ok := step.Result()
		if !ok {
			continue
		}
		seen = true
		switch s, _ := r.Status(); s {
		case "failed":
			return "failed"
		case "undefined":
			status = "undefined"
		case "skipped":
			if status == "passed" {
				status = "skipped"
			}
		}
	}
	if !seen {
		return "skipped"
	}
	return status
}

// IsScenario reports whether the element is a scenario (as opposed to
// a background or other element type).
func IsScenario(e Element) bool {
	t, ok := e.Type()
	return !ok || t == "scenario"
}

// Summarize tallies scenario statuses across documents.
func Summarize(docs []Document) Summary {
	var s Summary
	for _, doc := range docs {
		for _, f := range doc.Features {
			for _, e := range f.Elements() {
				if !IsScenario(e) {
					continue
				}
				s.Total++
				switch ScenarioStatus(e) {
				case "passed":
					s.Passed++
				case "failed":
					s.Failed++
				case "skipped":
					s.Skipped++
				case "undefined":
					s.Undefined++
				default:
					s.Other++
				}
			}
		}
	}
	return s
}
