package normalizer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/cypherkit/tckrun/internal/domain"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Slugify lowercases a name and collapses whitespace runs into single
// hyphens. Punctuation other than whitespace passes through unchanged;
// the downstream report tool expects ids built exactly this way.
func Slugify(name string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(name), "-")
}

// PatchFeature repairs one feature record and everything under it so
// it satisfies the report renderer's expectations. Only absent fields
// are filled in; present values are never rewritten.
func PatchFeature(f domain.Feature) {
	name := nameOrUnknown(f.Name())

	if uri, ok := f.URI(); !ok || uri == "" {
		if loc, ok := f.Location(); ok && loc != "" {
			f.SetURI(uriFromLocation(loc))
		} else {
			// No location to derive from. Fall back to the slug so
			// the non-empty invariant still holds.
			f.SetURI(Slugify(name))
		}
	}

	featureID, ok := f.ID()
	if !ok || featureID == "" {
		featureID = Slugify(name)
		f.SetID(featureID)
	}

	for _, e := range f.Elements() {
		patchElement(e, featureID)
	}
}

func patchElement(e domain.Element, featureID string) {
	name := nameOrUnknown(e.Name())

	if id, ok := e.ID(); !ok || id == "" {
		e.SetID(featureID + ";" + Slugify(name))
	}

	if _, ok := e.Line(); !ok {
		line := 0
		if loc, ok := e.Location(); ok {
			line = lineFromLocation(loc)
		}
		e.SetLine(line)
	}

	for _, s := range e.Steps() {
		patchStep(s)
	}
}

func patchStep(s domain.Step) {
	result, ok := s.Result()
	if !ok {
		// Steps that never ran have no result at all.
		result = s.SetResult("skipped", 0)
	}
	if _, ok := result.Status(); !ok {
		result.SetStatus("skipped")
	}
	if _, ok := result.Duration(); !ok {
		result.SetDuration(0)
	}

	if msg, ok := result.ErrorMessage(); ok {
		if lines, isList := msg.([]any); isList {
			result.SetErrorMessage(joinErrorLines(lines))
		}
	}

	// The renderer understands doc_string, not the runner's raw text
	// attribute. Convert atomically: never both, and never neither
	// when the step carried text.
	if text, ok := s.Text(); ok {
		if _, hasDocString := s.DocString(); !hasDocString {
			s.SetDocString("", text, 0)
		}
		s.ClearText()
	}
}

// joinErrorLines flattens a list-form error message into one string,
// preserving line order.
func joinErrorLines(lines []any) string {
	parts := make([]string, 0, len(lines))
	for _, l := range lines {
		if str, ok := l.(string); ok {
			parts = append(parts, str)
		} else {
			parts = append(parts, fmt.Sprint(l))
		}
	}
	return strings.Join(parts, "\n")
}

// uriFromLocation strips the trailing :line suffix from a location
// string like "features/example.feature:5".
func uriFromLocation(loc string) string {
	if idx := strings.LastIndex(loc, ":"); idx >= 0 {
		return loc[:idx]
	}
	return loc
}

// lineFromLocation parses the line number after the last colon.
// Unparseable or missing suffixes yield 0, never an error.
func lineFromLocation(loc string) int {
	idx := strings.LastIndex(loc, ":")
	if idx < 0 || idx == len(loc)-1 {
		return 0
	}
	line, err := strconv.Atoi(loc[idx+1:])
	if err != nil {
		return 0
	}
	return line
}

func nameOrUnknown(name string, ok bool) string {
	if !ok || name == "" {
		return "unknown"
	}
	return name
}
