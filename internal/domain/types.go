package domain

import "encoding/json"

// Document holds one decoded result file: the filename it came from
// and the array of feature records it contains.
type Document struct {
	Name     string
	Features []Feature
}

// Feature, Element, Step, Result and DocString are typed views over
// the generic JSON records produced by the test runner. Every read
// reports presence explicitly and every write lands in the underlying
// map, so fields the tooling does not know about survive the round
// trip untouched.
type Feature struct{ m map[string]any }

// FeatureFrom wraps a decoded feature record.
func FeatureFrom(m map[string]any) Feature {
	return Feature{m: m}
}

// Raw returns the underlying record for serialization.
func (f Feature) Raw() map[string]any { return f.m }

func (f Feature) URI() (string, bool)      { return stringField(f.m, "uri") }
func (f Feature) SetURI(uri string)        { f.m["uri"] = uri }
func (f Feature) ID() (string, bool)       { return stringField(f.m, "id") }
func (f Feature) SetID(id string)          { f.m["id"] = id }
func (f Feature) Name() (string, bool)     { return stringField(f.m, "name") }
func (f Feature) Location() (string, bool) { return stringField(f.m, "location") }
func (f Feature) Status() (string, bool)   { return stringField(f.m, "status") }

// Elements returns views over the feature's element records. Entries
// that are not JSON objects are skipped.
func (f Feature) Elements() []Element {
	raw, ok := f.m["elements"].([]any)
	if !ok {
		return nil
	}
	var elements []Element
	for _, e := range raw {
		if m, ok := e.(map[string]any); ok {
			elements = append(elements, Element{m: m})
		}
	}
	return elements
}

type Element struct{ m map[string]any }

func ElementFrom(m map[string]any) Element { return Element{m: m} }

func (e Element) Raw() map[string]any { return e.m }

func (e Element) ID() (string, bool)       { return stringField(e.m, "id") }
func (e Element) SetID(id string)          { e.m["id"] = id }
func (e Element) Name() (string, bool)     { return stringField(e.m, "name") }
func (e Element) Location() (string, bool) { return stringField(e.m, "location") }
func (e Element) Type() (string, bool)     { return stringField(e.m, "type") }
func (e Element) Status() (string, bool)   { return stringField(e.m, "status") }

func (e Element) Line() (int, bool) { return intField(e.m, "line") }
func (e Element) SetLine(line int)  { e.m["line"] = line }

func (e Element) Steps() []Step {
	raw, ok := e.m["steps"].([]any)
	if !ok {
		return nil
	}
	var steps []Step
	for _, s := range raw {
		if m, ok := s.(map[string]any); ok {
			steps = append(steps, Step{m: m})
		}
	}
	return steps
}

type Step struct{ m map[string]any }

func StepFrom(m map[string]any) Step { return Step{m: m} }

func (s Step) Raw() map[string]any { return s.m }

func (s Step) Name() (string, bool)    { return stringField(s.m, "name") }
func (s Step) Keyword() (string, bool) { return stringField(s.m, "keyword") }

// Result returns the step's result view if one is present.
func (s Step) Result() (Result, bool) {
	m, ok := s.m["result"].(map[string]any)
	if !ok {
		return Result{}, false
	}
	return Result{m: m}, true
}

// SetResult attaches a fresh result record with the given status and
// duration, replacing any existing one.
func (s Step) SetResult(status string, duration int) Result {
	m := map[string]any{"status": status, "duration": duration}
	s.m["result"] = m
	return Result{m: m}
}

// Text is the raw plain-text block attached to the step, when present.
func (s Step) Text() (string, bool) { return stringField(s.m, "text") }

// ClearText removes the plain-text block.
func (s Step) ClearText() { delete(s.m, "text") }

// DocString returns the structured doc-string view if one is present.
func (s Step) DocString() (DocString, bool) {
	m, ok := s.m["doc_string"].(map[string]any)
	if !ok {
		return DocString{}, false
	}
	return DocString{m: m}, true
}

// SetDocString attaches a structured doc-string record.
func (s Step) SetDocString(contentType, value string, line int) {
	s.m["doc_string"] = map[string]any{
		"content_type": contentType,
		"value":        value,
		"line":         line,
	}
}

type DocString struct{ m map[string]any }

func (d DocString) Value() (string, bool)       { return stringField(d.m, "value") }
func (d DocString) ContentType() (string, bool) { return stringField(d.m, "content_type") }
func (d DocString) Line() (int, bool)           { return intField(d.m, "line") }

type Result struct{ m map[string]any }

func (r Result) Status() (string, bool) { return stringField(r.m, "status") }

func (r Result) SetStatus(status string) { r.m["status"] = status }

func (r Result) Duration() (any, bool) {
	v, ok := r.m["duration"]
	return v, ok
}

func (r Result) SetDuration(d int) { r.m["duration"] = d }

// ErrorMessage returns the raw error message value, which the runner
// emits either as a single string or as a list of lines.
func (r Result) ErrorMessage() (any, bool) {
	v, ok := r.m["error_message"]
	return v, ok
}

func (r Result) SetErrorMessage(msg string) { r.m["error_message"] = msg }

func stringField(m map[string]any, key string) (string, bool) {
	v, ok := m[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// intField reads a numeric field regardless of how the decoder
// represented it (json.Number when decoding, int after a repair).
func intField(m map[string]any, key string) (int, bool) {
	switch v := m[key].(type) {
	case int:
		return v, true
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return int(n), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}
