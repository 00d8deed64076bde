// Package report renders normalized result documents into a static
// HTML page. Everything here is presentational; correctness lives in
// the normalizer.
package report

import (
	"bytes"
	"html/template"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yuin/goldmark"

	"github.com/cypherkit/tckrun/internal/domain"
)

// Options are the presentational knobs for one report.
type Options struct {
	OutputPath string
	Title      string
	Project    string
	NotesFile  string // optional markdown file rendered into the header
	Template   string // empty selects the engine default
	Timestamp  time.Time
}

// Page is the data handed to the report template.
type Page struct {
	Title       string
	Project     string
	GeneratedAt string
	Notes       template.HTML
	Summary     domain.Summary
	Features    []FeatureView
}

type FeatureView struct {
	ID        string
	Name      string
	URI       string
	Scenarios []ScenarioView
}

type ScenarioView struct {
	ID       string
	Name     string
	Status   string
	Line     int
	Failures []FailureView
}

type FailureView struct {
	Step  string
	Error string
	Query string
}

// Generator renders reports through a template engine.
type Generator struct {
	engine *Engine
	log    *logrus.Logger
}

// NewGenerator creates a Generator.
func NewGenerator(engine *Engine, log *logrus.Logger) *Generator {
	return &Generator{engine: engine, log: log}
}

// Generate builds the page data for the given documents and writes
// the rendered HTML to opts.OutputPath.
func (g *Generator) Generate(docs []domain.Document, opts Options) error {
	page := Page{
		Title:       opts.Title,
		Project:     opts.Project,
		GeneratedAt: opts.Timestamp.Format("2006-01-02 15:04:05"),
		Summary:     domain.Summarize(docs),
	}

	if opts.NotesFile != "" {
		notes, err := renderNotes(opts.NotesFile)
		if err != nil {
			return err
		}
		page.Notes = notes
	}

	for _, doc := range docs {
		for _, f := range doc.Features {
			page.Features = append(page.Features, featureView(f))
		}
	}

	rendered, err := g.engine.Render(opts.Template, page)
	if err != nil {
		return err
	}

	g.log.Infof("Writing report: %s", opts.OutputPath)
	if err := os.WriteFile(opts.OutputPath, []byte(rendered), 0644); err != nil {
		return domain.NewError("report", opts.OutputPath, "failed to write report", err)
	}

	return nil
}

func featureView(f domain.Feature) FeatureView {
	id, _ := f.ID()
	name, _ := f.Name()
	uri, _ := f.URI()
	view := FeatureView{ID: id, Name: name, URI: uri}

	for _, e := range f.Elements() {
		if !domain.IsScenario(e) {
			continue
		}
		view.Scenarios = append(view.Scenarios, scenarioView(e))
	}
	return view
}

func scenarioView(e domain.Element) ScenarioView {
	id, _ := e.ID()
	name, _ := e.Name()
	line, _ := e.Line()
	view := ScenarioView{
		ID:     id,
		Name:   name,
		Status: domain.ScenarioStatus(e),
		Line:   line,
	}

	for _, step := range e.Steps() {
		r, ok := step.Result()
		if !ok {
			continue
		}
		if status, _ := r.Status(); status != "failed" {
			continue
		}

		failure := FailureView{}
		if name, ok := step.Name(); ok {
			failure.Step = name
		}
		if msg, ok := r.ErrorMessage(); ok {
			if s, isString := msg.(string); isString {
				failure.Error = s
			}
		}
		if ds, ok := step.DocString(); ok {
			if q, ok := ds.Value(); ok {
				failure.Query = q
			}
		}
		view.Failures = append(view.Failures, failure)
	}
	return view
}

// renderNotes converts a markdown notes file into HTML for the report
// header.
func renderNotes(path string) (template.HTML, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return "", domain.NewError("report", path, "failed to read notes file", err)
	}

	var buf bytes.Buffer
	if err := goldmark.Convert(src, &buf); err != nil {
		return "", domain.NewError("report", path, "failed to render notes markdown", err)
	}

	return template.HTML(buf.String()), nil
}
