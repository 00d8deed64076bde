package report

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/cypherkit/tckrun/internal/domain"
)

// Engine loads named HTML templates from a directory and renders
// report pages with them.
type Engine struct {
	templates   map[string]*template.Template
	defaultName string
	templateDir string
}

// NewEngine creates a template engine, loading every .tmpl file from
// the given directory.
func NewEngine(templateDir, defaultTemplate string) (*Engine, error) {
	engine := &Engine{
		templates:   make(map[string]*template.Template),
		defaultName: defaultTemplate,
		templateDir: templateDir,
	}

	if err := engine.loadTemplates(); err != nil {
		return nil, err
	}

	return engine, nil
}

func (e *Engine) loadTemplates() error {
	entries, err := os.ReadDir(e.templateDir)
	if err != nil {
		return domain.NewError("report", e.templateDir, "failed to read template directory", err)
	}

	funcMap := CustomFuncMap()

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".tmpl") {
			continue
		}

		path := filepath.Join(e.templateDir, entry.Name())
		content, err := os.ReadFile(path)
		if err != nil {
			return domain.NewError("report", path, "failed to read template file", err)
		}

		name := strings.TrimSuffix(entry.Name(), ".tmpl")
		tmpl, err := template.New(name).Funcs(funcMap).Parse(string(content))
		if err != nil {
			return domain.NewError("report", path, "failed to parse template", err)
		}

		e.templates[name] = tmpl
	}

	if len(e.templates) == 0 {
		return domain.NewError("report", e.templateDir, "no templates found", nil)
	}

	return nil
}

// Render executes the named template (empty name selects the default)
// against the given page data.
func (e *Engine) Render(name string, data any) (string, error) {
	if name == "" {
		name = e.defaultName
	}

	tmpl, ok := e.templates[name]
	if !ok {
		return "", domain.NewError("report", "",
			fmt.Sprintf("template %q not found (available: %s)", name, strings.Join(e.ListTemplates(), ", ")), nil)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", domain.NewError("report", "", "failed to execute template", err)
	}

	return buf.String(), nil
}

// ListTemplates returns the names of all loaded templates.
func (e *Engine) ListTemplates() []string {
	names := make([]string, 0, len(e.templates))
	for name := range e.templates {
		names = append(names, name)
	}
	return names
}
