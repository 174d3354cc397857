// Package export renders captured submissions as flat tables for external
// listing: CSV for spreadsheets, templated HTML for embedding, or any caller
// supplied template.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sync"

	"github.com/flosch/pongo2/v6"
	gotemplatepkg "github.com/goliatone/go-template"

	"github.com/goliatone/go-formbuilder/pkg/document"
	"github.com/goliatone/go-formbuilder/pkg/style"
	"github.com/goliatone/go-formbuilder/pkg/submission"
)

const htmlTableTemplate = `<table class="submissions" style="{{ cssVars }}">
  <thead>
    <tr>{% for col in columns %}<th>{{ col }}</th>{% endfor %}</tr>
  </thead>
  <tbody>
    {% for row in rows %}<tr>{% for cell in row %}<td>{{ cell }}</td>{% endfor %}</tr>
    {% endfor %}
  </tbody>
</table>`

// Option configures the engine before construction.
type Option func(*Engine)

// WithGoTemplateOptions exists for backward compatibility with earlier
// engine wiring and is currently a no-op.
func WithGoTemplateOptions(_ ...gotemplatepkg.Option) Option {
	return func(*Engine) {}
}

// Engine compiles and caches pongo2 templates used for submission exports.
type Engine struct {
	mu    sync.Mutex
	cache map[string]*pongo2.Template
}

// NewEngine constructs an export engine.
func NewEngine(options ...Option) *Engine {
	e := &Engine{cache: make(map[string]*pongo2.Template)}
	for _, opt := range options {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

func (e *Engine) template(source string) (*pongo2.Template, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if tpl, ok := e.cache[source]; ok {
		return tpl, nil
	}
	tpl, err := pongo2.FromString(source)
	if err != nil {
		return nil, fmt.Errorf("export: compile template: %w", err)
	}
	e.cache[source] = tpl
	return tpl, nil
}

// Render executes a caller-supplied template against the table. The context
// exposes columns, rows, and the form style's CSS variables as cssVars.
func (e *Engine) Render(source string, table submission.Table, s document.Style) (string, error) {
	tpl, err := e.template(source)
	if err != nil {
		return "", err
	}
	out, err := tpl.Execute(pongo2.Context{
		"columns": table.Columns,
		"rows":    table.Rows,
		"cssVars": style.CSSVarsStyle(s),
	})
	if err != nil {
		return "", fmt.Errorf("export: render: %w", err)
	}
	return out, nil
}

// HTMLTable renders the table with the built-in HTML layout, themed by the
// form style.
func (e *Engine) HTMLTable(table submission.Table, s document.Style) (string, error) {
	return e.Render(htmlTableTemplate, table, s)
}

// CSV renders the table as comma-separated values with a header row.
func CSV(table submission.Table) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(table.Columns); err != nil {
		return nil, fmt.Errorf("export: write header: %w", err)
	}
	for _, row := range table.Rows {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("export: write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("export: flush: %w", err)
	}
	return buf.Bytes(), nil
}
