package tplengine

import (
	"bytes"
	"fmt"
	"maps"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// Engine holds a set of named templates and the filter functions available to
// them. Templates are parsed once, at registration; rendering never mutates
// the engine or the context, so concurrent renders over independent contexts
// are safe.
type Engine struct {
	templates map[string]*template.Template
	funcs     template.FuncMap
}

// NewEngine creates an engine whose filter set is the sprig base functions
// plus the provided filters. Filters passed in override sprig functions of the
// same name.
func NewEngine(filters template.FuncMap) *Engine {
	funcs := sprig.FuncMap()
	maps.Copy(funcs, filters)
	return &Engine{
		templates: make(map[string]*template.Template),
		funcs:     funcs,
	}
}

// AddTemplate parses and registers a template under the given name. A
// reference to an unregistered filter fails here with ErrUnknownFilter rather
// than at render time.
func (e *Engine) AddTemplate(name, templateStr string) error {
	tmpl, err := template.New(name).Option("missingkey=error").Funcs(e.funcs).Parse(templateStr)
	if err != nil {
		return classifyParseError(name, err)
	}
	e.templates[name] = tmpl
	return nil
}

// HasTemplate returns true if the string contains template markers
func HasTemplate(templateStr string) bool {
	return strings.Contains(templateStr, "{{") || strings.Contains(templateStr, "{{-")
}

// Names returns the registered template names.
func (e *Engine) Names() []string {
	names := make([]string, 0, len(e.templates))
	for name := range e.templates {
		names = append(names, name)
	}
	return names
}

// Render renders a registered template by name. On any failure no output is
// returned: an unresolved placeholder aborts the whole render rather than
// emitting a partial document.
func (e *Engine) Render(name string, context map[string]any) (string, error) {
	tmpl, ok := e.templates[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}
	return e.renderTemplate(tmpl, context)
}

// RenderString parses and renders a one-off template string with the engine's
// filter set. Strings without template markers are returned as is.
func (e *Engine) RenderString(templateStr string, context map[string]any) (string, error) {
	if !HasTemplate(templateStr) {
		return templateStr, nil
	}
	tmpl, err := template.New("inline").Option("missingkey=error").Funcs(e.funcs).Parse(templateStr)
	if err != nil {
		return "", classifyParseError("inline", err)
	}
	return e.renderTemplate(tmpl, context)
}

func (e *Engine) renderTemplate(tmpl *template.Template, context map[string]any) (string, error) {
	if context == nil {
		context = make(map[string]any)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, context); err != nil {
		return "", classifyExecError(tmpl.Name(), err)
	}
	return buf.String(), nil
}
