// Package templates holds the embedded text templates for generated headers
// and the default configuration file.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"
)

//go:embed *.tmpl
var templatesFS embed.FS

// Get returns the raw content of the named template file.
func Get(name string) (string, error) {
	content, err := templatesFS.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("template %s not found: %w", name, err)
	}
	return string(content), nil
}

// Render parses the named template with funcs and executes it against data.
func Render(name string, data any, funcs template.FuncMap) ([]byte, error) {
	content, err := Get(name)
	if err != nil {
		return nil, err
	}
	if funcs == nil {
		funcs = template.FuncMap{}
	}
	t, err := template.New(name).Funcs(funcs).Parse(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
