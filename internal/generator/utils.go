package generator

import (
	"os"
	"text/template"

	"github.com/camkes-http/makefs/internal/templates"
)

// IsIdentifier reports whether s is a valid C identifier.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// executeTemplate renders a template with the provided funcMap and writes it to the output path.
// Rendering happens in memory so a failed execution leaves no partial file behind.
func executeTemplate(tmplName string, outputPath string, data interface{}, funcMap template.FuncMap) error {
	out, err := templates.Render(tmplName, data, funcMap)
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, out, 0644)
}
