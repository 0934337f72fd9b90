package generator

import (
	"text/template"
)

// GetCommonFuncMap returns the template functions shared by the header templates.
func GetCommonFuncMap() template.FuncMap {
	return template.FuncMap{
		"warning": func() string {
			return WarningComment
		},
		"include": func(name string) string {
			return "#include <" + name + ">"
		},
	}
}
