package generator

import (
	"path/filepath"
	"strings"
)

// WarningComment is the first line of every generated header.
const WarningComment = "/* WARNING: Automatically Generated File */"

// Layout holds every path the generator reads from or writes to.
// It is derived once from configuration and passed to each operation.
type Layout struct {
	// SourceDir is the directory scanned for web assets.
	SourceDir string
	// OutputDir receives the per-file headers and the aggregate header.
	OutputDir string
	// ManifestPath is the aggregate header that includes every per-file header.
	ManifestPath string
	// Extensions is the allow-list of asset extensions, in discovery order.
	Extensions []string
}

// Matches reports whether a file name carries one of the allowed extensions.
func (l Layout) Matches(name string) bool {
	for _, ext := range l.Extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// HeaderPath returns where the generated header for f lives.
func (l Layout) HeaderPath(f SourceFile) string {
	return filepath.Join(l.OutputDir, f.HeaderFile())
}

// SourceFile is a discovered web asset.
type SourceFile struct {
	// Path is the file path as found under the source directory.
	Path string
	// Name is the base file name including its extension (e.g. "index.html").
	Name string
	// Ext is the allow-listed extension the file matched.
	Ext string
}

// HeaderName derives the header stem by replacing every '.' in the base
// name with '_' ("app.min.js" becomes "app_min_js").
func (f SourceFile) HeaderName() string {
	return strings.ReplaceAll(f.Name, ".", "_")
}

// HeaderFile is the generated header's file name.
func (f SourceFile) HeaderFile() string {
	return f.HeaderName() + ".h"
}

// Symbol is the C array name for f.
func (f SourceFile) Symbol(prefix string) string {
	return prefix + f.HeaderName()
}

// Options controls header generation.
type Options struct {
	// Encode controls how file bytes become array literals.
	Encode EncodeOptions
	// SymbolPrefix is prepended to every array name.
	SymbolPrefix string
}

// DefaultOptions returns the options that reproduce the legacy output.
func DefaultOptions() Options {
	return Options{
		Encode:       EncodeOptions{WrapWidth: DefaultWrapWidth, CRLF: true},
		SymbolPrefix: DefaultSymbolPrefix,
	}
}

// Result summarizes a generate run.
type Result struct {
	// Files are the discovered assets, in discovery order.
	Files []SourceFile
	// Removed lists the headers the cleaner deleted before regenerating.
	Removed []string
	// Headers lists the per-file headers written.
	Headers []string
	// Includes lists the include targets written to the manifest.
	Includes []string
	// Manifest is the aggregate header path.
	Manifest string
}
