package generator

import (
	"fmt"
	"log/slog"
	"os"
)

// WriteManifest writes the aggregate header. It includes the header of each
// file in files that currently exists on disk, in the order given; files
// without a header are skipped.
//
// Returns the include targets written.
func WriteManifest(layout Layout, files []SourceFile) ([]string, error) {
	includes := []string{}
	for _, f := range files {
		if isRegularFile(layout.HeaderPath(f)) {
			includes = append(includes, f.HeaderFile())
		} else {
			slog.Debug("header missing, not included", "file", f.Path)
		}
	}

	if err := os.MkdirAll(layout.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", layout.OutputDir, err)
	}

	data := struct {
		Includes []string
	}{
		Includes: includes,
	}
	if err := executeTemplate("manifest.h.tmpl", layout.ManifestPath, data, GetCommonFuncMap()); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", layout.ManifestPath, err)
	}

	slog.Debug("wrote manifest", "path", layout.ManifestPath, "includes", len(includes))
	return includes, nil
}
