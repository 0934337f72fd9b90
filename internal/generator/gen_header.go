package generator

import (
	"fmt"
	"log/slog"
	"os"
)

// WriteHeader encodes one asset into its per-file header, creating the
// output directory if needed and overwriting any previous header.
//
// Parameters:
//   - layout: The generator layout.
//   - f: The asset to embed.
//   - opts: Rendering options.
//
// Returns:
//   - string: The path of the written header.
//   - error: An error if the asset cannot be read or the header cannot be written.
func WriteHeader(layout Layout, f SourceFile, opts Options) (string, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", f.Path, err)
	}

	symbol := f.Symbol(opts.SymbolPrefix)
	if !IsIdentifier(symbol) {
		slog.Warn("array name is not a valid C identifier", "file", f.Path, "symbol", symbol)
	}

	if err := os.MkdirAll(layout.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", layout.OutputDir, err)
	}

	lines := Encode(data, opts.Encode)
	tmplData := struct {
		Source string
		Symbol string
		Lines  []string
	}{
		Source: f.Name,
		Symbol: symbol,
		Lines:  lines,
	}

	path := layout.HeaderPath(f)
	if err := executeTemplate("header.h.tmpl", path, tmplData, GetCommonFuncMap()); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	slog.Debug("wrote header", "file", f.Path, "header", path, "bytes", len(data), "lines", len(lines))
	return path, nil
}
